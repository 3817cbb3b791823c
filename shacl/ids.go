// Copyright 2024 The PGDL Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shacl

import (
	"strconv"

	"github.com/cayleygraph/quad"

	"github.com/pgdl/pgdl/pgdl"
	"github.com/pgdl/pgdl/voc/pg"
)

// IDGenerator allocates subjects for a single conversion. Implementations
// must never return the same identifier twice.
type IDGenerator interface {
	// ShapeID returns the subject of the i-th shape of a document.
	ShapeID(i int, s *pgdl.Shape) quad.Value
	// BlankNode returns a fresh blank node.
	BlankNode() quad.BNode
}

// NewSequential returns the default generator: shapes become
// pg:Shape1, pg:Shape2, ... and blank nodes b1, b2, ...
func NewSequential() IDGenerator {
	return &Sequential{}
}

// Sequential is a deterministic IDGenerator.
type Sequential struct {
	shapes int
	blanks int
}

func (g *Sequential) ShapeID(_ int, _ *pgdl.Shape) quad.Value {
	g.shapes++
	return quad.IRI(pg.NS + "Shape" + strconv.Itoa(g.shapes))
}

func (g *Sequential) BlankNode() quad.BNode {
	g.blanks++
	return quad.BNode("b" + strconv.Itoa(g.blanks))
}

// NewRandom returns a generator that uses random blank nodes everywhere,
// shapes included.
func NewRandom() IDGenerator {
	return random{}
}

type random struct{}

func (random) ShapeID(_ int, _ *pgdl.Shape) quad.Value { return quad.RandomBlankNode() }

func (random) BlankNode() quad.BNode { return quad.RandomBlankNode() }
