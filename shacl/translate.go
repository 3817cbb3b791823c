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
	"github.com/pgdl/pgdl/clog"
	"github.com/pgdl/pgdl/pgdl"
)

// Translator converts PGDL documents to SHACL graphs and back.
//
// A Translator holds no per-conversion state and is safe for concurrent use.
type Translator struct {
	// NewIDs returns the identifier generator of one conversion.
	// NewSequential is used when nil.
	NewIDs func() IDGenerator
	// Namespace for schema element names; pg: when empty.
	Namespace string
}

// Default is the translator used by the package-level functions.
var Default = &Translator{}

func (t *Translator) newIDs() IDGenerator {
	if t.NewIDs != nil {
		return t.NewIDs()
	}
	return NewSequential()
}

// ToShacl encodes a document as a SHACL graph. Problems that affect only a
// part of the document are returned as diagnostics with the partial graph.
func (t *Translator) ToShacl(doc *pgdl.Document) (*Graph, pgdl.Diagnostics) {
	e := &encoder{t: t, g: NewGraph(), ids: t.newIDs()}
	e.document(doc)
	if clog.V(1) {
		clog.Infof("encoded %d shapes as %d triples, %d diagnostics", len(doc.Shapes), e.g.Len(), len(e.diags))
	}
	return e.g, e.diags
}

// ToPgdl decodes a SHACL graph to a document. Triples outside the modeled
// shape pattern are ignored.
func (t *Translator) ToPgdl(g *Graph) (*pgdl.Document, pgdl.Diagnostics) {
	d := &decoder{g: g, structural: make(map[string]struct{})}
	doc := d.document()
	if clog.V(1) {
		clog.Infof("decoded %d shapes from %d triples, %d diagnostics", len(doc.Shapes), g.Len(), len(d.diags))
	}
	return doc, d.diags
}

// ToShacl encodes a document with the Default translator.
func ToShacl(doc *pgdl.Document) (*Graph, pgdl.Diagnostics) {
	return Default.ToShacl(doc)
}

// ToPgdl decodes a graph with the Default translator.
func ToPgdl(g *Graph) (*pgdl.Document, pgdl.Diagnostics) {
	return Default.ToPgdl(g)
}
