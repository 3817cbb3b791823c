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
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/xsd"

	"github.com/pgdl/pgdl/voc/pgsh"
	"github.com/pgdl/pgdl/voc/sh"
)

var (
	rdfType = quad.IRI(rdf.Type).Full()

	xsdDate    = quad.IRI(xsd.NS + "date")
	xsdBoolean = quad.IRI(xsd.NS + "boolean")

	shNodeShape   = quad.IRI(sh.NodeShape)
	shTargetNode  = quad.IRI(sh.TargetNode)
	shTargetClass = quad.IRI(sh.TargetClass)
	shProperty    = quad.IRI(sh.Property)
	shPath        = quad.IRI(sh.Path)
	shDatatype    = quad.IRI(sh.Datatype)
	shNode        = quad.IRI(sh.Node)

	pgshRelation = quad.IRI(pgsh.Relation)
	pgshKey      = quad.IRI(pgsh.Key)
	pgshDirected = quad.IRI(pgsh.Directed)
)
