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
)

type encoder struct {
	t     *Translator
	g     *Graph
	ids   IDGenerator
	diags pgdl.Diagnostics
}

func (e *encoder) document(doc *pgdl.Document) {
	encodeMetadata(e.g, e.ids, doc.Metadata, &e.diags)
	for i := range doc.Shapes {
		e.shape(i, &doc.Shapes[i])
	}
}

func (e *encoder) shape(i int, s *pgdl.Shape) {
	path := pgdl.ShapePath(i)
	subj := e.ids.ShapeID(i, s)
	e.g.Add(subj, rdfType, shNodeShape)
	if s.TargetNode == "" {
		e.diags.Missing(path, "targetNode")
	} else {
		e.g.Add(subj, shTargetNode, e.t.nameIRI(s.TargetNode))
	}
	for j, p := range s.Properties {
		ppath := pgdl.PropertyPath(i, j)
		if p.Name == "" {
			e.diags.Missing(ppath, "name")
			continue
		}
		b := e.ids.BlankNode()
		e.g.Add(subj, shProperty, b)
		e.g.Add(b, shPath, e.t.nameIRI(p.Name))
		e.datatype(b, p.Datatype, ppath)
	}
	for j := range s.Edges {
		e.edge(subj, pgdl.EdgePath(i, j), i, j, &s.Edges[j])
	}
}

func (e *encoder) edge(subj quad.Value, path string, i, j int, ed *pgdl.Edge) {
	if ed.Name == "" {
		e.diags.Missing(path, "name")
		return
	}
	b := e.ids.BlankNode()
	e.g.Add(subj, shProperty, b)
	e.g.Add(b, shPath, e.t.nameIRI(ed.Name))
	if ed.Node == "" {
		e.diags.Missing(path, "node")
	} else {
		e.g.Add(b, shNode, e.t.nameIRI(ed.Node))
	}
	if ed.Directed != nil {
		e.g.Add(b, pgshDirected, quad.TypedString{
			Value: quad.String(strconv.FormatBool(*ed.Directed)),
			Type:  xsdBoolean,
		})
	}
	rel := e.ids.BlankNode()
	e.g.Add(b, pgshRelation, rel)
	if n := len(ed.Relations); n > 1 {
		e.diags.Add(pgdl.Limitation, path+".relations",
			"%d relations share one relation node; only one is recovered when decoding", n)
	}
	for k, r := range ed.Relations {
		rpath := pgdl.RelationPath(i, j, k)
		if r.Name == "" {
			e.diags.Missing(rpath, "name")
			continue
		}
		e.g.Add(rel, pgshKey, e.t.nameIRI(r.Name))
		e.datatype(rel, r.Datatype, rpath)
	}
}

// datatype writes sh:datatype for a known type. Absent types write nothing;
// unknown ones are reported and skipped, never replaced by a default.
func (e *encoder) datatype(node quad.Value, dt pgdl.TypeName, path string) {
	if dt.Absent() {
		return
	}
	t, ok := dt.Primitive()
	if !ok {
		e.diags.UnknownType(path+".datatype", string(dt))
		return
	}
	e.g.Add(node, shDatatype, t.XSD())
}
