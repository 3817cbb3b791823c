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
	"fmt"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/pgdl/pgdl/pgdl"
)

type decoder struct {
	g          *Graph
	diags      pgdl.Diagnostics
	structural map[string]struct{}
}

func (d *decoder) mark(v quad.Value) {
	d.structural[quad.StringOf(v)] = struct{}{}
}

// document rebuilds shapes in order of their first rdf:type triple and
// properties and edges in order of their sh:property triples. Sibling order
// of the source document is not stored in the graph.
func (d *decoder) document() *pgdl.Document {
	doc := &pgdl.Document{}
	for i, s := range d.g.Subjects(rdfType, shNodeShape) {
		d.mark(s)
		doc.Shapes = append(doc.Shapes, d.shape(i, s))
	}
	doc.Metadata = decodeMetadata(d.g, d.structural)
	return doc
}

func (d *decoder) shape(i int, subj quad.Value) pgdl.Shape {
	path := pgdl.ShapePath(i)
	var s pgdl.Shape
	if tn, ok := d.g.Object(subj, shTargetNode); ok {
		s.TargetNode = valueName(tn)
	} else if tc, ok := d.g.Object(subj, shTargetClass); ok {
		s.TargetNode = valueName(tc)
	} else {
		d.diags.Missing(path, "targetNode")
	}
	for j, p := range d.g.Objects(subj, shProperty) {
		d.mark(p)
		ppath := fmt.Sprintf("%s.property[%d]", path, j)
		pv, ok := d.g.Object(p, shPath)
		if !ok {
			d.diags.Missing(ppath, "path")
			continue
		}
		name := valueName(pv)
		rel, ok := d.g.Object(p, pgshRelation)
		if !ok {
			s.Properties = append(s.Properties, pgdl.Property{
				Name:     name,
				Datatype: d.datatype(p, ppath),
			})
			continue
		}
		d.mark(rel)
		s.Edges = append(s.Edges, d.edge(p, rel, name, ppath))
	}
	return s
}

func (d *decoder) edge(p, rel quad.Value, name, path string) pgdl.Edge {
	e := pgdl.Edge{Name: name}
	if n, ok := d.g.Object(p, shNode); ok {
		e.Node = valueName(n)
	} else {
		d.diags.Missing(path, "node")
	}
	if v, ok := d.g.Object(p, pgshDirected); ok {
		b, err := strconv.ParseBool(literalText(v))
		if err != nil {
			d.diags.Add(pgdl.MissingField, path+".directed", "invalid direction: %s", literalText(v))
		} else {
			e.Directed = &b
		}
	}

	keys := d.g.Objects(rel, pgshKey)
	dts := d.g.Objects(rel, shDatatype)
	switch {
	case len(keys) > 0:
		e.Relations = []pgdl.Relation{{
			Name:     valueName(keys[0]),
			Datatype: d.datatype(rel, path+".relations[0]"),
		}}
	case len(dts) > 0:
		d.diags.Missing(path+".relations[0]", "name")
	}
	if len(keys) > 1 {
		var dropped []string
		for _, k := range keys[1:] {
			dropped = append(dropped, valueName(k))
		}
		d.diags.Add(pgdl.Limitation, path+".relations",
			"only one relation per edge is decoded; dropped keys: %s", strings.Join(dropped, ", "))
	}
	if len(dts) > 1 {
		var dropped []string
		for _, dt := range dts[1:] {
			dropped = append(dropped, valueName(dt))
		}
		d.diags.Add(pgdl.Limitation, path+".relations",
			"only one relation per edge is decoded; dropped datatypes: %s", strings.Join(dropped, ", "))
	}
	return e
}

// datatype decodes the first sh:datatype of node. Unknown IRIs decode to absent.
func (d *decoder) datatype(node quad.Value, path string) pgdl.TypeName {
	v, ok := d.g.Object(node, shDatatype)
	if !ok {
		return ""
	}
	iri, ok := v.(quad.IRI)
	if ok {
		if t, ok := pgdl.FromXSD(iri); ok {
			return pgdl.TypeName(t.String())
		}
	}
	d.diags.UnknownType(path+".datatype", valueName(v))
	return ""
}
