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
)

var _ quad.Writer = (*Graph)(nil)

type triple [3]string

// Graph is an in-memory set of triples. Duplicate triples collapse and
// insertion order is kept, so every serialization of a graph is stable.
// Quad labels are ignored.
type Graph struct {
	quads     []quad.Quad
	seen      map[triple]struct{}
	bySubject map[string][]int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		seen:      make(map[triple]struct{}),
		bySubject: make(map[string][]int),
	}
}

func normalize(v quad.Value) quad.Value {
	if iri, ok := v.(quad.IRI); ok {
		return iri.Full()
	}
	return v
}

// Add inserts a triple, returning false if it was already present.
func (g *Graph) Add(s, p, o quad.Value) bool {
	s, p, o = normalize(s), normalize(p), normalize(o)
	k := triple{quad.StringOf(s), quad.StringOf(p), quad.StringOf(o)}
	if _, ok := g.seen[k]; ok {
		return false
	}
	g.seen[k] = struct{}{}
	g.bySubject[k[0]] = append(g.bySubject[k[0]], len(g.quads))
	g.quads = append(g.quads, quad.Quad{Subject: s, Predicate: p, Object: o})
	return true
}

// WriteQuad implements quad.Writer.
func (g *Graph) WriteQuad(q quad.Quad) error {
	if !q.IsValid() {
		return quad.ErrInvalid
	}
	g.Add(q.Subject, q.Predicate, q.Object)
	return nil
}

// WriteQuads implements quad.Writer.
func (g *Graph) WriteQuads(buf []quad.Quad) (int, error) {
	for i, q := range buf {
		if err := g.WriteQuad(q); err != nil {
			return i, err
		}
	}
	return len(buf), nil
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int { return len(g.quads) }

// Quads returns a copy of all triples in insertion order.
func (g *Graph) Quads() []quad.Quad {
	out := make([]quad.Quad, len(g.quads))
	copy(out, g.quads)
	return out
}

// Reader returns a quad reader over the graph.
func (g *Graph) Reader() quad.Reader {
	return quad.NewReader(g.Quads())
}

// Objects returns the objects of all (s, p, ?) triples in insertion order.
func (g *Graph) Objects(s quad.Value, p quad.IRI) []quad.Value {
	s = normalize(s)
	pk := quad.StringOf(p.Full())
	var out []quad.Value
	for _, i := range g.bySubject[quad.StringOf(s)] {
		q := g.quads[i]
		if quad.StringOf(q.Predicate) == pk {
			out = append(out, q.Object)
		}
	}
	return out
}

// Object returns the first object of (s, p, ?).
func (g *Graph) Object(s quad.Value, p quad.IRI) (quad.Value, bool) {
	objs := g.Objects(s, p)
	if len(objs) == 0 {
		return nil, false
	}
	return objs[0], true
}

// Has reports whether a triple (s, p, ?) exists.
func (g *Graph) Has(s quad.Value, p quad.IRI) bool {
	_, ok := g.Object(s, p)
	return ok
}

// Subjects returns the distinct subjects of (?, p, o) triples in order of
// first appearance. A nil o matches any object.
func (g *Graph) Subjects(p quad.IRI, o quad.Value) []quad.Value {
	pk := quad.StringOf(p.Full())
	var ok string
	if o != nil {
		ok = quad.StringOf(normalize(o))
	}
	seen := make(map[string]struct{})
	var out []quad.Value
	for _, q := range g.quads {
		if quad.StringOf(q.Predicate) != pk {
			continue
		}
		if o != nil && quad.StringOf(q.Object) != ok {
			continue
		}
		sk := quad.StringOf(q.Subject)
		if _, dup := seen[sk]; dup {
			continue
		}
		seen[sk] = struct{}{}
		out = append(out, q.Subject)
	}
	return out
}

// AllSubjects returns every distinct subject in order of first appearance.
func (g *Graph) AllSubjects() []quad.Value {
	seen := make(map[string]struct{})
	var out []quad.Value
	for _, q := range g.quads {
		sk := quad.StringOf(q.Subject)
		if _, dup := seen[sk]; dup {
			continue
		}
		seen[sk] = struct{}{}
		out = append(out, q.Subject)
	}
	return out
}
