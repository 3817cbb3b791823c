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

// Package graphql projects PGDL documents to GraphQL schema definitions.
//
// The projection is one-way. Several primitive types share a GraphQL scalar,
// so a type cannot be recovered from the generated schema.
package graphql

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/pgdl/pgdl/clog"
	"github.com/pgdl/pgdl/pgdl"
)

// Direction of a relation as rendered in @relation.
type Direction string

const (
	In   Direction = "IN"
	Out  Direction = "OUT"
	Both Direction = "BOTH"
)

// Field is one field of an object type.
type Field struct {
	Name       string
	Type       string
	Directives []string
}

// Object is a GraphQL object type generated for a shape.
type Object struct {
	Name   string
	Fields []Field

	shape int
	names map[string]struct{}
}

// Schema is the generated type system.
type Schema struct {
	Objects []*Object
	// Scalars are opaque types declared for edge targets without a shape.
	Scalars []string
}

const preamble = `directive @relation(name: String!, direction: RelationDirection) on FIELD_DEFINITION
directive @property(name: String!, datatype: String) repeatable on FIELD_DEFINITION

enum RelationDirection {
  IN
  OUT
  BOTH
}
`

var sdl = template.Must(template.New("sdl").Parse(preamble + `{{range .Scalars}}
scalar {{.}}
{{end}}{{range .Objects}}
type {{.Name}} {
{{range .Fields}}  {{.Name}}: {{.Type}}{{range .Directives}} {{.}}{{end}}
{{end}}}
{{end}}`))

type builder struct {
	schema  Schema
	index   map[string]*Object
	scalars map[string]struct{}
	// types maps a targetNode to its type name; taken holds assigned names.
	types map[string]string
	taken map[string]struct{}
	diags pgdl.Diagnostics
}

// reserved names are predeclared by GraphQL or by the preamble.
var reserved = []string{"String", "Int", "Float", "Boolean", "ID", "RelationDirection"}

// Build projects a document to a schema. Edges are resolved in two passes:
// the first indexes shapes by targetNode, the second adds inbound fields for
// directed edges to the type of their target. Types left without fields
// are declared as scalars.
func Build(doc *pgdl.Document) (*Schema, pgdl.Diagnostics) {
	b := &builder{
		index:   make(map[string]*Object),
		scalars: make(map[string]struct{}),
		types:   make(map[string]string),
		taken:   make(map[string]struct{}),
	}
	for _, name := range reserved {
		b.taken[name] = struct{}{}
	}
	for i := range doc.Shapes {
		s := &doc.Shapes[i]
		if s.TargetNode == "" {
			b.diags.Missing(pgdl.ShapePath(i), "targetNode")
			continue
		}
		b.object(s.TargetNode, i)
	}
	for i := range doc.Shapes {
		s := &doc.Shapes[i]
		if s.TargetNode == "" {
			continue
		}
		o := b.index[s.TargetNode]
		for j, p := range s.Properties {
			b.property(o, pgdl.PropertyPath(i, j), p)
		}
		for j := range s.Edges {
			b.outbound(o, i, j, &s.Edges[j])
		}
	}
	for i := range doc.Shapes {
		s := &doc.Shapes[i]
		if s.TargetNode == "" {
			continue
		}
		for j := range s.Edges {
			e := &s.Edges[j]
			if e.Directed == nil || !*e.Directed || e.Node == "" {
				continue
			}
			if target, ok := b.index[e.Node]; ok {
				b.inbound(target, s.TargetNode, e)
			}
		}
	}
	b.demoteEmpty()
	return &b.schema, b.diags
}

// object returns the type of a targetNode, creating it on first use.
// Shapes sharing a targetNode share a type.
func (b *builder) object(node string, shape int) *Object {
	if o, ok := b.index[node]; ok {
		return o
	}
	o := &Object{Name: b.typeOf(node, pgdl.ShapePath(shape)+".targetNode"), shape: shape, names: make(map[string]struct{})}
	b.index[node] = o
	b.schema.Objects = append(b.schema.Objects, o)
	return o
}

// typeOf returns the type name of a node. Nodes whose names map to the same
// type name get a numeric suffix, reported at path.
func (b *builder) typeOf(node, path string) string {
	if name, ok := b.types[node]; ok {
		return name
	}
	base := typeName(node)
	name := base
	for n := 2; ; n++ {
		if _, taken := b.taken[name]; !taken {
			break
		}
		name = base + strconv.Itoa(n)
	}
	if name != base {
		b.diags.Add(pgdl.Limitation, path, "type name %s of %s is taken; renamed to %s", base, node, name)
	}
	b.types[node] = name
	b.taken[name] = struct{}{}
	return name
}

// demoteEmpty declares objects without fields as scalars, since an object
// type needs at least one field.
func (b *builder) demoteEmpty() {
	objects := b.schema.Objects[:0]
	for _, o := range b.schema.Objects {
		if len(o.Fields) > 0 {
			objects = append(objects, o)
			continue
		}
		b.schema.Scalars = append(b.schema.Scalars, o.Name)
		b.diags.Add(pgdl.Limitation, pgdl.ShapePath(o.shape), "type %s has no fields; declared as a scalar", o.Name)
	}
	b.schema.Objects = objects
}

func (b *builder) property(o *Object, path string, p pgdl.Property) {
	if p.Name == "" {
		b.diags.Missing(path, "name")
		return
	}
	scalar := "String"
	if !p.Datatype.Absent() {
		if t, ok := p.Datatype.Primitive(); ok {
			scalar = t.GraphQLScalar()
		} else {
			b.diags.UnknownType(path+".datatype", string(p.Datatype))
		}
	}
	o.add(Field{Name: fieldName(p.Name), Type: scalar}, "")
}

func (b *builder) outbound(o *Object, i, j int, e *pgdl.Edge) {
	path := pgdl.EdgePath(i, j)
	if e.Name == "" {
		b.diags.Missing(path, "name")
		return
	}
	if e.Node == "" {
		b.diags.Missing(path, "node")
		return
	}
	target := b.typeOf(e.Node, path+".node")
	if _, ok := b.index[e.Node]; !ok {
		if _, ok := b.scalars[target]; !ok {
			b.scalars[target] = struct{}{}
			b.schema.Scalars = append(b.schema.Scalars, target)
			b.diags.Add(pgdl.Limitation, path+".node", "no shape for %s; declared as a scalar", e.Node)
		}
	}
	var dir Direction
	if e.Directed != nil {
		dir = Out
		if !*e.Directed {
			dir = Both
		}
	}
	directives := []string{relation(e.Name, dir)}
	for k, r := range e.Relations {
		if r.Name == "" {
			b.diags.Missing(pgdl.RelationPath(i, j, k), "name")
			continue
		}
		if !r.Datatype.Absent() {
			if _, ok := r.Datatype.Primitive(); !ok {
				b.diags.UnknownType(pgdl.RelationPath(i, j, k)+".datatype", string(r.Datatype))
			}
		}
		directives = append(directives, property(r))
	}
	o.add(Field{
		Name:       strings.ToLower(fieldName(e.Node)) + "s",
		Type:       "[" + target + "]",
		Directives: directives,
	}, e.Name)
}

func (b *builder) inbound(target *Object, source string, e *pgdl.Edge) {
	directives := []string{relation(e.Name, In)}
	for _, r := range e.Relations {
		if r.Name != "" {
			directives = append(directives, property(r))
		}
	}
	target.add(Field{
		Name:       strings.ToLower(fieldName(source)) + "sBy" + upperFirst(fieldName(e.Name)),
		Type:       "[" + b.types[source] + "]",
		Directives: directives,
	}, e.Name)
}

// add appends a field, renaming it if the name is taken: first by the edge
// name, then by a counter.
func (o *Object) add(f Field, edge string) {
	name := f.Name
	if _, taken := o.names[name]; taken && edge != "" {
		name = f.Name + upperFirst(fieldName(edge))
	}
	for n := 2; ; n++ {
		if _, taken := o.names[name]; !taken {
			break
		}
		name = f.Name + strconv.Itoa(n)
	}
	f.Name = name
	o.names[name] = struct{}{}
	o.Fields = append(o.Fields, f)
}

func relation(name string, dir Direction) string {
	if dir == "" {
		return fmt.Sprintf("@relation(name:%q)", name)
	}
	return fmt.Sprintf("@relation(name:%q,direction:%s)", name, dir)
}

func property(r pgdl.Relation) string {
	if r.Datatype.Absent() {
		return fmt.Sprintf("@property(name:%q)", r.Name)
	}
	return fmt.Sprintf("@property(name:%q,datatype:%q)", r.Name, string(r.Datatype))
}

// fieldName maps a name to the GraphQL name grammar /[_A-Za-z][_0-9A-Za-z]*/.
func fieldName(s string) string {
	var sb strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || r < unicode.MaxASCII && unicode.IsLetter(r):
		case i > 0 && r < unicode.MaxASCII && unicode.IsDigit(r):
		case i == 0 && r < unicode.MaxASCII && unicode.IsDigit(r):
			sb.WriteByte('_')
		default:
			r = '_'
		}
		sb.WriteRune(r)
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}

func typeName(s string) string {
	return upperFirst(fieldName(s))
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Write renders the schema as SDL.
func (s *Schema) Write(w io.Writer) error {
	return sdl.Execute(w, s)
}

// Validate checks the rendered schema with gqlparser.
func (s *Schema) Validate() error {
	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		return err
	}
	_, err := gqlparser.LoadSchema(&ast.Source{Name: "pgdl.graphql", Input: buf.String()})
	if err != nil {
		return err
	}
	return nil
}

// Generate writes the GraphQL schema of a document. A schema that fails
// validation is still written and reported as a Limitation diagnostic.
func Generate(w io.Writer, doc *pgdl.Document) (pgdl.Diagnostics, error) {
	s, diags := Build(doc)
	if err := s.Validate(); err != nil {
		clog.Warningf("generated graphql schema is invalid: %v", err)
		diags.Add(pgdl.Limitation, "", "generated schema does not validate: %v", err)
	}
	return diags, s.Write(w)
}
