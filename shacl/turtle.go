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
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/xsd"
	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/pgdl/pgdl/pgdl"
	"github.com/pgdl/pgdl/voc"
)

const turtleFormat = "turtle"

// TurtleOptions configures Turtle output.
type TurtleOptions struct {
	// Base is written as @base when set.
	Base string
	// Prefixes maps bare prefix names to namespaces. Defaults to voc.Prefixes.
	Prefixes map[string]string
}

// ReadTurtle parses a Turtle document. Syntax errors are wrapped in pgdl.ErrParse.
func ReadTurtle(ctx context.Context, r io.Reader) (*Graph, error) {
	quads, err := rdf.ParseAny(ctx, r, turtleFormat, rdf.AnyFormatOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: turtle: %v", pgdl.ErrParse, err)
	}
	g := NewGraph()
	for _, q := range quads {
		s, err := fromTerm(q.S)
		if err != nil {
			return nil, err
		}
		o, err := fromTerm(q.O)
		if err != nil {
			return nil, err
		}
		g.Add(s, quad.IRI(q.P.Value), o)
	}
	return g, nil
}

// WriteTurtle serializes the graph as Turtle, one triple per statement.
func WriteTurtle(ctx context.Context, w io.Writer, g *Graph, opts TurtleOptions) error {
	prefixes := opts.Prefixes
	if prefixes == nil {
		prefixes = voc.Prefixes()
	}
	quads := make([]rdf.Quad, 0, g.Len())
	for _, q := range g.quads {
		s, err := toTerm(q.Subject)
		if err != nil {
			return err
		}
		o, err := toTerm(q.Object)
		if err != nil {
			return err
		}
		p, ok := q.Predicate.(quad.IRI)
		if !ok {
			return fmt.Errorf("turtle: predicate must be an IRI, got %v", q.Predicate)
		}
		quads = append(quads, rdf.Quad{S: s, P: rdf.IRI{Value: string(p.Full())}, O: o})
	}
	return rdf.SerializeAny(ctx, w, turtleFormat, quads, rdf.AnyFormatOptions{
		Turtle: &rdf.TurtleEncodeOptions{
			Prefixes: prefixes,
			BaseIRI:  opts.Base,
		},
	})
}

var xsdString = xsd.NS + "string"

func fromTerm(t rdf.Term) (quad.Value, error) {
	switch t := t.(type) {
	case rdf.IRI:
		return quad.IRI(t.Value), nil
	case rdf.BlankNode:
		return quad.BNode(t.ID), nil
	case rdf.Literal:
		switch {
		case t.Lang != "":
			return quad.LangString{Value: quad.String(t.Lexical), Lang: t.Lang}, nil
		case t.Datatype.Value == "" || t.Datatype.Value == xsdString:
			return quad.String(t.Lexical), nil
		}
		return quad.TypedString{Value: quad.String(t.Lexical), Type: quad.IRI(t.Datatype.Value)}, nil
	}
	return nil, fmt.Errorf("turtle: unsupported term %v", t)
}

func toTerm(v quad.Value) (rdf.Term, error) {
	switch v := v.(type) {
	case quad.IRI:
		return rdf.IRI{Value: string(v.Full())}, nil
	case quad.BNode:
		return rdf.BlankNode{ID: string(v)}, nil
	case quad.String:
		return rdf.Literal{Lexical: string(v)}, nil
	case quad.LangString:
		return rdf.Literal{Lexical: string(v.Value), Lang: v.Lang}, nil
	case quad.TypedString:
		return rdf.Literal{Lexical: string(v.Value), Datatype: rdf.IRI{Value: string(v.Type.Full())}}, nil
	case quad.Bool:
		return rdf.Literal{Lexical: strconv.FormatBool(bool(v)), Datatype: rdf.IRI{Value: string(xsdBoolean)}}, nil
	}
	return nil, fmt.Errorf("turtle: unsupported value %T", v)
}
