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
	"sort"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/owl"
	"github.com/cayleygraph/quad/voc/rdfs"

	"github.com/pgdl/pgdl/pgdl"
	"github.com/pgdl/pgdl/voc/dct"
	"github.com/pgdl/pgdl/voc/skos"
)

// TermKind describes how values of a metadata term are written as RDF objects.
type TermKind int

const (
	// Literal terms are written as plain string literals.
	Literal TermKind = iota
	// DateLiteral terms are written as xsd:date typed literals.
	DateLiteral
	// Resource terms are written as IRIs when the value is an absolute IRI.
	Resource
)

// Term is a metadata key known to the translator.
type Term struct {
	Name string
	IRI  quad.IRI
	Kind TermKind
}

// Terms is the closed list of metadata terms, in the order they are encoded.
var Terms = []Term{
	{"title", dct.Title, Literal},
	{"creator", dct.Creator, Literal},
	{"subject", dct.Subject, Literal},
	{"description", dct.Description, Literal},
	{"publisher", dct.Publisher, Literal},
	{"contributor", dct.Contributor, Literal},
	{"date", dct.Date, Literal},
	{"type", dct.Type, Literal},
	{"format", dct.Format, Literal},
	{"identifier", dct.Identifier, Literal},
	{"source", dct.Source, Literal},
	{"language", dct.Language, Literal},
	{"relation", dct.Relation, Literal},
	{"coverage", dct.Coverage, Literal},
	{"rights", dct.Rights, Literal},
	{"created", dct.Created, DateLiteral},
	{"issued", dct.Issued, DateLiteral},
	{"modified", dct.Modified, DateLiteral},

	{"label", rdfs.NS + "label", Literal},
	{"comment", rdfs.NS + "comment", Literal},
	{"seeAlso", rdfs.NS + "seeAlso", Resource},
	{"isDefinedBy", rdfs.NS + "isDefinedBy", Resource},

	{"versionInfo", owl.NS + "versionInfo", Literal},
	{"priorVersion", owl.NS + "priorVersion", Resource},
	{"backwardCompatibleWith", owl.NS + "backwardCompatibleWith", Resource},
	{"incompatibleWith", owl.NS + "incompatibleWith", Resource},

	{"altLabel", skos.AltLabel, Literal},
	{"changeNote", skos.ChangeNote, Literal},
	{"definition", skos.Definition, Literal},
	{"editorialNote", skos.EditorialNote, Literal},
	{"example", skos.Example, Literal},
	{"hiddenLabel", skos.HiddenLabel, Literal},
	{"historyNote", skos.HistoryNote, Literal},
	{"note", skos.Note, Literal},
	{"prefLabel", skos.PrefLabel, Literal},
	{"scopeNote", skos.ScopeNote, Literal},
}

var (
	termsByName = make(map[string]Term, len(Terms))
	termsByIRI  = make(map[quad.IRI]Term, len(Terms))
)

func init() {
	for _, t := range Terms {
		termsByName[t.Name] = t
		termsByIRI[t.IRI] = t
	}
}

// LookupTerm returns a known metadata term by name.
func LookupTerm(name string) (Term, bool) {
	t, ok := termsByName[name]
	return t, ok
}

// object converts a metadata value to its RDF object.
func (t Term) object(v string) quad.Value {
	switch t.Kind {
	case DateLiteral:
		return quad.TypedString{Value: quad.String(v), Type: xsdDate}
	case Resource:
		if isAbsoluteIRI(v) {
			return quad.IRI(v)
		}
	}
	return quad.String(v)
}

// encodeMetadata writes one triple per metadata value on a fresh document subject.
func encodeMetadata(g *Graph, ids IDGenerator, meta pgdl.Metadata, diags *pgdl.Diagnostics) {
	for _, name := range []string{"created", "creator"} {
		if len(meta[name]) == 0 {
			diags.Missing("metadata", name)
		}
	}
	if len(meta) == 0 {
		return
	}
	var unknown []string
	for name := range meta {
		if _, ok := termsByName[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		diags.Add(pgdl.UnknownTerm, "metadata."+name, "unknown metadata term: %s", name)
	}
	if len(unknown) == len(meta) {
		return
	}
	var doc quad.Value
	for _, t := range Terms {
		for _, v := range meta[t.Name] {
			if doc == nil {
				doc = ids.BlankNode()
			}
			g.Add(doc, t.IRI, t.object(v))
		}
	}
}

// decodeMetadata collects known terms from all subjects that are not part
// of the shape structure. Values keep graph order.
func decodeMetadata(g *Graph, structural map[string]struct{}) pgdl.Metadata {
	var meta pgdl.Metadata
	for _, q := range g.quads {
		if _, ok := structural[quad.StringOf(q.Subject)]; ok {
			continue
		}
		p, ok := q.Predicate.(quad.IRI)
		if !ok {
			continue
		}
		t, ok := termsByIRI[p]
		if !ok {
			continue
		}
		if meta == nil {
			meta = make(pgdl.Metadata)
		}
		meta[t.Name] = append(meta[t.Name], literalText(q.Object))
	}
	return meta
}
