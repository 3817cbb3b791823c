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

// Package voc lists the RDF vocabularies used by PGDL translation.
//
// Every namespace is registered with the github.com/cayleygraph/quad/voc
// registry, so quad.IRI.Short and quad.IRI.Full work for all of them.
package voc

import (
	"sort"
	"strings"

	"github.com/cayleygraph/quad/voc"
	"github.com/cayleygraph/quad/voc/owl"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
	"github.com/cayleygraph/quad/voc/xsd"

	"github.com/pgdl/pgdl/voc/dct"
	"github.com/pgdl/pgdl/voc/pg"
	"github.com/pgdl/pgdl/voc/pgsh"
	"github.com/pgdl/pgdl/voc/sh"
	"github.com/pgdl/pgdl/voc/skos"
)

// Namespaces are the vocabularies written to serialized SHACL graphs.
var Namespaces = []voc.Namespace{
	{Prefix: rdf.Prefix, Full: rdf.NS},
	{Prefix: rdfs.Prefix, Full: rdfs.NS},
	{Prefix: owl.Prefix, Full: owl.NS},
	{Prefix: xsd.Prefix, Full: xsd.NS},
	{Prefix: sh.Prefix, Full: sh.NS},
	{Prefix: pgsh.Prefix, Full: pgsh.NS},
	{Prefix: pg.Prefix, Full: pg.NS},
	{Prefix: dct.Prefix, Full: dct.NS},
	{Prefix: skos.Prefix, Full: skos.NS},
}

// Prefixes returns the namespaces as a map from a bare prefix name (without
// the trailing colon) to the namespace IRI.
func Prefixes() map[string]string {
	m := make(map[string]string, len(Namespaces))
	for _, ns := range Namespaces {
		m[strings.TrimSuffix(ns.Prefix, ":")] = ns.Full
	}
	return m
}

// PrefixNames returns the bare prefix names in sorted order.
func PrefixNames() []string {
	out := make([]string, 0, len(Namespaces))
	for _, ns := range Namespaces {
		out = append(out, strings.TrimSuffix(ns.Prefix, ":"))
	}
	sort.Strings(out)
	return out
}

// Lookup returns the namespace IRI registered for a prefix, with or without
// the trailing colon.
func Lookup(prefix string) (string, bool) {
	if !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	for _, ns := range voc.List() {
		if ns.Prefix == prefix {
			return ns.Full, true
		}
	}
	return "", false
}

// ShortIRI replaces the namespace of a known vocabulary with its prefix.
//
//	ShortIRI("http://www.w3.org/ns/shacl#path") // returns "sh:path"
func ShortIRI(iri string) string {
	return voc.ShortIRI(iri)
}

// FullIRI expands a known prefix to its namespace IRI.
//
//	FullIRI("pgsh:relation") // returns "http://ii.uwb.edu.pl/shpg#relation"
func FullIRI(iri string) string {
	return voc.FullIRI(iri)
}
