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
	"net/url"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/pgdl/pgdl/voc/pg"
)

// EscapeName escapes a local name so it survives LastSegment. Path
// separators, fragment and colon characters are all percent-encoded.
func EscapeName(name string) string {
	return strings.ReplaceAll(url.PathEscape(name), ":", "%3A")
}

// LastSegment returns the local part of an IRI: the tail after the last
// '/', then after the last '#', then after the last ':', un-escaped.
func LastSegment(iri string) string {
	s := iri
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.LastIndexByte(s, '#'); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		s = s[i+1:]
	}
	if u, err := url.PathUnescape(s); err == nil {
		return u
	}
	return s
}

// CleanNamespace appends '#' to a namespace that does not end in '/', '#'
// or ':', so LastSegment splits element IRIs at the namespace boundary.
func CleanNamespace(ns string) string {
	if ns == "" || strings.ContainsAny(ns[len(ns)-1:], "/#:") {
		return ns
	}
	return ns + "#"
}

// nameIRI returns the IRI of a schema element name in the translator namespace.
func (t *Translator) nameIRI(name string) quad.IRI {
	ns := t.Namespace
	if ns == "" {
		ns = pg.NS
	}
	return quad.IRI(CleanNamespace(ns) + EscapeName(name))
}

// valueName returns the local name of an IRI or the text of a literal.
func valueName(v quad.Value) string {
	switch v := v.(type) {
	case quad.IRI:
		return LastSegment(string(v.Full()))
	case quad.BNode:
		return string(v)
	case nil:
		return ""
	}
	return literalText(v)
}

func literalText(v quad.Value) string {
	switch v := v.(type) {
	case quad.String:
		return string(v)
	case quad.TypedString:
		return string(v.Value)
	case quad.LangString:
		return string(v.Value)
	case quad.Bool:
		return strconv.FormatBool(bool(v))
	case quad.IRI:
		return string(v.Full())
	case quad.BNode:
		return v.String()
	}
	return quad.StringOf(v)
}

func isAbsoluteIRI(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n<>\"{}|\\^`") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Opaque != "" || u.Host != "" || u.Path != ""
}
