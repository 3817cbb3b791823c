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

package pgdl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is returned, wrapped, when an input document cannot be parsed at all.
var ErrParse = errors.New("parse error")

// Kind classifies recoverable conversion problems.
type Kind int

const (
	// MissingField means an expected key was absent; only the affected element is skipped.
	MissingField Kind = iota + 1
	// UnknownDatatype means a type name or XSD IRI is not in the primitive table.
	UnknownDatatype
	// UnknownTerm means a metadata key outside the known vocabularies.
	UnknownTerm
	// Limitation means data the RDF encoding cannot carry was dropped.
	Limitation
)

func (k Kind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case UnknownDatatype:
		return "unknown datatype"
	case UnknownTerm:
		return "unknown term"
	case Limitation:
		return "limitation"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Diagnostic is a non-fatal note collected during a conversion.
type Diagnostic struct {
	Kind Kind
	// Path locates the element, e.g. shapes[0].edges[1].node.
	Path    string
	Message string
}

func (d Diagnostic) String() string {
	if d.Path == "" {
		return d.Message
	}
	return d.Path + ": " + d.Message
}

// Diagnostics is an ordered list of diagnostics.
type Diagnostics []Diagnostic

// Add appends a diagnostic.
func (ds *Diagnostics) Add(kind Kind, path, format string, args ...interface{}) {
	*ds = append(*ds, Diagnostic{Kind: kind, Path: path, Message: fmt.Sprintf(format, args...)})
}

// Missing records a MissingField diagnostic for field under path.
func (ds *Diagnostics) Missing(path, field string) {
	ds.Add(MissingField, join(path, field), "there is no information about %s", field)
}

// UnknownType records an UnknownDatatype diagnostic.
func (ds *Diagnostics) UnknownType(path string, name string) {
	ds.Add(UnknownDatatype, path, "unknown type: %s", name)
}

// Count returns the number of diagnostics of a given kind.
func (ds Diagnostics) Count(kind Kind) int {
	n := 0
	for _, d := range ds {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

func (ds Diagnostics) String() string {
	var sb strings.Builder
	for _, d := range ds {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

// ShapePath and friends build diagnostic paths.
func ShapePath(i int) string { return fmt.Sprintf("shapes[%d]", i) }

func PropertyPath(i, j int) string { return fmt.Sprintf("shapes[%d].properties[%d]", i, j) }

func EdgePath(i, j int) string { return fmt.Sprintf("shapes[%d].edges[%d]", i, j) }

func RelationPath(i, j, k int) string {
	return fmt.Sprintf("shapes[%d].edges[%d].relations[%d]", i, j, k)
}
