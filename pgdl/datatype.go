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
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/xsd"
)

// PrimitiveType is one of the datatypes PGDL can map to XSD and GraphQL.
type PrimitiveType uint8

const (
	String PrimitiveType = iota + 1
	Int
	Integer
	Boolean
	Decimal
	Float
	Double
	DateTime
	Time
	Date
)

// PrimitiveTypes lists every primitive type in declaration order.
var PrimitiveTypes = []PrimitiveType{
	String, Int, Integer, Boolean, Decimal, Float, Double, DateTime, Time, Date,
}

// String returns the PGDL name of the type.
func (t PrimitiveType) String() string {
	switch t {
	case String:
		return "string"
	case Int:
		return "int"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Decimal:
		return "decimal"
	case Float:
		return "float"
	case Double:
		return "double"
	case DateTime:
		return "dateTime"
	case Time:
		return "time"
	case Date:
		return "date"
	}
	return "PrimitiveType(invalid)"
}

// ParsePrimitive returns the primitive type with a given PGDL name.
func ParsePrimitive(name string) (PrimitiveType, bool) {
	for _, t := range PrimitiveTypes {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// XSD returns the full XML Schema datatype IRI of the type.
func (t PrimitiveType) XSD() quad.IRI {
	var local string
	switch t {
	case String:
		local = "string"
	case Int:
		local = "int"
	case Integer:
		local = "integer"
	case Boolean:
		local = "boolean"
	case Decimal:
		local = "decimal"
	case Float:
		local = "float"
	case Double:
		local = "double"
	case DateTime:
		local = "dateTime"
	case Time:
		local = "time"
	case Date:
		local = "date"
	default:
		return ""
	}
	return quad.IRI(xsd.NS + local)
}

// FromXSD returns the primitive type of an XML Schema datatype IRI.
// Both full and prefixed (xsd:int) forms are accepted.
func FromXSD(iri quad.IRI) (PrimitiveType, bool) {
	full := iri.Full()
	for _, t := range PrimitiveTypes {
		if t.XSD() == full {
			return t, true
		}
	}
	return 0, false
}

// GraphQLScalar returns the GraphQL scalar the type is projected to.
// The projection is lossy: there is no way back from a scalar to a type.
func (t PrimitiveType) GraphQLScalar() string {
	switch t {
	case String, DateTime, Time, Date:
		return "String"
	case Int, Integer:
		return "Int"
	case Boolean:
		return "Boolean"
	case Decimal, Float, Double:
		return "Float"
	}
	return ""
}

// TypeName is a datatype as written in a document. The empty name means
// the datatype is absent. Names outside the primitive table are kept as-is.
type TypeName string

// Primitive resolves the name against the primitive table.
func (n TypeName) Primitive() (PrimitiveType, bool) {
	return ParsePrimitive(string(n))
}

// Absent reports whether no datatype was given.
func (n TypeName) Absent() bool { return n == "" }
