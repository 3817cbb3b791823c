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

// Package sh contains constants of the W3C Shapes Constraint Language (SHACL).
package sh

import "github.com/cayleygraph/quad/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/ns/shacl#`
	Prefix = `sh:`
)

const (
	// Types

	// A node shape is a shape that specifies constraints on a focus node.
	NodeShape = NS + `NodeShape`

	// Properties

	// Links a shape to individual nodes it targets.
	TargetNode = NS + `targetNode`
	// Links a shape to a class; all instances of the class are targets.
	TargetClass = NS + `targetClass`
	// Links a shape to a property shape.
	Property = NS + `property`
	// The path of a property shape.
	Path = NS + `path`
	// The datatype that all value nodes must have.
	Datatype = NS + `datatype`
	// A shape that all value nodes must conform to.
	Node = NS + `node`
)
