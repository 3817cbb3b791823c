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

// Package pgsh contains the property-graph extension to SHACL.
//
// SHACL has no notion of attributes on an edge, so edge property shapes link
// to a relation node carrying the edge's own keys and datatypes.
package pgsh

import "github.com/cayleygraph/quad/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://ii.uwb.edu.pl/shpg#`
	Prefix = `pgsh:`
)

const (
	// Links an edge property shape to its relation node.
	Relation = NS + `relation`
	// Names one attribute of an edge on a relation node.
	Key = NS + `key`
	// Boolean direction flag of an edge; absent when the direction is unknown.
	Directed = NS + `directed`
)
