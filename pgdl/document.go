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

// Package pgdl defines the in-memory model of a PGDL property-graph schema
// document together with its YAML parser and the primitive datatype table.
package pgdl

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Document is a parsed PGDL schema.
type Document struct {
	Metadata Metadata `yaml:"metadata,omitempty" json:"metadata,omitempty"`
	Shapes   []Shape  `yaml:"shapes,omitempty" json:"shapes,omitempty"`
}

// Metadata maps a descriptive term name (creator, created, title, ...) to its values.
type Metadata map[string]Value

// Terms returns metadata term names in sorted order.
func (m Metadata) Terms() []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Value is a metadata value. A Value holding exactly one string is the
// scalar form and is rendered as a plain scalar; any other length is
// rendered as a sequence.
type Value []string

// Scalar returns the only string of a single-valued Value.
func (v Value) Scalar() (string, bool) {
	if len(v) != 1 {
		return "", false
	}
	return v[0], true
}

// Interface returns a string for a scalar Value and []string otherwise.
func (v Value) Interface() interface{} {
	if s, ok := v.Scalar(); ok {
		return s
	}
	return []string(v)
}

func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			*v = nil
			return nil
		}
		*v = Value{n.Value}
		return nil
	case yaml.SequenceNode:
		out := make(Value, 0, len(n.Content))
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: metadata value must be a string or a list of strings", c.Line)
			}
			out = append(out, c.Value)
		}
		*v = out
		return nil
	}
	return fmt.Errorf("line %d: metadata value must be a string or a list of strings", n.Line)
}

func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Value{s}
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	*v = arr
	return nil
}

// Shape describes a single node type: its properties and outgoing edges.
type Shape struct {
	TargetNode string     `yaml:"targetNode,omitempty" json:"targetNode,omitempty"`
	Properties []Property `yaml:"properties,omitempty" json:"properties,omitempty"`
	Edges      []Edge     `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// UnmarshalYAML accepts targetClass as an alias of targetNode.
func (s *Shape) UnmarshalYAML(n *yaml.Node) error {
	type plain Shape
	var raw struct {
		plain       `yaml:",inline"`
		TargetClass string `yaml:"targetClass"`
	}
	if err := n.Decode(&raw); err != nil {
		return err
	}
	*s = Shape(raw.plain)
	if s.TargetNode == "" {
		s.TargetNode = raw.TargetClass
	}
	return nil
}

// Property is a typed attribute of a node.
type Property struct {
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	Datatype TypeName `yaml:"datatype,omitempty" json:"datatype,omitempty"`
}

// Edge is an outgoing connection to the shape whose targetNode is Node.
type Edge struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	Node string `yaml:"node,omitempty" json:"node,omitempty"`
	// Directed is nil when the direction of the edge is not known.
	Directed  *bool      `yaml:"directed,omitempty" json:"directed,omitempty"`
	Relations []Relation `yaml:"relations,omitempty" json:"relations,omitempty"`
}

// Relation is an attribute of the edge itself, not of either endpoint.
type Relation struct {
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	Datatype TypeName `yaml:"datatype,omitempty" json:"datatype,omitempty"`
}

// Bool returns a pointer to b. Used to set Edge.Directed.
func Bool(b bool) *bool { return &b }
