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

// Tree returns the document as plain maps, slices, strings and bools,
// leaving out absent fields. It is the mirror handed to generic encoders.
func (d *Document) Tree() map[string]interface{} {
	out := make(map[string]interface{})
	if len(d.Metadata) != 0 {
		meta := make(map[string]interface{}, len(d.Metadata))
		for k, v := range d.Metadata {
			meta[k] = v.Interface()
		}
		out["metadata"] = meta
	}
	if len(d.Shapes) != 0 {
		shapes := make([]interface{}, 0, len(d.Shapes))
		for _, s := range d.Shapes {
			shapes = append(shapes, s.tree())
		}
		out["shapes"] = shapes
	}
	return out
}

func (s *Shape) tree() map[string]interface{} {
	m := make(map[string]interface{})
	if s.TargetNode != "" {
		m["targetNode"] = s.TargetNode
	}
	if len(s.Properties) != 0 {
		props := make([]interface{}, 0, len(s.Properties))
		for _, p := range s.Properties {
			props = append(props, field(p.Name, p.Datatype))
		}
		m["properties"] = props
	}
	if len(s.Edges) != 0 {
		edges := make([]interface{}, 0, len(s.Edges))
		for _, e := range s.Edges {
			edges = append(edges, e.tree())
		}
		m["edges"] = edges
	}
	return m
}

func (e *Edge) tree() map[string]interface{} {
	m := make(map[string]interface{})
	if e.Name != "" {
		m["name"] = e.Name
	}
	if e.Node != "" {
		m["node"] = e.Node
	}
	if e.Directed != nil {
		m["directed"] = *e.Directed
	}
	if len(e.Relations) != 0 {
		rels := make([]interface{}, 0, len(e.Relations))
		for _, r := range e.Relations {
			rels = append(rels, field(r.Name, r.Datatype))
		}
		m["relations"] = rels
	}
	return m
}

func field(name string, dt TypeName) map[string]interface{} {
	m := make(map[string]interface{}, 2)
	if name != "" {
		m["name"] = name
	}
	if dt != "" {
		m["datatype"] = string(dt)
	}
	return m
}
