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

package format

import (
	"context"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/pgdl/pgdl/pgdl"
)

func init() {
	RegisterFormat(Format{
		Name: "xml",
		Ext:  []string{".xml"},
		Mime: []string{"application/xml"},
		Write: func(_ context.Context, w io.Writer, src *Source) (pgdl.Diagnostics, error) {
			return nil, WriteXML(w, src.Doc, false)
		},
	})
	RegisterFormat(Format{
		Name: "prettyxml",
		Write: func(_ context.Context, w io.Writer, src *Source) (pgdl.Diagnostics, error) {
			return nil, WriteXML(w, src.Doc, true)
		},
	})
}

// WriteXML mirrors the document as XML under a pgdl root element. Maps
// become elements named by their keys and list entries become item elements.
// No type attributes are written.
func WriteXML(w io.Writer, doc *pgdl.Document, indent bool) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	x := &xmlWriter{enc: xml.NewEncoder(w)}
	if indent {
		x.enc.Indent("", "  ")
	}
	x.elem("pgdl", func() {
		if len(doc.Metadata) != 0 {
			x.elem("metadata", func() {
				for _, k := range doc.Metadata.Terms() {
					v := doc.Metadata[k]
					if s, ok := v.Scalar(); ok {
						x.text(k, s)
						continue
					}
					x.elem(k, func() {
						for _, s := range v {
							x.text("item", s)
						}
					})
				}
			})
		}
		if len(doc.Shapes) != 0 {
			x.elem("shapes", func() {
				for i := range doc.Shapes {
					x.elem("item", func() { x.shape(&doc.Shapes[i]) })
				}
			})
		}
	})
	if x.err != nil {
		return x.err
	}
	if err := x.enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

type xmlWriter struct {
	enc *xml.Encoder
	err error
}

func (x *xmlWriter) token(t xml.Token) {
	if x.err == nil {
		x.err = x.enc.EncodeToken(t)
	}
}

// start opens an element. Names that are not valid XML names are written as
// a key element carrying the original name in an attribute.
func (x *xmlWriter) start(name string) xml.StartElement {
	st := xml.StartElement{Name: xml.Name{Local: name}}
	if !isXMLName(name) {
		st = xml.StartElement{
			Name: xml.Name{Local: "key"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "name"}, Value: name}},
		}
	}
	x.token(st)
	return st
}

func (x *xmlWriter) elem(name string, body func()) {
	st := x.start(name)
	body()
	x.token(st.End())
}

func (x *xmlWriter) text(name, value string) {
	st := x.start(name)
	x.token(xml.CharData(value))
	x.token(st.End())
}

func (x *xmlWriter) field(name string, dt pgdl.TypeName) {
	if name != "" {
		x.text("name", name)
	}
	if dt != "" {
		x.text("datatype", string(dt))
	}
}

func (x *xmlWriter) shape(s *pgdl.Shape) {
	if s.TargetNode != "" {
		x.text("targetNode", s.TargetNode)
	}
	if len(s.Properties) != 0 {
		x.elem("properties", func() {
			for _, p := range s.Properties {
				x.elem("item", func() { x.field(p.Name, p.Datatype) })
			}
		})
	}
	if len(s.Edges) != 0 {
		x.elem("edges", func() {
			for i := range s.Edges {
				x.elem("item", func() { x.edge(&s.Edges[i]) })
			}
		})
	}
}

func (x *xmlWriter) edge(e *pgdl.Edge) {
	if e.Name != "" {
		x.text("name", e.Name)
	}
	if e.Node != "" {
		x.text("node", e.Node)
	}
	if e.Directed != nil {
		x.text("directed", strconv.FormatBool(*e.Directed))
	}
	if len(e.Relations) != 0 {
		x.elem("relations", func() {
			for _, r := range e.Relations {
				x.elem("item", func() { x.field(r.Name, r.Datatype) })
			}
		})
	}
}

func isXMLName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || r == '.' || r >= '0' && r <= '9'):
		default:
			return false
		}
	}
	return len(s) < 3 || !(s[0]|0x20 == 'x' && s[1]|0x20 == 'm' && s[2]|0x20 == 'l')
}
