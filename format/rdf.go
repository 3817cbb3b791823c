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
	"io"

	"github.com/pgdl/pgdl/pgdl"
	"github.com/pgdl/pgdl/shacl"
)

func init() {
	turtle := func(ctx context.Context, w io.Writer, src *Source) (pgdl.Diagnostics, error) {
		g, diags := src.translator().ToShacl(src.Doc)
		return diags, shacl.WriteTurtle(ctx, w, g, src.Turtle)
	}
	RegisterFormat(Format{
		Name:  "turtle",
		Ext:   []string{".ttl"},
		Mime:  []string{"text/turtle"},
		Graph: true,
		Write: turtle,
	})
	RegisterFormat(Format{
		Name:  "shacl",
		Graph: true,
		Write: turtle,
	})
	RegisterFormat(Format{
		Name:  "jsonld",
		Ext:   []string{".jsonld"},
		Mime:  []string{"application/ld+json"},
		Graph: true,
		Write: func(_ context.Context, w io.Writer, src *Source) (pgdl.Diagnostics, error) {
			g, diags := src.translator().ToShacl(src.Doc)
			return diags, shacl.WriteJSONLD(w, g, src.Turtle.Prefixes)
		},
	})
	for _, f := range []struct {
		name, quadFormat, ext, mime string
	}{
		{"nquads", "nquads", ".nq", "application/n-quads"},
		{"graphml", "graphml", ".graphml", ""},
		{"graphviz", "graphviz", ".gv", ""},
	} {
		quadFormat := f.quadFormat
		fm := Format{
			Name:  f.name,
			Ext:   []string{f.ext},
			Graph: true,
			Write: func(_ context.Context, w io.Writer, src *Source) (pgdl.Diagnostics, error) {
				g, diags := src.translator().ToShacl(src.Doc)
				return diags, shacl.WriteQuads(w, g, quadFormat)
			},
		}
		if f.mime != "" {
			fm.Mime = []string{f.mime}
		}
		RegisterFormat(fm)
	}
}
