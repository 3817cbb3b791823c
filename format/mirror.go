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
	"encoding/json"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/pretty"

	"github.com/pgdl/pgdl/pgdl"
)

func init() {
	RegisterFormat(Format{
		Name: "json",
		Ext:  []string{".json"},
		Mime: []string{"application/json"},
		Write: func(_ context.Context, w io.Writer, src *Source) (pgdl.Diagnostics, error) {
			data, err := json.Marshal(src.Doc)
			if err != nil {
				return nil, err
			}
			_, err = w.Write(append(data, '\n'))
			return nil, err
		},
	})
	RegisterFormat(Format{
		Name: "prettyjson",
		Write: func(_ context.Context, w io.Writer, src *Source) (pgdl.Diagnostics, error) {
			data, err := json.Marshal(src.Doc)
			if err != nil {
				return nil, err
			}
			_, err = w.Write(pretty.PrettyOptions(data, &pretty.Options{Indent: "  ", SortKeys: true}))
			return nil, err
		},
	})
	RegisterFormat(Format{
		Name: "yaml",
		Ext:  []string{".yaml", ".yml"},
		Mime: []string{"application/yaml"},
		Write: func(_ context.Context, w io.Writer, src *Source) (pgdl.Diagnostics, error) {
			return nil, src.Doc.WriteYAML(w)
		},
	})
	RegisterFormat(Format{
		Name: "pgdl",
		Ext:  []string{".pgdl"},
		Write: func(_ context.Context, w io.Writer, src *Source) (pgdl.Diagnostics, error) {
			if src.Raw == nil {
				return nil, src.Doc.WriteYAML(w)
			}
			_, err := w.Write(src.Raw)
			return nil, err
		},
	})
	RegisterFormat(Format{
		Name: "toml",
		Ext:  []string{".toml"},
		Mime: []string{"application/toml"},
		Write: func(_ context.Context, w io.Writer, src *Source) (pgdl.Diagnostics, error) {
			return nil, toml.NewEncoder(w).Encode(src.Doc.Tree())
		},
	})
	RegisterFormat(Format{
		Name:   "cbor",
		Ext:    []string{".cbor"},
		Mime:   []string{"application/cbor"},
		Binary: true,
		Write: func(_ context.Context, w io.Writer, src *Source) (pgdl.Diagnostics, error) {
			em, err := cbor.CanonicalEncOptions().EncMode()
			if err != nil {
				return nil, err
			}
			return nil, em.NewEncoder(w).Encode(src.Doc.Tree())
		},
	})
}
