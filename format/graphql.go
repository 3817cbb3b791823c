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

	"github.com/pgdl/pgdl/graphql"
	"github.com/pgdl/pgdl/pgdl"
)

func init() {
	RegisterFormat(Format{
		Name: "graphql",
		Ext:  []string{".graphql", ".gql"},
		Mime: []string{"application/graphql"},
		Write: func(_ context.Context, w io.Writer, src *Source) (pgdl.Diagnostics, error) {
			return graphql.Generate(w, src.Doc)
		},
	})
}
