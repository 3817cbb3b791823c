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
	"fmt"
	"io"
	"strings"

	"github.com/pgdl/pgdl/pgdl"
)

func init() {
	RegisterFormat(Format{
		Name: "metadata",
		Write: func(_ context.Context, w io.Writer, src *Source) (pgdl.Diagnostics, error) {
			return nil, WriteMetadata(w, src.Doc)
		},
	})
}

// WriteMetadata prints the creation date and creator of a document, or an
// explicit line for each of them that is missing.
func WriteMetadata(w io.Writer, doc *pgdl.Document) error {
	lines := []struct {
		term, found, missing string
	}{
		{"created", "PGDL document data creation: ", "There is no information about PGDL data creation"},
		{"creator", "Document is created by ", "There is no information about PGDL creator"},
	}
	for _, l := range lines {
		v := doc.Metadata[l.term]
		var err error
		if len(v) == 0 {
			_, err = fmt.Fprintln(w, l.missing)
		} else {
			_, err = fmt.Fprintln(w, l.found+strings.Join(v, ", "))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
