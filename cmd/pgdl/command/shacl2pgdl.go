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

package command

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgdl/pgdl/format"
	"github.com/pgdl/pgdl/internal"
	"github.com/pgdl/pgdl/shacl"
)

func NewShacl2PgdlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shacl2pgdl FILE",
		Short: "Convert a PG-SHACL Turtle graph to a PGDL document.",
		Long: "Convert a PG-SHACL Turtle graph to a PGDL document, printed as YAML\n" +
			"unless --to says otherwise. Shapes keep the order of the graph.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := currentConfig()
			if err != nil {
				return err
			}
			formats, out, err := outputFormats(cmd, "yaml")
			if err != nil {
				return err
			}
			rc, err := internal.Open(args[0])
			if err != nil {
				return err
			}
			g, err := shacl.ReadTurtle(contextOf(cmd), rc)
			rc.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			tr := cfg.Translator()
			doc, diags := tr.ToPgdl(g)

			var buf bytes.Buffer
			more, err := render(cmd, &buf, formats, &format.Source{
				Doc:        doc,
				Translator: tr,
				Turtle:     cfg.Turtle,
			})
			if err != nil {
				return err
			}
			return flush(cmd, cfg, out, &buf, append(diags, more...))
		},
	}
	registerOutputFlags(cmd.Flags())
	return cmd
}
