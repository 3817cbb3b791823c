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
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pgdl/pgdl/clog"
	"github.com/pgdl/pgdl/format"
	"github.com/pgdl/pgdl/internal"
	"github.com/pgdl/pgdl/pgdl"
)

func registerOutputFlags(fs *pflag.FlagSet) {
	fs.StringSliceP(flagTo, "t", nil, "output formats ("+strings.Join(format.Names(), ", ")+")")
	fs.StringP(flagOutput, "o", "", `output file, "-" for stdout; ".gz" compresses`)
}

// outputFormats resolves the formats to render: the --to flag, else the
// extension of the output file, else def.
func outputFormats(cmd *cobra.Command, def string) ([]*format.Format, string, error) {
	names, _ := cmd.Flags().GetStringSlice(flagTo)
	out, _ := cmd.Flags().GetString(flagOutput)
	if len(names) == 0 {
		if f := format.ByExt(filepath.Ext(internal.OutputName(out))); out != "" && f != nil {
			names = []string{f.Name}
		} else {
			names = []string{def}
		}
	}
	if out != "" && out != "-" && len(names) > 1 {
		return nil, "", errors.New("only one format can be written to a file")
	}
	var list []*format.Format
	for _, name := range names {
		f := format.ByName(name)
		if f == nil {
			return nil, "", fmt.Errorf("unsupported format: %q", name)
		}
		list = append(list, f)
	}
	return list, out, nil
}

func writeOutput(cmd *cobra.Command, out string, data []byte) error {
	w, err := internal.Create(out, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	if out != "" && out != "-" {
		clog.Infof("%d bytes were written to %q", len(data), out)
	}
	return nil
}

// render writes src in every format to buf and collects the diagnostics.
func render(cmd *cobra.Command, buf *bytes.Buffer, formats []*format.Format, src *format.Source) (pgdl.Diagnostics, error) {
	var diags pgdl.Diagnostics
	for _, f := range formats {
		d, err := f.Write(contextOf(cmd), buf, src)
		diags = append(diags, d...)
		if err != nil {
			return diags, fmt.Errorf("%s: %v", f.Name, err)
		}
	}
	return diags, nil
}

func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert FILE",
		Aliases: []string{"conv"},
		Short:   "Convert a PGDL document to other formats.",
		Long: "Convert a PGDL document to one or more formats. FILE can be a path,\n" +
			`an http(s) URL or "-" for stdin; gzip and bzip2 input is unpacked.` + "\n" +
			"Diagnostics are printed to stderr as lines starting with \"# \".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := currentConfig()
			if err != nil {
				return err
			}
			formats, out, err := outputFormats(cmd, cfg.Format)
			if err != nil {
				return err
			}
			data, err := internal.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := pgdl.ParseBytes(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			var buf bytes.Buffer
			diags, err := render(cmd, &buf, formats, &format.Source{
				Doc:        doc,
				Raw:        data,
				Translator: cfg.Translator(),
				Turtle:     cfg.Turtle,
			})
			if err != nil {
				return err
			}
			return flush(cmd, cfg, out, &buf, diags)
		},
	}
	registerOutputFlags(cmd.Flags())
	return cmd
}

func NewMetadataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metadata FILE",
		Short: "Print the creation date and creator of a PGDL document.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := internal.Open(args[0])
			if err != nil {
				return err
			}
			defer rc.Close()
			doc, err := pgdl.Parse(rc)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return format.WriteMetadata(cmd.OutOrStdout(), doc)
		},
	}
}

func NewFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported output formats.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range format.Formats() {
				var notes []string
				if len(f.Ext) != 0 {
					notes = append(notes, strings.Join(f.Ext, " "))
				}
				if f.Graph {
					notes = append(notes, "shacl graph")
				}
				if f.Binary {
					notes = append(notes, "binary")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", f.Name, strings.Join(notes, ", "))
			}
			return nil
		},
	}
}
