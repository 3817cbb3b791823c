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

// Package command holds the subcommands of the pgdl tool.
package command

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pgdl/pgdl/clog"
	"github.com/pgdl/pgdl/internal/config"
	"github.com/pgdl/pgdl/pgdl"
)

const (
	flagConfig    = "config"
	flagQuiet     = "quiet"
	flagBase      = "base"
	flagNamespace = "namespace"
	flagTo        = "to"
	flagOutput    = "output"
)

// NewRootCmd returns the pgdl command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	config.SetDefaults(viper.GetViper())

	root := &cobra.Command{
		Use:   "pgdl",
		Short: "Translate PGDL property graph schemas to SHACL, GraphQL and other formats.",
		Long: "pgdl reads PGDL documents (YAML property graph schemas) and renders them as\n" +
			"PG-SHACL Turtle, GraphQL SDL, JSON, XML, TOML, CBOR and more. It also\n" +
			"converts PG-SHACL graphs back to PGDL.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog complains when flags were never parsed
			if !flag.Parsed() {
				flag.CommandLine.Parse([]string{})
			}
			file, _ := cmd.Flags().GetString(flagConfig)
			cfg, err := config.Load(viper.GetViper(), file)
			if err != nil {
				return err
			}
			if f := viper.ConfigFileUsed(); f != "" {
				clog.Infof("using config file %q", f)
			}
			if clog.V(1) {
				clog.Infof("output format %q, namespace %q", cfg.Format, cfg.Namespace)
			}
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "path to an explicit configuration file")
	pf.BoolP(flagQuiet, "q", false, "do not print diagnostics")
	pf.String(flagBase, "", "base IRI written to Turtle output")
	pf.String(flagNamespace, "", "namespace of schema element IRIs, urn:pg:1.0: when empty")
	viper.BindPFlag(config.KeyQuiet, pf.Lookup(flagQuiet))
	viper.BindPFlag(config.KeyTurtleBase, pf.Lookup(flagBase))
	viper.BindPFlag(config.KeyNamespace, pf.Lookup(flagNamespace))

	root.AddCommand(
		NewConvertCmd(),
		NewShacl2PgdlCmd(),
		NewMetadataCmd(),
		NewFormatsCmd(),
		NewHttpCmd(),
		NewHealthCmd(),
		NewVersionCmd(),
	)
	return root
}

func currentConfig() (*config.Config, error) {
	return config.From(viper.GetViper())
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// printDiagnostics writes diagnostics as comment lines.
func printDiagnostics(w io.Writer, diags pgdl.Diagnostics, quiet bool) {
	if quiet {
		return
	}
	for _, d := range diags {
		fmt.Fprintf(w, "# %s\n", d)
	}
}

// flush prints the diagnostics of a conversion, then its buffered output.
func flush(cmd *cobra.Command, cfg *config.Config, out string, buf *bytes.Buffer, diags pgdl.Diagnostics) error {
	printDiagnostics(cmd.ErrOrStderr(), diags, cfg.Quiet)
	return writeOutput(cmd, out, buf.Bytes())
}
