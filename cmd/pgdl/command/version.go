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
	"fmt"

	"github.com/spf13/cobra"
)

// Build information, set by the main package.
var (
	Version   = "snapshot"
	GitHash   string
	BuildDate string
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "pgdl %s\n", Version)
			if GitHash != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "git commit: %s\n", GitHash)
			}
			if BuildDate != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", BuildDate)
			}
			return nil
		},
	}
}
