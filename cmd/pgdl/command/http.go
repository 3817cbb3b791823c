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
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pgdl/pgdl/clog"
	"github.com/pgdl/pgdl/internal/config"
	chttp "github.com/pgdl/pgdl/internal/http"
)

func NewHttpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the conversion API on the given host and port.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := currentConfig()
			if err != nil {
				return err
			}
			h := chttp.NewHandler(&chttp.Config{
				Timeout:    cfg.HTTP.Timeout,
				MaxBody:    cfg.HTTP.MaxBody,
				Translator: cfg.Translator(),
				Turtle:     cfg.Turtle,
				CacheSize:  cfg.HTTP.CacheSize,
			})
			host := cfg.HTTP.Host
			phost := host
			if name, port, err := net.SplitHostPort(host); err == nil && name == "" {
				phost = net.JoinHostPort("localhost", port)
			}
			clog.Infof("listening on %s, api at http://%s/api/v1/", host, phost)
			srv := &http.Server{
				Addr:              host,
				Handler:           h,
				ReadHeaderTimeout: 10 * time.Second,
			}
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().String("host", config.DefaultHost, "host:port to listen on")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout, "elapsed time until an individual conversion times out")
	cmd.Flags().Int64("max-body", config.DefaultMaxBody, "maximum size of a request body in bytes")
	viper.BindPFlag(config.KeyHTTPHost, cmd.Flags().Lookup("host"))
	viper.BindPFlag(config.KeyHTTPTimeout, cmd.Flags().Lookup("timeout"))
	cmd.Flags().Int("cache", config.DefaultCache, "number of converted responses to cache, 0 disables caching")
	viper.BindPFlag(config.KeyHTTPMaxBody, cmd.Flags().Lookup("max-body"))
	viper.BindPFlag(config.KeyHTTPCacheSize, cmd.Flags().Lookup("cache"))
	return cmd
}
