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

// Package http serves PGDL conversions over HTTP.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pgdl/pgdl/internal/lru"
	"github.com/pgdl/pgdl/shacl"
)

// Config configures the conversion service.
type Config struct {
	// Timeout bounds a single conversion. Zero means no limit.
	Timeout time.Duration
	// MaxBody limits request bodies in bytes. Zero means no limit.
	MaxBody int64
	// Translator used for SHACL conversions. shacl.Default when nil.
	Translator *shacl.Translator
	// Turtle configures Turtle responses.
	Turtle shacl.TurtleOptions
	// CacheSize is the number of rendered responses kept in memory.
	// Zero disables the cache.
	CacheSize int
}

type API struct {
	config *Config
	cache  *lru.Cache[*response]
}

func (api *API) translator() *shacl.Translator {
	if api.config.Translator != nil {
		return api.config.Translator
	}
	return shacl.Default
}

func (api *API) contextForRequest(r *http.Request) (context.Context, func()) {
	ctx := r.Context()
	cancel := func() {}
	if api.config.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, api.config.Timeout)
	}
	return ctx, cancel
}

func jsonResponse(w http.ResponseWriter, code int, err interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(`{"error": `))
	data, _ := json.Marshal(fmt.Sprint(err))
	w.Write(data)
	w.Write([]byte(`}`))
}

// APIv1 registers conversion routes on r.
func (api *API) APIv1(r *httprouter.Router) {
	r.POST("/api/v1/shacl", CORS(LogRequest(api.ServeV1Shacl)))
	r.POST("/api/v1/pgdl", CORS(LogRequest(api.ServeV1Pgdl)))
	r.POST("/api/v1/graphql", CORS(LogRequest(api.ServeV1GraphQL)))
	r.POST("/api/v1/convert/:format", CORS(LogRequest(api.ServeV1Convert)))
	r.GET("/api/v1/formats", CORS(LogRequest(api.ServeV1Formats)))
}

// NewHandler returns the HTTP handler of the conversion service.
func NewHandler(cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{}
	}
	r := httprouter.New()
	api := &API{config: cfg}
	if cfg.CacheSize > 0 {
		api.cache = lru.New[*response](cfg.CacheSize)
	}
	r.OPTIONS("/*path", HandlePreflight)
	api.APIv1(r)
	r.GET("/health", HandleHealth)
	r.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}
