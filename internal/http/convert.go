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

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pgdl/pgdl/clog"
	"github.com/pgdl/pgdl/format"
	"github.com/pgdl/pgdl/pgdl"
	"github.com/pgdl/pgdl/shacl"
)

const (
	headerDiagnostics = "X-Pgdl-Diagnostics"
	headerDiagnostic  = "X-Pgdl-Diagnostic"
)

const (
	dirToShacl   = "pgdl-to-shacl"
	dirToPgdl    = "shacl-to-pgdl"
	dirToGraphQL = "pgdl-to-graphql"
	dirConvert   = "pgdl-to-format"
)

func (api *API) readBody(w http.ResponseWriter, r *http.Request, dir string) ([]byte, bool) {
	defer r.Body.Close()
	body := io.Reader(r.Body)
	if api.config.MaxBody > 0 {
		body = http.MaxBytesReader(w, r.Body, api.config.MaxBody)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonResponse(w, http.StatusRequestEntityTooLarge, err)
		} else {
			jsonResponse(w, http.StatusBadRequest, err)
		}
		mConversions.WithLabelValues(dir, "error").Inc()
		return nil, false
	}
	mInputBytes.Observe(float64(len(data)))
	return data, true
}

// parseDocument parses a PGDL request body.
func (api *API) parseDocument(w http.ResponseWriter, data []byte, dir string) (*format.Source, bool) {
	doc, err := pgdl.ParseBytes(data)
	if err != nil {
		mConversions.WithLabelValues(dir, "error").Inc()
		jsonResponse(w, http.StatusBadRequest, err)
		return nil, false
	}
	return &format.Source{
		Doc:        doc,
		Raw:        data,
		Translator: api.translator(),
		Turtle:     api.config.Turtle,
	}, true
}

func formatParam(r *http.Request, def string) string {
	if name := r.URL.Query().Get("format"); name != "" {
		return name
	}
	return def
}

// render writes src in format f. The response is buffered so that a failed
// conversion never leaves a partial payload behind.
func (api *API) render(ctx context.Context, w http.ResponseWriter, dir, key string, f *format.Format, src *format.Source, extra pgdl.Diagnostics) {
	defer prometheus.NewTimer(mConversionSeconds.WithLabelValues(dir)).ObserveDuration()
	var buf bytes.Buffer
	diags, err := f.Write(ctx, &buf, src)
	diags = append(extra, diags...)
	observeDiagnostics(diags)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		mConversions.WithLabelValues(dir, "error").Inc()
		code := http.StatusInternalServerError
		if errors.Is(err, context.DeadlineExceeded) {
			code = http.StatusServiceUnavailable
		}
		clog.Errorf("%s to %s: %v", dir, f.Name, err)
		jsonResponse(w, code, err)
		return
	}
	mConversions.WithLabelValues(dir, "ok").Inc()
	res := &response{format: f, data: buf.Bytes(), diags: diags}
	if api.cache != nil {
		api.cache.Put(key, res)
	}
	res.write(w)
}

func setDiagnostics(h http.Header, diags pgdl.Diagnostics) {
	h.Set(headerDiagnostics, strconv.Itoa(len(diags)))
	for _, d := range diags {
		h.Add(headerDiagnostic, d.String())
	}
}

// ServeV1Shacl converts a PGDL document to its SHACL graph. The graph
// serialization is picked with the format query parameter, Turtle by default.
func (api *API) ServeV1Shacl(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := api.contextForRequest(r)
	defer cancel()
	f := format.ByName(formatParam(r, "turtle"))
	if f == nil || !f.Graph {
		mConversions.WithLabelValues(dirToShacl, "error").Inc()
		jsonResponse(w, http.StatusBadRequest, "Unknown graph format.")
		return
	}
	data, ok := api.readBody(w, r, dirToShacl)
	if !ok {
		return
	}
	key := cacheKey(dirToShacl, f.Name, data)
	if api.serveCached(w, key) {
		return
	}
	if src, ok := api.parseDocument(w, data, dirToShacl); ok {
		api.render(ctx, w, dirToShacl, key, f, src, nil)
	}
}

// ServeV1GraphQL converts a PGDL document to a GraphQL schema.
func (api *API) ServeV1GraphQL(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := api.contextForRequest(r)
	defer cancel()
	f := format.ByName("graphql")
	data, ok := api.readBody(w, r, dirToGraphQL)
	if !ok {
		return
	}
	key := cacheKey(dirToGraphQL, f.Name, data)
	if api.serveCached(w, key) {
		return
	}
	if src, ok := api.parseDocument(w, data, dirToGraphQL); ok {
		api.render(ctx, w, dirToGraphQL, key, f, src, nil)
	}
}

// ServeV1Convert renders a PGDL document in any registered format.
func (api *API) ServeV1Convert(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	ctx, cancel := api.contextForRequest(r)
	defer cancel()
	f := format.ByName(params.ByName("format"))
	if f == nil {
		mConversions.WithLabelValues(dirConvert, "error").Inc()
		jsonResponse(w, http.StatusBadRequest, "Unknown format.")
		return
	}
	data, ok := api.readBody(w, r, dirConvert)
	if !ok {
		return
	}
	key := cacheKey(dirConvert, f.Name, data)
	if api.serveCached(w, key) {
		return
	}
	if src, ok := api.parseDocument(w, data, dirConvert); ok {
		api.render(ctx, w, dirConvert, key, f, src, nil)
	}
}

// ServeV1Pgdl converts a Turtle SHACL graph back to a PGDL document,
// rendered as YAML unless the format query parameter says otherwise.
func (api *API) ServeV1Pgdl(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := api.contextForRequest(r)
	defer cancel()
	f := format.ByName(formatParam(r, "yaml"))
	if f == nil {
		mConversions.WithLabelValues(dirToPgdl, "error").Inc()
		jsonResponse(w, http.StatusBadRequest, "Unknown format.")
		return
	}
	data, ok := api.readBody(w, r, dirToPgdl)
	if !ok {
		return
	}
	key := cacheKey(dirToPgdl, f.Name, data)
	if api.serveCached(w, key) {
		return
	}
	start := time.Now()
	g, err := shacl.ReadTurtle(ctx, bytes.NewReader(data))
	if err != nil {
		mConversions.WithLabelValues(dirToPgdl, "error").Inc()
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	doc, diags := api.translator().ToPgdl(g)
	if clog.V(2) {
		clog.Infof("read %d triples in %v", g.Len(), time.Since(start))
	}
	api.render(ctx, w, dirToPgdl, key, f, &format.Source{
		Doc:        doc,
		Translator: api.translator(),
		Turtle:     api.config.Turtle,
	}, diags)
}

type formatInfo struct {
	Name   string   `json:"name"`
	Ext    []string `json:"ext,omitempty"`
	Mime   []string `json:"mime,omitempty"`
	Binary bool     `json:"binary,omitempty"`
	Graph  bool     `json:"graph,omitempty"`
}

// ServeV1Formats lists the registered output formats.
func (api *API) ServeV1Formats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var out []formatInfo
	for _, f := range format.Formats() {
		out = append(out, formatInfo{Name: f.Name, Ext: f.Ext, Mime: f.Mime, Binary: f.Binary, Graph: f.Graph})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
