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
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/pgdl/pgdl/format"
	"github.com/pgdl/pgdl/pgdl"
)

// response is a rendered conversion, kept in the response cache.
type response struct {
	format *format.Format
	data   []byte
	diags  pgdl.Diagnostics
}

func (res *response) write(w http.ResponseWriter) {
	setDiagnostics(w.Header(), res.diags)
	f := res.format
	switch {
	case len(f.Mime) > 0:
		w.Header().Set("Content-Type", f.Mime[0])
	case f.Binary:
		w.Header().Set("Content-Type", "application/octet-stream")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(res.data)
}

func cacheKey(dir, format string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(dir))
	h.Write([]byte{0})
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// serveCached writes the cached response of key, if any.
func (api *API) serveCached(w http.ResponseWriter, key string) bool {
	if api.cache == nil {
		return false
	}
	res, ok := api.cache.Get(key)
	if !ok {
		mCacheMiss.Inc()
		return false
	}
	mCacheHit.Inc()
	res.write(w)
	return true
}
