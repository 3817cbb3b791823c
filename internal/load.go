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

package internal

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pgdl/pgdl/clog"
	"github.com/pgdl/pgdl/internal/decompressor"
)

type readCloser struct {
	io.Reader
	io.Closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open opens a schema file for reading. The path can be "-" for stdin, a
// local path, a file:// URL or an http(s) URL. Compressed content is
// unpacked on the fly.
func Open(path string) (io.ReadCloser, error) {
	var rc io.ReadCloser
	if path == "-" {
		rc = readCloser{Reader: os.Stdin, Closer: nopCloser{}}
	} else if u, err := url.Parse(path); err != nil || u.Scheme == "file" || u.Scheme == "" || len(u.Scheme) == 1 {
		// Don't alter relative URL path or non-URL path parameter.
		// Single-letter schemes are Windows drive letters.
		if err == nil && u.Scheme == "file" {
			// Recovery heuristic for mistyping "file://path/to/file".
			path = filepath.Join(u.Host, u.Path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open file %q: %v", path, err)
		}
		rc = f
	} else {
		res, err := http.Get(path)
		if err != nil {
			return nil, fmt.Errorf("could not get resource <%s>: %v", u, err)
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("could not get resource <%s>: %s", u, res.Status)
		}
		rc = res.Body
	}
	r, err := decompressor.New(rc)
	if err != nil {
		rc.Close()
		return nil, err
	}
	return readCloser{Reader: r, Closer: rc}, nil
}

// ReadFile reads the whole content of a schema file opened with Open.
func ReadFile(path string) ([]byte, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %v", path, err)
	}
	if clog.V(2) {
		clog.Infof("read %d bytes from %q", len(data), path)
	}
	return data, nil
}
