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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type gzipFile struct {
	*gzip.Writer
	f *os.File
}

func (w gzipFile) Close() error {
	err := w.Writer.Close()
	if err2 := w.f.Close(); err == nil {
		err = err2
	}
	return err
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Create opens an output file. "-" or an empty name selects stdout, and a
// ".gz" extension compresses the output.
func Create(outFile string, stdout io.Writer) (io.WriteCloser, error) {
	if outFile == "" || outFile == "-" {
		return nopWriteCloser{stdout}, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, fmt.Errorf("could not open file %q: %v", outFile, err)
	}
	if filepath.Ext(outFile) == ".gz" {
		return gzipFile{Writer: gzip.NewWriter(f), f: f}, nil
	}
	return f, nil
}

// OutputName strips a trailing ".gz" so that the format of out.ttl.gz is
// detected from ".ttl".
func OutputName(outFile string) string {
	if filepath.Ext(outFile) == ".gz" {
		return outFile[:len(outFile)-len(".gz")]
	}
	return outFile
}
