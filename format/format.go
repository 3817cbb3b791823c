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

// Package format holds the registry of output formats a PGDL document can
// be rendered to.
package format

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/pgdl/pgdl/pgdl"
	"github.com/pgdl/pgdl/shacl"
)

// Source is the input of a format writer.
type Source struct {
	// Doc is the parsed document.
	Doc *pgdl.Document
	// Raw is the original PGDL text, if the document was read from YAML.
	Raw []byte
	// Translator converts Doc for RDF formats. shacl.Default when nil.
	Translator *shacl.Translator
	// Turtle configures Turtle output.
	Turtle shacl.TurtleOptions
}

func (s *Source) translator() *shacl.Translator {
	if s.Translator != nil {
		return s.Translator
	}
	return shacl.Default
}

// Format is a description of an output format.
type Format struct {
	// Name is a short format name used as identifier for RegisterFormat.
	Name string
	// Ext is a list of file extensions for the format.
	Ext []string
	// Mime is a list of MIME (content) types of the format. Can be used in HTTP responses.
	Mime []string
	// Binary is set to true if format is not human-readable.
	Binary bool
	// Graph is set to true if the format renders the SHACL graph of the document.
	Graph bool
	// Write renders a document. Recoverable problems are returned as diagnostics.
	Write func(ctx context.Context, w io.Writer, src *Source) (pgdl.Diagnostics, error)
}

var (
	formatsByName = make(map[string]*Format)
	formatsByExt  = make(map[string]*Format)
)

// RegisterFormat registers a new output format.
func RegisterFormat(f Format) {
	if _, ok := formatsByName[f.Name]; ok {
		panic(fmt.Errorf("format %s is already registered", f.Name))
	}
	formatsByName[f.Name] = &f
	for _, e := range f.Ext {
		if sf, ok := formatsByExt[e]; ok {
			panic(fmt.Errorf("format %s is already registered with extension %s", sf.Name, e))
		}
		formatsByExt[e] = &f
	}
}

// ByName returns a registered format by its name.
// Will return nil if format is not found.
func ByName(name string) *Format {
	return formatsByName[name]
}

// ByExt returns a registered format by its file extension.
// Will return nil if format is not found.
func ByExt(ext string) *Format {
	return formatsByExt[ext]
}

// Formats returns all registered formats, sorted by name.
func Formats() []Format {
	list := make([]Format, 0, len(formatsByName))
	for _, f := range formatsByName {
		list = append(list, *f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Names returns the names of all registered formats, sorted.
func Names() []string {
	var names []string
	for _, f := range Formats() {
		names = append(names, f.Name)
	}
	return names
}

// Write renders src in the named format.
func Write(ctx context.Context, w io.Writer, name string, src *Source) (pgdl.Diagnostics, error) {
	f := ByName(name)
	if f == nil {
		return nil, fmt.Errorf("unsupported format: %q", name)
	}
	return f.Write(ctx, w, src)
}
