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

package shacl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/jsonld"
	"github.com/piprate/json-gold/ld"

	_ "github.com/cayleygraph/quad/dot"
	_ "github.com/cayleygraph/quad/graphml"
	_ "github.com/cayleygraph/quad/nquads"

	"github.com/pgdl/pgdl/voc"
)

// WriteQuads writes the graph in one of the quad formats registered in
// github.com/cayleygraph/quad (nquads, jsonld, graphml, graphviz, ...).
func WriteQuads(w io.Writer, g *Graph, name string) error {
	f := quad.FormatByName(name)
	if f == nil {
		return fmt.Errorf("unsupported quad format: %q", name)
	} else if f.Writer == nil {
		return fmt.Errorf("encoding in %s format is not supported", name)
	}
	qw := f.Writer(w)
	defer qw.Close()

	if _, err := quad.Copy(qw, g.Reader()); err != nil {
		return err
	}
	return qw.Close()
}

// WriteJSONLD writes the graph as a compacted JSON-LD document whose context
// maps prefixes to namespaces. A nil map uses voc.Prefixes.
func WriteJSONLD(w io.Writer, g *Graph, prefixes map[string]string) error {
	if prefixes == nil {
		prefixes = voc.Prefixes()
	}
	ds, err := dataset(g)
	if err != nil {
		return err
	}
	opts := ld.NewJsonLdOptions("")
	doc, err := ld.NewJsonLdApi().FromRDF(ds, opts)
	if err != nil {
		return err
	}
	ctx := make(map[string]interface{}, len(prefixes))
	for k, v := range prefixes {
		ctx[k] = v
	}
	out, err := ld.NewJsonLdProcessor().Compact(doc, map[string]interface{}{"@context": ctx}, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func dataset(g *Graph) (*ld.RDFDataset, error) {
	const graph = "@default"
	d := ld.NewRDFDataset()
	for _, q := range g.quads {
		s, err := jsonld.ToNode(q.Subject)
		if err != nil {
			return nil, err
		}
		p, err := jsonld.ToNode(q.Predicate)
		if err != nil {
			return nil, err
		}
		o, err := jsonld.ToNode(q.Object)
		if err != nil {
			return nil, err
		}
		d.Graphs[graph] = append(d.Graphs[graph], ld.NewQuad(s, p, o, graph))
	}
	return d, nil
}
