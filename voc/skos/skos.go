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

// Package skos contains the lexical and documentation properties of SKOS.
package skos

import "github.com/cayleygraph/quad/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2004/02/skos/core#`
	Prefix = `skos:`
)

const (
	AltLabel      = NS + `altLabel`
	ChangeNote    = NS + `changeNote`
	Definition    = NS + `definition`
	EditorialNote = NS + `editorialNote`
	Example       = NS + `example`
	HiddenLabel   = NS + `hiddenLabel`
	HistoryNote   = NS + `historyNote`
	Note          = NS + `note`
	PrefLabel     = NS + `prefLabel`
	ScopeNote     = NS + `scopeNote`
)
