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

// Package dct contains constants of the DCMI Metadata Terms vocabulary.
package dct

import "github.com/cayleygraph/quad/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://purl.org/dc/terms/`
	Prefix = `dct:`
)

const (
	Title       = NS + `title`
	Creator     = NS + `creator`
	Subject     = NS + `subject`
	Description = NS + `description`
	Publisher   = NS + `publisher`
	Contributor = NS + `contributor`
	Date        = NS + `date`
	Type        = NS + `type`
	Format      = NS + `format`
	Identifier  = NS + `identifier`
	Source      = NS + `source`
	Language    = NS + `language`
	Relation    = NS + `relation`
	Coverage    = NS + `coverage`
	Rights      = NS + `rights`

	// Date of creation of the resource.
	Created = NS + `created`
	// Date of formal issuance of the resource.
	Issued = NS + `issued`
	// Date on which the resource was changed.
	Modified = NS + `modified`
)
