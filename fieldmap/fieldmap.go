/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package fieldmap

import (
	"regexp"
	"strings"

	"dirpx.dev/dresults"
	"dirpx.dev/dresults/apis"
)

const (
	// fieldFmt is the canonical pattern for the "field: message" textual
	// convention.
	//
	// The pattern is intentionally kept in a separate constant so that:
	//   - it can be referenced from tests;
	//   - it is obvious that the regexp below is derived from this exact
	//     pattern.
	//
	// Pattern breakdown:
	//
	//	^\s*           - optional leading whitespace;
	//	segment        - [A-Za-z0-9_]+ optionally followed by one or more
	//	                 bracketed numeric indexes, e.g. "addresses[0]";
	//	(\.segment)*   - further dot-separated segments, e.g. ".line1";
	//	\s*:           - optional whitespace, then the separating colon;
	//	(.*)           - the remainder is the error text (trimmed later).
	//
	// Examples that match:
	//
	//	"name: required"
	//	"user.name: too short"
	//	"addresses[0].line1: missing"
	//
	// Examples that DO NOT match:
	//
	//	": required"        (empty field token)
	//	"garbage"           (no colon)
	//	"first name: x"     (space inside the field token)
	fieldFmt = `^\s*([A-Za-z0-9_]+(?:\[[0-9]+\])*(?:\.[A-Za-z0-9_]+(?:\[[0-9]+\])*)*)\s*:(.*)$`
)

// fieldRe is the compiled pattern for the textual convention. Compiled
// once so repeated mapping calls do not pay the compilation cost.
var fieldRe = regexp.MustCompile(fieldFmt)

// Ensure the default mapper satisfies the public contract.
var _ apis.FieldMapper = Mapper{}

// Mapper is the default, stateless validation field mapper.
//
// It converts an ordered message list into a field -> errors dictionary
// using two rules, tried in order per message:
//
//  1. the FieldKey metadata entry, when it holds a non-blank string: the
//     entry's value is the field key verbatim and the message content
//     (trimmed) is the error text;
//  2. the "field: message" textual convention, matched by fieldFmt, with
//     both sides trimmed.
//
// Messages matching neither rule are silently dropped: only messages
// expressible as field-level issues surface as validation errors; the
// rest are absorbed into the broader problem payload.
//
// Mapping is pure and deterministic. The zero value is ready to use.
type Mapper struct{}

// New returns a fresh default mapper. The problem builder calls this as
// the last resort of its per-call mapper resolution (request-scoped
// instance, then options-configured mapper, then New()).
func New() Mapper { return Mapper{} }

// Map extracts field-level validation errors from messages.
//
// Aggregation is case-insensitive on the field name: messages for "name"
// and "Name" land in one ordered list, keyed by the first-seen casing.
// Entries whose field or error text trims to nothing are discarded, and
// the returned dictionary is never nil.
func (Mapper) Map(msgs []dresults.Message) map[string][]string {
	// buckets keeps per-field error lists in encounter order; keys of
	// the index map are lowercased field names.
	type bucket struct {
		key  string
		errs []string
	}
	var order []*bucket
	index := make(map[string]*bucket)

	add := func(field, text string) {
		if field == "" || strings.TrimSpace(field) == "" || text == "" {
			return
		}
		lk := strings.ToLower(field)
		b, ok := index[lk]
		if !ok {
			b = &bucket{key: field}
			index[lk] = b
			order = append(order, b)
		}
		b.errs = append(b.errs, text)
	}

	for _, m := range msgs {
		// Rule 1: explicit field metadata wins over the textual form,
		// even when the content also looks like "field: message".
		if field, ok := m.Field(); ok {
			add(field, strings.TrimSpace(m.Content()))
			continue
		}

		// Rule 2: the "field: message" textual convention.
		if sub := fieldRe.FindStringSubmatch(m.Content()); sub != nil {
			add(sub[1], strings.TrimSpace(sub[2]))
			continue
		}

		// Neither rule matched: the message contributes no field entry.
	}

	out := make(map[string][]string, len(order))
	for _, b := range order {
		if len(b.errs) == 0 {
			continue
		}
		out[b.key] = b.errs
	}
	return out
}
