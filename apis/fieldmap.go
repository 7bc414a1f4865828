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

package apis

import "dirpx.dev/dresults"

// FieldMapper converts an ordered message list into a field-name ->
// error-list dictionary for validation-shaped problem payloads.
//
// Contract:
//   - pure and deterministic: the same input always yields the same
//     dictionary, and calling Map must have no side effects;
//   - never panics and never returns nil: inputs with no mappable
//     messages yield an empty dictionary;
//   - aggregation across messages is case-insensitive on the field name,
//     but the first-seen casing is preserved as the dictionary key.
//
// The default implementation lives in dresults/fieldmap. Hosts may
// register their own (for example a request-scoped mapper carrying
// localization state); the problem builder resolves the mapper per call
// as: request-scoped instance, then the one configured on the options,
// then a fresh default.
type FieldMapper interface {
	// Map extracts field-level validation errors from messages.
	Map(msgs []dresults.Message) map[string][]string
}
