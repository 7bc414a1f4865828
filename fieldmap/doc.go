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

// Package fieldmap implements the default heuristic that turns a
// Result's messages into a field -> errors dictionary for
// validation-shaped problem payloads.
//
// A message can address a field in one of two ways:
//
//   - the dresults.FieldKey metadata entry ("field"), which wins
//     unconditionally when present with a non-blank string value;
//   - the "field: message" textual convention, where the field token may
//     contain letters, digits, underscores, dots and numeric bracket
//     indexes ("user.name", "addresses[0].line1").
//
// Messages matching neither form are deliberately dropped by the mapper:
// they are not field-level validation issues and remain visible through
// the surrounding problem payload instead.
//
// Hosts with richer needs (localization, field renaming) can implement
// apis.FieldMapper themselves and register the implementation on the
// options or per request; see dresults/problem for the resolution order.
package fieldmap
