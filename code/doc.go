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

// Package code provides parsing and validation for dresults domain codes.
//
// A "code" is the optional, machine-readable refinement of a Result's
// status, such as "NotFound", "AlreadyExists" or "Created". Codes are
// meant to be:
//
//   - short and stable;
//   - transport-agnostic (the HTTP/gRPC projection lives in dresults/mapper);
//   - suitable for use in JSON payloads and for lookup in mapping tables.
//
// The package ships a catalog of well-known codes, but any non-blank
// string is a valid code: callers may define their own and register
// custom mappings for them.
//
// IMPORTANT: blank codes ("" or whitespace-only) are NOT allowed. The
// zero value Empty means "no code provided" and is only valid as the
// absent state on a Result.
package code
