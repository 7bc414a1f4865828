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

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/dresults"
)

// Mapper is an immutable, concurrency-safe view of the status resolution
// rules. It resolves an outcome (its optional domain code, falling back
// to its status) into transport statuses for HTTP and gRPC.
//
// Implementations must be pure and re-entrant: the pipeline calls a
// Mapper more than once for the same outcome (once to probe for an
// explicit failure code, once for final shaping) and expects identical
// answers.
type Mapper interface {
	// HTTPStatus returns the HTTP status code for the given outcome.
	// If no code-level rule applies (or the outcome carries no code),
	// the mapper must fall back to its status-level rule.
	HTTPStatus(res dresults.Result) int

	// GRPCStatus returns the gRPC status code for the given outcome,
	// using the same fallback logic as HTTPStatus.
	GRPCStatus(res dresults.Result) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the
	// same matching logic.
	Status(res dresults.Result) Status

	// CodeStatus reports the HTTP status the code tier alone would
	// assign, and whether it has an opinion at all. Outcomes without a
	// code, and codes no rule covers, yield (0, false). The response
	// shaper uses this probe to upgrade default success targets (e.g.
	// 200 -> 204 for a NoContent code) without letting the status tier
	// overrule an explicitly requested target.
	CodeStatus(res dresults.Result) (int, bool)

	// Explain returns a human-readable description of which rule
	// matched. Implementations may return an empty string in production
	// builds.
	Explain(res dresults.Result) string
}

// Status represents a resolved pair of transport statuses for a single
// outcome. It is the final output of the mapper and can be written
// directly to HTTP/gRPC.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
