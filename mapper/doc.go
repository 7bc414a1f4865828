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

// Package mapper provides deterministic, immutable mappings from outcome
// statuses (dirpx.dev/dresults) and optional domain codes
// (dirpx.dev/dresults/code) to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// In dirpx an outcome is expressed in two parts:
//
//  1. a Status (Completed, Cancelled, Failed, Error),
//  2. an optional, more specific Code (e.g. code.NotFound, code.Created).
//
// Transport layers (HTTP handlers, REST gateways, gRPC servers) need to
// turn this pair into concrete status codes. Package mapper does that in
// a way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per code or status;
//   - strategy-friendly — callers can plug in their own code and status
//     resolution functions;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order (code tiers only for
// outcomes that carry a code):
//
//  1. exact override for the code;
//  2. caller code strategy — partial: a false return means "no opinion"
//     and falls through, which is distinct from "strategy absent";
//  3. per-code table (library defaults, user-adjusted);
//  4. caller status strategy — total: when set it answers for every status;
//  5. per-status table (Failed=400, Cancelled=409, Error=500, Completed=200);
//  6. global fallback (500 / codes.Internal).
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPCodeOverride(code.NotSupported, http.StatusNotImplemented),
//	    mapper.WithCodeResolver(func(c code.Code) (int, bool) {
//	        if c == "TenantSuspended" {
//	            return http.StatusPaymentRequired, true
//	        }
//	        return 0, false
//	    }),
//	)
//	if err != nil {
//	    // invalid code or status value
//	}
//
//	st := m.Status(dresults.NotFound())
//	// st.HTTP == 404, st.GRPC == codes.NotFound
//
// Default() returns a shared snapshot with only the library defaults.
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace
// of how a particular outcome was resolved, including which tier matched.
// This is intended for inspection and logging, not for stable machine
// parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's maps. This
// makes it safe to share a single instance across handlers, goroutines,
// and requests; resolving is pure and re-entrant, so the pipeline may
// consult the mapper several times for one outcome.
package mapper
