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

package mapper

import (
	"net/http"

	"dirpx.dev/dresults"
	"dirpx.dev/dresults/code"
	"google.golang.org/grpc/codes"
)

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpCode holds per-code HTTP entries for the code tier; seeded from
	// defaultHTTPCode unless dropCodeDefaults is set.
	httpCode map[code.Code]int
	// grpcCode holds per-code gRPC entries for the code tier.
	grpcCode map[code.Code]codes.Code

	// httpOverride holds exact per-code HTTP overrides (the highest tier).
	httpOverride map[code.Code]int
	// grpcOverride holds exact per-code gRPC overrides.
	grpcOverride map[code.Code]codes.Code

	// codeFn is the caller-supplied code strategy (spec's CodeToHttp
	// analog). It is partial: a false second return means "no opinion"
	// and resolution falls through to the tables below.
	codeFn func(code.Code) (int, bool)
	// grpcCodeFn is the gRPC counterpart of codeFn.
	grpcCodeFn func(code.Code) (codes.Code, bool)

	// statusFn is the caller-supplied status strategy. Unlike codeFn it
	// is total: when set it must answer for every status.
	statusFn func(dresults.Status) int
	// grpcStatusFn is the gRPC counterpart of statusFn.
	grpcStatusFn func(dresults.Status) codes.Code

	// httpStatus / grpcStatus hold the status-tier tables, seeded from
	// the library defaults and adjustable per status.
	httpStatus map[dresults.Status]int
	grpcStatus map[dresults.Status]codes.Code

	// dropCodeDefaults suppresses seeding of the built-in code tables,
	// reproducing a configuration where no code strategy is wired at all.
	dropCodeDefaults bool

	// global fallbacks used when even the status tables have no entry.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized to hold the
// built-in defaults.
func newBuilder() *builder {
	return &builder{
		httpCode: make(map[code.Code]int, len(defaultHTTPCode)),
		grpcCode: make(map[code.Code]codes.Code, len(defaultGRPCCode)),

		// overrides are usually few
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]codes.Code),

		httpStatus: make(map[dresults.Status]int, len(defaultHTTPStatus)),
		grpcStatus: make(map[dresults.Status]codes.Code, len(defaultGRPCStatus)),

		// hard fallbacks if a status was somehow never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
