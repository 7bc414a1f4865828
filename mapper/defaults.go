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

// defaultHTTPCode defines the library's built-in HTTP mappings for
// well-known result codes. These are only defaults: callers may replace
// or drop them at build time (WithHTTPCode / WithoutCodeDefaults).
//
// Codes absent from this table yield no opinion at the code tier, which
// makes resolution fall through to the status tier.
var defaultHTTPCode = map[code.Code]int{
	// 2xx — success refinements picked up by the response shaper.
	code.Created:   http.StatusCreated,   // A new entity was persisted.
	code.Updated:   http.StatusOK,        // An existing entity was modified.
	code.Deleted:   http.StatusOK,        // An entity was removed.
	code.NoContent: http.StatusNoContent, // Completed with nothing to return.

	// 4xx — client/domain issues.
	code.ValidationFailed:    http.StatusBadRequest,         // Input violates invariants.
	code.Unauthorized:        http.StatusUnauthorized,       // Caller is not authenticated.
	code.Forbidden:           http.StatusForbidden,          // Caller lacks privileges.
	code.NotFound:            http.StatusNotFound,           // Target entity does not exist.
	code.NotSupported:        http.StatusMethodNotAllowed,   // Operation not supported for the target.
	code.AlreadyExists:       http.StatusConflict,           // Creation clash with existing identity.
	code.ConcurrencyConflict: http.StatusConflict,           // Optimistic-concurrency clash.
	code.PreconditionFailed:  http.StatusPreconditionFailed, // Required precondition not met.

	// 5xx — server-side issues.
	code.ServiceUnavailable: http.StatusServiceUnavailable,  // Dependency or service temporarily down.
	code.UnexpectedError:    http.StatusInternalServerError, // Non-classified internal fault.
}

// defaultGRPCCode defines the library's built-in gRPC mappings for
// well-known result codes, aligned with canonical grpc/codes semantics.
var defaultGRPCCode = map[code.Code]codes.Code{
	// Success refinements all collapse to OK on gRPC.
	code.Created:   codes.OK,
	code.Updated:   codes.OK,
	code.Deleted:   codes.OK,
	code.NoContent: codes.OK,

	// Domain failures.
	code.ValidationFailed:    codes.InvalidArgument,
	code.Unauthorized:        codes.Unauthenticated,
	code.Forbidden:           codes.PermissionDenied,
	code.NotFound:            codes.NotFound,
	code.NotSupported:        codes.Unimplemented,
	code.AlreadyExists:       codes.AlreadyExists,
	code.ConcurrencyConflict: codes.Aborted,
	code.PreconditionFailed:  codes.FailedPrecondition,

	// Server-side.
	code.ServiceUnavailable: codes.Unavailable,
	code.UnexpectedError:    codes.Internal,
}

// defaultHTTPStatus is the built-in status-tier mapping. Unlike the code
// tables above it is total over the Status enum: every outcome resolves
// here when nothing more specific matched.
var defaultHTTPStatus = map[dresults.Status]int{
	dresults.StatusCompleted: http.StatusOK,
	dresults.StatusCancelled: http.StatusConflict,
	dresults.StatusFailed:    http.StatusBadRequest,
	dresults.StatusError:     http.StatusInternalServerError,
}

// defaultGRPCStatus is the built-in status-tier mapping for gRPC.
var defaultGRPCStatus = map[dresults.Status]codes.Code{
	dresults.StatusCompleted: codes.OK,
	dresults.StatusCancelled: codes.Canceled,
	dresults.StatusFailed:    codes.InvalidArgument,
	dresults.StatusError:     codes.Internal,
}
