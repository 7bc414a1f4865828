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

package code

// Failure codes
//
// These codes refine an unsuccessful result with a transport-agnostic
// domain reason. Business logic attaches them; transport mapping is
// resolved later by dresults/mapper.
const (
	// NotFound indicates that the requested entity does not exist in the
	// current domain scope or storage.
	// Use this for lookups by ID, name, key, or reference.
	//
	// The default mapper resolves this to HTTP 404.
	NotFound Code = "NotFound"

	// AlreadyExists indicates that the target entity cannot be created
	// because an entity with the same primary identity already exists.
	//
	// The default mapper resolves this to HTTP 409.
	AlreadyExists Code = "AlreadyExists"

	// ValidationFailed indicates that the input violates one or more
	// structural or semantic invariants. Results with this code usually
	// carry field-addressed messages the fieldmap package can turn into
	// a field -> errors dictionary.
	//
	// The default mapper resolves this to HTTP 400.
	ValidationFailed Code = "ValidationFailed"

	// Unauthorized indicates that the caller is not authenticated or the
	// authentication context could not be established.
	//
	// The default mapper resolves this to HTTP 401.
	Unauthorized Code = "Unauthorized"

	// Forbidden indicates that the caller is authenticated but does not
	// have sufficient privileges to perform the target operation.
	//
	// The default mapper resolves this to HTTP 403.
	Forbidden Code = "Forbidden"

	// PreconditionFailed indicates that the operation could not proceed
	// because a required precondition was not met (version/ETag mismatch,
	// resource not in the expected state).
	//
	// The default mapper resolves this to HTTP 412.
	PreconditionFailed Code = "PreconditionFailed"

	// ConcurrencyConflict indicates an optimistic-concurrency clash:
	// the entity changed between read and write.
	//
	// The default mapper resolves this to HTTP 409.
	ConcurrencyConflict Code = "ConcurrencyConflict"

	// NotSupported indicates that the requested operation is known but
	// not supported for the target resource.
	//
	// The default mapper resolves this to HTTP 405.
	NotSupported Code = "NotSupported"

	// ServiceUnavailable indicates that a required downstream dependency
	// or the service itself is temporarily unable to handle the request.
	//
	// The default mapper resolves this to HTTP 503.
	ServiceUnavailable Code = "ServiceUnavailable"

	// UnexpectedError indicates an internal, non-classified fault. Use
	// this as the fallback when no more specific domain code applies.
	//
	// The default mapper resolves this to HTTP 500.
	UnexpectedError Code = "UnexpectedError"
)

// Success codes
//
// These codes refine a completed result so the response shaper can pick
// the right 2xx status without the handler hardcoding HTTP knowledge.
const (
	// Created indicates that a new entity was persisted.
	//
	// The default mapper resolves this to HTTP 201.
	Created Code = "Created"

	// Updated indicates that an existing entity was modified.
	//
	// The default mapper resolves this to HTTP 200.
	Updated Code = "Updated"

	// Deleted indicates that an entity was removed.
	//
	// The default mapper resolves this to HTTP 200.
	Deleted Code = "Deleted"

	// NoContent indicates a completed operation with nothing to return.
	// The response shaper upgrades a default success target to 204.
	NoContent Code = "NoContent"
)
