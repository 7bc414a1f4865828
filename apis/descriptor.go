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

// ResultDescriptor is a flat, transport-friendly snapshot of an outcome
// together with its resolved transport statuses.
//
// This type intentionally uses strings (not the dresults value types) so
// that it can be consumed by loggers, tracing attributes and message-bus
// payloads without dragging in the outcome model.
type ResultDescriptor struct {
	// Status is the canonical status name, e.g. "Failed" or "Error".
	Status string `json:"status"`

	// Code is the domain code, e.g. "NotFound". Empty when the outcome
	// carries none.
	Code string `json:"code,omitempty"`

	// HTTPStatus is the resolved HTTP status. A value of 0 means "not
	// resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code (as integer). A value of
	// 0 means OK / not resolved.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Title is the leading human-readable message of the outcome, when
	// one exists.
	Title string `json:"title,omitempty"`

	// MessageCount is the total number of messages on the outcome.
	MessageCount int `json:"message_count,omitempty"`
}
