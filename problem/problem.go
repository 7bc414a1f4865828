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

package problem

import (
	jsoniter "github.com/json-iterator/go"
)

// json keeps the wire format identical to encoding/json.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TypeBase is the base URI for problem "type" members. The resolved HTTP
// status is appended, e.g. "https://httpstatuses.io/400".
const TypeBase = "https://httpstatuses.io/"

// ValidationTitle is the fixed title of validation-shaped payloads.
const ValidationTitle = "One or more validation errors occurred."

// Extension member names shared by both payload shapes.
const (
	// ExtStatus carries the outcome's status name ("Failed", "Error").
	ExtStatus = "svcStatus"
	// ExtCode carries the outcome's domain code, when present.
	ExtCode = "svcCode"
	// ExtMessages carries the shallow projection of the outcome's
	// messages ({type, content, metadata}).
	ExtMessages = "messages"
)

// Payload is an RFC7807-style problem body, either standard-shaped
// (*Details) or validation-shaped (*ValidationDetails).
type Payload interface {
	// HTTPStatus returns the status the payload was built for.
	HTTPStatus() int
}

// Details is the standard problem shape.
//
// Fields are exported and mutable so that customization hooks can adjust
// the payload in place before it is serialized; the Extensions bag is
// flattened into the top-level JSON object.
type Details struct {
	// Type is a URI reference identifying the problem type.
	Type string

	// Title is a short, human-readable summary: the content of the
	// outcome's first message, or its status name when there are no
	// messages.
	Title string

	// Status is the resolved HTTP status code.
	Status int

	// Detail explains this occurrence: all messages joined with "; "
	// when the outcome carries more than one, absent otherwise.
	Detail string

	// Instance is a URI reference for this occurrence. When a
	// customization hook leaves it unset it defaults to the request path.
	Instance string

	// Extensions holds additional top-level members (svcStatus,
	// messages, svcCode, plus anything hooks add).
	Extensions map[string]any
}

// HTTPStatus implements Payload.
func (d *Details) HTTPStatus() int { return d.Status }

// MarshalJSON flattens the extension bag into the top-level object.
func (d *Details) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 5+len(d.Extensions))
	for k, v := range d.Extensions {
		out[k] = v
	}
	out["type"] = d.Type
	out["title"] = d.Title
	out["status"] = d.Status
	if d.Detail != "" {
		out["detail"] = d.Detail
	}
	if d.Instance != "" {
		out["instance"] = d.Instance
	}
	return json.Marshal(out)
}

// ValidationDetails is the field-validation problem shape, used when the
// field mapper extracted at least one field-level error.
type ValidationDetails struct {
	// Type is a URI reference identifying the problem type.
	Type string

	// Title is always ValidationTitle for this shape.
	Title string

	// Status is the resolved HTTP status code.
	Status int

	// Instance is a URI reference for this occurrence. When a
	// customization hook leaves it unset it defaults to the request path.
	Instance string

	// Errors maps field names to their ordered error lists, as produced
	// by the field mapper.
	Errors map[string][]string

	// Extensions holds additional top-level members (svcStatus,
	// messages, svcCode, plus anything hooks add).
	Extensions map[string]any
}

// HTTPStatus implements Payload.
func (d *ValidationDetails) HTTPStatus() int { return d.Status }

// MarshalJSON flattens the extension bag into the top-level object.
func (d *ValidationDetails) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 5+len(d.Extensions))
	for k, v := range d.Extensions {
		out[k] = v
	}
	out["type"] = d.Type
	out["title"] = d.Title
	out["status"] = d.Status
	out["errors"] = d.Errors
	if d.Instance != "" {
		out["instance"] = d.Instance
	}
	return json.Marshal(out)
}
