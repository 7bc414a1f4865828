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

package httpx

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"dirpx.dev/dresults"
	"dirpx.dev/dresults/apis"
)

// json keeps the wire format identical to encoding/json.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	contentTypeJSON    = "application/json"
	contentTypeProblem = "application/problem+json"
)

// Writer turns outcomes into HTTP responses using the resolved Options.
//
// A Writer is a cheap value; hosts typically build one per request so
// they can attach a request-scoped field mapper.
type Writer struct {
	// Opt is the per-call configuration.
	Opt Options

	// Scoped is an optional request-scoped field mapper injected by the
	// hosting layer. It takes priority over Opt.FieldMapper and the
	// package default when building validation payloads.
	Scoped apis.FieldMapper
}

// Write renders an untyped outcome.
//
// target is the intended success status (200/201/202/204); zero means
// "default", which resolves to 200 unless the outcome's domain code
// upgrades it. A target >= 400 is treated as an explicit failure status
// and is honored as-is for unsuccessful outcomes. location is only
// consulted for 201/202 responses.
func (w Writer) Write(rw http.ResponseWriter, r *http.Request, res dresults.Result, target int, location string) {
	if !res.Successful() {
		w.writeFailure(rw, r, res, target)
		return
	}

	status := w.successStatus(res, target)
	switch {
	case status == http.StatusNoContent:
		// Empty body regardless of payload options.
		rw.WriteHeader(status)
	case status == http.StatusCreated || status == http.StatusAccepted:
		// Location is set even when the caller passed none, so clients
		// observe a stable header shape.
		rw.Header().Set("Location", location)
		w.writeSuccessBody(rw, res, status)
	default:
		w.writeSuccessBody(rw, res, status)
	}
}

// WriteValue renders a typed outcome. The compact success body is the
// bare carried value; IncludeFullResultPayload switches to the full
// outcome projection.
func WriteValue[T any](w Writer, rw http.ResponseWriter, r *http.Request, res dresults.TypedResult[T], target int, location string) {
	if !res.Successful() {
		w.writeFailure(rw, r, res.Untyped(), target)
		return
	}

	status := w.successStatus(res.Result, target)
	if status == http.StatusNoContent {
		rw.WriteHeader(status)
		return
	}
	if status == http.StatusCreated || status == http.StatusAccepted {
		rw.Header().Set("Location", location)
	}

	if w.Opt.IncludeFullResultPayload {
		writeJSON(rw, status, contentTypeJSON, res)
		return
	}
	if v, ok := res.Value(); ok {
		writeJSON(rw, status, contentTypeJSON, v)
		return
	}
	rw.WriteHeader(status)
}

// WriteProblem renders an unsuccessful outcome as a problem payload
// regardless of the UseProblemDetails option. Successful outcomes are
// delegated to Write.
func (w Writer) WriteProblem(rw http.ResponseWriter, r *http.Request, res dresults.Result, target int) {
	if res.Successful() {
		w.Write(rw, r, res, target, "")
		return
	}
	status := w.failureStatus(res, target)
	p := w.Opt.builder().BuildScoped(r, res, status, w.Scoped)
	writeJSON(rw, status, contentTypeProblem, p)
}

// writeFailure renders the failure branch of the decision table.
func (w Writer) writeFailure(rw http.ResponseWriter, r *http.Request, res dresults.Result, target int) {
	status := w.failureStatus(res, target)

	if w.Opt.UseProblemDetails {
		p := w.Opt.builder().BuildScoped(r, res, status, w.Scoped)
		writeJSON(rw, status, contentTypeProblem, p)
		return
	}
	if w.Opt.IncludeFullResultPayload {
		writeJSON(rw, status, contentTypeJSON, res)
		return
	}
	writeJSON(rw, status, contentTypeJSON, res.Messages())
}

// failureStatus picks the wire status for an unsuccessful outcome: an
// explicit caller status >= 400 wins; anything else defers to the
// mapper.
func (w Writer) failureStatus(res dresults.Result, target int) int {
	if target >= http.StatusBadRequest {
		return target
	}
	return w.Opt.mapperOrDefault().HTTPStatus(res)
}

// successStatus picks the wire status for a successful outcome. The
// requested target (default 200) may be upgraded by the code tier of
// the mapper — e.g. a NoContent code turns 200 into 204 — but only
// within the success range: a success never resolves to a failure
// status here.
func (w Writer) successStatus(res dresults.Result, target int) int {
	if target == 0 {
		target = http.StatusOK
	}
	if target >= http.StatusBadRequest {
		// A failure target with a successful outcome is a caller
		// mistake; honor the outcome and fall back to the default.
		target = http.StatusOK
	}
	if v, ok := w.Opt.mapperOrDefault().CodeStatus(res); ok && v < http.StatusBadRequest {
		return v
	}
	return target
}

// writeSuccessBody emits the success body for untyped outcomes: the full
// outcome projection when requested, an empty body otherwise.
func (w Writer) writeSuccessBody(rw http.ResponseWriter, res dresults.Result, status int) {
	if w.Opt.IncludeFullResultPayload {
		writeJSON(rw, status, contentTypeJSON, res)
		return
	}
	rw.WriteHeader(status)
}

// writeJSON serializes v and writes it with the given status. Headers
// must be assigned before WriteHeader, so the content type goes first.
func writeJSON(rw http.ResponseWriter, status int, contentType string, v any) {
	rw.Header().Set("Content-Type", contentType)
	rw.WriteHeader(status)
	b, _ := json.Marshal(v)
	_, _ = rw.Write(b)
}
