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

// Package dresults defines the canonical outcome model for dirpx service
// operations.
//
// A Result carries:
//   - Status: how the operation ended (Completed, Cancelled, Failed, Error);
//   - Code: optional, transport-agnostic domain reason (dirpx.dev/dresults/code);
//   - Messages: an ordered list of typed, metadata-carrying messages.
//
// TypedResult[T] additionally carries an optional value, exposed through a
// comma-ok accessor so "no value" is unambiguous for every value type.
//
// Results are created once via the factory functions (Success, Failure,
// Error, ...) and never mutated; all WithX helpers return a new instance,
// so Result values can be safely shared and transformed in a functional
// style. Transport adapters (dresults/httpx, dresults/grpcx) consume a
// Result and translate it into a wire response via the status mapper
// (dresults/mapper).
package dresults

import (
	jsoniter "github.com/json-iterator/go"

	"dirpx.dev/dresults/code"
)

// json is the package-wide serializer. jsoniter in compatibility mode
// keeps the wire format identical to encoding/json.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Result is the immutable, untyped outcome of an operation.
//
// The zero value is a successful, message-less, code-less result; prefer
// the factory functions over constructing Result values directly.
type Result struct {
	status   Status
	code     code.Code
	messages []Message
}

// Status returns how the operation ended.
func (r Result) Status() Status { return r.status }

// Code returns the domain code and whether one is present.
func (r Result) Code() (code.Code, bool) {
	if r.code == code.Empty {
		return code.Empty, false
	}
	return r.code, true
}

// Messages returns a copy of the ordered message list. It never returns
// nil: a result without messages yields an empty slice.
func (r Result) Messages() []Message {
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Parts decomposes the result into its three components. The code is
// code.Empty when absent, and the message slice is never nil.
func (r Result) Parts() (Status, code.Code, []Message) {
	return r.status, r.code, r.Messages()
}

// Successful reports whether the result completed.
func (r Result) Successful() bool { return r.status.Successful() }

// FirstMessage returns the first message, if any. Problem payloads use it
// as the title of standard-shaped bodies.
func (r Result) FirstMessage() (Message, bool) {
	if len(r.messages) == 0 {
		return Message{}, false
	}
	return r.messages[0], true
}

// WithCode returns a copy of the result with the given code set.
func (r Result) WithCode(c code.Code) Result {
	cp := r.clone()
	cp.code = c
	return cp
}

// WithMessage returns a copy of the result with one message appended.
func (r Result) WithMessage(m Message) Result {
	cp := r.clone()
	cp.messages = append(cp.messages, m)
	return cp
}

// WithError returns a copy with an error-level message appended.
func (r Result) WithError(content string) Result {
	return r.WithMessage(ErrorMessage(content))
}

// WithWarning returns a copy with a warning-level message appended.
func (r Result) WithWarning(content string) Result {
	return r.WithMessage(WarningMessage(content))
}

// WithInformation returns a copy with an information message appended.
func (r Result) WithInformation(content string) Result {
	return r.WithMessage(InfoMessage(content))
}

// WithDetail returns a copy in which the most recent message gained one
// metadata entry. A result without messages is returned unchanged: there
// is nothing to attach the detail to.
func (r Result) WithDetail(key string, value any) Result {
	if len(r.messages) == 0 {
		return r
	}
	cp := r.clone()
	last := len(cp.messages) - 1
	cp.messages[last] = cp.messages[last].WithDetail(key, value)
	return cp
}

// clone copies the result, including a fresh message slice, so WithX
// helpers never alias the original's backing array.
func (r Result) clone() Result {
	cp := r
	if len(r.messages) > 0 {
		cp.messages = make([]Message, len(r.messages))
		copy(cp.messages, r.messages)
	}
	return cp
}

// resultView is the full-result wire projection used when a caller opts
// into IncludeFullResultPayload.
type resultView struct {
	Status   string        `json:"status"`
	Code     string        `json:"code,omitempty"`
	Messages []messageView `json:"messages"`
	Value    any           `json:"value,omitempty"`
}

// view builds the serializable projection. The message list is always
// present (possibly empty), mirroring the "Messages is never nil"
// invariant on the wire.
func (r Result) view() resultView {
	msgs := make([]messageView, len(r.messages))
	for i, m := range r.messages {
		msgs[i] = m.view()
	}
	return resultView{
		Status:   r.status.String(),
		Code:     r.code.Value(),
		Messages: msgs,
	}
}

// MarshalJSON serializes the result as {status, code, messages}.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.view())
}
