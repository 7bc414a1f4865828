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

package dresults

import "dirpx.dev/dresults/code"

// TypedResult is a Result that may carry a value of type T.
//
// Presence of the value is tracked explicitly: an unsuccessful outcome
// simply has no value, and Value's comma-ok form makes that unambiguous
// even when T's zero value (0, false, "") would be a legitimate payload.
type TypedResult[T any] struct {
	Result

	value    T
	hasValue bool
}

// Value returns the carried value and whether one is present.
func (r TypedResult[T]) Value() (T, bool) {
	return r.value, r.hasValue
}

// MustValue returns the carried value and panics when absent. Intended
// for tests and for call sites that already checked Successful().
func (r TypedResult[T]) MustValue() T {
	if !r.hasValue {
		panic("dresults: no value present")
	}
	return r.value
}

// WithValue returns a copy of the result carrying the given value.
func (r TypedResult[T]) WithValue(v T) TypedResult[T] {
	cp := r
	cp.Result = r.Result.clone()
	cp.value = v
	cp.hasValue = true
	return cp
}

// WithCode returns a copy with the given code set, preserving the value.
func (r TypedResult[T]) WithCode(c code.Code) TypedResult[T] {
	cp := r
	cp.Result = r.Result.WithCode(c)
	return cp
}

// WithMessage returns a copy with one message appended, preserving the value.
func (r TypedResult[T]) WithMessage(m Message) TypedResult[T] {
	cp := r
	cp.Result = r.Result.WithMessage(m)
	return cp
}

// Untyped drops the value and returns the plain Result.
func (r TypedResult[T]) Untyped() Result { return r.Result.clone() }

// MarshalJSON serializes the result as {status, code, messages, value},
// omitting value when absent.
func (r TypedResult[T]) MarshalJSON() ([]byte, error) {
	v := r.Result.view()
	if r.hasValue {
		v.Value = r.value
	}
	return json.Marshal(v)
}
