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

// GenericErrorText is the user-facing message for unexpected faults.
// Error-status results fall back to it so internal exception text never
// leaks unless the host explicitly opts into exception details.
const GenericErrorText = "An unexpected error occurred."

// build constructs a result with the given status and applies all
// options in order.
func build(s Status, opts []Option) Result {
	r := Result{status: s}
	for _, opt := range opts {
		r = opt(r)
	}
	return r
}

// Success returns a completed result.
//
// Usage:
//
//	return dresults.Success(
//	    dresults.WithCodeOption(code.Updated),
//	)
func Success(opts ...Option) Result {
	return build(StatusCompleted, opts)
}

// Failure returns a failed result. A non-empty msg is recorded as an
// error-level message.
func Failure(msg string, opts ...Option) Result {
	r := build(StatusFailed, opts)
	if msg != "" {
		r = r.WithError(msg)
	}
	return r
}

// Error returns an error-status result for an unexpected fault. An empty
// msg falls back to GenericErrorText.
func Error(msg string, opts ...Option) Result {
	if msg == "" {
		msg = GenericErrorText
	}
	r := build(StatusError, opts)
	return r.WithError(msg)
}

// Cancel returns a cancelled result.
func Cancel(opts ...Option) Result {
	return build(StatusCancelled, opts)
}

// NotFound returns a failed result carrying code.NotFound.
func NotFound(opts ...Option) Result {
	return build(StatusFailed, opts).WithCode(code.NotFound)
}

// NoContent returns a completed result carrying code.NoContent. The
// response shaper upgrades a default success target to 204 for it.
func NoContent(opts ...Option) Result {
	return build(StatusCompleted, opts).WithCode(code.NoContent)
}

// Created returns a completed result carrying code.Created.
func Created(opts ...Option) Result {
	return build(StatusCompleted, opts).WithCode(code.Created)
}

// Updated returns a completed result carrying code.Updated.
func Updated(opts ...Option) Result {
	return build(StatusCompleted, opts).WithCode(code.Updated)
}

// Deleted returns a completed result carrying code.Deleted.
func Deleted(opts ...Option) Result {
	return build(StatusCompleted, opts).WithCode(code.Deleted)
}

// ValidationFailure returns a failed result carrying
// code.ValidationFailed and the given messages. Build field-addressed
// messages with FieldMessage, or use the "field: message" textual form.
func ValidationFailure(msgs ...Message) Result {
	r := Result{status: StatusFailed, code: code.ValidationFailed}
	if len(msgs) > 0 {
		r.messages = make([]Message, len(msgs))
		copy(r.messages, msgs)
	}
	return r
}

// FromCondition returns Success() when cond holds and Failure(failMsg)
// otherwise. Options are applied to whichever result is produced.
func FromCondition(cond bool, failMsg string, opts ...Option) Result {
	if cond {
		return Success(opts...)
	}
	return Failure(failMsg, opts...)
}

// Aggregate combines several results into one.
//
// The worst status wins (Error > Failed > Cancelled > Completed),
// messages are concatenated in input order, and the code is taken from
// the first unsuccessful result that carries one. Aggregating nothing
// yields a plain success.
func Aggregate(results ...Result) Result {
	out := Result{status: StatusCompleted}
	for _, r := range results {
		if r.status > out.status {
			out.status = r.status
		}
		if out.code == code.Empty && !r.Successful() && r.code != code.Empty {
			out.code = r.code
		}
		out.messages = append(out.messages, r.messages...)
	}
	return out
}

// SuccessOf returns a completed typed result carrying v.
func SuccessOf[T any](v T, opts ...Option) TypedResult[T] {
	return TypedResult[T]{Result: Success(opts...), value: v, hasValue: true}
}

// CreatedOf returns a completed typed result carrying v and code.Created.
func CreatedOf[T any](v T, opts ...Option) TypedResult[T] {
	return TypedResult[T]{Result: Created(opts...), value: v, hasValue: true}
}

// UpdatedOf returns a completed typed result carrying v and code.Updated.
func UpdatedOf[T any](v T, opts ...Option) TypedResult[T] {
	return TypedResult[T]{Result: Updated(opts...), value: v, hasValue: true}
}

// FailureOf returns a failed typed result without a value.
func FailureOf[T any](msg string, opts ...Option) TypedResult[T] {
	return TypedResult[T]{Result: Failure(msg, opts...)}
}

// ErrorOf returns an error-status typed result without a value.
func ErrorOf[T any](msg string, opts ...Option) TypedResult[T] {
	return TypedResult[T]{Result: Error(msg, opts...)}
}

// NotFoundOf returns a failed typed result carrying code.NotFound and no
// value.
func NotFoundOf[T any](opts ...Option) TypedResult[T] {
	return TypedResult[T]{Result: NotFound(opts...)}
}
