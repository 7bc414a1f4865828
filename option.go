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

// Option is a functional option for constructing or transforming a
// Result. It always takes a Result and returns a (possibly new) Result.
type Option func(Result) Result

// WithCodeOption sets the domain code on the result being constructed.
// Intended to be used with the factory functions.
func WithCodeOption(c code.Code) Option {
	return func(r Result) Result {
		return r.WithCode(c)
	}
}

// WithMessageOption appends a message on construction.
// Intended to be used with the factory functions.
func WithMessageOption(m Message) Option {
	return func(r Result) Result {
		return r.WithMessage(m)
	}
}

// WithErrorOption appends an error-level message on construction.
func WithErrorOption(content string) Option {
	return func(r Result) Result {
		return r.WithError(content)
	}
}

// WithInformationOption appends an information message on construction.
func WithInformationOption(content string) Option {
	return func(r Result) Result {
		return r.WithInformation(content)
	}
}

// WithDetailOption adds a metadata entry to the most recent message on
// construction. It is a no-op when the result has no messages yet, so
// order it after the message options it refines.
func WithDetailOption(key string, value any) Option {
	return func(r Result) Result {
		return r.WithDetail(key, value)
	}
}
