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

	"dirpx.dev/dresults"
	"dirpx.dev/dresults/apis"
	"dirpx.dev/dresults/mapper"
	"dirpx.dev/dresults/problem"
)

// Options is the per-call configuration for shaping outcome responses.
//
// The zero value is a sane default: problem details off, compact bodies,
// the built-in status mapper, and no customization hooks.
type Options struct {
	// IncludeFullResultPayload switches success and failure bodies from
	// their compact form (bare value / message list) to the full outcome
	// projection {status, code, messages, value}.
	IncludeFullResultPayload bool

	// IncludeExceptionDetails allows the recovery middleware and
	// ResultFromError to attach diagnostic metadata (exceptionType,
	// stackTrace, source, path, method, traceId) to fault outcomes.
	// Off by default: internal exception text never reaches clients
	// unless explicitly enabled.
	IncludeExceptionDetails bool

	// UseProblemDetails renders unsuccessful outcomes as RFC7807 problem
	// payloads instead of raw message lists.
	UseProblemDetails bool

	// UseValidationProblemDetails additionally enables the
	// validation-shaped payload when the field mapper extracts at least
	// one field-level error.
	UseValidationProblemDetails bool

	// Mapper resolves outcome statuses. Nil selects mapper.Default().
	Mapper apis.Mapper

	// FieldMapper is the options-configured validation field mapper.
	// A request-scoped mapper on the Writer takes priority over it.
	FieldMapper apis.FieldMapper

	// ProblemHook, when set, is invoked last on standard-shaped problem
	// payloads and may mutate them in place.
	ProblemHook func(r *http.Request, res dresults.Result, d *problem.Details)

	// ValidationHook is the validation-shaped counterpart of ProblemHook.
	ValidationHook func(r *http.Request, res dresults.Result, d *problem.ValidationDetails)
}

// mapperOrDefault returns the configured status mapper or the shared
// built-in snapshot.
func (o Options) mapperOrDefault() apis.Mapper {
	if o.Mapper != nil {
		return o.Mapper
	}
	return mapper.Default()
}

// builder assembles the problem.Builder matching these options.
func (o Options) builder() problem.Builder {
	return problem.Builder{
		UseValidation:       o.UseValidationProblemDetails,
		FieldMapper:         o.FieldMapper,
		CustomizeProblem:    o.ProblemHook,
		CustomizeValidation: o.ValidationHook,
	}
}
