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
	"net/http"
	"strconv"
	"strings"

	"dirpx.dev/dresults"
	"dirpx.dev/dresults/apis"
	"dirpx.dev/dresults/fieldmap"
)

// Builder assembles problem payloads from outcomes.
//
// The zero value is usable: it produces standard-shaped payloads with the
// default field mapper and no customization.
type Builder struct {
	// UseValidation enables the validation shape. Even when set, the
	// shape is only used if the field mapper extracts at least one
	// field-level error from the outcome's messages; otherwise the
	// standard shape applies.
	UseValidation bool

	// FieldMapper is the options-configured mapper. It sits between the
	// request-scoped mapper passed to Build and the package default.
	FieldMapper apis.FieldMapper

	// CustomizeProblem, when set, is invoked last on standard-shaped
	// payloads and may mutate them in place. Panics propagate to the
	// caller untouched.
	CustomizeProblem func(r *http.Request, res dresults.Result, d *Details)

	// CustomizeValidation is the validation-shaped counterpart of
	// CustomizeProblem.
	CustomizeValidation func(r *http.Request, res dresults.Result, d *ValidationDetails)
}

// Build assembles the problem payload for res at the given resolved
// status.
//
// scoped is an optional request-scoped field mapper supplied by the
// hosting layer; mapper resolution order is scoped, then
// Builder.FieldMapper, then a fresh fieldmap.New(). The scoped mapper
// comes first so stateful mappers registered by the host take priority
// over static configuration.
//
// r may be nil (no transport context); it is only used to default the
// instance member and as the identity passed to customization hooks.
func (b Builder) Build(r *http.Request, res dresults.Result, status int) Payload {
	return b.BuildScoped(r, res, status, nil)
}

// BuildScoped is Build with an explicit request-scoped field mapper.
func (b Builder) BuildScoped(r *http.Request, res dresults.Result, status int, scoped apis.FieldMapper) Payload {
	if b.UseValidation {
		errs := b.resolveMapper(scoped).Map(res.Messages())
		if len(errs) > 0 {
			return b.buildValidation(r, res, status, errs)
		}
	}
	return b.buildStandard(r, res, status)
}

// resolveMapper picks the field mapper for one Build call.
func (b Builder) resolveMapper(scoped apis.FieldMapper) apis.FieldMapper {
	if scoped != nil {
		return scoped
	}
	if b.FieldMapper != nil {
		return b.FieldMapper
	}
	return fieldmap.New()
}

// buildStandard assembles the standard shape: title from the first
// message (or the status name), detail joining all messages when more
// than one exists.
func (b Builder) buildStandard(r *http.Request, res dresults.Result, status int) *Details {
	msgs := res.Messages()

	title := res.Status().String()
	if first, ok := res.FirstMessage(); ok {
		title = first.Content()
	}

	var detail string
	if len(msgs) > 1 {
		parts := make([]string, len(msgs))
		for i, m := range msgs {
			parts[i] = m.Content()
		}
		detail = strings.Join(parts, "; ")
	}

	d := &Details{
		Type:       typeURI(status),
		Title:      title,
		Status:     status,
		Detail:     detail,
		Extensions: extensions(res),
	}

	if b.CustomizeProblem != nil {
		b.CustomizeProblem(r, res, d)
	}
	if d.Instance == "" && r != nil {
		d.Instance = r.URL.Path
	}
	return d
}

// buildValidation assembles the validation shape around the extracted
// field errors.
func (b Builder) buildValidation(r *http.Request, res dresults.Result, status int, errs map[string][]string) *ValidationDetails {
	d := &ValidationDetails{
		Type:       typeURI(status),
		Title:      ValidationTitle,
		Status:     status,
		Errors:     errs,
		Extensions: extensions(res),
	}

	if b.CustomizeValidation != nil {
		b.CustomizeValidation(r, res, d)
	}
	if d.Instance == "" && r != nil {
		d.Instance = r.URL.Path
	}
	return d
}

// extensions builds the shared extension bag: svcStatus, the message
// projection, and svcCode when the outcome carries a code.
func extensions(res dresults.Result) map[string]any {
	ext := map[string]any{
		ExtStatus:   res.Status().String(),
		ExtMessages: res.Messages(),
	}
	if c, ok := res.Code(); ok {
		ext[ExtCode] = c.Value()
	}
	return ext
}

// typeURI renders the problem type for a resolved status.
func typeURI(status int) string {
	return TypeBase + strconv.Itoa(status)
}
