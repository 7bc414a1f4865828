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

// Package validatorx bridges go-playground/validator into validation
// outcomes. Struct validation failures become ValidationFailed results
// whose messages carry the offending field as structured metadata, so
// the downstream field mapper never has to parse message text.
package validatorx

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"dirpx.dev/dresults"
)

// Check validates v with validate and converts any failure into an
// outcome. A nil validation error yields a plain success; errors that
// are not validator.ValidationErrors (e.g. InvalidValidationError for
// non-struct input) become Error outcomes.
func Check(validate *validator.Validate, v any) dresults.Result {
	return FromError(validate.Struct(v))
}

// FromError converts a validator error into an outcome.
func FromError(err error) dresults.Result {
	if err == nil {
		return dresults.Success()
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return dresults.Error(err.Error())
	}

	msgs := make([]dresults.Message, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, dresults.FieldMessage(fe.Field(), describe(fe)))
	}
	return dresults.ValidationFailure(msgs...)
}

// describe renders one field error as client-facing text. The tag name
// reads well for the common tags; parameters are appended when present.
func describe(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
	}
	return fe.Tag()
}
