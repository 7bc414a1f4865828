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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Code is the validated representation of a domain result code.
//
// It is defined as a separate type (not just string) so that other
// packages can explicitly declare which values they expect and to avoid
// accidental mixing of raw user input with validated values.
//
// Codes compare by string value and round-trip verbatim: unlike
// lower_snake identifier schemes, the well-known catalog uses PascalCase
// values ("NotFound", "AlreadyExists") because these strings are
// wire-visible and matched by clients.
//
// IMPORTANT: a blank code ("" or whitespace-only) is NOT a valid code.
// The zero value Empty is reserved to mean "no code provided" on a
// Result.
type Code string

var (
	// ErrCodeInvalid is returned when a value cannot be parsed or
	// validated as a result code.
	//
	// Having a dedicated sentinel error makes it easier for callers and
	// tests to detect "this is about code format" vs "some other error".
	ErrCodeInvalid = errors.New("dresults: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It is considered "not provided" and is
// valid to store in Result values. Callers that require a non-empty code
// should explicitly call Validate.
var Empty Code = ""

// Parse takes a user-provided string, trims surrounding whitespace and
// validates it. On success it returns the Code with its inner characters
// untouched, so arbitrary caller-defined codes round-trip via Value.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks whether the provided Code is valid.
// The empty code ("") is considered invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}

// Value returns the underlying string. It is the accessor result codes
// are expected to round-trip through.
func (c Code) Value() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
//
// Empty marshals to an empty slice so optional codes embedded in larger
// structs do not break encoders; any other value must be valid.
func (c Code) MarshalText() ([]byte, error) {
	if c == Empty {
		return []byte{}, nil
	}
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It trims and validates the provided text before assigning. Empty input
// yields Empty, keeping the code optional on the wire.
func (c *Code) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	if s == "" {
		*c = Empty
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid
// code: non-empty after trimming. Any non-blank string is acceptable,
// since callers may define their own codes beyond the catalog.
func validate(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrCodeInvalid
	}
	return nil
}
