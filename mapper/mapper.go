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

package mapper

import (
	"fmt"
	"strings"
	"sync"

	"dirpx.dev/dresults"
	"dirpx.dev/dresults/apis"
	"dirpx.dev/dresults/code"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for
// long-lived reuse. Each build creates a self-contained mapper instance —
// no shared references to global state or user-provided maps remain.
//
// Build process overview:
//
//  1. Apply user-provided options to an empty builder.
//  2. Seed library defaults underneath the user entries (code tables
//     unless WithoutCodeDefaults, status tables always).
//  3. Validate every registered code and status value.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid codes or status
// values in the configuration.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder. Defaults are merged after the
	// options so user entries always win and WithoutCodeDefaults can
	// suppress seeding entirely.
	b := newBuilder()

	// (1) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (2) Seed library defaults underneath the user's entries.
	if !b.dropCodeDefaults {
		for k, v := range defaultHTTPCode {
			if _, ok := b.httpCode[k]; !ok {
				b.httpCode[k] = v
			}
		}
		for k, v := range defaultGRPCCode {
			if _, ok := b.grpcCode[k]; !ok {
				b.grpcCode[k] = v
			}
		}
	}
	for k, v := range defaultHTTPStatus {
		if _, ok := b.httpStatus[k]; !ok {
			b.httpStatus[k] = v
		}
	}
	for k, v := range defaultGRPCStatus {
		if _, ok := b.grpcStatus[k]; !ok {
			b.grpcStatus[k] = v
		}
	}

	// (3) Validate registered codes and HTTP values.
	for _, m := range []map[code.Code]int{b.httpCode, b.httpOverride} {
		for c, v := range m {
			if err := code.Validate(c); err != nil {
				return nil, fmt.Errorf("mapper: invalid code %q: %w", c, err)
			}
			if err := validateHTTPStatus(v); err != nil {
				return nil, fmt.Errorf("mapper: invalid HTTP status for code %q: %w", c, err)
			}
		}
	}
	for c := range b.grpcCode {
		if err := code.Validate(c); err != nil {
			return nil, fmt.Errorf("mapper: invalid code %q: %w", c, err)
		}
	}
	for c := range b.grpcOverride {
		if err := code.Validate(c); err != nil {
			return nil, fmt.Errorf("mapper: invalid code %q: %w", c, err)
		}
	}
	for s, v := range b.httpStatus {
		if err := validateHTTPStatus(v); err != nil {
			return nil, fmt.Errorf("mapper: invalid HTTP status for status %q: %w", s, err)
		}
	}

	// (4) Freeze everything into a read-only snapshot.
	m := &mapper{
		httpCode:     freezeCodeHTTP(b.httpCode),
		grpcCode:     freezeCodeGRPC(b.grpcCode),
		httpOverride: freezeCodeHTTP(b.httpOverride),
		grpcOverride: freezeCodeGRPC(b.grpcOverride),
		httpStatus:   freezeStatusHTTP(b.httpStatus),
		grpcStatus:   freezeStatusGRPC(b.grpcStatus),

		codeFn:       b.codeFn,
		grpcCodeFn:   b.grpcCodeFn,
		statusFn:     b.statusFn,
		grpcStatusFn: b.grpcStatusFn,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// defaultMapper memoizes the zero-option snapshot. New() without options
// cannot fail, so the panic is unreachable.
var defaultMapper = sync.OnceValue(func() apis.Mapper {
	m, err := New()
	if err != nil {
		panic(err)
	}
	return m
})

// Default returns the shared built-in mapper snapshot: the code tables
// from defaults.go plus the Failed=400 / Cancelled=409 / Error=500 /
// Completed=200 status tier. It is immutable and safe to share.
func Default() apis.Mapper {
	return defaultMapper()
}

// mapper is an immutable resolver that combines per-code exact overrides,
// an optional partial code strategy, per-code tables, an optional total
// status strategy and per-status tables. Lookups are O(1) and safe for
// concurrent use once constructed.
type mapper struct {
	// httpCode / grpcCode hold the code-tier tables consulted when the
	// outcome carries a code and no strategy had an opinion.
	httpCode map[code.Code]int
	grpcCode map[code.Code]codes.Code

	// httpOverride / grpcOverride hold explicit per-code statuses.
	// These are the highest tier.
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	// codeFn / grpcCodeFn are the partial caller strategies for the code
	// tier; nil when not configured.
	codeFn     func(code.Code) (int, bool)
	grpcCodeFn func(code.Code) (codes.Code, bool)

	// statusFn / grpcStatusFn are the total caller strategies for the
	// status tier; nil when not configured.
	statusFn     func(dresults.Status) int
	grpcStatusFn func(dresults.Status) codes.Code

	// httpStatus / grpcStatus hold the status-tier tables used when no
	// status strategy is configured.
	httpStatus map[dresults.Status]int
	grpcStatus map[dresults.Status]codes.Code

	// fallbackHTTP / fallbackGRPC are used when even the status table
	// has no entry. HTTP must never resolve to zero.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given outcome.
//
// Resolution order (highest to lowest), code tiers only when the outcome
// carries a code:
//
//  1. exact per-code override (explicitly registered);
//  2. caller code strategy, when it has an opinion;
//  3. code table (library defaults or user-adjusted);
//  4. caller status strategy (total), when configured;
//  5. status table;
//  6. hardcoded ultimate fallback (500).
func (m *mapper) HTTPStatus(res dresults.Result) int {
	if c, ok := res.Code(); ok {
		// 1. Fast path: exact override for this code.
		if v, ok := m.httpOverride[c]; ok {
			return v
		}
		// 2. Caller strategy; false means "no opinion", keep going.
		if m.codeFn != nil {
			if v, ok := m.codeFn(c); ok {
				return v
			}
		}
		// 3. Code table.
		if v, ok := m.httpCode[c]; ok {
			return v
		}
	}

	// 4. Total caller status strategy.
	if m.statusFn != nil {
		return m.statusFn(res.Status())
	}

	// 5. Status table.
	if v, ok := m.httpStatus[res.Status()]; ok {
		return v
	}

	// 6. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given outcome.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
func (m *mapper) GRPCStatus(res dresults.Result) codes.Code {
	if c, ok := res.Code(); ok {
		// 1. Exact override.
		if v, ok := m.grpcOverride[c]; ok {
			return v
		}
		// 2. Caller strategy.
		if m.grpcCodeFn != nil {
			if v, ok := m.grpcCodeFn(c); ok {
				return v
			}
		}
		// 3. Code table.
		if v, ok := m.grpcCode[c]; ok {
			return v
		}
	}

	// 4. Total caller status strategy.
	if m.grpcStatusFn != nil {
		return m.grpcStatusFn(res.Status())
	}

	// 5. Status table.
	if v, ok := m.grpcStatus[res.Status()]; ok {
		return v
	}

	// 6. Ultimate fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/gRPC decisions consistent for a single outcome.
func (m *mapper) Status(res dresults.Result) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(res),
		GRPC: m.GRPCStatus(res),
	}
}

// CodeStatus reports whether the code tier alone has a mapping for the
// outcome's code, and which HTTP status it would assign. See the
// apis.Mapper contract for how the response shaper uses this probe.
func (m *mapper) CodeStatus(res dresults.Result) (int, bool) {
	c, ok := res.Code()
	if !ok {
		return 0, false
	}
	if v, ok := m.httpOverride[c]; ok {
		return v, true
	}
	if m.codeFn != nil {
		if v, ok := m.codeFn(c); ok {
			return v, true
		}
	}
	if v, ok := m.httpCode[c]; ok {
		return v, true
	}
	return 0, false
}

// Explain produces a textual trace of how the mapper resolved HTTP and
// gRPC statuses for a particular outcome.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, resolver, code, status-resolver, status, or fallback).
//
// Example output:
//
//	status="Failed" code="NotFound"
//	http: source=code -> 404
//	grpc: source=code -> NOTFOUND(5)
//
// Notes:
//   - source ∈ {override | resolver | code | status-resolver | status | fallback}
func (m *mapper) Explain(res dresults.Result) string {
	var b strings.Builder
	c, _ := res.Code()
	_, _ = fmt.Fprintf(&b, "status=%q code=%q\n", res.Status(), c)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(res))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(res))
	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP returns a formatted line describing how the HTTP status was
// chosen.
func (m *mapper) explainHTTP(res dresults.Result) string {
	if c, ok := res.Code(); ok {
		if v, ok := m.httpOverride[c]; ok {
			return fmt.Sprintf("http: source=override -> %d", v)
		}
		if m.codeFn != nil {
			if v, ok := m.codeFn(c); ok {
				return fmt.Sprintf("http: source=resolver -> %d", v)
			}
		}
		if v, ok := m.httpCode[c]; ok {
			return fmt.Sprintf("http: source=code -> %d", v)
		}
	}
	if m.statusFn != nil {
		return fmt.Sprintf("http: source=status-resolver -> %d", m.statusFn(res.Status()))
	}
	if v, ok := m.httpStatus[res.Status()]; ok {
		return fmt.Sprintf("http: source=status -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns a formatted line describing how the gRPC status was
// chosen.
func (m *mapper) explainGRPC(res dresults.Result) string {
	format := func(source string, v codes.Code) string {
		return fmt.Sprintf("grpc: source=%s -> %s(%d)", source, strings.ToUpper(v.String()), int(v))
	}
	if c, ok := res.Code(); ok {
		if v, ok := m.grpcOverride[c]; ok {
			return format("override", v)
		}
		if m.grpcCodeFn != nil {
			if v, ok := m.grpcCodeFn(c); ok {
				return format("resolver", v)
			}
		}
		if v, ok := m.grpcCode[c]; ok {
			return format("code", v)
		}
	}
	if m.grpcStatusFn != nil {
		return format("status-resolver", m.grpcStatusFn(res.Status()))
	}
	if v, ok := m.grpcStatus[res.Status()]; ok {
		return format("status", v)
	}
	return format("fallback", m.fallbackGRPC)
}

// validateHTTPStatus rejects values outside the registrable HTTP range.
func validateHTTPStatus(v int) error {
	if v < 100 || v > 599 {
		return fmt.Errorf("status %d out of range [100, 599]", v)
	}
	return nil
}
