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
	"dirpx.dev/dresults"
	"dirpx.dev/dresults/code"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPCode sets or replaces the code-tier HTTP entry for the given
// result code. Codes are validated during New.
func WithHTTPCode(c code.Code, status int) Option {
	return func(b *builder) { b.httpCode[c] = status }
}

// WithGRPCCode sets or replaces the code-tier gRPC entry for the given
// result code.
func WithGRPCCode(c code.Code, grpc codes.Code) Option {
	return func(b *builder) { b.grpcCode[c] = grpc }
}

// WithHTTPCodeOverride registers an exact HTTP override for the given
// code. Overrides are the highest tier: they win over the code strategy,
// the code table and the status tier.
func WithHTTPCodeOverride(c code.Code, status int) Option {
	return func(b *builder) { b.httpOverride[c] = status }
}

// WithGRPCCodeOverride registers an exact gRPC override for the given code.
func WithGRPCCodeOverride(c code.Code, grpc codes.Code) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithCodeResolver installs a caller-supplied code strategy for HTTP.
// The strategy is partial: returning false means "no opinion" and makes
// resolution fall through to the code table and then the status tier.
// It is consulted only for outcomes that actually carry a code.
func WithCodeResolver(fn func(code.Code) (int, bool)) Option {
	return func(b *builder) { b.codeFn = fn }
}

// WithGRPCCodeResolver installs a caller-supplied code strategy for gRPC.
func WithGRPCCodeResolver(fn func(code.Code) (codes.Code, bool)) Option {
	return func(b *builder) { b.grpcCodeFn = fn }
}

// WithStatusResolver installs a caller-supplied status strategy for HTTP.
// Unlike the code strategy it is total: when set it answers for every
// status and replaces the built-in status table entirely.
func WithStatusResolver(fn func(dresults.Status) int) Option {
	return func(b *builder) { b.statusFn = fn }
}

// WithGRPCStatusResolver installs a caller-supplied status strategy for gRPC.
func WithGRPCStatusResolver(fn func(dresults.Status) codes.Code) Option {
	return func(b *builder) { b.grpcStatusFn = fn }
}

// WithStatusDefault adjusts one entry of the built-in HTTP status table.
func WithStatusDefault(s dresults.Status, status int) Option {
	return func(b *builder) { b.httpStatus[s] = status }
}

// WithGRPCStatusDefault adjusts one entry of the built-in gRPC status table.
func WithGRPCStatusDefault(s dresults.Status, grpc codes.Code) Option {
	return func(b *builder) { b.grpcStatus[s] = grpc }
}

// WithoutCodeDefaults suppresses the built-in code tables, reproducing a
// configuration where no code-level mapping is wired at all. Explicit
// WithHTTPCode / WithGRPCCode entries still apply.
func WithoutCodeDefaults() Option {
	return func(b *builder) { b.dropCodeDefaults = true }
}
