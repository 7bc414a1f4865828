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

// Package grpcx carries outcomes across gRPC server boundaries.
//
// Handlers return a Fault wrapping an unsuccessful outcome; the
// interceptor maps it to a grpc status through the configured mapper,
// attaching the outcome identity as google.rpc.ErrorInfo and any
// field-level validation errors as google.rpc.BadRequest details.
package grpcx

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"dirpx.dev/dresults"
	"dirpx.dev/dresults/apis"
	"dirpx.dev/dresults/fieldmap"
	"dirpx.dev/dresults/mapper"
)

// errorInfoDomain identifies ErrorInfo details emitted by this package.
const errorInfoDomain = "dirpx.dev/dresults"

// Metadata keys under ErrorInfo.
const (
	metaStatus = "svcStatus"
	metaCode   = "svcCode"
)

// Fault is an error carrying an unsuccessful outcome through the gRPC
// handler return path.
type Fault struct {
	Result dresults.Result
}

// NewFault wraps res in a Fault. A successful res still wraps; callers
// decide whether a success is worth returning as an error.
func NewFault(res dresults.Result) *Fault {
	return &Fault{Result: res}
}

// Error implements the error interface with the outcome's leading
// message, falling back to the status name.
func (f *Fault) Error() string {
	if m, ok := f.Result.FirstMessage(); ok {
		return m.Content()
	}
	return f.Result.Status().String()
}

// UnaryServerInterceptor maps Fault errors returned by handlers into
// gRPC status errors.
//
// The mapper resolves the transport code; fm extracts field-level
// validation errors for the BadRequest detail. Nil arguments select the
// built-in defaults. Errors that are not Faults pass through untouched.
func UnaryServerInterceptor(m apis.Mapper, fm apis.FieldMapper) grpc.UnaryServerInterceptor {
	if fm == nil {
		fm = fieldmap.New()
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var f *Fault
		if !errors.As(err, &f) {
			// Not ours; return as-is.
			return nil, err
		}

		return nil, ToStatusError(f.Result, m, fm)
	}
}

// ToStatusError converts an outcome into a gRPC status error with
// outcome details attached. Detail attachment is best-effort: when it
// fails the bare status is returned.
func ToStatusError(res dresults.Result, m apis.Mapper, fm apis.FieldMapper) error {
	if m == nil {
		m = mapper.Default()
	}
	if fm == nil {
		fm = fieldmap.New()
	}

	msg := res.Status().String()
	if first, ok := res.FirstMessage(); ok {
		msg = first.Content()
	}
	base := gstatus.New(m.GRPCStatus(res), msg)

	infoMeta := map[string]string{metaStatus: res.Status().String()}
	if c, ok := res.Code(); ok {
		infoMeta[metaCode] = c.Value()
	}
	details := []protoadapt.MessageV1{&errdetails.ErrorInfo{
		Reason:   reasonFor(res),
		Domain:   errorInfoDomain,
		Metadata: infoMeta,
	}}

	if fieldErrs := fm.Map(res.Messages()); len(fieldErrs) > 0 {
		br := &errdetails.BadRequest{}
		for field, texts := range fieldErrs {
			for _, t := range texts {
				br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
					Field:       field,
					Description: t,
				})
			}
		}
		details = append(details, br)
	}

	if with, err := base.WithDetails(details...); err == nil {
		return with.Err()
	}
	return base.Err()
}

// ExtractErrorInfo pulls the outcome ErrorInfo out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}

// ExtractBadRequest pulls the field-violation detail out of a gRPC
// error, if present.
func ExtractBadRequest(err error) (*errdetails.BadRequest, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			return br, true
		}
	}
	return nil, false
}

// reasonFor derives the ErrorInfo reason: the domain code when present,
// the status name otherwise.
func reasonFor(res dresults.Result) string {
	if c, ok := res.Code(); ok {
		return c.Value()
	}
	return res.Status().String()
}
