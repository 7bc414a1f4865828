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

package grpcx

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/dresults"
)

func invoke(t *testing.T, handlerErr error) (any, error) {
	t.Helper()
	interceptor := UnaryServerInterceptor(nil, nil)
	handler := func(ctx context.Context, req any) (any, error) {
		if handlerErr != nil {
			return nil, handlerErr
		}
		return "ok", nil
	}
	return interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
}

func TestInterceptor_SuccessPassesThrough(t *testing.T) {
	resp, err := invoke(t, nil)
	if err != nil || resp != "ok" {
		t.Fatalf("got %v, %v", resp, err)
	}
}

func TestInterceptor_ForeignErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	_, err := invoke(t, boom)
	if !errors.Is(err, boom) {
		t.Fatalf("foreign error must pass through untouched, got %v", err)
	}
}

func TestInterceptor_FaultBecomesStatus(t *testing.T) {
	fault := NewFault(dresults.NotFound(dresults.WithErrorOption("no such order")))
	_, err := invoke(t, fault)

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("expected a status error, got %v", err)
	}
	if st.Code() != codes.NotFound {
		t.Fatalf("code = %v, want NotFound", st.Code())
	}
	if st.Message() != "no such order" {
		t.Fatalf("message = %q", st.Message())
	}

	info, ok := ExtractErrorInfo(err)
	if !ok {
		t.Fatal("ErrorInfo detail missing")
	}
	if info.GetDomain() != errorInfoDomain || info.GetReason() != "NotFound" {
		t.Fatalf("ErrorInfo = %v", info)
	}
	if info.GetMetadata()[metaStatus] != "Failed" || info.GetMetadata()[metaCode] != "NotFound" {
		t.Fatalf("ErrorInfo metadata = %v", info.GetMetadata())
	}
}

func TestInterceptor_ValidationCarriesBadRequest(t *testing.T) {
	res := dresults.ValidationFailure(
		dresults.FieldMessage("name", "required"),
		dresults.ErrorMessage("email: invalid"),
	)
	_, err := invoke(t, NewFault(res))

	st, _ := gstatus.FromError(err)
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", st.Code())
	}

	br, ok := ExtractBadRequest(err)
	if !ok {
		t.Fatal("BadRequest detail missing")
	}
	got := map[string]string{}
	for _, v := range br.GetFieldViolations() {
		got[v.GetField()] = v.GetDescription()
	}
	if got["name"] != "required" || got["email"] != "invalid" {
		t.Fatalf("violations = %v", got)
	}
}

func TestFault_ErrorText(t *testing.T) {
	if NewFault(dresults.Failure("nope")).Error() != "nope" {
		t.Fatal("Error() must surface the leading message")
	}
	if NewFault(dresults.Cancel()).Error() != "Cancelled" {
		t.Fatal("message-less fault must fall back to the status name")
	}
}

func TestToStatusError_NoFieldErrors(t *testing.T) {
	err := ToStatusError(dresults.Error("boom"), nil, nil)
	st, _ := gstatus.FromError(err)
	if st.Code() != codes.Internal {
		t.Fatalf("code = %v, want Internal", st.Code())
	}
	if _, ok := ExtractBadRequest(err); ok {
		t.Fatal("no field errors, no BadRequest detail")
	}
	info, ok := ExtractErrorInfo(err)
	if !ok || info.GetReason() != "Error" {
		t.Fatalf("ErrorInfo = %v, %v", info, ok)
	}
}

func TestExtract_OnForeignError(t *testing.T) {
	if _, ok := ExtractErrorInfo(errors.New("plain")); ok {
		t.Fatal("plain errors carry no ErrorInfo")
	}
	if _, ok := ExtractErrorInfo(nil); ok {
		t.Fatal("nil error carries no ErrorInfo")
	}
}
