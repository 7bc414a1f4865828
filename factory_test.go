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

import (
	"testing"

	"dirpx.dev/dresults/code"
)

func mustCode(t *testing.T, r Result) code.Code {
	t.Helper()
	c, ok := r.Code()
	if !ok {
		t.Fatal("expected a code")
	}
	return c
}

func TestFactories_StatusAndCode(t *testing.T) {
	tests := []struct {
		name       string
		res        Result
		wantStatus Status
		wantCode   code.Code
	}{
		{"Success", Success(), StatusCompleted, code.Empty},
		{"Cancel", Cancel(), StatusCancelled, code.Empty},
		{"NotFound", NotFound(), StatusFailed, code.NotFound},
		{"NoContent", NoContent(), StatusCompleted, code.NoContent},
		{"Created", Created(), StatusCompleted, code.Created},
		{"Updated", Updated(), StatusCompleted, code.Updated},
		{"Deleted", Deleted(), StatusCompleted, code.Deleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.res.Status() != tt.wantStatus {
				t.Fatalf("status = %v, want %v", tt.res.Status(), tt.wantStatus)
			}
			c, _ := tt.res.Code()
			if c != tt.wantCode {
				t.Fatalf("code = %q, want %q", c, tt.wantCode)
			}
		})
	}
}

func TestFailure_Message(t *testing.T) {
	r := Failure("insufficient funds")
	if r.Successful() {
		t.Fatal("failure must not be successful")
	}
	m, ok := r.FirstMessage()
	if !ok || m.Content() != "insufficient funds" || m.Type() != MessageError {
		t.Fatalf("first message = %+v, %v", m, ok)
	}

	// Empty message: a bare failed status, no messages.
	if len(Failure("").Messages()) != 0 {
		t.Fatal("empty failure message must not be recorded")
	}
}

func TestError_GenericFallback(t *testing.T) {
	r := Error("")
	m, _ := r.FirstMessage()
	if m.Content() != GenericErrorText {
		t.Fatalf("content = %q, want the generic text", m.Content())
	}
	if r.Status() != StatusError {
		t.Fatalf("status = %v", r.Status())
	}

	if m, _ = Error("db down").FirstMessage(); m.Content() != "db down" {
		t.Fatal("explicit message must be kept")
	}
}

func TestValidationFailure(t *testing.T) {
	r := ValidationFailure(
		FieldMessage("name", "required"),
		ErrorMessage("email: invalid"),
	)
	if r.Status() != StatusFailed {
		t.Fatalf("status = %v", r.Status())
	}
	if mustCode(t, r) != code.ValidationFailed {
		t.Fatal("code mismatch")
	}
	if len(r.Messages()) != 2 {
		t.Fatal("messages lost")
	}
}

func TestFromCondition(t *testing.T) {
	if !FromCondition(true, "unused").Successful() {
		t.Fatal("true condition must succeed")
	}
	r := FromCondition(false, "too big")
	if r.Successful() {
		t.Fatal("false condition must fail")
	}
	if m, _ := r.FirstMessage(); m.Content() != "too big" {
		t.Fatalf("message = %q", m.Content())
	}
}

func TestOptions_ApplyInOrder(t *testing.T) {
	r := Success(
		WithInformationOption("created draft"),
		WithDetailOption("id", "42"),
		WithCodeOption(code.Created),
	)
	if mustCode(t, r) != code.Created {
		t.Fatal("code option not applied")
	}
	m, _ := r.FirstMessage()
	if v, ok := m.Metadata().Get("id"); !ok || v != "42" {
		t.Fatal("detail option must refine the preceding message")
	}
}

func TestAggregate_WorstStatusWins(t *testing.T) {
	tests := []struct {
		name string
		in   []Result
		want Status
	}{
		{"empty", nil, StatusCompleted},
		{"all success", []Result{Success(), Success()}, StatusCompleted},
		{"failed beats cancelled", []Result{Cancel(), Failure("x")}, StatusFailed},
		{"error beats failed", []Result{Failure("x"), Error("y")}, StatusError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Aggregate(tt.in...).Status(); got != tt.want {
				t.Fatalf("status = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggregate_CodeAndMessages(t *testing.T) {
	r := Aggregate(
		Created(),
		Failure("first", WithCodeOption(code.ValidationFailed)),
		NotFound(WithErrorOption("second")),
	)
	// Code comes from the first unsuccessful result carrying one; the
	// Created code on a successful input is ignored.
	if mustCode(t, r) != code.ValidationFailed {
		t.Fatalf("code = %q", mustCode(t, r))
	}
	msgs := r.Messages()
	if len(msgs) != 2 || msgs[0].Content() != "first" || msgs[1].Content() != "second" {
		t.Fatalf("messages = %v", msgs)
	}
}

func TestTypedFactories(t *testing.T) {
	r := SuccessOf(42)
	v, ok := r.Value()
	if !ok || v != 42 {
		t.Fatalf("Value() = %d, %v", v, ok)
	}

	created := CreatedOf("id-1")
	if mustCode(t, created.Result) != code.Created {
		t.Fatal("CreatedOf must carry code.Created")
	}

	failed := FailureOf[int]("nope")
	if _, ok := failed.Value(); ok {
		t.Fatal("failed result must carry no value")
	}
	if failed.Successful() {
		t.Fatal("FailureOf must not be successful")
	}
}
