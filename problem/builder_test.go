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
	"net/http/httptest"
	"strings"
	"testing"

	"dirpx.dev/dresults"
	"dirpx.dev/dresults/code"
)

func buildStandard(t *testing.T, b Builder, r *http.Request, res dresults.Result, status int) *Details {
	t.Helper()
	d, ok := b.Build(r, res, status).(*Details)
	if !ok {
		t.Fatal("expected the standard shape")
	}
	return d
}

func TestBuild_StandardShape(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	res := dresults.Failure("insufficient funds", dresults.WithCodeOption(code.PreconditionFailed))

	d := buildStandard(t, Builder{}, req, res, 412)

	if d.Type != "https://httpstatuses.io/412" {
		t.Fatalf("type = %q", d.Type)
	}
	if d.Title != "insufficient funds" {
		t.Fatalf("title = %q", d.Title)
	}
	if d.Status != 412 || d.HTTPStatus() != 412 {
		t.Fatalf("status = %d", d.Status)
	}
	if d.Detail != "" {
		t.Fatalf("single message must leave detail empty, got %q", d.Detail)
	}
	if d.Instance != "/orders" {
		t.Fatalf("instance = %q", d.Instance)
	}
	if d.Extensions[ExtStatus] != "Failed" {
		t.Fatalf("svcStatus = %v", d.Extensions[ExtStatus])
	}
	if d.Extensions[ExtCode] != "PreconditionFailed" {
		t.Fatalf("svcCode = %v", d.Extensions[ExtCode])
	}
}

func TestBuild_TitleFallsBackToStatusName(t *testing.T) {
	d := buildStandard(t, Builder{}, nil, dresults.Cancel(), 409)
	if d.Title != "Cancelled" {
		t.Fatalf("title = %q", d.Title)
	}
	if d.Instance != "" {
		t.Fatal("no request, no instance")
	}
	if _, ok := d.Extensions[ExtCode]; ok {
		t.Fatal("svcCode must be absent for code-less outcomes")
	}
}

func TestBuild_DetailJoinsMessages(t *testing.T) {
	res := dresults.Failure("first").WithError("second").WithWarning("third")
	d := buildStandard(t, Builder{}, nil, res, 400)
	if d.Title != "first" {
		t.Fatalf("title = %q", d.Title)
	}
	if d.Detail != "first; second; third" {
		t.Fatalf("detail = %q", d.Detail)
	}
}

func TestBuild_ValidationShape(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	res := dresults.ValidationFailure(
		dresults.ErrorMessage("Name: Name is required."),
		dresults.FieldMessage("Email", "invalid"),
	)

	p := Builder{UseValidation: true}.Build(req, res, 400)
	d, ok := p.(*ValidationDetails)
	if !ok {
		t.Fatal("expected the validation shape")
	}
	if d.Title != ValidationTitle {
		t.Fatalf("title = %q", d.Title)
	}
	if got := d.Errors["Name"]; len(got) != 1 || got[0] != "Name is required." {
		t.Fatalf("errors[Name] = %v", got)
	}
	if got := d.Errors["Email"]; len(got) != 1 || got[0] != "invalid" {
		t.Fatalf("errors[Email] = %v", got)
	}
	if d.Instance != "/users" {
		t.Fatalf("instance = %q", d.Instance)
	}
}

func TestBuild_ValidationFallsBackToStandard(t *testing.T) {
	// Validation enabled but no message is field-addressable: the
	// standard shape applies.
	res := dresults.Failure("something broke")
	b := Builder{UseValidation: true}
	if _, ok := b.Build(nil, res, 400).(*Details); !ok {
		t.Fatal("expected the standard shape when no field errors exist")
	}
}

type staticMapper map[string][]string

func (m staticMapper) Map([]dresults.Message) map[string][]string { return m }

func TestBuild_ScopedMapperWins(t *testing.T) {
	b := Builder{
		UseValidation: true,
		FieldMapper:   staticMapper{"fromOptions": {"x"}},
	}
	scoped := staticMapper{"fromScope": {"y"}}

	p := b.BuildScoped(nil, dresults.Failure("z"), 400, scoped)
	d, ok := p.(*ValidationDetails)
	if !ok {
		t.Fatal("expected the validation shape")
	}
	if _, ok := d.Errors["fromScope"]; !ok {
		t.Fatalf("scoped mapper must win, got %v", d.Errors)
	}
}

func TestBuild_HooksRunLast(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/a", nil)
	b := Builder{
		CustomizeProblem: func(r *http.Request, res dresults.Result, d *Details) {
			d.Title = "overridden"
			d.Extensions["tenant"] = "t-1"
		},
	}
	d := buildStandard(t, b, req, dresults.Failure("x"), 400)
	if d.Title != "overridden" {
		t.Fatalf("title = %q", d.Title)
	}
	if d.Extensions["tenant"] != "t-1" {
		t.Fatal("hook extension lost")
	}
	// Hook left Instance empty, so the request path fills it afterwards.
	if d.Instance != "/a" {
		t.Fatalf("instance = %q", d.Instance)
	}
}

func TestBuild_HookInstanceIsKept(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/a", nil)
	b := Builder{
		CustomizeProblem: func(r *http.Request, res dresults.Result, d *Details) {
			d.Instance = "urn:trace:1"
		},
	}
	d := buildStandard(t, b, req, dresults.Failure("x"), 400)
	if d.Instance != "urn:trace:1" {
		t.Fatalf("instance = %q, hook value must not be overwritten", d.Instance)
	}
}

func TestDetails_MarshalFlattensExtensions(t *testing.T) {
	d := &Details{
		Type:       "https://httpstatuses.io/400",
		Title:      "bad",
		Status:     400,
		Extensions: map[string]any{ExtStatus: "Failed", "tenant": "t-1"},
	}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, sub := range []string{`"svcStatus":"Failed"`, `"tenant":"t-1"`, `"title":"bad"`, `"status":400`} {
		if !strings.Contains(s, sub) {
			t.Fatalf("payload missing %s: %s", sub, s)
		}
	}
	if strings.Contains(s, `"Extensions"`) || strings.Contains(s, `"detail"`) {
		t.Fatalf("unexpected members: %s", s)
	}
}

func TestValidationDetails_Marshal(t *testing.T) {
	d := &ValidationDetails{
		Type:       "https://httpstatuses.io/400",
		Title:      ValidationTitle,
		Status:     400,
		Errors:     map[string][]string{"name": {"required"}},
		Extensions: map[string]any{ExtStatus: "Failed"},
	}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, sub := range []string{`"errors":{"name":["required"]}`, `"svcStatus":"Failed"`} {
		if !strings.Contains(s, sub) {
			t.Fatalf("payload missing %s: %s", sub, s)
		}
	}
}
