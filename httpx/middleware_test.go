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
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"dirpx.dev/dresults"
)

func panicking() http.Handler {
	return http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})
}

func TestRecover_GenericBody(t *testing.T) {
	h := Recover(panicking(), Writer{}, zerolog.Nop())
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rw.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rw.Code)
	}
	body := rw.Body.String()
	if !strings.Contains(body, dresults.GenericErrorText) {
		t.Fatalf("body must carry the generic text: %s", body)
	}
	if strings.Contains(body, "kaboom") || strings.Contains(body, "goroutine") {
		t.Fatalf("panic internals leaked: %s", body)
	}
}

func TestRecover_ExceptionDetails(t *testing.T) {
	w := Writer{Opt: Options{
		IncludeExceptionDetails:  true,
		IncludeFullResultPayload: true,
	}}
	h := Recover(panicking(), w, zerolog.Nop())
	rw := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(requestIDHeader, "req-1")
	h.ServeHTTP(rw, req)

	body := rw.Body.String()
	for _, sub := range []string{"kaboom", `"traceId":"req-1"`, `"path":"/boom"`, "stackTrace"} {
		if !strings.Contains(body, sub) {
			t.Fatalf("body missing %s: %s", sub, body)
		}
	}
}

func TestRecover_LogsTheFault(t *testing.T) {
	var sink strings.Builder
	log := zerolog.New(&sink)

	h := Recover(panicking(), Writer{}, log)
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest(http.MethodDelete, "/boom", nil))

	out := sink.String()
	for _, sub := range []string{`"status":"Error"`, `"http_status":500`, `"panic":"kaboom"`, `"method":"DELETE"`, "unhandled fault"} {
		if !strings.Contains(out, sub) {
			t.Fatalf("log missing %s: %s", sub, out)
		}
	}
}

func TestRecover_PassThrough(t *testing.T) {
	ok := http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(http.StatusTeapot)
	})
	h := Recover(ok, Writer{}, zerolog.Nop())
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/", nil))
	if rw.Code != http.StatusTeapot {
		t.Fatalf("status = %d, handler response must pass through", rw.Code)
	}
}

func TestRecover_RepanicsAbortHandler(t *testing.T) {
	abort := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})
	h := Recover(abort, Writer{}, zerolog.Nop())
	defer func() {
		if recover() != http.ErrAbortHandler {
			t.Fatal("ErrAbortHandler must be re-panicked")
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestResultFromError(t *testing.T) {
	if !ResultFromError(nil, Options{}, nil).Successful() {
		t.Fatal("nil error must yield success")
	}

	res := ResultFromError(errors.New("pg: connection refused"), Options{}, nil)
	if res.Status() != dresults.StatusError {
		t.Fatalf("status = %v", res.Status())
	}
	m, _ := res.FirstMessage()
	if m.Content() != dresults.GenericErrorText {
		t.Fatalf("content = %q, internals must not leak", m.Content())
	}

	detailed := ResultFromError(errors.New("pg: connection refused"), Options{IncludeExceptionDetails: true}, nil)
	dm, _ := detailed.FirstMessage()
	if v, ok := dm.Metadata().Get("source"); !ok || v != "pg: connection refused" {
		t.Fatalf("source detail = %v, %v", v, ok)
	}
	if _, ok := dm.Metadata().Get("traceId"); !ok {
		t.Fatal("traceId detail missing")
	}
}
