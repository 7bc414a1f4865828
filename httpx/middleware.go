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
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"dirpx.dev/dresults"
	"dirpx.dev/dresults/adapter"
	"dirpx.dev/dresults/code"
)

// requestIDHeader is consulted before a trace id is generated.
const requestIDHeader = "X-Request-Id"

// Recover wraps next so that unhandled panics surface as Error-status
// outcomes rendered through the writer.
//
// The outcome core itself never logs; this middleware is the host-fault
// boundary, so it records the fault through log using the flat
// descriptor fields. The response body stays generic unless
// IncludeExceptionDetails is enabled on the writer's options.
func Recover(next http.Handler, w Writer, log zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// net/http uses this sentinel to abort a response;
				// re-panic so the server handles it as intended.
				panic(rec)
			}

			res := faultResult(fmt.Sprintf("%T", rec), fmt.Sprint(rec), r, w.Opt)

			desc := adapter.ToDescriptor(res, w.Opt.mapperOrDefault().Status(res))
			log.Error().
				Str("status", desc.Status).
				Str("code", desc.Code).
				Int("http_status", desc.HTTPStatus).
				Str("panic", fmt.Sprint(rec)).
				Str("path", r.URL.Path).
				Str("method", r.Method).
				Msg("unhandled fault")

			w.Write(rw, r, res, 0, "")
		}()

		next.ServeHTTP(rw, r)
	})
}

// ResultFromError converts a downstream error into an Error-status
// outcome the pipeline can render. A nil error yields a plain success.
//
// The user-facing message is always the generic text; the error's own
// text and type are attached as metadata only when
// IncludeExceptionDetails is enabled.
func ResultFromError(err error, opt Options, r *http.Request) dresults.Result {
	if err == nil {
		return dresults.Success()
	}
	return faultResult(fmt.Sprintf("%T", err), err.Error(), r, opt)
}

// faultResult builds the Error outcome for one host fault, attaching
// diagnostic metadata to its message when the options permit.
func faultResult(faultType, faultText string, r *http.Request, opt Options) dresults.Result {
	res := dresults.Error("", dresults.WithCodeOption(code.UnexpectedError))
	if !opt.IncludeExceptionDetails {
		return res
	}

	res = res.
		WithDetail("exceptionType", faultType).
		WithDetail("source", faultText).
		WithDetail("stackTrace", string(debug.Stack())).
		WithDetail("traceId", traceID(r))
	if r != nil {
		res = res.
			WithDetail("path", r.URL.Path).
			WithDetail("method", r.Method)
	}
	return res
}

// traceID picks the inbound request id when present, otherwise mints one.
func traceID(r *http.Request) string {
	if r != nil {
		if id := r.Header.Get(requestIDHeader); id != "" {
			return id
		}
	}
	return uuid.NewString()
}
