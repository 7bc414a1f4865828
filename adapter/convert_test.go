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

package adapter

import (
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dresults"
	"dirpx.dev/dresults/apis"
	"dirpx.dev/dresults/mapper"
)

func TestToDescriptor(t *testing.T) {
	res := dresults.NotFound(dresults.WithErrorOption("no such order"))
	st := mapper.Default().Status(res)

	d := ToDescriptor(res, st)
	if d.Status != "Failed" || d.Code != "NotFound" {
		t.Fatalf("descriptor = %+v", d)
	}
	if d.HTTPStatus != 404 || d.GRPCCode != int(codes.NotFound) {
		t.Fatalf("transport projection = %d/%d", d.HTTPStatus, d.GRPCCode)
	}
	if d.Title != "no such order" || d.MessageCount != 1 {
		t.Fatalf("descriptor = %+v", d)
	}
}

func TestToDescriptor_CodelessOutcome(t *testing.T) {
	d := ToDescriptor(dresults.Success(), apis.Status{HTTP: 200, GRPC: codes.OK})
	if d.Code != "" || d.Title != "" || d.MessageCount != 0 {
		t.Fatalf("descriptor = %+v", d)
	}
	if d.Status != "Completed" {
		t.Fatalf("status = %q", d.Status)
	}
}
