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
	"dirpx.dev/dresults"
	"dirpx.dev/dresults/apis"
)

// ToDescriptor converts an outcome together with its resolved transport
// status into a portable ResultDescriptor.
//
// The descriptor is intended for structured logging, tracing attributes,
// or message-bus propagation. It carries both the logical status/code
// and the concrete transport statuses (HTTP and gRPC). No redaction is
// performed: the title is the outcome's own leading message, so callers
// logging descriptors of fault outcomes get the generic text unless
// exception details were enabled upstream.
func ToDescriptor(res dresults.Result, st apis.Status) apis.ResultDescriptor {
	c, _ := res.Code()
	title := ""
	if first, ok := res.FirstMessage(); ok {
		title = first.Content()
	}
	return apis.ResultDescriptor{
		Status:       res.Status().String(),
		Code:         c.Value(),
		HTTPStatus:   st.HTTP,
		GRPCCode:     int(st.GRPC),
		Title:        title,
		MessageCount: len(res.Messages()),
	}
}
