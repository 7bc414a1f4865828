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

// freezeCodeHTTP makes an immutable copy of a per-code HTTP map. Used
// when finalizing the mapper so later mutations to the builder (or
// caller-owned maps) cannot affect the frozen snapshot.
func freezeCodeHTTP(src map[code.Code]int) map[code.Code]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeCodeGRPC makes an immutable copy of a per-code gRPC map.
func freezeCodeGRPC(src map[code.Code]codes.Code) map[code.Code]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeStatusHTTP makes an immutable copy of a per-status HTTP map.
func freezeStatusHTTP(src map[dresults.Status]int) map[dresults.Status]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[dresults.Status]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeStatusGRPC makes an immutable copy of a per-status gRPC map.
func freezeStatusGRPC(src map[dresults.Status]codes.Code) map[dresults.Status]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[dresults.Status]codes.Code, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
