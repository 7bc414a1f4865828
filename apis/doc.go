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

// Package apis defines the public Go-level contracts for dresults outcome
// resolution.
//
// The goal of this package is to provide *small, composable* interfaces
// that transport adapters (dresults/httpx, dresults/grpcx), payload
// builders (dresults/problem) and host code can depend on without
// importing the concrete resolver implementations (dresults/mapper,
// dresults/fieldmap).
//
// In other words: this package is the "surface" that HTTP adapters, gRPC
// adapters and hosting layers can target. Hosts may supply their own
// Mapper or FieldMapper implementations (for example a request-scoped
// field mapper) and the pipeline will honor them.
//
// This package must remain lightweight: interfaces and very small view
// types only.
package apis
