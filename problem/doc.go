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

// Package problem assembles RFC7807-style problem payloads from outcomes.
//
// Two shapes exist:
//
//   - the standard shape (*Details), titled after the outcome's first
//     message, with all messages joined into the detail member when more
//     than one exists;
//   - the validation shape (*ValidationDetails), used when validation
//     payloads are enabled and the field mapper extracted at least one
//     field-level error; its errors member is the field -> errors
//     dictionary.
//
// Both shapes share an extension bag exposing the outcome itself:
// svcStatus (the status name), messages (a shallow {type, content,
// metadata} projection), and svcCode when the outcome carries a domain
// code. Problem type URIs follow "https://httpstatuses.io/{status}".
//
// Customization hooks run last and may mutate the payload in place; the
// builder never recovers from a panicking hook. Serialization flattens
// the extension bag into the top-level JSON object, as RFC7807 requires
// for extension members.
package problem
