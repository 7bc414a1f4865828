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

// Status describes how an operation ended. It is terminal: a Result is
// created with exactly one Status and never changes it afterwards.
//
// The numeric order of the constants doubles as a severity ranking
// (Completed < Cancelled < Failed < Error), which Aggregate relies on
// when combining multiple results.
type Status uint8

const (
	// StatusCompleted means the operation finished and produced its
	// intended effect (and, for typed results, usually a value).
	StatusCompleted Status = iota

	// StatusCancelled means the operation was stopped before completion,
	// typically by the caller or by context propagation.
	StatusCancelled

	// StatusFailed means the operation ran but could not produce its
	// intended effect for a domain-level reason (validation, missing
	// resource, conflict, ...).
	StatusFailed

	// StatusError means the operation was aborted by an unexpected
	// fault (panic, downstream exception). This is the status the host
	// boundary assigns to unhandled faults.
	StatusError
)

// Successful reports whether the status represents a completed operation.
func (s Status) Successful() bool { return s == StatusCompleted }

// String returns the canonical name of the status. This is the exact text
// exposed as "svcStatus" in problem payloads.
func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	case StatusFailed:
		return "Failed"
	case StatusError:
		return "Error"
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler so Status serializes as
// its canonical name in JSON payloads.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MessageType classifies a single Message carried by a Result.
type MessageType uint8

const (
	// MessageInformation is a neutral, non-actionable note.
	MessageInformation MessageType = iota

	// MessageWarning flags something the caller may want to act on, but
	// that did not prevent the operation from completing.
	MessageWarning

	// MessageError describes why the operation did not complete. Error
	// messages are the ones the validation field mapper inspects.
	MessageError
)

// String returns the canonical name of the message type.
func (t MessageType) String() string {
	switch t {
	case MessageInformation:
		return "Information"
	case MessageWarning:
		return "Warning"
	case MessageError:
		return "Error"
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (t MessageType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
