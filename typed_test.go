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
	"strings"
	"testing"

	"dirpx.dev/dresults/code"
)

func TestTypedResult_ZeroValuePayloadIsUnambiguous(t *testing.T) {
	// 0 is a legitimate carried value; comma-ok must distinguish it from
	// "no value".
	r := SuccessOf(0)
	v, ok := r.Value()
	if !ok || v != 0 {
		t.Fatalf("Value() = %d, %v", v, ok)
	}

	var none TypedResult[int]
	if _, ok := none.Value(); ok {
		t.Fatal("zero TypedResult must carry no value")
	}
}

func TestTypedResult_MustValue(t *testing.T) {
	if SuccessOf("x").MustValue() != "x" {
		t.Fatal("MustValue mismatch")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("MustValue must panic when no value is present")
		}
	}()
	FailureOf[string]("nope").MustValue()
}

func TestTypedResult_WithValue_CopyOnWrite(t *testing.T) {
	r1 := FailureOf[int]("x")
	r2 := r1.WithValue(7)
	if _, ok := r1.Value(); ok {
		t.Fatal("original gained a value")
	}
	if v, ok := r2.Value(); !ok || v != 7 {
		t.Fatalf("Value() = %d, %v", v, ok)
	}
}

func TestTypedResult_WithCodePreservesValue(t *testing.T) {
	r := SuccessOf(7).WithCode(code.Updated)
	if v, ok := r.Value(); !ok || v != 7 {
		t.Fatal("value lost on WithCode")
	}
	if c, _ := r.Code(); c != code.Updated {
		t.Fatal("code not applied")
	}
}

func TestTypedResult_Untyped(t *testing.T) {
	r := SuccessOf(7, WithInformationOption("done"))
	u := r.Untyped()
	if u.Status() != StatusCompleted || len(u.Messages()) != 1 {
		t.Fatal("untyped projection mismatch")
	}
}

func TestTypedResult_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(SuccessOf(42))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"value":42`) {
		t.Fatalf("value missing: %s", b)
	}

	b, err = json.Marshal(FailureOf[int]("nope"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), `"value"`) {
		t.Fatalf("absent value must be omitted: %s", b)
	}
}
