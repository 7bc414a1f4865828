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
	"sort"
	"strings"
)

// FieldKey is the metadata key that binds a message to a specific input
// field. The validation field mapper gives this key priority over the
// "field: message" textual convention.
const FieldKey = "field"

// metaEntry keeps the original key casing next to the value so lookups
// can be case-insensitive while serialization preserves what the caller
// wrote.
type metaEntry struct {
	key   string
	value any
}

// Metadata is a read-only, case-insensitive key/value collection attached
// to a Message.
//
// It is built by copying the caller's map at construction time, so later
// mutation of the source map is inert. The zero value is an empty,
// usable collection.
type Metadata struct {
	entries map[string]metaEntry
}

// newMetadata copies src into a fresh case-insensitive collection.
// When two source keys collide case-insensitively, the first-seen casing
// is kept for the key and the later value wins. Map iteration order is
// not deterministic for such collisions, so callers should simply avoid
// them.
func newMetadata(src map[string]any) Metadata {
	if len(src) == 0 {
		return Metadata{}
	}
	entries := make(map[string]metaEntry, len(src))
	for k, v := range src {
		lk := strings.ToLower(k)
		if prev, ok := entries[lk]; ok {
			entries[lk] = metaEntry{key: prev.key, value: v}
			continue
		}
		entries[lk] = metaEntry{key: k, value: v}
	}
	return Metadata{entries: entries}
}

// Get returns the value stored under key, matching case-insensitively.
func (m Metadata) Get(key string) (any, bool) {
	e, ok := m.entries[strings.ToLower(key)]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Len returns the number of entries.
func (m Metadata) Len() int { return len(m.entries) }

// Keys returns the original-cased keys in sorted order. Sorting keeps
// serialization and logging deterministic.
func (m Metadata) Keys() []string {
	if len(m.entries) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		keys = append(keys, e.key)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a fresh map snapshot with original key casing. Mutating the
// returned map does not affect the Metadata.
func (m Metadata) Map() map[string]any {
	if len(m.entries) == 0 {
		return nil
	}
	out := make(map[string]any, len(m.entries))
	for _, e := range m.entries {
		out[e.key] = e.value
	}
	return out
}

// withDetail returns a copy of the collection with one extra entry.
func (m Metadata) withDetail(key string, value any) Metadata {
	entries := make(map[string]metaEntry, len(m.entries)+1)
	for lk, e := range m.entries {
		entries[lk] = e
	}
	lk := strings.ToLower(key)
	if prev, ok := entries[lk]; ok {
		entries[lk] = metaEntry{key: prev.key, value: value}
	} else {
		entries[lk] = metaEntry{key: key, value: value}
	}
	return Metadata{entries: entries}
}

// Message is one immutable entry in a Result's message list.
//
// Content is free text. By convention a message may address a specific
// input field either via the FieldKey metadata entry or via the
// "field: message" textual form; the fieldmap package implements that
// heuristic.
type Message struct {
	typ     MessageType
	content string
	meta    Metadata
}

// NewMessage builds a Message, defensively copying meta. Passing a nil
// map is fine and yields a message without metadata.
func NewMessage(t MessageType, content string, meta map[string]any) Message {
	return Message{typ: t, content: content, meta: newMetadata(meta)}
}

// InfoMessage builds an information-level message without metadata.
func InfoMessage(content string) Message {
	return Message{typ: MessageInformation, content: content}
}

// WarningMessage builds a warning-level message without metadata.
func WarningMessage(content string) Message {
	return Message{typ: MessageWarning, content: content}
}

// ErrorMessage builds an error-level message without metadata.
func ErrorMessage(content string) Message {
	return Message{typ: MessageError, content: content}
}

// FieldMessage builds an error-level message bound to a field via the
// FieldKey metadata entry. The field value is stored verbatim.
func FieldMessage(field, content string) Message {
	return NewMessage(MessageError, content, map[string]any{FieldKey: field})
}

// Type returns the message classification.
func (m Message) Type() MessageType { return m.typ }

// Content returns the free-text content.
func (m Message) Content() string { return m.content }

// Metadata returns the read-only metadata collection.
func (m Message) Metadata() Metadata { return m.meta }

// Field returns the FieldKey metadata value when it is a non-blank
// string. This is the lookup the validation field mapper performs first.
func (m Message) Field() (string, bool) {
	v, ok := m.meta.Get(FieldKey)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// WithDetail returns a copy of the message with one extra metadata entry.
// The original message is not modified.
func (m Message) WithDetail(key string, value any) Message {
	cp := m
	cp.meta = m.meta.withDetail(key, value)
	return cp
}

// messageView is the wire projection of a Message used both for the
// "messages" extension of problem payloads and for full-result bodies.
type messageView struct {
	Type     string         `json:"type"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// view returns the serializable projection of the message.
func (m Message) view() messageView {
	return messageView{
		Type:     m.typ.String(),
		Content:  m.content,
		Metadata: m.meta.Map(),
	}
}

// MarshalJSON serializes the message as {type, content, metadata}.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.view())
}
