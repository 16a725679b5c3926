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

package response

import (
	"bytes"
	"encoding/json"
	"fmt"

	"dirpx.dev/dresp/apis"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// EncodeError reports that a response body could not be encoded.
type EncodeError struct {
	Cause error
}

// Error implements the built-in error interface.
func (e *EncodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("dresp: encode response body: %v", e.Cause)
}

// Unwrap returns the underlying encoder error.
func (e *EncodeError) Unwrap() error { return e.Cause }

// JSONEncoder is the default body encoder.
//
// Output is compact, carries no trailing newline and, unless EscapeHTML is
// set, leaves '<', '>' and '&' unescaped.
type JSONEncoder struct {
	EscapeHTML bool
}

var _ apis.Encoder = JSONEncoder{}

// Encode marshals v. Failures are returned as *EncodeError.
func (e JSONEncoder) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(e.EscapeHTML)
	if err := enc.Encode(v); err != nil {
		return nil, &EncodeError{Cause: err}
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// encode runs enc and turns a panic inside it (or inside a payload's
// MarshalJSON) into an *EncodeError.
func encode(enc apis.Encoder, v any) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, &EncodeError{Cause: fmt.Errorf("panic: %v", r)}
		}
	}()
	return enc.Encode(v)
}

// ProtoData wraps a protobuf message so it can be used as a response
// payload. The message is rendered through protojson, which is the only
// correct JSON mapping for protobuf (json_name fields, well-known types,
// enums as names).
type ProtoData struct {
	msg  proto.Message
	opts protojson.MarshalOptions
}

// Proto wraps m with default protojson options.
func Proto(m proto.Message) ProtoData {
	return ProtoData{msg: m}
}

// ProtoWith wraps m with explicit protojson options.
func ProtoWith(m proto.Message, opts protojson.MarshalOptions) ProtoData {
	return ProtoData{msg: m, opts: opts}
}

// Message returns the wrapped message.
func (p ProtoData) Message() proto.Message { return p.msg }

// MarshalJSON implements json.Marshaler. A nil message encodes as null.
func (p ProtoData) MarshalJSON() ([]byte, error) {
	if p.msg == nil || !p.msg.ProtoReflect().IsValid() {
		return []byte("null"), nil
	}
	return p.opts.Marshal(p.msg)
}
