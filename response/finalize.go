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
	"net/http"

	"dirpx.dev/dresp"
	"dirpx.dev/dresp/code"
)

// headerMapMessage is the message of the entry emitted when a header was
// rejected during building.
const headerMapMessage = "Failed to create header map."

// Finalize turns s into a wire Response. It never fails and never panics:
//
//  1. a 500 fallback carrying dresp.FailureDefault is prepared up front;
//  2. if a header was rejected while building, the result is a 400 with a
//     single "parse" entry at ["response", "header_map"]; status, version,
//     headers, payload and errors of s are discarded;
//  3. otherwise Content-Type: application/json is appended to the headers
//     of s (existing values are kept);
//  4. {success, data, errors} is encoded with the encoder of s;
//  5. the response is assembled from the status and version of s.
//
// Any failure in steps 2-5 returns the fallback.
func Finalize[T any](s State[T]) Response {
	// 1) safety net, from literals only
	fallback := Response{
		Status:  http.StatusInternalServerError,
		Version: HTTP11,
		Header:  jsonHeader(),
		Body:    []byte(dresp.FailureDefault),
	}

	enc := s.encoder
	if enc == nil {
		enc = JSONEncoder{}
	}

	// 2) a rejected header outranks everything else
	if s.headerFailed {
		body, err := encode(enc, headerMapEnvelope())
		if err != nil {
			degraded("encode_header_map", err)
			return fallback
		}
		res, err := build(http.StatusBadRequest, HTTP11, jsonHeader(), body)
		if err != nil {
			degraded("build_header_map", err)
			return fallback
		}
		return res
	}

	// 3) caller headers + content type (appended, never replaced)
	h := s.header.Clone()
	if h == nil {
		h = make(http.Header, 1)
	}
	name, val, ok := headerField(headerContentType, contentTypeJSON)
	if !ok {
		degraded("content_type", nil)
		return fallback
	}
	h[name] = append(h[name], val)

	// 4) body
	env := dresp.Envelope[T]{
		Success: s.success,
		Errors:  cloneErrors(s.errors),
	}
	if s.hasData {
		d := s.data
		env.Data = &d
	}
	body, err := encode(enc, env)
	if err != nil {
		degraded("encode", err)
		return fallback
	}

	// 5) assemble
	res, err := build(s.status, s.version, h, body)
	if err != nil {
		degraded("build", err)
		return fallback
	}
	return res
}

// headerMapEnvelope is the body of the response that replaces one whose
// header map could not be built.
func headerMapEnvelope() dresp.Envelope[struct{}] {
	return dresp.Envelope[struct{}]{
		Success: false,
		Errors: []dresp.FieldError{
			dresp.E(code.Parse,
				dresp.WithPathOption("response", "header_map"),
				dresp.WithMessageOption(headerMapMessage),
			),
		},
	}
}

func degraded(stage string, err error) {
	entry := log().WithField("stage", stage)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn("dresp: response degraded to fallback")
}
