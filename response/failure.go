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
	"errors"
	"net/http"

	"dirpx.dev/dresp"
	"dirpx.dev/dresp/adapter"
	"dirpx.dev/dresp/apis"
	"dirpx.dev/dresp/code"
	"dirpx.dev/dresp/mapper"
)

// FailureBuilder accumulates a failure response. A failure never carries a
// payload; its "data" field is always null.
//
// Every method returns an updated copy; the receiver is never modified.
type FailureBuilder struct {
	state State[struct{}]
}

// Failure starts a failure response: status 400, HTTP/1.1, no headers, no
// errors.
func Failure() FailureBuilder {
	return FailureBuilder{state: failureState[struct{}]()}
}

// FailureCode starts a failure response for a single well-known or custom
// code. The status is resolved through m (mapper.Default when nil) and the
// entry carries the code's default message.
func FailureCode(m apis.Mapper, c code.Code) FailureBuilder {
	if m == nil {
		m = mapper.Default()
	}
	return Failure().
		Status(m.HTTPStatus(c)).
		Error(dresp.E(c, dresp.WithDefaultMessageOption()))
}

// FromError starts a failure response describing err.
//
// The error is inspected in this order:
//
//   - apis.DetailedError with at least one entry: its entries are used;
//   - dresp.FieldError: used as the single entry;
//   - apis.CodedError: one entry with its code and err.Error() as message.
//
// The status comes from apis.StatusError when implemented, otherwise from
// the default mapper applied to the first entry's code. Any other error
// (including nil) is answered as a 500 with the "server" entry; its text is
// logged, never exposed.
func FromError(err error) FailureBuilder {
	entries := adapter.Entries(err)
	if len(entries) == 0 {
		if err != nil {
			log().WithError(err).Warn("dresp: unclassified error answered as internal server error")
		}
		return FailureCode(nil, code.Server).Status(http.StatusInternalServerError)
	}

	status := mapper.Default().HTTPStatus(code.Code(entries[0].Code))
	var se apis.StatusError
	if errors.As(err, &se) {
		status = se.HTTPStatus()
	}
	return Failure().Status(status).Errors(entries...)
}

// Status sets the HTTP status code.
func (b FailureBuilder) Status(status int) FailureBuilder {
	b.state = b.state.withStatus(status)
	return b
}

// Version sets the HTTP protocol version.
func (b FailureBuilder) Version(v Version) FailureBuilder {
	b.state = b.state.withVersion(v)
	return b
}

// Header appends a header value. Multiple values per name are kept.
//
// An invalid name or value does not interrupt the chain: the header is
// dropped and the response degrades to a 400 "header_map" error when
// finalized.
func (b FailureBuilder) Header(key, value string) FailureBuilder {
	b.state = b.state.withHeader(key, value)
	return b
}

// Headers appends every value of h, with the same rules as Header.
func (b FailureBuilder) Headers(h http.Header) FailureBuilder {
	b.state = b.state.withHeaders(h)
	return b
}

// HeaderPairs appends alternating key/value pairs, with the same rules as
// Header. An odd number of arguments counts as an invalid header.
func (b FailureBuilder) HeaderPairs(kv ...string) FailureBuilder {
	b.state = b.state.withHeaderPairs(kv)
	return b
}

// Encoder replaces the body encoder. A nil encoder restores the default.
func (b FailureBuilder) Encoder(enc apis.Encoder) FailureBuilder {
	b.state = b.state.withEncoder(enc)
	return b
}

// Errors sets the error entries, replacing any existing ones.
func (b FailureBuilder) Errors(errs ...dresp.FieldError) FailureBuilder {
	b.state = b.state.withErrors(errs)
	return b
}

// AddErrors appends error entries to the existing ones.
func (b FailureBuilder) AddErrors(errs ...dresp.FieldError) FailureBuilder {
	b.state = b.state.withAddedErrors(errs)
	return b
}

// AddError appends a single error entry.
func (b FailureBuilder) AddError(e dresp.FieldError) FailureBuilder {
	return b.AddErrors(e)
}

// Error appends a single error entry. Same as AddError.
func (b FailureBuilder) Error(e dresp.FieldError) FailureBuilder {
	return b.AddErrors(e)
}

// State returns the accumulated state.
func (b FailureBuilder) State() State[struct{}] {
	return b.state
}

// Finalize turns the accumulated state into a wire response. See Finalize.
func (b FailureBuilder) Finalize() Response {
	return Finalize(b.state)
}

// Create is an alias of Finalize.
func (b FailureBuilder) Create() Response {
	return b.Finalize()
}
