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

	"dirpx.dev/dresp/apis"
)

// SuccessBuilder accumulates a success response carrying a payload of type T.
//
// Every method returns an updated copy; the receiver is never modified.
type SuccessBuilder[T any] struct {
	state State[T]
}

// Success starts a success response: status 200, HTTP/1.1, no headers, no
// payload.
func Success[T any]() SuccessBuilder[T] {
	return SuccessBuilder[T]{state: successState[T]()}
}

// Dataless starts a success response that never carries a payload; its
// "data" field is always null.
func Dataless() SuccessBuilder[struct{}] {
	return Success[struct{}]()
}

// Status sets the HTTP status code.
func (b SuccessBuilder[T]) Status(status int) SuccessBuilder[T] {
	b.state = b.state.withStatus(status)
	return b
}

// Version sets the HTTP protocol version.
func (b SuccessBuilder[T]) Version(v Version) SuccessBuilder[T] {
	b.state = b.state.withVersion(v)
	return b
}

// Header appends a header value. Multiple values per name are kept.
//
// An invalid name or value does not interrupt the chain: the header is
// dropped and the response degrades to a 400 "header_map" error when
// finalized.
func (b SuccessBuilder[T]) Header(key, value string) SuccessBuilder[T] {
	b.state = b.state.withHeader(key, value)
	return b
}

// Headers appends every value of h, with the same rules as Header.
func (b SuccessBuilder[T]) Headers(h http.Header) SuccessBuilder[T] {
	b.state = b.state.withHeaders(h)
	return b
}

// HeaderPairs appends alternating key/value pairs, with the same rules as
// Header. An odd number of arguments counts as an invalid header.
func (b SuccessBuilder[T]) HeaderPairs(kv ...string) SuccessBuilder[T] {
	b.state = b.state.withHeaderPairs(kv)
	return b
}

// Encoder replaces the body encoder. A nil encoder restores the default.
func (b SuccessBuilder[T]) Encoder(enc apis.Encoder) SuccessBuilder[T] {
	b.state = b.state.withEncoder(enc)
	return b
}

// Data sets the payload.
func (b SuccessBuilder[T]) Data(v T) SuccessBuilder[T] {
	b.state = b.state.withData(v)
	return b
}

// State returns the accumulated state.
func (b SuccessBuilder[T]) State() State[T] {
	return b.state
}

// Finalize turns the accumulated state into a wire response. See Finalize.
func (b SuccessBuilder[T]) Finalize() Response {
	return Finalize(b.state)
}

// Create is an alias of Finalize.
func (b SuccessBuilder[T]) Create() Response {
	return b.Finalize()
}
