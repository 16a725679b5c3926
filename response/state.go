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
	"maps"
	"net/http"
	"slices"

	"dirpx.dev/dresp"
	"dirpx.dev/dresp/apis"
)

// State is the accumulated intent of a response under construction.
//
// A State is a value: every mutation produces a new State and never changes
// one that was handed out before. The header map and error list are copied
// before they are modified, so two chains forked from the same State do not
// observe each other.
//
// The zero State is not meaningful; obtain one from a builder.
type State[T any] struct {
	status  int
	version Version
	header  http.Header

	// headerFailed latches once any header is rejected. Nothing clears it.
	headerFailed bool

	success bool
	data    T
	hasData bool
	errors  []dresp.FieldError

	// encoder is nil for the package default (JSONEncoder).
	encoder apis.Encoder
}

func successState[T any]() State[T] {
	return State[T]{
		status:  http.StatusOK,
		version: HTTP11,
		header:  http.Header{},
		success: true,
	}
}

func failureState[T any]() State[T] {
	return State[T]{
		status:  http.StatusBadRequest,
		version: HTTP11,
		header:  http.Header{},
		success: false,
	}
}

// Status returns the HTTP status code.
func (s State[T]) Status() int { return s.status }

// Version returns the protocol version.
func (s State[T]) Version() Version { return s.version }

// Header returns a copy of the accumulated headers.
func (s State[T]) Header() http.Header {
	if s.header == nil {
		return http.Header{}
	}
	return s.header.Clone()
}

// HeaderFailed reports whether a header was rejected at any point.
func (s State[T]) HeaderFailed() bool { return s.headerFailed }

// Success reports whether this is a success response.
func (s State[T]) Success() bool { return s.success }

// Data returns the payload and whether one was set.
func (s State[T]) Data() (T, bool) { return s.data, s.hasData }

// Errors returns a copy of the accumulated error entries.
func (s State[T]) Errors() []dresp.FieldError { return cloneErrors(s.errors) }

func (s State[T]) withStatus(status int) State[T] {
	s.status = status
	return s
}

func (s State[T]) withVersion(v Version) State[T] {
	s.version = v
	return s
}

// withHeader appends one header value. An invalid name or value latches
// headerFailed and drops the header; the chain continues.
func (s State[T]) withHeader(key, value string) State[T] {
	name, val, ok := headerField(key, value)
	if !ok {
		s.headerFailed = true
		return s
	}
	h := s.header.Clone()
	if h == nil {
		h = make(http.Header, 1)
	}
	h[name] = append(h[name], val)
	s.header = h
	return s
}

// withHeaders appends every value of h. Keys are visited in sorted order so
// the result does not depend on map iteration.
func (s State[T]) withHeaders(h http.Header) State[T] {
	for _, k := range slices.Sorted(maps.Keys(h)) {
		for _, v := range h[k] {
			s = s.withHeader(k, v)
		}
	}
	return s
}

// withHeaderPairs appends alternating key/value pairs. A trailing key with
// no value counts as a rejected header.
func (s State[T]) withHeaderPairs(kv []string) State[T] {
	if len(kv)%2 != 0 {
		s.headerFailed = true
		kv = kv[:len(kv)-1]
	}
	for i := 0; i < len(kv); i += 2 {
		s = s.withHeader(kv[i], kv[i+1])
	}
	return s
}

func (s State[T]) withData(v T) State[T] {
	s.data = v
	s.hasData = true
	return s
}

// withErrors replaces the whole error list.
func (s State[T]) withErrors(errs []dresp.FieldError) State[T] {
	s.errors = cloneErrors(errs)
	return s
}

// withAddedErrors extends the error list.
func (s State[T]) withAddedErrors(errs []dresp.FieldError) State[T] {
	out := make([]dresp.FieldError, 0, len(s.errors)+len(errs))
	out = append(out, s.errors...)
	for _, e := range errs {
		out = append(out, e.Clone())
	}
	s.errors = out
	return s
}

func (s State[T]) withEncoder(enc apis.Encoder) State[T] {
	s.encoder = enc
	return s
}

// cloneErrors deep-copies errs. The result is never nil, so it always
// encodes as a JSON array.
func cloneErrors(errs []dresp.FieldError) []dresp.FieldError {
	out := make([]dresp.FieldError, len(errs))
	for i, e := range errs {
		out[i] = e.Clone()
	}
	return out
}
