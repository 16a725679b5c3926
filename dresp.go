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

package dresp

import (
	"strings"

	"dirpx.dev/dresp/code"
	"dirpx.dev/dresp/fieldpath"
)

// FailureDefault is the last-resort response body. It is written verbatim,
// byte for byte, whenever no other response can be produced.
const FailureDefault = `{"success":false,"data":null,"errors":[{"code":"server","path":[],"message":"Internal server error."}]}`

// FieldError is one entry of the "errors" array of a response envelope.
//
// It carries:
//   - Code: machine-readable classification. Any string is accepted; the
//     well-known values live in package code;
//   - Path: logical location of the problem, e.g. ["json", "title"]. An empty
//     path means the error concerns the request or response as a whole;
//   - Message: optional human-readable detail, encoded as null when absent.
//
// All WithX helpers return a copy, so a FieldError can be shared and refined
// in a functional style.
type FieldError struct {
	Code    string   `json:"code"`
	Path    []string `json:"path"`
	Message *string  `json:"message"`
}

// E builds a FieldError with the given code and applies opts in order.
//
// Usage:
//
//	dresp.E(code.Parse,
//	    dresp.WithPathOption("json", "title"),
//	    dresp.WithMessageOption("Invalid title"),
//	)
//
// Construction never fails and performs no validation.
func E[C ~string](c C, opts ...Option) FieldError {
	e := FieldError{Code: string(c), Path: []string{}}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// NewFieldError returns an entry with code "unknown", an empty path and no
// message.
func NewFieldError() FieldError {
	return E(code.Unknown)
}

// Error implements the built-in error interface, so entries can travel
// through ordinary error returns before they are put into a response.
//
// The format is:
//
//	<code>: <message>
//
// or, when a path is present:
//
//	<code> at <path>: <message>
func (e FieldError) Error() string {
	var b strings.Builder
	b.WriteString(e.Code)
	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(fieldpath.Join(e.Path))
	}
	if e.Message != nil {
		b.WriteString(": ")
		b.WriteString(*e.Message)
	}
	return b.String()
}

// Text returns the message, or "" when there is none.
func (e FieldError) Text() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

// WithCode returns a copy of e with the code replaced.
func (e FieldError) WithCode(c string) FieldError {
	e.Path = fieldpath.Clone(e.Path)
	e.Code = c
	return e
}

// WithPath returns a copy of e whose path is exactly segs.
func (e FieldError) WithPath(segs ...string) FieldError {
	e.Path = fieldpath.Clone(segs)
	return e
}

// WithMessage returns a copy of e with the message set.
func (e FieldError) WithMessage(msg string) FieldError {
	e.Path = fieldpath.Clone(e.Path)
	e.Message = &msg
	return e
}

// WithoutMessage returns a copy of e with the message removed.
func (e FieldError) WithoutMessage() FieldError {
	e.Path = fieldpath.Clone(e.Path)
	e.Message = nil
	return e
}

// Clone returns a deep copy of e. The path of the copy is never nil.
func (e FieldError) Clone() FieldError {
	e.Path = fieldpath.Clone(e.Path)
	if e.Message != nil {
		msg := *e.Message
		e.Message = &msg
	}
	return e
}

// Envelope is the outward-facing JSON body of every response.
//
// Data is nil (encoded as null) on failures and on dataless successes.
// Errors is empty on successes.
type Envelope[T any] struct {
	Success bool         `json:"success"`
	Data    *T           `json:"data"`
	Errors  []FieldError `json:"errors"`
}
