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

package extract

import (
	"errors"
	"net/http"

	"dirpx.dev/dresp"
	"dirpx.dev/dresp/apis"
	"dirpx.dev/dresp/code"
	"dirpx.dev/dresp/response"
)

// Extractor produces a T from a request.
type Extractor[T any] interface {
	Extract(r *http.Request) (T, error)
}

// ExtractorFunc adapts an ordinary function to the Extractor interface.
type ExtractorFunc[T any] func(r *http.Request) (T, error)

// Extract calls f(r).
func (f ExtractorFunc[T]) Extract(r *http.Request) (T, error) { return f(r) }

// Error is returned by From when extraction fails. It carries the failure
// response to send back and can be served directly.
type Error struct {
	Response response.Response
	cause    error
}

// Error implements the built-in error interface.
func (e *Error) Error() string {
	if e == nil || e.cause == nil {
		return "dresp: extraction failed"
	}
	return "dresp: extraction failed: " + e.cause.Error()
}

// Unwrap returns the extractor's error.
func (e *Error) Unwrap() error { return e.cause }

// ServeHTTP writes the failure response.
func (e *Error) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.Response.ServeHTTP(w, r)
}

// From runs ex on r. On failure the returned error is always an *Error.
func From[T any](r *http.Request, ex Extractor[T]) (T, error) {
	v, err := ex.Extract(r)
	if err == nil {
		return v, nil
	}
	var zero T
	return zero, &Error{Response: Failure(err), cause: err}
}

// Failure builds the failure response for an extraction error.
//
// A rejection becomes:
//
//	status:  rej.Status()
//	errors:  [{"code": "parse", "path": [], "message": rej.BodyText()}]
//
// Anything else is handed to response.FromError.
func Failure(err error) response.Response {
	var rej apis.Rejection
	if errors.As(err, &rej) {
		return response.Failure().
			Status(rej.Status()).
			Error(dresp.E(code.Parse, dresp.WithMessageOption(rej.BodyText()))).
			Finalize()
	}
	return response.FromError(err).Finalize()
}
