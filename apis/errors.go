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

package apis

import "dirpx.dev/dresp"

// CodedError represents an error classified by a machine-readable code.
//
// The code is put verbatim into the "code" field of the error entry that
// represents this error in a failure envelope.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code.
	ErrorCode() string
}

// StatusError represents an error that knows which HTTP status it should be
// answered with.
type StatusError interface {
	error

	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// DetailedError represents an error that expands into one or more structured
// error entries. This is the natural shape of validation failures, where
// several fields may be wrong at once.
//
// Implementations SHOULD return a slice the caller may keep. Returning nil
// means "no entries", in which case the error is treated as opaque.
type DetailedError interface {
	error

	// FieldErrors returns the entries describing this error.
	FieldErrors() []dresp.FieldError
}
