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

import "dirpx.dev/dresp/code"

// Option is a functional option for constructing or transforming a
// FieldError. It always takes a FieldError and returns a (possibly new) one.
type Option func(FieldError) FieldError

// WithPathOption sets the path on the entry being constructed.
// Intended to be used with E(...).
func WithPathOption(segs ...string) Option {
	return func(e FieldError) FieldError {
		return e.WithPath(segs...)
	}
}

// WithMessageOption sets the message on the entry being constructed.
// Intended to be used with E(...).
func WithMessageOption(msg string) Option {
	return func(e FieldError) FieldError {
		return e.WithMessage(msg)
	}
}

// WithDefaultMessageOption sets the message to the default message of the
// entry's code (see code.Code.DefaultMessage).
func WithDefaultMessageOption() Option {
	return func(e FieldError) FieldError {
		return e.WithMessage(code.Code(e.Code).DefaultMessage())
	}
}
