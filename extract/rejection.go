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
	"fmt"
	"net/http"

	"dirpx.dev/dresp/apis"
)

// Rejection is the error extractors in this package fail with.
type Rejection struct {
	status int
	text   string
}

var _ apis.Rejection = (*Rejection)(nil)

// Reject returns a rejection with the given status and text.
func Reject(status int, text string) *Rejection {
	return &Rejection{status: status, text: text}
}

// BadRequest returns a 400 rejection with a formatted text.
func BadRequest(format string, args ...any) *Rejection {
	return Reject(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

// Status returns the HTTP status of the rejection.
func (r *Rejection) Status() int { return r.status }

// BodyText returns the explanation sent to the client.
func (r *Rejection) BodyText() string { return r.text }

// Error implements the built-in error interface.
func (r *Rejection) Error() string {
	return fmt.Sprintf("%d %s: %s", r.status, http.StatusText(r.status), r.text)
}
