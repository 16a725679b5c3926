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

	"golang.org/x/net/http/httpguts"
)

const (
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
)

// headerField validates a header name and value and returns the canonical
// name. ok is false when either part would be rejected on the wire.
func headerField(key, value string) (name, val string, ok bool) {
	if !httpguts.ValidHeaderFieldName(key) {
		return "", "", false
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return "", "", false
	}
	return http.CanonicalHeaderKey(key), value, true
}

// jsonHeader returns a fresh header map holding only the JSON content type.
// It is used for the responses that discard caller headers.
func jsonHeader() http.Header {
	return http.Header{headerContentType: {contentTypeJSON}}
}
