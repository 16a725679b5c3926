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
	"net/http"

	"github.com/pborman/uuid"
)

// HeaderRequestID carries the request correlation id.
const HeaderRequestID = "X-Request-ID"

// RequestID extracts and parses the X-Request-ID header. It rejects with
// 400 when the header is missing or is not a UUID.
var RequestID Extractor[uuid.UUID] = ExtractorFunc[uuid.UUID](func(r *http.Request) (uuid.UUID, error) {
	return requestID(r, false)
})

// RequestIDOrNew is like RequestID but generates a random id when the
// header is missing. A malformed header is still rejected.
var RequestIDOrNew Extractor[uuid.UUID] = ExtractorFunc[uuid.UUID](func(r *http.Request) (uuid.UUID, error) {
	return requestID(r, true)
})

func requestID(r *http.Request, generate bool) (uuid.UUID, error) {
	v := r.Header.Get(HeaderRequestID)
	if v == "" {
		if generate {
			return uuid.NewRandom(), nil
		}
		return nil, BadRequest("Missing %s header", HeaderRequestID)
	}
	id := uuid.Parse(v)
	if id == nil {
		return nil, BadRequest("Invalid %s header: %q", HeaderRequestID, v)
	}
	return id, nil
}
