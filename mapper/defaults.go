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

package mapper

import (
	"net/http"

	"dirpx.dev/dresp/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the built-in HTTP mappings for the well-known codes.
var defaultHTTP = map[code.Code]int{
	code.Parse:    http.StatusBadRequest,            // Request could not be parsed or extracted.
	code.TooLarge: http.StatusRequestEntityTooLarge, // Body or field exceeded the limit.
	code.Timeout:  http.StatusRequestTimeout,        // Request did not complete in time.
	code.Server:   http.StatusInternalServerError,   // Internal failure; never expose details.
	code.Unknown:  http.StatusInternalServerError,   // Unclassified; treat as internal.
}

// defaultGRPC defines the built-in gRPC mappings for the well-known codes.
var defaultGRPC = map[code.Code]codes.Code{
	code.Parse:    codes.InvalidArgument,
	code.TooLarge: codes.ResourceExhausted,
	code.Timeout:  codes.DeadlineExceeded,
	code.Server:   codes.Internal,
	code.Unknown:  codes.Unknown,
}
