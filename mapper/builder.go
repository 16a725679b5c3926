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

type builder struct {
	// httpDefaults holds per-code HTTP defaults (library defaults adjusted by
	// the caller).
	httpDefaults map[code.Code]int
	// grpcDefaults holds per-code gRPC defaults as ints; converted to
	// codes.Code in New().
	grpcDefaults map[code.Code]int

	// httpOverride holds exact per-code HTTP overrides (higher than anything).
	httpOverride map[code.Code]int
	// grpcOverride holds exact per-code gRPC overrides as ints.
	grpcOverride map[code.Code]int

	// httpPrefixes holds raw prefix rules for dotted codes; keys are
	// normalized and validated in New().
	httpPrefixes map[string]int
	// grpcPrefixes holds raw gRPC prefix rules for dotted codes.
	grpcPrefixes map[string]int

	// global fallbacks used when nothing matches.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[code.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.Code]int, len(defaultGRPC)),

		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]int),
		httpPrefixes: make(map[string]int),
		grpcPrefixes: make(map[string]int),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
