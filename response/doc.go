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

// Package response builds uniform JSON responses for HTTP handlers.
//
// Every response body has the same envelope:
//
//	{"success": bool, "data": <payload>|null, "errors": [{"code", "path", "message"}...]}
//
// Responses are assembled with a fluent, value-semantic builder and turned
// into a wire Response by Finalize. Building never returns an error: invalid
// headers are latched and reported at finalization, and every failure during
// finalization degrades to a well-formed JSON body. The worst possible outcome
// is a 500 with the fixed body dresp.FailureDefault.
//
// A success response:
//
//	response.Success[User]().
//	    Data(user).
//	    Header("Cache-Control", "no-store").
//	    Finalize().
//	    ServeHTTP(w, r)
//
// A failure response:
//
//	response.Failure().
//	    Status(http.StatusNotFound).
//	    Error(dresp.E(code.Parse,
//	        dresp.WithPathOption("json", "title"),
//	        dresp.WithMessageOption("Invalid title"),
//	    )).
//	    Finalize().
//	    ServeHTTP(w, r)
//
// Finalization order:
//
//  1. a fixed 500 fallback is prepared from literals;
//  2. if any header was rejected, a fixed 400 "header_map" envelope is
//     returned and every other piece of state is discarded;
//  3. Content-Type: application/json is appended to the caller's headers;
//  4. the envelope is encoded;
//  5. the response is assembled (status and version are checked);
//  6. any failure in 2-5 returns the fallback from 1.
package response
