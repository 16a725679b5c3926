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

// Package extract pulls typed values out of an *http.Request and turns
// extraction failures into ready-to-send failure responses.
//
// An Extractor either yields a value or fails. From runs it; when it fails
// with a rejection (an error implementing apis.Rejection), the rejection's
// status and text become a failure response with a single "parse" entry:
//
//	host, err := extract.From(r, extract.Host)
//	if err != nil {
//	    err.(*extract.Error).ServeHTTP(w, r)
//	    return
//	}
//
// Any other error goes through response.FromError, so coded errors keep
// their status and opaque ones become an internal server error.
package extract
