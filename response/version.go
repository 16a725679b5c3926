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
	"errors"
	"fmt"
	"net/http"
)

// Version is an HTTP protocol version.
type Version struct {
	Major int
	Minor int
}

// Known protocol versions.
var (
	HTTP09 = Version{0, 9}
	HTTP10 = Version{1, 0}
	HTTP11 = Version{1, 1}
	HTTP2  = Version{2, 0}
	HTTP3  = Version{3, 0}
)

// ErrInvalidVersion is returned by ParseVersion for unrecognized input.
var ErrInvalidVersion = errors.New("dresp: invalid HTTP version")

// String returns the version in request-line form, e.g. "HTTP/1.1".
func (v Version) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}

// Valid reports whether v is one of the known protocol versions.
func (v Version) Valid() bool {
	switch v {
	case HTTP09, HTTP10, HTTP11, HTTP2, HTTP3:
		return true
	}
	return false
}

// ParseVersion parses "HTTP/x.y" as well as the short "HTTP/2" and "HTTP/3"
// forms. Only known versions are accepted.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "HTTP/2":
		return HTTP2, nil
	case "HTTP/3":
		return HTTP3, nil
	}
	major, minor, ok := http.ParseHTTPVersion(s)
	if !ok {
		return Version{}, ErrInvalidVersion
	}
	v := Version{major, minor}
	if !v.Valid() {
		return Version{}, ErrInvalidVersion
	}
	return v, nil
}
