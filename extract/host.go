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
	"strings"
)

const (
	headerForwarded      = "Forwarded"
	headerXForwardedHost = "X-Forwarded-Host"
)

// Host resolves the host the client addressed. Sources are tried in order:
//
//  1. the host= parameter of the first Forwarded element (RFC 7239);
//  2. X-Forwarded-Host;
//  3. the Host header (or HTTP/2 :authority);
//  4. the host of an absolute request URL.
//
// It rejects with 400 "No host found in request" when none is present.
var Host Extractor[string] = ExtractorFunc[string](host)

func host(r *http.Request) (string, error) {
	if h, ok := forwardedHost(r.Header.Get(headerForwarded)); ok {
		return h, nil
	}
	if h := r.Header.Get(headerXForwardedHost); h != "" {
		return h, nil
	}
	if r.Host != "" {
		return r.Host, nil
	}
	if r.URL != nil && r.URL.Host != "" {
		return r.URL.Host, nil
	}
	return "", BadRequest("No host found in request")
}

// forwardedHost returns the host= value of the first element of a Forwarded
// header, e.g. `for=192.0.2.60;proto=http;host="example.com", for=...`.
func forwardedHost(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	first, _, _ := strings.Cut(v, ",")
	for _, pair := range strings.Split(first, ";") {
		k, val, ok := strings.Cut(pair, "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(k), "host") {
			continue
		}
		val = strings.Trim(strings.TrimSpace(val), `"`)
		if val == "" {
			return "", false
		}
		return val, true
	}
	return "", false
}
