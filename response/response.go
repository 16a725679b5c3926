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
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

var (
	errInvalidStatus  = errors.New("dresp: invalid status code")
	errInvalidVersion = errors.New("dresp: invalid protocol version")
)

// Response is a finalized response: status, protocol version, headers and
// body bytes. It is produced by Finalize and is ready to be written.
type Response struct {
	Status  int
	Version Version
	Header  http.Header
	Body    []byte
}

// build assembles a Response, rejecting what cannot go on the wire: status
// codes outside 100..999 and unknown protocol versions.
func build(status int, v Version, h http.Header, body []byte) (Response, error) {
	if status < 100 || status > 999 {
		return Response{}, fmt.Errorf("%w: %d", errInvalidStatus, status)
	}
	if !v.Valid() {
		return Response{}, fmt.Errorf("%w: %s", errInvalidVersion, v)
	}
	return Response{Status: status, Version: v, Header: h, Body: body}, nil
}

// ServeHTTP writes the response, so a Response can be returned from or used
// as an http.Handler.
func (r Response) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	_ = r.Send(w)
}

// Send writes headers, status and body to w. Headers are added to whatever
// w already holds. A write failure is logged and returned.
func (r Response) Send(w http.ResponseWriter) error {
	dst := w.Header()
	for k, vs := range r.Header {
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
	w.WriteHeader(r.Status)
	if _, err := w.Write(r.Body); err != nil {
		log().WithError(err).WithField("status", r.Status).Error("dresp: failed to write response body")
		return err
	}
	return nil
}

// HTTPResponse converts r into a client-side *http.Response, which is handy
// for tests and for http.RoundTripper implementations.
func (r Response) HTTPResponse() *http.Response {
	return &http.Response{
		Status:        strconv.Itoa(r.Status) + " " + http.StatusText(r.Status),
		StatusCode:    r.Status,
		Proto:         r.Version.String(),
		ProtoMajor:    r.Version.Major,
		ProtoMinor:    r.Version.Minor,
		Header:        r.Header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(r.Body)),
		ContentLength: int64(len(r.Body)),
	}
}
