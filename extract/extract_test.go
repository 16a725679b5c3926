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
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"dirpx.dev/dresp"
	"dirpx.dev/dresp/code"
	"github.com/gorilla/mux"
	"github.com/pborman/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom_Rejection(t *testing.T) {
	badHost := ExtractorFunc[string](func(*http.Request) (string, error) {
		return "", Reject(http.StatusBadRequest, "bad host")
	})

	v, err := From(httptest.NewRequest(http.MethodGet, "/", nil), badHost)
	assert.Empty(t, v)

	var xerr *Error
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, http.StatusBadRequest, xerr.Response.Status)
	assert.Equal(t, "application/json", xerr.Response.Header.Get("Content-Type"))
	assert.Equal(t,
		`{"success":false,"data":null,"errors":[{"code":"parse","path":[],"message":"bad host"}]}`,
		string(xerr.Response.Body))

	var rej *Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "bad host", rej.BodyText())
	assert.Contains(t, err.Error(), "400 Bad Request: bad host")
}

func TestFrom_RejectionKeepsStatus(t *testing.T) {
	tooLarge := ExtractorFunc[[]byte](func(*http.Request) ([]byte, error) {
		return nil, Reject(http.StatusRequestEntityTooLarge, "body over 1MiB")
	})

	_, err := From(httptest.NewRequest(http.MethodPost, "/", nil), tooLarge)

	var xerr *Error
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, http.StatusRequestEntityTooLarge, xerr.Response.Status)
	assert.Contains(t, string(xerr.Response.Body), `"code":"parse"`)
}

func TestFrom_OtherErrors(t *testing.T) {
	opaque := ExtractorFunc[int](func(*http.Request) (int, error) {
		return 0, errors.New("secret internals")
	})
	coded := ExtractorFunc[int](func(*http.Request) (int, error) {
		return 0, dresp.E(code.Timeout, dresp.WithMessageOption("slow upstream"))
	})
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := From(r, opaque)
	var xerr *Error
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, http.StatusInternalServerError, xerr.Response.Status)
	assert.Equal(t, dresp.FailureDefault, string(xerr.Response.Body))

	_, err = From(r, coded)
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, http.StatusRequestTimeout, xerr.Response.Status)
	assert.Contains(t, string(xerr.Response.Body), `"message":"slow upstream"`)
}

func TestFrom_Success(t *testing.T) {
	ok := ExtractorFunc[int](func(*http.Request) (int, error) { return 42, nil })

	v, err := From(httptest.NewRequest(http.MethodGet, "/", nil), ok)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestError_ServeHTTP(t *testing.T) {
	_, err := From(httptest.NewRequest(http.MethodGet, "/", nil), PathVar("id"))

	var xerr *Error
	require.ErrorAs(t, err, &xerr)

	rec := httptest.NewRecorder()
	xerr.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t,
		`{"success":false,"data":null,"errors":[{"code":"parse","path":[],"message":"Missing path parameter: id"}]}`,
		rec.Body.String())
}

func TestHost(t *testing.T) {
	cases := []struct {
		name   string
		header http.Header
		host   string
		url    string
		want   string
	}{
		{
			name:   "forwarded",
			header: http.Header{"Forwarded": {`for=192.0.2.60;proto=http;Host="forwarded.example", host=second`}},
			host:   "host.example",
			want:   "forwarded.example",
		},
		{
			name:   "forwarded without host falls through",
			header: http.Header{"Forwarded": {"for=192.0.2.60"}, "X-Forwarded-Host": {"xfh.example"}},
			host:   "host.example",
			want:   "xfh.example",
		},
		{
			name:   "x-forwarded-host",
			header: http.Header{"X-Forwarded-Host": {"xfh.example"}},
			host:   "host.example",
			want:   "xfh.example",
		},
		{
			name: "host header",
			host: "host.example:8080",
			want: "host.example:8080",
		},
		{
			name: "absolute url",
			url:  "http://url.example/path",
			want: "url.example",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &http.Request{Header: tc.header, Host: tc.host, URL: &url.URL{Path: "/"}}
			if r.Header == nil {
				r.Header = http.Header{}
			}
			if tc.url != "" {
				u, err := url.Parse(tc.url)
				require.NoError(t, err)
				r.URL = u
			}
			got, err := From(r, Host)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHost_Missing(t *testing.T) {
	r := &http.Request{Header: http.Header{}, URL: &url.URL{Path: "/"}}

	_, err := From(r, Host)

	var xerr *Error
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, http.StatusBadRequest, xerr.Response.Status)
	assert.Equal(t,
		`{"success":false,"data":null,"errors":[{"code":"parse","path":[],"message":"No host found in request"}]}`,
		string(xerr.Response.Body))
}

func TestPathVar(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/items/7", nil), map[string]string{"id": "7", "empty": ""})

	v, err := From(r, PathVar("id"))
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	_, err = From(r, PathVar("empty"))
	var rej *Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "Missing path parameter: empty", rej.BodyText())
}

func TestPathVar_Router(t *testing.T) {
	var got string
	router := mux.NewRouter()
	router.HandleFunc("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		v, err := From(r, PathVar("id"))
		require.NoError(t, err)
		got = v
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/abc", nil))
	assert.Equal(t, "abc", got)
}

func TestRequestID(t *testing.T) {
	id := uuid.NewRandom()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderRequestID, id.String())
	got, err := From(r, RequestID)
	require.NoError(t, err)
	assert.True(t, uuid.Equal(id, got))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	_, err = From(r, RequestID)
	var rej *Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "Missing X-Request-ID header", rej.BodyText())

	got, err = From(r, RequestIDOrNew)
	require.NoError(t, err)
	assert.NotNil(t, got)

	r.Header.Set(HeaderRequestID, "not-a-uuid")
	for _, ex := range []Extractor[uuid.UUID]{RequestID, RequestIDOrNew} {
		_, err = From(r, ex)
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, http.StatusBadRequest, rej.Status())
		assert.Equal(t, `Invalid X-Request-ID header: "not-a-uuid"`, rej.BodyText())
	}
}
