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
	"testing"

	"dirpx.dev/dresp"
	"dirpx.dev/dresp/code"
	"dirpx.dev/dresp/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func codesOf(errs []dresp.FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestBuilders_Defaults(t *testing.T) {
	s := Success[int]().State()
	assert.Equal(t, http.StatusOK, s.Status())
	assert.Equal(t, HTTP11, s.Version())
	assert.True(t, s.Success())
	assert.False(t, s.HeaderFailed())
	assert.Empty(t, s.Header())
	_, ok := s.Data()
	assert.False(t, ok)

	f := Failure().State()
	assert.Equal(t, http.StatusBadRequest, f.Status())
	assert.Equal(t, HTTP11, f.Version())
	assert.False(t, f.Success())
	assert.Empty(t, f.Errors())
}

func TestFailure_ErrorsReplaceAddErrorsAppend(t *testing.T) {
	a := dresp.E("a")
	b := dresp.E("b")
	c := dresp.E("c")

	base := Failure().Errors(a)

	assert.Equal(t, []string{"a", "b", "c"}, codesOf(base.AddErrors(b, c).State().Errors()))
	assert.Equal(t, []string{"b", "c"}, codesOf(base.Errors(b, c).State().Errors()))
	assert.Equal(t, []string{"a", "b"}, codesOf(base.AddError(b).State().Errors()))
	assert.Equal(t, []string{"a", "c"}, codesOf(base.Error(c).State().Errors()))
	assert.Empty(t, base.Errors().State().Errors())

	// forks above must not leak into base
	assert.Equal(t, []string{"a"}, codesOf(base.State().Errors()))
}

func TestBuilders_ValueSemantics(t *testing.T) {
	base := Success[int]().Header("X-A", "1")
	left := base.Header("X-A", "2").Status(http.StatusCreated)
	right := base.Header("X-B", "3").Data(5)

	assert.Equal(t, http.Header{"X-A": {"1"}}, base.State().Header())
	assert.Equal(t, http.Header{"X-A": {"1", "2"}}, left.State().Header())
	assert.Equal(t, http.Header{"X-A": {"1"}, "X-B": {"3"}}, right.State().Header())
	assert.Equal(t, http.StatusOK, base.State().Status())
	_, ok := base.State().Data()
	assert.False(t, ok)

	// mutating what accessors return does not reach the state
	h := base.State().Header()
	h.Set("X-A", "mutated")
	assert.Equal(t, []string{"1"}, base.State().Header()["X-A"])

	f := Failure().Error(dresp.E(code.Parse, dresp.WithPathOption("json")))
	errs := f.State().Errors()
	errs[0].Path[0] = "mutated"
	errs[0].Code = "mutated"
	assert.Equal(t, dresp.E(code.Parse, dresp.WithPathOption("json")), f.State().Errors()[0])

	// inputs are copied as well
	in := []dresp.FieldError{dresp.E(code.Parse, dresp.WithPathOption("json"))}
	f = Failure().Errors(in...)
	in[0].Path[0] = "mutated"
	assert.Equal(t, []string{"json"}, f.State().Errors()[0].Path)
}

func TestBuilders_HeaderCanonicalization(t *testing.T) {
	s := Dataless().
		Header("x-request-id", "1").
		HeaderPairs("X-REQUEST-ID", "2", "accept", "text/html").
		Headers(http.Header{"vary": {"Origin", "Accept"}}).
		State()

	assert.False(t, s.HeaderFailed())
	assert.Equal(t, http.Header{
		"X-Request-Id": {"1", "2"},
		"Accept":       {"text/html"},
		"Vary":         {"Origin", "Accept"},
	}, s.Header())
}

func TestFailureCode(t *testing.T) {
	res := FailureCode(nil, code.TooLarge).Finalize()
	assert.Equal(t, http.StatusRequestEntityTooLarge, res.Status)
	assert.Equal(t,
		`{"success":false,"data":null,"errors":[{"code":"too_large","path":[],"message":"Payload too large."}]}`,
		string(res.Body))

	m, err := mapper.New(mapper.WithHTTPPrefix("billing", http.StatusPaymentRequired))
	require.NoError(t, err)
	st := FailureCode(m, "billing.card").State()
	assert.Equal(t, http.StatusPaymentRequired, st.Status())
	require.Len(t, st.Errors(), 1)
	assert.Equal(t, "Unknown error.", st.Errors()[0].Text())

	// the server code reproduces the fallback body byte for byte
	res = FailureCode(nil, code.Server).Finalize()
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, dresp.FailureDefault, string(res.Body))
}

type quotaError struct{}

func (quotaError) Error() string     { return "quota exceeded" }
func (quotaError) ErrorCode() string { return "quota.exceeded" }
func (quotaError) HTTPStatus() int   { return http.StatusTooManyRequests }

type validationError []dresp.FieldError

func (v validationError) Error() string                   { return fmt.Sprintf("%d invalid fields", len(v)) }
func (v validationError) FieldErrors() []dresp.FieldError { return v }

func TestFromError(t *testing.T) {
	t.Run("field error", func(t *testing.T) {
		fe := dresp.E(code.Timeout, dresp.WithMessageOption("slow"))
		st := FromError(fmt.Errorf("handler: %w", fe)).State()
		assert.Equal(t, http.StatusRequestTimeout, st.Status())
		assert.Equal(t, []dresp.FieldError{fe}, st.Errors())
	})

	t.Run("coded and status", func(t *testing.T) {
		st := FromError(quotaError{}).State()
		assert.Equal(t, http.StatusTooManyRequests, st.Status())
		require.Len(t, st.Errors(), 1)
		assert.Equal(t, "quota.exceeded", st.Errors()[0].Code)
		assert.Equal(t, "quota exceeded", st.Errors()[0].Text())
		assert.Empty(t, st.Errors()[0].Path)
	})

	t.Run("detailed", func(t *testing.T) {
		v := validationError{
			dresp.E(code.Parse, dresp.WithPathOption("json", "title")),
			dresp.E(code.Parse, dresp.WithPathOption("json", "body")),
		}
		st := FromError(v).State()
		assert.Equal(t, http.StatusBadRequest, st.Status())
		assert.Len(t, st.Errors(), 2)
	})

	t.Run("empty detailed falls through", func(t *testing.T) {
		res := FromError(validationError{}).Finalize()
		assert.Equal(t, http.StatusInternalServerError, res.Status)
		assert.Equal(t, dresp.FailureDefault, string(res.Body))
	})

	t.Run("opaque", func(t *testing.T) {
		res := FromError(errors.New("db: connection refused")).Finalize()
		assert.Equal(t, http.StatusInternalServerError, res.Status)
		assert.Equal(t, dresp.FailureDefault, string(res.Body))
		assert.NotContains(t, string(res.Body), "connection refused")
	})

	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, FromError(nil).State().Status())
	})
}

func TestVersion(t *testing.T) {
	cases := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{in: "HTTP/0.9", want: HTTP09},
		{in: "HTTP/1.0", want: HTTP10},
		{in: "HTTP/1.1", want: HTTP11},
		{in: "HTTP/2", want: HTTP2},
		{in: "HTTP/2.0", want: HTTP2},
		{in: "HTTP/3", want: HTTP3},
		{in: "HTTP/1.2", wantErr: true},
		{in: "HTTP/4", wantErr: true},
		{in: "http/1.1", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseVersion(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidVersion, "ParseVersion(%q)", tc.in)
			continue
		}
		require.NoError(t, err, "ParseVersion(%q)", tc.in)
		assert.Equal(t, tc.want, got)
	}

	assert.Equal(t, "HTTP/1.1", HTTP11.String())
	assert.Equal(t, "HTTP/2.0", HTTP2.String())
	assert.False(t, Version{}.Valid())
}

func TestFailureCode_GRPCMapperIsIgnored(t *testing.T) {
	// only the HTTP side of the mapper drives the response status
	m, err := mapper.New(mapper.WithGRPCOverride(code.Parse, int(codes.Aborted)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, FailureCode(m, code.Parse).State().Status())
}
