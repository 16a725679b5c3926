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

package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"dirpx.dev/dresp/adapter"
	"dirpx.dev/dresp/apis"
	"dirpx.dev/dresp/code"
	"dirpx.dev/dresp/extract"
	"dirpx.dev/dresp/mapper"
	"dirpx.dev/dresp/response"
	"github.com/sirupsen/logrus"
)

// Meta carries extra context that the HTTP layer can add on top of an
// envelope. All fields are optional and typically come from request
// context, headers or rate-limiter output.
type Meta struct {
	RequestID         string
	RetryAfterSeconds int32
}

// headerBuilder is implemented by both response builders.
type headerBuilder[B any] interface {
	Header(key, value string) B
}

func withMeta[B headerBuilder[B]](b B, meta Meta) B {
	if meta.RequestID != "" {
		b = b.Header(extract.HeaderRequestID, meta.RequestID)
	}
	if meta.RetryAfterSeconds > 0 {
		b = b.Header("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	return b
}

// Writer is a thin adapter that turns handler results into envelopes and
// writes them, resolving failure statuses through Mapper.
type Writer struct {
	// Mapper resolves error codes into statuses. nil means mapper.Default().
	Mapper apis.Mapper

	// Logger receives one entry per failure written. nil disables logging.
	Logger logrus.FieldLogger
}

func (w Writer) resolver() apis.Mapper {
	if w.Mapper == nil {
		return mapper.Default()
	}
	return w.Mapper
}

// Error writes a failure envelope describing err.
//
// Entries are derived as in response.FromError. The status is taken from
// apis.StatusError when err implements it, otherwise from Mapper applied to
// the first entry's code. Opaque errors become a 500 "server" entry.
func (w Writer) Error(rw http.ResponseWriter, err error, meta Meta) {
	b := response.FromError(err)
	errs := b.State().Errors()

	var se apis.StatusError
	if len(adapter.Entries(err)) > 0 && !errors.As(err, &se) {
		b = b.Status(w.resolver().HTTPStatus(code.Code(errs[0].Code)))
	}
	b = withMeta(b, meta)

	res := b.Finalize()
	if w.Logger != nil {
		st := apis.Status{HTTP: res.Status}
		if len(errs) > 0 {
			st.GRPC = w.resolver().GRPCStatus(code.Code(errs[0].Code))
		}
		entry := w.Logger.WithFields(adapter.ToFields(errs, st))
		if meta.RequestID != "" {
			entry = entry.WithField("request_id", meta.RequestID)
		}
		entry.Info("request failed")
	}
	_ = res.Send(rw)
}

// Code writes a failure envelope for a single code with its default message.
func (w Writer) Code(rw http.ResponseWriter, c code.Code, meta Meta) {
	res := withMeta(response.FailureCode(w.resolver(), c), meta).Finalize()
	_ = res.Send(rw)
}

// Data writes a success envelope carrying v with the given status.
func Data[T any](rw http.ResponseWriter, status int, v T, meta Meta) {
	res := withMeta(response.Success[T]().Status(status).Data(v), meta).Finalize()
	_ = res.Send(rw)
}

// NoData writes a success envelope whose data is null.
func NoData(rw http.ResponseWriter, status int, meta Meta) {
	res := withMeta(response.Dataless().Status(status), meta).Finalize()
	_ = res.Send(rw)
}
