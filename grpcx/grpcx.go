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

package grpcx

import (
	"context"
	"net/http"

	"dirpx.dev/dresp"
	"dirpx.dev/dresp/adapter"
	"dirpx.dev/dresp/apis"
	"dirpx.dev/dresp/code"
	"dirpx.dev/dresp/fieldpath"
	"dirpx.dev/dresp/mapper"
	"dirpx.dev/dresp/response"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain of every detail produced by this package.
const Domain = "dresp.dirpx.dev"

// ErrorInfo metadata keys.
const (
	MetaPath    = "path"
	MetaMessage = "message"
)

// Status projects a failure envelope onto a gRPC status.
//
// The status code is m.GRPCStatus of the first entry's code, or derived
// from httpStatus when there are no entries. The message is the first
// entry's message (or the HTTP status text). Details are:
//
//   - one errdetails.ErrorInfo per entry, in order: Reason is the code,
//     Domain is Domain, Metadata holds the dotted path and, when present,
//     the message;
//   - one errdetails.BadRequest listing entries that have a path.
//
// If details cannot be attached the bare status is returned.
func Status(m apis.Mapper, httpStatus int, errs []dresp.FieldError) *gstatus.Status {
	if m == nil {
		m = mapper.Default()
	}

	c := FromHTTPStatus(httpStatus)
	msg := http.StatusText(httpStatus)
	if len(errs) > 0 {
		c = m.GRPCStatus(code.Code(errs[0].Code))
		if errs[0].Message != nil {
			msg = *errs[0].Message
		} else {
			msg = code.Code(errs[0].Code).DefaultMessage()
		}
	}
	base := gstatus.New(c, msg)
	if c == gcodes.OK || len(errs) == 0 {
		return base
	}

	var details []*errdetails.ErrorInfo
	br := &errdetails.BadRequest{}
	for _, e := range errs {
		meta := map[string]string{MetaPath: fieldpath.Join(e.Path)}
		if e.Message != nil {
			meta[MetaMessage] = *e.Message
		}
		details = append(details, &errdetails.ErrorInfo{
			Reason:   e.Code,
			Domain:   Domain,
			Metadata: meta,
		})
		if len(e.Path) > 0 {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       fieldpath.Join(e.Path),
				Description: e.Text(),
			})
		}
	}

	with := base
	var err error
	for _, d := range details {
		if with, err = with.WithDetails(d); err != nil {
			return base
		}
	}
	if len(br.FieldViolations) > 0 {
		if with, err = with.WithDetails(br); err != nil {
			return base
		}
	}
	return with
}

// FieldErrors reads the entries Status attached to a gRPC error back.
// ok is false when err carries no status or no entries of this Domain.
func FieldErrors(err error) (errs []dresp.FieldError, ok bool) {
	if err == nil {
		return nil, false
	}
	st, isStatus := gstatus.FromError(err)
	if !isStatus {
		return nil, false
	}
	for _, d := range st.Details() {
		info, isInfo := d.(*errdetails.ErrorInfo)
		if !isInfo || info.GetDomain() != Domain {
			continue
		}
		meta := info.GetMetadata()
		path, perr := fieldpath.Split(meta[MetaPath])
		if perr != nil {
			path = []string{meta[MetaPath]}
		}
		fe := dresp.E(info.GetReason(), dresp.WithPathOption(path...))
		if msg, has := meta[MetaMessage]; has {
			fe = fe.WithMessage(msg)
		}
		errs = append(errs, fe)
	}
	return errs, len(errs) > 0
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns
// handler errors carrying entries (dresp.FieldError, apis.DetailedError,
// apis.CodedError) into statuses built by Status. Errors that already carry
// a gRPC status, and opaque errors, are returned as-is.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if st, ok := statusOf(m, err); ok {
			return nil, st.Err()
		}
		return nil, err
	}
}

func statusOf(m apis.Mapper, err error) (*gstatus.Status, bool) {
	if _, ok := err.(interface{ GRPCStatus() *gstatus.Status }); ok {
		return nil, false
	}
	if len(adapter.Entries(err)) == 0 {
		return nil, false
	}
	st := response.FromError(err).State()
	return Status(m, st.Status(), st.Errors()), true
}

// FromHTTPStatus maps an HTTP status to the closest gRPC code.
func FromHTTPStatus(s int) gcodes.Code {
	switch s {
	case http.StatusBadRequest:
		return gcodes.InvalidArgument
	case http.StatusUnauthorized:
		return gcodes.Unauthenticated
	case http.StatusForbidden:
		return gcodes.PermissionDenied
	case http.StatusNotFound:
		return gcodes.NotFound
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return gcodes.DeadlineExceeded
	case http.StatusConflict:
		return gcodes.Aborted
	case http.StatusPreconditionFailed:
		return gcodes.FailedPrecondition
	case http.StatusRequestEntityTooLarge, http.StatusTooManyRequests:
		return gcodes.ResourceExhausted
	case 499:
		return gcodes.Canceled
	case http.StatusNotImplemented:
		return gcodes.Unimplemented
	case http.StatusServiceUnavailable:
		return gcodes.Unavailable
	}
	switch {
	case s >= 200 && s < 300:
		return gcodes.OK
	case s >= 400 && s < 500:
		return gcodes.FailedPrecondition
	case s >= 500 && s < 600:
		return gcodes.Internal
	}
	return gcodes.Unknown
}
