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

package adapter

import (
	"errors"

	"dirpx.dev/dresp"
	"dirpx.dev/dresp/apis"
	"dirpx.dev/dresp/fieldpath"
	"github.com/sirupsen/logrus"
)

// Entries converts an error into the error entries that describe it.
//
// The error chain is searched in this order:
//
//   - apis.DetailedError with at least one entry: a copy of its entries;
//   - dresp.FieldError: that entry alone;
//   - apis.CodedError: one entry with its code and err.Error() as message.
//
// Anything else, including nil, yields no entries; such errors are opaque
// and their text must not reach a client.
func Entries(err error) []dresp.FieldError {
	if err == nil {
		return nil
	}

	var de apis.DetailedError
	if errors.As(err, &de) {
		if fes := de.FieldErrors(); len(fes) > 0 {
			out := make([]dresp.FieldError, len(fes))
			for i, fe := range fes {
				out[i] = fe.Clone()
			}
			return out
		}
	}

	var fe dresp.FieldError
	if errors.As(err, &fe) {
		return []dresp.FieldError{fe.Clone()}
	}

	var ce apis.CodedError
	if errors.As(err, &ce) {
		return []dresp.FieldError{dresp.E(ce.ErrorCode(), dresp.WithMessageOption(err.Error()))}
	}
	return nil
}

// ToFields renders a failure together with its resolved transport status as
// structured log fields. The first entry is flattened; the total count is
// kept so that multi-entry failures are visible in logs.
//
// No redaction is performed: messages are logged as-is.
func ToFields(errs []dresp.FieldError, st apis.Status) logrus.Fields {
	f := logrus.Fields{
		"http_status": st.HTTP,
		"grpc_code":   st.GRPC.String(),
		"error_count": len(errs),
	}
	if len(errs) > 0 {
		f["error_code"] = errs[0].Code
		if len(errs[0].Path) > 0 {
			f["error_path"] = fieldpath.Join(errs[0].Path)
		}
		if errs[0].Message != nil {
			f["error_message"] = *errs[0].Message
		}
	}
	return f
}
