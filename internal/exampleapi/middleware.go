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

package exampleapi

import (
	"context"
	"net/http"

	"dirpx.dev/dresp/extract"
	"dirpx.dev/dresp/httpx"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	reqIDKey ctxKey = iota
	reqLoggerKey
)

// requestContext resolves the request id (from X-Request-ID or a fresh
// one) and stores it with a request-scoped logger in the context. A
// malformed X-Request-ID is rejected before the handler runs.
func (s *Server) requestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(reqIDKey).(string); ok {
			next.ServeHTTP(w, r)
			return
		}

		id, err := extract.From(r, extract.RequestIDOrNew)
		if err != nil {
			s.log.WithError(err).WithField("path", r.URL.Path).Debug("rejected request id")
			err.(*extract.Error).ServeHTTP(w, r)
			return
		}

		reqID := id.String()
		ctx := context.WithValue(r.Context(), reqIDKey, reqID)
		ctx = context.WithValue(ctx, reqLoggerKey, s.log.WithFields(logrus.Fields{
			"reqid":  reqID,
			"method": r.Method,
			"path":   r.URL.Path,
		}))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestLogger(r *http.Request, fallback logrus.FieldLogger) logrus.FieldLogger {
	if l, ok := r.Context().Value(reqLoggerKey).(logrus.FieldLogger); ok {
		return l
	}
	return fallback
}

// meta returns the envelope metadata of r: the resolved request id is
// echoed back in X-Request-ID.
func meta(r *http.Request) httpx.Meta {
	id, _ := r.Context().Value(reqIDKey).(string)
	return httpx.Meta{RequestID: id}
}
