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

// Package exampleapi is a small item service showing every way of building
// envelopes: success with and without data, failures from codes, errors and
// rejected extractions, and protobuf payloads.
package exampleapi

import (
	"net/http"
	"sync"

	"dirpx.dev/dresp/apis"
	"dirpx.dev/dresp/code"
	"dirpx.dev/dresp/httpx"
	"dirpx.dev/dresp/mapper"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Codes specific to this service.
const (
	CodeItemNotFound     code.Code = "item.not_found"
	CodeRouteNotFound    code.Code = "route.not_found"
	CodeMethodNotAllowed code.Code = "route.method_not_allowed"
)

// DefaultMaxBody is the request body limit used when none is configured.
const DefaultMaxBody = 1 << 20

// Server holds the item store and the HTTP plumbing around it.
type Server struct {
	log     logrus.FieldLogger
	mapper  apis.Mapper
	maxBody int64

	mu    sync.RWMutex
	items map[string]Item
}

// New creates a Server. A nil logger means the logrus standard logger.
func New(log logrus.FieldLogger, maxBody int64) (*Server, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}
	m, err := mapper.New(
		mapper.WithHTTPOverride(CodeItemNotFound, http.StatusNotFound),
		mapper.WithHTTPPrefix("route.not_found", http.StatusNotFound),
		mapper.WithHTTPPrefix("route.method_not_allowed", http.StatusMethodNotAllowed),
	)
	if err != nil {
		return nil, err
	}
	return &Server{
		log:     log,
		mapper:  m,
		maxBody: maxBody,
		items:   make(map[string]Item),
	}, nil
}

// Router returns the routes of the service.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestContext)

	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	r.HandleFunc("/host", s.host).Methods(http.MethodGet)
	r.HandleFunc("/items", s.listItems).Methods(http.MethodGet)
	r.HandleFunc("/items", s.createItem).Methods(http.MethodPost)
	r.HandleFunc("/items/{id}", s.getItem).Methods(http.MethodGet)
	r.HandleFunc("/items/{id}", s.deleteItem).Methods(http.MethodDelete)
	r.HandleFunc("/items/{id}/proto", s.getItemProto).Methods(http.MethodGet)

	// mux does not run middleware for these, so they resolve the request
	// context themselves.
	r.NotFoundHandler = s.requestContext(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writer(r).Code(w, CodeRouteNotFound, meta(r))
	}))
	r.MethodNotAllowedHandler = s.requestContext(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writer(r).Code(w, CodeMethodNotAllowed, meta(r))
	}))
	return r
}

// writer returns an envelope writer logging through the request logger.
func (s *Server) writer(r *http.Request) httpx.Writer {
	return httpx.Writer{Mapper: s.mapper, Logger: requestLogger(r, s.log)}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	httpx.NoData(w, http.StatusOK, meta(r))
}
