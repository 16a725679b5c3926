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
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"

	"dirpx.dev/dresp"
	"dirpx.dev/dresp/code"
	"dirpx.dev/dresp/extract"
	"dirpx.dev/dresp/httpx"
	"dirpx.dev/dresp/response"
	"github.com/pborman/uuid"
	"google.golang.org/protobuf/types/known/structpb"
)

// Item is the resource managed by the service.
type Item struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type createItemRequest struct {
	Title *string `json:"title"`
}

// validationError collects every invalid field of a request.
type validationError []dresp.FieldError

func (v validationError) Error() string                   { return "invalid request" }
func (v validationError) FieldErrors() []dresp.FieldError { return v }

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)

	var in createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writer(r).Code(w, code.TooLarge, meta(r))
			return
		}
		s.writer(r).Error(w, dresp.E(code.Parse,
			dresp.WithPathOption("json"),
			dresp.WithMessageOption("Malformed JSON body"),
		), meta(r))
		return
	}

	var invalid validationError
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		invalid = append(invalid, dresp.E(code.Parse,
			dresp.WithPathOption("json", "title"),
			dresp.WithMessageOption("Invalid title"),
		))
	}
	if len(invalid) > 0 {
		s.writer(r).Error(w, invalid, meta(r))
		return
	}

	it := Item{ID: uuid.NewRandom().String(), Title: strings.TrimSpace(*in.Title)}
	s.mu.Lock()
	s.items[it.ID] = it
	s.mu.Unlock()

	requestLogger(r, s.log).WithField("item", it.ID).Info("item created")

	b := response.Success[Item]().
		Status(http.StatusCreated).
		Header("Location", "/items/"+it.ID)
	if id := meta(r).RequestID; id != "" {
		b = b.Header(extract.HeaderRequestID, id)
	}
	_ = b.Data(it).Finalize().Send(w)
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	items := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, it)
	}
	s.mu.RUnlock()

	slices.SortFunc(items, func(a, b Item) int { return strings.Compare(a.ID, b.ID) })
	httpx.Data(w, http.StatusOK, items, meta(r))
}

// lookup resolves the {id} route variable to an item, writing the failure
// response itself when it cannot.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (Item, bool) {
	id, err := extract.From(r, extract.PathVar("id"))
	if err != nil {
		err.(*extract.Error).ServeHTTP(w, r)
		return Item{}, false
	}

	s.mu.RLock()
	it, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		s.writer(r).Error(w, dresp.E(CodeItemNotFound,
			dresp.WithPathOption("path", "id"),
			dresp.WithMessageOption("Item not found"),
		), meta(r))
		return Item{}, false
	}
	return it, true
}

func (s *Server) getItem(w http.ResponseWriter, r *http.Request) {
	it, ok := s.lookup(w, r)
	if !ok {
		return
	}
	httpx.Data(w, http.StatusOK, it, meta(r))
}

func (s *Server) getItemProto(w http.ResponseWriter, r *http.Request) {
	it, ok := s.lookup(w, r)
	if !ok {
		return
	}
	msg, err := structpb.NewStruct(map[string]any{"id": it.ID, "title": it.Title})
	if err != nil {
		s.writer(r).Error(w, err, meta(r))
		return
	}
	httpx.Data(w, http.StatusOK, response.Proto(msg), meta(r))
}

func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	it, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	delete(s.items, it.ID)
	s.mu.Unlock()
	httpx.NoData(w, http.StatusOK, meta(r))
}

func (s *Server) host(w http.ResponseWriter, r *http.Request) {
	h, err := extract.From(r, extract.Host)
	if err != nil {
		err.(*extract.Error).ServeHTTP(w, r)
		return
	}
	httpx.Data(w, http.StatusOK, map[string]string{"host": h}, meta(r))
}
