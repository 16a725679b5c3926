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

	"github.com/gorilla/mux"
)

// PathVar extracts the route variable name set by a gorilla/mux router.
// It rejects with 400 when the variable is absent or empty.
func PathVar(name string) Extractor[string] {
	return ExtractorFunc[string](func(r *http.Request) (string, error) {
		v, ok := mux.Vars(r)[name]
		if !ok || v == "" {
			return "", BadRequest("Missing path parameter: %s", name)
		}
		return v, nil
	})
}
