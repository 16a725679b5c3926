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

package apis

// Rejection is the failure side of a request extraction: the HTTP status the
// extractor wants to answer with and a short textual explanation.
type Rejection interface {
	// Status returns the HTTP status code of the rejection.
	Status() int

	// BodyText returns the human-readable explanation, suitable for the
	// "message" field of an error entry.
	BodyText() string
}
