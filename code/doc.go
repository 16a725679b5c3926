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

// Package code defines the error codes carried by dresp response envelopes.
//
// The package has two faces:
//
//   - a closed taxonomy (Parse, TooLarge, Timeout, Server, Unknown), each with
//     a stable lowercase wire string and a default message;
//   - an open Code type, so that handlers may put any custom value into an
//     error entry. Parse/Normalize/Validate are available for callers that
//     want their custom codes in the same canonical form: lowercase,
//     underscore-separated words, optionally grouped into dot-separated
//     hierarchies such as "billing.card.declined".
package code
