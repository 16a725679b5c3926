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

// Package apis defines the small Go-level contracts that dresp packages and
// their callers meet at.
//
// It holds the capabilities the response pipeline consumes but does not own:
// value encoding (Encoder), code-to-status resolution (Mapper) and request
// extraction rejections (Rejection). It also names the shapes of errors that
// the response package knows how to turn into failure envelopes
// (CodedError, StatusError, DetailedError).
//
// This package must remain lightweight: only interfaces and tiny value types.
package apis
