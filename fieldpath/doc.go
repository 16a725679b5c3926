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

// Package fieldpath converts error locations between their segment form
// (as carried in the "path" array of a response error entry) and textual
// forms used elsewhere: a dotted form for logs and gRPC field violations, and
// JSON Pointer for validators.
//
// Example:
//
//	fieldpath.Join([]string{"json", "title"})   // "json.title"
//	fieldpath.Split("json.items.0")             // ["json" "items" "0"]
//	fieldpath.FromPointer("/json/a~1b")         // ["json" "a/b"]
package fieldpath
