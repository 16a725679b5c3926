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

// Encoder turns a value into its wire bytes.
//
// Implementations must be safe for concurrent use and must report every
// failure as an error rather than panicking. The response finalizer relies on
// this to degrade into its fixed fallback body.
type Encoder interface {
	Encode(v any) ([]byte, error)
}

// EncoderFunc adapts an ordinary function to the Encoder interface.
type EncoderFunc func(v any) ([]byte, error)

// Encode calls f(v).
func (f EncoderFunc) Encode(v any) ([]byte, error) { return f(v) }
