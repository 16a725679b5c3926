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

// Package mapper provides deterministic, immutable mappings from response
// error codes (dirpx.dev/dresp/code) to transport-level statuses for HTTP and
// gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the code;
//  2. longest dotted prefix rule matching the code or one of its ancestors;
//  3. per-code default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Prefix rules let custom hierarchical codes share a status:
//
//	WithHTTPPrefix("billing", http.StatusPaymentRequired)
//	WithHTTPPrefix("billing.card.expired", http.StatusBadRequest)
//
// "billing.card.declined" resolves to 402, "billing.card.expired.soon" to 400.
//
// # Library defaults
//
//	parse     -> 400 / InvalidArgument
//	too_large -> 413 / ResourceExhausted
//	timeout   -> 408 / DeadlineExceeded
//	server    -> 500 / Internal
//	unknown   -> 500 / Unknown
//
// # Immutability
//
// All user-provided inputs are copied during New. The Mapper is safe to share
// across handlers, goroutines and requests. Default returns a shared snapshot
// of the library defaults.
package mapper
