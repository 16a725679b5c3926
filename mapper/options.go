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

package mapper

import (
	"dirpx.dev/dresp/code"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for the given
// code.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault sets or replaces the default gRPC status for the given
// code.
func WithGRPCDefault(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given code.
// Overrides take precedence over every other rule.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given code.
func WithGRPCOverride(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPPrefix adds an HTTP rule for a dotted code prefix. The rule
// matches the prefix itself and every code below it, e.g. "billing" matches
// "billing.card.declined". The longest matching prefix wins.
func WithHTTPPrefix(prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes[prefix] = http }
}

// WithGRPCPrefix adds a gRPC rule for a dotted code prefix.
func WithGRPCPrefix(prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes[prefix] = grpc }
}
