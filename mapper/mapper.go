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
	"fmt"
	"strings"
	"sync"

	"dirpx.dev/dresp/apis"
	"dirpx.dev/dresp/code"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize and validate all prefixes (via code.Parse).
//  4. Freeze all maps into fresh allocations.
//
// Errors returned from this function indicate invalid prefixes.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed with package-level defaults.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Canonicalize prefix rules.
	httpPrefix := make(map[code.Code]int, len(b.httpPrefixes))
	for raw, v := range b.httpPrefixes {
		p, err := code.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid HTTP code prefix %q: %w", raw, err)
		}
		httpPrefix[p] = v
	}
	grpcPrefix := make(map[code.Code]codes.Code, len(b.grpcPrefixes))
	for raw, v := range b.grpcPrefixes {
		p, err := code.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid gRPC code prefix %q: %w", raw, err)
		}
		grpcPrefix[p] = codes.Code(v)
	}

	// (4) Freeze.
	return &mapper{
		httpDefault:  freeze(b.httpDefaults, func(v int) int { return v }),
		grpcDefault:  freeze(b.grpcDefaults, func(v int) codes.Code { return codes.Code(v) }),
		httpOverride: freeze(b.httpOverride, func(v int) int { return v }),
		grpcOverride: freeze(b.grpcOverride, func(v int) codes.Code { return codes.Code(v) }),
		httpPrefix:   httpPrefix,
		grpcPrefix:   grpcPrefix,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

var (
	defaultOnce   sync.Once
	defaultMapper apis.Mapper
)

// Default returns the shared mapper built from library defaults only.
func Default() apis.Mapper {
	defaultOnce.Do(func() {
		// New cannot fail without prefix options.
		defaultMapper, _ = New()
	})
	return defaultMapper
}

// freeze copies src into a fresh map, converting values with conv. Empty
// inputs become nil.
func freeze[V any](src map[code.Code]int, conv func(int) V) map[code.Code]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]V, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}

// mapper combines per-code defaults, per-code exact overrides and dotted
// prefix rules. Lookups are O(depth of the code) and safe for concurrent use
// once constructed.
type mapper struct {
	httpDefault  map[code.Code]int
	grpcDefault  map[code.Code]codes.Code
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code
	httpPrefix   map[code.Code]int
	grpcPrefix   map[code.Code]codes.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. longest prefix rule matching the code or one of its ancestors;
//  3. per-code default (library or user adjusted);
//  4. fallback (500).
func (m *mapper) HTTPStatus(c code.Code) int {
	v, _, _ := resolve(c, m.httpOverride, m.httpPrefix, m.httpDefault, m.fallbackHTTP)
	return v
}

// GRPCStatus resolves a gRPC status for the given code, with the same
// precedence as HTTPStatus and codes.Internal as the fallback.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	v, _, _ := resolve(c, m.grpcOverride, m.grpcPrefix, m.grpcDefault, m.fallbackGRPC)
	return v
}

// Status resolves both HTTP and gRPC using the same input.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular code.
//
// Example output:
//
//	code="billing.card.declined"
//	http: source=prefix pattern="billing" -> 402
//	grpc: source=fallback -> INTERNAL(13)
//
// source is one of override, prefix, default or fallback.
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c)

	v, src, pat := resolve(c, m.httpOverride, m.httpPrefix, m.httpDefault, m.fallbackHTTP)
	_, _ = fmt.Fprintf(&b, "http: source=%s%s -> %d\n", src, patternSuffix(pat), v)

	g, src, pat := resolve(c, m.grpcOverride, m.grpcPrefix, m.grpcDefault, m.fallbackGRPC)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s%s -> %s(%d)", src, patternSuffix(pat), strings.ToUpper(g.String()), int(g))

	return b.String()
}

// resolve walks the tiers for one transport. It returns the value, the tier
// that produced it and, for prefix hits, the matching prefix.
func resolve[V any](c code.Code, override, prefix, def map[code.Code]V, fallback V) (V, string, code.Code) {
	// 1) exact override
	if v, ok := override[c]; ok {
		return v, "override", ""
	}

	// 2) longest prefix: the code itself, then each ancestor
	for p, ok := c, c != ""; ok; p, ok = p.Parent() {
		if v, hit := prefix[p]; hit {
			return v, "prefix", p
		}
	}

	// 3) per-code default
	if v, ok := def[c]; ok {
		return v, "default", ""
	}

	// 4) fallback
	return fallback, "fallback", ""
}

func patternSuffix(p code.Code) string {
	if p == "" {
		return ""
	}
	return fmt.Sprintf(" pattern=%q", p)
}
