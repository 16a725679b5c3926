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
	"net/http"
	"sync"
	"testing"

	"dirpx.dev/dresp/apis"
	"dirpx.dev/dresp/code"
	"google.golang.org/grpc/codes"
)

func TestDefaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(c code.Code, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(c)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				c, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(code.Parse, 400, codes.InvalidArgument)
	check(code.TooLarge, 413, codes.ResourceExhausted)
	check(code.Timeout, 408, codes.DeadlineExceeded)
	check(code.Server, 500, codes.Internal)
	check(code.Unknown, 500, codes.Unknown)
	check("never.registered", 500, codes.Internal)
	check("", 500, codes.Internal)
}

func TestPriority_OverrideOverPrefixOverDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(code.Parse, 422),
		WithHTTPPrefix("parse", 499),
		WithHTTPOverride(code.Parse, 418),
		WithGRPCDefault(code.Parse, int(codes.FailedPrecondition)),
		WithGRPCPrefix("parse", int(codes.OutOfRange)),
		WithGRPCOverride(code.Parse, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.Parse)
	if st.HTTP != 418 || st.GRPC != codes.Aborted {
		t.Fatalf("override must win; got %+v", st)
	}

	// Without the override the prefix wins over the default.
	m, err = New(
		WithHTTPDefault(code.Parse, 422),
		WithHTTPPrefix("parse", 499),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.Parse); got != 499 {
		t.Fatalf("prefix must beat default; got %d", got)
	}
}

func TestPrefix_LongestAncestorWins(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("billing", http.StatusPaymentRequired),
		WithHTTPPrefix("billing.card.expired", http.StatusBadRequest),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tests := map[code.Code]int{
		"billing":                   402,
		"billing.card.declined":     402,
		"billing.card.expired":      400,
		"billing.card.expired.soon": 400,
		"billingx":                  500,
	}
	for c, want := range tests {
		if got := m.HTTPStatus(c); got != want {
			t.Fatalf("HTTPStatus(%q) = %d, want %d", c, got, want)
		}
	}
}

func TestPrefix_NormalizedAtBuild(t *testing.T) {
	m, err := New(WithHTTPPrefix("  Billing-Errors ", 402))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus("billing_errors.card"); got != 402 {
		t.Fatalf("HTTPStatus = %d, want 402", got)
	}
}

func TestPrefix_Invalid(t *testing.T) {
	if _, err := New(WithHTTPPrefix("bad..prefix", 400)); err == nil {
		t.Fatalf("expected error for invalid HTTP prefix")
	}
	if _, err := New(WithGRPCPrefix("", int(codes.Internal))); err == nil {
		t.Fatalf("expected error for empty gRPC prefix")
	}
}

func TestDefault_IsSharedSnapshot(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("Default() must return the same snapshot")
	}
	if got := Default().HTTPStatus(code.TooLarge); got != 413 {
		t.Fatalf("Default().HTTPStatus(too_large) = %d", got)
	}
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("billing", 402),
		WithGRPCOverride(code.Timeout, int(codes.Unavailable)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := "code=\"billing.card\"\n" +
		"http: source=prefix pattern=\"billing\" -> 402\n" +
		"grpc: source=fallback -> INTERNAL(13)"
	if got := m.Explain("billing.card"); got != want {
		t.Fatalf("Explain mismatch:\n got: %s\nwant: %s", got, want)
	}

	want = "code=\"timeout\"\n" +
		"http: source=default -> 408\n" +
		"grpc: source=override -> UNAVAILABLE(14)"
	if got := m.Explain(code.Timeout); got != want {
		t.Fatalf("Explain mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("billing", 402),
		WithHTTPOverride(code.Timeout, 504),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status("billing.card.declined")
				_ = m.Status(code.Timeout)
				_ = Default().Status(code.Parse)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m, _ := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(code.Parse)
	}
}

func BenchmarkMapperStatus_PrefixHit(b *testing.B) {
	m, _ := New(
		WithHTTPPrefix("billing", 402),
		WithGRPCPrefix("billing", int(codes.FailedPrecondition)),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status("billing.card.declined")
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
