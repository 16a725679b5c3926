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

package fieldpath

import (
	"reflect"
	"testing"
)

func TestJoinSplit_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		segs   []string
		dotted string
	}{
		{"empty", []string{}, ""},
		{"single", []string{"query"}, "query"},
		{"nested", []string{"json", "title"}, "json.title"},
		{"index", []string{"json", "items", "0"}, "json.items.0"},
		{"dot in segment", []string{"headers", "x.forwarded"}, `headers.x\.forwarded`},
		{"backslash in segment", []string{`a\b`}, `a\\b`},
		{"empty segment", []string{"a", "", "b"}, "a..b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.segs); got != tt.dotted {
				t.Fatalf("Join(%q) = %q, want %q", tt.segs, got, tt.dotted)
			}
			got, err := Split(tt.dotted)
			if err != nil {
				t.Fatalf("Split(%q) unexpected error: %v", tt.dotted, err)
			}
			if !reflect.DeepEqual(got, tt.segs) {
				t.Fatalf("Split(%q) = %q, want %q", tt.dotted, got, tt.segs)
			}
		})
	}
}

func TestSplit_DanglingEscape(t *testing.T) {
	if _, err := Split(`json\`); err != ErrInvalidPath {
		t.Fatalf("Split dangling escape error = %v, want ErrInvalidPath", err)
	}
}

func TestMustSplit_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustSplit should panic on invalid input")
		}
	}()
	_ = MustSplit(`\`)
}

func TestClone_NeverNil(t *testing.T) {
	if got := Clone(nil); got == nil || len(got) != 0 {
		t.Fatalf("Clone(nil) = %#v, want empty non-nil", got)
	}
	src := []string{"a", "b"}
	cp := Clone(src)
	cp[0] = "z"
	if src[0] != "a" {
		t.Fatalf("Clone shares backing array")
	}
}

func TestPointer(t *testing.T) {
	tests := []struct {
		segs []string
		ptr  string
	}{
		{[]string{}, ""},
		{[]string{"json", "title"}, "/json/title"},
		{[]string{"a/b", "m~n"}, "/a~1b/m~0n"},
		{[]string{""}, "/"},
	}
	for _, tt := range tests {
		if got := Pointer(tt.segs); got != tt.ptr {
			t.Fatalf("Pointer(%q) = %q, want %q", tt.segs, got, tt.ptr)
		}
		got, err := FromPointer(tt.ptr)
		if err != nil {
			t.Fatalf("FromPointer(%q) unexpected error: %v", tt.ptr, err)
		}
		if !reflect.DeepEqual(got, tt.segs) {
			t.Fatalf("FromPointer(%q) = %q, want %q", tt.ptr, got, tt.segs)
		}
	}

	if got, _ := FromPointer("/~01"); !reflect.DeepEqual(got, []string{"~1"}) {
		t.Fatalf("FromPointer(/~01) = %q, want [~1]", got)
	}
	if _, err := FromPointer("json/title"); err != ErrInvalidPath {
		t.Fatalf("FromPointer without leading slash error = %v", err)
	}
}
