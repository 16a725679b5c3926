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
	"errors"
	"strings"
)

// ErrInvalidPath is returned when a textual path cannot be split back into
// segments (a dangling escape, or a pointer that does not start with "/").
var ErrInvalidPath = errors.New("dresp: invalid field path")

// Separator joins segments in the dotted form.
const Separator = '.'

const escape = '\\'

// Clone returns a fresh copy of segs. A nil or empty input yields an empty,
// non-nil slice so that it always encodes as a JSON array.
func Clone(segs []string) []string {
	out := make([]string, len(segs))
	copy(out, segs)
	return out
}

// Join renders segments in dotted form, e.g. ["json","title"] -> "json.title".
//
// Separators and backslashes inside a segment are escaped with a backslash,
// which keeps Split(Join(p)) == p for every p.
func Join(segs []string) string {
	if len(segs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, s := range segs {
		if i > 0 {
			b.WriteByte(Separator)
		}
		for j := 0; j < len(s); j++ {
			c := s[j]
			if c == Separator || c == escape {
				b.WriteByte(escape)
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Split is the inverse of Join. The empty string is the empty path.
func Split(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	var (
		segs []string
		cur  strings.Builder
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case escape:
			i++
			if i >= len(s) {
				return nil, ErrInvalidPath
			}
			cur.WriteByte(s[i])
		case Separator:
			segs = append(segs, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	return append(segs, cur.String()), nil
}

// MustSplit is the panic-on-error variant of Split.
func MustSplit(s string) []string {
	segs, err := Split(s)
	if err != nil {
		panic(err)
	}
	return segs
}

// pointerEscaper and pointerUnescaper implement the RFC 6901 token escaping.
// Order matters: "~1" must be decoded before "~0".
var (
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Pointer renders segments as a JSON Pointer, e.g. ["json","title"] ->
// "/json/title". The empty path is the empty pointer "".
func Pointer(segs []string) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(s))
	}
	return b.String()
}

// FromPointer parses a JSON Pointer into segments. Validators commonly report
// locations this way; the result can be fed straight into an error entry.
func FromPointer(p string) ([]string, error) {
	if p == "" {
		return []string{}, nil
	}
	if p[0] != '/' {
		return nil, ErrInvalidPath
	}
	toks := strings.Split(p[1:], "/")
	for i, t := range toks {
		toks[i] = pointerUnescaper.Replace(t)
	}
	return toks, nil
}
