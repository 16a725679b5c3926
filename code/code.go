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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is a machine-readable error code as it appears in the "code" field of a
// response error entry.
//
// The package defines a closed set of well-known codes (see codes.go), but the
// type itself is open: callers may carry any custom value. Use Known to tell
// the two apart and Parse when a custom value has to be canonical.
type Code string

// MinLength and MaxLength bound the length of a canonical custom code.
const (
	MinLength = 3
	MaxLength = 64
)

// codeFmt is the canonical pattern for custom codes: one or more
// dot-separated segments, each starting with a lowercase ASCII letter and
// continuing with lowercase letters, digits or underscores.
//
// Examples that match:
//
//	"parse"
//	"too_large"
//	"validation.email"
//	"billing.card.declined"
//
// Examples that DO NOT match:
//
//	"Parse"           (uppercase)
//	"too-large"       (dash; Normalize turns it into an underscore)
//	"validation..x"   (empty segment)
//	"1parse"          (digit first)
//
// Length is checked separately against MinLength / MaxLength.
const codeFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`

var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value cannot be parsed as a canonical code.
var ErrCodeInvalid = errors.New("dresp: invalid code")

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Parse normalizes s and validates it against the canonical format.
// On success it returns the resulting Code; otherwise ErrCodeInvalid.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return "", err
	}
	return Code(s), nil
}

// MustParse is like Parse but panics on invalid input. Intended for
// package-level declarations of custom codes.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize trims surrounding spaces, lowercases and replaces '-' with '_'.
// It does NOT guarantee that the result is valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate reports whether c is in canonical form.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the wire form of the code. It never panics: values outside
// the well-known set are returned verbatim.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
//
// Unlike Validate it accepts any value, because response error codes are
// free-form on the wire.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// Text is normalized and validated; well-known codes always pass.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Segments splits a dotted code into its segments, e.g.
// "billing.card.declined" -> ["billing" "card" "declined"].
func (c Code) Segments() []string {
	if c == "" {
		return nil
	}
	return strings.Split(string(c), ".")
}

// Parent returns the code with its last segment removed and true, or ""
// and false when c has a single segment.
func (c Code) Parent() (Code, bool) {
	i := strings.LastIndexByte(string(c), '.')
	if i < 0 {
		return "", false
	}
	return c[:i], true
}

// validate checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrCodeInvalid
	}
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
