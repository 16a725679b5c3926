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

// Well-known response error codes.
//
// This is the closed vocabulary produced by dresp itself. Every value has a
// stable wire string and a default human-readable message.
const (
	// Parse indicates that something could not be parsed or extracted:
	// request bodies, path parameters, headers, or the response header map.
	// Can be mapped to an HTTP 400.
	Parse Code = "parse"

	// TooLarge indicates that a payload exceeded the accepted size.
	// Can be mapped to an HTTP 413.
	TooLarge Code = "too_large"

	// Timeout indicates that the operation did not finish in time.
	// Can be mapped to an HTTP 408.
	Timeout Code = "timeout"

	// Server indicates an internal failure. It is the code carried by the
	// fixed fallback body.
	// Can be mapped to an HTTP 500.
	Server Code = "server"

	// Unknown is the default code of an error entry that was not given one.
	// Can be mapped to an HTTP 500.
	Unknown Code = "unknown"
)

// defaultMessages holds the default message for each well-known code.
var defaultMessages = map[Code]string{
	Parse:    "Failed to parse the request.",
	TooLarge: "Payload too large.",
	Timeout:  "Request timed out.",
	Server:   "Internal server error.",
	Unknown:  "Unknown error.",
}

// all lists the well-known codes in declaration order.
var all = []Code{Parse, TooLarge, Timeout, Server, Unknown}

// DefaultMessage returns the default message for c. Codes outside the
// well-known set get the message of Unknown.
func (c Code) DefaultMessage() string {
	if msg, ok := defaultMessages[c]; ok {
		return msg
	}
	return defaultMessages[Unknown]
}

// Known reports whether c belongs to the well-known set.
func (c Code) Known() bool {
	_, ok := defaultMessages[c]
	return ok
}

// All returns a fresh copy of the well-known codes in declaration order.
func All() []Code {
	out := make([]Code, len(all))
	copy(out, all)
	return out
}
