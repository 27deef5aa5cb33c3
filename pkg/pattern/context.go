// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pattern

import "strconv"

// Quoting selects how an expression's evaluated string is wrapped before
// being appended to the output. Constants are never quoted.
type Quoting int

const (
	QuoteNone Quoting = iota
	QuoteSingle
	QuoteDouble
)

func (q Quoting) wrap(s string) string {
	switch q {
	case QuoteSingle:
		return "'" + s + "'"
	case QuoteDouble:
		return "\"" + s + "\""
	default:
		return s
	}
}

// Context is the per-input-value state threaded through evaluation. It is
// built fresh for each value the driver processes; counters and regex
// captures are supplied by the driver and only read here.
type Context struct {
	WorkingDir    string
	GlobalCounter int64
	LocalCounter  int64
	RegexCaptures []string // nil if no regex ran, otherwise index 0 is the full match
	Quote         Quoting
}

// Capture returns the Nth (1-based) regex capture group, or an empty string
// if there is no such group or no regex ran at all.
func (c *Context) Capture(n int) string {
	if c.RegexCaptures == nil || n < 0 || n >= len(c.RegexCaptures) {
		return ""
	}
	return c.RegexCaptures[n]
}

// formatCounter renders a counter value as a plain decimal integer.
func formatCounter(n int64) string {
	return strconv.FormatInt(n, 10)
}
