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

import (
	"math"
	"strconv"
)

// Interval is a half-open [Start, End) span of positions. End is nil when
// the span is unbounded (runs to whatever the consumer considers "the
// end" - string length for a substring, the maximum representable value
// for a random-number interval).
type Interval struct {
	Start int
	End   *int
}

// Length returns End-Start. Only valid when End is bounded.
func (iv Interval) Length() int {
	return *iv.End - iv.Start
}

// Bounded reports whether the interval has a known upper bound.
func (iv Interval) Bounded() bool {
	return iv.End != nil
}

// intervalPolicy parameterizes the single range parser shared by every
// range-shaped sub-grammar (substring, substring-backward, random-number
// interval, column range): whether the lower bound is a 1-based index that
// must be shifted to 0-based, whether an empty token is tolerated, whether
// a delimiter (`-` or `+`) is mandatory, and whether the `+length` form is
// permitted at all.
type intervalPolicy struct {
	index             bool
	emptyAllowed      bool
	delimiterRequired bool
	lengthAllowed     bool
}

var indexRangePolicy = intervalPolicy{index: true, emptyAllowed: false, delimiterRequired: false, lengthAllowed: true}
var numberIntervalPolicy = intervalPolicy{index: false, emptyAllowed: true, delimiterRequired: false, lengthAllowed: false}

// ParseIndexRange parses the `n`/`N`/`%` argument grammar: a 1-based
// character or field index, optionally extended with `-end`, `-` (open
// ended), or `+length`.
func ParseIndexRange(reader *Reader[Char]) (Interval, error) {
	return parseInterval(reader, indexRangePolicy)
}

// ParseNumberInterval parses the `u` (random number) argument grammar: a
// plain integer, optionally extended with `-end` or `-` (open ended).
func ParseNumberInterval(reader *Reader[Char]) (Interval, error) {
	return parseInterval(reader, numberIntervalPolicy)
}

func parseInterval(reader *Reader[Char], policy intervalPolicy) (Interval, error) {
	startPos := reader.Position()
	digits, sawDigit := readDigits(reader)

	if !sawDigit {
		if _, ok := reader.Peek(); !ok {
			if policy.emptyAllowed {
				return Interval{Start: 0}, nil
			}
			return Interval{}, newParseError(ExpectedRange, Range{startPos, reader.Position()}, "expected a range")
		}
		return Interval{}, newParseError(RangeInvalid, Range{startPos, reader.Position()}, "invalid range")
	}

	written, _ := strconv.Atoi(digits)
	start := written
	if policy.index {
		if start == 0 {
			return Interval{}, newParseError(IndexZero, Range{startPos, reader.Position()}, "index cannot be zero")
		}
		start--
	}

	r, ok := reader.PeekRune()
	switch {
	case ok && r == '-':
		reader.Seek()
		endPos := reader.Position()
		endDigits, sawEnd := readDigits(reader)
		if !sawEnd {
			return Interval{Start: start}, nil
		}
		end, _ := strconv.Atoi(endDigits)
		if end < written {
			return Interval{}, newParseError(RangeStartOverEnd, Range{startPos, reader.Position()},
				"range start %d is greater than range end %d", written, end)
		}
		_ = endPos
		if !policy.index {
			// The written upper bound is inclusive; store it exclusive so the
			// interval stays half-open like the single-number form.
			end++
		}
		return Interval{Start: start, End: &end}, nil

	case ok && r == '+' && policy.lengthAllowed:
		reader.Seek()
		lenPos := reader.Position()
		lenDigits, sawLen := readDigits(reader)
		if !sawLen {
			return Interval{}, newParseError(ExpectedRangeLength, Range{lenPos, reader.Position()}, "expected a range length")
		}
		length, _ := strconv.Atoi(lenDigits)
		end := start + length
		if end < start || end > math.MaxInt32 {
			end = math.MaxInt32
		}
		return Interval{Start: start, End: &end}, nil

	default:
		if policy.delimiterRequired {
			return Interval{}, newParseError(ExpectedRangeDelimiter, Range{startPos, reader.Position()}, "expected a range delimiter")
		}
		end := start + 1
		return Interval{Start: start, End: &end}, nil
	}
}

func readDigits(reader *Reader[Char]) (string, bool) {
	var digits []rune
	for {
		r, ok := reader.PeekRune()
		if !ok || r < '0' || r > '9' {
			break
		}
		reader.Seek()
		digits = append(digits, r)
	}
	if len(digits) == 0 {
		return "", false
	}
	return string(digits), true
}
