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

import "strings"

// Repetition is the `*` filter's argument: a count and an optional value to
// repeat. Expand repeats Value (or the supplied default, for callers like
// Padding that have no value of their own) Count times.
type Repetition struct {
	Count int
	Value *string
}

// Expand concatenates Count copies of r.Value, falling back to def when no
// value was given.
func (r Repetition) Expand(def string) string {
	value := def
	if r.Value != nil {
		value = *r.Value
	}
	return strings.Repeat(value, r.Count)
}

// ParseRepetition parses the `*` argument grammar without requiring a
// delimiter and value: `count` alone repeats an externally supplied value.
func ParseRepetition(reader *Reader[Char]) (Repetition, error) {
	return parseRepetition(reader, false)
}

// ParseRepetitionWithDelimiter parses the `*` grammar used by the repeat
// filter, where a delimiter and explicit value are mandatory.
func ParseRepetitionWithDelimiter(reader *Reader[Char]) (Repetition, error) {
	return parseRepetition(reader, true)
}

func parseRepetition(reader *Reader[Char], delimiterRequired bool) (Repetition, error) {
	start := reader.Position()
	digits, sawDigit := readDigits(reader)
	if !sawDigit {
		return Repetition{}, newParseError(ExpectedRepetition, Range{start, reader.Position()}, "expected a repetition")
	}
	count := 0
	for _, d := range digits {
		count = count*10 + int(d-'0')
	}

	delimiter, ok := reader.Read()
	if !ok {
		if delimiterRequired {
			return Repetition{}, newParseError(RepetitionWithoutDelimiter, Range{start, reader.Position()},
				"repetition is missing a value delimiter")
		}
		return Repetition{Count: count}, nil
	}

	_ = delimiter
	value := CharsToString(reader.ReadToEnd())
	return Repetition{Count: count, Value: &value}, nil
}
