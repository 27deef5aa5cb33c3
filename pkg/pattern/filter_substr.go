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

// substring returns the forward character-indexed slice of value described
// by iv. A start past the end of value clears the string; the end is
// saturated to the string's length.
func substring(value string, iv Interval) string {
	runes := []rune(value)
	if iv.Start >= len(runes) {
		return ""
	}
	end := len(runes)
	if iv.End != nil && *iv.End < end {
		end = *iv.End
	}
	if end < iv.Start {
		end = iv.Start
	}
	return string(runes[iv.Start:end])
}

// substringBackward applies substring semantics indexed from the end of
// value: reverse, take the forward substring, reverse again.
func substringBackward(value string, iv Interval) string {
	runes := []rune(value)
	reversed := reverseRunes(runes)
	result := substring(string(reversed), iv)
	return string(reverseRunes([]rune(result)))
}

func reverseRunes(runes []rune) []rune {
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[len(runes)-1-i] = r
	}
	return out
}

// splitColumns splits value on delimiter and returns the fields selected by
// iv, rejoined with delimiter - the `%` column/field-extraction filter.
func splitColumns(value string, delimiter rune, iv Interval) string {
	fields := strings.Split(value, string(delimiter))
	if iv.Start >= len(fields) {
		return ""
	}
	end := len(fields)
	if iv.End != nil && *iv.End < end {
		end = *iv.End
	}
	if end < iv.Start {
		end = iv.Start
	}
	return strings.Join(fields[iv.Start:end], string(delimiter))
}
