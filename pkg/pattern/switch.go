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

import "regexp"

// SwitchCase is one `matcher:result` pair of a RegexSwitch.
type SwitchCase struct {
	Matcher *regexp.Regexp
	Result  string
}

// RegexSwitch is the `@` filter's argument: an ordered list of cases plus a
// default result used when no case matches.
type RegexSwitch struct {
	Cases   []SwitchCase
	Default string
}

// ParseRegexSwitch parses the `:matcher:result:matcher:result:...:default`
// grammar. The first remaining character is the delimiter; matcher/result
// pairs are read alternately until no further delimiter is found, at which
// point the last value read becomes the default.
func ParseRegexSwitch(reader *Reader[Char]) (RegexSwitch, error) {
	start := reader.Position()
	delimiter, ok := reader.ReadRune()
	if !ok {
		return RegexSwitch{}, newParseError(ExpectedRegexSwitch, Range{start, reader.Position()}, "expected a regex switch")
	}

	var sw RegexSwitch
	for {
		matcherStart := reader.Position()
		matcherChars, matcherFound := readUntilFound(reader, delimiter)
		if !matcherFound {
			sw.Default = CharsToString(matcherChars)
			break
		}
		if len(matcherChars) == 0 {
			return RegexSwitch{}, newParseError(RegexSwitchWithoutMatcher, Range{matcherStart, reader.Position()},
				"regex switch case %d is missing a matcher", len(sw.Cases))
		}
		matcherSrc := CharsToString(matcherChars)
		re, err := regexp.Compile(matcherSrc)
		if err != nil {
			return RegexSwitch{}, newParseError(RegexInvalid, Range{matcherStart, reader.Position()}, "invalid regex: %s", err)
		}

		resultChars, resultFound := readUntilFound(reader, delimiter)
		sw.Cases = append(sw.Cases, SwitchCase{Matcher: re, Result: CharsToString(resultChars)})
		if !resultFound {
			break
		}
	}

	return sw, nil
}

// readUntilFound behaves like Reader.ReadUntil but also reports whether the
// delimiter actually occurred, distinguishing "ran out of input" from "found
// an empty slot".
func readUntilFound(reader *Reader[Char], delimiter rune) ([]Char, bool) {
	start := reader.Position()
	chars := reader.ReadUntil(delimiter)
	consumed := reader.Position() - start
	width := 0
	for _, c := range chars {
		width += c.Width()
	}
	return chars, consumed > width
}
