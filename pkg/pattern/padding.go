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

// Padding is the argument of the `<`/`>` pad filters: either a fixed string
// read verbatim after the filter's own letter, or a repeated value sharing
// the `*` repeat filter's Repetition grammar.
type Padding struct {
	Fixed    string
	Repeated *Repetition
}

// Expand returns the literal pad string to draw characters from.
func (p Padding) Expand() string {
	if p.Repeated != nil {
		return p.Repeated.Expand("")
	}
	return p.Fixed
}

// ParsePadding parses the `<`/`>` argument grammar. fixedPrefix is the
// filter's own letter (`<` or `>`): when the next character is that letter,
// everything after it is a fixed pad string; when it is a digit, the
// remainder is a delimited Repetition instead.
func ParsePadding(reader *Reader[Char], fixedPrefix rune) (Padding, error) {
	start := reader.Position()
	r, ok := reader.PeekRune()
	if !ok {
		return Padding{}, newParseError(PaddingPrefixInvalid, Range{start, reader.Position()},
			"expected '%c' prefix, got end of filter", fixedPrefix)
	}

	if r >= '0' && r <= '9' {
		rep, err := ParseRepetitionWithDelimiter(reader)
		if err != nil {
			return Padding{}, err
		}
		return Padding{Repeated: &rep}, nil
	}

	if r == fixedPrefix {
		reader.Seek()
		return Padding{Fixed: CharsToString(reader.ReadToEnd())}, nil
	}

	return Padding{}, newParseError(PaddingPrefixInvalid, Range{start, reader.Position() + 1},
		"expected '%c' prefix, got '%c'", fixedPrefix, r)
}

// ApplyLeft prepends characters from padding's expansion to cover value up
// to the pad's length, leaving value unchanged if it already covers it.
func ApplyLeft(value string, padding Padding) string {
	valueRunes := []rune(value)
	padRunes := []rune(padding.Expand())
	if len(padRunes) <= len(valueRunes) {
		return value
	}
	prefix := padRunes[:len(padRunes)-len(valueRunes)]
	return string(prefix) + value
}

// ApplyRight appends characters from padding's expansion to cover value up
// to the pad's length, leaving value unchanged if it already covers it.
func ApplyRight(value string, padding Padding) string {
	valueRunes := []rune(value)
	padRunes := []rune(padding.Expand())
	if len(padRunes) <= len(valueRunes) {
		return value
	}
	suffix := padRunes[len(valueRunes):]
	return value + string(suffix)
}
