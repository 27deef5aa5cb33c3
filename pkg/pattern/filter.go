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

// FilterKind enumerates every filter variant. Filters are inert data, never
// closures: evaluation is a flat switch over Kind, never dynamic dispatch.
type FilterKind int

const (
	// Path filters - no argument, operate on the accumulated string as a path.
	FilterWorkingDir FilterKind = iota
	FilterAbsolutePath
	FilterRelativePath
	FilterNormalizedPath
	FilterCanonicalPath
	FilterParentDirectory
	FilterRemoveLastName
	FilterFileName
	FilterLastName
	FilterBaseName
	FilterRemoveExtension
	FilterExtension
	FilterExtensionWithDot
	FilterEnsureTrailingSeparator
	FilterRemoveTrailingSeparator

	// Substring filters.
	FilterSubstring
	FilterSubstringBackward

	// String replace filters.
	FilterReplaceFirst
	FilterReplaceAll
	FilterReplaceEmpty

	// Regex filters.
	FilterRegexMatch
	FilterRegexReplaceFirst
	FilterRegexReplaceAll
	FilterRegexSwitch
	FilterRegexCapture

	// Column / field extraction.
	FilterColumn

	// Format filters.
	FilterTrim
	FilterToLowercase
	FilterToUppercase
	FilterToAscii
	FilterRemoveNonAscii

	// Pad filters.
	FilterLeftPad
	FilterRightPad

	// Generator filters.
	FilterRepeat
	FilterLocalCounter
	FilterGlobalCounter
	FilterRandomNumber
	FilterRandomUuid
)

// Filter is a single parsed pipeline step. Only the fields relevant to Kind
// are populated; everything else is a well-defined zero value.
type Filter struct {
	Kind FilterKind

	Range        Interval      // Substring, SubstringBackward, RandomNumber, Column
	Substitution Substitution  // ReplaceFirst/All, RegexReplaceFirst/All
	ReplaceEmpty string        // ReplaceEmpty
	Regex        *regexp.Regexp // RegexMatch only (RegexReplaceFirst/All use Substitution.TargetRegex)
	Switch       RegexSwitch   // RegexSwitch
	CaptureIndex int           // RegexCapture
	ColumnDelim  rune          // Column

	Padding    Padding    // LeftPad, RightPad
	Repetition Repetition // Repeat

	SourceRange Range // byte range in the pattern source, for error reporting
}

var pathFilterLetters = map[rune]FilterKind{
	'w': FilterWorkingDir,
	'a': FilterAbsolutePath,
	'A': FilterRelativePath,
	'p': FilterNormalizedPath,
	'P': FilterCanonicalPath,
	'd': FilterParentDirectory,
	'D': FilterRemoveLastName,
	'f': FilterFileName,
	'F': FilterLastName,
	'b': FilterBaseName,
	'B': FilterRemoveExtension,
	'e': FilterExtension,
	'E': FilterExtensionWithDot,
	'z': FilterEnsureTrailingSeparator,
	'Z': FilterRemoveTrailingSeparator,
}

// ParseFilter parses a filter token: the first rune dispatches the variant,
// the remainder is consumed by that variant's own sub-grammar. Every variant
// must consume the whole token; leftover characters are ExpectedPipeOrExprEnd,
// matching ParseVariable's own end-of-token check.
func ParseFilter(token Token) (Filter, error) {
	reader := NewReader(token.Chars)
	letter, ok := reader.PeekRune()
	if !ok {
		return Filter{}, newParseError(ExpectedFilter, token.Range, "expected a filter")
	}
	reader.Seek()

	finish := func(f Filter) (Filter, error) {
		if !reader.AtEnd() {
			return Filter{}, newParseError(ExpectedPipeOrExprEnd, Range{reader.Position(), token.Range.End},
				"expected a pipe or closing brace")
		}
		return f, nil
	}

	if kind, ok := pathFilterLetters[letter]; ok {
		return finish(Filter{Kind: kind, SourceRange: token.Range})
	}

	switch letter {
	case 'n', 'N':
		ir, err := ParseIndexRange(reader)
		if err != nil {
			return Filter{}, err
		}
		kind := FilterSubstring
		if letter == 'N' {
			kind = FilterSubstringBackward
		}
		return finish(Filter{Kind: kind, Range: ir, SourceRange: token.Range})

	case 'r', 'R':
		sub, err := ParseStringSubstitution(reader)
		if err != nil {
			return Filter{}, err
		}
		kind := FilterReplaceFirst
		if letter == 'R' {
			kind = FilterReplaceAll
		}
		return finish(Filter{Kind: kind, Substitution: sub, SourceRange: token.Range})

	case '?':
		return finish(Filter{Kind: FilterReplaceEmpty, ReplaceEmpty: CharsToString(reader.ReadToEnd()), SourceRange: token.Range})

	case '=':
		matcherStart := reader.Position()
		src := CharsToString(reader.ReadToEnd())
		re, err := regexp.Compile(src)
		if err != nil {
			return Filter{}, newParseError(RegexInvalid, Range{matcherStart, token.Range.End}, "invalid regex: %s", err)
		}
		return finish(Filter{Kind: FilterRegexMatch, Regex: re, SourceRange: token.Range})

	case 's', 'S':
		sub, err := ParseRegexSubstitution(reader)
		if err != nil {
			return Filter{}, err
		}
		kind := FilterRegexReplaceFirst
		if letter == 'S' {
			kind = FilterRegexReplaceAll
		}
		return finish(Filter{Kind: kind, Substitution: sub, SourceRange: token.Range})

	case '@':
		sw, err := ParseRegexSwitch(reader)
		if err != nil {
			return Filter{}, err
		}
		return finish(Filter{Kind: FilterRegexSwitch, Switch: sw, SourceRange: token.Range})

	case '%':
		delim, ok := reader.ReadRune()
		if !ok {
			return Filter{}, newParseError(ExpectedRange, token.Range, "column filter is missing a delimiter")
		}
		ir, err := ParseIndexRange(reader)
		if err != nil {
			return Filter{}, err
		}
		return finish(Filter{Kind: FilterColumn, ColumnDelim: delim, Range: ir, SourceRange: token.Range})

	case 't':
		return finish(Filter{Kind: FilterTrim, SourceRange: token.Range})
	case 'v':
		return finish(Filter{Kind: FilterToLowercase, SourceRange: token.Range})
	case '^':
		return finish(Filter{Kind: FilterToUppercase, SourceRange: token.Range})
	case 'i':
		return finish(Filter{Kind: FilterToAscii, SourceRange: token.Range})
	case 'I':
		return finish(Filter{Kind: FilterRemoveNonAscii, SourceRange: token.Range})

	case '<', '>':
		pad, err := ParsePadding(reader, letter)
		if err != nil {
			return Filter{}, err
		}
		kind := FilterLeftPad
		if letter == '>' {
			kind = FilterRightPad
		}
		return finish(Filter{Kind: kind, Padding: pad, SourceRange: token.Range})

	case '*':
		rep, err := ParseRepetitionWithDelimiter(reader)
		if err != nil {
			return Filter{}, err
		}
		return finish(Filter{Kind: FilterRepeat, Repetition: rep, SourceRange: token.Range})

	case 'c':
		return finish(Filter{Kind: FilterLocalCounter, SourceRange: token.Range})
	case 'C':
		return finish(Filter{Kind: FilterGlobalCounter, SourceRange: token.Range})

	case 'u':
		ir, err := ParseNumberInterval(reader)
		if err != nil {
			return Filter{}, err
		}
		return finish(Filter{Kind: FilterRandomNumber, Range: ir, SourceRange: token.Range})

	case 'U':
		return finish(Filter{Kind: FilterRandomUuid, SourceRange: token.Range})

	default:
		if letter >= '0' && letter <= '9' {
			reader.seekTo(0)
			digits, _ := readDigits(reader)
			index := 0
			for _, d := range digits {
				index = index*10 + int(d-'0')
			}
			if index == 0 {
				return Filter{}, newParseError(RegexCaptureZero, token.Range, "regex capture group indices start at 1")
			}
			return finish(Filter{Kind: FilterRegexCapture, CaptureIndex: index, SourceRange: token.Range})
		}
		return Filter{}, newParseError(UnknownFilter, token.Range, "unknown filter '%c'", letter)
	}
}
