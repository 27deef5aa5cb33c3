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

// Substitution is a target/replacement pair for the replace-style filters.
// The target is matched verbatim (string substitutions) or as a compiled
// regular expression (regex substitutions); the replacement is always the
// remaining token text, taken verbatim with no further delimiter handling.
type Substitution struct {
	Target      string
	TargetRegex *regexp.Regexp // non-nil for regex substitutions
	Replacement string
}

// ParseStringSubstitution parses the `r`/`R` argument grammar: delimiter,
// literal target, delimiter, replacement.
func ParseStringSubstitution(reader *Reader[Char]) (Substitution, error) {
	target, replacement, err := parseTargetAndReplacement(reader)
	if err != nil {
		return Substitution{}, err
	}
	return Substitution{Target: target, Replacement: replacement}, nil
}

// ParseRegexSubstitution parses the `s`/`S` argument grammar: delimiter,
// regex target, delimiter, replacement.
func ParseRegexSubstitution(reader *Reader[Char]) (Substitution, error) {
	startPos := reader.Position()
	target, replacement, err := parseTargetAndReplacement(reader)
	if err != nil {
		return Substitution{}, err
	}
	re, err := regexp.Compile(target)
	if err != nil {
		return Substitution{}, newParseError(RegexInvalid, Range{startPos, startPos + len(target)}, "invalid regex: %s", err)
	}
	return Substitution{Target: target, TargetRegex: re, Replacement: replacement}, nil
}

func parseTargetAndReplacement(reader *Reader[Char]) (string, string, error) {
	start := reader.Position()
	delimiter, ok := reader.ReadRune()
	if !ok {
		return "", "", newParseError(ExpectedSubstitution, Range{start, reader.Position()}, "expected a substitution")
	}

	targetChars := reader.ReadUntil(delimiter)
	if len(targetChars) == 0 {
		return "", "", newParseError(SubstitutionWithoutTarget, Range{start, reader.Position()},
			"substitution is missing a target delimited by '%c'", delimiter)
	}

	replacementChars := reader.ReadToEnd()
	return CharsToString(targetChars), CharsToString(replacementChars), nil
}
