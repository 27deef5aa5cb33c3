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
	"regexp"
	"strings"
)

var captureRefPattern = regexp.MustCompile(`\$(\d+)`)

// addCaptureGroupBrackets rewrites bare $N capture references into the
// ${N} form before handing a replacement string to regexp.Regexp's own
// expansion, so that digits or letters immediately following a reference
// cannot be mistaken for part of the capture index.
func addCaptureGroupBrackets(replacement string) string {
	if !strings.Contains(replacement, "$") {
		return replacement
	}
	return captureRefPattern.ReplaceAllString(replacement, "${$1}")
}

func regexMatch(value string, re *regexp.Regexp) string {
	return re.FindString(value)
}

func regexReplaceFirst(value string, re *regexp.Regexp, replacement string) string {
	replacement = addCaptureGroupBrackets(replacement)
	loc := re.FindSubmatchIndex([]byte(value))
	if loc == nil {
		return value
	}
	var out []byte
	out = append(out, value[:loc[0]]...)
	out = re.ExpandString(out, replacement, value, loc)
	out = append(out, value[loc[1]:]...)
	return string(out)
}

func regexReplaceAll(value string, re *regexp.Regexp, replacement string) string {
	replacement = addCaptureGroupBrackets(replacement)
	return re.ReplaceAllString(value, replacement)
}
