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

// Package transliterate reduces Unicode text to its closest ASCII
// approximation, the way the ToAscii filter needs ("á" -> "a", "č" -> "c").
package transliterate

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes Unicode combining marks (the accents a NFD
// decomposition splits off of their base letter) from a decomposed string.
var stripMarks = runes.Remove(runes.In(unicode.Mn))

// ToASCII decomposes value into base letters plus combining marks, drops
// the marks, and returns the ASCII that remains. Codepoints with no
// Latin-script decomposition (CJK, emoji, ...) are dropped from the result.
func ToASCII(value string) string {
	decomposed, _, err := transform.String(norm.NFD, value)
	if err != nil {
		decomposed = value
	}
	stripped, _, err := transform.String(stripMarks, decomposed)
	if err != nil {
		stripped = decomposed
	}
	return keepASCIIApprox(stripped)
}

// keepASCIIApprox passes through existing ASCII untouched and drops
// whatever the decomposition pass could not reduce to ASCII, rather than
// emitting raw multi-byte runes a later RemoveNonAscii pass would have to
// clean up anyway.
func keepASCIIApprox(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}
