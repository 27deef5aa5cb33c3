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
	"strings"

	"github.com/jpikl/rew/pkg/transliterate"
)

func replaceFirst(value string, sub Substitution) string {
	idx := strings.Index(value, sub.Target)
	if idx < 0 {
		return value
	}
	return value[:idx] + sub.Replacement + value[idx+len(sub.Target):]
}

func replaceAll(value string, sub Substitution) string {
	return strings.ReplaceAll(value, sub.Target, sub.Replacement)
}

func replaceEmpty(value, replacement string) string {
	if value == "" {
		return replacement
	}
	return value
}

func removeNonAscii(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r <= 127 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func toAscii(value string) string {
	return transliterate.ToASCII(value)
}
