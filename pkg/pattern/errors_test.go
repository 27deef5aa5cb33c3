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
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestFormatParseErrorRendersCaretDiagnostic(t *testing.T) {
	source := "{p|@@@notaswitch"
	_, err := Parse(source, DefaultEscape)
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("Parse(%q) returned %T, want *ParseError", source, err)
	}

	got := FormatParseError(source, perr)
	want := "{p|@@@notaswitch\n    ^\nRegexSwitchWithoutMatcher: regex switch case 0 is missing a matcher"

	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("FormatParseError() mismatch (-want +got):\n%s", diff)
	}
}
