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

	"github.com/openconfig/gnmi/errdiff"
)

func TestParseConstantsAndExpressions(t *testing.T) {
	p, err := Parse("new.{e|v}", DefaultEscape)
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if len(p.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(p.Items))
	}
	if p.Items[0].Kind != ItemConstant || p.Items[0].Constant != "new." {
		t.Errorf("item 0 = %+v, want Constant %q", p.Items[0], "new.")
	}
	if p.Items[1].Kind != ItemExpression || p.Items[1].Variable.Kind != VarExtension {
		t.Errorf("item 1 = %+v, want Expression over VarExtension", p.Items[1])
	}
	if len(p.Items[1].Filters) != 1 || p.Items[1].Filters[0].Kind != FilterToLowercase {
		t.Errorf("item 1 filters = %+v, want [ToLowercase]", p.Items[1].Filters)
	}
}

func TestParseRangeCoversSource(t *testing.T) {
	source := "a{p}b"
	p, err := Parse(source, DefaultEscape)
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	var got string
	for _, item := range p.Items {
		got += source[item.Range.Start:item.Range.End]
	}
	if got != source {
		t.Errorf("item ranges = %q, want %q", got, source)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		desc        string
		in          string
		wantErrSubs string
	}{
		{desc: "unmatched open", in: "{p", wantErrSubs: "unmatched opening brace"},
		{desc: "unmatched close", in: "p}", wantErrSubs: "unmatched closing brace"},
		{desc: "pipe outside expression", in: "a|b", wantErrSubs: "pipe outside"},
		{desc: "nested expression start", in: "{p|{e}}", wantErrSubs: "expression start inside"},
		{desc: "empty variable", in: "{}", wantErrSubs: "expected a variable"},
		{desc: "unknown variable", in: "{x}", wantErrSubs: "unknown variable"},
		{desc: "extra chars after variable", in: "{px}", wantErrSubs: "expected a pipe or closing brace"},
		{desc: "extra chars after path filter", in: "{p|wJUNK}", wantErrSubs: "expected a pipe or closing brace"},
		{desc: "extra chars after range filter", in: "{p|n2-3JUNK}", wantErrSubs: "expected a pipe or closing brace"},
		{desc: "extra chars after counter filter", in: "{p|cX}", wantErrSubs: "expected a pipe or closing brace"},
		{desc: "regex switch without matcher", in: "{p|@@@notaswitch", wantErrSubs: "regex switch case 0 is missing a matcher"},
		{desc: "regex capture zero", in: "{0}", wantErrSubs: "regex capture group indices start at 1"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := Parse(tt.in, DefaultEscape)
			if diff := errdiff.Substring(err, tt.wantErrSubs); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	sources := []string{
		"plain text",
		"{p}",
		"{p|e|v}",
		"new.{e|v}",
		"{1}-{2}",
		"{p|n2-3}",
		"{p|@:^[a-z]+$:lower:other}",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			first, err := Parse(source, DefaultEscape)
			if err != nil {
				t.Fatalf("Parse(%q) returned unexpected error: %v", source, err)
			}
			var rebuilt string
			for _, item := range first.Items {
				rebuilt += source[item.Range.Start:item.Range.End]
			}
			second, err := Parse(rebuilt, DefaultEscape)
			if err != nil {
				t.Fatalf("Parse(%q) (round-tripped) returned unexpected error: %v", rebuilt, err)
			}
			if len(first.Items) != len(second.Items) {
				t.Fatalf("round trip changed item count: %d vs %d", len(first.Items), len(second.Items))
			}
		})
	}
}
