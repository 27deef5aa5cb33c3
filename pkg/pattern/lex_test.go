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

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/openconfig/gnmi/errdiff"
)

func lexAll(t *testing.T, source string, escape rune) []Token {
	t.Helper()
	lexer := NewLexer(source, escape)
	var tokens []Token
	for {
		tok, err := lexer.NextToken()
		if err != nil {
			t.Fatalf("NextToken() returned unexpected error: %v", err)
		}
		if tok == nil {
			return tokens
		}
		tokens = append(tokens, *tok)
	}
}

func TestLexerRaw(t *testing.T) {
	tests := []struct {
		desc string
		in   string
		want string
	}{
		{desc: "empty", in: "", want: ""},
		{desc: "plain text", in: "hello world", want: "hello world"},
		{desc: "path", in: "dir/photo.JPG", want: "dir/photo.JPG"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			tokens := lexAll(t, tt.in, DefaultEscape)
			if tt.want == "" {
				if len(tokens) != 0 {
					t.Fatalf("got %d tokens, want 0", len(tokens))
				}
				return
			}
			if len(tokens) != 1 || tokens[0].Kind != TokenRaw {
				t.Fatalf("got %v, want a single Raw token", tokens)
			}
			if got := tokens[0].String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLexerEscapes(t *testing.T) {
	tests := []struct {
		desc string
		in   string
		want string
	}{
		{desc: "escaped brace open", in: "%{", want: "{"},
		{desc: "escaped brace close", in: "%}", want: "}"},
		{desc: "escaped pipe", in: "%|", want: "|"},
		{desc: "newline", in: "%n", want: "\n"},
		{desc: "carriage return", in: "%r", want: "\r"},
		{desc: "tab", in: "%t", want: "\t"},
		{desc: "nul", in: "%0", want: "\x00"},
		{desc: "escaped escape", in: "%%", want: "%"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			tokens := lexAll(t, tt.in, DefaultEscape)
			if len(tokens) != 1 {
				t.Fatalf("got %d tokens, want 1", len(tokens))
			}
			if got := tokens[0].String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLexerStructuralTokens(t *testing.T) {
	tokens := lexAll(t, "{p|e}", DefaultEscape)
	want := []TokenKind{TokenExprStart, TokenRaw, TokenPipe, TokenRaw, TokenExprEnd}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, tokens[i].Kind, k)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		desc        string
		in          string
		wantErrSubs string
	}{
		{desc: "unterminated escape", in: "abc%", wantErrSubs: "unterminated"},
		{desc: "unknown escape", in: "a%qz", wantErrSubs: "unknown escape"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			lexer := NewLexer(tt.in, DefaultEscape)
			var err error
			for err == nil {
				var tok *Token
				tok, err = lexer.NextToken()
				if tok == nil && err == nil {
					t.Fatalf("expected an error, got none")
				}
			}
			if diff := errdiff.Substring(err, tt.wantErrSubs); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestLexerConfigurableEscape(t *testing.T) {
	tokens := lexAll(t, "a^nb", '^')
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	if got, want := tokens[0].String(), "a\nb"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTokenRangesCoverSource(t *testing.T) {
	source := "pre{p|e}post"
	lexer := NewLexer(source, DefaultEscape)
	var got string
	for {
		tok, err := lexer.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok == nil {
			break
		}
		got += source[tok.Range.Start:tok.Range.End]
	}
	if diff := cmp.Diff(source, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("token ranges do not cover source (-want +got):\n%s", diff)
	}
}
