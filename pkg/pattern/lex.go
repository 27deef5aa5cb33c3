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

import "os"

// DefaultEscape is the escape rune used when a pattern source does not
// override it.
const DefaultEscape = '%'

// Lexer splits a raw pattern string into Raw/ExprStart/ExprEnd/Pipe tokens,
// honoring a configurable escape character. It never looks past a single
// token boundary; the Parser decides what sequence of tokens is meaningful.
type Lexer struct {
	reader *Reader[sourceRune]
	escape rune
}

// NewLexer builds a Lexer over source, using escape as the escape rune.
func NewLexer(source string, escape rune) *Lexer {
	return &Lexer{reader: NewReader(sourceRunesOf(source)), escape: escape}
}

// NextToken returns the next token, or nil with no error at end of input.
func (l *Lexer) NextToken() (*Token, error) {
	start := l.reader.Position()
	r, ok := l.reader.PeekRune()
	if !ok {
		return nil, nil
	}

	switch r {
	case '{':
		l.reader.Seek()
		return &Token{Kind: TokenExprStart, Range: Range{start, l.reader.Position()}}, nil
	case '}':
		l.reader.Seek()
		return &Token{Kind: TokenExprEnd, Range: Range{start, l.reader.Position()}}, nil
	case '|':
		l.reader.Seek()
		return &Token{Kind: TokenPipe, Range: Range{start, l.reader.Position()}}, nil
	default:
		return l.lexRaw(start)
	}
}

func (l *Lexer) lexRaw(start int) (*Token, error) {
	var chars []Char

	for {
		r, ok := l.reader.PeekRune()
		if !ok || r == '{' || r == '}' || r == '|' {
			break
		}

		if r == l.escape {
			escapeStart := l.reader.Position()
			l.reader.Seek()
			letter, ok := l.reader.ReadRune()
			if !ok {
				return nil, newParseError(UnterminatedEscapeSequence, Range{escapeStart, l.reader.Position()},
					"unterminated escape sequence")
			}
			value, ok := l.mapEscape(letter)
			if !ok {
				return nil, newParseError(UnknownEscapeSequence, Range{escapeStart, l.reader.Position()},
					"unknown escape sequence '%c%c'", l.escape, letter)
			}
			chars = append(chars, EscapedChar(value, l.escape, letter))
			continue
		}

		l.reader.Seek()
		chars = append(chars, RawChar(r))
	}

	return &Token{Kind: TokenRaw, Chars: chars, Range: Range{start, l.reader.Position()}}, nil
}

func (l *Lexer) mapEscape(letter rune) (rune, bool) {
	switch letter {
	case '{', '}', '|':
		return letter, true
	case '/':
		return rune(os.PathSeparator), true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '0':
		return 0, true
	default:
		if letter == l.escape {
			return l.escape, true
		}
		return 0, false
	}
}
