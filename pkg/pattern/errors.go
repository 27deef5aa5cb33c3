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
	"fmt"
	"strings"
)

// Range is a half-open byte range [Start, End) into the original pattern
// source string.
type Range struct {
	Start int
	End   int
}

// ErrorKind enumerates every way parsing a pattern can fail. Each value
// mirrors one constructor of the upstream error taxonomy; the set is closed
// and exhaustive so callers can switch on it without a default case.
type ErrorKind int

const (
	ExpectedFilter ErrorKind = iota
	ExpectedNumber
	ExpectedPipeOrExprEnd
	ExpectedRange
	ExpectedRangeLength
	ExpectedRangeDelimiter
	ExpectedRepetition
	ExpectedSubstitution
	ExpectedRegex
	ExpectedRegexSwitch
	ExpectedVariable
	ExprStartInsideExpr
	IndexZero
	PaddingPrefixInvalid
	PipeOutsideExpr
	RangeInvalid
	RangeStartOverEnd
	RegexCaptureZero
	RegexInvalid
	RegexSwitchWithoutMatcher
	RepetitionWithoutDelimiter
	SubstitutionWithoutTarget
	UnknownEscapeSequence
	UnknownFilter
	UnknownVariable
	UnmatchedExprEnd
	UnmatchedExprStart
	UnterminatedEscapeSequence
)

var errorKindNames = map[ErrorKind]string{
	ExpectedFilter:             "ExpectedFilter",
	ExpectedNumber:             "ExpectedNumber",
	ExpectedPipeOrExprEnd:      "ExpectedPipeOrExprEnd",
	ExpectedRange:              "ExpectedRange",
	ExpectedRangeLength:        "ExpectedRangeLength",
	ExpectedRangeDelimiter:     "ExpectedRangeDelimiter",
	ExpectedRepetition:         "ExpectedRepetition",
	ExpectedSubstitution:       "ExpectedSubstitution",
	ExpectedRegex:              "ExpectedRegex",
	ExpectedRegexSwitch:        "ExpectedRegexSwitch",
	ExpectedVariable:           "ExpectedVariable",
	ExprStartInsideExpr:        "ExprStartInsideExpr",
	IndexZero:                  "IndexZero",
	PaddingPrefixInvalid:       "PaddingPrefixInvalid",
	PipeOutsideExpr:            "PipeOutsideExpr",
	RangeInvalid:               "RangeInvalid",
	RangeStartOverEnd:          "RangeStartOverEnd",
	RegexCaptureZero:           "RegexCaptureZero",
	RegexInvalid:               "RegexInvalid",
	RegexSwitchWithoutMatcher:  "RegexSwitchWithoutMatcher",
	RepetitionWithoutDelimiter: "RepetitionWithoutDelimiter",
	SubstitutionWithoutTarget:  "SubstitutionWithoutTarget",
	UnknownEscapeSequence:      "UnknownEscapeSequence",
	UnknownFilter:              "UnknownFilter",
	UnknownVariable:            "UnknownVariable",
	UnmatchedExprEnd:           "UnmatchedExprEnd",
	UnmatchedExprStart:         "UnmatchedExprStart",
	UnterminatedEscapeSequence: "UnterminatedEscapeSequence",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "UnknownErrorKind"
}

// ParseError is raised by the Lexer or Parser. It always carries the byte
// range of the offending source span so a caller can render a caret
// diagnostic against the original pattern string.
type ParseError struct {
	Kind    ErrorKind
	Range   Range
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newParseError(kind ErrorKind, r Range, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Range: r, Message: fmt.Sprintf(format, args...)}
}

// EvalErrorKind enumerates the ways evaluating an already-parsed pattern can
// fail at run time.
type EvalErrorKind int

const (
	InputNotUtf8 EvalErrorKind = iota
	CanonicalizationFailed
)

func (k EvalErrorKind) String() string {
	switch k {
	case InputNotUtf8:
		return "InputNotUtf8"
	case CanonicalizationFailed:
		return "CanonicalizationFailed"
	default:
		return "UnknownEvalErrorKind"
	}
}

// EvalError is raised while evaluating a Variable or Filter against a
// Context. Cause names the producing node ("variable" or a filter letter)
// for diagnostic purposes.
type EvalError struct {
	Kind    EvalErrorKind
	Cause   string
	Value   string
	Range   Range
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newEvalError(kind EvalErrorKind, cause, value string, r Range, format string, args ...interface{}) *EvalError {
	return &EvalError{Kind: kind, Cause: cause, Value: value, Range: r, Message: fmt.Sprintf(format, args...)}
}

// FormatParseError renders a source line, a caret at the error's start
// offset, and the error's message - the diagnostic shape spec.md's error
// handling section describes. Patterns are always a single line, so this is
// simpler than a multi-line file diagnostic: no line lookup, just an offset
// into one string.
func FormatParseError(source string, err *ParseError) string {
	var b strings.Builder
	b.WriteString(source)
	b.WriteByte('\n')
	for i := 0; i < err.Range.Start; i++ {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	b.WriteByte('\n')
	b.WriteString(err.Error())
	return b.String()
}
