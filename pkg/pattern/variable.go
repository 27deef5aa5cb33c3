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

// VariableKind enumerates the left-most symbol of every expression. Every
// variant is argument-less: the single dispatch letter (or, for regex
// captures, a decimal digit) is the entire token.
type VariableKind int

const (
	VarInput VariableKind = iota
	VarAbsolutePath
	VarCanonicalPath
	VarWorkingDirectory
	VarFileName
	VarLastName
	VarBaseName
	VarExtension
	VarExtensionWithDot
	VarParentDirectory
	VarRemoveLastName
	VarLocalCounter
	VarGlobalCounter
	VarRandomUuid
	VarRegexCapture
)

// Variable is the parsed left-most symbol of an expression.
type Variable struct {
	Kind         VariableKind
	CaptureIndex int // only meaningful when Kind == VarRegexCapture
}

var variableLetters = map[rune]VariableKind{
	'p': VarInput,
	'a': VarAbsolutePath,
	'A': VarCanonicalPath,
	'w': VarWorkingDirectory,
	'f': VarFileName,
	'F': VarLastName,
	'b': VarBaseName,
	'e': VarExtension,
	'E': VarExtensionWithDot,
	'd': VarParentDirectory,
	'D': VarRemoveLastName,
	'c': VarLocalCounter,
	'C': VarGlobalCounter,
	'u': VarRandomUuid,
}

// ParseVariable parses a variable token - the sub-grammar consuming exactly
// one dispatch letter, or one or more decimal digits for a regex capture.
func ParseVariable(token Token) (Variable, error) {
	reader := NewReader(token.Chars)

	first, ok := reader.PeekRune()
	if !ok {
		return Variable{}, newParseError(ExpectedVariable, token.Range, "expected a variable")
	}

	if first >= '0' && first <= '9' {
		digits, _ := readDigits(reader)
		index := 0
		for _, d := range digits {
			index = index*10 + int(d-'0')
		}
		if index == 0 {
			return Variable{}, newParseError(RegexCaptureZero, token.Range, "regex capture group indices start at 1")
		}
		if !reader.AtEnd() {
			return Variable{}, newParseError(ExpectedPipeOrExprEnd, Range{reader.Position(), token.Range.End},
				"expected a pipe or closing brace")
		}
		return Variable{Kind: VarRegexCapture, CaptureIndex: index}, nil
	}

	reader.Seek()
	kind, ok := variableLetters[first]
	if !ok {
		return Variable{}, newParseError(UnknownVariable, token.Range, "unknown variable '%c'", first)
	}
	if !reader.AtEnd() {
		return Variable{}, newParseError(ExpectedPipeOrExprEnd, Range{reader.Position(), token.Range.End},
			"expected a pipe or closing brace")
	}
	return Variable{Kind: kind}, nil
}
