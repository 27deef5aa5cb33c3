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

import "strings"

// Eval applies the filter to acc, the value folded in from the variable or
// a previous filter in the pipeline.
func (f Filter) Eval(acc string, ctx *Context) (string, error) {
	switch f.Kind {
	case FilterWorkingDir:
		return ctx.WorkingDir, nil
	case FilterAbsolutePath:
		return joinAbsolute(acc, ctx.WorkingDir), nil
	case FilterRelativePath:
		return relativeToWorkingDir(acc, ctx.WorkingDir), nil
	case FilterNormalizedPath:
		return normalizedPath(acc), nil
	case FilterCanonicalPath:
		resolved, err := canonicalizePath(acc, ctx.WorkingDir)
		if err != nil {
			return "", newEvalError(CanonicalizationFailed, "P", acc, f.SourceRange, "failed to canonicalize path: %s", err)
		}
		return resolved, nil
	case FilterParentDirectory:
		return parentDirectory(acc), nil
	case FilterRemoveLastName:
		return removeLastName(acc), nil
	case FilterFileName:
		return fileName(acc), nil
	case FilterLastName:
		return lastName(acc), nil
	case FilterBaseName:
		return baseName(acc), nil
	case FilterRemoveExtension:
		return removeExtension(acc), nil
	case FilterExtension:
		return extensionOf(acc), nil
	case FilterExtensionWithDot:
		return extensionWithDot(acc), nil
	case FilterEnsureTrailingSeparator:
		return ensureTrailingSeparator(acc), nil
	case FilterRemoveTrailingSeparator:
		return removeTrailingSeparator(acc), nil

	case FilterSubstring:
		return substring(acc, f.Range), nil
	case FilterSubstringBackward:
		return substringBackward(acc, f.Range), nil

	case FilterReplaceFirst:
		return replaceFirst(acc, f.Substitution), nil
	case FilterReplaceAll:
		return replaceAll(acc, f.Substitution), nil
	case FilterReplaceEmpty:
		return replaceEmpty(acc, f.ReplaceEmpty), nil

	case FilterRegexMatch:
		return regexMatch(acc, f.Regex), nil
	case FilterRegexReplaceFirst:
		return regexReplaceFirst(acc, f.Substitution.TargetRegex, f.Substitution.Replacement), nil
	case FilterRegexReplaceAll:
		return regexReplaceAll(acc, f.Substitution.TargetRegex, f.Substitution.Replacement), nil
	case FilterRegexSwitch:
		return evalRegexSwitch(acc, f.Switch), nil
	case FilterRegexCapture:
		return ctx.Capture(f.CaptureIndex), nil

	case FilterColumn:
		return splitColumns(acc, f.ColumnDelim, f.Range), nil

	case FilterTrim:
		return strings.TrimSpace(acc), nil
	case FilterToLowercase:
		return strings.ToLower(acc), nil
	case FilterToUppercase:
		return strings.ToUpper(acc), nil
	case FilterToAscii:
		return toAscii(acc), nil
	case FilterRemoveNonAscii:
		return removeNonAscii(acc), nil

	case FilterLeftPad:
		return ApplyLeft(acc, f.Padding), nil
	case FilterRightPad:
		return ApplyRight(acc, f.Padding), nil

	case FilterRepeat:
		return f.Repetition.Expand(acc), nil
	case FilterLocalCounter:
		return formatCounter(ctx.LocalCounter), nil
	case FilterGlobalCounter:
		return formatCounter(ctx.GlobalCounter), nil
	case FilterRandomNumber:
		return formatCounter(randomNumber(f.Range)), nil
	case FilterRandomUuid:
		return randomUuid(), nil

	default:
		return "", newEvalError(InputNotUtf8, "filter", acc, f.SourceRange, "unhandled filter kind")
	}
}

// evalRegexSwitch returns the first case's result whose matcher matches
// acc - with $N references in that result resolved against the matcher's
// own match of acc, applied over only the matched substring - or the
// switch's default when no case matches.
func evalRegexSwitch(acc string, sw RegexSwitch) string {
	for _, c := range sw.Cases {
		loc := c.Matcher.FindStringIndex(acc)
		if loc == nil {
			continue
		}
		if !strings.Contains(c.Result, "$") {
			return c.Result
		}
		matched := acc[loc[0]:loc[1]]
		return regexReplaceAll(matched, c.Matcher, c.Result)
	}
	return sw.Default
}
