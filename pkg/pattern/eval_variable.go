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

import "github.com/pborman/uuid"

// Eval produces the variable's initial string for the expression pipeline.
// value is the current input value (the Input variable's own contents);
// everything else comes from ctx.
func (v Variable) Eval(value string, ctx *Context) (string, error) {
	switch v.Kind {
	case VarInput:
		return value, nil
	case VarAbsolutePath:
		return joinAbsolute(value, ctx.WorkingDir), nil
	case VarCanonicalPath:
		resolved, err := canonicalizePath(value, ctx.WorkingDir)
		if err != nil {
			return "", newEvalError(CanonicalizationFailed, "variable", value, Range{},
				"failed to canonicalize path: %s", err)
		}
		return resolved, nil
	case VarWorkingDirectory:
		return ctx.WorkingDir, nil
	case VarFileName:
		return fileName(value), nil
	case VarLastName:
		return lastName(value), nil
	case VarBaseName:
		return baseName(value), nil
	case VarExtension:
		return extensionOf(value), nil
	case VarExtensionWithDot:
		return extensionWithDot(value), nil
	case VarParentDirectory:
		return parentDirectory(value), nil
	case VarRemoveLastName:
		return removeLastName(value), nil
	case VarLocalCounter:
		return formatCounter(ctx.LocalCounter), nil
	case VarGlobalCounter:
		return formatCounter(ctx.GlobalCounter), nil
	case VarRandomUuid:
		return uuid.NewRandom().String(), nil
	case VarRegexCapture:
		return ctx.Capture(v.CaptureIndex), nil
	default:
		return "", newEvalError(InputNotUtf8, "variable", value, Range{}, "unhandled variable kind")
	}
}
