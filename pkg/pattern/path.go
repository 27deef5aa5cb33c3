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
	"path/filepath"
	"strings"
)

// Lexical path helpers shared by the path Variable kinds and the path
// Filter kinds. They operate purely on strings via the standard library's
// path/filepath package, so behavior automatically follows the host OS's
// separator and volume conventions the way spec.md's design notes require.

func joinAbsolute(value, workingDir string) string {
	if value == "" {
		return workingDir
	}
	if filepath.IsAbs(value) {
		return value
	}
	return workingDir + string(filepath.Separator) + value
}

func relativeToWorkingDir(value, workingDir string) string {
	if !filepath.IsAbs(value) {
		return value
	}
	rel, err := filepath.Rel(workingDir, value)
	if err != nil {
		return ""
	}
	return rel
}

func normalizedPath(value string) string {
	if value == "" {
		return "."
	}
	return filepath.Clean(value)
}

func canonicalizePath(value, workingDir string) (string, error) {
	return filepath.EvalSymlinks(joinAbsolute(value, workingDir))
}

func parentDirectory(value string) string {
	if value == "" {
		return "."
	}
	if value == "." {
		return "." + string(filepath.Separator) + ".."
	}
	return filepath.Dir(value)
}

func removeLastName(value string) string {
	dir := filepath.Dir(value)
	if dir == "." {
		return ""
	}
	return dir
}

func fileName(value string) string {
	return filepath.Base(value)
}

func lastName(value string) string {
	base := filepath.Base(value)
	if base == string(filepath.Separator) {
		return ""
	}
	return base
}

func baseName(value string) string {
	name := fileName(value)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func removeExtension(value string) string {
	return strings.TrimSuffix(value, filepath.Ext(value))
}

func extensionOf(value string) string {
	return strings.TrimPrefix(filepath.Ext(fileName(value)), ".")
}

func extensionWithDot(value string) string {
	return filepath.Ext(fileName(value))
}

func ensureTrailingSeparator(value string) string {
	sep := string(filepath.Separator)
	if strings.HasSuffix(value, sep) {
		return value
	}
	return value + sep
}

func removeTrailingSeparator(value string) string {
	sep := string(filepath.Separator)
	if value == "" || value == sep {
		return value
	}
	return strings.TrimSuffix(value, sep)
}
