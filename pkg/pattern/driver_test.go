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
	"bytes"
	"strings"
	"testing"

	"github.com/jpikl/rew/pkg/patternutil"
)

// runSingleValue drives one value through driver and returns its output
// with the trailing terminator stripped, plus the exit code.
func runSingleValue(t *testing.T, driver *Driver, value string) (string, int) {
	t.Helper()
	var out bytes.Buffer
	var diag bytes.Buffer
	code := driver.Run(NewArgsSource([]string{value}), &out, "\n", &diag)
	return strings.TrimSuffix(out.String(), "\n"), code
}

func TestDriverArgsSource(t *testing.T) {
	driver := NewDriver(mustParse(t, "{p|v}"), DriverConfig{WorkingDir: "/work"})
	var out bytes.Buffer
	var diag bytes.Buffer
	code := driver.Run(NewArgsSource([]string{"ABC", "DEF"}), &out, "\n", &diag)
	if code != ExitOK {
		t.Fatalf("unexpected exit code %d, stderr: %s", code, diag.String())
	}
	if got, want := out.String(), "abc\ndef\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDriverStopsOnFirstEvalError(t *testing.T) {
	driver := NewDriver(mustParse(t, "{A}"), DriverConfig{WorkingDir: "/work"})
	var out bytes.Buffer
	var diag bytes.Buffer
	code := driver.Run(NewArgsSource([]string{"/definitely/does/not/exist"}), &out, "\n", &diag)
	if code != ExitEvalError {
		t.Fatalf("got exit code %d, want %d", code, ExitEvalError)
	}
	if diag.Len() == 0 {
		t.Error("expected a diagnostic to be written")
	}
}

func TestDriverFailAtEndContinues(t *testing.T) {
	driver := NewDriver(mustParse(t, "{A}"), DriverConfig{WorkingDir: "/work", FailAtEnd: true})
	var out bytes.Buffer
	var diag bytes.Buffer
	code := driver.Run(NewArgsSource([]string{"/nope/one", "/nope/two"}), &out, "\n", &diag)
	if code != ExitEvalError {
		t.Fatalf("got exit code %d, want %d", code, ExitEvalError)
	}
	if got := strings.Count(diag.String(), "\n"); got != 2 {
		t.Errorf("got %d diagnostics, want 2 (one per failing value)", got)
	}
}

func TestStdinSourceLineFraming(t *testing.T) {
	src := NewStdinSource(strings.NewReader("a\nb\nc\n"), patternutil.InputConfig{Framing: patternutil.FramingLine})
	var got []string
	for {
		v, ok, err := src.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, v)
	}
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStdinSourceCRLFStripped(t *testing.T) {
	src := NewStdinSource(strings.NewReader("a\r\nb\r\n"), patternutil.InputConfig{Framing: patternutil.FramingLine})
	v, ok, err := src.Next()
	if err != nil || !ok {
		t.Fatalf("Next() = %q, %v, %v", v, ok, err)
	}
	if v != "a" {
		t.Errorf("got %q, want %q", v, "a")
	}
}

func TestStdinSourceRequireTerminatorDropsPartialRecord(t *testing.T) {
	src := NewStdinSource(strings.NewReader("a\nb"), patternutil.InputConfig{Framing: patternutil.FramingLine, RequireTerminator: true})
	var got []string
	for {
		v, ok, err := src.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, v)
	}
	if len(got) != 1 || got[0] != "a" {
		t.Errorf("got %v, want [a]", got)
	}
}

func TestStdinSourceWholeInput(t *testing.T) {
	src := NewStdinSource(strings.NewReader("a\nb\nc"), patternutil.InputConfig{Framing: patternutil.FramingWhole})
	v, ok, err := src.Next()
	if err != nil || !ok {
		t.Fatalf("Next() = %q, %v, %v", v, ok, err)
	}
	if v != "a\nb\nc" {
		t.Errorf("got %q, want %q", v, "a\nb\nc")
	}
	if _, ok, _ := src.Next(); ok {
		t.Error("expected a single value")
	}
}
