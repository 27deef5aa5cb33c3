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

import "testing"

func evalOnce(t *testing.T, source, value string, ctx *Context) string {
	t.Helper()
	p, err := Parse(source, DefaultEscape)
	if err != nil {
		t.Fatalf("Parse(%q) returned unexpected error: %v", source, err)
	}
	out, err := p.Evaluate(value, ctx)
	if err != nil {
		t.Fatalf("Evaluate(%q) against %q returned unexpected error: %v", source, value, err)
	}
	return out
}

// TestEndToEndScenarios mirrors the black-box table of literal
// input/pattern/output triples: working directory /work unless noted.
func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		desc    string
		value   string
		pattern string
		ctx     *Context
		want    string
	}{
		{
			desc:    "extension lowercased",
			value:   "dir/photo.JPG",
			pattern: "new.{e|v}",
			ctx:     &Context{WorkingDir: "/work"},
			want:    "new.jpg",
		},
		{
			desc:    "base name then uppercased extension",
			value:   "file.txt",
			pattern: "{b}-{e|^}",
			ctx:     &Context{WorkingDir: "/work"},
			want:    "file-TXT",
		},
		{
			desc:    "forward substring",
			value:   "abcde",
			pattern: "{p|n2-3}",
			ctx:     &Context{WorkingDir: "/work"},
			want:    "bc",
		},
		{
			desc:    "backward substring",
			value:   "abcde",
			pattern: "{p|N2-3}",
			ctx:     &Context{WorkingDir: "/work"},
			want:    "cd",
		},
		{
			desc:    "regex match",
			value:   "hello 42 world",
			pattern: "{p|=\\d+}",
			ctx:     &Context{WorkingDir: "/work"},
			want:    "42",
		},
		{
			desc:    "regex switch match",
			value:   "foo",
			pattern: "{p|@:^[a-z]+$:lower:other}",
			ctx:     &Context{WorkingDir: "/work"},
			want:    "lower",
		},
		{
			desc:    "regex switch default",
			value:   "123",
			pattern: "{p|@:^[a-z]+$:lower:other}",
			ctx:     &Context{WorkingDir: "/work"},
			want:    "other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := evalOnce(t, tt.pattern, tt.value, tt.ctx); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocalCounterPerDirectory(t *testing.T) {
	driver := NewDriver(mustParse(t, "{c}"), DriverConfig{
		WorkingDir:       "/work",
		LocalCounterInit: 1,
		LocalCounterStep: 1,
	})
	values := []string{"a/x", "a/y", "b/x", "b/y"}
	want := []string{"1", "2", "1", "2"}

	var got []string
	for _, v := range values {
		out, code := runSingleValue(t, driver, v)
		if code != ExitOK {
			t.Fatalf("unexpected exit code %d", code)
		}
		got = append(got, out)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGlobalCounterMonotonic(t *testing.T) {
	driver := NewDriver(mustParse(t, "{C}"), DriverConfig{
		WorkingDir:        "/work",
		GlobalCounterInit: 10,
		GlobalCounterStep: 5,
	})
	want := []string{"10", "15", "20"}

	var got []string
	for range want {
		out, code := runSingleValue(t, driver, "a")
		if code != ExitOK {
			t.Fatalf("unexpected exit code %d", code)
		}
		got = append(got, out)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func mustParse(t *testing.T, source string) *Pattern {
	t.Helper()
	p, err := Parse(source, DefaultEscape)
	if err != nil {
		t.Fatalf("Parse(%q) returned unexpected error: %v", source, err)
	}
	return p
}
