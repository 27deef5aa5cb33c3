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
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"regexp"

	"github.com/jpikl/rew/pkg/patternutil"
)

// Exit codes the driver reports; IO_ERROR is left to the CLI collaborator
// since only it knows how the input/output streams were opened.
const (
	ExitOK         = 0
	ExitParseError = 3
	ExitEvalError  = 4
)

// ValueSource yields the successive input values a driver run processes.
type ValueSource interface {
	// Next returns the next value, or ok=false at the end of the source.
	Next() (value string, ok bool, err error)
}

// argsSource iterates over values supplied directly on the command line.
type argsSource struct {
	values []string
	index  int
}

// NewArgsSource builds a ValueSource over explicit values, used when the
// caller supplied arguments instead of asking for stdin framing.
func NewArgsSource(values []string) ValueSource {
	return &argsSource{values: values}
}

func (s *argsSource) Next() (string, bool, error) {
	if s.index >= len(s.values) {
		return "", false, nil
	}
	v := s.values[s.index]
	s.index++
	return v, true, nil
}

// scannerSource reads values from a stream, framed per an InputConfig.
type scannerSource struct {
	scanner *bufio.Scanner
}

// NewStdinSource builds a ValueSource reading r, framed per cfg.
func NewStdinSource(r io.Reader, cfg patternutil.InputConfig) ValueSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	scanner.Split(patternutil.SplitFunc(cfg))
	return &scannerSource{scanner: scanner}
}

func (s *scannerSource) Next() (string, bool, error) {
	if !s.scanner.Scan() {
		return "", false, s.scanner.Err()
	}
	return s.scanner.Text(), true, nil
}

// DriverConfig is the collaborator contract cmd/rew builds from CLI flags.
type DriverConfig struct {
	WorkingDir        string
	Quote             Quoting
	LocalCounterInit  int64
	LocalCounterStep  int64
	GlobalCounterInit int64
	GlobalCounterStep int64
	Regex             *regexp.Regexp
	RegexOnFileName   bool
	FailAtEnd         bool
}

// Driver is the streaming driver of §4.5: it reads values, advances
// counters, runs the configured regex, invokes the evaluator, and writes
// results - deciding whether to stop or continue on evaluation errors per
// FailAtEnd.
type Driver struct {
	pattern  *Pattern
	cfg      DriverConfig
	counters *patternutil.Counters

	usesGlobalCounter bool
	usesLocalCounter  bool
	usesRegexCapture  bool
}

// NewDriver builds a Driver for pattern using cfg.
func NewDriver(pattern *Pattern, cfg DriverConfig) *Driver {
	usesGlobal, usesLocal, usesRegex := patternUsage(pattern)
	return &Driver{
		pattern:           pattern,
		cfg:               cfg,
		counters:          patternutil.NewCounters(cfg.LocalCounterInit, cfg.LocalCounterStep, cfg.GlobalCounterInit, cfg.GlobalCounterStep),
		usesGlobalCounter: usesGlobal,
		usesLocalCounter:  usesLocal,
		usesRegexCapture:  usesRegex,
	}
}

// patternUsage scans every item of p and reports whether it ever references
// the global counter, the local counter, or a regex capture - so the driver
// only pays for the counters and regex runs a pattern actually needs.
func patternUsage(p *Pattern) (usesGlobal, usesLocal, usesRegex bool) {
	for _, item := range p.Items {
		if item.Kind != ItemExpression {
			continue
		}
		switch item.Variable.Kind {
		case VarGlobalCounter:
			usesGlobal = true
		case VarLocalCounter:
			usesLocal = true
		case VarRegexCapture:
			usesRegex = true
		}
		for _, f := range item.Filters {
			switch f.Kind {
			case FilterGlobalCounter:
				usesGlobal = true
			case FilterLocalCounter:
				usesLocal = true
			case FilterRegexCapture:
				usesRegex = true
			}
		}
	}
	return
}

// Run drives src through the pattern, writing each result to w followed by
// terminator, and formatted diagnostics for evaluation errors to diag. It
// returns the exit code the CLI collaborator should report.
func (d *Driver) Run(src ValueSource, w io.Writer, terminator string, diag io.Writer) int {
	failed := false

	for {
		value, ok, err := src.Next()
		if err != nil {
			fmt.Fprintln(diag, err)
			return ExitEvalError
		}
		if !ok {
			break
		}

		ctx := &Context{WorkingDir: d.cfg.WorkingDir, Quote: d.cfg.Quote}
		if d.usesGlobalCounter {
			ctx.GlobalCounter = d.counters.NextGlobal()
		}
		if d.usesLocalCounter {
			ctx.LocalCounter = d.counters.NextLocal(normalizedParentDirKey(value))
		}
		if d.usesRegexCapture && d.cfg.Regex != nil {
			target := value
			if d.cfg.RegexOnFileName {
				target = fileName(value)
			}
			if m := d.cfg.Regex.FindStringSubmatch(target); m != nil {
				ctx.RegexCaptures = m
			}
		}

		result, err := d.pattern.Evaluate(value, ctx)
		if err != nil {
			fmt.Fprintln(diag, err)
			failed = true
			if !d.cfg.FailAtEnd {
				return ExitEvalError
			}
			continue
		}

		io.WriteString(w, result)
		io.WriteString(w, terminator)
	}

	if failed {
		return ExitEvalError
	}
	return ExitOK
}

func normalizedParentDirKey(value string) string {
	return filepath.Dir(filepath.Clean(value))
}
