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

// Command rew rewrites a stream of textual values according to a
// pattern: a small expression language mixing literal text with
// {variable|filter|filter|...} expressions. See the pkg/pattern package
// documentation for the pattern grammar.
//
// Usage: rew [OPTIONS] PATTERN [VALUE ...]
//
// If VALUEs are given on the command line, the pattern is evaluated against
// each in turn. Otherwise input values are read from standard input, framed
// per --read-nul/--read-raw/--require-terminator.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/jpikl/rew/pkg/pattern"
	"github.com/jpikl/rew/pkg/patternutil"
	"github.com/pborman/getopt"
)

var stop = os.Exit

func exitWithError(err error, code int) {
	fmt.Fprintln(os.Stderr, err)
	stop(code)
}

func parseCounterArg(raw string, def int64) int64 {
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		exitWithError(fmt.Errorf("%s: invalid counter value", raw), pattern.ExitParseError)
	}
	return n
}

func main() {
	var (
		help              bool
		escape            string
		nulRead           bool
		rawRead           bool
		requireTerminator bool
		nulWrite          bool
		noTerminator      bool
		regexSource       string
		regexOnFileName   bool
		localCounterInit  string
		localCounterStep  string
		globalCounterInit string
		globalCounterStep string
		workingDir        string
		quote             string
		failAtEnd         bool
	)

	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.StringVarLong(&escape, "escape", 'e', "escape character used by the pattern (default '%')", "CHAR")
	getopt.BoolVarLong(&nulRead, "read-nul", '0', "read input values terminated by NUL instead of newline")
	getopt.BoolVarLong(&rawRead, "read-raw", 0, "treat the entire input as a single value")
	getopt.BoolVarLong(&requireTerminator, "require-terminator", 0, "reject a trailing unterminated input record instead of tolerating it")
	getopt.BoolVarLong(&nulWrite, "write-nul", 0, "terminate each output value with NUL instead of newline")
	getopt.BoolVarLong(&noTerminator, "no-terminator", 0, "write no terminator after each output value")
	getopt.StringVarLong(&regexSource, "regex", 'r', "regex run against each value to populate capture-group variables/filters", "REGEX")
	getopt.BoolVarLong(&regexOnFileName, "regex-filename", 0, "run --regex against the file name component instead of the whole value")
	getopt.StringVarLong(&localCounterInit, "local-counter-init", 0, "initial value of the local counter (default 1)", "N")
	getopt.StringVarLong(&localCounterStep, "local-counter-step", 0, "step of the local counter (default 1)", "N")
	getopt.StringVarLong(&globalCounterInit, "global-counter-init", 0, "initial value of the global counter (default 1)", "N")
	getopt.StringVarLong(&globalCounterStep, "global-counter-step", 0, "step of the global counter (default 1)", "N")
	getopt.StringVarLong(&workingDir, "working-dir", 0, "working directory path filters resolve against (default: process cwd)", "DIR")
	getopt.StringVarLong(&quote, "quote", 'q', "quote evaluated expressions: none, single, double (default none)", "LEVEL")
	getopt.BoolVarLong(&failAtEnd, "fail-at-end", 0, "continue past evaluation errors, reporting failure only once input is exhausted")
	getopt.SetParameters("PATTERN [VALUE ...]")

	if err := getopt.Getopt(nil); err != nil {
		exitWithError(err, pattern.ExitParseError)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		stop(pattern.ExitOK)
	}

	args := getopt.Args()
	if len(args) == 0 {
		exitWithError(fmt.Errorf("a pattern is required"), pattern.ExitParseError)
	}
	patternSource, values := args[0], args[1:]

	escapeRune := pattern.DefaultEscape
	if escape != "" {
		escapeRune = []rune(escape)[0]
	}

	p, err := pattern.Parse(patternSource, escapeRune)
	if err != nil {
		if perr, ok := err.(*pattern.ParseError); ok {
			fmt.Fprintln(os.Stderr, pattern.FormatParseError(patternSource, perr))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		stop(pattern.ExitParseError)
	}

	var quoting pattern.Quoting
	switch quote {
	case "", "none":
		quoting = pattern.QuoteNone
	case "single":
		quoting = pattern.QuoteSingle
	case "double":
		quoting = pattern.QuoteDouble
	default:
		exitWithError(fmt.Errorf("%s: invalid quote level, choices are none, single, double", quote), pattern.ExitParseError)
	}

	var re *regexp.Regexp
	if regexSource != "" {
		re, err = regexp.Compile(regexSource)
		if err != nil {
			exitWithError(fmt.Errorf("invalid --regex: %w", err), pattern.ExitParseError)
		}
	}

	if workingDir == "" {
		workingDir, err = os.Getwd()
		if err != nil {
			exitWithError(err, pattern.ExitParseError)
		}
	}

	driver := pattern.NewDriver(p, pattern.DriverConfig{
		WorkingDir:        workingDir,
		Quote:             quoting,
		LocalCounterInit:  parseCounterArg(localCounterInit, 1),
		LocalCounterStep:  parseCounterArg(localCounterStep, 1),
		GlobalCounterInit: parseCounterArg(globalCounterInit, 1),
		GlobalCounterStep: parseCounterArg(globalCounterStep, 1),
		Regex:             re,
		RegexOnFileName:   regexOnFileName,
		FailAtEnd:         failAtEnd,
	})

	var src pattern.ValueSource
	if len(values) > 0 {
		src = pattern.NewArgsSource(values)
	} else {
		framing := patternutil.FramingLine
		if rawRead {
			framing = patternutil.FramingWhole
		} else if nulRead {
			framing = patternutil.FramingByte
		}
		src = pattern.NewStdinSource(os.Stdin, patternutil.InputConfig{
			Framing:           framing,
			Delimiter:         0,
			RequireTerminator: requireTerminator,
		})
	}

	terminator := "\n"
	if nulWrite {
		terminator = "\x00"
	} else if noTerminator {
		terminator = ""
	}

	stop(driver.Run(src, os.Stdout, terminator, os.Stderr))
}
