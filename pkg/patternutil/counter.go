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

// Package patternutil holds the small driver-facing helpers that sit
// alongside the pattern engine itself: counter bookkeeping and input/output
// framing. Neither belongs in pkg/pattern, which only ever sees values the
// driver has already produced.
package patternutil

// Counters tracks the local (per normalized parent directory) and global
// counters a driver run advances. A zero Counters is not ready to use;
// build one with NewCounters.
type Counters struct {
	local     map[string]int64
	localInit int64
	localStep int64

	global        int64
	globalInit    int64
	globalStep    int64
	globalStarted bool
}

// NewCounters builds a Counters with the given initial values and step
// sizes for the local and global counters.
func NewCounters(localInit, localStep, globalInit, globalStep int64) *Counters {
	return &Counters{
		local:      make(map[string]int64),
		localInit:  localInit,
		localStep:  localStep,
		globalInit: globalInit,
		globalStep: globalStep,
	}
}

// NextGlobal advances and returns the global counter. The first call
// returns the configured initial value; every later call adds the step.
func (c *Counters) NextGlobal() int64 {
	if !c.globalStarted {
		c.global = c.globalInit
		c.globalStarted = true
	} else {
		c.global += c.globalStep
	}
	return c.global
}

// NextLocal advances and returns the counter bucketed under key (the
// normalized parent directory of the current input value). The first call
// for a given key returns the configured initial value; every later call
// for that same key adds the step.
func (c *Counters) NextLocal(key string) int64 {
	v, ok := c.local[key]
	if !ok {
		v = c.localInit
	} else {
		v += c.localStep
	}
	c.local[key] = v
	return v
}
