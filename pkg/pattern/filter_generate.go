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
	"math"
	"math/rand"

	"github.com/pborman/uuid"
)

// randomNumber draws a uniform integer from the closed interval [iv.Start,
// high], where high is iv's end minus one (Interval is stored half-open)
// or the maximum representable value when unbounded.
func randomNumber(iv Interval) int64 {
	low := int64(iv.Start)
	high := int64(math.MaxInt32)
	if iv.End != nil {
		high = int64(*iv.End) - 1
	}
	if high < low {
		high = low
	}
	span := high - low + 1
	return low + rand.Int63n(span)
}

func randomUuid() string {
	return uuid.NewRandom().String()
}
