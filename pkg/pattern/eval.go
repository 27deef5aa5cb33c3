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

// Evaluate walks p's items in order against value and ctx, producing the
// rewritten output. value is both the Input variable's contents and the
// starting point (via path.rs-style lexical operations) for every path
// variable. The first filter or variable error aborts evaluation.
func (p *Pattern) Evaluate(value string, ctx *Context) (string, error) {
	var out strings.Builder

	for _, item := range p.Items {
		switch item.Kind {
		case ItemConstant:
			out.WriteString(item.Constant)

		case ItemExpression:
			acc, err := item.Variable.Eval(value, ctx)
			if err != nil {
				return "", err
			}
			for _, filter := range item.Filters {
				acc, err = filter.Eval(acc, ctx)
				if err != nil {
					return "", err
				}
			}
			out.WriteString(ctx.Quote.wrap(acc))
		}
	}

	return out.String(), nil
}
