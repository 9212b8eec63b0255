// Copyright 2018 The CUE Authors
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

package comments_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/jacobvoss/pycommentplace/ast"
	"github.com/jacobvoss/pycommentplace/internal/fixture"
	"github.com/jacobvoss/pycommentplace/placer"
)

// An end-of-line comment right after a display's opening bracket, with
// nothing else before it, dangles on the display instead of leading its
// first element (spec.md §4.7.20).
const bracketedDoc = `
source: "[  # comment\n    1,\n]\n"
root:
  kind: ModModule
  start: 0
  end: 22
  body:
    - kind: ExprList
      start: 0
      end: 21
      elts:
        - {kind: ExprConstant, start: 17, end: 18, constant_kind: other}
`

func TestPlaceBracketedEndOfLineCommentDangles(t *testing.T) {
	mod, src, err := fixture.Build([]byte(bracketedDoc))
	qt.Assert(t, qt.IsNil(err))

	list, ok := mod.Body[0].(*ast.ExprList)
	qt.Assert(t, qt.IsTrue(ok))

	table := placer.Run(src, mod)
	nc := table.For(list)
	qt.Assert(t, qt.Equals(len(nc.Dangling), 1))
	qt.Assert(t, qt.Equals(string(src[nc.Dangling[0].Start():nc.Dangling[0].End()]), "# comment"))
}

// A comment immediately adjacent to a bare `*` keyword-only separator in an
// unparenthesized (lambda-style) parameter list dangles on the Parameters
// node rather than leading/trailing a neighboring parameter (spec.md
// §4.7.1's separator policy).
const parametersSeparatorDoc = `
source: "a, *, # c\n b"
root:
  kind: ModModule
  start: 0
  end: 12
  body:
    - kind: Parameters
      start: 0
      end: 12
      parens: false
      args:
        - {kind: Identifier, start: 0, end: 1, name: a}
      kw_only:
        - {kind: Identifier, start: 11, end: 12, name: b}
`

func TestPlaceParametersSeparatorCommentDangles(t *testing.T) {
	mod, src, err := fixture.Build([]byte(parametersSeparatorDoc))
	qt.Assert(t, qt.IsNil(err))

	params, ok := mod.Body[0].(*ast.Parameters)
	qt.Assert(t, qt.IsTrue(ok))

	table := placer.Run(src, mod)
	nc := table.For(params)
	qt.Assert(t, qt.Equals(len(nc.Dangling), 1))
	qt.Assert(t, qt.Equals(string(src[nc.Dangling[0].Start():nc.Dangling[0].End()]), "# c"))
}
