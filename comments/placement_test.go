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

// Comments before the first statement of a for loop's body, with nothing
// but trivia in between, dangle on the loop itself (spec.md §4.5).
const forLoopDoc = `
source: "for x in y: # comment\n    pass\n"
root:
  kind: ModModule
  start: 0
  end: 31
  body:
    - kind: StmtFor
      start: 0
      end: 30
      target: {kind: Identifier, start: 4, end: 5, name: x}
      iter: {kind: Identifier, start: 9, end: 10, name: y}
      body:
        - kind: Other
          start: 26
          end: 30
`

func TestPlaceForLoopDanglingBeforeBody(t *testing.T) {
	mod, src, err := fixture.Build([]byte(forLoopDoc))
	qt.Assert(t, qt.IsNil(err))

	forStmt, ok := mod.Body[0].(*ast.StmtFor)
	qt.Assert(t, qt.IsTrue(ok))

	table := placer.Run(src, mod)
	nc := table.For(forStmt)
	qt.Assert(t, qt.Equals(len(nc.Dangling), 1))
	qt.Assert(t, qt.Equals(string(src[nc.Dangling[0].Start():nc.Dangling[0].End()]), "# comment"))
}

// An own-line comment strictly between a call's function expression and its
// arguments dangles on the call (SPEC_FULL.md §3's handle_call_comment
// addition).
const callDoc = `
source: "foo\n# comment\n(bar)\n"
root:
  kind: ModModule
  start: 0
  end: 20
  body:
    - kind: ExprCall
      start: 0
      end: 19
      func: {kind: Identifier, start: 0, end: 3, name: foo}
      args:
        kind: Arguments
        start: 14
        end: 19
        args:
          - kind: Identifier
            start: 15
            end: 18
            name: bar
`

func TestPlaceCallCommentDangles(t *testing.T) {
	mod, src, err := fixture.Build([]byte(callDoc))
	qt.Assert(t, qt.IsNil(err))

	call, ok := mod.Body[0].(*ast.ExprCall)
	qt.Assert(t, qt.IsTrue(ok))

	table := placer.Run(src, mod)
	nc := table.For(call)
	qt.Assert(t, qt.Equals(len(nc.Dangling), 1))
	qt.Assert(t, qt.Equals(string(src[nc.Dangling[0].Start():nc.Dangling[0].End()]), "# comment"))
}

// A comment preceding the `:=` of a named expression trails the target
// (spec.md §4.7.6).
const namedExprDoc = `
source: "x  # c\n:= 1\n"
root:
  kind: ModModule
  start: 0
  end: 12
  body:
    - kind: ExprNamedExpr
      start: 0
      end: 11
      target: {kind: Identifier, start: 0, end: 1, name: x}
      value: {kind: ExprConstant, start: 10, end: 11, constant_kind: other}
`

func TestPlaceNamedExprCommentTrailsTarget(t *testing.T) {
	mod, src, err := fixture.Build([]byte(namedExprDoc))
	qt.Assert(t, qt.IsNil(err))

	named, ok := mod.Body[0].(*ast.ExprNamedExpr)
	qt.Assert(t, qt.IsTrue(ok))

	table := placer.Run(src, mod)
	nc := table.For(named.Target)
	qt.Assert(t, qt.Equals(len(nc.Trailing), 1))
	qt.Assert(t, qt.Equals(string(src[nc.Trailing[0].Start():nc.Trailing[0].End()]), "# c"))
}
