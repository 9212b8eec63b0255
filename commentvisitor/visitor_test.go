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

package commentvisitor_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/jacobvoss/pycommentplace/ast"
	"github.com/jacobvoss/pycommentplace/commentvisitor"
	"github.com/jacobvoss/pycommentplace/internal/fixture"
	"github.com/jacobvoss/pycommentplace/linepos"
)

const doc = `
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

func TestCommentsLocatesGapBetweenIterAndBody(t *testing.T) {
	mod, src, err := fixture.Build([]byte(doc))
	qt.Assert(t, qt.IsNil(err))

	cs := commentvisitor.Comments(src, mod)
	qt.Assert(t, qt.Equals(len(cs), 1))

	c := cs[0]
	qt.Assert(t, qt.Equals(c.Line, linepos.EndOfLine))
	qt.Assert(t, qt.Equals(string(src[c.Start():c.End()]), "# comment"))

	forStmt := mod.Body[0].(*ast.StmtFor)
	qt.Assert(t, qt.IsTrue(ast.PtrEqual(c.EnclosingNode(), forStmt)))
	qt.Assert(t, qt.IsTrue(ast.PtrEqual(c.PrecedingNode(), forStmt.Iter)))
	qt.Assert(t, qt.IsTrue(ast.PtrEqual(c.FollowingNode(), forStmt.Body[0])))
	qt.Assert(t, qt.IsTrue(ast.PtrEqual(c.EnclosingParentNode(), mod)))
}

func TestCommentsNoneFound(t *testing.T) {
	mod, src, err := fixture.Build([]byte(`
source: "x = 1\n"
root:
  kind: ModModule
  start: 0
  end: 6
  body:
    - kind: Other
      start: 0
      end: 5
`))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(commentvisitor.Comments(src, mod)), 0))
}
