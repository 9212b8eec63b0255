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

package placer_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/jacobvoss/pycommentplace/ast"
	"github.com/jacobvoss/pycommentplace/internal/fixture"
	"github.com/jacobvoss/pycommentplace/placer"
)

func TestForReturnsZeroValueForUnknownNode(t *testing.T) {
	var table placer.Table
	nc := table.For(&ast.OtherNode{})
	qt.Assert(t, qt.Equals(len(nc.Leading), 0))
	qt.Assert(t, qt.Equals(len(nc.Trailing), 0))
	qt.Assert(t, qt.Equals(len(nc.Dangling), 0))
}

func TestRunAccumulatesDanglingComment(t *testing.T) {
	mod, src, err := fixture.Build([]byte(`
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
`))
	qt.Assert(t, qt.IsNil(err))

	table := placer.Run(src, mod)
	forStmt := mod.Body[0].(*ast.StmtFor)

	nodes := table.Nodes()
	qt.Assert(t, qt.Equals(len(nodes), 1))
	qt.Assert(t, qt.IsTrue(ast.PtrEqual(nodes[0], forStmt)))
	qt.Assert(t, qt.Equals(len(table.Unplaced), 0))
}
