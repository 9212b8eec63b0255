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

// A comment after the second `:` of a slice with no step expression dangles
// on the slice itself, since there's no Step node to attach to (spec.md
// §4.7.9).
const sliceDanglingDoc = `
source: "1:2: # c\n"
root:
  kind: ModModule
  start: 0
  end: 9
  body:
    - kind: ExprSlice
      start: 0
      end: 8
      lower: {kind: ExprConstant, start: 0, end: 1, constant_kind: other}
      upper: {kind: ExprConstant, start: 2, end: 3, constant_kind: other}
`

func TestPlaceSliceCommentDanglesWithoutStep(t *testing.T) {
	mod, src, err := fixture.Build([]byte(sliceDanglingDoc))
	qt.Assert(t, qt.IsNil(err))

	slice, ok := mod.Body[0].(*ast.ExprSlice)
	qt.Assert(t, qt.IsTrue(ok))

	table := placer.Run(src, mod)
	nc := table.For(slice)
	qt.Assert(t, qt.Equals(len(nc.Dangling), 1))
	qt.Assert(t, qt.Equals(string(src[nc.Dangling[0].Start():nc.Dangling[0].End()]), "# c"))
}

// A comment between the first `:` and a present upper bound leads the upper
// bound expression.
const sliceLeadingUpperDoc = `
source: "1: # c\n2\n"
root:
  kind: ModModule
  start: 0
  end: 9
  body:
    - kind: ExprSlice
      start: 0
      end: 8
      lower: {kind: ExprConstant, start: 0, end: 1, constant_kind: other}
      upper: {kind: ExprConstant, start: 7, end: 8, constant_kind: other}
`

func TestPlaceSliceCommentLeadsUpper(t *testing.T) {
	mod, src, err := fixture.Build([]byte(sliceLeadingUpperDoc))
	qt.Assert(t, qt.IsNil(err))

	slice, ok := mod.Body[0].(*ast.ExprSlice)
	qt.Assert(t, qt.IsTrue(ok))

	table := placer.Run(src, mod)
	nc := table.For(slice.Upper)
	qt.Assert(t, qt.Equals(len(nc.Leading), 1))
	qt.Assert(t, qt.Equals(string(src[nc.Leading[0].Start():nc.Leading[0].End()]), "# c"))
}
