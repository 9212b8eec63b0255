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

// An end-of-line comment between a comprehension clause's `in` keyword and
// its iterable expression dangles on the iterable rather than leading or
// trailing it (spec.md §4.7.2).
const comprehensionDoc = `
source: "for x in # c\n y\n"
root:
  kind: ModModule
  start: 0
  end: 16
  body:
    - kind: Comprehension
      start: 0
      end: 15
      target: {kind: Identifier, start: 4, end: 5, name: x}
      iter: {kind: Identifier, start: 14, end: 15, name: y}
`

func TestPlaceComprehensionCommentDanglesOnIter(t *testing.T) {
	mod, src, err := fixture.Build([]byte(comprehensionDoc))
	qt.Assert(t, qt.IsNil(err))

	comp, ok := mod.Body[0].(*ast.Comprehension)
	qt.Assert(t, qt.IsTrue(ok))

	table := placer.Run(src, mod)
	nc := table.For(comp.Iter)
	qt.Assert(t, qt.Equals(len(nc.Dangling), 1))
	qt.Assert(t, qt.Equals(string(src[nc.Dangling[0].Start():nc.Dangling[0].End()]), "# c"))
}
