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

package source_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/jacobvoss/pycommentplace/source"
	"github.com/jacobvoss/pycommentplace/token"
)

func TestSliceClamps(t *testing.T) {
	loc := source.New([]byte("hello"))
	qt.Assert(t, qt.DeepEquals(loc.Slice(token.NewRange(0, 100)), []byte("hello")))
	qt.Assert(t, qt.DeepEquals(loc.Slice(token.NewRange(-5, 3)), []byte("hel")))
}

func TestContainsLineBreak(t *testing.T) {
	loc := source.New([]byte("a\nb"))
	qt.Assert(t, qt.IsTrue(loc.ContainsLineBreak(token.NewRange(0, 3))))
	qt.Assert(t, qt.IsFalse(loc.ContainsLineBreak(token.NewRange(0, 1))))
}

func TestIndentationAtOffset(t *testing.T) {
	loc := source.New([]byte("if x:\n    pass\n"))
	indent, ok := loc.IndentationAtOffset(token.Pos(10)) // 'p' of "pass"
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.DeepEquals(indent, []byte("    ")))

	_, ok = loc.IndentationAtOffset(token.Pos(3)) // 'x' of "if x" - not first on line
	qt.Assert(t, qt.IsFalse(ok))
}
