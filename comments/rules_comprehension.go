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

package comments

import (
	"github.com/jacobvoss/pycommentplace/ast"
	"github.com/jacobvoss/pycommentplace/source"
	"github.com/jacobvoss/pycommentplace/token"
)

// handleComprehensionComment implements spec.md §4.7.2: a comment inside one
// `for target in iter if c1 if c2 ...` clause of a comprehension or
// generator expression is classified by which gap it falls in.
func handleComprehensionComment(comment DecoratedComment, comp *ast.Comprehension, loc *source.Locator) Placement {
	ownLine := comment.Line.IsOwnLine()

	// Before the target: after the `for` keyword.
	if comment.End() < comp.Target.Pos() {
		if ownLine {
			// Already correctly leading the target.
			return defaultPlacement(comment)
		}
		return dangling(comment.EnclosingNode(), comment)
	}

	inTok := findOnlyTokenOfKind(loc, token.NewRange(comp.Target.End(), comp.Iter.Pos()), token.In)

	// Between the target and the `in`.
	if comment.Start() < inTok.Start() {
		if ownLine {
			return dangling(comment.EnclosingNode(), comment)
		}
		// Correctly trailing on the target.
		return defaultPlacement(comment)
	}

	// Between the `in` and the iter.
	if comment.Start() < comp.Iter.Pos() {
		if ownLine {
			return defaultPlacement(comment)
		}
		return dangling(comp.Iter, comment)
	}

	lastEnd := comp.Iter.End()
	for _, ifNode := range comp.Ifs {
		ifTok := findOnlyTokenOfKind(loc, token.NewRange(lastEnd, ifNode.Pos()), token.If)
		if ownLine {
			if lastEnd < comment.Start() && comment.Start() < ifTok.Start() {
				return dangling(ifNode, comment)
			}
		} else if ifTok.Start() < comment.Start() && comment.Start() < ifNode.Pos() {
			return dangling(ifNode, comment)
		}
		lastEnd = ifNode.End()
	}

	return defaultPlacement(comment)
}
