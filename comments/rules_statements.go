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

// handleModuleLevelOwnLineCommentBeforeClassOrFunctionComment implements
// spec.md §4.7.12. Ruff inserts two empty lines before every class/function
// definition; without this rule, a comment glued to the previous statement
// with no blank line of its own would be torn away from it by that
// insertion. A comment separated from the def/class header by zero empty
// lines becomes leading on the def/class; otherwise it stays trailing on
// the previous statement.
func handleModuleLevelOwnLineCommentBeforeClassOrFunctionComment(comment DecoratedComment, loc *source.Locator) Placement {
	if comment.Line.IsEndOfLine() {
		return defaultPlacement(comment)
	}

	preceding := comment.PrecedingNode()
	following := comment.FollowingNode()
	if preceding == nil || following == nil {
		return defaultPlacement(comment)
	}

	switch following.(type) {
	case *ast.StmtFunctionDef, *ast.StmtClassDef:
	default:
		return defaultPlacement(comment)
	}

	if maxEmptyLinesInSlice(loc, token.NewRange(comment.End(), following.Pos())) == 0 {
		return leading(following, comment)
	}
	return trailing(preceding, comment)
}

// handleWithItemComment implements spec.md §4.7.13 for `expr as name`.
func handleWithItemComment(comment DecoratedComment, loc *source.Locator) Placement {
	contextExpr := comment.PrecedingNode()
	optionalVars := comment.FollowingNode()
	if contextExpr == nil || optionalVars == nil {
		return defaultPlacement(comment)
	}

	asTok := findOnlyTokenOfKind(loc, token.NewRange(contextExpr.End(), optionalVars.Pos()), token.As)

	switch {
	case comment.End() < asTok.Start():
		return trailing(contextExpr, comment)
	case comment.Line.IsEndOfLine():
		return dangling(comment.EnclosingNode(), comment)
	default:
		return leading(optionalVars, comment)
	}
}

// handleLeadingFunctionWithDecoratorsComment implements spec.md §4.7.14: an
// own-line comment between the last decorator and the parameters dangles on
// the function definition instead of becoming a leading parameter comment.
func handleLeadingFunctionWithDecoratorsComment(comment DecoratedComment) Placement {
	_, isPrecedingDecorator := comment.PrecedingNode().(*ast.Decorator)
	_, isFollowingParameters := comment.FollowingNode().(*ast.Parameters)

	if comment.Line.IsOwnLine() && isPrecedingDecorator && isFollowingParameters {
		return dangling(comment.EnclosingNode(), comment)
	}
	return defaultPlacement(comment)
}

// handleLeadingClassWithDecoratorsComment implements spec.md §4.7.15: an
// own-line comment after the last decorator and before the class name
// dangles on the class definition.
func handleLeadingClassWithDecoratorsComment(comment DecoratedComment, class *ast.StmtClassDef) Placement {
	if comment.Line.IsOwnLine() && comment.Start() < class.Name.Pos() {
		if n := len(class.Decorators); n > 0 {
			last := class.Decorators[n-1]
			if last.End() < comment.Start() {
				return dangling(class, comment)
			}
		}
	}
	return defaultPlacement(comment)
}

// handleImportFromComment implements spec.md §4.7.22 for `from m import (...)`.
func handleImportFromComment(comment DecoratedComment, importFrom *ast.StmtImportFrom) Placement {
	if comment.Line.IsEndOfLine() && len(importFrom.Names) > 0 {
		first := importFrom.Names[0]
		if importFrom.Pos() < comment.Start() && comment.Start() < first.Pos() {
			return dangling(comment.EnclosingNode(), comment)
		}
	}
	return defaultPlacement(comment)
}

// handleWithComment implements spec.md §4.7.22 for a parenthesized `with (...)`.
func handleWithComment(comment DecoratedComment, with *ast.StmtWith) Placement {
	if comment.Line.IsEndOfLine() && len(with.Items) > 0 {
		first := with.Items[0]
		if with.Pos() < comment.Start() && comment.Start() < first.Pos() {
			return dangling(comment.EnclosingNode(), comment)
		}
	}
	return defaultPlacement(comment)
}
