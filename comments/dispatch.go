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
)

// handleEnclosedComment is the per-variant dispatch of spec.md §4.7: the
// last pipeline stage, switching on the comment's enclosing node. This is a
// large exhaustive-by-construction type switch rather than dynamic dispatch,
// the way cue/format/node.go switches on clause kind - the rules each depend
// on specific structural fields of their variant, so a closed switch reads
// better here than a method on every node type would.
func handleEnclosedComment(comment DecoratedComment, loc *source.Locator) Placement {
	switch n := comment.EnclosingNode().(type) {
	case *ast.Parameters:
		return handleParametersComment(comment, n, loc)
	case *ast.Arguments, *ast.TypeParams, *ast.PatternArguments:
		return handleBracketedEndOfLineComment(comment, loc)
	case *ast.Comprehension:
		return handleComprehensionComment(comment, n, loc)

	case *ast.ExprAttribute:
		return handleAttributeComment(comment, n, loc)
	case *ast.ExprBinOp:
		return handleTrailingBinaryExpressionLeftOrOperatorComment(comment, n, loc)
	case *ast.Keyword:
		return handleKeywordComment(comment, n, loc)
	case *ast.PatternKeyword:
		return handlePatternKeywordComment(comment, n, loc)
	case *ast.ExprNamedExpr:
		return handleNamedExprComment(comment, loc)
	case *ast.ExprDict:
		if p := handleDictUnpackingComment(comment, loc); !isDefault(p) {
			return p
		}
		return handleBracketedEndOfLineComment(comment, loc)
	case *ast.ExprIfExp:
		return handleExprIfComment(comment, n, loc)
	case *ast.ExprSlice:
		return handleSliceComments(comment, n, loc)
	case *ast.ExprStarred:
		return handleTrailingExpressionStarredStarEndOfLineComment(comment, n, loc)
	case *ast.ExprSubscript:
		if slice, ok := n.Slice.(*ast.ExprSlice); ok {
			return handleSliceComments(comment, slice, loc)
		}
		return defaultPlacement(comment)

	case *ast.ModModule:
		return handleModuleLevelOwnLineCommentBeforeClassOrFunctionComment(comment, loc)
	case *ast.WithItem:
		return handleWithItemComment(comment, loc)

	case *ast.PatternMatchClass:
		return handlePatternMatchClassComment(comment, n)
	case *ast.PatternMatchAs:
		return handlePatternMatchAsComment(comment, loc)
	case *ast.PatternMatchStar:
		return dangling(comment.EnclosingNode(), comment)
	case *ast.PatternMatchMapping:
		if p := handleBracketedEndOfLineComment(comment, loc); !isDefault(p) {
			return p
		}
		return handlePatternMatchMappingComment(comment, n, loc)

	case *ast.StmtFunctionDef:
		return handleLeadingFunctionWithDecoratorsComment(comment)
	case *ast.StmtClassDef:
		return handleLeadingClassWithDecoratorsComment(comment, n)
	case *ast.StmtImportFrom:
		return handleImportFromComment(comment, n)
	case *ast.StmtWith:
		return handleWithComment(comment, n)
	case *ast.ExprCall:
		return handleCallComment(comment)

	case *ast.ExprConstant:
		if parent, ok := comment.EnclosingParentNode().(*ast.ExprFString); ok {
			return dangling(parent, comment)
		}
		return defaultPlacement(comment)
	case *ast.ExprFString:
		return dangling(n, comment)

	case *ast.ExprList, *ast.ExprSet, *ast.ExprGeneratorExp, *ast.ExprListComp, *ast.ExprSetComp, *ast.ExprDictComp:
		return handleBracketedEndOfLineComment(comment, loc)
	case *ast.ExprTuple:
		if n.Parenthesized {
			return handleBracketedEndOfLineComment(comment, loc)
		}
		return defaultPlacement(comment)

	default:
		return defaultPlacement(comment)
	}
}

// handleParametersComment implements spec.md §4.7.1: the `/`/`*` separator
// rule tried first, then (for a parenthesized Parameters) the bracketed
// end-of-line rule. A lambda's unparenthesized parameter list skips the
// bracketed step entirely.
func handleParametersComment(comment DecoratedComment, params *ast.Parameters, loc *source.Locator) Placement {
	if p := handleParametersSeparatorComment(comment, params, loc); !isDefault(p) {
		return p
	}
	if areParametersParenthesized(params.Range(), loc) {
		return handleBracketedEndOfLineComment(comment, loc)
	}
	return defaultPlacement(comment)
}
