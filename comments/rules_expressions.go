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
	"github.com/jacobvoss/pycommentplace/simpletoken"
	"github.com/jacobvoss/pycommentplace/source"
	"github.com/jacobvoss/pycommentplace/token"
)

// handleAttributeComment implements spec.md §4.7.3 for `x.y`.
func handleAttributeComment(comment DecoratedComment, attribute *ast.ExprAttribute, loc *source.Locator) Placement {
	if comment.PrecedingNode() == nil {
		// `(    value)   .   attr` - we're inside the parens before value.
		return leading(attribute.Value, comment)
	}

	// If the comment is parenthesized, use the parens to decide: trailing on
	// value if the comment precedes the last `)`, dangling on the attribute
	// otherwise.
	scanner := simpletoken.StartsAt(loc.Contents(), attribute.Value.End())
	var lastRParen *token.SimpleToken
	for _, tok := range scanner.SkipTrivia() {
		if tok.Kind != token.RParen {
			break
		}
		t := tok
		lastRParen = &t
	}
	if lastRParen != nil {
		if comment.Start() < lastRParen.Start() {
			return trailing(attribute.Value, comment)
		}
		return dangling(comment.EnclosingNode(), comment)
	}

	// If the comment precedes the `.` and is on the same line as the value,
	// treat it as trailing.
	if comment.Line.IsEndOfLine() {
		dot := findOnlyTokenOfKind(loc, token.NewRange(attribute.Value.End(), attribute.Attr.Pos()), token.Dot)
		if comment.End() < dot.Start() {
			return trailing(attribute.Value, comment)
		}
	}

	return dangling(comment.EnclosingNode(), comment)
}

// handleTrailingBinaryExpressionLeftOrOperatorComment implements spec.md
// §4.7.4: comments between the left operand and the operator token trail
// the left operand; an end-of-line comment sitting on the operator's own
// line (when the operator itself is on its own line) dangles on the binop.
func handleTrailingBinaryExpressionLeftOrOperatorComment(comment DecoratedComment, binop *ast.ExprBinOp, loc *source.Locator) Placement {
	if comment.PrecedingNode() == nil || comment.FollowingNode() == nil {
		return defaultPlacement(comment)
	}

	betweenOperands := token.NewRange(binop.Left.End(), binop.Right.Pos())
	scanner := simpletoken.New(loc.Contents(), betweenOperands)
	toks := scanner.SkipTrivia()
	operatorTok, ok := skipLeadingRParens(toks)
	if !ok {
		return defaultPlacement(comment)
	}
	operatorOffset := operatorTok.Start()

	switch {
	case comment.End() < operatorOffset:
		return trailing(binop.Left, comment)

	case comment.Line.IsEndOfLine():
		if loc.ContainsLineBreak(token.NewRange(binop.Left.End(), operatorOffset)) &&
			loc.ContainsLineBreak(token.NewRange(operatorOffset, binop.Right.Pos())) {
			return dangling(binop, comment)
		}
		return defaultPlacement(comment)

	default:
		return defaultPlacement(comment)
	}
}

// handleKeywordComment implements spec.md §4.7.5 for call keyword
// arguments (`name=value`). A parenthesized comment (an `LParen` found
// between the identifier and the comment) belongs to the value instead.
func handleKeywordComment(comment DecoratedComment, keyword *ast.Keyword, loc *source.Locator) Placement {
	start := keyword.Pos()
	if keyword.Arg != nil {
		start = keyword.Arg.End()
	}
	if anyTokenOfKind(loc, token.NewRange(start, comment.Start()), token.LParen) {
		return defaultPlacement(comment)
	}
	return leading(comment.EnclosingNode(), comment)
}

// handlePatternKeywordComment is the `case Point2D(x=1)` pattern-keyword
// analogue of handleKeywordComment.
func handlePatternKeywordComment(comment DecoratedComment, kw *ast.PatternKeyword, loc *source.Locator) Placement {
	if anyTokenOfKind(loc, token.NewRange(kw.Attr.End(), comment.Start()), token.LParen) {
		return defaultPlacement(comment)
	}
	return leading(comment.EnclosingNode(), comment)
}

// handleNamedExprComment implements spec.md §4.7.6 for the walrus operator.
func handleNamedExprComment(comment DecoratedComment, loc *source.Locator) Placement {
	target := comment.PrecedingNode()
	value := comment.FollowingNode()
	if target == nil || value == nil {
		return defaultPlacement(comment)
	}

	colonEqual := findOnlyTokenOfKind(loc, token.NewRange(target.End(), value.Pos()), token.ColonEqual)
	if comment.End() < colonEqual.Start() {
		return trailing(target, comment)
	}
	return dangling(comment.EnclosingNode(), comment)
}

// handleDictUnpackingComment implements spec.md §4.7.7: a comment between
// `**` and the value in a dict-unpacking entry becomes leading on the
// value.
func handleDictUnpackingComment(comment DecoratedComment, loc *source.Locator) Placement {
	following := comment.FollowingNode()
	if following == nil {
		return defaultPlacement(comment)
	}

	precedingEnd := comment.EnclosingNode().Pos()
	if preceding := comment.PrecedingNode(); preceding != nil {
		precedingEnd = preceding.End()
	}

	scanner := simpletoken.New(loc.Contents(), token.NewRange(precedingEnd, comment.Start()))
	toks := scanner.SkipTrivia()
	if anyAfterSkippingRParens(toks, token.DoubleStar) {
		return leading(following, comment)
	}
	return defaultPlacement(comment)
}

// handleExprIfComment implements spec.md §4.7.8 for the ternary
// `body if test else orelse`.
func handleExprIfComment(comment DecoratedComment, expr *ast.ExprIfExp, loc *source.Locator) Placement {
	if comment.Line.IsOwnLine() {
		return defaultPlacement(comment)
	}

	ifTok := findOnlyTokenOfKind(loc, token.NewRange(expr.Body.End(), expr.Test.Pos()), token.If)
	if ifTok.Start() < comment.Start() && comment.Start() < expr.Test.Pos() {
		return leading(expr.Test, comment)
	}

	elseTok := findOnlyTokenOfKind(loc, token.NewRange(expr.Test.End(), expr.Orelse.Pos()), token.Else)
	if elseTok.Start() < comment.Start() && comment.Start() < expr.Orelse.Pos() {
		return leading(expr.Orelse, comment)
	}

	return defaultPlacement(comment)
}

// handleTrailingExpressionStarredStarEndOfLineComment implements spec.md
// §4.7.10: a comment between the `*` of a starred expression and the
// expression itself becomes leading on the starred node, unless it is
// already inside parens belonging to the expression.
func handleTrailingExpressionStarredStarEndOfLineComment(comment DecoratedComment, starred *ast.ExprStarred, loc *source.Locator) Placement {
	if comment.FollowingNode() == nil {
		return defaultPlacement(comment)
	}
	if !anyTokenOfKind(loc, token.NewRange(starred.Pos(), comment.Start()), token.LParen) {
		return leading(starred, comment)
	}
	return defaultPlacement(comment)
}

// handleCallComment implements the §4.7.23 addition (SPEC_FULL.md §3,
// grounded on the original's handle_call_comment, not separately itemized
// by spec.md's §4.7 list): an own-line comment strictly between a call's
// function expression and its arguments dangles on the call.
func handleCallComment(comment DecoratedComment) Placement {
	if comment.Line.IsOwnLine() {
		preceding := comment.PrecedingNode()
		following := comment.FollowingNode()
		if preceding != nil && following != nil &&
			preceding.End() < comment.Start() && comment.End() < following.Pos() {
			return dangling(comment.EnclosingNode(), comment)
		}
	}
	return defaultPlacement(comment)
}
