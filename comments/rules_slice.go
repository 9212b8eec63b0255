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

// sliceSection names which of a slice's three sub-expressions a comment
// belongs to, per spec.md §4.7.9's "policy referenced but not reproduced"
// (spec.md §9 open question b). This module's policy, derived from the
// slice's own `:` token positions: a comment before the first `:` belongs to
// Lower, between the first and second `:` belongs to Upper, after the second
// `:` belongs to Step.
type sliceSection int

const (
	sliceLower sliceSection = iota
	sliceUpper
	sliceStep
)

// assignCommentInSlice classifies commentRange against slice's `:` tokens.
func assignCommentInSlice(commentRange token.Range, loc *source.Locator, slice *ast.ExprSlice) sliceSection {
	scanner := simpletoken.New(loc.Contents(), slice.Range())
	var colons []token.Pos
	for _, tok := range scanner.SkipTrivia() {
		if tok.Kind == token.Colon {
			colons = append(colons, tok.Start())
		}
	}

	switch len(colons) {
	case 0:
		return sliceLower
	case 1:
		if commentRange.Start < colons[0] {
			return sliceLower
		}
		return sliceUpper
	default:
		if commentRange.Start < colons[0] {
			return sliceLower
		}
		if commentRange.Start < colons[1] {
			return sliceUpper
		}
		return sliceStep
	}
}

// handleSliceComments implements spec.md §4.7.9 (and, via ExprSubscript's
// delegation, §4.7.11): comments inside `lower:upper:step` attach to the
// corresponding sub-node, or dangle on the slice/subscript when that
// sub-node is absent.
func handleSliceComments(comment DecoratedComment, slice *ast.ExprSlice, loc *source.Locator) Placement {
	// `foo[ # comment`, but only on the same line: keep it dangling on the
	// enclosing subscript so it renders right after the bracket. Bounded to
	// the enclosing node's own start - the `[` we're looking for, if any,
	// always sits inside that span - rather than rescanning from byte 0.
	backScanner := simpletoken.UpToWithoutBackComment(loc.Contents(), comment.EnclosingNode().Pos(), comment.Start())
	backToks := backScanner.SkipTrivia()
	afterLBracket := len(backToks) > 0 && backToks[len(backToks)-1].Kind == token.LBracket

	if comment.Line.IsEndOfLine() && afterLBracket {
		return dangling(comment.EnclosingNode(), comment)
	}

	var node ast.Node
	switch assignCommentInSlice(comment.Range(), loc, slice) {
	case sliceLower:
		node = slice.Lower
	case sliceUpper:
		node = slice.Upper
	default:
		node = slice.Step
	}

	if node != nil {
		if comment.Start() < node.Pos() {
			return leading(node, comment)
		}
		return trailing(node, comment)
	}
	return dangling(slice, comment)
}
