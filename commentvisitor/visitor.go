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

// Package commentvisitor produces the stream of decorated comments that
// package comments consumes. spec.md §6 names this producer - "the comment
// visitor" - as an external collaborator whose contract is already solved;
// a complete module has to actually implement it (SPEC_FULL.md §0), since
// nothing else here does. It walks the AST in source order, pairing each
// raw `#`-comment token with the contextual node handles the default
// position-based placement rules need (enclosing/preceding/following/
// enclosing parent), the same way the teacher's cue/ast/walk.go descends a
// tree with parent-tracking.
package commentvisitor

import (
	"github.com/jacobvoss/pycommentplace/ast"
	"github.com/jacobvoss/pycommentplace/comments"
	"github.com/jacobvoss/pycommentplace/linepos"
	"github.com/jacobvoss/pycommentplace/simpletoken"
	"github.com/jacobvoss/pycommentplace/token"
)

// Comments scans src for `#`-comment tokens and returns them, in source
// order, as DecoratedComment records whose enclosing/preceding/following/
// enclosing-parent node handles were computed by descending file according
// to each comment's byte position.
//
// This is the default, purely position-based placement spec.md §1 and §3
// describe as "often wrong in syntactic corners" - the corrective rules in
// package comments take it from here.
func Comments(src []byte, file *ast.ModModule) []comments.DecoratedComment {
	var rawComments []token.Range
	scanner := simpletoken.New(src, token.NewRange(0, token.Pos(len(src))))
	for _, tok := range scanner.Tokens() {
		if tok.Kind == token.Comment {
			rawComments = append(rawComments, tok.Range())
		}
	}

	out := make([]comments.DecoratedComment, 0, len(rawComments))
	for _, rng := range rawComments {
		enclosing, preceding, following, enclosingParent := locate(file, nil, rng)
		out = append(out, comments.DecoratedComment{
			Rng:             rng,
			Line:            linepos.Classify(src, rng.Start),
			Enclosing:       enclosing,
			Preceding:       preceding,
			Following:       following,
			EnclosingParent: enclosingParent,
		})
	}
	return out
}

// locate descends from root (whose parent is parent) to find the smallest
// node that contains comment - the point at which comment falls
// into a gap between root's children rather than inside any single one of
// them - and returns that node as enclosing, together with the immediate
// sibling children bounding the gap (preceding/following) and root's own
// parent (enclosingParent).
func locate(root ast.Node, parent ast.Node, comment token.Range) (enclosing, preceding, following, enclosingParent ast.Node) {
	kids := children(root)

	for _, child := range kids {
		if child.Range().Contains(comment) {
			return locate(child, root, comment)
		}
	}

	var prec, foll ast.Node
	for _, child := range kids {
		if child.End() <= comment.Start {
			prec = child
		}
		if foll == nil && child.Pos() >= comment.End {
			foll = child
		}
	}
	return root, prec, foll, parent
}
