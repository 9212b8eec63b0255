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

// Package comments implements the corrective placement rules: given a
// DecoratedComment and the original source, decide whether the comment is
// leading, trailing, or dangling on some specific AST node, overriding the
// pretty-printer's default nearest-node heuristic in the syntactic corners
// where that heuristic is wrong (spec.md §1, §4).
//
// Every rule here is grounded line-by-line on
// crates/ruff_python_formatter/src/comments/placement.rs, expressed in the
// teacher's idiom: exhaustive type switches instead of Rust match
// expressions, early-return chains instead of .or_else, and one function
// per node variant the way cue/format/node.go has one function per clause
// kind.
package comments

import (
	"github.com/jacobvoss/pycommentplace/ast"
	"github.com/jacobvoss/pycommentplace/linepos"
	"github.com/jacobvoss/pycommentplace/source"
	"github.com/jacobvoss/pycommentplace/token"
)

// DecoratedComment is the input record for one `#`-comment: its byte
// range, its line position, and the contextual node handles computed by
// the comment visitor's default position rules (spec.md §3, §6).
type DecoratedComment struct {
	Rng             token.Range
	Line            linepos.Position
	Enclosing       ast.Node
	Preceding       ast.Node // nil if none
	Following       ast.Node // nil if none
	EnclosingParent ast.Node // nil if none
}

func (c DecoratedComment) Range() token.Range  { return c.Rng }
func (c DecoratedComment) Start() token.Pos    { return c.Rng.Start }
func (c DecoratedComment) End() token.Pos      { return c.Rng.End }
func (c DecoratedComment) PrecedingNode() ast.Node { return c.Preceding }
func (c DecoratedComment) FollowingNode() ast.Node { return c.Following }
func (c DecoratedComment) EnclosingNode() ast.Node { return c.Enclosing }
func (c DecoratedComment) EnclosingParentNode() ast.Node { return c.EnclosingParent }

// Kind is the verdict a rule reaches for a comment.
type Kind int

const (
	// Default means "no correction; accept the pipeline's prior decision"
	// - the final Default defers to position-based placement performed by
	// the caller (spec.md §3).
	Default Kind = iota
	Leading
	Trailing
	Dangling
)

func (k Kind) String() string {
	switch k {
	case Leading:
		return "Leading"
	case Trailing:
		return "Trailing"
	case Dangling:
		return "Dangling"
	default:
		return "Default"
	}
}

// Placement is the verdict of the placement pipeline for one comment: a
// Kind plus, for every kind but Default, the node it attaches to.
type Placement struct {
	Kind    Kind
	Node    ast.Node
	Comment DecoratedComment
}

func defaultPlacement(c DecoratedComment) Placement {
	return Placement{Kind: Default, Comment: c}
}

func leading(node ast.Node, c DecoratedComment) Placement {
	return Placement{Kind: Leading, Node: node, Comment: c}
}

func trailing(node ast.Node, c DecoratedComment) Placement {
	return Placement{Kind: Trailing, Node: node, Comment: c}
}

func dangling(node ast.Node, c DecoratedComment) Placement {
	return Placement{Kind: Dangling, Node: node, Comment: c}
}

// isDefault reports whether p is the Default verdict, the signal to try
// the next stage/rule in a chain.
func isDefault(p Placement) bool { return p.Kind == Default }

// Place runs the four-stage placement pipeline of spec.md §4.3 and
// returns the first non-Default verdict, or Default if every stage
// declines. It never panics: an unexpected Bogus token scanned inside a
// rule is silently treated as "no match" for that rule, matching the
// shipped (non-debug) behavior of the original (spec.md §4.4, §7).
func Place(comment DecoratedComment, loc *source.Locator) Placement {
	return place(comment, loc, false)
}

// PlaceStrict behaves like Place, except that where the parenthesized-
// comment rule meets a Bogus token between the two nodes it panics with the
// scanned span instead of falling back to Default. This mirrors the
// original's debug_assert! guarantee (SPEC_FULL.md §3). placer.Run uses
// Place; nothing in this module calls PlaceStrict.
func PlaceStrict(comment DecoratedComment, loc *source.Locator) Placement {
	return place(comment, loc, true)
}

func place(comment DecoratedComment, loc *source.Locator, strict bool) Placement {
	if p := handleParenthesizedComment(comment, loc, strict); !isDefault(p) {
		return p
	}
	if p := handleEndOfLineCommentAroundBody(comment, loc); !isDefault(p) {
		return p
	}
	if p := handleOwnLineCommentAroundBody(comment, loc); !isDefault(p) {
		return p
	}
	if p := handleEnclosedComment(comment, loc); !isDefault(p) {
		return p
	}
	return defaultPlacement(comment)
}
