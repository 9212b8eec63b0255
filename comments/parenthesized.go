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
	"github.com/jacobvoss/pycommentplace/simpletoken"
	"github.com/jacobvoss/pycommentplace/source"
	"github.com/jacobvoss/pycommentplace/token"
)

// handleParenthesizedComment implements spec.md §4.4. A parenthesized
// comment is one that appears within a parenthesis but outside the range of
// the expression the parenthesis encloses:
//
//	if (
//	    # comment
//	    True
//	):
//	    ...
//
// If a comment has both a preceding and a following node, we search for
// opening/closing parentheses between them: a closing paren between the
// preceding node and the comment means the comment is outside the left
// side's parens (trailing of preceding); an opening paren between the
// comment and the following node means the comment is inside the right
// side's parens (leading of following).
func handleParenthesizedComment(comment DecoratedComment, loc *source.Locator, strict bool) Placement {
	preceding := comment.PrecedingNode()
	if preceding == nil {
		return defaultPlacement(comment)
	}
	following := comment.FollowingNode()
	if following == nil {
		return defaultPlacement(comment)
	}

	// The scan stops once it crosses `as`/`def`/`class`, a compromise for
	// imprecise node ranges (SPEC_FULL.md §9 / spec.md §9 open question a):
	// e.g. `except (X) # c` as err: lexes past X into the `err` identifier,
	// and `@deco # c` def f(): lexes past deco into f's parameter list.
	stop := func(k token.SimpleKind) bool {
		return k == token.As || k == token.Def || k == token.Class
	}

	if comment.Line.IsEndOfLine() {
		scanner := simpletoken.New(loc.Contents(), token.NewRange(preceding.End(), comment.Start()))
		for _, tok := range scanner.SkipTrivia() {
			if stop(tok.Kind) {
				break
			}
			if tok.Kind == token.Bogus {
				if strict {
					panic("comments: unexpected token between nodes: " + string(loc.Slice(token.NewRange(preceding.End(), comment.Start()))))
				}
				return defaultPlacement(comment)
			}
			if tok.Kind == token.LParen {
				return leading(following, comment)
			}
		}
	} else {
		scanner := simpletoken.New(loc.Contents(), token.NewRange(comment.End(), following.Pos()))
		for _, tok := range scanner.SkipTrivia() {
			if stop(tok.Kind) {
				break
			}
			if tok.Kind == token.Bogus {
				if strict {
					panic("comments: unexpected token between nodes: " + string(loc.Slice(token.NewRange(comment.End(), following.Pos()))))
				}
				return defaultPlacement(comment)
			}
			if tok.Kind == token.RParen {
				return trailing(preceding, comment)
			}
		}
	}

	return defaultPlacement(comment)
}
