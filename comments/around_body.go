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

// handleEndOfLineCommentAroundBody implements spec.md §4.5: EndOfLine
// comments either attach to the start of a body (`for x in y: # comment`)
// or trail the deepest last statement of a preceding compound statement.
func handleEndOfLineCommentAroundBody(comment DecoratedComment, loc *source.Locator) Placement {
	if comment.Line.IsOwnLine() {
		return defaultPlacement(comment)
	}

	// Comments before the first statement in a body:
	//   for x in range(10): # in the main body ...
	//       pass
	//   else: # ... and in alternative bodies
	//       pass
	if following := comment.FollowingNode(); following != nil {
		if ast.IsFirstStatementInBody(following, comment.EnclosingNode()) {
			scanner := simpletoken.New(loc.Contents(), token.NewRange(comment.End(), following.Pos()))
			if len(scanner.SkipTrivia()) == 0 {
				return dangling(comment.EnclosingNode(), comment)
			}
		}
	}

	// Comments after a body:
	//   if True:
	//       pass # after the main body ...
	//
	//   try:
	//       1 / 0
	//   except ZeroDivisionError:
	//       print("Error") # ... and after alternative bodies
	// The earlier branch filters out ambiguities around try-except-finally.
	if preceding := comment.PrecedingNode(); preceding != nil {
		if lastChild, ok := ast.LastChildInBody(preceding); ok {
			innermost := lastChild
			for {
				next, ok := ast.LastChildInBody(innermost)
				if !ok {
					break
				}
				innermost = next
			}
			return trailing(innermost, comment)
		}
	}

	return defaultPlacement(comment)
}

// handleOwnLineCommentAroundBody implements spec.md §4.6: OwnLine comments
// at the end of a body, at the end of a header preceding a body, or between
// bodies.
func handleOwnLineCommentAroundBody(comment DecoratedComment, loc *source.Locator) Placement {
	if comment.Line.IsEndOfLine() {
		return defaultPlacement(comment)
	}

	preceding := comment.PrecedingNode()
	if preceding == nil {
		return defaultPlacement(comment)
	}

	// If there's any non-trivia token between the preceding node and the
	// comment, we've already crossed structural syntax like `else:` -
	// defer to the default rules.
	scanner := simpletoken.New(loc.Contents(), token.NewRange(preceding.End(), comment.Start()))
	if len(scanner.SkipTrivia()) > 0 {
		return defaultPlacement(comment)
	}

	if p := handleOwnLineCommentBetweenBranches(comment, preceding, loc); !isDefault(p) {
		return p
	}
	return handleOwnLineCommentAfterBranch(comment, preceding, loc)
}

// handleOwnLineCommentBetweenBranches handles own-line comments between two
// branches of a node:
//
//	for x in y:
//	    pass
//	# This one ...
//	else:
//	    print("I have no comments")
//	# ... but not this one
func handleOwnLineCommentBetweenBranches(comment DecoratedComment, preceding ast.Node, loc *source.Locator) Placement {
	following := comment.FollowingNode()
	if following == nil {
		return defaultPlacement(comment)
	}
	if !ast.IsFirstStatementInAlternateBody(following, comment.EnclosingNode()) {
		return defaultPlacement(comment)
	}

	commentIndent, _ := loc.IndentationAtOffset(comment.Start())
	precedingIndent, _ := loc.Indentation(preceding)

	switch {
	case len(commentIndent) > len(precedingIndent):
		// The comment might belong to an arbitrarily deeply nested inner
		// statement:
		//   while True:
		//       def f_inner():
		//           pass
		//           # comment
		//   else:
		//       print("noop")
		return defaultPlacement(comment)

	case len(commentIndent) == len(precedingIndent):
		// The comment belongs to the last statement, unless the preceding
		// branch has a body itself (an except/elif), in which case the
		// comment still belongs to the following branch even though the
		// indentation happens to match.
		if ast.IsAlternativeBranchWithNode(preceding) {
			return dangling(comment.EnclosingNode(), comment)
		}
		return trailing(preceding, comment)

	default:
		// Less: the comment is leading on the following block.
		if ast.IsAlternativeBranchWithNode(following) {
			return leading(following, comment)
		}
		// else/finally lack a dedicated node; the pretty-printer picks the
		// exact placement by inspecting the comment's range.
		return dangling(comment.EnclosingNode(), comment)
	}
}

// handleOwnLineCommentAfterBranch determines where to attach an own-line
// comment after a branch, based on its indentation relative to the nested
// last children of preceding.
func handleOwnLineCommentAfterBranch(comment DecoratedComment, preceding ast.Node, loc *source.Locator) Placement {
	lastChild, ok := ast.LastChildInBody(preceding)
	if !ok {
		return defaultPlacement(comment)
	}

	commentIndent, _ := loc.IndentationAtOffset(comment.Start())

	// Keep the comment on the entire statement in case it's a trailing
	// comment:
	//   if "first if":
	//       pass
	//   elif "first elif":
	//       pass
	//   # Trailing if comment
	precedingIndent, _ := loc.IndentationAtOffset(preceding.Pos())
	if len(commentIndent) == len(precedingIndent) {
		return defaultPlacement(comment)
	}

	var parent ast.Node
	lastChildInParent := lastChild

	for {
		childIndent, _ := loc.Indentation(lastChildInParent)

		switch {
		case len(commentIndent) < len(childIndent):
			if parent != nil {
				return trailing(parent, comment)
			}
			return defaultPlacement(comment)

		case len(commentIndent) == len(childIndent):
			return trailing(lastChildInParent, comment)

		default: // greater
			if nested, ok := ast.LastChildInBody(lastChildInParent); ok {
				parent = lastChildInParent
				lastChildInParent = nested
			} else {
				// Over-indented: assign to the most indented child reached.
				return trailing(lastChildInParent, comment)
			}
		}
	}
}
