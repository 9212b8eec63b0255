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

// handlePatternMatchClassComment implements spec.md §4.7.16 for
// `case Cls(...)`.
func handlePatternMatchClassComment(comment DecoratedComment, class *ast.PatternMatchClass) Placement {
	if class.Cls.End() < comment.Start() && comment.End() < class.Arguments.Pos() {
		return dangling(comment.EnclosingNode(), comment)
	}
	return defaultPlacement(comment)
}

// handlePatternMatchAsComment implements spec.md §4.7.17 for `pattern as name`.
func handlePatternMatchAsComment(comment DecoratedComment, loc *source.Locator) Placement {
	pattern := comment.PrecedingNode()
	if pattern == nil {
		return defaultPlacement(comment)
	}

	scanner := simpletoken.StartsAt(loc.Contents(), pattern.End())
	toks := scanner.SkipTrivia()
	asTok, ok := skipLeadingRParens(toks)
	if !ok || asTok.Kind != token.As {
		return defaultPlacement(comment)
	}

	if comment.End() < asTok.Start() {
		return trailing(pattern, comment)
	}
	// Any comment after the name is trailing on the pattern match item
	// itself, not enclosed by it, so the remaining case is dangling.
	return dangling(comment.EnclosingNode(), comment)
}

// handlePatternMatchMappingComment implements spec.md §4.7.19 for
// `case {**rest}`.
func handlePatternMatchMappingComment(comment DecoratedComment, pattern *ast.PatternMatchMapping, loc *source.Locator) Placement {
	// The `**` must come last, so there can't be a following node.
	if comment.FollowingNode() != nil {
		return defaultPlacement(comment)
	}
	if pattern.Rest == nil {
		return defaultPlacement(comment)
	}
	if comment.Start() > pattern.Rest.End() {
		return dangling(comment.EnclosingNode(), comment)
	}

	precedingEnd := comment.EnclosingNode().Pos()
	if preceding := comment.PrecedingNode(); preceding != nil {
		precedingEnd = preceding.End()
	}
	if anyTokenOfKind(loc, token.NewRange(precedingEnd, comment.Start()), token.DoubleStar) {
		return dangling(comment.EnclosingNode(), comment)
	}
	return defaultPlacement(comment)
}
