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

// handleBracketedEndOfLineComment implements spec.md §4.7.20. An end-of-line
// comment that is the first non-trivia item after a construct's opening
// bracket becomes a dangling comment on the enclosing node instead of a
// leading comment on the first element, so `foo(  # comment` keeps the
// comment glued to the parenthesis rather than the first argument:
//
//	foo(  # comment
//	   bar,
//	)
func handleBracketedEndOfLineComment(comment DecoratedComment, loc *source.Locator) Placement {
	if comment.Line.IsOwnLine() {
		return defaultPlacement(comment)
	}

	scanner := simpletoken.New(loc.Contents(), token.NewRange(comment.EnclosingNode().Pos(), comment.Start()))
	toks := scanner.SkipTrivia()
	if len(toks) == 0 {
		return defaultPlacement(comment)
	}
	switch toks[0].Kind {
	case token.LParen, token.LBrace, token.LBracket:
	default:
		return defaultPlacement(comment)
	}

	// If there are no additional tokens between the open bracket and the
	// comment, attach as dangling on the brackets rather than leading on
	// the first element.
	if len(toks) == 1 {
		return dangling(comment.EnclosingNode(), comment)
	}
	return defaultPlacement(comment)
}

// handleParametersSeparatorComment implements spec.md §4.7.1's separator
// rule: a comment immediately adjacent (only trivia intervening) to the
// positional-only `/` or keyword-only `*` separator token of a parameter
// list becomes dangling on the enclosing Parameters node.
func handleParametersSeparatorComment(comment DecoratedComment, params *ast.Parameters, loc *source.Locator) Placement {
	slash, star := findParameterSeparators(params, loc)
	if assignArgumentSeparatorCommentPlacement(loc, slash, star, comment.Range()) {
		return dangling(comment.EnclosingNode(), comment)
	}
	return defaultPlacement(comment)
}

// findParameterSeparators scans params' own range for its `/` and/or `*`
// separator tokens. A bare `*` separator (keyword-only marker, not a
// `*args` unpacking) is distinguished by what follows it once trivia is
// skipped: a separator is followed by `,` or the closing paren, whereas
// `*args` is followed by an identifier.
func findParameterSeparators(params *ast.Parameters, loc *source.Locator) (slash, star *token.Range) {
	scanner := simpletoken.New(loc.Contents(), params.Range())
	toks := scanner.SkipTrivia()
	for i, tok := range toks {
		switch tok.Kind {
		case token.Slash:
			r := tok.Range()
			slash = &r
		case token.Star:
			if i+1 < len(toks) {
				next := toks[i+1].Kind
				if next == token.Comma || next == token.RParen || next == token.Colon {
					r := tok.Range()
					star = &r
				}
			} else {
				r := tok.Range()
				star = &r
			}
		}
	}
	return slash, star
}

// assignArgumentSeparatorCommentPlacement reports whether commentRange lies
// in the adjacency span of either separator token: immediately before or
// immediately after it, which is this module's policy for spec.md §4.7.1's
// "documented policy" (not reproduced by the distilled spec; see DESIGN.md).
// "Adjacent" means genuinely next to the separator - nothing but trivia (and
// the separator's own comma) in between - not merely somewhere in the same
// parameter list as a `/` or `*`: a comment trailing some unrelated later
// parameter must not be swept up just because the list happens to contain a
// separator earlier on.
func assignArgumentSeparatorCommentPlacement(loc *source.Locator, slash, star *token.Range, commentRange token.Range) bool {
	return isAdjacentToSeparator(loc, slash, commentRange) || isAdjacentToSeparator(loc, star, commentRange)
}

// isAdjacentToSeparator reports whether commentRange sits immediately
// before or after sep, scanning the gap between them with trivia skipped
// the same way handleBracketedEndOfLineComment scans past an opening
// bracket. A lone Comma in the gap is still "adjacent" - the separator's
// own trailing or leading comma - but any other token means the comment
// belongs to some other part of the parameter list.
func isAdjacentToSeparator(loc *source.Locator, sep *token.Range, commentRange token.Range) bool {
	if sep == nil {
		return false
	}
	var gap token.Range
	switch {
	case commentRange.End <= sep.Start:
		gap = token.NewRange(commentRange.End, sep.Start)
	case sep.End <= commentRange.Start:
		gap = token.NewRange(sep.End, commentRange.Start)
	default:
		return false
	}
	toks := simpletoken.New(loc.Contents(), gap).SkipTrivia()
	switch len(toks) {
	case 0:
		return true
	case 1:
		return toks[0].Kind == token.Comma
	default:
		return false
	}
}
