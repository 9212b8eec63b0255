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
	"strings"

	"github.com/jacobvoss/pycommentplace/linepos"
	"github.com/jacobvoss/pycommentplace/simpletoken"
	"github.com/jacobvoss/pycommentplace/source"
	"github.com/jacobvoss/pycommentplace/token"
)

// findOnlyTokenOfKind scans r and returns the first token matching kind,
// skipping trivia. It panics if none is found - callers only use this where
// the grammar guarantees the token exists (e.g. the `as` between a with
// item's context expression and its optional_vars), matching the original's
// find_only_token_in_range, which itself panics via .next().expect(...).
func findOnlyTokenOfKind(loc *source.Locator, r token.Range, kind token.SimpleKind) token.SimpleToken {
	scanner := simpletoken.New(loc.Contents(), r)
	for _, tok := range scanner.SkipTrivia() {
		if tok.Kind == kind {
			return tok
		}
	}
	panic("comments: expected token not found in range " + r.String())
}

// anyTokenOfKind reports whether any non-trivia token in r has kind.
func anyTokenOfKind(loc *source.Locator, r token.Range, kind token.SimpleKind) bool {
	scanner := simpletoken.New(loc.Contents(), r)
	for _, tok := range scanner.SkipTrivia() {
		if tok.Kind == kind {
			return true
		}
	}
	return false
}

// skipLeadingRParens drops any RParen tokens at the front of toks, returning
// the first remaining token and whether there is one. This mirrors the
// `.skip_while(|token| token.kind == SimpleTokenKind::RParen)` idiom used
// repeatedly in the original to look past a closing bracket that trails the
// left operand of a binary op, dict-unpacking value, or similar.
func skipLeadingRParens(toks []token.SimpleToken) (token.SimpleToken, bool) {
	for _, tok := range toks {
		if tok.Kind == token.RParen {
			continue
		}
		return tok, true
	}
	return token.SimpleToken{}, false
}

// anyAfterSkippingRParens reports whether, after dropping any leading RParen
// tokens, a token of kind remains among toks.
func anyAfterSkippingRParens(toks []token.SimpleToken, kind token.SimpleKind) bool {
	seenNonParen := false
	for _, tok := range toks {
		if !seenNonParen && tok.Kind == token.RParen {
			continue
		}
		seenNonParen = true
		if tok.Kind == kind {
			return true
		}
	}
	return false
}

// maxEmptyLinesInSlice counts the maximum run of blank lines in the source
// text spanning r, via linepos.MaxEmptyLines.
func maxEmptyLinesInSlice(loc *source.Locator, r token.Range) int {
	return linepos.MaxEmptyLines(loc.Slice(r))
}

// areParametersParenthesized reports whether the parameters range begins
// with `(`, distinguishing a function definition's parameter list (always
// parenthesized) from a lambda's (never parenthesized). Carried byte-for-byte
// from the original's `are_parameters_parenthesized` (SPEC_FULL.md §3).
func areParametersParenthesized(rng token.Range, loc *source.Locator) bool {
	return strings.HasPrefix(string(loc.Slice(rng)), "(")
}
