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

// Package simpletoken implements the tolerant, single-pass byte scanner the
// placement rules use to recover tokens the AST doesn't preserve -
// parentheses, operators, and keyword separators (spec.md §4.2, §9). It
// follows the single-pass, rune-at-a-time advance idiom of the teacher's
// own cue/scanner.Scanner, but recognizes only the small fixed alphabet in
// token.SimpleKind and, unlike a real lexer, never errors: anything it
// can't classify becomes token.Other, and control bytes become one-byte
// token.Bogus tokens, exactly as google-licenseclassifier's comment_parser.go
// treats unrecognized spans as best-effort "skip it" rather than failing
// the whole scan.
package simpletoken

import (
	"github.com/jacobvoss/pycommentplace/token"
)

// Scanner scans a single arbitrary byte range of a source buffer.
type Scanner struct {
	src []byte
	pos int // current offset, absolute into src
	end int // absolute end of the scanned range
}

// New returns a scanner over the half-open range r of src.
func New(src []byte, r token.Range) *Scanner {
	start, end := int(r.Start), int(r.End)
	if start < 0 {
		start = 0
	}
	if end > len(src) {
		end = len(src)
	}
	if start > end {
		start = end
	}
	return &Scanner{src: src, pos: start, end: end}
}

// StartsAt returns a scanner starting at offset and running to the end of
// src, mirroring SimpleTokenizer::starts_at.
func StartsAt(src []byte, offset token.Pos) *Scanner {
	return New(src, token.NewRange(offset, token.Pos(len(src))))
}

// Tokens scans the whole range eagerly and returns every token in order,
// including trivia. Most callers want SkipTrivia instead.
func (s *Scanner) Tokens() []token.SimpleToken {
	var out []token.SimpleToken
	for {
		tok, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

// SkipTrivia scans the whole range and returns only the non-trivia tokens,
// in order.
func (s *Scanner) SkipTrivia() []token.SimpleToken {
	var out []token.SimpleToken
	for {
		tok, ok := s.Next()
		if !ok {
			return out
		}
		if !tok.IsTrivia() {
			out = append(out, tok)
		}
	}
}

// Next scans and returns the next token, advancing the scanner. ok is
// false once the range is exhausted.
func (s *Scanner) Next() (token.SimpleToken, bool) {
	if s.pos >= s.end {
		return token.SimpleToken{}, false
	}

	start := s.pos
	c := s.src[s.pos]

	switch {
	case c == '(':
		s.pos++
		return s.tok(token.LParen, start), true
	case c == ')':
		s.pos++
		return s.tok(token.RParen, start), true
	case c == '[':
		s.pos++
		return s.tok(token.LBracket, start), true
	case c == ']':
		s.pos++
		return s.tok(token.RBracket, start), true
	case c == '{':
		s.pos++
		return s.tok(token.LBrace, start), true
	case c == '}':
		s.pos++
		return s.tok(token.RBrace, start), true
	case c == ',':
		s.pos++
		return s.tok(token.Comma, start), true
	case c == '.':
		s.pos++
		return s.tok(token.Dot, start), true
	case c == '/':
		s.pos++
		return s.tok(token.Slash, start), true
	case c == ':':
		s.pos++
		if s.pos < s.end && s.src[s.pos] == '=' {
			s.pos++
			return s.tok(token.ColonEqual, start), true
		}
		return s.tok(token.Colon, start), true
	case c == '*':
		s.pos++
		if s.pos < s.end && s.src[s.pos] == '*' {
			s.pos++
			return s.tok(token.DoubleStar, start), true
		}
		return s.tok(token.Star, start), true
	case c == '\n':
		s.pos++
		return s.tok(token.Newline, start), true
	case c == '\r':
		s.pos++
		if s.pos < s.end && s.src[s.pos] == '\n' {
			s.pos++
		}
		return s.tok(token.Newline, start), true
	case c == ' ' || c == '\t' || c == '\f' || c == '\v':
		for s.pos < s.end && isHorizontalSpace(s.src[s.pos]) {
			s.pos++
		}
		return s.tok(token.Whitespace, start), true
	case c == '#':
		for s.pos < s.end && s.src[s.pos] != '\n' {
			s.pos++
		}
		return s.tok(token.Comment, start), true
	case isIdentStart(c):
		for s.pos < s.end && isIdentPart(s.src[s.pos]) {
			s.pos++
		}
		if kw, ok := keyword(s.src[start:s.pos]); ok {
			return s.tok(kw, start), true
		}
		return s.tok(token.Other, start), true
	default:
		// Any other printable byte (string/number literal contents,
		// unrecognized punctuation) is best-effort "other"; the scanner
		// never needs to materialize identifiers or literals, only to
		// skip past them (spec.md §4.2). Control bytes are Bogus.
		if c >= 0x80 {
			// Fold an entire non-ASCII run into one Other token instead of
			// one per byte, so multi-byte identifiers don't look like a
			// run of Bogus tokens.
			for s.pos < s.end && s.src[s.pos] >= 0x80 {
				s.pos++
			}
			return s.tok(token.Other, start), true
		}
		s.pos++
		if c < 0x20 || c == 0x7f {
			return s.tok(token.Bogus, start), true
		}
		return s.tok(token.Other, start), true
	}
}

func (s *Scanner) tok(kind token.SimpleKind, start int) token.SimpleToken {
	return token.SimpleToken{Kind: kind, Rng: token.NewRange(token.Pos(start), token.Pos(s.pos))}
}

func isHorizontalSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f' || c == '\v'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func keyword(word []byte) (token.SimpleKind, bool) {
	switch string(word) {
	case "if":
		return token.If, true
	case "else":
		return token.Else, true
	case "in":
		return token.In, true
	case "as":
		return token.As, true
	case "for":
		return token.For, true
	case "def":
		return token.Def, true
	case "class":
		return token.Class, true
	default:
		return 0, false
	}
}

// UpToWithoutBackComment scans src from from up to (but not including)
// offset and returns every token found, so the caller can inspect the
// *last* token before offset (used to detect patterns like `foo[ #`,
// spec.md §4.2). Named after SimpleTokenizer::up_to_without_back_comment in
// the original: unlike a true backward scanner, this still scans forward
// internally, but presents itself as a bounded "up to offset" view. Callers
// must pass a from bound close to offset - the start of the node that
// locally encloses it, say - so this stays the local scan spec.md §5
// describes rather than a rescan of the whole file from byte 0.
func UpToWithoutBackComment(src []byte, from, offset token.Pos) *Scanner {
	return New(src, token.NewRange(from, offset))
}

// Last returns the last token of toks, or false if toks is empty. A small
// helper for the common "what's the last non-trivia token before X" query.
func Last(toks []token.SimpleToken) (token.SimpleToken, bool) {
	if len(toks) == 0 {
		return token.SimpleToken{}, false
	}
	return toks[len(toks)-1], true
}
