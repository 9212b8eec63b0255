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

package token

// SimpleKind is the fixed, small token alphabet the simple token scanner
// produces. Unlike the teacher's own scanner.Token (which enumerates the
// full grammar of CUE), this set only names what the placement rules need
// to recognize in an arbitrary byte span: brackets, a handful of
// keywords, a handful of punctuation, and three trivia kinds.
type SimpleKind int

const (
	LParen SimpleKind = iota
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Comma
	Colon
	Dot
	Slash
	Star
	DoubleStar
	ColonEqual
	If
	Else
	In
	As
	For
	Def
	Class
	Newline
	Whitespace
	Comment
	Other
	// Bogus marks a control byte the scanner couldn't classify. The
	// parenthesized-comment rule treats it as "give up this rule, fall
	// back to Default" (spec.md §4.2); other rules pass over it.
	Bogus
)

func (k SimpleKind) String() string {
	switch k {
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case Comma:
		return "Comma"
	case Colon:
		return "Colon"
	case Dot:
		return "Dot"
	case Slash:
		return "Slash"
	case Star:
		return "Star"
	case DoubleStar:
		return "DoubleStar"
	case ColonEqual:
		return "ColonEqual"
	case If:
		return "If"
	case Else:
		return "Else"
	case In:
		return "In"
	case As:
		return "As"
	case For:
		return "For"
	case Def:
		return "Def"
	case Class:
		return "Class"
	case Newline:
		return "Newline"
	case Whitespace:
		return "Whitespace"
	case Comment:
		return "Comment"
	case Other:
		return "Other"
	case Bogus:
		return "Bogus"
	default:
		return "Invalid"
	}
}

// SimpleToken is one token produced by the simple token scanner: a kind
// plus the byte range it spans.
type SimpleToken struct {
	Kind SimpleKind
	Rng  Range
}

func (t SimpleToken) Range() Range { return t.Rng }
func (t SimpleToken) Start() Pos   { return t.Rng.Start }
func (t SimpleToken) End() Pos     { return t.Rng.End }

// IsTrivia reports whether a token should be dropped by SkipTrivia:
// whitespace, newlines, and comments.
func (t SimpleToken) IsTrivia() bool {
	switch t.Kind {
	case Whitespace, Newline, Comment:
		return true
	default:
		return false
	}
}
