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

// Package source wraps the original, immutable source buffer of a single
// formatting run and answers the byte-range and indentation queries the
// placement rules need. It plays the part the teacher's cue/token.File
// plays for a compiler front end, simplified to a read-only view over one
// buffer - this engine never needs the multi-file position registry a
// real compiler does (spec.md §4.1, §5).
package source

import (
	"strings"

	"github.com/jacobvoss/pycommentplace/ast"
	"github.com/jacobvoss/pycommentplace/token"
)

// Locator is a read-only view over one source buffer.
type Locator struct {
	src []byte
}

// New wraps src. src is borrowed for the lifetime of the Locator; the
// Locator never mutates or copies it beyond taking byte slices.
func New(src []byte) *Locator {
	return &Locator{src: src}
}

// Contents returns the entire source buffer.
func (l *Locator) Contents() []byte {
	return l.src
}

// Slice returns the bytes in the half-open range r. A range that falls
// outside the buffer is clamped rather than panicking - callers compute
// ranges from trusted node/comment positions, but defensive clamping keeps
// a slightly-off-by-one range from crashing a formatting run.
func (l *Locator) Slice(r token.Range) []byte {
	start, end := clamp(r, len(l.src))
	return l.src[start:end]
}

func clamp(r token.Range, n int) (int, int) {
	start, end := int(r.Start), int(r.End)
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}

// ContainsLineBreak reports whether r's text contains a newline.
func (l *Locator) ContainsLineBreak(r token.Range) bool {
	return strings.ContainsRune(string(l.Slice(r)), '\n')
}

// Indentation returns the whitespace prefix of the line node starts on,
// but only when node is the first non-whitespace content on that line -
// otherwise ok is false, matching spec.md §4.1's "only when that node is
// the first non-whitespace on its line".
func (l *Locator) Indentation(node ast.Node) ([]byte, bool) {
	return l.IndentationAtOffset(node.Pos())
}

// IndentationAtOffset returns the whitespace prefix of the line containing
// offset, provided offset is itself the first non-whitespace byte on that
// line; ok is false otherwise (e.g. offset sits mid-line).
func (l *Locator) IndentationAtOffset(offset token.Pos) ([]byte, bool) {
	o := int(offset)
	if o < 0 || o > len(l.src) {
		return nil, false
	}
	lineStart := o
	for lineStart > 0 && l.src[lineStart-1] != '\n' {
		lineStart--
	}
	i := lineStart
	for i < o && isSpaceOrTab(l.src[i]) {
		i++
	}
	if i != o {
		// Something other than whitespace precedes offset on its line.
		return nil, false
	}
	return l.src[lineStart:o], true
}

func isSpaceOrTab(b byte) bool {
	return b == ' ' || b == '\t'
}
