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

// Package token defines the byte-range position type shared by every other
// package in this module. Unlike a compiler front end that reports
// human-facing line/column positions (see the teacher's own cue/token.Pos,
// which tracks a *File registry for exactly that), this engine's data model
// never needs more than an offset into a single immutable source buffer, so
// Pos here is a bare byte offset rather than a handle into a file table.
package token

import "fmt"

// Pos is a byte offset into a source buffer. The zero value refers to the
// start of the buffer; there is no "no position" sentinel distinct from 0,
// because every node and comment produced by a real parser has a concrete
// offset. Callers that need an explicit absence use a *Pos or bool ok return.
type Pos int

// Range is a half-open byte range [Start, End) into a source buffer.
type Range struct {
	Start Pos
	End   Pos
}

// NewRange returns the range [start, end).
func NewRange(start, end Pos) Range {
	return Range{Start: start, End: end}
}

// Len returns the number of bytes spanned by r.
func (r Range) Len() Pos {
	return r.End - r.Start
}

// IsEmpty reports whether r spans zero bytes.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether other lies entirely within r.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// StrictlyContains reports whether other lies within r but is not r itself.
// This is the containment test the spec's "enclosing node" definition (§3)
// requires: the smallest node whose range *strictly* contains the comment.
func (r Range) StrictlyContains(other Range) bool {
	return r.Contains(other) && r != other
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Ranged is implemented by anything with a known byte range: AST nodes,
// comments, and tokens alike.
type Ranged interface {
	Range() Range
}

// Start returns the start offset of a Ranged value.
func Start(r Ranged) Pos { return r.Range().Start }

// End returns the end offset of a Ranged value.
func End(r Ranged) Pos { return r.Range().End }
