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

// Package placer is the top-level façade gluing commentvisitor, comments,
// and source into a single entry point: Run walks a file's comments,
// applies the placement pipeline to each, and accumulates the verdicts into
// a Table keyed by AST node - the per-node leading/trailing/dangling lists
// a pretty-printer consumes (spec.md §6 "Output to the pretty-printer").
// Grounded on the shape of go/printer's ast.CommentMap (see
// other_examples/edisonwsk-golang-on-cygwin__src-pkg-go-printer-nodes.go),
// since cue/format doesn't expose an equivalent package-level struct table
// of its own.
package placer

import (
	"github.com/jacobvoss/pycommentplace/ast"
	"github.com/jacobvoss/pycommentplace/comments"
	"github.com/jacobvoss/pycommentplace/commentvisitor"
	"github.com/jacobvoss/pycommentplace/source"
)

// NodeComments holds the comments attached to one AST node, each list in
// source order (spec.md §8 "Order preservation").
type NodeComments struct {
	Leading  []comments.DecoratedComment
	Trailing []comments.DecoratedComment
	Dangling []comments.DecoratedComment
}

// Table maps every AST node carrying at least one attached comment to its
// NodeComments. Nodes with nothing attached are simply absent - callers
// that need a zero-value lookup should treat a missing key as empty.
type Table struct {
	byNode map[ast.Node]*NodeComments
	// Unplaced holds every comment whose final verdict was Default - the
	// placement pipeline declined to correct the position-based default,
	// so the caller's own nearest-node heuristic must place it (spec.md
	// §3's definition of the Default verdict).
	Unplaced []comments.DecoratedComment
}

// For returns the comments attached to node, or a zero NodeComments if none
// are attached.
func (t *Table) For(node ast.Node) NodeComments {
	if t.byNode == nil {
		return NodeComments{}
	}
	if nc, ok := t.byNode[node]; ok {
		return *nc
	}
	return NodeComments{}
}

// Nodes returns every node the table has comments for. The order is
// unspecified; callers that need source order should walk the AST
// themselves and call For on each node.
func (t *Table) Nodes() []ast.Node {
	nodes := make([]ast.Node, 0, len(t.byNode))
	for n := range t.byNode {
		nodes = append(nodes, n)
	}
	return nodes
}

func (t *Table) entry(node ast.Node) *NodeComments {
	if t.byNode == nil {
		t.byNode = make(map[ast.Node]*NodeComments)
	}
	nc, ok := t.byNode[node]
	if !ok {
		nc = &NodeComments{}
		t.byNode[node] = nc
	}
	return nc
}

// Run is the engine's top-level entry point: it derives the decorated
// comment stream from src and file, places every comment via
// comments.Place, and accumulates the verdicts into a Table.
func Run(src []byte, file *ast.ModModule) *Table {
	loc := source.New(src)
	decorated := commentvisitor.Comments(src, file)

	table := &Table{}
	for _, c := range decorated {
		placement := comments.Place(c, loc)
		switch placement.Kind {
		case comments.Leading:
			entry := table.entry(placement.Node)
			entry.Leading = append(entry.Leading, c)
		case comments.Trailing:
			entry := table.entry(placement.Node)
			entry.Trailing = append(entry.Trailing, c)
		case comments.Dangling:
			entry := table.entry(placement.Node)
			entry.Dangling = append(entry.Dangling, c)
		default:
			table.Unplaced = append(table.Unplaced, c)
		}
	}
	return table
}
