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

// Package report turns a placer.Table into the self-describing, YAML-
// renderable shape cmd/placedump prints: nodes identified by kind+range
// rather than Go pointer, comments alongside their byte range and literal
// text. The golden tests under comments/testdata do not use it; they check
// placer.Table membership directly.
package report

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jacobvoss/pycommentplace/ast"
	"github.com/jacobvoss/pycommentplace/comments"
	"github.com/jacobvoss/pycommentplace/placer"
	"github.com/jacobvoss/pycommentplace/source"
)

// Entry is one node's comment table.
type Entry struct {
	Node     string   `yaml:"node"`
	Leading  []string `yaml:"leading,omitempty"`
	Trailing []string `yaml:"trailing,omitempty"`
	Dangling []string `yaml:"dangling,omitempty"`
}

// Report is the full dump of a placer.Table.
type Report struct {
	Nodes    []Entry  `yaml:"nodes"`
	Unplaced []string `yaml:"unplaced,omitempty"`
}

// Build walks table's nodes in source-position order and renders each
// one's attached comments into a Report.
func Build(table *placer.Table, loc *source.Locator) Report {
	nodes := table.Nodes()
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Pos() < nodes[j].Pos()
	})

	var r Report
	for _, n := range nodes {
		nc := table.For(n)
		r.Nodes = append(r.Nodes, Entry{
			Node:     describeNode(n),
			Leading:  describeComments(nc.Leading, loc),
			Trailing: describeComments(nc.Trailing, loc),
			Dangling: describeComments(nc.Dangling, loc),
		})
	}
	for _, c := range table.Unplaced {
		r.Unplaced = append(r.Unplaced, fmt.Sprintf("%d:%d %q", c.Start(), c.End(), loc.Slice(c.Range())))
	}
	return r
}

func describeComments(cs []comments.DecoratedComment, loc *source.Locator) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, fmt.Sprintf("%d:%d %q", c.Start(), c.End(), loc.Slice(c.Range())))
	}
	return out
}

func describeNode(n ast.Node) string {
	return fmt.Sprintf("%T@%d:%d", n, n.Pos(), n.End())
}

// YAML renders r as a YAML document, the same encoding `placedump
// --format=yaml` writes through its own yaml.Encoder.
func YAML(r Report) (string, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
