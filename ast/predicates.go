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

package ast

// IsDecorator reports whether n is a decorator expression wrapper.
func IsDecorator(n Node) bool {
	_, ok := n.(*Decorator)
	return ok
}

// IsParameters reports whether n is a function/lambda parameter list.
func IsParameters(n Node) bool {
	_, ok := n.(*Parameters)
	return ok
}

// IsWithItem reports whether n is a single `with` item (`expr as name`).
func IsWithItem(n Node) bool {
	_, ok := n.(*WithItem)
	return ok
}

// IsNamedExpr reports whether n is a walrus expression `target := value`.
func IsNamedExpr(n Node) bool {
	_, ok := n.(*ExprNamedExpr)
	return ok
}

// IsModule reports whether n is the module root.
func IsModule(n Node) bool {
	_, ok := n.(*ModModule)
	return ok
}

// IsPatternMatchAs reports whether n is a `pattern as name` match pattern.
func IsPatternMatchAs(n Node) bool {
	_, ok := n.(*PatternMatchAs)
	return ok
}

// IsAlternativeBranchWithNode reports whether n is a branch of a compound
// statement that has its own dedicated AST node - an `except` handler or an
// `elif`/final-`else` clause of an if statement - as opposed to the bare
// statement lists used for the `else` of for/while and the `else`/`finally`
// of try, which have no wrapping node at all.
//
// Grounded on placement.rs's `AnyNodeRef::is_alternative_branch_with_node`
// (referenced throughout placement.rs, e.g. lines 513, 523, 547).
func IsAlternativeBranchWithNode(n Node) bool {
	switch n.(type) {
	case *ExceptHandler, *ElifElseClause:
		return true
	default:
		return false
	}
}
