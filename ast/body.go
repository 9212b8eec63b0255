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

// firstOf and lastOf return nil for an empty body, so callers can compare
// against it with SameOptional without a separate ok flag.
func firstOf(list []Node) Node {
	if len(list) == 0 {
		return nil
	}
	return list[0]
}

func lastOf(list []Node) Node {
	if len(list) == 0 {
		return nil
	}
	return list[len(list)-1]
}

// LastChildInBody returns the last child of the branch of node that would
// render last in source order - for `if`, the last statement of the last
// elif/else clause's body; for `for`/`while`, of the `orelse` if non-empty,
// else of the body; for `try`, of the `finalbody` if non-empty, else of
// `orelse`, else the last ExceptHandler node itself, else the last statement
// of the body; for `match`, the last MatchCase node itself. It reports
// ok=false for node kinds with no indented body at all.
//
// Grounded on placement.rs's `last_child_in_body` (lines 1723-1780).
func LastChildInBody(node Node) (Node, bool) {
	switch n := node.(type) {
	case *StmtFunctionDef:
		return asOk(lastOf(n.Body))
	case *StmtClassDef:
		return asOk(lastOf(n.Body))
	case *StmtWith:
		return asOk(lastOf(n.Body))
	case *MatchCase:
		return asOk(lastOf(n.Body))
	case *ExceptHandler:
		return asOk(lastOf(n.Body))
	case *ElifElseClause:
		return asOk(lastOf(n.Body))

	case *StmtIf:
		if len(n.ElifElseClauses) > 0 {
			return asOk(lastOf(n.ElifElseClauses[len(n.ElifElseClauses)-1].Body))
		}
		return asOk(lastOf(n.Body))

	case *StmtFor:
		if len(n.Orelse) > 0 {
			return asOk(lastOf(n.Orelse))
		}
		return asOk(lastOf(n.Body))
	case *StmtWhile:
		if len(n.Orelse) > 0 {
			return asOk(lastOf(n.Orelse))
		}
		return asOk(lastOf(n.Body))

	case *StmtMatch:
		if len(n.Cases) == 0 {
			return nil, false
		}
		return n.Cases[len(n.Cases)-1], true

	case *StmtTry:
		switch {
		case len(n.Finalbody) > 0:
			return asOk(lastOf(n.Finalbody))
		case len(n.Orelse) > 0:
			return asOk(lastOf(n.Orelse))
		case len(n.Handlers) > 0:
			return n.Handlers[len(n.Handlers)-1], true
		default:
			return asOk(lastOf(n.Body))
		}

	default:
		// Not a node with an indented child body.
		return nil, false
	}
}

func asOk(n Node) (Node, bool) {
	return n, n != nil
}

// IsFirstStatementInBody reports whether statement is the first statement
// in any body belonging to hasBody, including bodies that lack their own
// node (the `else`/`finally` of for/while/try count toward the parent since
// there is no dedicated clause node to attach to).
//
// Grounded on placement.rs's `is_first_statement_in_body` (lines 356-393).
func IsFirstStatementInBody(statement Node, hasBody Node) bool {
	switch n := hasBody.(type) {
	case *StmtFor:
		return SameOptional(statement, firstOf(n.Body)) || SameOptional(statement, firstOf(n.Orelse))
	case *StmtWhile:
		return SameOptional(statement, firstOf(n.Body)) || SameOptional(statement, firstOf(n.Orelse))

	case *StmtTry:
		return SameOptional(statement, firstOf(n.Body)) ||
			SameOptional(statement, firstOf(n.Orelse)) ||
			SameOptional(statement, firstOf(n.Finalbody))

	case *StmtIf:
		return SameOptional(statement, firstOf(n.Body))
	case *ElifElseClause:
		return SameOptional(statement, firstOf(n.Body))
	case *StmtWith:
		return SameOptional(statement, firstOf(n.Body))
	case *ExceptHandler:
		return SameOptional(statement, firstOf(n.Body))
	case *MatchCase:
		return SameOptional(statement, firstOf(n.Body))
	case *StmtFunctionDef:
		return SameOptional(statement, firstOf(n.Body))
	case *StmtClassDef:
		return SameOptional(statement, firstOf(n.Body))

	case *StmtMatch:
		if len(n.Cases) == 0 {
			return false
		}
		return PtrEqual(statement, n.Cases[0])

	default:
		return false
	}
}

// IsFirstStatementInAlternateBody reports whether statement is the first
// statement of an *alternate* branch of hasBody specifically (the `else` of
// for/while, the first handler or the else/finally of try, or the first
// elif/else clause of if) - never the primary body.
//
// Grounded on placement.rs's `is_first_statement_in_alternate_body` (lines
// 1782-1806).
func IsFirstStatementInAlternateBody(statement Node, hasBody Node) bool {
	switch n := hasBody.(type) {
	case *StmtFor:
		return SameOptional(statement, firstOf(n.Orelse))
	case *StmtWhile:
		return SameOptional(statement, firstOf(n.Orelse))

	case *StmtTry:
		if len(n.Handlers) > 0 && PtrEqual(statement, n.Handlers[0]) {
			return true
		}
		return SameOptional(statement, firstOf(n.Orelse)) || SameOptional(statement, firstOf(n.Finalbody))

	case *StmtIf:
		if len(n.ElifElseClauses) == 0 {
			return false
		}
		return PtrEqual(statement, n.ElifElseClauses[0])

	default:
		return false
	}
}
