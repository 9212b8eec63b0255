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

package ast_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/jacobvoss/pycommentplace/ast"
	"github.com/jacobvoss/pycommentplace/token"
)

func ident(name string, start, end int) *ast.Identifier {
	id := &ast.Identifier{Name: name}
	id.SetRange(token.NewRange(token.Pos(start), token.Pos(end)))
	return id
}

func TestPtrEqual(t *testing.T) {
	a := ident("x", 0, 1)
	b := ident("x", 0, 1)
	qt.Assert(t, qt.IsTrue(ast.PtrEqual(a, a)))
	qt.Assert(t, qt.IsFalse(ast.PtrEqual(a, b)), qt.Commentf("distinct instances with equal ranges must not compare equal"))
	qt.Assert(t, qt.IsTrue(ast.PtrEqual(nil, nil)))
	qt.Assert(t, qt.IsFalse(ast.PtrEqual(a, nil)))
}

func TestSameOptional(t *testing.T) {
	a := ident("x", 0, 1)
	qt.Assert(t, qt.IsTrue(ast.SameOptional(a, a)))
	qt.Assert(t, qt.IsFalse(ast.SameOptional(a, nil)))
}

func TestLastChildInBodyFor(t *testing.T) {
	body0 := &ast.OtherNode{}
	body0.SetRange(token.NewRange(0, 1))
	forStmt := &ast.StmtFor{Body: []ast.Node{body0}}
	forStmt.SetRange(token.NewRange(0, 10))

	last, ok := ast.LastChildInBody(forStmt)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(ast.PtrEqual(last, body0)))

	orelse0 := &ast.OtherNode{}
	orelse0.SetRange(token.NewRange(5, 6))
	forStmt.Orelse = []ast.Node{orelse0}
	last, ok = ast.LastChildInBody(forStmt)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(ast.PtrEqual(last, orelse0)), qt.Commentf("a non-empty orelse wins over body"))
}

func TestLastChildInBodyNoBody(t *testing.T) {
	_, ok := ast.LastChildInBody(ident("x", 0, 1))
	qt.Assert(t, qt.IsFalse(ok))
}

func TestIsFirstStatementInBody(t *testing.T) {
	first := &ast.OtherNode{}
	first.SetRange(token.NewRange(10, 11))
	second := &ast.OtherNode{}
	second.SetRange(token.NewRange(12, 13))
	whileStmt := &ast.StmtWhile{Body: []ast.Node{first, second}}

	qt.Assert(t, qt.IsTrue(ast.IsFirstStatementInBody(first, whileStmt)))
	qt.Assert(t, qt.IsFalse(ast.IsFirstStatementInBody(second, whileStmt)))
}

func TestIsFirstStatementInAlternateBody(t *testing.T) {
	handlerFirst := &ast.OtherNode{}
	handlerFirst.SetRange(token.NewRange(0, 1))
	handler := &ast.ExceptHandler{Body: []ast.Node{handlerFirst}}
	tryStmt := &ast.StmtTry{Handlers: []*ast.ExceptHandler{handler}}

	qt.Assert(t, qt.IsTrue(ast.IsFirstStatementInAlternateBody(handler, tryStmt)))
	qt.Assert(t, qt.IsFalse(ast.IsFirstStatementInBody(handler, tryStmt)), qt.Commentf("a handler is never the primary body"))
}

func TestPredicates(t *testing.T) {
	qt.Assert(t, qt.IsTrue(ast.IsDecorator(&ast.Decorator{})))
	qt.Assert(t, qt.IsTrue(ast.IsParameters(&ast.Parameters{})))
	qt.Assert(t, qt.IsTrue(ast.IsWithItem(&ast.WithItem{})))
	qt.Assert(t, qt.IsTrue(ast.IsNamedExpr(&ast.ExprNamedExpr{})))
	qt.Assert(t, qt.IsTrue(ast.IsModule(&ast.ModModule{})))
	qt.Assert(t, qt.IsTrue(ast.IsPatternMatchAs(&ast.PatternMatchAs{})))
	qt.Assert(t, qt.IsFalse(ast.IsDecorator(&ast.WithItem{})))

	qt.Assert(t, qt.IsTrue(ast.IsAlternativeBranchWithNode(&ast.ExceptHandler{})))
	qt.Assert(t, qt.IsTrue(ast.IsAlternativeBranchWithNode(&ast.ElifElseClause{})))
	qt.Assert(t, qt.IsFalse(ast.IsAlternativeBranchWithNode(&ast.StmtIf{})))
}
