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

package commentvisitor

import "github.com/jacobvoss/pycommentplace/ast"

// children returns node's immediate syntactic children, in source order,
// skipping absent (nil) optional slots. This is the traversal table the
// default position-based placement walks to compute enclosing/preceding/
// following for each comment (spec.md §3, §6) - grounded on the depth-first
// shape of cue/ast/walk.go's Walk, but expressed as a flat child-enumeration
// function rather than a visitor callback, since the comment visitor needs
// random access to "children of this node" rather than a push-style walk.
func children(node ast.Node) []ast.Node {
	var out []ast.Node
	add := func(n ast.Node) {
		if n != nil {
			out = append(out, n)
		}
	}
	addAll := func(ns []ast.Node) {
		for _, n := range ns {
			add(n)
		}
	}
	// addIdent guards against the classic typed-nil-interface pitfall: a nil
	// *ast.Identifier boxed into the ast.Node interface is a non-nil
	// interface value, so add()'s `n != nil` check alone would not catch it.
	addIdent := func(id *ast.Identifier) {
		if id != nil {
			add(id)
		}
	}

	switch n := node.(type) {
	case *ast.ModModule:
		addAll(n.Body)

	case *ast.StmtIf:
		add(n.Test)
		addAll(n.Body)
		for _, c := range n.ElifElseClauses {
			add(c)
		}
	case *ast.ElifElseClause:
		add(n.Test)
		addAll(n.Body)

	case *ast.StmtFor:
		add(n.Target)
		add(n.Iter)
		addAll(n.Body)
		addAll(n.Orelse)
	case *ast.StmtWhile:
		add(n.Test)
		addAll(n.Body)
		addAll(n.Orelse)

	case *ast.StmtTry:
		addAll(n.Body)
		for _, h := range n.Handlers {
			add(h)
		}
		addAll(n.Orelse)
		addAll(n.Finalbody)
	case *ast.ExceptHandler:
		add(n.Type)
		addAll(n.Body)

	case *ast.StmtFunctionDef:
		// n.Name is deliberately not a traversed child: like CPython's own
		// ast.FunctionDef.name, it is plain identifier data the decorator
		// rules read directly off the struct (handleLeadingFunctionWithDecoratorsComment
		// needs the comment's following node to resolve to Params, not Name).
		for _, d := range n.Decorators {
			add(d)
		}
		add(n.Params)
		addAll(n.Body)
	case *ast.StmtClassDef:
		// n.Name is excluded from traversal for the same reason as
		// StmtFunctionDef above; handleLeadingClassWithDecoratorsComment
		// reads class.Name.Pos() directly instead.
		for _, d := range n.Decorators {
			add(d)
		}
		addAll(n.Body)
	case *ast.Decorator:
		add(n.Expression)

	case *ast.WithItem:
		add(n.ContextExpr)
		add(n.OptionalVars)
	case *ast.StmtWith:
		for _, item := range n.Items {
			add(item)
		}
		addAll(n.Body)

	case *ast.StmtImportFrom:
		addAll(n.Names)

	case *ast.MatchCase:
		add(n.Pattern)
		add(n.Guard)
		addAll(n.Body)
	case *ast.StmtMatch:
		add(n.Subject)
		for _, c := range n.Cases {
			add(c)
		}

	case *ast.Parameters:
		addAll(n.PosOnly)
		addAll(n.Args)
		addAll(n.KwOnly)
	case *ast.Arguments:
		addAll(n.Args)
		for _, k := range n.Keywords {
			add(k)
		}
	case *ast.Keyword:
		addIdent(n.Arg)
		add(n.Value)
	case *ast.TypeParams:
		addAll(n.Params)

	case *ast.ExprBinOp:
		add(n.Left)
		add(n.Right)
	case *ast.ExprAttribute:
		add(n.Value)
		add(n.Attr)
	case *ast.ExprNamedExpr:
		add(n.Target)
		add(n.Value)
	case *ast.ExprIfExp:
		add(n.Body)
		add(n.Test)
		add(n.Orelse)
	case *ast.ExprSlice:
		add(n.Lower)
		add(n.Upper)
		add(n.Step)
	case *ast.ExprSubscript:
		add(n.Value)
		add(n.Slice)
	case *ast.ExprStarred:
		add(n.Value)
	case *ast.ExprCall:
		add(n.Func)
		add(n.Args)
	case *ast.ExprDict:
		for i := range n.Keys {
			add(n.Keys[i])
			add(n.Values[i])
		}
	case *ast.ExprList:
		addAll(n.Elts)
	case *ast.ExprSet:
		addAll(n.Elts)
	case *ast.ExprTuple:
		addAll(n.Elts)

	case *ast.Comprehension:
		add(n.Target)
		add(n.Iter)
		addAll(n.Ifs)
	case *ast.ExprGeneratorExp:
		add(n.Elt)
		for _, g := range n.Generators {
			add(g)
		}
	case *ast.ExprListComp:
		add(n.Elt)
		for _, g := range n.Generators {
			add(g)
		}
	case *ast.ExprSetComp:
		add(n.Elt)
		for _, g := range n.Generators {
			add(g)
		}
	case *ast.ExprDictComp:
		add(n.Key)
		add(n.Value)
		for _, g := range n.Generators {
			add(g)
		}
	case *ast.ExprFString:
		addAll(n.Values)

	case *ast.PatternArguments:
		addAll(n.Patterns)
		for _, k := range n.Keywords {
			add(k)
		}
	case *ast.PatternMatchClass:
		add(n.Cls)
		add(n.Arguments)
	case *ast.PatternKeyword:
		add(n.Attr)
		add(n.Pattern)
	case *ast.PatternMatchAs:
		add(n.Pattern)
		addIdent(n.Name)
	case *ast.PatternMatchMapping:
		for i := range n.Keys {
			add(n.Keys[i])
			add(n.Patterns[i])
		}
		addIdent(n.Rest)

	default:
		// Identifier, ExprConstant, PatternMatchStar: childless leaves.
	}

	return out
}
