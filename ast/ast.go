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

// Package ast declares the node-handle layer the comment placement engine
// consumes. The syntactic parser producing these nodes, and the node
// definitions it would really use, are an external collaborator (a real
// parser would have far richer node types, attaching symbol tables,
// typed values, and so on) - this package only models the shape the
// placement rules in package comments actually switch on: byte ranges and
// the accessors named in spec.md §4 and §6.
//
// The Node interface is deliberately closed: every concrete type embeds
// baseNode and carries an unexported marker method, so the type switches in
// package comments can be exhaustive the way a Rust match over a closed enum
// is. This mirrors the closed node-interface idiom in
// other_examples/ProjectSerenity-firefly__tools-ruse-ast-ast.go (Node with
// Pos/End plus a private exprNode marker) more closely than it mirrors the
// teacher's own cue/ast, since CUE's grammar has no classes, comprehensions,
// decorators or pattern matching for that package to model.
package ast

import "github.com/jacobvoss/pycommentplace/token"

// Node is implemented by every syntax tree node this engine inspects.
type Node interface {
	token.Ranged
	// Pos returns the first byte of the node.
	Pos() token.Pos
	// End returns the first byte after the node.
	End() token.Pos
	node() // seals the interface to this package's concrete types
}

// baseNode supplies Range/Pos/End to every concrete node type below.
type baseNode struct {
	Rng token.Range
}

func (b baseNode) Range() token.Range { return b.Rng }
func (b baseNode) Pos() token.Pos     { return b.Rng.Start }
func (b baseNode) End() token.Pos     { return b.Rng.End }
func (baseNode) node()                {}

// SetRange sets a node's byte range. A real parser would populate Rng while
// building the tree bottom-up and would never need to mutate it afterward;
// this setter exists so internal/fixture can assemble nodes from a flat
// field-by-field description without this package exposing a bespoke
// constructor function per concrete type.
func (b *baseNode) SetRange(r token.Range) { b.Rng = r }

// PtrEqual reports whether a and b are the same node instance (referential
// identity, per spec.md §3's `ptr_eq`). Two distinct nodes with identical
// ranges are NOT equal under PtrEqual - only identity matters, which is why
// this compares interface values (pointer + type) rather than ranges.
func PtrEqual(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}

// SameOptional reports whether other is non-nil and referentially equal to
// left. other is typically the result of indexing an optional child slot
// (e.g. the first element of a possibly-empty body), where nil means absent.
func SameOptional(left Node, other Node) bool {
	return other != nil && PtrEqual(left, other)
}

// ---------------------------------------------------------------------------
// Identifiers and simple leaves

// Identifier is a bare name: a variable, attribute, keyword argument name,
// or similar.
type Identifier struct {
	baseNode
	Name string
}

// ConstantKind distinguishes the constants the engine must special-case.
type ConstantKind int

const (
	ConstantOther ConstantKind = iota
	ConstantNone
	ConstantTrue
	ConstantFalse
)

// ExprConstant is a literal: a number, string, bytes, or one of the
// three singleton constants. The engine only cares about the singleton
// kind and about whether the constant sits inside an f-string (§4.7.21).
type ExprConstant struct {
	baseNode
	Kind ConstantKind
}

// Decorator wraps a decorator expression (the `@expr` line above a function
// or class definition) so the engine can recognize it with IsDecorator.
type Decorator struct {
	baseNode
	Expression Node
}

// ---------------------------------------------------------------------------
// Module

// ModModule is the root of a source file.
type ModModule struct {
	baseNode
	Body []Node
}

// ---------------------------------------------------------------------------
// Compound statements with bodies

type StmtIf struct {
	baseNode
	Test            Node
	Body            []Node
	ElifElseClauses []*ElifElseClause
}

// ElifElseClause represents one `elif test: body` or final `else: body` of
// an if statement. Unlike the else/finally of for/while/try, this always has
// its own node - ruff's AST unifies if/elif/else into this clause list, and
// this engine follows that model.
type ElifElseClause struct {
	baseNode
	Test Node // nil for a final `else`
	Body []Node
}

type StmtFor struct {
	baseNode
	Target  Node
	Iter    Node
	Body    []Node
	Orelse  []Node // bare statement list; no dedicated node for `else:`
	IsAsync bool
}

type StmtWhile struct {
	baseNode
	Test   Node
	Body   []Node
	Orelse []Node // bare statement list; no dedicated node for `else:`
}

type StmtTry struct {
	baseNode
	Body      []Node
	Handlers  []*ExceptHandler
	Orelse    []Node // bare statement list; no dedicated node for `else:`
	Finalbody []Node // bare statement list; no dedicated node for `finally:`
}

// ExceptHandler is the one branch of try/except that does get its own node.
type ExceptHandler struct {
	baseNode
	Type Node // nil for a bare `except:`
	Name string
	Body []Node
}

type StmtFunctionDef struct {
	baseNode
	Decorators []*Decorator
	Name       *Identifier
	Params     *Parameters
	Body       []Node
}

type StmtClassDef struct {
	baseNode
	Decorators []*Decorator
	Name       *Identifier
	Body       []Node
}

type WithItem struct {
	baseNode
	ContextExpr  Node
	OptionalVars Node // nil if there's no `as`
}

type StmtWith struct {
	baseNode
	Items []*WithItem
	Body  []Node
}

type StmtImportFrom struct {
	baseNode
	Module string
	Names  []Node
}

type MatchCase struct {
	baseNode
	Pattern Node
	Guard   Node // nil if no `if` guard
	Body    []Node
}

type StmtMatch struct {
	baseNode
	Subject Node
	Cases   []*MatchCase
}

// ---------------------------------------------------------------------------
// Parameters, arguments, and keywords

// Parameters is a function definition's (possibly parenthesized) parameter
// list, or a lambda's (never parenthesized) one.
type Parameters struct {
	baseNode
	PosOnly  []Node
	Args     []Node
	KwOnly   []Node
	Parens   bool // true for `def f(...)`, false for `lambda ...:`
}

// Arguments is a call's argument list, `(...)`.
type Arguments struct {
	baseNode
	Args     []Node
	Keywords []*Keyword
}

// Keyword is a `name=value` call argument.
type Keyword struct {
	baseNode
	Arg   *Identifier // nil for a bare `**value` unpacking
	Value Node
}

// TypeParams is a PEP 695 `[T, U]` type parameter list.
type TypeParams struct {
	baseNode
	Params []Node
}

// ---------------------------------------------------------------------------
// Expressions

type ExprBinOp struct {
	baseNode
	Left  Node
	Right Node
}

type ExprAttribute struct {
	baseNode
	Value Node
	Attr  *Identifier
}

type ExprNamedExpr struct {
	baseNode
	Target Node
	Value  Node
}

type ExprIfExp struct {
	baseNode
	Test   Node
	Body   Node
	Orelse Node
}

type ExprSlice struct {
	baseNode
	Lower Node
	Upper Node
	Step  Node
}

type ExprSubscript struct {
	baseNode
	Value Node
	Slice Node
}

type ExprStarred struct {
	baseNode
	Value Node
}

type ExprCall struct {
	baseNode
	Func Node
	Args *Arguments
}

// ExprDict is a dict display; a nil entry in Keys at index i marks a `**value`
// unpacking, whose value lives at Values[i] (mirrors ast.Dict in the real
// grammar).
type ExprDict struct {
	baseNode
	Keys   []Node
	Values []Node
}

type ExprList struct {
	baseNode
	Elts []Node
}

type ExprSet struct {
	baseNode
	Elts []Node
}

type ExprTuple struct {
	baseNode
	Elts        []Node
	Parenthesized bool
}

// Comprehension is one `for target in iter if c1 if c2 ...` clause of a
// comprehension or generator expression.
type Comprehension struct {
	baseNode
	Target  Node
	Iter    Node
	Ifs     []Node
	IsAsync bool
}

type ExprGeneratorExp struct {
	baseNode
	Elt        Node
	Generators []*Comprehension
}

type ExprListComp struct {
	baseNode
	Elt        Node
	Generators []*Comprehension
}

type ExprSetComp struct {
	baseNode
	Elt        Node
	Generators []*Comprehension
}

type ExprDictComp struct {
	baseNode
	Key        Node
	Value      Node
	Generators []*Comprehension
}

// ExprFString is an f-string expression; its constant parts are always
// dangling (§4.7.21).
type ExprFString struct {
	baseNode
	Values []Node
}

// ---------------------------------------------------------------------------
// Patterns (match/case)

type PatternArguments struct {
	baseNode
	Patterns []Node
	Keywords []*PatternKeyword
}

type PatternMatchClass struct {
	baseNode
	Cls       Node
	Arguments *PatternArguments
}

type PatternKeyword struct {
	baseNode
	Attr    *Identifier
	Pattern Node
}

type PatternMatchAs struct {
	baseNode
	Pattern Node // nil for a bare capture `as name`
	Name    *Identifier
}

type PatternMatchStar struct {
	baseNode
	Name string // "" for `*_`
}

// PatternMatchMapping is `case {**rest}` / `case {"k": v, **rest}`.
type PatternMatchMapping struct {
	baseNode
	Keys     []Node
	Patterns []Node
	Rest     *Identifier // nil if there's no `**rest`
}

// ---------------------------------------------------------------------------
// Generic leaf

// OtherNode is a generic leaf standing in for any statement or expression
// node whose internal structure isn't relevant to a given placement rule
// (for example a bare `pass` statement filling out a body, or an opaque
// value expression). Real parser output would never produce this variant -
// it exists only so fixture-built trees (internal/fixture) can populate
// bodies and operand positions without modeling every statement and
// expression kind the language has.
type OtherNode struct {
	baseNode
}
