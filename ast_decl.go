package cgrammar

// Declaration is a file-scope or block-scope declaration: one set of
// specifiers shared by zero or more init-declarators, per spec.md §4.D.
// Zero declarators is legal (e.g. a bare `struct Foo { ... };`).
type Declaration struct {
	baseNode
	Specifiers   DeclarationSpecifiers
	Declarators  []*InitDeclarator
}

func (d *Declaration) Accept(v Visitor) error  { return v.VisitDeclaration(d) }
func (d *Declaration) String() string          { return "declaration" }
func (d *Declaration) externalDeclarationNode() {}
func (d *Declaration) blockItemNode()           {}

// InitDeclarator pairs a Declarator with its optional initializer.
type InitDeclarator struct {
	baseNode
	Declarator  *Declarator
	Initializer Initializer // nil if uninitialized
}

func (i *InitDeclarator) Accept(v Visitor) error { return v.VisitInitDeclarator(i) }
func (i *InitDeclarator) String() string         { return "init-declarator" }

// Initializer is the closed choice between a plain expression
// initializer and a brace-enclosed initializer list, per spec.md §4.D
// "Initializers (incl. designated)".
type Initializer interface {
	Node
	initializerNode()
}

// ExprInitializer is `= expr`.
type ExprInitializer struct {
	baseNode
	Value Expression
}

func (e *ExprInitializer) Accept(v Visitor) error { return v.VisitExprInitializer(e) }
func (e *ExprInitializer) String() string         { return "expr-initializer" }
func (e *ExprInitializer) initializerNode()       {}

// ListInitializer is `= { item, item, ... }`, each item optionally
// preceded by one or more designators.
type ListInitializer struct {
	baseNode
	Items []*InitializerListItem
}

func (l *ListInitializer) Accept(v Visitor) error { return v.VisitListInitializer(l) }
func (l *ListInitializer) String() string         { return "list-initializer" }
func (l *ListInitializer) initializerNode()       {}

// InitializerListItem is one designated-or-not entry of a
// ListInitializer.
type InitializerListItem struct {
	baseNode
	Designators []Designator
	Value       Initializer
}

func (i *InitializerListItem) Accept(v Visitor) error { return v.VisitInitializerListItem(i) }
func (i *InitializerListItem) String() string         { return "initializer-list-item" }

// Designator is the closed set of designator forms: `.member`,
// `[index]`, and the non-standard GNU range designator `[lo ... hi]`
// (spec.md §4.D, §9; accepted when ParserOptions.AcceptRangeDesignators
// is set, with a warning diagnostic).
type Designator interface {
	Node
	designatorNode()
}

// MemberDesignator is `.name`.
type MemberDesignator struct {
	baseNode
	Name *Identifier
}

func (m *MemberDesignator) Accept(v Visitor) error { return v.VisitMemberDesignator(m) }
func (m *MemberDesignator) String() string         { return "." + m.Name.Text }
func (m *MemberDesignator) designatorNode()        {}

// IndexDesignator is `[index]`.
type IndexDesignator struct {
	baseNode
	Index Expression
}

func (i *IndexDesignator) Accept(v Visitor) error { return v.VisitIndexDesignator(i) }
func (i *IndexDesignator) String() string         { return "index-designator" }
func (i *IndexDesignator) designatorNode()        {}

// RangeDesignator is the vendor extension `[lo ... hi]`.
type RangeDesignator struct {
	baseNode
	Low, High Expression
}

func (r *RangeDesignator) Accept(v Visitor) error { return v.VisitRangeDesignator(r) }
func (r *RangeDesignator) String() string         { return "range-designator" }
func (r *RangeDesignator) designatorNode()        {}

// StaticAssertDeclaration is `static_assert(expr, "msg")` or the C23
// single-argument form `static_assert(expr)`, usable both at
// declaration scope and as a struct/union member.
type StaticAssertDeclaration struct {
	baseNode
	Condition Expression
	Message   *StringLiterals // nil for the single-argument C23 form
}

func (s *StaticAssertDeclaration) Accept(v Visitor) error { return v.VisitStaticAssertDeclaration(s) }
func (s *StaticAssertDeclaration) String() string         { return "static-assert-declaration" }
func (s *StaticAssertDeclaration) externalDeclarationNode() {}
func (s *StaticAssertDeclaration) blockItemNode()           {}

// FunctionDefinition is a function declarator followed by a compound
// statement body, with optional K&R-style parameter declarations
// between the declarator and the body.
type FunctionDefinition struct {
	baseNode
	Specifiers DeclarationSpecifiers
	Declarator *Declarator
	KRDecls    []*Declaration // pre-ANSI parameter declarations, empty in modern style
	Body       *CompoundStatement
}

func (f *FunctionDefinition) Accept(v Visitor) error  { return v.VisitFunctionDefinition(f) }
func (f *FunctionDefinition) String() string          { return "function-definition" }
func (f *FunctionDefinition) externalDeclarationNode() {}
