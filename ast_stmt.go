package cgrammar

// Statement is the closed set of statement node kinds, per spec.md
// §4.D "Statements (compound/iteration/selection/jump/labeled/
// expression/try-catch extension)".
type Statement interface {
	Node
	statementNode()
}

// BlockItem is the closed choice a CompoundStatement's body is made
// of: either a Statement or a Declaration, per spec.md §4.D
// "statement/declaration ambiguity" -- the parser decides per item
// by lookahead, not by a separate grammar rule.
type BlockItem interface {
	Node
	blockItemNode()
}

// NullStatement is a bare `;`.
type NullStatement struct{ baseNode }

func (s *NullStatement) Accept(v Visitor) error { return v.VisitNullStatement(s) }
func (s *NullStatement) String() string         { return "null-statement" }
func (s *NullStatement) statementNode()         {}
func (s *NullStatement) blockItemNode()         {}

// ExpressionStatement is `expr;`.
type ExpressionStatement struct {
	baseNode
	Expr Expression
}

func (s *ExpressionStatement) Accept(v Visitor) error { return v.VisitExpressionStatement(s) }
func (s *ExpressionStatement) String() string         { return "expression-statement" }
func (s *ExpressionStatement) statementNode()         {}
func (s *ExpressionStatement) blockItemNode()         {}

// CompoundStatement is `{ item item ... }`.
type CompoundStatement struct {
	baseNode
	Items []BlockItem
}

func (s *CompoundStatement) Accept(v Visitor) error { return v.VisitCompoundStatement(s) }
func (s *CompoundStatement) String() string         { return "compound-statement" }
func (s *CompoundStatement) statementNode()         {}
func (s *CompoundStatement) blockItemNode()         {}

// IfStatement is `if (cond) then [else else]`.
type IfStatement struct {
	baseNode
	Cond       Expression
	Then       Statement
	Else       Statement // nil if absent
}

func (s *IfStatement) Accept(v Visitor) error { return v.VisitIfStatement(s) }
func (s *IfStatement) String() string         { return "if-statement" }
func (s *IfStatement) statementNode()         {}
func (s *IfStatement) blockItemNode()         {}

// SwitchStatement is `switch (cond) body`.
type SwitchStatement struct {
	baseNode
	Cond Expression
	Body Statement
}

func (s *SwitchStatement) Accept(v Visitor) error { return v.VisitSwitchStatement(s) }
func (s *SwitchStatement) String() string         { return "switch-statement" }
func (s *SwitchStatement) statementNode()         {}
func (s *SwitchStatement) blockItemNode()         {}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	baseNode
	Cond Expression
	Body Statement
}

func (s *WhileStatement) Accept(v Visitor) error { return v.VisitWhileStatement(s) }
func (s *WhileStatement) String() string         { return "while-statement" }
func (s *WhileStatement) statementNode()         {}
func (s *WhileStatement) blockItemNode()         {}

// DoWhileStatement is `do body while (cond);`.
type DoWhileStatement struct {
	baseNode
	Body Statement
	Cond Expression
}

func (s *DoWhileStatement) Accept(v Visitor) error { return v.VisitDoWhileStatement(s) }
func (s *DoWhileStatement) String() string         { return "do-while-statement" }
func (s *DoWhileStatement) statementNode()         {}
func (s *DoWhileStatement) blockItemNode()         {}

// ForStatement is `for (init; cond; post) body`. Init may be a
// Declaration or an Expression (C99 `for (int i = 0; ...)`), per
// spec.md's statement/declaration ambiguity carried into the for-loop
// header.
type ForStatement struct {
	baseNode
	InitDecl *Declaration // set instead of InitExpr when the header declares
	InitExpr Expression
	Cond     Expression // nil if omitted
	Post     Expression // nil if omitted
	Body     Statement
}

func (s *ForStatement) Accept(v Visitor) error { return v.VisitForStatement(s) }
func (s *ForStatement) String() string         { return "for-statement" }
func (s *ForStatement) statementNode()         {}
func (s *ForStatement) blockItemNode()         {}

// GotoStatement is `goto label;`.
type GotoStatement struct {
	baseNode
	Label *Identifier
}

func (s *GotoStatement) Accept(v Visitor) error { return v.VisitGotoStatement(s) }
func (s *GotoStatement) String() string         { return "goto-statement" }
func (s *GotoStatement) statementNode()         {}
func (s *GotoStatement) blockItemNode()         {}

// ContinueStatement is `continue;`.
type ContinueStatement struct{ baseNode }

func (s *ContinueStatement) Accept(v Visitor) error { return v.VisitContinueStatement(s) }
func (s *ContinueStatement) String() string         { return "continue-statement" }
func (s *ContinueStatement) statementNode()         {}
func (s *ContinueStatement) blockItemNode()         {}

// BreakStatement is `break;`.
type BreakStatement struct{ baseNode }

func (s *BreakStatement) Accept(v Visitor) error { return v.VisitBreakStatement(s) }
func (s *BreakStatement) String() string         { return "break-statement" }
func (s *BreakStatement) statementNode()         {}
func (s *BreakStatement) blockItemNode()         {}

// ReturnStatement is `return [expr];`.
type ReturnStatement struct {
	baseNode
	Value Expression // nil for a bare `return;`
}

func (s *ReturnStatement) Accept(v Visitor) error { return v.VisitReturnStatement(s) }
func (s *ReturnStatement) String() string         { return "return-statement" }
func (s *ReturnStatement) statementNode()         {}
func (s *ReturnStatement) blockItemNode()         {}

// LabeledStatement is `label: statement`.
type LabeledStatement struct {
	baseNode
	Label *Identifier
	Attributes []*AttributeSpecifier
	Body  Statement
}

func (s *LabeledStatement) Accept(v Visitor) error { return v.VisitLabeledStatement(s) }
func (s *LabeledStatement) String() string         { return "labeled-statement" }
func (s *LabeledStatement) statementNode()         {}
func (s *LabeledStatement) blockItemNode()         {}

// CaseStatement is `case expr: statement`.
type CaseStatement struct {
	baseNode
	Value Expression
	Body  Statement
}

func (s *CaseStatement) Accept(v Visitor) error { return v.VisitCaseStatement(s) }
func (s *CaseStatement) String() string         { return "case-statement" }
func (s *CaseStatement) statementNode()         {}
func (s *CaseStatement) blockItemNode()         {}

// DefaultStatement is `default: statement`.
type DefaultStatement struct {
	baseNode
	Body Statement
}

func (s *DefaultStatement) Accept(v Visitor) error { return v.VisitDefaultStatement(s) }
func (s *DefaultStatement) String() string         { return "default-statement" }
func (s *DefaultStatement) statementNode()         {}
func (s *DefaultStatement) blockItemNode()         {}

// TryStatement is the non-standard `try { ... } catch (decl) { ... }`
// extension (spec.md §4.D "Statement extensions", accepted when
// ParserOptions.AcceptStatementExtensions is set).
type TryStatement struct {
	baseNode
	Body    *CompoundStatement
	Catches []*CatchClause
}

func (s *TryStatement) Accept(v Visitor) error { return v.VisitTryStatement(s) }
func (s *TryStatement) String() string         { return "try-statement" }
func (s *TryStatement) statementNode()         {}
func (s *TryStatement) blockItemNode()         {}

// CatchClause is one `catch (param) { ... }` arm of a TryStatement.
type CatchClause struct {
	baseNode
	Param *ParamDeclaration // nil for a catch-all `catch (...)`
	Body  *CompoundStatement
}

func (c *CatchClause) Accept(v Visitor) error { return v.VisitCatchClause(c) }
func (c *CatchClause) String() string         { return "catch-clause" }

// ThrowStatement is the non-standard `throw [expr];` extension.
type ThrowStatement struct {
	baseNode
	Value Expression // nil for a bare re-throw
}

func (s *ThrowStatement) Accept(v Visitor) error { return v.VisitThrowStatement(s) }
func (s *ThrowStatement) String() string         { return "throw-statement" }
func (s *ThrowStatement) statementNode()         {}
func (s *ThrowStatement) blockItemNode()         {}
