package cgrammar

// Expression is the closed set of expression node kinds, per spec.md
// §3/§4.D "Expressions (primary through assignment, conditional,
// generic-selection)".
type Expression interface {
	Node
	expressionNode()
}

// IdentifierExpr references a previously-declared name; its Role is
// filled in from the Identifier payload once the parser (or a later
// semantic pass) resolves what kind of name it is.
type IdentifierExpr struct {
	baseNode
	Ident *Identifier
}

func (e *IdentifierExpr) Accept(v Visitor) error { return v.VisitIdentifierExpr(e) }
func (e *IdentifierExpr) String() string         { return e.Ident.Text }
func (e *IdentifierExpr) expressionNode()        {}

// ConstantExpr wraps a single Constant token.
type ConstantExpr struct {
	baseNode
	Value *Constant
}

func (e *ConstantExpr) Accept(v Visitor) error { return v.VisitConstantExpr(e) }
func (e *ConstantExpr) String() string         { return "constant" }
func (e *ConstantExpr) expressionNode()        {}

// StringExpr wraps a (possibly concatenated) string-literal run.
type StringExpr struct {
	baseNode
	Value *StringLiterals
}

func (e *StringExpr) Accept(v Visitor) error { return v.VisitStringExpr(e) }
func (e *StringExpr) String() string         { return "string" }
func (e *StringExpr) expressionNode()        {}

// ParenExpr is a parenthesized expression, kept as its own node (not
// collapsed away) so span and pretty-printing round-trip exactly.
type ParenExpr struct {
	baseNode
	Inner Expression
}

func (e *ParenExpr) Accept(v Visitor) error { return v.VisitParenExpr(e) }
func (e *ParenExpr) String() string         { return "paren-expr" }
func (e *ParenExpr) expressionNode()        {}

// GenericAssociation is one `type-name: expr` or `default: expr` arm
// of a `_Generic` selection.
type GenericAssociation struct {
	baseNode
	Type    *TypeName // nil for the `default` arm
	Default bool
	Value   Expression
}

func (g *GenericAssociation) Accept(v Visitor) error { return v.VisitGenericAssociation(g) }
func (g *GenericAssociation) String() string         { return "generic-association" }

// GenericSelectionExpr is `_Generic(control-expr, assoc, assoc, ...)`.
type GenericSelectionExpr struct {
	baseNode
	Control      Expression
	Associations []*GenericAssociation
}

func (e *GenericSelectionExpr) Accept(v Visitor) error { return v.VisitGenericSelectionExpr(e) }
func (e *GenericSelectionExpr) String() string         { return "generic-selection" }
func (e *GenericSelectionExpr) expressionNode()        {}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	baseNode
	Callee Expression
	Args   []Expression
}

func (e *CallExpr) Accept(v Visitor) error { return v.VisitCallExpr(e) }
func (e *CallExpr) String() string         { return "call" }
func (e *CallExpr) expressionNode()        {}

// MemberExpr is `base.member` (Arrow == false) or `base->member`
// (Arrow == true).
type MemberExpr struct {
	baseNode
	Base  Expression
	Name  *Identifier
	Arrow bool
}

func (e *MemberExpr) Accept(v Visitor) error { return v.VisitMemberExpr(e) }
func (e *MemberExpr) String() string         { return "member" }
func (e *MemberExpr) expressionNode()        {}

// IndexExpr is `base[index]`.
type IndexExpr struct {
	baseNode
	Base, Index Expression
}

func (e *IndexExpr) Accept(v Visitor) error { return v.VisitIndexExpr(e) }
func (e *IndexExpr) String() string         { return "index" }
func (e *IndexExpr) expressionNode()        {}

// UnaryOp is the closed set of prefix unary and postfix
// increment/decrement operators sharing the UnaryExpr shape.
type UnaryOp int

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
	UnaryNot
	UnaryLogicalNot
	UnaryAddress
	UnaryDeref
	UnaryPreInc
	UnaryPreDec
	UnaryPostInc
	UnaryPostDec
)

// UnaryExpr covers prefix and postfix unary operators; Postfix
// distinguishes `x++` from `++x`.
type UnaryExpr struct {
	baseNode
	Op      UnaryOp
	Operand Expression
	Postfix bool
}

func (e *UnaryExpr) Accept(v Visitor) error { return v.VisitUnaryExpr(e) }
func (e *UnaryExpr) String() string         { return "unary" }
func (e *UnaryExpr) expressionNode()        {}

// SizeofExpr is `sizeof expr` (Type == nil) or `sizeof(type-name)`
// (Operand == nil).
type SizeofExpr struct {
	baseNode
	Operand Expression
	Type    *TypeName
}

func (e *SizeofExpr) Accept(v Visitor) error { return v.VisitSizeofExpr(e) }
func (e *SizeofExpr) String() string         { return "sizeof" }
func (e *SizeofExpr) expressionNode()        {}

// AlignofExpr is `alignof(type-name)` (`_Alignof` or C23 `alignof`).
type AlignofExpr struct {
	baseNode
	Type *TypeName
}

func (e *AlignofExpr) Accept(v Visitor) error { return v.VisitAlignofExpr(e) }
func (e *AlignofExpr) String() string         { return "alignof" }
func (e *AlignofExpr) expressionNode()        {}

// CastExpr is `(type-name)expr`.
type CastExpr struct {
	baseNode
	Type    *TypeName
	Operand Expression
}

func (e *CastExpr) Accept(v Visitor) error { return v.VisitCastExpr(e) }
func (e *CastExpr) String() string         { return "cast" }
func (e *CastExpr) expressionNode()        {}

// CompoundLiteralExpr is `(type-name){ initializer-list }`.
type CompoundLiteralExpr struct {
	baseNode
	Type *TypeName
	Init *ListInitializer
}

func (e *CompoundLiteralExpr) Accept(v Visitor) error { return v.VisitCompoundLiteralExpr(e) }
func (e *CompoundLiteralExpr) String() string         { return "compound-literal" }
func (e *CompoundLiteralExpr) expressionNode()        {}

// BinaryOp is the closed set of binary operators, from multiplicative
// through logical-or, per the C grammar's precedence ladder.
type BinaryOp int

const (
	BinMul BinaryOp = iota
	BinDiv
	BinMod
	BinAdd
	BinSub
	BinShl
	BinShr
	BinLt
	BinGt
	BinLe
	BinGe
	BinEq
	BinNe
	BinBitAnd
	BinBitXor
	BinBitOr
	BinLogicalAnd
	BinLogicalOr
)

// BinaryExpr is `lhs op rhs`, collapsed from the grammar's chain of
// precedence-level productions into one node carrying the resolved
// operator, since the precedence ladder is an artifact of the
// grammar, not a distinct semantic shape the AST needs to preserve.
type BinaryExpr struct {
	baseNode
	Op       BinaryOp
	Lhs, Rhs Expression
}

func (e *BinaryExpr) Accept(v Visitor) error { return v.VisitBinaryExpr(e) }
func (e *BinaryExpr) String() string         { return "binary" }
func (e *BinaryExpr) expressionNode()        {}

// ConditionalExpr is `cond ? then : else`.
type ConditionalExpr struct {
	baseNode
	Cond, Then, Else Expression
}

func (e *ConditionalExpr) Accept(v Visitor) error { return v.VisitConditionalExpr(e) }
func (e *ConditionalExpr) String() string         { return "conditional" }
func (e *ConditionalExpr) expressionNode()        {}

// AssignOp is the closed set of assignment operators, including the
// compound forms.
type AssignOp int

const (
	AssignPlain AssignOp = iota
	AssignMul
	AssignDiv
	AssignMod
	AssignAdd
	AssignSub
	AssignShl
	AssignShr
	AssignAnd
	AssignXor
	AssignOr
)

// AssignExpr is `lhs op= rhs`.
type AssignExpr struct {
	baseNode
	Op       AssignOp
	Lhs, Rhs Expression
}

func (e *AssignExpr) Accept(v Visitor) error { return v.VisitAssignExpr(e) }
func (e *AssignExpr) String() string         { return "assign" }
func (e *AssignExpr) expressionNode()        {}

// CommaExpr is `lhs, rhs`; chained commas nest to the left,
// `a, b, c` being `(a, b), c`, as the grammar's left-associative
// production dictates.
type CommaExpr struct {
	baseNode
	Lhs, Rhs Expression
}

func (e *CommaExpr) Accept(v Visitor) error { return v.VisitCommaExpr(e) }
func (e *CommaExpr) String() string         { return "comma" }
func (e *CommaExpr) expressionNode()        {}
