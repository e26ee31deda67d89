package cgrammar

import "strings"

// Print renders n back to C source text through the Printer visitor,
// per spec.md §4.E "optional consumer... emit source text with correct
// operator/declarator precedence (minimal parenthesization)". Print is
// not a parse/print round-trip in the literal-bytes sense (comments,
// original spacing, and macro text are not part of the AST), but every
// expression and statement it emits reparses to a structurally
// equivalent tree.
func Print(n Node) string {
	p := newPrinter(0)
	p.writeNode(n)
	return p.out.String()
}

// newPrinter wires Self so any Visit method this type does not
// override (e.g. one added later that still calls p.writeNode on a
// node kind Printer doesn't special-case) keeps dispatching back into
// Printer's own overrides instead of the inherited BaseVisitor default.
func newPrinter(indent int) *Printer {
	p := &Printer{indent: indent}
	p.BaseVisitor.Self = p
	return p
}

// Printer implements Visitor by emitting source text instead of
// counting or collecting; each Visit method writes to an internal
// strings.Builder and drives its own children directly rather than
// delegating to BaseVisitor, since output order and punctuation are
// the whole point of this visitor (spec.md's "visitor-based" printer).
type Printer struct {
	BaseVisitor
	out    strings.Builder
	indent int
}

func (p *Printer) writeNode(n Node) {
	if n == nil {
		return
	}
	_ = n.Accept(p)
}

func (p *Printer) w(s string)  { p.out.WriteString(s) }
func (p *Printer) nl()         { p.out.WriteByte('\n'); p.writeIndent() }
func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.out.WriteString("    ")
	}
}

// --- expression precedence -------------------------------------------------

const (
	precComma = iota
	precAssign
	precConditional
	precLogOr
	precLogAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precCast
	precPostfix
	precPrimary
)

var binOpPrec = map[BinaryOp]int{
	BinLogicalOr:  precLogOr,
	BinLogicalAnd: precLogAnd,
	BinBitOr:      precBitOr,
	BinBitXor:     precBitXor,
	BinBitAnd:     precBitAnd,
	BinEq:         precEquality,
	BinNe:         precEquality,
	BinLt:         precRelational,
	BinGt:         precRelational,
	BinLe:         precRelational,
	BinGe:         precRelational,
	BinShl:        precShift,
	BinShr:        precShift,
	BinAdd:        precAdditive,
	BinSub:        precAdditive,
	BinMul:        precMultiplicative,
	BinDiv:        precMultiplicative,
	BinMod:        precMultiplicative,
}

func exprPrec(e Expression) int {
	switch n := e.(type) {
	case *CommaExpr:
		return precComma
	case *AssignExpr:
		return precAssign
	case *ConditionalExpr:
		return precConditional
	case *BinaryExpr:
		return binOpPrec[n.Op]
	case *CastExpr:
		return precCast
	case *UnaryExpr:
		if n.Postfix {
			return precPostfix
		}
		return precCast
	case *SizeofExpr, *AlignofExpr:
		return precCast
	case *CallExpr, *MemberExpr, *IndexExpr:
		return precPostfix
	default:
		return precPrimary
	}
}

// writeExpr renders e, parenthesizing it only when its own precedence
// is lower than minPrec -- the "minimal parenthesization" spec.md asks
// for, rather than always wrapping compound expressions.
func (p *Printer) writeExpr(e Expression, minPrec int) {
	if e == nil {
		return
	}
	if exprPrec(e) < minPrec {
		p.w("(")
		p.writeNode(e)
		p.w(")")
		return
	}
	p.writeNode(e)
}

// --- expressions -------------------------------------------------------

func (p *Printer) VisitIdentifierExpr(n *IdentifierExpr) error {
	p.w(n.Ident.Text)
	return nil
}

func (p *Printer) VisitConstantExpr(n *ConstantExpr) error {
	p.w(constantText(n.Value))
	return nil
}

func (p *Printer) VisitStringExpr(n *StringExpr) error {
	for _, f := range n.Value.Fragments {
		p.w(f.Prefix)
		p.w("\"")
		p.w(escapeLiteral(f.Value))
		p.w("\"")
	}
	return nil
}

func (p *Printer) VisitParenExpr(n *ParenExpr) error {
	p.w("(")
	p.writeExpr(n.Inner, precComma)
	p.w(")")
	return nil
}

func (p *Printer) VisitGenericSelectionExpr(n *GenericSelectionExpr) error {
	p.w("_Generic(")
	p.writeExpr(n.Control, precAssign)
	for _, a := range n.Associations {
		p.w(", ")
		if a.Default {
			p.w("default")
		} else {
			p.writeNode(a.Type)
		}
		p.w(": ")
		p.writeExpr(a.Value, precAssign)
	}
	p.w(")")
	return nil
}

func (p *Printer) VisitCallExpr(n *CallExpr) error {
	p.writeExpr(n.Callee, precPostfix)
	p.w("(")
	for i, a := range n.Args {
		if i > 0 {
			p.w(", ")
		}
		p.writeExpr(a, precAssign)
	}
	p.w(")")
	return nil
}

func (p *Printer) VisitMemberExpr(n *MemberExpr) error {
	p.writeExpr(n.Base, precPostfix)
	if n.Arrow {
		p.w("->")
	} else {
		p.w(".")
	}
	p.w(n.Name.Text)
	return nil
}

func (p *Printer) VisitIndexExpr(n *IndexExpr) error {
	p.writeExpr(n.Base, precPostfix)
	p.w("[")
	p.writeExpr(n.Index, precComma)
	p.w("]")
	return nil
}

func (p *Printer) VisitUnaryExpr(n *UnaryExpr) error {
	if n.Postfix {
		p.writeExpr(n.Operand, precPostfix)
		p.w(unaryOpText(n.Op))
		return nil
	}
	p.w(unaryOpText(n.Op))
	p.writeExpr(n.Operand, precCast)
	return nil
}

func (p *Printer) VisitSizeofExpr(n *SizeofExpr) error {
	p.w("sizeof")
	if n.Type != nil {
		p.w("(")
		p.writeNode(n.Type)
		p.w(")")
		return nil
	}
	p.w(" ")
	p.writeExpr(n.Operand, precCast)
	return nil
}

func (p *Printer) VisitAlignofExpr(n *AlignofExpr) error {
	p.w("alignof(")
	p.writeNode(n.Type)
	p.w(")")
	return nil
}

func (p *Printer) VisitCastExpr(n *CastExpr) error {
	p.w("(")
	p.writeNode(n.Type)
	p.w(")")
	p.writeExpr(n.Operand, precCast)
	return nil
}

func (p *Printer) VisitCompoundLiteralExpr(n *CompoundLiteralExpr) error {
	p.w("(")
	p.writeNode(n.Type)
	p.w(")")
	p.writeNode(n.Init)
	return nil
}

func (p *Printer) VisitBinaryExpr(n *BinaryExpr) error {
	level := binOpPrec[n.Op]
	p.writeExpr(n.Lhs, level)
	p.w(" ")
	p.w(binaryOpText(n.Op))
	p.w(" ")
	p.writeExpr(n.Rhs, level+1)
	return nil
}

func (p *Printer) VisitConditionalExpr(n *ConditionalExpr) error {
	p.writeExpr(n.Cond, precConditional+1)
	p.w(" ? ")
	p.writeExpr(n.Then, precComma)
	p.w(" : ")
	p.writeExpr(n.Else, precConditional)
	return nil
}

func (p *Printer) VisitAssignExpr(n *AssignExpr) error {
	p.writeExpr(n.Lhs, precAssign+1)
	p.w(" ")
	p.w(assignOpText(n.Op))
	p.w(" ")
	p.writeExpr(n.Rhs, precAssign)
	return nil
}

func (p *Printer) VisitCommaExpr(n *CommaExpr) error {
	p.writeExpr(n.Lhs, precComma)
	p.w(", ")
	p.writeExpr(n.Rhs, precAssign)
	return nil
}

// --- declarations / types -----------------------------------------------

var storageText = map[StorageClass]string{
	StorageTypedef:     "typedef",
	StorageExtern:      "extern",
	StorageStatic:      "static",
	StorageThreadLocal: "thread_local",
	StorageAuto:        "auto",
	StorageRegister:    "register",
	StorageConstexpr:   "constexpr",
}

var basicSpecText = map[BasicTypeSpecifier]string{
	SpecVoid: "void", SpecChar: "char", SpecShort: "short", SpecInt: "int",
	SpecLong: "long", SpecFloat: "float", SpecDouble: "double",
	SpecSigned: "signed", SpecUnsigned: "unsigned", SpecBool: "bool",
	SpecComplex: "_Complex", SpecImaginary: "_Imaginary",
	SpecDecimal32: "_Decimal32", SpecDecimal64: "_Decimal64", SpecDecimal128: "_Decimal128",
}

// specifiersText reconstructs a DeclarationSpecifiers as source text.
// It is a plain function rather than a Visit method because
// DeclarationSpecifiers is not itself a Node (ast_type.go).
func (p *Printer) specifiersText(s DeclarationSpecifiers) string {
	var parts []string
	if text, ok := storageText[s.Storage]; ok {
		parts = append(parts, text)
	}
	if s.Inline {
		parts = append(parts, "inline")
	}
	if s.Noreturn {
		parts = append(parts, "_Noreturn")
	}
	if s.Qualifiers&QualConst != 0 {
		parts = append(parts, "const")
	}
	if s.Qualifiers&QualRestrict != 0 {
		parts = append(parts, "restrict")
	}
	if s.Qualifiers&QualVolatile != 0 {
		parts = append(parts, "volatile")
	}
	if s.Qualifiers&QualAtomic != 0 {
		parts = append(parts, "_Atomic")
	}
	if s.Alignas != nil {
		inner := newPrinter(0)
		if s.Alignas.Expr != nil {
			inner.writeExpr(s.Alignas.Expr, precAssign)
		} else {
			inner.writeNode(s.Alignas.Type)
		}
		parts = append(parts, "alignas("+inner.out.String()+")")
	}
	switch {
	case s.TagType != nil:
		parts = append(parts, p.structOrUnionText(s.TagType))
	case s.EnumType != nil:
		parts = append(parts, p.enumText(s.EnumType))
	case s.TypedefName != nil:
		parts = append(parts, s.TypedefName.Text)
	case s.TypeofExpr != nil:
		inner := newPrinter(0)
		inner.writeExpr(s.TypeofExpr, precAssign)
		name := "typeof"
		if s.TypeofUnqual {
			name = "typeof_unqual"
		}
		parts = append(parts, name+"("+inner.out.String()+")")
	case s.TypeofType != nil:
		inner := newPrinter(0)
		inner.writeNode(s.TypeofType)
		name := "typeof"
		if s.TypeofUnqual {
			name = "typeof_unqual"
		}
		parts = append(parts, name+"("+inner.out.String()+")")
	case s.BitIntWidth != nil:
		inner := newPrinter(0)
		inner.writeExpr(s.BitIntWidth, precAssign)
		parts = append(parts, "_BitInt("+inner.out.String()+")")
	}
	for _, b := range s.Basic {
		if text, ok := basicSpecText[b]; ok {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

func (p *Printer) structOrUnionText(s *StructOrUnionSpecifier) string {
	kw := "struct"
	if s.IsUnion {
		kw = "union"
	}
	if s.Tag != "" && s.Members == nil {
		return kw + " " + s.Tag
	}
	inner := newPrinter(p.indent + 1)
	inner.w(kw)
	if s.Tag != "" {
		inner.w(" " + s.Tag)
	}
	inner.w(" {")
	for _, m := range s.Members {
		inner.nl()
		inner.writeNode(m)
		if m.StaticAssert == nil {
			inner.w(";")
		}
	}
	inner.indent--
	inner.nl()
	inner.w("}")
	return inner.out.String()
}

func (p *Printer) enumText(e *EnumSpecifier) string {
	if e.Tag != "" && e.Enumerators == nil {
		return "enum " + e.Tag
	}
	inner := newPrinter(0)
	inner.w("enum")
	if e.Tag != "" {
		inner.w(" " + e.Tag)
	}
	if e.UnderlyingType != nil {
		inner.w(" : ")
		inner.writeNode(e.UnderlyingType)
	}
	inner.w(" { ")
	for i, en := range e.Enumerators {
		if i > 0 {
			inner.w(", ")
		}
		inner.w(en.Name.Text)
		if en.Value != nil {
			inner.w(" = ")
			inner.writeExpr(en.Value, precAssign)
		}
	}
	inner.w(" }")
	return inner.out.String()
}

// declaratorText reconstructs a (possibly abstract) declarator,
// threading pointers, the parenthesized nested core, and trailing
// array/function suffixes back together in source order.
func (p *Printer) declaratorText(d *Declarator) string {
	if d == nil {
		return ""
	}
	var core string
	switch {
	case d.Nested != nil:
		core = "(" + p.declaratorText(d.Nested) + ")"
	case d.Name != nil:
		core = d.Name.Text
	}
	var ptr strings.Builder
	for _, pl := range d.Pointers {
		ptr.WriteString("*")
		if pl.Qualifiers&QualConst != 0 {
			ptr.WriteString("const ")
		}
		if pl.Qualifiers&QualRestrict != 0 {
			ptr.WriteString("restrict ")
		}
		if pl.Qualifiers&QualVolatile != 0 {
			ptr.WriteString("volatile ")
		}
		if pl.Qualifiers&QualAtomic != 0 {
			ptr.WriteString("_Atomic ")
		}
	}
	var suf strings.Builder
	for _, s := range d.Suffixes {
		switch s.Kind {
		case suffixArray:
			suf.WriteString("[")
			if s.ArrayStatic {
				suf.WriteString("static ")
			}
			if s.ArrayQualifiers&QualConst != 0 {
				suf.WriteString("const ")
			}
			switch {
			case s.ArrayVLAStar:
				suf.WriteString("*")
			case s.ArraySize != nil:
				inner := newPrinter(0)
				inner.writeExpr(s.ArraySize, precAssign)
				suf.WriteString(inner.out.String())
			}
			suf.WriteString("]")
		case suffixFunction:
			suf.WriteString("(")
			if len(s.KRNames) > 0 {
				for i, id := range s.KRNames {
					if i > 0 {
						suf.WriteString(", ")
					}
					suf.WriteString(id.Text)
				}
			} else {
				for i, param := range s.Params {
					if i > 0 {
						suf.WriteString(", ")
					}
					suf.WriteString(p.paramText(param))
				}
				if s.Variadic {
					if len(s.Params) > 0 {
						suf.WriteString(", ")
					}
					suf.WriteString("...")
				}
			}
			suf.WriteString(")")
		}
	}
	return ptr.String() + core + suf.String()
}

func (p *Printer) paramText(pd *ParamDeclaration) string {
	spec := p.specifiersText(pd.Specifiers)
	decl := p.declaratorText(pd.Declarator)
	if decl == "" {
		return spec
	}
	return spec + " " + decl
}

func (p *Printer) VisitAlignmentSpecifier(n *AlignmentSpecifier) error {
	p.w("alignas(")
	if n.Expr != nil {
		p.writeExpr(n.Expr, precAssign)
	} else {
		p.writeNode(n.Type)
	}
	p.w(")")
	return nil
}

func (p *Printer) VisitStructOrUnionSpecifier(n *StructOrUnionSpecifier) error {
	p.w(p.structOrUnionText(n))
	return nil
}

func (p *Printer) VisitEnumSpecifier(n *EnumSpecifier) error {
	p.w(p.enumText(n))
	return nil
}

func (p *Printer) VisitMemberDeclaration(n *MemberDeclaration) error {
	if n.StaticAssert != nil {
		p.writeNode(n.StaticAssert)
		return nil
	}
	spec := p.specifiersText(n.Specifiers)
	p.w(spec)
	for i, d := range n.Declarators {
		if i == 0 {
			p.w(" ")
		} else {
			p.w(", ")
		}
		if d.Declarator != nil {
			p.w(p.declaratorText(d.Declarator))
		}
		if d.Width != nil {
			p.w(" : ")
			p.writeExpr(d.Width, precConditional)
		}
	}
	return nil
}

func (p *Printer) VisitDeclarator(n *Declarator) error {
	p.w(p.declaratorText(n))
	return nil
}

func (p *Printer) VisitTypeName(n *TypeName) error {
	p.w(p.specifiersText(n.Specifiers))
	if decl := p.declaratorText(n.Declarator); decl != "" {
		p.w(" " + decl)
	}
	return nil
}

func (p *Printer) VisitDeclaration(n *Declaration) error {
	p.w(p.specifiersText(n.Specifiers))
	for i, d := range n.Declarators {
		if i == 0 {
			p.w(" ")
		} else {
			p.w(", ")
		}
		p.w(p.declaratorText(d.Declarator))
		if d.Initializer != nil {
			p.w(" = ")
			p.writeNode(d.Initializer)
		}
	}
	p.w(";")
	return nil
}

func (p *Printer) VisitExprInitializer(n *ExprInitializer) error {
	p.writeExpr(n.Value, precAssign)
	return nil
}

func (p *Printer) VisitListInitializer(n *ListInitializer) error {
	p.w("{ ")
	for i, item := range n.Items {
		if i > 0 {
			p.w(", ")
		}
		p.writeNode(item)
	}
	p.w(" }")
	return nil
}

func (p *Printer) VisitInitializerListItem(n *InitializerListItem) error {
	for _, d := range n.Designators {
		p.writeNode(d)
	}
	if len(n.Designators) > 0 {
		p.w(" = ")
	}
	p.writeNode(n.Value)
	return nil
}

func (p *Printer) VisitMemberDesignator(n *MemberDesignator) error {
	p.w("." + n.Name.Text)
	return nil
}

func (p *Printer) VisitIndexDesignator(n *IndexDesignator) error {
	p.w("[")
	p.writeExpr(n.Index, precConditional)
	p.w("]")
	return nil
}

func (p *Printer) VisitRangeDesignator(n *RangeDesignator) error {
	p.w("[")
	p.writeExpr(n.Low, precConditional)
	p.w(" ... ")
	p.writeExpr(n.High, precConditional)
	p.w("]")
	return nil
}

func (p *Printer) VisitStaticAssertDeclaration(n *StaticAssertDeclaration) error {
	p.w("static_assert(")
	p.writeExpr(n.Condition, precAssign)
	if n.Message != nil {
		p.w(", \"" + escapeLiteral(n.Message.Text()) + "\"")
	}
	p.w(");")
	return nil
}

func (p *Printer) VisitFunctionDefinition(n *FunctionDefinition) error {
	p.w(p.specifiersText(n.Specifiers))
	p.w(" " + p.declaratorText(n.Declarator) + " ")
	p.writeNode(n.Body)
	return nil
}

func (p *Printer) VisitPlaceholder(n *Placeholder) error {
	p.w("/* unparsed */")
	return nil
}

// --- statements ----------------------------------------------------------

func (p *Printer) VisitNullStatement(n *NullStatement) error {
	p.w(";")
	return nil
}

func (p *Printer) VisitExpressionStatement(n *ExpressionStatement) error {
	p.writeExpr(n.Expr, precComma)
	p.w(";")
	return nil
}

func (p *Printer) VisitCompoundStatement(n *CompoundStatement) error {
	p.w("{")
	p.indent++
	for _, item := range n.Items {
		p.nl()
		p.writeNode(item)
	}
	p.indent--
	if len(n.Items) > 0 {
		p.nl()
	}
	p.w("}")
	return nil
}

func (p *Printer) VisitIfStatement(n *IfStatement) error {
	p.w("if (")
	p.writeExpr(n.Cond, precComma)
	p.w(") ")
	p.writeNode(n.Then)
	if n.Else != nil {
		p.w(" else ")
		p.writeNode(n.Else)
	}
	return nil
}

func (p *Printer) VisitSwitchStatement(n *SwitchStatement) error {
	p.w("switch (")
	p.writeExpr(n.Cond, precComma)
	p.w(") ")
	p.writeNode(n.Body)
	return nil
}

func (p *Printer) VisitWhileStatement(n *WhileStatement) error {
	p.w("while (")
	p.writeExpr(n.Cond, precComma)
	p.w(") ")
	p.writeNode(n.Body)
	return nil
}

func (p *Printer) VisitDoWhileStatement(n *DoWhileStatement) error {
	p.w("do ")
	p.writeNode(n.Body)
	p.w(" while (")
	p.writeExpr(n.Cond, precComma)
	p.w(");")
	return nil
}

func (p *Printer) VisitForStatement(n *ForStatement) error {
	p.w("for (")
	switch {
	case n.InitDecl != nil:
		p.writeNode(n.InitDecl)
	case n.InitExpr != nil:
		p.writeExpr(n.InitExpr, precComma)
		p.w(";")
	default:
		p.w(";")
	}
	p.w(" ")
	if n.Cond != nil {
		p.writeExpr(n.Cond, precComma)
	}
	p.w("; ")
	if n.Post != nil {
		p.writeExpr(n.Post, precComma)
	}
	p.w(") ")
	p.writeNode(n.Body)
	return nil
}

func (p *Printer) VisitGotoStatement(n *GotoStatement) error {
	p.w("goto " + n.Label.Text + ";")
	return nil
}

func (p *Printer) VisitContinueStatement(n *ContinueStatement) error {
	p.w("continue;")
	return nil
}

func (p *Printer) VisitBreakStatement(n *BreakStatement) error {
	p.w("break;")
	return nil
}

func (p *Printer) VisitReturnStatement(n *ReturnStatement) error {
	p.w("return")
	if n.Value != nil {
		p.w(" ")
		p.writeExpr(n.Value, precComma)
	}
	p.w(";")
	return nil
}

func (p *Printer) VisitLabeledStatement(n *LabeledStatement) error {
	p.w(n.Label.Text + ":")
	p.nl()
	p.writeNode(n.Body)
	return nil
}

func (p *Printer) VisitCaseStatement(n *CaseStatement) error {
	p.w("case ")
	p.writeExpr(n.Value, precConditional)
	p.w(":")
	p.nl()
	p.writeNode(n.Body)
	return nil
}

func (p *Printer) VisitDefaultStatement(n *DefaultStatement) error {
	p.w("default:")
	p.nl()
	p.writeNode(n.Body)
	return nil
}

func (p *Printer) VisitTryStatement(n *TryStatement) error {
	p.w("try ")
	p.writeNode(n.Body)
	for _, c := range n.Catches {
		p.w(" ")
		p.writeNode(c)
	}
	return nil
}

func (p *Printer) VisitCatchClause(n *CatchClause) error {
	p.w("catch (")
	if n.Param != nil {
		p.w(p.paramText(n.Param))
	} else {
		p.w("...")
	}
	p.w(") ")
	p.writeNode(n.Body)
	return nil
}

func (p *Printer) VisitThrowStatement(n *ThrowStatement) error {
	p.w("throw")
	if n.Value != nil {
		p.w(" ")
		p.writeExpr(n.Value, precComma)
	}
	p.w(";")
	return nil
}

func (p *Printer) VisitTranslationUnit(n *TranslationUnit) error {
	for i, d := range n.Declarations {
		if i > 0 {
			p.nl()
			p.nl()
		}
		p.writeNode(d)
	}
	return nil
}
