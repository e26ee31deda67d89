package cgrammar

// Visitor is the closed double-dispatch interface over the AST node
// universe: one method per node kind, mirroring the teacher's
// `grammar_ast_visitor.go` Visitor shape generalized from grammar
// nodes to C translation-unit nodes. Each method returns an error so a
// visitor can abort a walk early (e.g. on the first semantic error)
// without resorting to panic/recover, consistent with this module's
// "nothing panics on malformed input" rule.
type Visitor interface {
	VisitTranslationUnit(n *TranslationUnit) error
	VisitPlaceholder(n *Placeholder) error
	VisitAttribute(n *Attribute) error
	VisitAttributeSpecifier(n *AttributeSpecifier) error
	VisitAlignmentSpecifier(n *AlignmentSpecifier) error
	VisitStructOrUnionSpecifier(n *StructOrUnionSpecifier) error
	VisitMemberDeclaration(n *MemberDeclaration) error
	VisitMemberDeclarator(n *MemberDeclarator) error
	VisitEnumSpecifier(n *EnumSpecifier) error
	VisitEnumerator(n *Enumerator) error
	VisitDeclarator(n *Declarator) error
	VisitTypeName(n *TypeName) error
	VisitParamDeclaration(n *ParamDeclaration) error
	VisitDeclaration(n *Declaration) error
	VisitInitDeclarator(n *InitDeclarator) error
	VisitExprInitializer(n *ExprInitializer) error
	VisitListInitializer(n *ListInitializer) error
	VisitInitializerListItem(n *InitializerListItem) error
	VisitMemberDesignator(n *MemberDesignator) error
	VisitIndexDesignator(n *IndexDesignator) error
	VisitRangeDesignator(n *RangeDesignator) error
	VisitStaticAssertDeclaration(n *StaticAssertDeclaration) error
	VisitFunctionDefinition(n *FunctionDefinition) error

	VisitIdentifierExpr(n *IdentifierExpr) error
	VisitConstantExpr(n *ConstantExpr) error
	VisitStringExpr(n *StringExpr) error
	VisitParenExpr(n *ParenExpr) error
	VisitGenericAssociation(n *GenericAssociation) error
	VisitGenericSelectionExpr(n *GenericSelectionExpr) error
	VisitCallExpr(n *CallExpr) error
	VisitMemberExpr(n *MemberExpr) error
	VisitIndexExpr(n *IndexExpr) error
	VisitUnaryExpr(n *UnaryExpr) error
	VisitSizeofExpr(n *SizeofExpr) error
	VisitAlignofExpr(n *AlignofExpr) error
	VisitCastExpr(n *CastExpr) error
	VisitCompoundLiteralExpr(n *CompoundLiteralExpr) error
	VisitBinaryExpr(n *BinaryExpr) error
	VisitConditionalExpr(n *ConditionalExpr) error
	VisitAssignExpr(n *AssignExpr) error
	VisitCommaExpr(n *CommaExpr) error

	VisitNullStatement(n *NullStatement) error
	VisitExpressionStatement(n *ExpressionStatement) error
	VisitCompoundStatement(n *CompoundStatement) error
	VisitIfStatement(n *IfStatement) error
	VisitSwitchStatement(n *SwitchStatement) error
	VisitWhileStatement(n *WhileStatement) error
	VisitDoWhileStatement(n *DoWhileStatement) error
	VisitForStatement(n *ForStatement) error
	VisitGotoStatement(n *GotoStatement) error
	VisitContinueStatement(n *ContinueStatement) error
	VisitBreakStatement(n *BreakStatement) error
	VisitReturnStatement(n *ReturnStatement) error
	VisitLabeledStatement(n *LabeledStatement) error
	VisitCaseStatement(n *CaseStatement) error
	VisitDefaultStatement(n *DefaultStatement) error
	VisitTryStatement(n *TryStatement) error
	VisitCatchClause(n *CatchClause) error
	VisitThrowStatement(n *ThrowStatement) error

	// The following six hooks are orthogonal to the node-kind
	// dispatch above: every identifier-carrying node routes through
	// one of them according to its SemanticRole instead of forcing a
	// caller who only cares about, say, label references to override
	// VisitGotoStatement, VisitLabeledStatement, and anywhere else a
	// label can appear (spec.md §4.E "Identifier visit methods are
	// semantic-aware").
	VisitVariableReference(id *Identifier) error
	VisitTypeReference(id *Identifier) error
	VisitLabelReference(id *Identifier) error
	VisitMemberReference(id *Identifier) error
	VisitEnumeratorReference(id *Identifier) error
	VisitAttributeNameReference(name string) error
}

// BaseVisitor implements every Visitor method as a recursive walk into
// the node's children, visiting each child via its own Accept call,
// the same "override what you need, inherit the rest" shape as the
// teacher's default Walk*Node functions in `grammar_ast_visitor.go`,
// collapsed here into a single embeddable struct instead of free
// functions. Of a DeclarationSpecifiers, only the struct/union or enum
// specifier of a Declaration is walked; attributes, alignas, typeof and
// _BitInt operands, and the specifiers of function definitions,
// parameters, type names and member declarations are not visited.
//
// Go embedding does not give virtual dispatch: a type that embeds
// BaseVisitor and overrides, say, VisitIdentifierExpr only sees that
// override invoked for nodes reached through methods it also
// overrides -- once recursion passes through a BaseVisitor method the
// embedder left untouched, that method's own receiver (a bare
// BaseVisitor, carrying none of the embedder's overrides) drives the
// rest of the walk. Self closes that gap: an embedder that overrides
// anything must set Self to itself once, after which every default
// method recurses through Self instead of its own receiver, so
// overrides keep firing no matter how deep the unoverridden defaults
// carry the walk.
type BaseVisitor struct {
	Self Visitor
}

// self returns the visitor recursive walks should dispatch through:
// Self if the embedder wired it, otherwise b itself (a plain,
// non-overriding walk).
func (b BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func visitAll(v Visitor, nodes ...Node) error {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := n.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

func (b BaseVisitor) VisitTranslationUnit(n *TranslationUnit) error {
	v := b.self()
	for _, d := range n.Declarations {
		if err := d.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

func (BaseVisitor) VisitPlaceholder(n *Placeholder) error { return nil }
func (b BaseVisitor) VisitAttribute(n *Attribute) error {
	return b.self().VisitAttributeNameReference(n.Name)
}

func (BaseVisitor) VisitVariableReference(id *Identifier) error   { return nil }
func (BaseVisitor) VisitTypeReference(id *Identifier) error       { return nil }
func (BaseVisitor) VisitLabelReference(id *Identifier) error      { return nil }
func (BaseVisitor) VisitMemberReference(id *Identifier) error     { return nil }
func (BaseVisitor) VisitEnumeratorReference(id *Identifier) error { return nil }
func (BaseVisitor) VisitAttributeNameReference(name string) error { return nil }

// dispatchIdentifierRole routes an identifier to the semantic-aware
// hook matching its Role, falling back to VisitVariableReference for
// an unresolved or tag role since this module does not model tags as
// Identifier nodes (spec.md §3 "Identifier" is attached to referencing
// positions; struct/union/enum tags are plain names, not references).
// It takes the Visitor interface directly rather than a BaseVisitor so
// callers can pass b.self() and keep an embedder's override of, say,
// VisitTypeReference reachable from every call site.
func dispatchIdentifierRole(v Visitor, id *Identifier) error {
	if id == nil {
		return nil
	}
	switch id.Role {
	case RoleTypedef:
		return v.VisitTypeReference(id)
	case RoleLabel:
		return v.VisitLabelReference(id)
	case RoleMember:
		return v.VisitMemberReference(id)
	case RoleEnumerator:
		return v.VisitEnumeratorReference(id)
	default:
		return v.VisitVariableReference(id)
	}
}
func (b BaseVisitor) VisitAttributeSpecifier(n *AttributeSpecifier) error {
	v := b.self()
	for _, a := range n.Attributes {
		if err := a.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
func (b BaseVisitor) VisitAlignmentSpecifier(n *AlignmentSpecifier) error {
	return visitAll(b.self(), n.Expr, orNilType(n.Type))
}
func (b BaseVisitor) VisitStructOrUnionSpecifier(n *StructOrUnionSpecifier) error {
	v := b.self()
	for _, m := range n.Members {
		if err := m.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
func (b BaseVisitor) VisitMemberDeclaration(n *MemberDeclaration) error {
	v := b.self()
	if n.StaticAssert != nil {
		return n.StaticAssert.Accept(v)
	}
	for _, d := range n.Declarators {
		if err := d.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
func (b BaseVisitor) VisitMemberDeclarator(n *MemberDeclarator) error {
	return visitAll(b.self(), orNilDeclarator(n.Declarator), n.Width)
}
func (b BaseVisitor) VisitEnumSpecifier(n *EnumSpecifier) error {
	v := b.self()
	for _, e := range n.Enumerators {
		if err := e.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
func (b BaseVisitor) VisitEnumerator(n *Enumerator) error {
	v := b.self()
	if err := dispatchIdentifierRole(v, n.Name); err != nil {
		return err
	}
	return visitAll(v, n.Value)
}
func (b BaseVisitor) VisitDeclarator(n *Declarator) error {
	v := b.self()
	if err := dispatchIdentifierRole(v, n.Name); err != nil {
		return err
	}
	return visitAll(v, orNilDeclarator(n.Nested))
}
func (b BaseVisitor) VisitTypeName(n *TypeName) error {
	return visitAll(b.self(), orNilDeclarator(n.Declarator))
}
func (b BaseVisitor) VisitParamDeclaration(n *ParamDeclaration) error {
	return visitAll(b.self(), orNilDeclarator(n.Declarator))
}
func (b BaseVisitor) VisitDeclaration(n *Declaration) error {
	v := b.self()
	if n.Specifiers.TagType != nil {
		if err := n.Specifiers.TagType.Accept(v); err != nil {
			return err
		}
	}
	if n.Specifiers.EnumType != nil {
		if err := n.Specifiers.EnumType.Accept(v); err != nil {
			return err
		}
	}
	for _, d := range n.Declarators {
		if err := d.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
func (b BaseVisitor) VisitInitDeclarator(n *InitDeclarator) error {
	v := b.self()
	return visitAll(v, n.Declarator, orNilInit(n.Initializer))
}
func (b BaseVisitor) VisitExprInitializer(n *ExprInitializer) error {
	return visitAll(b.self(), n.Value)
}
func (b BaseVisitor) VisitListInitializer(n *ListInitializer) error {
	v := b.self()
	for _, i := range n.Items {
		if err := i.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
func (b BaseVisitor) VisitInitializerListItem(n *InitializerListItem) error {
	v := b.self()
	for _, d := range n.Designators {
		if err := d.Accept(v); err != nil {
			return err
		}
	}
	return visitAll(v, orNilInit(n.Value))
}
func (b BaseVisitor) VisitMemberDesignator(n *MemberDesignator) error {
	return dispatchIdentifierRole(b.self(), n.Name)
}
func (b BaseVisitor) VisitIndexDesignator(n *IndexDesignator) error {
	return visitAll(b.self(), n.Index)
}
func (b BaseVisitor) VisitRangeDesignator(n *RangeDesignator) error {
	return visitAll(b.self(), n.Low, n.High)
}
func (b BaseVisitor) VisitStaticAssertDeclaration(n *StaticAssertDeclaration) error {
	return visitAll(b.self(), n.Condition)
}
func (b BaseVisitor) VisitFunctionDefinition(n *FunctionDefinition) error {
	v := b.self()
	if err := visitAll(v, n.Declarator); err != nil {
		return err
	}
	for _, d := range n.KRDecls {
		if err := d.Accept(v); err != nil {
			return err
		}
	}
	if n.Body != nil {
		return n.Body.Accept(v)
	}
	return nil
}

func (b BaseVisitor) VisitIdentifierExpr(n *IdentifierExpr) error {
	return dispatchIdentifierRole(b.self(), n.Ident)
}
func (BaseVisitor) VisitConstantExpr(n *ConstantExpr) error { return nil }
func (BaseVisitor) VisitStringExpr(n *StringExpr) error     { return nil }
func (b BaseVisitor) VisitParenExpr(n *ParenExpr) error     { return visitAll(b.self(), n.Inner) }
func (b BaseVisitor) VisitGenericAssociation(n *GenericAssociation) error {
	return visitAll(b.self(), n.Value)
}
func (b BaseVisitor) VisitGenericSelectionExpr(n *GenericSelectionExpr) error {
	v := b.self()
	if err := visitAll(v, n.Control); err != nil {
		return err
	}
	for _, a := range n.Associations {
		if err := a.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
func (b BaseVisitor) VisitCallExpr(n *CallExpr) error {
	v := b.self()
	if err := visitAll(v, n.Callee); err != nil {
		return err
	}
	for _, a := range n.Args {
		if err := a.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
func (b BaseVisitor) VisitMemberExpr(n *MemberExpr) error {
	v := b.self()
	if err := dispatchIdentifierRole(v, n.Name); err != nil {
		return err
	}
	return visitAll(v, n.Base)
}
func (b BaseVisitor) VisitIndexExpr(n *IndexExpr) error {
	return visitAll(b.self(), n.Base, n.Index)
}
func (b BaseVisitor) VisitUnaryExpr(n *UnaryExpr) error { return visitAll(b.self(), n.Operand) }
func (b BaseVisitor) VisitSizeofExpr(n *SizeofExpr) error {
	return visitAll(b.self(), n.Operand)
}
func (b BaseVisitor) VisitAlignofExpr(n *AlignofExpr) error { return nil }
func (b BaseVisitor) VisitCastExpr(n *CastExpr) error       { return visitAll(b.self(), n.Operand) }
func (b BaseVisitor) VisitCompoundLiteralExpr(n *CompoundLiteralExpr) error {
	return visitAll(b.self(), n.Init)
}
func (b BaseVisitor) VisitBinaryExpr(n *BinaryExpr) error {
	return visitAll(b.self(), n.Lhs, n.Rhs)
}
func (b BaseVisitor) VisitConditionalExpr(n *ConditionalExpr) error {
	return visitAll(b.self(), n.Cond, n.Then, n.Else)
}
func (b BaseVisitor) VisitAssignExpr(n *AssignExpr) error {
	return visitAll(b.self(), n.Lhs, n.Rhs)
}
func (b BaseVisitor) VisitCommaExpr(n *CommaExpr) error { return visitAll(b.self(), n.Lhs, n.Rhs) }

func (BaseVisitor) VisitNullStatement(n *NullStatement) error { return nil }
func (b BaseVisitor) VisitExpressionStatement(n *ExpressionStatement) error {
	return visitAll(b.self(), n.Expr)
}
func (b BaseVisitor) VisitCompoundStatement(n *CompoundStatement) error {
	v := b.self()
	for _, item := range n.Items {
		if err := item.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
func (b BaseVisitor) VisitIfStatement(n *IfStatement) error {
	v := b.self()
	if err := visitAll(v, n.Cond); err != nil {
		return err
	}
	if err := n.Then.Accept(v); err != nil {
		return err
	}
	return visitAll(v, orNilStmt(n.Else))
}
func (b BaseVisitor) VisitSwitchStatement(n *SwitchStatement) error {
	return visitAll(b.self(), n.Cond, n.Body)
}
func (b BaseVisitor) VisitWhileStatement(n *WhileStatement) error {
	return visitAll(b.self(), n.Cond, n.Body)
}
func (b BaseVisitor) VisitDoWhileStatement(n *DoWhileStatement) error {
	return visitAll(b.self(), n.Body, n.Cond)
}
func (b BaseVisitor) VisitForStatement(n *ForStatement) error {
	v := b.self()
	if n.InitDecl != nil {
		if err := n.InitDecl.Accept(v); err != nil {
			return err
		}
	}
	return visitAll(v, n.InitExpr, n.Cond, n.Post, n.Body)
}
func (b BaseVisitor) VisitGotoStatement(n *GotoStatement) error {
	return dispatchIdentifierRole(b.self(), n.Label)
}
func (BaseVisitor) VisitContinueStatement(n *ContinueStatement) error { return nil }
func (BaseVisitor) VisitBreakStatement(n *BreakStatement) error       { return nil }
func (b BaseVisitor) VisitReturnStatement(n *ReturnStatement) error {
	return visitAll(b.self(), n.Value)
}
func (b BaseVisitor) VisitLabeledStatement(n *LabeledStatement) error {
	v := b.self()
	if err := dispatchIdentifierRole(v, n.Label); err != nil {
		return err
	}
	return visitAll(v, n.Body)
}
func (b BaseVisitor) VisitCaseStatement(n *CaseStatement) error {
	return visitAll(b.self(), n.Value, n.Body)
}
func (b BaseVisitor) VisitDefaultStatement(n *DefaultStatement) error {
	return visitAll(b.self(), n.Body)
}
func (b BaseVisitor) VisitTryStatement(n *TryStatement) error {
	v := b.self()
	if err := visitAll(v, n.Body); err != nil {
		return err
	}
	for _, c := range n.Catches {
		if err := c.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
func (b BaseVisitor) VisitCatchClause(n *CatchClause) error { return visitAll(b.self(), n.Body) }
func (b BaseVisitor) VisitThrowStatement(n *ThrowStatement) error {
	return visitAll(b.self(), n.Value)
}

func orNilType(t *TypeName) Node {
	if t == nil {
		return nil
	}
	return t
}

func orNilDeclarator(d *Declarator) Node {
	if d == nil {
		return nil
	}
	return d
}

func orNilInit(i Initializer) Node {
	if i == nil {
		return nil
	}
	return i
}

func orNilStmt(s Statement) Node {
	if s == nil {
		return nil
	}
	return s
}

// Inspect walks n and every descendant in depth-first order, calling
// fn on each node. fn returns false to prune that node's children
// from the walk, mirroring go/ast.Inspect's shape, which in turn is
// the single-callback counterpart to the teacher's full Visitor
// interface (`grammar_ast_visitor.go:Inspect`) -- convenient when a
// caller wants "find every X" without implementing every method. It
// walks structurally via children() rather than through Visitor, so
// it has no Self-wiring footgun to worry about.
func Inspect(n Node, fn func(Node) bool) {
	ic := &inspector{fn: fn}
	ic.visit(n)
}

type inspector struct {
	fn func(Node) bool
}

// visit drives the inspection with a plain type switch over children
// rather than double dispatch through Accept, the same shape as the
// teacher's own `Inspect` (`grammar_ast_visitor.go`).
func (ic *inspector) visit(n Node) {
	if n == nil || !ic.fn(n) {
		return
	}
	for _, child := range children(n) {
		ic.visit(child)
	}
}

func children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch n := n.(type) {
	case *TranslationUnit:
		for _, d := range n.Declarations {
			add(d)
		}
	case *AttributeSpecifier:
		for _, a := range n.Attributes {
			add(a)
		}
	case *AlignmentSpecifier:
		add(n.Expr)
		add(orNilType(n.Type))
	case *StructOrUnionSpecifier:
		for _, m := range n.Members {
			add(m)
		}
	case *MemberDeclaration:
		if n.StaticAssert != nil {
			add(n.StaticAssert)
		}
		for _, d := range n.Declarators {
			add(d)
		}
	case *MemberDeclarator:
		add(orNilDeclarator(n.Declarator))
		add(n.Width)
	case *EnumSpecifier:
		for _, e := range n.Enumerators {
			add(e)
		}
	case *Enumerator:
		add(n.Value)
	case *Declarator:
		add(orNilDeclarator(n.Nested))
		for _, s := range n.Suffixes {
			for _, p := range s.Params {
				add(p)
			}
		}
	case *TypeName:
		add(orNilDeclarator(n.Declarator))
	case *ParamDeclaration:
		add(orNilDeclarator(n.Declarator))
	case *Declaration:
		for _, d := range n.Declarators {
			add(d)
		}
	case *InitDeclarator:
		add(n.Declarator)
		add(orNilInit(n.Initializer))
	case *ExprInitializer:
		add(n.Value)
	case *ListInitializer:
		for _, i := range n.Items {
			add(i)
		}
	case *InitializerListItem:
		for _, d := range n.Designators {
			add(d)
		}
		add(orNilInit(n.Value))
	case *IndexDesignator:
		add(n.Index)
	case *RangeDesignator:
		add(n.Low)
		add(n.High)
	case *StaticAssertDeclaration:
		add(n.Condition)
	case *FunctionDefinition:
		add(n.Declarator)
		for _, d := range n.KRDecls {
			add(d)
		}
		add(n.Body)
	case *ParenExpr:
		add(n.Inner)
	case *GenericAssociation:
		add(n.Value)
	case *GenericSelectionExpr:
		add(n.Control)
		for _, a := range n.Associations {
			add(a)
		}
	case *CallExpr:
		add(n.Callee)
		for _, a := range n.Args {
			add(a)
		}
	case *MemberExpr:
		add(n.Base)
	case *IndexExpr:
		add(n.Base)
		add(n.Index)
	case *UnaryExpr:
		add(n.Operand)
	case *SizeofExpr:
		add(n.Operand)
	case *CastExpr:
		add(n.Operand)
	case *CompoundLiteralExpr:
		add(n.Init)
	case *BinaryExpr:
		add(n.Lhs)
		add(n.Rhs)
	case *ConditionalExpr:
		add(n.Cond)
		add(n.Then)
		add(n.Else)
	case *AssignExpr:
		add(n.Lhs)
		add(n.Rhs)
	case *CommaExpr:
		add(n.Lhs)
		add(n.Rhs)
	case *ExpressionStatement:
		add(n.Expr)
	case *CompoundStatement:
		for _, i := range n.Items {
			add(i)
		}
	case *IfStatement:
		add(n.Cond)
		add(n.Then)
		add(orNilStmt(n.Else))
	case *SwitchStatement:
		add(n.Cond)
		add(n.Body)
	case *WhileStatement:
		add(n.Cond)
		add(n.Body)
	case *DoWhileStatement:
		add(n.Body)
		add(n.Cond)
	case *ForStatement:
		if n.InitDecl != nil {
			add(n.InitDecl)
		}
		add(n.InitExpr)
		add(n.Cond)
		add(n.Post)
		add(n.Body)
	case *ReturnStatement:
		add(n.Value)
	case *LabeledStatement:
		add(n.Body)
	case *CaseStatement:
		add(n.Value)
		add(n.Body)
	case *DefaultStatement:
		add(n.Body)
	case *TryStatement:
		add(n.Body)
		for _, c := range n.Catches {
			add(c)
		}
	case *CatchClause:
		add(n.Body)
	case *ThrowStatement:
		add(n.Value)
	}
	return out
}
