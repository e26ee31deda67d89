package cgrammar

// MutableVisitor is the mutating counterpart to Visitor (spec.md
// §4.E "two traits: immutable visitor and mutable visitor"). Each
// method receives a pointer to the interface slot that holds the
// node -- an Expression field, a Statement field, a slice element
// addressed with &slice[i] -- rather than the node itself, so an
// override can replace the subtree by assigning through the pointer:
//
//	func (r *renamer) MutateExpression(slot *Expression) error {
//		if id, ok := (*slot).(*IdentifierExpr); ok && id.Ident.Text == "old" {
//			*slot = &IdentifierExpr{Ident: r.newIdent}
//			return nil
//		}
//		return r.BaseMutableVisitor.MutateExpression(slot)
//	}
//
// The default Walk* functions re-read *slot after every recursive
// call returns, so a replacement performed deeper in the walk is
// observed by the rest of the traversal instead of being overwritten
// by a stale copy -- the "re-fetch the child slot on return" rule
// spec.md §9 calls out as the one hazard of this shape.
type MutableVisitor interface {
	MutateExpression(slot *Expression) error
	MutateStatement(slot *Statement) error
	MutateBlockItem(slot *BlockItem) error
	MutateExternalDeclaration(slot *ExternalDeclaration) error
	MutateInitializer(slot *Initializer) error
	MutateDesignator(slot *Designator) error
}

// BaseMutableVisitor implements every MutableVisitor method as a
// recursive walk that visits every reachable slot without replacing
// anything, the mutable-trait mirror of BaseVisitor. Embedding it and
// overriding only the methods a rewrite cares about leaves every
// other slot walked, but untouched -- so an identity MutableVisitor
// (BaseMutableVisitor alone, no overrides) leaves any AST structurally
// equal to the one it started from, per spec.md §8 "Visitor with
// identity mutation leaves the AST structurally equal".
//
// Self plays the same role here as on BaseVisitor: Go embedding gives
// no virtual dispatch, so a rewrite that overrides only
// MutateExpression would otherwise lose that override the moment
// recursion passes through an unoverridden MutateStatement/
// MutateBlockItem/etc. -- those promoted methods run with their own
// bare BaseMutableVisitor receiver, not the composing type. Wiring
// Self to the composing value once keeps the override reachable from
// every slot in the tree.
type BaseMutableVisitor struct {
	Self MutableVisitor
}

func (b BaseMutableVisitor) self() MutableVisitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b BaseMutableVisitor) MutateExpression(slot *Expression) error {
	return walkMutateExpression(b.self(), slot)
}
func (b BaseMutableVisitor) MutateStatement(slot *Statement) error {
	return walkMutateStatement(b.self(), slot)
}
func (b BaseMutableVisitor) MutateBlockItem(slot *BlockItem) error {
	return walkMutateBlockItem(b.self(), slot)
}
func (b BaseMutableVisitor) MutateExternalDeclaration(slot *ExternalDeclaration) error {
	return walkMutateExternalDeclaration(b.self(), slot)
}
func (b BaseMutableVisitor) MutateInitializer(slot *Initializer) error {
	return walkMutateInitializer(b.self(), slot)
}
func (b BaseMutableVisitor) MutateDesignator(slot *Designator) error {
	return walkMutateDesignator(b.self(), slot)
}

// MutateTranslationUnit walks every external declaration of n through
// v, allowing each to be replaced in place.
func MutateTranslationUnit(v MutableVisitor, n *TranslationUnit) error {
	for i := range n.Declarations {
		if err := v.MutateExternalDeclaration(&n.Declarations[i]); err != nil {
			return err
		}
	}
	return nil
}

func walkMutateExternalDeclaration(v MutableVisitor, slot *ExternalDeclaration) error {
	switch n := (*slot).(type) {
	case *Declaration:
		return mutateInitDeclarators(v, n.Declarators)
	case *StaticAssertDeclaration:
		return v.MutateExpression(&n.Condition)
	case *FunctionDefinition:
		for _, kr := range n.KRDecls {
			if err := mutateInitDeclarators(v, kr.Declarators); err != nil {
				return err
			}
		}
		if n.Body == nil {
			return nil
		}
		var body Statement = n.Body
		if err := v.MutateStatement(&body); err != nil {
			return err
		}
		if cs, ok := body.(*CompoundStatement); ok {
			n.Body = cs
		}
		return nil
	case *Placeholder:
		return nil
	}
	return nil
}

func mutateInitDeclarators(v MutableVisitor, decls []*InitDeclarator) error {
	for _, d := range decls {
		if d.Initializer == nil {
			continue
		}
		if err := v.MutateInitializer(&d.Initializer); err != nil {
			return err
		}
	}
	return nil
}

func walkMutateInitializer(v MutableVisitor, slot *Initializer) error {
	switch n := (*slot).(type) {
	case *ExprInitializer:
		return v.MutateExpression(&n.Value)
	case *ListInitializer:
		for _, item := range n.Items {
			for i := range item.Designators {
				if err := v.MutateDesignator(&item.Designators[i]); err != nil {
					return err
				}
			}
			if item.Value == nil {
				continue
			}
			if err := v.MutateInitializer(&item.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkMutateBlockItem(v MutableVisitor, slot *BlockItem) error {
	if decl, ok := (*slot).(*Declaration); ok {
		return mutateInitDeclarators(v, decl.Declarators)
	}
	if sa, ok := (*slot).(*StaticAssertDeclaration); ok {
		return v.MutateExpression(&sa.Condition)
	}
	var stmt Statement = (*slot).(Statement)
	if err := v.MutateStatement(&stmt); err != nil {
		return err
	}
	*slot = stmt.(BlockItem)
	return nil
}

func walkMutateStatement(v MutableVisitor, slot *Statement) error {
	switch n := (*slot).(type) {
	case *NullStatement, *ContinueStatement, *BreakStatement, *GotoStatement:
		return nil
	case *ExpressionStatement:
		return v.MutateExpression(&n.Expr)
	case *CompoundStatement:
		for i := range n.Items {
			if err := v.MutateBlockItem(&n.Items[i]); err != nil {
				return err
			}
		}
	case *IfStatement:
		if err := v.MutateExpression(&n.Cond); err != nil {
			return err
		}
		if err := v.MutateStatement(&n.Then); err != nil {
			return err
		}
		if n.Else != nil {
			return v.MutateStatement(&n.Else)
		}
	case *SwitchStatement:
		if err := v.MutateExpression(&n.Cond); err != nil {
			return err
		}
		return v.MutateStatement(&n.Body)
	case *WhileStatement:
		if err := v.MutateExpression(&n.Cond); err != nil {
			return err
		}
		return v.MutateStatement(&n.Body)
	case *DoWhileStatement:
		if err := v.MutateStatement(&n.Body); err != nil {
			return err
		}
		return v.MutateExpression(&n.Cond)
	case *ForStatement:
		if n.InitDecl != nil {
			if err := mutateInitDeclarators(v, n.InitDecl.Declarators); err != nil {
				return err
			}
		}
		if n.InitExpr != nil {
			if err := v.MutateExpression(&n.InitExpr); err != nil {
				return err
			}
		}
		if n.Cond != nil {
			if err := v.MutateExpression(&n.Cond); err != nil {
				return err
			}
		}
		if n.Post != nil {
			if err := v.MutateExpression(&n.Post); err != nil {
				return err
			}
		}
		return v.MutateStatement(&n.Body)
	case *ReturnStatement:
		if n.Value != nil {
			return v.MutateExpression(&n.Value)
		}
	case *LabeledStatement:
		return v.MutateStatement(&n.Body)
	case *CaseStatement:
		if err := v.MutateExpression(&n.Value); err != nil {
			return err
		}
		return v.MutateStatement(&n.Body)
	case *DefaultStatement:
		return v.MutateStatement(&n.Body)
	case *TryStatement:
		var body Statement = n.Body
		if err := v.MutateStatement(&body); err != nil {
			return err
		}
		if cs, ok := body.(*CompoundStatement); ok {
			n.Body = cs
		}
		for _, c := range n.Catches {
			var cbody Statement = c.Body
			if err := v.MutateStatement(&cbody); err != nil {
				return err
			}
			if cs, ok := cbody.(*CompoundStatement); ok {
				c.Body = cs
			}
		}
	case *ThrowStatement:
		if n.Value != nil {
			return v.MutateExpression(&n.Value)
		}
	}
	return nil
}

func walkMutateDesignator(v MutableVisitor, slot *Designator) error {
	switch n := (*slot).(type) {
	case *MemberDesignator:
		return nil
	case *IndexDesignator:
		return v.MutateExpression(&n.Index)
	case *RangeDesignator:
		if err := v.MutateExpression(&n.Low); err != nil {
			return err
		}
		return v.MutateExpression(&n.High)
	}
	return nil
}

func walkMutateExpression(v MutableVisitor, slot *Expression) error {
	switch n := (*slot).(type) {
	case *IdentifierExpr, *ConstantExpr, *StringExpr:
		return nil
	case *ParenExpr:
		return v.MutateExpression(&n.Inner)
	case *GenericSelectionExpr:
		if err := v.MutateExpression(&n.Control); err != nil {
			return err
		}
		for _, a := range n.Associations {
			if err := v.MutateExpression(&a.Value); err != nil {
				return err
			}
		}
	case *CallExpr:
		if err := v.MutateExpression(&n.Callee); err != nil {
			return err
		}
		for i := range n.Args {
			if err := v.MutateExpression(&n.Args[i]); err != nil {
				return err
			}
		}
	case *MemberExpr:
		return v.MutateExpression(&n.Base)
	case *IndexExpr:
		if err := v.MutateExpression(&n.Base); err != nil {
			return err
		}
		return v.MutateExpression(&n.Index)
	case *UnaryExpr:
		return v.MutateExpression(&n.Operand)
	case *SizeofExpr:
		if n.Operand != nil {
			return v.MutateExpression(&n.Operand)
		}
	case *AlignofExpr:
		return nil
	case *CastExpr:
		return v.MutateExpression(&n.Operand)
	case *CompoundLiteralExpr:
		var init Initializer = n.Init
		if err := v.MutateInitializer(&init); err != nil {
			return err
		}
		if li, ok := init.(*ListInitializer); ok {
			n.Init = li
		}
	case *BinaryExpr:
		if err := v.MutateExpression(&n.Lhs); err != nil {
			return err
		}
		return v.MutateExpression(&n.Rhs)
	case *ConditionalExpr:
		if err := v.MutateExpression(&n.Cond); err != nil {
			return err
		}
		if err := v.MutateExpression(&n.Then); err != nil {
			return err
		}
		return v.MutateExpression(&n.Else)
	case *AssignExpr:
		if err := v.MutateExpression(&n.Lhs); err != nil {
			return err
		}
		return v.MutateExpression(&n.Rhs)
	case *CommaExpr:
		if err := v.MutateExpression(&n.Lhs); err != nil {
			return err
		}
		return v.MutateExpression(&n.Rhs)
	}
	return nil
}
