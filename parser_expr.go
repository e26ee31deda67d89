package cgrammar

// ParseExpression parses a full comma-expression, the topmost
// expression grammar rule, per spec.md §4.D "Expressions (primary
// through assignment, conditional, generic-selection)".
func ParseExpression(p *Parser) (Expression, error) {
	start := p.Cursor()
	lhs, err := parseAssignmentExpression(p)
	if err != nil {
		return nil, err
	}
	for p.AtPunctuator(PComma) {
		p.pos++
		rhs, err := parseAssignmentExpression(p)
		if err != nil {
			return nil, err
		}
		lhs = &CommaExpr{baseNode: baseNode{p.spanFrom(start)}, Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

var assignOps = map[PunctuatorKind]AssignOp{
	PEq:        AssignPlain,
	PStarEq:    AssignMul,
	PSlashEq:   AssignDiv,
	PPercentEq: AssignMod,
	PPlusEq:    AssignAdd,
	PMinusEq:   AssignSub,
	PLShiftEq:  AssignShl,
	PRShiftEq:  AssignShr,
	PAmpEq:     AssignAnd,
	PCaretEq:   AssignXor,
	PPipeEq:    AssignOr,
}

// parseAssignmentExpression resolves the grammar's left-factoring
// hazard (a conditional-expression and an assignment's left-hand side
// share an arbitrarily long common prefix) by parsing one conditional
// expression first and only then checking for a following assignment
// operator, instead of trying an assignment production and
// backtracking on failure.
func parseAssignmentExpression(p *Parser) (Expression, error) {
	start := p.Cursor()
	lhs, err := parseConditionalExpression(p)
	if err != nil {
		return nil, err
	}
	t := p.Peek()
	if t.Kind == TokenPunctuator {
		if op, ok := assignOps[t.Payload.(PunctuatorKind)]; ok {
			p.pos++
			rhs, err := parseAssignmentExpression(p)
			if err != nil {
				return nil, err
			}
			return &AssignExpr{baseNode: baseNode{p.spanFrom(start)}, Op: op, Lhs: lhs, Rhs: rhs}, nil
		}
	}
	return lhs, nil
}

func parseConditionalExpression(p *Parser) (Expression, error) {
	start := p.Cursor()
	cond, err := parseBinaryExpression(p, 0)
	if err != nil {
		return nil, err
	}
	if !p.AtPunctuator(PQuestion) {
		return cond, nil
	}
	p.pos++
	then, err := ParseExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectPunctuator(PColon); err != nil {
		return nil, p.Throw("?:", "expected ':' in conditional expression", p.Peek().Span)
	}
	elseExpr, err := parseConditionalExpression(p)
	if err != nil {
		return nil, err
	}
	return &ConditionalExpr{baseNode: baseNode{p.spanFrom(start)}, Cond: cond, Then: then, Else: elseExpr}, nil
}

// binaryPrec gives each binary-operator punctuator its precedence
// level; higher binds tighter. Precedence-climbing collapses the
// grammar's dozen named precedence-level productions (logical-or
// through multiplicative) into one loop, since the AST only needs the
// resolved BinaryExpr shape, not the ladder that produced it.
var binaryPrec = map[PunctuatorKind]int{
	POrOr:    1,
	PAndAnd:  2,
	PPipe:    3,
	PCaret:   4,
	PAmp:     5,
	PEqEq:    6,
	PNe:      6,
	PLt:      7,
	PGt:      7,
	PLe:      7,
	PGe:      7,
	PLShift:  8,
	PRShift:  8,
	PPlus:    9,
	PMinus:   9,
	PStar:    10,
	PSlash:   10,
	PPercent: 10,
}

var binaryOps = map[PunctuatorKind]BinaryOp{
	POrOr:    BinLogicalOr,
	PAndAnd:  BinLogicalAnd,
	PPipe:    BinBitOr,
	PCaret:   BinBitXor,
	PAmp:     BinBitAnd,
	PEqEq:    BinEq,
	PNe:      BinNe,
	PLt:      BinLt,
	PGt:      BinGt,
	PLe:      BinLe,
	PGe:      BinGe,
	PLShift:  BinShl,
	PRShift:  BinShr,
	PPlus:    BinAdd,
	PMinus:   BinSub,
	PStar:    BinMul,
	PSlash:   BinDiv,
	PPercent: BinMod,
}

func parseBinaryExpression(p *Parser, minPrec int) (Expression, error) {
	start := p.Cursor()
	lhs, err := parseCastExpression(p)
	if err != nil {
		return nil, err
	}
	for {
		t := p.Peek()
		if t.Kind != TokenPunctuator {
			break
		}
		kind := t.Payload.(PunctuatorKind)
		prec, ok := binaryPrec[kind]
		if !ok || prec < minPrec {
			break
		}
		p.pos++
		rhs, err := parseBinaryExpression(p, prec+1)
		if err != nil {
			return nil, err
		}
		lhs = &BinaryExpr{baseNode: baseNode{p.spanFrom(start)}, Op: binaryOps[kind], Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

// parseCastExpression resolves the classic `(` ambiguity: a
// parenthesized group beginning with a type-name is a cast, otherwise
// it falls through to a parenthesized primary expression, decided by
// isTypeNameStart peeking at what the parenthesis opens onto (spec.md
// §4.D "declarator/type-name disambiguation").
func parseCastExpression(p *Parser) (Expression, error) {
	if p.AtPunctuator(PLParen) {
		start := p.Cursor()
		save := p.Cursor()
		p.pos++
		if isTypeNameStart(p) {
			typeName, err := parseTypeName(p)
			if err == nil {
				if _, err := p.ExpectPunctuator(PRParen); err == nil {
					if p.AtPunctuator(PLBrace) {
						init, err := parseBraceInitializerList(p)
						if err != nil {
							return nil, err
						}
						return &CompoundLiteralExpr{baseNode: baseNode{p.spanFrom(start)}, Type: typeName, Init: init}, nil
					}
					operand, err := parseCastExpression(p)
					if err != nil {
						return nil, err
					}
					return &CastExpr{baseNode: baseNode{p.spanFrom(start)}, Type: typeName, Operand: operand}, nil
				}
			}
		}
		p.Backtrack(save)
	}
	return parseUnaryExpression(p)
}

var unaryPrefixOps = map[PunctuatorKind]UnaryOp{
	PPlus:  UnaryPlus,
	PMinus: UnaryMinus,
	PTilde: UnaryNot,
	PBang:  UnaryLogicalNot,
	PAmp:   UnaryAddress,
	PStar:  UnaryDeref,
}

func parseUnaryExpression(p *Parser) (Expression, error) {
	start := p.Cursor()
	t := p.Peek()

	if t.Kind == TokenPunctuator {
		kind := t.Payload.(PunctuatorKind)
		if kind == PIncr || kind == PDecr {
			p.pos++
			operand, err := parseUnaryExpression(p)
			if err != nil {
				return nil, err
			}
			op := UnaryPreInc
			if kind == PDecr {
				op = UnaryPreDec
			}
			return &UnaryExpr{baseNode: baseNode{p.spanFrom(start)}, Op: op, Operand: operand}, nil
		}
		if op, ok := unaryPrefixOps[kind]; ok {
			p.pos++
			operand, err := parseCastExpression(p)
			if err != nil {
				return nil, err
			}
			return &UnaryExpr{baseNode: baseNode{p.spanFrom(start)}, Op: op, Operand: operand}, nil
		}
	}

	if t.Kind == TokenKeyword {
		kind := t.Payload.(KeywordKind)
		switch kind {
		case KwSizeof:
			return parseSizeofExpression(p)
		case KwAlignof:
			p.pos++
			return parseAlignofTail(p, start)
		}
	}

	return parsePostfixExpression(p)
}

// parseSizeofExpression resolves `sizeof expr` vs `sizeof(type-name)`
// the same way a cast's opening paren is resolved, since `sizeof(int)`
// and `sizeof(x)` are syntactically identical up to the type-name
// check.
func parseSizeofExpression(p *Parser) (Expression, error) {
	start := p.Cursor()
	p.pos++ // sizeof
	if p.AtPunctuator(PLParen) {
		save := p.Cursor()
		p.pos++
		if isTypeNameStart(p) {
			typeName, err := parseTypeName(p)
			if err == nil {
				if _, err := p.ExpectPunctuator(PRParen); err == nil {
					return &SizeofExpr{baseNode: baseNode{p.spanFrom(start)}, Type: typeName}, nil
				}
			}
		}
		p.Backtrack(save)
	}
	operand, err := parseUnaryExpression(p)
	if err != nil {
		return nil, err
	}
	return &SizeofExpr{baseNode: baseNode{p.spanFrom(start)}, Operand: operand}, nil
}

func parseAlignofTail(p *Parser, start int) (Expression, error) {
	if _, err := p.ExpectPunctuator(PLParen); err != nil {
		return nil, p.Throw("alignof", "expected '(' after alignof", p.Peek().Span)
	}
	typeName, err := parseTypeName(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectPunctuator(PRParen); err != nil {
		return nil, p.Throw("alignof", "expected ')' to close alignof", p.Peek().Span)
	}
	return &AlignofExpr{baseNode: baseNode{p.spanFrom(start)}, Type: typeName}, nil
}

func parsePostfixExpression(p *Parser) (Expression, error) {
	start := p.Cursor()
	expr, err := parsePrimaryExpression(p)
	if err != nil {
		return nil, err
	}
	for {
		t := p.Peek()
		if t.Kind != TokenPunctuator {
			break
		}
		switch t.Payload.(PunctuatorKind) {
		case PLBracket:
			p.pos++
			index, err := ParseExpression(p)
			if err != nil {
				return nil, err
			}
			if _, err := p.ExpectPunctuator(PRBracket); err != nil {
				return nil, p.Throw("[]", "expected ']' to close subscript", p.Peek().Span)
			}
			expr = &IndexExpr{baseNode: baseNode{p.spanFrom(start)}, Base: expr, Index: index}
		case PLParen:
			p.pos++
			args, err := parseArgumentList(p)
			if err != nil {
				return nil, err
			}
			if _, err := p.ExpectPunctuator(PRParen); err != nil {
				return nil, p.Throw("()", "expected ')' to close call", p.Peek().Span)
			}
			expr = &CallExpr{baseNode: baseNode{p.spanFrom(start)}, Callee: expr, Args: args}
		case PDot, PArrow:
			arrow := t.Payload.(PunctuatorKind) == PArrow
			p.pos++
			name, err := p.ExpectIdentifier()
			if err != nil {
				return nil, p.Throw("member", "expected a member name", p.Peek().Span)
			}
			name.Role = RoleMember
			expr = &MemberExpr{baseNode: baseNode{p.spanFrom(start)}, Base: expr, Name: name, Arrow: arrow}
		case PIncr, PDecr:
			op := UnaryPostInc
			if t.Payload.(PunctuatorKind) == PDecr {
				op = UnaryPostDec
			}
			p.pos++
			expr = &UnaryExpr{baseNode: baseNode{p.spanFrom(start)}, Op: op, Operand: expr, Postfix: true}
		default:
			return expr, nil
		}
	}
	return expr, nil
}

func parseArgumentList(p *Parser) ([]Expression, error) {
	if p.AtPunctuator(PRParen) {
		return nil, nil
	}
	var args []Expression
	for {
		arg, err := parseAssignmentExpression(p)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.AtPunctuator(PComma) {
			return args, nil
		}
		p.pos++
	}
}

func parsePrimaryExpression(p *Parser) (Expression, error) {
	start := p.Cursor()
	t := p.Peek()

	switch t.Kind {
	case TokenIdentifier:
		p.pos++
		ident := t.Payload.(*Identifier)
		if ident.Role == RoleUnresolved {
			ident.Role = RoleVariable
		}
		return &IdentifierExpr{baseNode: baseNode{t.Span}, Ident: ident}, nil
	case TokenConstant:
		p.pos++
		return &ConstantExpr{baseNode: baseNode{t.Span}, Value: t.Payload.(*Constant)}, nil
	case TokenStringLiteral:
		return parseStringLiteralRun(p)
	case TokenSplice:
		if expr, ok := t.Payload.(Expression); ok {
			p.pos++
			return expr, nil
		}
	}

	if t.Kind == TokenKeyword && t.Payload.(KeywordKind) == KwGeneric {
		return parseGenericSelection(p)
	}

	if t.Kind == TokenPunctuator && t.Payload.(PunctuatorKind) == PLParen {
		p.pos++
		inner, err := ParseExpression(p)
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectPunctuator(PRParen); err != nil {
			return nil, p.Throw("()", "expected ')' to close parenthesized expression", p.Peek().Span)
		}
		return &ParenExpr{baseNode: baseNode{p.spanFrom(start)}, Inner: inner}, nil
	}

	return nil, p.backtrackErr("expression", "expected an expression", t.Span)
}

// parseStringLiteralRun concatenates adjacent string-literal tokens
// into one StringLiterals node, per spec.md's translation-phase-6
// concatenation rule.
func parseStringLiteralRun(p *Parser) (Expression, error) {
	start := p.Cursor()
	var frags []StringFragment
	for p.Peek().Kind == TokenStringLiteral {
		t := p.Peek()
		frags = append(frags, *t.Payload.(*StringFragment))
		p.pos++
	}
	sp := p.spanFrom(start)
	return &StringExpr{baseNode: baseNode{sp}, Value: &StringLiterals{Fragments: frags, Span: sp}}, nil
}

func parseGenericSelection(p *Parser) (Expression, error) {
	start := p.Cursor()
	p.pos++ // _Generic
	if _, err := p.ExpectPunctuator(PLParen); err != nil {
		return nil, p.Throw("_Generic", "expected '(' after _Generic", p.Peek().Span)
	}
	control, err := parseAssignmentExpression(p)
	if err != nil {
		return nil, err
	}
	var assocs []*GenericAssociation
	for p.AtPunctuator(PComma) {
		p.pos++
		assocStart := p.Cursor()
		if isDefaultKeyword(p.Peek()) {
			p.pos++
			if _, err := p.ExpectPunctuator(PColon); err != nil {
				return nil, p.Throw("_Generic", "expected ':' after default", p.Peek().Span)
			}
			value, err := parseAssignmentExpression(p)
			if err != nil {
				return nil, err
			}
			assocs = append(assocs, &GenericAssociation{baseNode: baseNode{p.spanFrom(assocStart)}, Default: true, Value: value})
			continue
		}
		typeName, err := parseTypeName(p)
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectPunctuator(PColon); err != nil {
			return nil, p.Throw("_Generic", "expected ':' after type-name association", p.Peek().Span)
		}
		value, err := parseAssignmentExpression(p)
		if err != nil {
			return nil, err
		}
		assocs = append(assocs, &GenericAssociation{baseNode: baseNode{p.spanFrom(assocStart)}, Type: typeName, Value: value})
	}
	if _, err := p.ExpectPunctuator(PRParen); err != nil {
		return nil, p.Throw("_Generic", "expected ')' to close _Generic", p.Peek().Span)
	}
	return &GenericSelectionExpr{baseNode: baseNode{p.spanFrom(start)}, Control: control, Associations: assocs}, nil
}

// isDefaultKeyword reports whether t spells the contextual `default`
// keyword used inside a _Generic association list -- the same
// KwDefault token the switch-statement grammar uses, since C has only
// one `default` keyword shared by both contexts.
func isDefaultKeyword(t Token) bool {
	return t.Kind == TokenKeyword && t.Payload.(KeywordKind) == KwDefault
}
