package cgrammar

// ParseStatement parses one statement, the entry point spec.md §6
// exposes for consumers that want to parse a single statement outside
// a full translation unit (e.g. tooling operating on a code snippet).
func ParseStatement(p *Parser) (Statement, error) {
	return parseStatement(p)
}

func parseCompoundStatement(p *Parser) (*CompoundStatement, error) {
	start := p.Cursor()
	if _, err := p.ExpectPunctuator(PLBrace); err != nil {
		return nil, p.Throw("{}", "expected '{' to open a compound statement", p.Peek().Span)
	}
	cs := &CompoundStatement{}
	for !p.AtPunctuator(PRBrace) && !p.AtEOF() {
		item, err := parseBlockItem(p)
		if err != nil {
			item = p.recoverBlockItem(err)
		}
		if item != nil {
			cs.Items = append(cs.Items, item)
		}
	}
	if _, err := p.ExpectPunctuator(PRBrace); err != nil {
		return nil, p.Throw("{}", "expected '}' to close compound statement", p.Peek().Span)
	}
	cs.baseNode = baseNode{p.spanFrom(start)}
	return cs, nil
}

// recoverBlockItem mirrors recoverExternalDeclaration at block scope:
// skip to the next statement-terminating `;` or a brace and continue,
// so one malformed statement doesn't lose the rest of the block.
func (p *Parser) recoverBlockItem(cause error) BlockItem {
	if cause != nil {
		p.sink.Error(p.Peek().Span, cause.Error())
	}
	start := p.Cursor()
	for !p.AtEOF() {
		if p.AtPunctuator(PSemi) {
			p.pos++
			break
		}
		if p.AtPunctuator(PRBrace) {
			break
		}
		p.pos++
	}
	tokens := append([]Token(nil), p.tokens[start:p.pos]...)
	return &Placeholder{baseNode: baseNode{p.spanFrom(start)}, Tokens: tokens}
}

// parseBlockItem resolves the statement/declaration ambiguity at the
// start of every block item (spec.md §4.D): if the current token can
// start a declaration-specifier list, it is a declaration, otherwise
// a statement. A bare identifier never starts a declaration unless
// the parser's typedef environment says so, which is exactly the
// ambiguity isTypeNameStart already resolves for expressions.
func parseBlockItem(p *Parser) (BlockItem, error) {
	if p.AtKeyword(KwStaticAssert) || p.AtKeyword(KwStaticAssertC23) {
		return parseStaticAssertDeclaration(p)
	}
	if isTypeNameStart(p) && !startsLabeledStatement(p) {
		return parseLocalDeclaration(p)
	}
	stmt, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	return stmt.(BlockItem), nil
}

// startsLabeledStatement distinguishes `identifier:` (a label) from a
// typedef-name being used as a declaration -- a labeled statement's
// identifier is never itself the start of a type, so this only needs
// to check the next token is ':' and the one after is not itself
// part of a bit-field-like construct, which cannot appear here.
func startsLabeledStatement(p *Parser) bool {
	return p.Peek().Kind == TokenIdentifier && p.PeekAt(1).Kind == TokenPunctuator && p.PeekAt(1).Payload.(PunctuatorKind) == PColon
}

func parseLocalDeclaration(p *Parser) (BlockItem, error) {
	start := p.Cursor()
	spec, err := parseDeclarationSpecifiers(p)
	if err != nil {
		return nil, err
	}
	decl := &Declaration{Specifiers: spec}
	if p.AtPunctuator(PSemi) {
		p.pos++
		decl.baseNode = baseNode{p.spanFrom(start)}
		return decl, nil
	}
	for {
		declStart := p.Cursor()
		d, err := parseDeclarator(p, false)
		if err != nil {
			return nil, err
		}
		registerTypedefIfNeeded(p, spec, d)
		init, err := parseOptionalInitializer(p)
		if err != nil {
			return nil, err
		}
		decl.Declarators = append(decl.Declarators, &InitDeclarator{
			baseNode: baseNode{p.spanFrom(declStart)}, Declarator: d, Initializer: init,
		})
		if !p.AtPunctuator(PComma) {
			break
		}
		p.pos++
	}
	if _, err := p.ExpectPunctuator(PSemi); err != nil {
		return nil, p.Throw("declaration", "expected ';' after declaration", p.Peek().Span)
	}
	decl.baseNode = baseNode{p.spanFrom(start)}
	return decl, nil
}

func parseStatement(p *Parser) (Statement, error) {
	start := p.Cursor()
	t := p.Peek()

	if t.Kind == TokenPunctuator && t.Payload.(PunctuatorKind) == PSemi {
		p.pos++
		return &NullStatement{baseNode{p.spanFrom(start)}}, nil
	}
	if t.Kind == TokenSplice {
		if stmt, ok := t.Payload.(Statement); ok {
			p.pos++
			return stmt, nil
		}
	}
	if t.Kind == TokenPunctuator && t.Payload.(PunctuatorKind) == PLBrace {
		p.state.PushBlock(scopeBlock)
		defer p.state.PopBlock()
		return parseCompoundStatement(p)
	}

	if startsLabeledStatement(p) {
		name, _ := p.ExpectIdentifier()
		name.Role = RoleLabel
		p.pos++ // ':'
		var attrs []*AttributeSpecifier
		for p.AtPunctuator(PLAttr) {
			a, err := parseAttributeSpecifier(p)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, a)
		}
		body, err := parseStatement(p)
		if err != nil {
			return nil, err
		}
		return &LabeledStatement{baseNode: baseNode{p.spanFrom(start)}, Label: name, Attributes: attrs, Body: body}, nil
	}

	if t.Kind == TokenKeyword {
		switch t.Payload.(KeywordKind) {
		case KwCase:
			p.pos++
			if !p.state.InSwitch() {
				p.sink.Error(t.Span, "'case' label not within a switch statement")
			}
			value, err := parseConditionalExpression(p)
			if err != nil {
				return nil, err
			}
			if _, err := p.ExpectPunctuator(PColon); err != nil {
				return nil, p.Throw("case", "expected ':' after case expression", p.Peek().Span)
			}
			body, err := parseStatement(p)
			if err != nil {
				return nil, err
			}
			return &CaseStatement{baseNode: baseNode{p.spanFrom(start)}, Value: value, Body: body}, nil

		case KwDefault:
			p.pos++
			if !p.state.InSwitch() {
				p.sink.Error(t.Span, "'default' label not within a switch statement")
			}
			if _, err := p.ExpectPunctuator(PColon); err != nil {
				return nil, p.Throw("default", "expected ':' after default", p.Peek().Span)
			}
			body, err := parseStatement(p)
			if err != nil {
				return nil, err
			}
			return &DefaultStatement{baseNode: baseNode{p.spanFrom(start)}, Body: body}, nil

		case KwIf:
			return parseIfStatement(p, start)
		case KwSwitch:
			return parseSwitchStatement(p, start)
		case KwWhile:
			return parseWhileStatement(p, start)
		case KwDo:
			return parseDoWhileStatement(p, start)
		case KwFor:
			return parseForStatement(p, start)
		case KwGoto:
			p.pos++
			label, err := p.ExpectIdentifier()
			if err != nil {
				return nil, p.Throw("goto", "expected a label after goto", p.Peek().Span)
			}
			label.Role = RoleLabel
			if _, err := p.ExpectPunctuator(PSemi); err != nil {
				return nil, p.Throw("goto", "expected ';' after goto statement", p.Peek().Span)
			}
			return &GotoStatement{baseNode: baseNode{p.spanFrom(start)}, Label: label}, nil
		case KwContinue:
			p.pos++
			if _, err := p.ExpectPunctuator(PSemi); err != nil {
				return nil, p.Throw("continue", "expected ';' after continue", p.Peek().Span)
			}
			return &ContinueStatement{baseNode{p.spanFrom(start)}}, nil
		case KwBreak:
			p.pos++
			if _, err := p.ExpectPunctuator(PSemi); err != nil {
				return nil, p.Throw("break", "expected ';' after break", p.Peek().Span)
			}
			return &BreakStatement{baseNode{p.spanFrom(start)}}, nil
		case KwReturn:
			p.pos++
			var value Expression
			if !p.AtPunctuator(PSemi) {
				var err error
				value, err = ParseExpression(p)
				if err != nil {
					return nil, err
				}
			}
			if _, err := p.ExpectPunctuator(PSemi); err != nil {
				return nil, p.Throw("return", "expected ';' after return", p.Peek().Span)
			}
			return &ReturnStatement{baseNode: baseNode{p.spanFrom(start)}, Value: value}, nil
		case KwTry:
			if p.opts.AcceptStatementExtensions {
				p.sink.Warning(t.Span, "'try' statement is a non-standard extension")
				return parseTryStatement(p, start)
			}
		case KwThrow:
			if p.opts.AcceptStatementExtensions {
				p.sink.Warning(t.Span, "'throw' statement is a non-standard extension")
				p.pos++
				var value Expression
				if !p.AtPunctuator(PSemi) {
					var err error
					value, err = ParseExpression(p)
					if err != nil {
						return nil, err
					}
				}
				if _, err := p.ExpectPunctuator(PSemi); err != nil {
					return nil, p.Throw("throw", "expected ';' after throw", p.Peek().Span)
				}
				return &ThrowStatement{baseNode: baseNode{p.spanFrom(start)}, Value: value}, nil
			}
		}
	}

	expr, err := ParseExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectPunctuator(PSemi); err != nil {
		return nil, p.Throw("expression-statement", "expected ';' after expression statement", p.Peek().Span)
	}
	return &ExpressionStatement{baseNode: baseNode{p.spanFrom(start)}, Expr: expr}, nil
}

func parseIfStatement(p *Parser, start int) (Statement, error) {
	p.pos++ // if
	if _, err := p.ExpectPunctuator(PLParen); err != nil {
		return nil, p.Throw("if", "expected '(' after if", p.Peek().Span)
	}
	cond, err := ParseExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectPunctuator(PRParen); err != nil {
		return nil, p.Throw("if", "expected ')' after if condition", p.Peek().Span)
	}
	then, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	var elseStmt Statement
	if p.AtKeyword(KwElse) {
		p.pos++
		elseStmt, err = parseStatement(p)
		if err != nil {
			return nil, err
		}
	}
	return &IfStatement{baseNode: baseNode{p.spanFrom(start)}, Cond: cond, Then: then, Else: elseStmt}, nil
}

func parseSwitchStatement(p *Parser, start int) (Statement, error) {
	p.pos++ // switch
	if _, err := p.ExpectPunctuator(PLParen); err != nil {
		return nil, p.Throw("switch", "expected '(' after switch", p.Peek().Span)
	}
	cond, err := ParseExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectPunctuator(PRParen); err != nil {
		return nil, p.Throw("switch", "expected ')' after switch expression", p.Peek().Span)
	}
	p.state.PushBlock(scopeSwitch)
	defer p.state.PopBlock()
	body, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	return &SwitchStatement{baseNode: baseNode{p.spanFrom(start)}, Cond: cond, Body: body}, nil
}

func parseWhileStatement(p *Parser, start int) (Statement, error) {
	p.pos++ // while
	if _, err := p.ExpectPunctuator(PLParen); err != nil {
		return nil, p.Throw("while", "expected '(' after while", p.Peek().Span)
	}
	cond, err := ParseExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectPunctuator(PRParen); err != nil {
		return nil, p.Throw("while", "expected ')' after while condition", p.Peek().Span)
	}
	p.state.PushBlock(scopeLoop)
	defer p.state.PopBlock()
	body, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	return &WhileStatement{baseNode: baseNode{p.spanFrom(start)}, Cond: cond, Body: body}, nil
}

func parseDoWhileStatement(p *Parser, start int) (Statement, error) {
	p.pos++ // do
	p.state.PushBlock(scopeLoop)
	body, err := parseStatement(p)
	p.state.PopBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(KwWhile); err != nil {
		return nil, p.Throw("do-while", "expected 'while' after do body", p.Peek().Span)
	}
	if _, err := p.ExpectPunctuator(PLParen); err != nil {
		return nil, p.Throw("do-while", "expected '(' after while", p.Peek().Span)
	}
	cond, err := ParseExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectPunctuator(PRParen); err != nil {
		return nil, p.Throw("do-while", "expected ')' after while condition", p.Peek().Span)
	}
	if _, err := p.ExpectPunctuator(PSemi); err != nil {
		return nil, p.Throw("do-while", "expected ';' after do-while statement", p.Peek().Span)
	}
	return &DoWhileStatement{baseNode: baseNode{p.spanFrom(start)}, Body: body, Cond: cond}, nil
}

func parseForStatement(p *Parser, start int) (Statement, error) {
	p.pos++ // for
	if _, err := p.ExpectPunctuator(PLParen); err != nil {
		return nil, p.Throw("for", "expected '(' after for", p.Peek().Span)
	}
	p.state.PushBlock(scopeLoop)
	defer p.state.PopBlock()

	fs := &ForStatement{}
	if p.AtPunctuator(PSemi) {
		p.pos++
	} else if isTypeNameStart(p) {
		item, err := parseLocalDeclaration(p)
		if err != nil {
			return nil, err
		}
		fs.InitDecl = item.(*Declaration)
	} else {
		expr, err := ParseExpression(p)
		if err != nil {
			return nil, err
		}
		fs.InitExpr = expr
		if _, err := p.ExpectPunctuator(PSemi); err != nil {
			return nil, p.Throw("for", "expected ';' after for-loop initializer", p.Peek().Span)
		}
	}

	if !p.AtPunctuator(PSemi) {
		cond, err := ParseExpression(p)
		if err != nil {
			return nil, err
		}
		fs.Cond = cond
	}
	if _, err := p.ExpectPunctuator(PSemi); err != nil {
		return nil, p.Throw("for", "expected ';' after for-loop condition", p.Peek().Span)
	}

	if !p.AtPunctuator(PRParen) {
		post, err := ParseExpression(p)
		if err != nil {
			return nil, err
		}
		fs.Post = post
	}
	if _, err := p.ExpectPunctuator(PRParen); err != nil {
		return nil, p.Throw("for", "expected ')' to close for-loop header", p.Peek().Span)
	}

	body, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	fs.Body = body
	fs.baseNode = baseNode{p.spanFrom(start)}
	return fs, nil
}

// parseTryStatement parses the non-standard try/catch/throw statement
// extension (spec.md §4.D "Statement extensions", §9), accepted only
// when ParserOptions.AcceptStatementExtensions is set.
func parseTryStatement(p *Parser, start int) (Statement, error) {
	p.pos++ // try
	p.state.PushBlock(scopeBlock)
	body, err := parseCompoundStatement(p)
	p.state.PopBlock()
	if err != nil {
		return nil, err
	}
	var catches []*CatchClause
	for p.AtKeyword(KwCatch) {
		catchStart := p.Cursor()
		p.pos++
		if _, err := p.ExpectPunctuator(PLParen); err != nil {
			return nil, p.Throw("catch", "expected '(' after catch", p.Peek().Span)
		}
		var param *ParamDeclaration
		if !p.AtPunctuator(PEllipsis) {
			paramStart := p.Cursor()
			spec, err := parseDeclarationSpecifiers(p)
			if err != nil {
				return nil, err
			}
			decl, _ := parseDeclarator(p, true)
			param = &ParamDeclaration{baseNode: baseNode{p.spanFrom(paramStart)}, Specifiers: spec, Declarator: decl}
		} else {
			p.pos++
		}
		if _, err := p.ExpectPunctuator(PRParen); err != nil {
			return nil, p.Throw("catch", "expected ')' to close catch parameter", p.Peek().Span)
		}
		p.state.PushBlock(scopeBlock)
		catchBody, err := parseCompoundStatement(p)
		p.state.PopBlock()
		if err != nil {
			return nil, err
		}
		catches = append(catches, &CatchClause{baseNode: baseNode{p.spanFrom(catchStart)}, Param: param, Body: catchBody})
	}
	return &TryStatement{baseNode: baseNode{p.spanFrom(start)}, Body: body, Catches: catches}, nil
}
