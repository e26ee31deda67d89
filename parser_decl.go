package cgrammar

// ParseTranslationUnit parses a full source file: a sequence of
// external declarations until end of stream, per spec.md §6 top-level
// entry point.
func ParseTranslationUnit(p *Parser) (*TranslationUnit, error) {
	start := p.Cursor()
	var decls []ExternalDeclaration
	for !p.AtEOF() {
		decl, err := parseExternalDeclaration(p)
		if err != nil {
			decl = p.recoverExternalDeclaration(err)
		}
		if decl != nil {
			decls = append(decls, decl)
		}
	}
	return &TranslationUnit{baseNode: baseNode{p.spanFrom(start)}, Declarations: decls}, nil
}

// recoverExternalDeclaration implements spec.md §4.E "Error recovery":
// on an unrecoverable error within one external declaration, skip
// tokens up to the next semicolon or closing brace at file scope (a
// synchronization point) and return a Placeholder so the surrounding
// declarations are still captured in the AST.
func (p *Parser) recoverExternalDeclaration(cause error) ExternalDeclaration {
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

func parseExternalDeclaration(p *Parser) (ExternalDeclaration, error) {
	if p.AtKeyword(KwStaticAssert) || p.AtKeyword(KwStaticAssertC23) {
		return parseStaticAssertDeclaration(p)
	}
	return parseDeclarationOrFunctionDefinition(p, true)
}

func parseStaticAssertDeclaration(p *Parser) (*StaticAssertDeclaration, error) {
	start := p.Cursor()
	p.pos++ // static_assert / _Static_assert
	if _, err := p.ExpectPunctuator(PLParen); err != nil {
		return nil, p.Throw("static_assert", "expected '(' after static_assert", p.Peek().Span)
	}
	cond, err := parseConditionalExpression(p)
	if err != nil {
		return nil, err
	}
	var message *StringLiterals
	if p.AtPunctuator(PComma) {
		p.pos++
		strExpr, err := parseStringLiteralRun(p)
		if err != nil {
			return nil, err
		}
		message = strExpr.(*StringExpr).Value
	}
	if _, err := p.ExpectPunctuator(PRParen); err != nil {
		return nil, p.Throw("static_assert", "expected ')' to close static_assert", p.Peek().Span)
	}
	if _, err := p.ExpectPunctuator(PSemi); err != nil {
		return nil, p.Throw("static_assert", "expected ';' after static_assert", p.Peek().Span)
	}
	return &StaticAssertDeclaration{baseNode: baseNode{p.spanFrom(start)}, Condition: cond, Message: message}, nil
}

// parseDeclarationOrFunctionDefinition parses the shared prefix of a
// declaration and a function definition (declaration-specifiers
// followed by a declarator), then decides which production it is by
// what follows the first declarator: a `{` (or, pre-ANSI, a run of
// K&R parameter declarations then `{`) makes it a FunctionDefinition;
// anything else continues as a plain Declaration's init-declarator
// list (spec.md §4.D "typedef ambiguity ... eager registration").
func parseDeclarationOrFunctionDefinition(p *Parser, topLevel bool) (ExternalDeclaration, error) {
	start := p.Cursor()
	spec, err := parseDeclarationSpecifiers(p)
	if err != nil {
		return nil, err
	}

	if p.AtPunctuator(PSemi) {
		p.pos++
		return &Declaration{baseNode: baseNode{p.spanFrom(start)}, Specifiers: spec}, nil
	}

	firstDeclStart := p.Cursor()
	decl, err := parseDeclarator(p, false)
	if err != nil {
		return nil, err
	}
	registerTypedefIfNeeded(p, spec, decl)

	if topLevel && isFunctionDefinitionTail(p, decl) {
		return parseFunctionDefinitionTail(p, start, spec, decl)
	}

	var declarators []*InitDeclarator
	init, err := parseOptionalInitializer(p)
	if err != nil {
		return nil, err
	}
	declarators = append(declarators, &InitDeclarator{
		baseNode: baseNode{p.spanFrom(firstDeclStart)}, Declarator: decl, Initializer: init,
	})

	for p.AtPunctuator(PComma) {
		p.pos++
		nextStart := p.Cursor()
		nextDecl, err := parseDeclarator(p, false)
		if err != nil {
			return nil, err
		}
		registerTypedefIfNeeded(p, spec, nextDecl)
		nextInit, err := parseOptionalInitializer(p)
		if err != nil {
			return nil, err
		}
		declarators = append(declarators, &InitDeclarator{
			baseNode: baseNode{p.spanFrom(nextStart)}, Declarator: nextDecl, Initializer: nextInit,
		})
	}

	if _, err := p.ExpectPunctuator(PSemi); err != nil {
		return nil, p.Throw("declaration", "expected ';' after declaration", p.Peek().Span)
	}
	return &Declaration{baseNode: baseNode{p.spanFrom(start)}, Specifiers: spec, Declarators: declarators}, nil
}

// registerTypedefIfNeeded binds decl's name into the current typedef
// scope the moment the declarator is recognized, before the rest of
// the declaration (further init-declarators, the initializer, the
// function body) is parsed -- this is what lets `typedef int I, *PI;`
// make `I` visible to the `*PI` declarator that follows it on the
// same line, and what makes `a * b;` parse as a declaration when `a`
// was declared a typedef earlier (spec.md §4.C, §4.D).
func registerTypedefIfNeeded(p *Parser, spec DeclarationSpecifiers, decl *Declarator) {
	if decl.Name == nil {
		return
	}
	if spec.Storage == StorageTypedef {
		p.state.DeclareTypedef(decl.Name.Text)
		decl.Name.Role = RoleTypedef
		return
	}
	if p.state.IsTypedefNameInCurrentScope(decl.Name.Text) {
		p.sink.Error(decl.Span(), "redeclaration of '"+decl.Name.Text+"' as a different kind of symbol")
		p.state.UndeclareTypedef(decl.Name.Text)
	}
	decl.Name.Role = RoleVariable
}

func isFunctionDefinitionTail(p *Parser, decl *Declarator) bool {
	if len(decl.Suffixes) == 0 || decl.Suffixes[len(decl.Suffixes)-1].Kind != suffixFunction {
		return false
	}
	if p.AtPunctuator(PLBrace) {
		return true
	}
	// K&R style: parameter declarations between the declarator and
	// the body, e.g. `int f(a, b) int a, b; { ... }`.
	return p.Peek().Kind == TokenKeyword || (p.Peek().Kind == TokenIdentifier && p.state.IsTypedefName(p.Peek().Payload.(*Identifier).Text))
}

func parseFunctionDefinitionTail(p *Parser, start int, spec DeclarationSpecifiers, decl *Declarator) (ExternalDeclaration, error) {
	var krDecls []*Declaration
	for !p.AtPunctuator(PLBrace) && !p.AtEOF() {
		d, err := parseDeclarationOrFunctionDefinition(p, false)
		if err != nil {
			return nil, err
		}
		if plainDecl, ok := d.(*Declaration); ok {
			krDecls = append(krDecls, plainDecl)
			continue
		}
		break
	}
	p.state.PushBlock(scopeFile)
	defer p.state.PopBlock()
	body, err := parseCompoundStatement(p)
	if err != nil {
		return nil, err
	}
	return &FunctionDefinition{
		baseNode: baseNode{p.spanFrom(start)}, Specifiers: spec, Declarator: decl, KRDecls: krDecls, Body: body,
	}, nil
}

func parseOptionalInitializer(p *Parser) (Initializer, error) {
	if !p.AtPunctuator(PEq) {
		return nil, nil
	}
	p.pos++
	return parseInitializer(p)
}

func parseInitializer(p *Parser) (Initializer, error) {
	if p.AtPunctuator(PLBrace) {
		return parseBraceInitializerList(p)
	}
	start := p.Cursor()
	expr, err := parseAssignmentExpression(p)
	if err != nil {
		return nil, err
	}
	return &ExprInitializer{baseNode: baseNode{p.spanFrom(start)}, Value: expr}, nil
}

func parseBraceInitializerList(p *Parser) (*ListInitializer, error) {
	start := p.Cursor()
	p.pos++ // {
	list := &ListInitializer{}
	for !p.AtPunctuator(PRBrace) && !p.AtEOF() {
		itemStart := p.Cursor()
		designators, err := parseDesignatorList(p)
		if err != nil {
			return nil, err
		}
		value, err := parseInitializer(p)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, &InitializerListItem{
			baseNode: baseNode{p.spanFrom(itemStart)}, Designators: designators, Value: value,
		})
		if !p.AtPunctuator(PComma) {
			break
		}
		p.pos++
	}
	if _, err := p.ExpectPunctuator(PRBrace); err != nil {
		return nil, p.Throw("{}", "expected '}' to close initializer list", p.Peek().Span)
	}
	list.baseNode = baseNode{p.spanFrom(start)}
	return list, nil
}

// parseDesignatorList parses zero or more `.member` / `[index]`
// designators (optionally `=` terminated, which this grammar treats
// as mandatory when any designator is present, matching C's syntax),
// including the non-standard `[lo ... hi]` range designator when
// ParserOptions.AcceptRangeDesignators allows it (spec.md §4.D, §9).
func parseDesignatorList(p *Parser) ([]Designator, error) {
	var out []Designator
	for {
		if p.AtPunctuator(PDot) {
			start := p.Cursor()
			p.pos++
			name, err := p.ExpectIdentifier()
			if err != nil {
				return nil, p.Throw("designator", "expected a member name after '.'", p.Peek().Span)
			}
			name.Role = RoleMember
			out = append(out, &MemberDesignator{baseNode: baseNode{p.spanFrom(start)}, Name: name})
			continue
		}
		if p.AtPunctuator(PLBracket) {
			start := p.Cursor()
			p.pos++
			index, err := parseConditionalExpression(p)
			if err != nil {
				return nil, err
			}
			if p.AtPunctuator(PEllipsis) && p.opts.AcceptRangeDesignators {
				p.pos++
				p.sink.Warning(p.spanFrom(start), "range designator is a non-standard extension")
				high, err := parseConditionalExpression(p)
				if err != nil {
					return nil, err
				}
				if _, err := p.ExpectPunctuator(PRBracket); err != nil {
					return nil, p.Throw("[]", "expected ']' to close range designator", p.Peek().Span)
				}
				out = append(out, &RangeDesignator{baseNode: baseNode{p.spanFrom(start)}, Low: index, High: high})
				continue
			}
			if _, err := p.ExpectPunctuator(PRBracket); err != nil {
				return nil, p.Throw("[]", "expected ']' to close designator", p.Peek().Span)
			}
			out = append(out, &IndexDesignator{baseNode: baseNode{p.spanFrom(start)}, Index: index})
			continue
		}
		break
	}
	if len(out) > 0 {
		if _, err := p.ExpectPunctuator(PEq); err != nil {
			return nil, p.Throw("designator", "expected '=' after designator list", p.Peek().Span)
		}
	}
	return out, nil
}
