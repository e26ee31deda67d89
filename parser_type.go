package cgrammar

var storageKeywords = map[KeywordKind]StorageClass{
	KwTypedef:      StorageTypedef,
	KwExtern:       StorageExtern,
	KwStatic:       StorageStatic,
	KwThreadLocal:  StorageThreadLocal,
	KwThreadLocalC23: StorageThreadLocal,
	KwAuto:         StorageAuto,
	KwRegister:     StorageRegister,
	KwConstexpr:    StorageConstexpr,
}

var qualifierKeywords = map[KeywordKind]TypeQualifier{
	KwConst:    QualConst,
	KwRestrict: QualRestrict,
	KwVolatile: QualVolatile,
	KwAtomic:   QualAtomic,
}

var basicTypeKeywords = map[KeywordKind]BasicTypeSpecifier{
	KwVoid:       SpecVoid,
	KwChar:       SpecChar,
	KwShort:      SpecShort,
	KwInt:        SpecInt,
	KwLong:       SpecLong,
	KwFloat:      SpecFloat,
	KwDouble:     SpecDouble,
	KwSigned:     SpecSigned,
	KwUnsigned:   SpecUnsigned,
	KwBool:       SpecBool,
	KwBoolC23:    SpecBool,
	KwComplex:    SpecComplex,
	KwImaginary:  SpecImaginary,
	KwDecimal32:  SpecDecimal32,
	KwDecimal64:  SpecDecimal64,
	KwDecimal128: SpecDecimal128,
}

// isTypeNameStart reports whether the current token can begin a
// declaration-specifier list, i.e. whether a `(` immediately followed
// by this token opens a type-name rather than a parenthesized
// expression -- the crux of the cast/sizeof/compound-literal
// ambiguity (spec.md §4.D). A plain identifier only counts if the
// parser's typedef environment currently recognizes it, which is the
// same lookup that resolves the classic `a * b;` hazard.
func isTypeNameStart(p *Parser) bool {
	t := p.Peek()
	switch t.Kind {
	case TokenKeyword:
		kind := t.Payload.(KeywordKind)
		if _, ok := storageKeywords[kind]; ok {
			return true
		}
		if _, ok := qualifierKeywords[kind]; ok {
			return true
		}
		if _, ok := basicTypeKeywords[kind]; ok {
			return true
		}
		switch kind {
		case KwStruct, KwUnion, KwEnum, KwTypeof, KwTypeofUnqual, KwBitInt, KwAlignas, KwInline, KwNoreturn:
			return true
		}
		return false
	case TokenIdentifier:
		id := t.Payload.(*Identifier)
		return p.state.IsTypedefName(id.Text)
	case TokenPunctuator:
		return t.Payload.(PunctuatorKind) == PLAttr
	}
	return false
}

// parseDeclarationSpecifiers consumes every storage-class specifier,
// type qualifier, type specifier, function specifier, alignment
// specifier, and attribute-specifier in whatever order they appear
// (C permits arbitrary order), stopping at the first token that is
// none of those, per spec.md §4.D "Declaration specifiers".
func parseDeclarationSpecifiers(p *Parser) (DeclarationSpecifiers, error) {
	var spec DeclarationSpecifiers
	haveType := false

	for {
		t := p.Peek()

		if t.Kind == TokenPunctuator && t.Payload.(PunctuatorKind) == PLAttr {
			attr, err := parseAttributeSpecifier(p)
			if err != nil {
				return spec, err
			}
			spec.Attributes = append(spec.Attributes, attr)
			continue
		}

		if t.Kind == TokenIdentifier && !haveType {
			id := t.Payload.(*Identifier)
			if p.state.IsTypedefName(id.Text) {
				p.pos++
				spec.TypedefName = id
				haveType = true
				continue
			}
			break
		}

		if t.Kind != TokenKeyword {
			break
		}
		kind := t.Payload.(KeywordKind)

		if sc, ok := storageKeywords[kind]; ok {
			p.pos++
			spec.Storage = sc
			continue
		}
		if q, ok := qualifierKeywords[kind]; ok {
			p.pos++
			spec.Qualifiers |= q
			continue
		}
		if bt, ok := basicTypeKeywords[kind]; ok && spec.TypedefName == nil && spec.TagType == nil && spec.EnumType == nil {
			p.pos++
			spec.Basic = append(spec.Basic, bt)
			haveType = true
			continue
		}

		switch kind {
		case KwInline:
			p.pos++
			spec.Inline = true
		case KwNoreturn:
			p.pos++
			spec.Noreturn = true
		case KwStruct, KwUnion:
			if haveType {
				return spec, nil
			}
			su, err := parseStructOrUnionSpecifier(p)
			if err != nil {
				return spec, err
			}
			spec.TagType = su
			haveType = true
		case KwEnum:
			if haveType {
				return spec, nil
			}
			en, err := parseEnumSpecifier(p)
			if err != nil {
				return spec, err
			}
			spec.EnumType = en
			haveType = true
		case KwTypeof, KwTypeofUnqual:
			if haveType {
				return spec, nil
			}
			p.pos++
			spec.TypeofUnqual = kind == KwTypeofUnqual
			if _, err := p.ExpectPunctuator(PLParen); err != nil {
				return spec, p.Throw("typeof", "expected '(' after typeof", p.Peek().Span)
			}
			save := p.Cursor()
			if isTypeNameStart(p) {
				typeName, err := parseTypeName(p)
				if err == nil {
					if _, err := p.ExpectPunctuator(PRParen); err == nil {
						spec.TypeofType = typeName
						haveType = true
						continue
					}
				}
				p.Backtrack(save)
			}
			expr, err := ParseExpression(p)
			if err != nil {
				return spec, err
			}
			if _, err := p.ExpectPunctuator(PRParen); err != nil {
				return spec, p.Throw("typeof", "expected ')' to close typeof", p.Peek().Span)
			}
			spec.TypeofExpr = expr
			haveType = true
		case KwBitInt:
			if haveType {
				return spec, nil
			}
			p.pos++
			if _, err := p.ExpectPunctuator(PLParen); err != nil {
				return spec, p.Throw("_BitInt", "expected '(' after _BitInt", p.Peek().Span)
			}
			width, err := ParseExpression(p)
			if err != nil {
				return spec, err
			}
			if _, err := p.ExpectPunctuator(PRParen); err != nil {
				return spec, p.Throw("_BitInt", "expected ')' to close _BitInt", p.Peek().Span)
			}
			spec.BitIntWidth = width
			haveType = true
		case KwAlignas:
			align, err := parseAlignmentSpecifier(p)
			if err != nil {
				return spec, err
			}
			spec.Alignas = align
		default:
			return spec, nil
		}
	}
	return spec, nil
}

func parseAlignmentSpecifier(p *Parser) (*AlignmentSpecifier, error) {
	start := p.Cursor()
	p.pos++ // alignas
	if _, err := p.ExpectPunctuator(PLParen); err != nil {
		return nil, p.Throw("alignas", "expected '(' after alignas", p.Peek().Span)
	}
	save := p.Cursor()
	if isTypeNameStart(p) {
		typeName, err := parseTypeName(p)
		if err == nil {
			if _, err := p.ExpectPunctuator(PRParen); err == nil {
				return &AlignmentSpecifier{baseNode: baseNode{p.spanFrom(start)}, Type: typeName}, nil
			}
		}
		p.Backtrack(save)
	}
	expr, err := ParseExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectPunctuator(PRParen); err != nil {
		return nil, p.Throw("alignas", "expected ')' to close alignas", p.Peek().Span)
	}
	return &AlignmentSpecifier{baseNode: baseNode{p.spanFrom(start)}, Expr: expr}, nil
}

// parseAttributeSpecifier parses a standard `[[attr, attr(args)]]`
// group. It is the only attribute syntax the parser recognizes: vendor
// `__attribute__`/`__declspec` spellings lex as ordinary identifiers
// and no production treats them as attributes.
func parseAttributeSpecifier(p *Parser) (*AttributeSpecifier, error) {
	start := p.Cursor()
	if _, err := p.ExpectPunctuator(PLAttr); err != nil {
		return nil, err
	}
	var attrs []*Attribute
	for !p.AtPunctuator(PRAttr) && !p.AtEOF() {
		attrStart := p.Cursor()
		name, err := p.ExpectIdentifier()
		if err != nil {
			return nil, p.Throw("attribute", "expected an attribute name", p.Peek().Span)
		}
		prefix := ""
		if p.AtPunctuator(PColonColon) {
			p.pos++
			second, err := p.ExpectIdentifier()
			if err != nil {
				return nil, p.Throw("attribute", "expected an attribute name after '::'", p.Peek().Span)
			}
			prefix = name.Text
			name = second
		}
		var args *BalancedTokenSequence
		if p.AtPunctuator(PLParen) {
			args, err = parseBalancedGroup(p, PLParen, PRParen)
			if err != nil {
				return nil, err
			}
		}
		attrs = append(attrs, &Attribute{baseNode: baseNode{p.spanFrom(attrStart)}, Prefix: prefix, Name: name.Text, Args: args})
		if p.AtPunctuator(PComma) {
			p.pos++
		}
	}
	if _, err := p.ExpectPunctuator(PRAttr); err != nil {
		return nil, p.Throw("[[]]", "expected ']]' to close attribute specifier", p.Peek().Span)
	}
	return &AttributeSpecifier{baseNode: baseNode{p.spanFrom(start)}, Attributes: attrs}, nil
}

// parseBalancedGroup consumes a bracketed token run (already balanced
// by the lexer) and returns it as a BalancedTokenSequence slice, used
// for attribute arguments that this parser does not itself interpret
// (spec.md §3 "BalancedTokenSequence").
func parseBalancedGroup(p *Parser, open, closeKind PunctuatorKind) (*BalancedTokenSequence, error) {
	openIdx := p.Cursor()
	if _, err := p.ExpectPunctuator(open); err != nil {
		return nil, err
	}
	closeIdx, ok := p.GroupEnd(openIdx)
	if !ok {
		closeIdx = len(p.tokens) - 1
	}
	inner := append([]Token(nil), p.tokens[openIdx+1:closeIdx]...)
	p.Backtrack(closeIdx)
	if _, err := p.ExpectPunctuator(closeKind); err != nil {
		return nil, err
	}
	return &BalancedTokenSequence{Tokens: inner}, nil
}

func parseStructOrUnionSpecifier(p *Parser) (*StructOrUnionSpecifier, error) {
	start := p.Cursor()
	isUnion := p.Peek().Payload.(KeywordKind) == KwUnion
	p.pos++ // struct/union

	var attrs []*AttributeSpecifier
	for p.AtPunctuator(PLAttr) {
		a, err := parseAttributeSpecifier(p)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}

	tag := ""
	if id, err := p.ExpectIdentifier(); err == nil {
		id.Role = RoleTag
		tag = id.Text
		p.state.DeclareTag(tag)
	}

	spec := &StructOrUnionSpecifier{IsUnion: isUnion, Tag: tag, Attributes: attrs}
	if !p.AtPunctuator(PLBrace) {
		spec.baseNode = baseNode{p.spanFrom(start)}
		return spec, nil
	}
	p.pos++

	for !p.AtPunctuator(PRBrace) && !p.AtEOF() {
		member, err := parseMemberDeclaration(p)
		if err != nil {
			return nil, err
		}
		spec.Members = append(spec.Members, member)
	}
	checkFlexibleArrayMemberPlacement(p, spec.Members)
	if _, err := p.ExpectPunctuator(PRBrace); err != nil {
		return nil, p.Throw("struct", "expected '}' to close struct/union body", p.Peek().Span)
	}
	spec.baseNode = baseNode{p.spanFrom(start)}
	return spec, nil
}

// isFlexibleArrayMember reports whether d's direct-declarator core
// ends in an incomplete array suffix (`[]`), the shape of a C23
// flexible array member. A `[*]` VLA-star suffix is a parameter-only
// construct, not a flexible array member, so it is excluded.
func isFlexibleArrayMember(d *Declarator) bool {
	if d == nil || len(d.Suffixes) == 0 {
		return false
	}
	last := d.Suffixes[len(d.Suffixes)-1]
	return last.Kind == suffixArray && last.ArraySize == nil && !last.ArrayVLAStar
}

// checkFlexibleArrayMemberPlacement enforces spec.md's structural
// invariant that a flexible array member must be the struct's last
// member (§3 "Invariants", §7 "flexible-array member not last").
// Member declarators are flattened in source order across every
// MemberDeclaration so a multi-declarator member (`int a, data[];`)
// is checked the same as separate ones.
func checkFlexibleArrayMemberPlacement(p *Parser, members []*MemberDeclaration) {
	var declarators []*Declarator
	for _, m := range members {
		for _, md := range m.Declarators {
			if md.Declarator != nil {
				declarators = append(declarators, md.Declarator)
			}
		}
	}
	for i, d := range declarators {
		if i == len(declarators)-1 {
			continue
		}
		if isFlexibleArrayMember(d) {
			name := "member"
			if d.Name != nil {
				name = "'" + d.Name.Text + "'"
			}
			p.sink.Error(d.Span(), "flexible array member "+name+" must be the last member of the struct or union")
		}
	}
}

func parseMemberDeclaration(p *Parser) (*MemberDeclaration, error) {
	start := p.Cursor()
	if p.AtKeyword(KwStaticAssert) || p.AtKeyword(KwStaticAssertC23) {
		sa, err := parseStaticAssertDeclaration(p)
		if err != nil {
			return nil, err
		}
		return &MemberDeclaration{baseNode: baseNode{p.spanFrom(start)}, StaticAssert: sa}, nil
	}

	spec, err := parseDeclarationSpecifiers(p)
	if err != nil {
		return nil, err
	}
	if spec.Storage == StorageConstexpr {
		p.sink.Warning(p.spanFrom(start), "'constexpr' is not permitted on a member declaration")
	}

	member := &MemberDeclaration{Specifiers: spec}
	if !p.AtPunctuator(PSemi) {
		for {
			declStart := p.Cursor()
			var decl *Declarator
			if !p.AtPunctuator(PColon) {
				decl, err = parseDeclarator(p, false)
				if err != nil {
					return nil, err
				}
			}
			var width Expression
			if p.AtPunctuator(PColon) {
				p.pos++
				width, err = parseConditionalExpression(p)
				if err != nil {
					return nil, err
				}
			}
			if decl != nil && decl.Name != nil {
				decl.Name.Role = RoleMember
			}
			member.Declarators = append(member.Declarators, &MemberDeclarator{
				baseNode: baseNode{p.spanFrom(declStart)}, Declarator: decl, Width: width,
			})
			if !p.AtPunctuator(PComma) {
				break
			}
			p.pos++
		}
	}
	if _, err := p.ExpectPunctuator(PSemi); err != nil {
		return nil, p.Throw("member", "expected ';' after member declaration", p.Peek().Span)
	}
	member.baseNode = baseNode{p.spanFrom(start)}
	return member, nil
}

func parseEnumSpecifier(p *Parser) (*EnumSpecifier, error) {
	start := p.Cursor()
	p.pos++ // enum

	var attrs []*AttributeSpecifier
	for p.AtPunctuator(PLAttr) {
		a, err := parseAttributeSpecifier(p)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}

	tag := ""
	if id, err := p.ExpectIdentifier(); err == nil {
		id.Role = RoleTag
		tag = id.Text
		p.state.DeclareTag(tag)
	}

	spec := &EnumSpecifier{Tag: tag, Attributes: attrs}

	if p.AtPunctuator(PColon) {
		p.pos++
		underlying, err := parseTypeName(p)
		if err != nil {
			return nil, err
		}
		spec.UnderlyingType = underlying
	}

	if !p.AtPunctuator(PLBrace) {
		spec.baseNode = baseNode{p.spanFrom(start)}
		return spec, nil
	}
	p.pos++

	for !p.AtPunctuator(PRBrace) && !p.AtEOF() {
		enumStart := p.Cursor()
		name, err := p.ExpectIdentifier()
		if err != nil {
			return nil, p.Throw("enumerator", "expected an enumerator name", p.Peek().Span)
		}
		name.Role = RoleEnumerator
		var enumAttrs []*AttributeSpecifier
		for p.AtPunctuator(PLAttr) {
			a, err := parseAttributeSpecifier(p)
			if err != nil {
				return nil, err
			}
			enumAttrs = append(enumAttrs, a)
		}
		var value Expression
		if p.AtPunctuator(PEq) {
			p.pos++
			value, err = parseConditionalExpression(p)
			if err != nil {
				return nil, err
			}
		}
		spec.Enumerators = append(spec.Enumerators, &Enumerator{
			baseNode: baseNode{p.spanFrom(enumStart)}, Name: name, Value: value, Attributes: enumAttrs,
		})
		if !p.AtPunctuator(PComma) {
			break
		}
		p.pos++
	}
	if _, err := p.ExpectPunctuator(PRBrace); err != nil {
		return nil, p.Throw("enum", "expected '}' to close enum body", p.Peek().Span)
	}
	spec.baseNode = baseNode{p.spanFrom(start)}
	return spec, nil
}

// parseDeclarator parses a (possibly abstract, if abstract is true
// and no identifier is present) declarator: a pointer chain, a
// direct-declarator core (identifier or parenthesized nested
// declarator), and any number of trailing array/function suffixes,
// per spec.md §4.D "Declarator ambiguity" -- one unified shape
// regardless of nesting depth.
func parseDeclarator(p *Parser, abstract bool) (*Declarator, error) {
	start := p.Cursor()
	var pointers []pointerLevel
	for p.AtPunctuator(PStar) {
		p.pos++
		lvl := pointerLevel{}
		for {
			t := p.Peek()
			if t.Kind == TokenKeyword {
				if q, ok := qualifierKeywords[t.Payload.(KeywordKind)]; ok {
					p.pos++
					lvl.Qualifiers |= q
					continue
				}
			}
			if p.AtPunctuator(PLAttr) {
				a, err := parseAttributeSpecifier(p)
				if err != nil {
					return nil, err
				}
				lvl.Attributes = append(lvl.Attributes, a)
				continue
			}
			break
		}
		pointers = append(pointers, lvl)
	}

	decl := &Declarator{Pointers: pointers}

	if p.AtPunctuator(PLParen) {
		save := p.Cursor()
		p.pos++
		if !isParamListStart(p) {
			nested, err := parseDeclarator(p, abstract)
			if err == nil {
				if _, err := p.ExpectPunctuator(PRParen); err == nil {
					decl.Nested = nested
					goto suffixes
				}
			}
		}
		p.Backtrack(save)
	}

	if id, err := p.ExpectIdentifier(); err == nil {
		decl.Name = id
	} else if !abstract {
		return nil, p.backtrackErr("declarator", "expected a declarator", p.Peek().Span)
	}

suffixes:
	for {
		if p.AtPunctuator(PLBracket) {
			suf, err := parseArraySuffix(p)
			if err != nil {
				return nil, err
			}
			decl.Suffixes = append(decl.Suffixes, suf)
			continue
		}
		if p.AtPunctuator(PLParen) {
			suf, err := parseFunctionSuffix(p)
			if err != nil {
				return nil, err
			}
			decl.Suffixes = append(decl.Suffixes, suf)
			continue
		}
		break
	}

	for p.AtPunctuator(PLAttr) {
		a, err := parseAttributeSpecifier(p)
		if err != nil {
			return nil, err
		}
		decl.Attributes = append(decl.Attributes, a)
	}

	decl.baseNode = baseNode{p.spanFrom(start)}
	return decl, nil
}

// isParamListStart peeks past an already-consumed '(' to guess
// whether it opens a parameter-type-list (making the whole thing a
// function suffix of an abstract declarator, e.g. `int (int, int)`)
// rather than a parenthesized nested declarator. An empty `()` or one
// starting with a declaration-specifier is treated as a parameter
// list.
func isParamListStart(p *Parser) bool {
	if p.AtPunctuator(PRParen) {
		return true
	}
	return isTypeNameStart(p)
}

func parseArraySuffix(p *Parser) (declaratorSuffix, error) {
	p.pos++ // [
	suf := declaratorSuffix{Kind: suffixArray}
	for {
		t := p.Peek()
		if t.Kind == TokenKeyword {
			if q, ok := qualifierKeywords[t.Payload.(KeywordKind)]; ok {
				p.pos++
				suf.ArrayQualifiers |= q
				continue
			}
			if t.Payload.(KeywordKind) == KwStatic {
				p.pos++
				suf.ArrayStatic = true
				continue
			}
		}
		break
	}
	if p.AtPunctuator(PStar) && p.PeekAt(1).Kind == TokenPunctuator && p.PeekAt(1).Payload.(PunctuatorKind) == PRBracket {
		p.pos++
		suf.ArrayVLAStar = true
	} else if !p.AtPunctuator(PRBracket) {
		size, err := parseAssignmentExpression(p)
		if err != nil {
			return suf, err
		}
		suf.ArraySize = size
	}
	if _, err := p.ExpectPunctuator(PRBracket); err != nil {
		return suf, p.Throw("[]", "expected ']' to close array declarator", p.Peek().Span)
	}
	return suf, nil
}

func parseFunctionSuffix(p *Parser) (declaratorSuffix, error) {
	p.pos++ // (
	suf := declaratorSuffix{Kind: suffixFunction}
	p.state.PushBlock(scopeFunctionPrototype)
	defer p.state.PopBlock()

	if p.AtPunctuator(PRParen) {
		p.pos++
		return suf, nil
	}

	// K&R identifier-list form: a bare list of identifiers with no
	// type information, only legal when none of them look like a
	// declaration-specifier start.
	if p.Peek().Kind == TokenIdentifier && !isTypeNameStart(p) {
		save := p.Cursor()
		var names []*Identifier
		ok := true
		for {
			id, err := p.ExpectIdentifier()
			if err != nil {
				ok = false
				break
			}
			id.Role = RoleVariable
			names = append(names, id)
			if !p.AtPunctuator(PComma) {
				break
			}
			p.pos++
		}
		if ok && p.AtPunctuator(PRParen) {
			p.pos++
			suf.KRNames = names
			return suf, nil
		}
		p.Backtrack(save)
	}

	for {
		if p.AtPunctuator(PEllipsis) {
			p.pos++
			suf.Variadic = true
			break
		}
		paramStart := p.Cursor()
		spec, err := parseDeclarationSpecifiers(p)
		if err != nil {
			return suf, err
		}
		decl, _ := parseDeclarator(p, true)
		if decl != nil && decl.Name != nil {
			decl.Name.Role = RoleVariable
		}
		suf.Params = append(suf.Params, &ParamDeclaration{
			baseNode: baseNode{p.spanFrom(paramStart)}, Specifiers: spec, Declarator: decl,
		})
		if !p.AtPunctuator(PComma) {
			break
		}
		p.pos++
	}
	if _, err := p.ExpectPunctuator(PRParen); err != nil {
		return suf, p.Throw("()", "expected ')' to close parameter list", p.Peek().Span)
	}
	return suf, nil
}

// parseTypeName parses a type-name: declaration specifiers followed
// by an optional abstract declarator, used wherever the grammar names
// a type without declaring an identifier (casts, sizeof, alignof,
// generic-selection associations, compound literals).
func parseTypeName(p *Parser) (*TypeName, error) {
	start := p.Cursor()
	spec, err := parseDeclarationSpecifiers(p)
	if err != nil {
		return nil, err
	}
	var decl *Declarator
	if p.AtPunctuator(PStar) || p.AtPunctuator(PLBracket) || p.AtPunctuator(PLParen) {
		decl, err = parseDeclarator(p, true)
		if err != nil {
			return nil, err
		}
	}
	return &TypeName{baseNode: baseNode{p.spanFrom(start)}, Specifiers: spec, Declarator: decl}, nil
}
