package cgrammar

// ParseResult bundles everything a caller needs out of one parse: the
// resulting AST fragment, the SourceMap needed to resolve any Span in
// it back to line/column, and every diagnostic collected along the
// way, stable-sorted by span start (spec.md §6 "entry points").
type ParseResult[T Node] struct {
	Tree        T
	Sources     *SourceMap
	Diagnostics []Diagnostic
}

// ParseFile lexes and parses a complete C translation unit from
// source bytes in one call, seeding the typedef environment with
// seedTypedefs (e.g. well-known library typedefs a caller wants
// recognized without being textually declared, spec.md §6 "seedable
// outermost scope").
func ParseFile(input []byte, filename string, seedTypedefs []string) ParseResult[*TranslationUnit] {
	lexOpts := DefaultLexOptions()
	lexOpts.Filename = filename
	tokens, sources, lexDiags := Lex(input, lexOpts)
	file := FileID(0) // Lex always registers exactly one file, the first

	sink := NewSink()
	for _, d := range lexDiags {
		sink.Append(d)
	}
	state := NewState(sink, seedTypedefs)
	p := NewParser(tokens, sources, file, DefaultParserOptions(), sink, state)

	tree, err := ParseTranslationUnit(p)
	if err != nil && tree == nil {
		tree = &TranslationUnit{}
	}
	return ParseResult[*TranslationUnit]{Tree: tree, Sources: sources, Diagnostics: sink.Diagnostics()}
}

// ParseDeclaration parses a single declaration or function definition
// from an already-lexed token stream, for callers operating below the
// translation-unit granularity (spec.md §6 "ParseDeclaration").
func ParseDeclaration(p *Parser) (ExternalDeclaration, error) {
	return parseDeclarationOrFunctionDefinition(p, true)
}

// ParseTypeName parses a standalone type-name, as used inside a cast,
// sizeof, or _Alignof (spec.md §6 "ParseTypeName").
func ParseTypeName(p *Parser) (*TypeName, error) {
	return parseTypeName(p)
}
