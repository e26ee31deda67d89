package cgrammar

// LexOptions is the closed configuration record accepted by Lex, per
// spec.md §6.1.
type LexOptions struct {
	// Filename names the initial source for spans rendered via the
	// SourceMap.
	Filename string

	// AcceptComments, when true, preserves comment tokens in the
	// returned token sequence instead of stripping them.
	AcceptComments bool

	// AcceptVendorExtensions is true by default but is not consulted:
	// neither the lexer nor the parser recognizes __attribute__,
	// __declspec, inline asm, or statement expressions, whose keywords
	// lex as ordinary identifiers whatever its value.
	AcceptVendorExtensions bool
}

// DefaultLexOptions returns the spec-mandated defaults: comments
// stripped, vendor extensions on.
func DefaultLexOptions() LexOptions {
	return LexOptions{
		AcceptComments:         false,
		AcceptVendorExtensions: true,
	}
}

// ParserOptions configures parse_translation_unit and the individual
// entry points (spec.md §6.2-6.3).
type ParserOptions struct {
	// AcceptRangeDesignators allows the non-standard `[a ... b]`
	// designator extension (spec.md §4.D, §9). Accepted by default,
	// flagged as a warning when used.
	AcceptRangeDesignators bool

	// AcceptStatementExtensions allows try/catch/throw statement
	// nodes (spec.md §4.D "Statement extensions").
	AcceptStatementExtensions bool
}

// DefaultParserOptions returns the spec-mandated defaults: both
// extensions accepted, since whether to reject them in a strict-C23
// mode is an explicit open question (spec.md §9) the reference leaves
// to policy, not to this library.
func DefaultParserOptions() ParserOptions {
	return ParserOptions{
		AcceptRangeDesignators:    true,
		AcceptStatementExtensions: true,
	}
}
