package cgrammar

import "fmt"

// Parser holds the token-stream cursor and the context-sensitive
// state (typedef/scope tracking) a recursive-descent C parser needs,
// mirroring the teacher's `BaseParser` (`base_parser.go`): a small
// mutable record plus a predicate-depth counter so lookahead
// predicates (And/Not) can tell Choice-family combinators to convert
// a Throw into an ordinary backtrackable failure while one is active.
type Parser struct {
	tokens []Token
	groups map[int]int
	pos    int

	file    FileID
	sources *SourceMap
	state   *ParserState
	sink    *Sink
	opts    ParserOptions

	predStkCnt int
}

// NewParser builds a Parser over a balanced token sequence produced by
// Lex, per spec.md §6 "token stream -> AST".
func NewParser(tokens *BalancedTokenSequence, sources *SourceMap, file FileID, opts ParserOptions, sink *Sink, state *ParserState) *Parser {
	return &Parser{
		tokens:  tokens.Tokens,
		groups:  tokens.Groups,
		file:    file,
		sources: sources,
		state:   state,
		sink:    sink,
		opts:    opts,
	}
}

// Cursor returns the current token index, to be passed back to
// Backtrack.
func (p *Parser) Cursor() int { return p.pos }

// Backtrack resets the cursor to a previously observed position.
func (p *Parser) Backtrack(pos int) { p.pos = pos }

// Peek returns the token under the cursor without consuming it. Past
// the end of the stream it keeps returning the trailing TokenEOF
// sentinel, so callers never need a separate bounds check.
func (p *Parser) Peek() Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

// PeekAt returns the token offset tokens ahead of the cursor.
func (p *Parser) PeekAt(offset int) Token {
	i := p.pos + offset
	if i < 0 {
		i = 0
	}
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// Any consumes and returns the token under the cursor, or a
// backtracking error at end of stream.
func (p *Parser) Any() (Token, error) {
	t := p.Peek()
	if t.IsEOF() {
		return t, p.backtrackErr("any", "unexpected end of input", t.Span)
	}
	p.pos++
	return t, nil
}

func (p *Parser) AtEOF() bool { return p.Peek().IsEOF() }

// GroupEnd returns the index of the token closing the balanced group
// opened at the given token index, per BalancedTokenSequence.Groups.
func (p *Parser) GroupEnd(openIdx int) (int, bool) {
	end, ok := p.groups[openIdx]
	return end, ok
}

func (p *Parser) EnterPredicate() { p.predStkCnt++ }
func (p *Parser) LeavePredicate() { p.predStkCnt-- }
func (p *Parser) WithinPredicate() bool { return p.predStkCnt > 0 }

// spanFrom builds a span from the token at a previously observed cursor
// position through the last token consumed since; when nothing has been
// consumed it is the span of the token at start.
func (p *Parser) spanFrom(start int) Span {
	startTok := p.tokenAt(start)
	endTok := p.tokenAt(p.pos - 1)
	if p.pos <= start || endTok.Span.Start < startTok.Span.Start {
		return startTok.Span
	}
	return startTok.Span.Merge(endTok.Span)
}

func (p *Parser) tokenAt(i int) Token {
	if i < 0 {
		i = 0
	}
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// NewError builds a backtrackingError used to drive Choice's
// alternative selection (Choice either recovers from it or folds it
// into a new backtrackingError of its own).
func (p *Parser) NewError(expected, message string, span Span) error {
	return p.backtrackErr(expected, message, span)
}

func (p *Parser) backtrackErr(expected, message string, span Span) error {
	return &backtrackingError{Message: message, Expected: expected, Span: span}
}

// Throw converts the current position into an unrecoverable
// ParsingError, unless a lookahead predicate is active -- in which
// case it is downgraded to a plain backtrackingError so And/Not can
// probe ahead without poisoning the whole parse, exactly the
// exception the teacher's own `Throw` makes (`base_parser.go`).
func (p *Parser) Throw(label, message string, span Span) error {
	if p.WithinPredicate() {
		return p.backtrackErr(label, message, span)
	}
	err := &ParsingError{Message: message, Label: label, Span: span}
	p.sink.Append(Diagnostic{Severity: SeverityError, Span: span, Message: err.Error()})
	return err
}

// ExpectPunctuator consumes the current token if it is the given
// punctuator, or fails with a backtracking error.
func (p *Parser) ExpectPunctuator(kind PunctuatorKind) (Token, error) {
	t := p.Peek()
	if t.Kind == TokenPunctuator && t.Payload.(PunctuatorKind) == kind {
		p.pos++
		return t, nil
	}
	return t, p.backtrackErr(punctuatorText(kind), fmt.Sprintf("expected %q", punctuatorText(kind)), t.Span)
}

// ExpectKeyword consumes the current token if it is the given keyword.
func (p *Parser) ExpectKeyword(kind KeywordKind) (Token, error) {
	t := p.Peek()
	if t.Kind == TokenKeyword && t.Payload.(KeywordKind) == kind {
		p.pos++
		return t, nil
	}
	return t, p.backtrackErr(keywordText(kind), fmt.Sprintf("expected %q", keywordText(kind)), t.Span)
}

// ExpectIdentifier consumes the current token if it is a plain
// identifier, returning its shared *Identifier payload.
func (p *Parser) ExpectIdentifier() (*Identifier, error) {
	t := p.Peek()
	if t.Kind == TokenIdentifier {
		p.pos++
		return t.Payload.(*Identifier), nil
	}
	return nil, p.backtrackErr("identifier", "expected an identifier", t.Span)
}

// AtPunctuator reports whether the current token is the given
// punctuator, without consuming it.
func (p *Parser) AtPunctuator(kind PunctuatorKind) bool {
	t := p.Peek()
	return t.Kind == TokenPunctuator && t.Payload.(PunctuatorKind) == kind
}

// AtKeyword reports whether the current token is the given keyword.
func (p *Parser) AtKeyword(kind KeywordKind) bool {
	t := p.Peek()
	return t.Kind == TokenKeyword && t.Payload.(KeywordKind) == kind
}

func punctuatorText(kind PunctuatorKind) string {
	for _, p := range punctuatorSpellings {
		if p.kind == kind {
			return p.text
		}
	}
	return "?"
}

func keywordText(kind KeywordKind) string {
	for text, k := range keywordTable {
		if k == kind {
			return text
		}
	}
	return "?"
}
