package cgrammar

import "fmt"

// ParsingError is the error a production throws when it hits a point
// from which the grammar cannot recover by backtracking (a missing
// closing token after a synchronization point has already committed,
// for example). It always carries a span so it renders as a proper
// Diagnostic.
type ParsingError struct {
	Message    string
	Label      string
	Production string
	Span       Span
}

// Error returns the human readable representation of a parsing error.
func (e *ParsingError) Error() string {
	message := e.Label
	if e.Message != "" {
		message = e.Message
	}
	return fmt.Sprintf("%s @ %s", message, e.Span)
}

// backtrackingError is the "this input does not match" failure caught
// by Choice and its relatives (ZeroOrMore, Optional, And, Not) and by
// the hand-written productions, where it drives which alternative is
// tried next. ParseTranslationUnit turns one into a diagnostic; the
// single-production entry points (ParseExpression, ParseStatement,
// ParseDeclaration, ParseTypeName) return it to their caller as is.
type backtrackingError struct {
	Message    string
	Production string
	Expected   string
	Span       Span
}

func (e *backtrackingError) Error() string {
	return fmt.Sprintf("%s @ %s", e.Message, e.Span)
}

func isThrown(err error) bool {
	_, ok := err.(*ParsingError)
	return ok
}
