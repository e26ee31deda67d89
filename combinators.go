package cgrammar

import "strings"

// ParserFn is a parsing function over the token stream, generalized
// the same way the teacher's `ParserFn[T any]` (`parser.go`) lets
// Choice/ZeroOrMore/etc. compose recursive parsers sharing one
// backtracking engine despite differing return types -- only here T
// ranges over AST node types and tokens instead of runes and grammar
// values.
type ParserFn[T any] func(p *Parser) (T, error)

// ZeroOrMore calls fn until it errors, collecting every successful
// result, then backtracks past the last (failing) attempt.
func ZeroOrMore[T any](p *Parser, fn ParserFn[T]) ([]T, error) {
	var out []T
	for {
		mark := p.Cursor()
		item, err := fn(p)
		if err != nil {
			p.Backtrack(mark)
			if isThrown(err) && !p.WithinPredicate() {
				return nil, err
			}
			break
		}
		out = append(out, item)
	}
	return out, nil
}

// OneOrMore matches fn once, then ZeroOrMore for the rest.
func OneOrMore[T any](p *Parser, fn ParserFn[T]) ([]T, error) {
	head, err := fn(p)
	if err != nil {
		return nil, err
	}
	tail, err := ZeroOrMore(p, fn)
	if err != nil {
		return nil, err
	}
	return append([]T{head}, tail...), nil
}

// Choice tries each alternative in order, backtracking between
// attempts, and returns the first to succeed. An unrecoverable
// (Throw-produced) error escapes immediately instead of being treated
// as a failed alternative.
func Choice[T any](p *Parser, fns []ParserFn[T]) (T, error) {
	var zero T
	start := p.Cursor()
	var expected []string
	seen := map[string]bool{}

	for _, fn := range fns {
		item, err := fn(p)
		if err == nil {
			return item, nil
		}
		p.Backtrack(start)
		if isThrown(err) && !p.WithinPredicate() {
			return zero, err
		}
		if berr, ok := err.(*backtrackingError); ok && !seen[berr.Expected] {
			seen[berr.Expected] = true
			expected = append(expected, berr.Expected)
		}
	}

	exp := strings.Join(expected, " or ")
	return zero, p.NewError(exp, "expected "+exp, p.spanFrom(start))
}

// Optional is Choice between fn and a no-op success.
func Optional[T any](p *Parser, fn ParserFn[T]) (T, error) {
	return Choice(p, []ParserFn[T]{
		fn,
		func(p *Parser) (T, error) {
			var zero T
			return zero, nil
		},
	})
}

// And is a zero-width positive lookahead predicate: it succeeds, never
// consuming input, iff fn would succeed.
func And[T any](p *Parser, fn ParserFn[T]) error {
	p.EnterPredicate()
	start := p.Cursor()
	_, err := fn(p)
	p.Backtrack(start)
	p.LeavePredicate()
	if err != nil {
		return p.NewError("&", "lookahead predicate failed", p.spanFrom(start))
	}
	return nil
}

// Not is a zero-width negative lookahead predicate: it succeeds, never
// consuming input, iff fn would fail.
func Not[T any](p *Parser, fn ParserFn[T]) error {
	p.EnterPredicate()
	start := p.Cursor()
	_, err := fn(p)
	p.Backtrack(start)
	p.LeavePredicate()
	if err == nil {
		return p.NewError("!", "negative lookahead predicate failed", p.spanFrom(start))
	}
	return nil
}
