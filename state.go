package cgrammar

// scopeKind classifies a lexical scope for the purposes spec.md §4.C
// cares about: "is a typedef name visible here" and "is this a valid
// place for a case/default/break/continue".
type scopeKind int

const (
	scopeFile scopeKind = iota
	scopeBlock
	scopeFunctionPrototype
	scopeLoop
	scopeSwitch
)

// scope is one entry of the parser's scope stack: the set of names
// bound as typedefs within it, plus its kind.
type scope struct {
	kind     scopeKind
	typedefs map[string]bool
	tags     map[string]bool
}

// ParserState is the context-sensitive memory a C parser needs beyond
// the token stream itself, per spec.md §4.C: a scoped stack of
// typedef-name sets (to resolve the "`a * b;`" declaration-vs-expression
// ambiguity) and a scope-kind stack (to validate case/default labels).
// Names are registered eagerly, mid-declaration, as soon as the
// declarator introducing them is recognized -- not after the whole
// declaration is parsed -- exactly so later declarators in the same
// declaration list can see earlier ones (spec.md invariant: "A typedef
// name becomes visible to the parser before the end of the
// declaration that introduces it").
type ParserState struct {
	scopes []*scope
	sink   *Sink
}

// NewState creates a ParserState with one seeded file-level scope.
// seedTypedefs lets a caller pre-populate known typedef names (e.g.
// `size_t`, `FILE`) before parsing begins, per spec.md §6 "seedable
// outermost scope".
func NewState(sink *Sink, seedTypedefs []string) *ParserState {
	s := &ParserState{sink: sink}
	s.pushScope(scopeFile)
	for _, name := range seedTypedefs {
		s.DeclareTypedef(name)
	}
	return s
}

func (s *ParserState) pushScope(kind scopeKind) {
	s.scopes = append(s.scopes, &scope{kind: kind, typedefs: map[string]bool{}, tags: map[string]bool{}})
}

// PushBlock enters a new nested scope, e.g. on `{` of a compound
// statement or a function's parameter list.
func (s *ParserState) PushBlock(kind scopeKind) { s.pushScope(kind) }

// PopBlock leaves the innermost scope, discarding every typedef name
// declared within it.
func (s *ParserState) PopBlock() {
	if len(s.scopes) <= 1 {
		return
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// DeclareTypedef registers name as a typedef in the current innermost
// scope, shadowing any same-named typedef or ordinary identifier from
// an enclosing scope for the remainder of this scope's lifetime.
func (s *ParserState) DeclareTypedef(name string) {
	s.top().typedefs[name] = true
}

// UndeclareTypedef removes name from the current scope's typedef set,
// used when a declaration re-uses an identifier as an ordinary name
// within the same scope (spec.md §4.C "typedef name redeclared as an
// ordinary identifier in an inner scope").
func (s *ParserState) UndeclareTypedef(name string) {
	s.top().typedefs[name] = false
}

// IsTypedefNameInCurrentScope reports whether name is bound as a
// typedef in the innermost scope specifically (not an enclosing one),
// used to detect a same-scope redeclaration of a typedef name as an
// ordinary identifier (spec.md §8 scenario #2).
func (s *ParserState) IsTypedefNameInCurrentScope(name string) bool {
	return s.top().typedefs[name]
}

// IsTypedefName reports whether name currently resolves to a typedef,
// searching from the innermost scope outward and stopping at the
// first scope that has an explicit entry (true or false) for it.
func (s *ParserState) IsTypedefName(name string) bool {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if v, ok := s.scopes[i].typedefs[name]; ok {
			return v
		}
	}
	return false
}

// DeclareTag registers a struct/union/enum tag name in the current
// scope.
func (s *ParserState) DeclareTag(name string) {
	s.top().tags[name] = true
}

// IsTagName reports whether name is a visible struct/union/enum tag.
func (s *ParserState) IsTagName(name string) bool {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if s.scopes[i].tags[name] {
			return true
		}
	}
	return false
}

// InLoop reports whether a `break`/`continue` is currently valid.
func (s *ParserState) InLoop() bool {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if s.scopes[i].kind == scopeLoop {
			return true
		}
	}
	return false
}

// InSwitch reports whether a `case`/`default`/`break` is currently
// valid for a switch.
func (s *ParserState) InSwitch() bool {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if s.scopes[i].kind == scopeSwitch {
			return true
		}
	}
	return false
}

func (s *ParserState) top() *scope { return s.scopes[len(s.scopes)-1] }

// Depth reports the current scope nesting depth, exposed mainly for
// tests that assert scope-balance (push/pop symmetry) after a full
// parse.
func (s *ParserState) Depth() int { return len(s.scopes) }
