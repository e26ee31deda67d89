package cgrammar

// Node is the common trait every AST node implements, per spec.md §3
// "AST node". The node universe is closed: Accept uses a type switch
// in the default Walk functions, not an open registry, so adding a
// node kind is a deliberate, centralized change -- exactly the
// teacher's `grammar_ast.go` pattern (Accept(Visitor) error + Equal),
// generalized from grammar nodes to C translation-unit nodes.
type Node interface {
	Span() Span
	Accept(v Visitor) error
	String() string
}

// baseNode carries the span every concrete node embeds, mirroring the
// teacher's convention of a small embedded struct for shared fields
// rather than a base-class hierarchy.
type baseNode struct {
	span Span
}

func (b baseNode) Span() Span { return b.span }

// Attribute is one `name` or `name(args)` entry inside a `[[...]]`
// attribute-specifier (spec.md §4.D "Attributes").
type Attribute struct {
	baseNode
	Prefix string // "", "gnu", "clang", vendor namespace before `::`
	Name   string
	Args   *BalancedTokenSequence // nil if the attribute takes no arguments
}

func (a *Attribute) Accept(v Visitor) error { return v.VisitAttribute(a) }
func (a *Attribute) String() string         { return "attribute(" + a.Name + ")" }

// AttributeSpecifier is a `[[attr, attr(...)]]` group. The parser
// builds it only from the `[[ ]]` form; vendor
// `__attribute__((...))`/`__declspec(...)` groups are not recognized.
type AttributeSpecifier struct {
	baseNode
	Vendor     bool // marks a __attribute__/__declspec group; the parser always leaves it false
	Attributes []*Attribute
}

func (a *AttributeSpecifier) Accept(v Visitor) error { return v.VisitAttributeSpecifier(a) }
func (a *AttributeSpecifier) String() string         { return "attribute-specifier" }

// TranslationUnit is the root node: an ordered sequence of external
// declarations, per spec.md §3 "TranslationUnit".
type TranslationUnit struct {
	baseNode
	Declarations []ExternalDeclaration
}

func (t *TranslationUnit) Accept(v Visitor) error { return v.VisitTranslationUnit(t) }
func (t *TranslationUnit) String() string         { return "translation-unit" }

// ExternalDeclaration is the closed set of things that may appear at
// file scope: a function definition, a declaration, or a static
// assertion.
type ExternalDeclaration interface {
	Node
	externalDeclarationNode()
}

// Placeholder stands in for a syntax construct the parser could not
// make sense of during error recovery (spec.md §4.E "Error recovery");
// it carries the raw token range so a consumer can still render
// something for the malformed region instead of losing it entirely.
type Placeholder struct {
	baseNode
	Tokens []Token
}

func (p *Placeholder) Accept(v Visitor) error      { return v.VisitPlaceholder(p) }
func (p *Placeholder) String() string              { return "placeholder" }
func (p *Placeholder) externalDeclarationNode()     {}
func (p *Placeholder) statementNode()               {}
func (p *Placeholder) blockItemNode()               {}
