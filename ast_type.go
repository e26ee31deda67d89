package cgrammar

// StorageClass is the closed set of storage-class specifiers,
// including C23 `constexpr` (spec.md §4.D).
type StorageClass int

const (
	StorageNone StorageClass = iota
	StorageTypedef
	StorageExtern
	StorageStatic
	StorageThreadLocal
	StorageAuto
	StorageRegister
	StorageConstexpr
)

// TypeQualifier bits; a declarator may combine several.
type TypeQualifier int

const (
	QualConst TypeQualifier = 1 << iota
	QualRestrict
	QualVolatile
	QualAtomic
)

// BasicTypeSpecifier is the closed set of built-in type-specifier
// keywords a DeclarationSpecifiers may carry zero or more of (C allows
// e.g. `unsigned long long int`, several keywords forming one type).
type BasicTypeSpecifier int

const (
	SpecVoid BasicTypeSpecifier = iota
	SpecChar
	SpecShort
	SpecInt
	SpecLong
	SpecFloat
	SpecDouble
	SpecSigned
	SpecUnsigned
	SpecBool
	SpecComplex
	SpecImaginary
	SpecDecimal32
	SpecDecimal64
	SpecDecimal128
)

// DeclarationSpecifiers collects every specifier/qualifier token that
// precedes a declarator, per spec.md §4.D "Declaration specifiers".
// It is not itself a Node: it has no independent span semantics a
// visitor needs to enter/leave separately from its owning Declaration,
// mirroring how the teacher keeps small aggregate value types (e.g.
// grammar choice alternatives) out of the Node/Accept universe when
// they are always visited as part of their parent.
type DeclarationSpecifiers struct {
	Storage     StorageClass
	Qualifiers  TypeQualifier
	Basic       []BasicTypeSpecifier
	Inline      bool
	Noreturn    bool
	Alignas     *AlignmentSpecifier
	TypedefName *Identifier          // set when the type is a typedef-name reference
	TagType     *StructOrUnionSpecifier // struct/union, nil if not one
	EnumType    *EnumSpecifier
	TypeofExpr  Expression           // typeof(expr) / typeof_unqual(expr)
	TypeofType  *TypeName            // typeof(type-name) / typeof_unqual(type-name)
	TypeofUnqual bool
	BitIntWidth Expression // _BitInt(N) argument, nil if not a _BitInt
	Attributes  []*AttributeSpecifier
}

// AlignmentSpecifier is `alignas(expr)` or `alignas(type-name)`.
type AlignmentSpecifier struct {
	baseNode
	Expr Expression // nil if Type is set
	Type *TypeName  // nil if Expr is set
}

func (a *AlignmentSpecifier) Accept(v Visitor) error { return v.VisitAlignmentSpecifier(a) }
func (a *AlignmentSpecifier) String() string         { return "alignas" }

// StructOrUnionSpecifier is `struct`/`union` optionally tagged and
// optionally with a member-declaration list, per spec.md §4.D
// "Struct/union members".
type StructOrUnionSpecifier struct {
	baseNode
	IsUnion bool
	Tag     string // "" if untagged
	Members []*MemberDeclaration // nil if this is a forward reference
	Attributes []*AttributeSpecifier
}

func (s *StructOrUnionSpecifier) Accept(v Visitor) error { return v.VisitStructOrUnionSpecifier(s) }
func (s *StructOrUnionSpecifier) String() string         { return "struct-or-union-specifier" }

// MemberDeclaration is one member of a struct/union, possibly
// declaring several members sharing one set of specifiers, possibly
// anonymous (no declarator at all, for an anonymous struct/union
// member), possibly a bit-field.
type MemberDeclaration struct {
	baseNode
	Specifiers DeclarationSpecifiers
	Declarators []*MemberDeclarator
	StaticAssert *StaticAssertDeclaration // set instead of Declarators for a nested static_assert
}

func (m *MemberDeclaration) Accept(v Visitor) error { return v.VisitMemberDeclaration(m) }
func (m *MemberDeclaration) String() string         { return "member-declaration" }

// MemberDeclarator is one declarator within a MemberDeclaration,
// optionally a bit-field (Width != nil) and possibly anonymous
// (Declarator == nil, a bare `: width` bit-field padding member).
type MemberDeclarator struct {
	baseNode
	Declarator *Declarator
	Width      Expression // bit-field width, nil if not a bit-field
}

func (m *MemberDeclarator) Accept(v Visitor) error { return v.VisitMemberDeclarator(m) }
func (m *MemberDeclarator) String() string         { return "member-declarator" }

// EnumSpecifier is `enum` optionally tagged, optionally with an
// underlying type (C23), optionally with an enumerator list.
type EnumSpecifier struct {
	baseNode
	Tag          string
	UnderlyingType *TypeName // C23 `enum Color : int { ... }`, nil if absent
	Enumerators  []*Enumerator // nil if this is a forward reference
	Attributes   []*AttributeSpecifier
}

func (e *EnumSpecifier) Accept(v Visitor) error { return v.VisitEnumSpecifier(e) }
func (e *EnumSpecifier) String() string         { return "enum-specifier" }

// Enumerator is one `NAME` or `NAME = expr` entry of an enum body.
type Enumerator struct {
	baseNode
	Name       *Identifier
	Value      Expression // nil if implicit
	Attributes []*AttributeSpecifier
}

func (e *Enumerator) Accept(v Visitor) error { return v.VisitEnumerator(e) }
func (e *Enumerator) String() string         { return "enumerator" }

// pointerLevel is one `*` in a declarator's pointer chain, with its
// own qualifier set (`int * const * p`).
type pointerLevel struct {
	Qualifiers TypeQualifier
	Attributes []*AttributeSpecifier
}

// declaratorSuffixKind distinguishes the closed set of things that can
// follow the direct-declarator core: array, function, or none.
type declaratorSuffixKind int

const (
	suffixNone declaratorSuffixKind = iota
	suffixArray
	suffixFunction
)

// declaratorSuffix is one `[...]` or `(...)` trailing a direct
// declarator; declarators may chain several, e.g. `int a[3][4]` or
// `int (*f(int))(int)`.
type declaratorSuffix struct {
	Kind declaratorSuffixKind

	// suffixArray
	ArrayQualifiers TypeQualifier
	ArrayStatic     bool
	ArraySize       Expression // nil for `[]`/`[*]`
	ArrayVLAStar    bool       // `[*]`, a VLA parameter placeholder

	// suffixFunction
	Params   []*ParamDeclaration
	Variadic bool // trailing `...`
	KRNames  []*Identifier // K&R-style identifier-list parameters, pre-C23 compatibility
}

// Declarator names one declared entity: an identifier wrapped in zero
// or more pointer levels and zero or more array/function suffixes,
// per spec.md §4.D "Declarator ambiguity" -- the unified representation
// the parser builds regardless of how deeply nested the `(*(*x)[3])()`
// spelling gets.
type Declarator struct {
	baseNode
	Name       *Identifier // nil for an AbstractDeclarator-shaped use (unnamed)
	Pointers   []pointerLevel
	Suffixes   []declaratorSuffix
	Attributes []*AttributeSpecifier
	Nested     *Declarator // set for a parenthesized declarator core, e.g. `(*x)`
}

func (d *Declarator) Accept(v Visitor) error { return v.VisitDeclarator(d) }
func (d *Declarator) String() string {
	if d.Name != nil {
		return "declarator(" + d.Name.Text + ")"
	}
	return "declarator"
}

// TypeName is a type-name used where no identifier is declared: cast
// targets, sizeof/alignof operands, generic-selection associations,
// compound-literal targets.
type TypeName struct {
	baseNode
	Specifiers DeclarationSpecifiers
	Declarator *Declarator // abstract declarator, nil if the bare specifiers are the whole type
}

func (t *TypeName) Accept(v Visitor) error { return v.VisitTypeName(t) }
func (t *TypeName) String() string         { return "type-name" }

// ParamDeclaration is one parameter of a function declarator/prototype.
type ParamDeclaration struct {
	baseNode
	Specifiers DeclarationSpecifiers
	Declarator *Declarator // may be abstract (unnamed parameter)
}

func (p *ParamDeclaration) Accept(v Visitor) error { return v.VisitParamDeclaration(p) }
func (p *ParamDeclaration) String() string         { return "param-declaration" }
