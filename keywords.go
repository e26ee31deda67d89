package cgrammar

// KeywordKind enumerates the C23 reserved words recognized after
// tokenization by exact-match against the identifier spelling, per
// spec.md §4.B "Keywords".
type KeywordKind int

const (
	KwAuto KeywordKind = iota
	KwBreak
	KwCase
	KwChar
	KwConst
	KwContinue
	KwDefault
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExtern
	KwFloat
	KwFor
	KwGoto
	KwIf
	KwInline
	KwInt
	KwLong
	KwRegister
	KwRestrict
	KwReturn
	KwShort
	KwSigned
	KwSizeof
	KwStatic
	KwStruct
	KwSwitch
	KwTypedef
	KwUnion
	KwUnsigned
	KwVoid
	KwVolatile
	KwWhile

	// C11/C23 underscore-prefixed keywords.
	KwAtomic
	KwBitInt
	KwBool
	KwComplex
	KwDecimal32
	KwDecimal64
	KwDecimal128
	KwGeneric
	KwImaginary
	KwNoreturn
	KwStaticAssert
	KwThreadLocal

	// C23 contextual-looking but reserved plain-spelling keywords.
	KwAlignas
	KwAlignof
	KwBoolC23
	KwConstexpr
	KwFalse
	KwNullptr
	KwStaticAssertC23
	KwThreadLocalC23
	KwTrue
	KwTypeof
	KwTypeofUnqual

	// Non-standard statement extension keywords retained for tool
	// compatibility (spec.md §4.D "Statement extensions").
	KwTry
	KwCatch
	KwThrow
)

// keywordTable maps spelling to KeywordKind. KwBoolC23/KwStaticAssertC23/
// KwThreadLocalC23 are the plain-spelling forms that C23 promoted
// from their _Xxx predecessors; both spellings are accepted, the lexer
// keeps them as distinct kinds, and the parser treats each pair alike.
// `_Alignof` and `alignof` share the single kind KwAlignof.
var keywordTable = map[string]KeywordKind{
	"auto":         KwAuto,
	"break":        KwBreak,
	"case":         KwCase,
	"char":         KwChar,
	"const":        KwConst,
	"continue":     KwContinue,
	"default":      KwDefault,
	"do":           KwDo,
	"double":       KwDouble,
	"else":         KwElse,
	"enum":         KwEnum,
	"extern":       KwExtern,
	"float":        KwFloat,
	"for":          KwFor,
	"goto":         KwGoto,
	"if":           KwIf,
	"inline":       KwInline,
	"int":          KwInt,
	"long":         KwLong,
	"register":     KwRegister,
	"restrict":     KwRestrict,
	"return":       KwReturn,
	"short":        KwShort,
	"signed":       KwSigned,
	"sizeof":       KwSizeof,
	"static":       KwStatic,
	"struct":       KwStruct,
	"switch":       KwSwitch,
	"typedef":      KwTypedef,
	"union":        KwUnion,
	"unsigned":     KwUnsigned,
	"void":         KwVoid,
	"volatile":     KwVolatile,
	"while":        KwWhile,

	"_Alignof":      KwAlignof,
	"_Atomic":       KwAtomic,
	"_BitInt":       KwBitInt,
	"_Bool":         KwBool,
	"_Complex":      KwComplex,
	"_Decimal32":    KwDecimal32,
	"_Decimal64":    KwDecimal64,
	"_Decimal128":   KwDecimal128,
	"_Generic":      KwGeneric,
	"_Imaginary":    KwImaginary,
	"_Noreturn":     KwNoreturn,
	"_Static_assert": KwStaticAssert,
	"_Thread_local":  KwThreadLocal,

	"alignas":       KwAlignas,
	"alignof":       KwAlignof,
	"bool":          KwBoolC23,
	"constexpr":     KwConstexpr,
	"false":         KwFalse,
	"nullptr":       KwNullptr,
	"static_assert": KwStaticAssertC23,
	"thread_local":  KwThreadLocalC23,
	"true":          KwTrue,
	"typeof":        KwTypeof,
	"typeof_unqual": KwTypeofUnqual,

	"try":   KwTry,
	"catch": KwCatch,
	"throw": KwThrow,
}

// LookupKeyword returns the KeywordKind for spelling text and true if
// text names a C23 keyword.
func LookupKeyword(text string) (KeywordKind, bool) {
	k, ok := keywordTable[text]
	return k, ok
}

// nonStandardKeywords are accepted productions the parser flags as
// non-standard extensions when used (spec.md §4.D, §9).
var nonStandardKeywords = map[KeywordKind]bool{
	KwTry:   true,
	KwCatch: true,
	KwThrow: true,
}
