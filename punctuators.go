package cgrammar

// PunctuatorKind enumerates the C23 punctuator set, excluding digraphs
// by deliberate design choice (spec.md §4.B, §9 "Digraph punctuators
// are deliberately unsupported").
type PunctuatorKind int

const (
	PLBracket PunctuatorKind = iota // [
	PRBracket                       // ]
	PLParen                         // (
	PRParen                         // )
	PLBrace                         // {
	PRBrace                         // }
	PDot                            // .
	PArrow                          // ->
	PIncr                           // ++
	PDecr                           // --
	PAmp                            // &
	PStar                           // *
	PPlus                           // +
	PMinus                          // -
	PTilde                          // ~
	PBang                           // !
	PSlash                          // /
	PPercent                        // %
	PLShift                         // <<
	PRShift                         // >>
	PLt                             // <
	PGt                             // >
	PLe                             // <=
	PGe                             // >=
	PEqEq                           // ==
	PNe                             // !=
	PCaret                          // ^
	PPipe                           // |
	PAndAnd                         // &&
	POrOr                           // ||
	PQuestion                       // ?
	PColon                          // :
	PSemi                           // ;
	PEllipsis                       // ...
	PEq                             // =
	PStarEq                         // *=
	PSlashEq                        // /=
	PPercentEq                      // %=
	PPlusEq                         // +=
	PMinusEq                        // -=
	PLShiftEq                       // <<=
	PRShiftEq                       // >>=
	PAmpEq                          // &=
	PCaretEq                        // ^=
	PPipeEq                         // |=
	PComma                          // ,
	PHash                           // #
	PHashHash                      // ##
	PLAttr                          // [[
	PRAttr                          // ]]
	PColonColon                    // ::
)

// punctuatorSpellings lists every punctuator spelling, longest first
// within each starting byte, so the lexer's maximal-munch scan can
// walk it directly.
var punctuatorSpellings = []struct {
	text string
	kind PunctuatorKind
}{
	{"[[", PLAttr},
	{"]]", PRAttr},
	{"...", PEllipsis},
	{"<<=", PLShiftEq},
	{">>=", PRShiftEq},
	{"->", PArrow},
	{"++", PIncr},
	{"--", PDecr},
	{"<<", PLShift},
	{">>", PRShift},
	{"<=", PLe},
	{">=", PGe},
	{"==", PEqEq},
	{"!=", PNe},
	{"&&", PAndAnd},
	{"||", POrOr},
	{"*=", PStarEq},
	{"/=", PSlashEq},
	{"%=", PPercentEq},
	{"+=", PPlusEq},
	{"-=", PMinusEq},
	{"&=", PAmpEq},
	{"^=", PCaretEq},
	{"|=", PPipeEq},
	{"##", PHashHash},
	{"::", PColonColon},
	{"[", PLBracket},
	{"]", PRBracket},
	{"(", PLParen},
	{")", PRParen},
	{"{", PLBrace},
	{"}", PRBrace},
	{".", PDot},
	{"&", PAmp},
	{"*", PStar},
	{"+", PPlus},
	{"-", PMinus},
	{"~", PTilde},
	{"!", PBang},
	{"/", PSlash},
	{"%", PPercent},
	{"<", PLt},
	{">", PGt},
	{"^", PCaret},
	{"|", PPipe},
	{"?", PQuestion},
	{":", PColon},
	{";", PSemi},
	{"=", PEq},
	{",", PComma},
	{"#", PHash},
}

// openerFor maps an opening punctuator to the closer it must balance
// with, used by the lexer's bracket-balancing stack.
var openerFor = map[PunctuatorKind]PunctuatorKind{
	PLParen:   PRParen,
	PLBracket: PRBracket,
	PLBrace:   PRBrace,
	PLAttr:    PRAttr,
}

func isOpener(k PunctuatorKind) bool {
	_, ok := openerFor[k]
	return ok
}

func isCloser(k PunctuatorKind) bool {
	switch k {
	case PRParen, PRBracket, PRBrace, PRAttr:
		return true
	default:
		return false
	}
}

func matches(open, close PunctuatorKind) bool {
	return openerFor[open] == close
}
