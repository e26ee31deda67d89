package cgrammar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Wybxc/cgrammar/ascii"
)

// astFormatToken classifies a fragment of printed tree output so
// PrintTree can apply the module's ascii.Theme, the same split the
// teacher's grammar_ast_printer.go makes between AstFormatToken_Span,
// AstFormatToken_Operator, and AstFormatToken_Literal.
type astFormatToken int

const (
	formatNone astFormatToken = iota
	formatSpan
	formatOperator
	formatOperand
	formatLiteral
)

// PrintTree renders n and its descendants as an ASCII tree annotated
// with byte spans, the same shape as the teacher's ppAstNode but
// generalized over the whole node universe via Node.String() and the
// shared children() walker (visitor.go) instead of one bespoke
// Visit*Node method per node kind -- the per-kind labels a Visitor
// would need are exactly each node's own String(), so a second
// 59-method printer would only restate that table.
func PrintTree(n Node) string {
	return PrintTreeWithTheme(n, ascii.DefaultTheme)
}

func PrintTreeWithTheme(n Node, theme ascii.Theme) string {
	pp := newTreePrinter(func(input string, token astFormatToken) string {
		switch token {
		case formatSpan:
			return ascii.Color(theme.Span, "%s", input)
		case formatOperator:
			return ascii.Color(theme.Operator, "%s", input)
		case formatOperand:
			return ascii.Color(theme.Operand, "%s", input)
		case formatLiteral:
			return ascii.Color(theme.Literal, "%s", input)
		default:
			return input
		}
	})
	printNode(pp, n)
	return pp.output.String()
}

func printNode(pp *treePrinter[astFormatToken], n Node) {
	if n == nil {
		pp.writel(pp.format("<nil>", formatOperand))
		return
	}
	pp.write(pp.format(n.String(), formatOperator))
	if detail := nodeDetail(n); detail != "" {
		pp.write(" ")
		pp.write(pp.format(detail, formatLiteral))
	}
	pp.write(" ")
	pp.writel(pp.format(n.Span().String(), formatSpan))

	kids := children(n)
	for i, kid := range kids {
		last := i == len(kids)-1
		if last {
			pp.pwrite("└── ")
			pp.indent("    ")
		} else {
			pp.pwrite("├── ")
			pp.indent("│   ")
		}
		printNode(pp, kid)
		pp.unindent()
	}
}

// nodeDetail extracts the one piece of per-node scalar data (a name,
// an operator symbol, a literal spelling) that String() deliberately
// leaves out because it only names the node's kind.
func nodeDetail(n Node) string {
	switch n := n.(type) {
	case *IdentifierExpr:
		return n.Ident.Text
	case *ConstantExpr:
		return constantText(n.Value)
	case *StringExpr:
		return escapeLiteral(n.Value.Text())
	case *MemberExpr:
		if n.Arrow {
			return "->" + n.Name.Text
		}
		return "." + n.Name.Text
	case *UnaryExpr:
		return unaryOpText(n.Op)
	case *BinaryExpr:
		return binaryOpText(n.Op)
	case *AssignExpr:
		return assignOpText(n.Op)
	case *Declarator:
		if n.Name != nil {
			return n.Name.Text
		}
	case *GotoStatement:
		return n.Label.Text
	case *LabeledStatement:
		return n.Label.Text
	case *Enumerator:
		return n.Name.Text
	case *MemberDesignator:
		return "." + n.Name.Text
	}
	return ""
}

func constantText(c *Constant) string {
	switch c.Kind {
	case ConstantInteger:
		return c.IntValue.String() + c.IntSuffix
	case ConstantFloating:
		text := strconv.FormatFloat(c.FloatValue, 'g', -1, 64)
		if !strings.ContainsAny(text, ".e") {
			text += ".0" // keep it a floating constant, not an integer
		}
		return text + c.FloatSuffix
	case ConstantCharacter:
		if c.CharValue == '\'' {
			return c.CharPrefix + `'\''`
		}
		return c.CharPrefix + "'" + escapeLiteral(string(c.CharValue)) + "'"
	case ConstantPredefined:
		return c.Predefined.String()
	default:
		return "?"
	}
}

func unaryOpText(op UnaryOp) string {
	switch op {
	case UnaryPlus:
		return "+"
	case UnaryMinus:
		return "-"
	case UnaryNot:
		return "~"
	case UnaryLogicalNot:
		return "!"
	case UnaryAddress:
		return "&"
	case UnaryDeref:
		return "*"
	case UnaryPreInc, UnaryPostInc:
		return "++"
	case UnaryPreDec, UnaryPostDec:
		return "--"
	default:
		return fmt.Sprintf("op(%d)", op)
	}
}

var binaryOpSpellings = map[BinaryOp]string{
	BinMul: "*", BinDiv: "/", BinMod: "%",
	BinAdd: "+", BinSub: "-",
	BinShl: "<<", BinShr: ">>",
	BinLt: "<", BinGt: ">", BinLe: "<=", BinGe: ">=",
	BinEq: "==", BinNe: "!=",
	BinBitAnd: "&", BinBitXor: "^", BinBitOr: "|",
	BinLogicalAnd: "&&", BinLogicalOr: "||",
}

var assignOpSpellings = map[AssignOp]string{
	AssignPlain: "=", AssignMul: "*=", AssignDiv: "/=", AssignMod: "%=",
	AssignAdd: "+=", AssignSub: "-=",
	AssignShl: "<<=", AssignShr: ">>=",
	AssignAnd: "&=", AssignXor: "^=", AssignOr: "|=",
}

func binaryOpText(op BinaryOp) string {
	if text, ok := binaryOpSpellings[op]; ok {
		return text
	}
	return fmt.Sprintf("op(%d)", op)
}

func assignOpText(op AssignOp) string {
	if text, ok := assignOpSpellings[op]; ok {
		return text
	}
	return fmt.Sprintf("op(%d)", op)
}
