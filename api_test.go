package cgrammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_MainReturnsZero(t *testing.T) {
	result := ParseFile([]byte("int main(void) { return 0; }"), "main.c", nil)
	require.Empty(t, result.Diagnostics)
	require.Len(t, result.Tree.Declarations, 1)

	fn, ok := result.Tree.Declarations[0].(*FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Declarator.Name.Text)
	require.Len(t, fn.Body.Items, 1)

	ret, ok := fn.Body.Items[0].(*ReturnStatement)
	require.True(t, ok)
	cst, ok := ret.Value.(*ConstantExpr)
	require.True(t, ok)
	assert.Equal(t, uint64(0), cst.Value.IntValue.Lo)
}

func TestParseFile_TypedefMakesDeclarationVisible(t *testing.T) {
	src := `
typedef struct point { int x, y; } point_t, *point_ptr;
point_t origin;
point_ptr p;
`
	result := ParseFile([]byte(src), "t.c", nil)
	require.Empty(t, result.Diagnostics)
	require.Len(t, result.Tree.Declarations, 3)

	for _, decl := range result.Tree.Declarations[1:] {
		d, ok := decl.(*Declaration)
		require.True(t, ok)
		assert.Nil(t, d.Specifiers.TagType)
		assert.NotNil(t, d.Specifiers.TypedefName)
	}
}

func TestParseFile_AmbiguousStarWithoutSeededTypedef(t *testing.T) {
	// Without `a` registered as a typedef, `a * b;` must parse as a
	// multiplication expression statement, not a pointer declaration.
	result := ParseFile([]byte("void f(void) { a * b; }"), "t.c", nil)
	require.Empty(t, result.Diagnostics)

	fn := result.Tree.Declarations[0].(*FunctionDefinition)
	require.Len(t, fn.Body.Items, 1)
	stmt, ok := fn.Body.Items[0].(*ExpressionStatement)
	require.True(t, ok)
	_, ok = stmt.Expr.(*BinaryExpr)
	assert.True(t, ok, "expected a*b to parse as a binary expression")
}

func TestParseFile_AmbiguousStarWithSeededTypedef(t *testing.T) {
	// With `a` seeded as a typedef name, `a * b;` must parse as a
	// declaration of `b` with pointer type `a`.
	result := ParseFile([]byte("void f(void) { a * b; }"), "t.c", []string{"a"})
	require.Empty(t, result.Diagnostics)

	fn := result.Tree.Declarations[0].(*FunctionDefinition)
	require.Len(t, fn.Body.Items, 1)
	decl, ok := fn.Body.Items[0].(*Declaration)
	require.True(t, ok, "expected a*b to parse as a declaration")
	require.Len(t, decl.Declarators, 1)
	assert.Equal(t, "b", decl.Declarators[0].Declarator.Name.Text)
	assert.Len(t, decl.Declarators[0].Declarator.Pointers, 1)
}

func TestParseFile_GenericSelection(t *testing.T) {
	src := `int f(void) { return _Generic(1, int: 1, default: 0); }`
	result := ParseFile([]byte(src), "t.c", nil)
	require.Empty(t, result.Diagnostics)

	fn := result.Tree.Declarations[0].(*FunctionDefinition)
	ret := fn.Body.Items[0].(*ReturnStatement)
	sel, ok := ret.Value.(*GenericSelectionExpr)
	require.True(t, ok)
	require.Len(t, sel.Associations, 2)
	assert.True(t, sel.Associations[1].Default)
}

func TestParseFile_FlexibleArrayMember(t *testing.T) {
	src := `struct buf { int len; char data[]; };`
	result := ParseFile([]byte(src), "t.c", nil)
	require.Empty(t, result.Diagnostics)

	decl := result.Tree.Declarations[0].(*Declaration)
	require.NotNil(t, decl.Specifiers.TagType)
	require.Len(t, decl.Specifiers.TagType.Members, 2)

	last := decl.Specifiers.TagType.Members[1]
	suffixes := last.Declarators[0].Declarator.Suffixes
	require.Len(t, suffixes, 1)
	assert.Equal(t, suffixArray, suffixes[0].Kind)
	assert.Nil(t, suffixes[0].ArraySize)
}

func TestParseFile_FlexibleArrayMemberNotLastIsDiagnosed(t *testing.T) {
	src := `struct buf { char data[]; int len; };`
	result := ParseFile([]byte(src), "t.c", nil)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, SeverityError, result.Diagnostics[0].Severity)
	assert.Contains(t, result.Diagnostics[0].Message, "flexible array member")

	decl := result.Tree.Declarations[0].(*Declaration)
	require.Len(t, decl.Specifiers.TagType.Members, 2)
}

func TestParseFile_CaseOutsideSwitchIsDiagnosed(t *testing.T) {
	src := `void f(void) { case 1:; }`
	result := ParseFile([]byte(src), "t.c", nil)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, SeverityError, result.Diagnostics[0].Severity)
	assert.Contains(t, result.Diagnostics[0].Message, "'case'")
}

func TestParseFile_DefaultOutsideSwitchIsDiagnosed(t *testing.T) {
	src := `void f(void) { default:; }`
	result := ParseFile([]byte(src), "t.c", nil)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, SeverityError, result.Diagnostics[0].Severity)
	assert.Contains(t, result.Diagnostics[0].Message, "'default'")
}

func TestParseFile_CaseInsideSwitchIsNotDiagnosed(t *testing.T) {
	src := `void f(int x) { switch (x) { case 1: break; default: break; } }`
	result := ParseFile([]byte(src), "t.c", nil)
	assert.Empty(t, result.Diagnostics)
}

func TestParseFile_TypedefRedeclaredAsVariableIsDiagnosed(t *testing.T) {
	// spec.md §8 scenario #2: within one block, `typedef int T; T x; int T;`
	// -- the third declaration still yields a Declaration naming T as a
	// variable, but with a redeclaration diagnostic.
	src := `void f(void) { typedef int T; T x; int T; }`
	result := ParseFile([]byte(src), "t.c", nil)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, SeverityError, result.Diagnostics[0].Severity)
	assert.Contains(t, result.Diagnostics[0].Message, "redeclaration")

	fn := result.Tree.Declarations[0].(*FunctionDefinition)
	require.Len(t, fn.Body.Items, 3)
	last := fn.Body.Items[2].(*Declaration)
	assert.Equal(t, "T", last.Declarators[0].Declarator.Name.Text)
	assert.Equal(t, RoleVariable, last.Declarators[0].Declarator.Name.Role)
}

func TestParseFile_DigitSeparatorArraySizeWithRangeDesignator(t *testing.T) {
	src := `int table[1'000] = { [0 ... 9] = 1 };`
	result := ParseFile([]byte(src), "t.c", nil)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, SeverityWarning, result.Diagnostics[0].Severity)

	decl := result.Tree.Declarations[0].(*Declaration)
	arrSize := decl.Declarators[0].Declarator.Suffixes[0].ArraySize
	cst, ok := arrSize.(*ConstantExpr)
	require.True(t, ok)
	assert.Equal(t, uint64(1000), cst.Value.IntValue.Lo)

	init := decl.Declarators[0].Initializer.(*ListInitializer)
	_, ok = init.Items[0].Designators[0].(*RangeDesignator)
	assert.True(t, ok)
}

func TestParseFile_ErrorRecoverySkipsToNextDeclaration(t *testing.T) {
	src := `int a = ; int b = 1;`
	result := ParseFile([]byte(src), "t.c", nil)
	require.NotEmpty(t, result.Diagnostics)
	require.Len(t, result.Tree.Declarations, 2)

	_, ok := result.Tree.Declarations[0].(*Placeholder)
	assert.True(t, ok)
	decl, ok := result.Tree.Declarations[1].(*Declaration)
	require.True(t, ok)
	assert.Equal(t, "b", decl.Declarators[0].Declarator.Name.Text)
}

func TestSpliceToken_EmbedsPrebuiltExpressionVerbatim(t *testing.T) {
	// Quasi-quoting: a caller assembling a token-level template splices
	// in a pre-built AST fragment instead of source text (spec.md §9).
	lexOpts := DefaultLexOptions()
	lexOpts.Filename = "template.c"
	tokens, sources, diags := Lex([]byte("x + HOLE;"), lexOpts)
	require.Empty(t, diags)

	hole := &ConstantExpr{Value: &Constant{Kind: ConstantInteger, IntValue: Int128{Lo: 42}}}
	for i, tok := range tokens.Tokens {
		if tok.Kind == TokenIdentifier && tok.Text == "HOLE" {
			tokens.Tokens[i] = SpliceToken(tok.Span, hole)
		}
	}

	sink := NewSink()
	state := NewState(sink, nil)
	p := NewParser(tokens, sources, FileID(0), DefaultParserOptions(), sink, state)

	expr, err := ParseExpression(p)
	require.NoError(t, err)
	bin, ok := expr.(*BinaryExpr)
	require.True(t, ok)
	spliced, ok := bin.Rhs.(*ConstantExpr)
	require.True(t, ok, "expected the splice to be embedded verbatim as the binary's RHS")
	assert.Same(t, hole, spliced)
}

func TestPrintTree_DoesNotPanicOnFullTranslationUnit(t *testing.T) {
	src := `
enum color : int { red, green, blue };
struct point { int x, y; };
int add(int a, int b) { return a + b; }
`
	result := ParseFile([]byte(src), "t.c", nil)
	require.Empty(t, result.Diagnostics)
	out := PrintTree(result.Tree)
	assert.Contains(t, out, "translation-unit")
	assert.Contains(t, out, "function-definition")
}
