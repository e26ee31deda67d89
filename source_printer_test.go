package cgrammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reparse is a small helper: print n, parse the result again, and
// return the re-parsed tree's own printed form, so a test can assert
// printed-then-reparsed-then-printed text is a fixed point instead of
// comparing against a hand-written expected string that would be
// sensitive to this printer's exact spacing choices.
func reparsePrint(t *testing.T, src string) (string, *ParseResult[*TranslationUnit]) {
	t.Helper()
	result := ParseFile([]byte(src), "t.c", nil)
	require.Empty(t, result.Diagnostics)
	printed := Print(result.Tree)
	again := ParseFile([]byte(printed), "t.c", nil)
	require.Empty(t, again.Diagnostics, "printed output must reparse cleanly:\n%s", printed)
	return printed, &again
}

func TestPrint_RoundTripsExpressionPrecedence(t *testing.T) {
	src := `int f(int a, int b, int c) { return (a + b) * c - a / (b - c); }`
	printed, again := reparsePrint(t, src)
	assert.Contains(t, printed, "return")
	assert.Equal(t, printed, Print(again.Tree))
}

func TestPrint_OmitsRedundantParensOnLeftAssociativeChain(t *testing.T) {
	src := `int f(int a, int b, int c) { return a - b - c; }`
	printed, _ := reparsePrint(t, src)
	assert.NotContains(t, printed, "(a - b)")
}

func TestPrint_KeepsParensWhenRightOperandNeedsThem(t *testing.T) {
	src := `int f(int a, int b, int c) { return a - (b - c); }`
	printed, _ := reparsePrint(t, src)
	assert.Contains(t, printed, "(b - c)")
}

func TestPrint_FunctionAndStructDeclarations(t *testing.T) {
	src := `
typedef struct point { int x; int y; } point_t;

int add(point_t p, int n) {
	int total = p.x + p.y;
	for (int i = 0; i < n; i++) {
		total += i;
	}
	return total;
}
`
	printed, _ := reparsePrint(t, src)
	assert.Contains(t, printed, "struct point")
	assert.Contains(t, printed, "point_t")
	assert.Contains(t, printed, "for (")
}

func TestPrint_RoundTripIsStableOnSecondPass(t *testing.T) {
	src := `int f(int *p, int n) { return *p + n; }`
	first, again := reparsePrint(t, src)
	second := Print(again.Tree)
	assert.Equal(t, first, second)
}
