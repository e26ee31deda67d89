package cgrammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingVisitor embeds BaseVisitor to inherit the default recursive
// walk, overriding only the node kinds under test -- the "override
// what you need" shape the type is meant to support.
type countingVisitor struct {
	BaseVisitor
	identifiers int
	binaries    int
}

func (c *countingVisitor) VisitIdentifierExpr(n *IdentifierExpr) error {
	c.identifiers++
	return c.BaseVisitor.VisitIdentifierExpr(n)
}

func (c *countingVisitor) VisitBinaryExpr(n *BinaryExpr) error {
	c.binaries++
	return c.BaseVisitor.VisitBinaryExpr(n)
}

func TestBaseVisitor_WalksEveryNodeOnce(t *testing.T) {
	result := ParseFile([]byte("int f(void) { return (a + b) * (c + a); }"), "t.c", []string{})
	require.Empty(t, result.Diagnostics)

	cv := &countingVisitor{}
	cv.BaseVisitor.Self = cv
	require.NoError(t, result.Tree.Accept(cv))

	assert.Equal(t, 4, cv.identifiers) // a, b, c, a
	assert.Equal(t, 3, cv.binaries)    // a+b, c+a, (a+b)*(c+a)
}

func TestInspect_InvokesCallbackForEveryDescendant(t *testing.T) {
	result := ParseFile([]byte("int f(void) { return a + b; }"), "t.c", nil)
	require.Empty(t, result.Diagnostics)

	var visited []string
	Inspect(result.Tree, func(n Node) bool {
		visited = append(visited, n.String())
		return true
	})

	assert.Contains(t, visited, "translation-unit")
	assert.Contains(t, visited, "function-definition")
	assert.Contains(t, visited, "return-statement")
	assert.Contains(t, visited, "binary")
}

func TestInspect_PruningSkipsChildren(t *testing.T) {
	result := ParseFile([]byte("int f(void) { return a + b; }"), "t.c", nil)
	require.Empty(t, result.Diagnostics)

	seenBinary := false
	var seenIdentifierInsideBinary bool
	Inspect(result.Tree, func(n Node) bool {
		if _, ok := n.(*BinaryExpr); ok {
			seenBinary = true
			return false // prune: don't descend into its operands
		}
		if _, ok := n.(*IdentifierExpr); ok {
			seenIdentifierInsideBinary = true
		}
		return true
	})

	assert.True(t, seenBinary)
	assert.False(t, seenIdentifierInsideBinary)
}

// roleCollector only overrides the semantic-aware identifier hooks,
// never the node-kind ones, to check that every identifier-carrying
// node routes through them regardless of where it appears in the
// grammar (spec.md §4.E "Identifier visit methods are semantic-aware").
type roleCollector struct {
	BaseVisitor
	variables, types, labels, members, enumerators, attributeNames []string
}

func (c *roleCollector) VisitVariableReference(id *Identifier) error {
	c.variables = append(c.variables, id.Text)
	return nil
}
func (c *roleCollector) VisitTypeReference(id *Identifier) error {
	c.types = append(c.types, id.Text)
	return nil
}
func (c *roleCollector) VisitLabelReference(id *Identifier) error {
	c.labels = append(c.labels, id.Text)
	return nil
}
func (c *roleCollector) VisitMemberReference(id *Identifier) error {
	c.members = append(c.members, id.Text)
	return nil
}
func (c *roleCollector) VisitEnumeratorReference(id *Identifier) error {
	c.enumerators = append(c.enumerators, id.Text)
	return nil
}
func (c *roleCollector) VisitAttributeNameReference(name string) error {
	c.attributeNames = append(c.attributeNames, name)
	return nil
}

func TestBaseVisitor_SemanticRoleDispatch(t *testing.T) {
	src := `
typedef struct point { int x; } point_t;

enum color { RED, GREEN };

int sum(point_t p) {
	int total = p.x;
	goto done;
done:
	return total + RED;
}
`
	result := ParseFile([]byte(src), "t.c", nil)
	require.Empty(t, result.Diagnostics)

	c := &roleCollector{}
	c.BaseVisitor.Self = c
	require.NoError(t, result.Tree.Accept(c))

	assert.Contains(t, c.types, "point_t")
	assert.Contains(t, c.labels, "done")
	assert.Contains(t, c.members, "x")
	assert.Contains(t, c.enumerators, "RED")
	assert.Contains(t, c.variables, "total")
}

func TestMutableVisitor_IdentityLeavesTreeStructurallyEqual(t *testing.T) {
	src := `int f(int a, int b) { return a + b * (a - b); }`
	result := ParseFile([]byte(src), "t.c", nil)
	require.Empty(t, result.Diagnostics)

	before := PrintTree(result.Tree)

	v := BaseMutableVisitor{}
	require.NoError(t, MutateTranslationUnit(v, result.Tree))

	after := PrintTree(result.Tree)
	assert.Equal(t, before, after)
}

// constantFolder rewrites every `N + 0` BinaryExpr into a bare `N`,
// exercising subtree replacement through a slot pointer rather than
// in-place field mutation.
type constantFolder struct {
	BaseMutableVisitor
	folds int
}

func (f *constantFolder) MutateExpression(slot *Expression) error {
	if bin, ok := (*slot).(*BinaryExpr); ok && bin.Op == BinAdd {
		if c, ok := bin.Rhs.(*ConstantExpr); ok && c.Value.Kind == ConstantInteger && c.Value.IntValue.Lo == 0 && c.Value.IntValue.Hi == 0 {
			f.folds++
			*slot = bin.Lhs
			return f.MutateExpression(slot)
		}
	}
	return f.BaseMutableVisitor.MutateExpression(slot)
}

func TestMutableVisitor_ReplacesSubtreeThroughSlot(t *testing.T) {
	src := `int f(int a) { return a + 0; }`
	result := ParseFile([]byte(src), "t.c", nil)
	require.Empty(t, result.Diagnostics)

	f := &constantFolder{}
	f.BaseMutableVisitor.Self = f
	require.NoError(t, MutateTranslationUnit(f, result.Tree))
	assert.Equal(t, 1, f.folds)

	fn := result.Tree.Declarations[0].(*FunctionDefinition)
	ret := fn.Body.Items[0].(*ReturnStatement)
	_, isIdent := ret.Value.(*IdentifierExpr)
	assert.True(t, isIdent, "expected `a + 0` folded down to the bare identifier `a`")
}
