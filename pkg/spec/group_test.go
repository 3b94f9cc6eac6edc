package spec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gospec/pkg/spec"
)

func TestDescribe_BuildsTreeInDeclaredOrder(t *testing.T) {
	root := spec.Describe("Array", func(g *spec.G) {
		g.It("first", func(s *spec.Scope) {})
		g.Describe("#size", func(g *spec.G) {
			g.It("counts", func(s *spec.Scope) {})
		})
		g.Pending("later")
		g.Context("when empty", func(g *spec.G) {
			g.It("", nil)
		})
	})

	require.Nil(t, root.Parent())
	assert.Equal(t, "Array", root.Description())
	require.Len(t, root.Items(), 4)

	children := root.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "#size", children[0].Description())
	assert.Same(t, root, children[0].Parent())
	assert.Equal(t, "Array when empty", children[1].FullDescription())

	examples := root.Examples()
	require.Len(t, examples, 2)
	assert.False(t, examples[0].Pending())
	assert.True(t, examples[1].Pending())
	assert.Equal(t, "later", examples[1].PendingMessage())

	assert.Equal(t, 4, root.CountExamples())
}

func TestIt_WithoutBodyIsPending(t *testing.T) {
	root := spec.Describe("x", func(g *spec.G) {
		g.It("is described", nil)
		g.It("", nil)
	})

	examples := root.Examples()
	require.Len(t, examples, 2)
	assert.Equal(t, "is described", examples[0].PendingMessage())
	assert.Equal(t, "not yet implemented", examples[1].PendingMessage())
	assert.Equal(t, "x", examples[1].FullDescription())
}

func TestDescribe_Target(t *testing.T) {
	t.Run("type target names the group", func(t *testing.T) {
		root := spec.Describe(spec.Type[[]int](), func(g *spec.G) {})
		assert.Equal(t, "[]int", root.Description())

		target, ok := root.Target()
		require.True(t, ok)
		assert.True(t, target.Constructible())
	})

	t.Run("target is inherited by nested groups", func(t *testing.T) {
		var nested *spec.Group
		root := spec.Describe(spec.Value(42), func(g *spec.G) {
			g.Describe(spec.Type[string](), func(g *spec.G) {})
		})
		nested = root.Children()[0]

		assert.Equal(t, "string", nested.Description())
		target, ok := nested.Target()
		require.True(t, ok)
		assert.Equal(t, "42", target.Name())
		assert.False(t, target.Constructible())
	})

	t.Run("string description has no target", func(t *testing.T) {
		root := spec.Context("when divided by zero", func(g *spec.G) {})
		_, ok := root.Target()
		assert.False(t, ok)
	})
}

func TestLet_RedeclarationReplacesOwnEntry(t *testing.T) {
	root := spec.Describe("x", func(g *spec.G) {
		g.Let("a", func(*spec.Scope, spec.Super) any { return 1 })
		g.Let("b", func(*spec.Scope, spec.Super) any { return 2 })
		g.Let("a", func(*spec.Scope, spec.Super) any { return 3 })
		g.Subject(func(*spec.Scope, spec.Super) any { return nil })
	})

	assert.Equal(t, []string{"a", "b", spec.SubjectName}, root.Helpers())
	assert.True(t, root.Declares("a"))
	assert.False(t, root.Declares("c"))
}

func TestGroup_SealedAfterDeclaration(t *testing.T) {
	var captured *spec.G
	spec.Describe("x", func(g *spec.G) {
		captured = g
	})

	require.PanicsWithValue(t, spec.ErrSealed, func() {
		captured.It("late", func(s *spec.Scope) {})
	})
	require.PanicsWithValue(t, spec.ErrSealed, func() {
		captured.Let("late", func(*spec.Scope, spec.Super) any { return nil })
	})
}

func TestRegistry(t *testing.T) {
	reg := spec.NewRegistry()
	a := spec.Describe("b-suite", nil)
	b := spec.Describe("a-suite", nil)
	reg.Register(a, nil, b)

	groups := reg.Groups()
	require.Len(t, groups, 2)
	assert.Same(t, a, groups[0])
	assert.Equal(t, []string{"a-suite", "b-suite"}, reg.Names())

	t.Run("rejects nested groups", func(t *testing.T) {
		root := spec.Describe("root", func(g *spec.G) {
			g.Describe("child", nil)
		})
		assert.Panics(t, func() {
			reg.Register(root.Children()[0])
		})
	})
}
