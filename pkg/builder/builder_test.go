package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sdui/pkg/builder"
	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/errors"
	"github.com/go-drift/sdui/pkg/registry"
)

func TestBuild_HelloWorld(t *testing.T) {
	root := core.NewNode("container", core.Many)
	hello := core.NewNode("text", core.Single)
	hello.SetProperty("data", "Hello")
	world := core.NewNode("text", core.Single)
	world.SetProperty("data", "World")
	require.NoError(t, root.AddChildren(hello, world))

	b := builder.New()
	b.SetRoot(root)

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"type": "container",
		"children": []any{
			map[string]any{"type": "text", "data": "Hello"},
			map[string]any{"type": "text", "data": "World"},
		},
	}, out)
}

// Serialize without a root yields an empty mapping, while Build on the same
// builder fails because validation flags the missing root. Both behaviors are
// load-bearing; keep them pinned together.
func TestEmptyBuilder_SerializeVersusBuild(t *testing.T) {
	b := builder.New()

	assert.Equal(t, map[string]any{}, b.Serialize())

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	var verr *errors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"root component is required"}, verr.Errors)
}

func TestValidate_CombinesRootErrorsWithTreeErrors(t *testing.T) {
	root := core.NewNode("", core.Many)
	child := core.NewNode("text", core.Single)
	child.SetValidator(func(n *core.Node) []string {
		return []string{"text: data is required"}
	})
	require.NoError(t, root.AddChild(child))

	b := builder.New()
	b.SetRoot(root)

	assert.Equal(t, []string{
		"component type is required",
		"text: data is required",
	}, b.Validate())
}

func TestNewNode_ResolvesBuilderRegistryBeforeDefault(t *testing.T) {
	own := registry.New()
	own.Register("badge", func() *core.Node { return core.NewNode("badge", core.Single) })

	b := builder.New(builder.WithRegistry(own))

	n, err := b.NewNode("badge", nil)
	require.NoError(t, err)
	assert.Equal(t, "badge", n.Kind())

	_, err = b.NewNode("missing-everywhere", nil)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUnknownOperation))
}

func TestClone_DeepClonesRoot(t *testing.T) {
	root := core.NewNode("container", core.Many)
	text := core.NewNode("text", core.Single)
	text.SetProperty("data", "Hello")
	require.NoError(t, root.AddChild(text))

	b := builder.New()
	b.SetRoot(root)

	clone := b.Clone()
	require.NotNil(t, clone.Root())
	assert.NotSame(t, b.Root(), clone.Root())
	assert.Equal(t, b.Serialize(), clone.Serialize())

	clone.Root().Children()[0].SetProperty("data", "changed")
	assert.Equal(t, "Hello", b.Root().Children()[0].Property("data", nil))
}

func TestClone_EmptyBuilder(t *testing.T) {
	b := builder.New()
	clone := b.Clone()
	assert.Nil(t, clone.Root())
}

func TestWithStrictSingleChild(t *testing.T) {
	root := core.NewNode("padding", core.Single)
	require.NoError(t, root.AddChildren(
		core.NewNode("text", core.Single),
		core.NewNode("text", core.Single),
	))

	lenient := builder.New()
	lenient.SetRoot(root)
	assert.Empty(t, lenient.Validate(), "extra children are dropped silently by default")

	strict := builder.New(builder.WithStrictSingleChild())
	strict.SetRoot(root)
	assert.Equal(t, []string{"padding: single-child component has 2 children"}, strict.Validate())
}

func TestToJSON(t *testing.T) {
	root := core.NewNode("text", core.Single)
	root.SetProperty("data", "Hello")

	b := builder.New()
	b.SetRoot(root)

	out, err := b.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"text","data":"Hello"}`, out)

	empty := builder.New()
	_, err = empty.ToJSON()
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}
