package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sdui/pkg/core"
)

func TestSerialize_Leaf(t *testing.T) {
	n := core.NewNode("text", core.Single)
	n.SetProperty("data", "Hello")

	assert.Equal(t, map[string]any{"type": "text", "data": "Hello"}, n.Serialize())
}

func TestSerialize_ManyKeepsInsertionOrder(t *testing.T) {
	root := core.NewNode("container", core.Many)
	a := core.NewNode("text", core.Single)
	a.SetProperty("data", "A")
	b := core.NewNode("text", core.Single)
	b.SetProperty("data", "B")
	require.NoError(t, root.AddChildren(a, b))

	assert.Equal(t, map[string]any{
		"type": "container",
		"children": []any{
			map[string]any{"type": "text", "data": "A"},
			map[string]any{"type": "text", "data": "B"},
		},
	}, root.Serialize())
}

func TestSerialize_SingleDropsExtraChildren(t *testing.T) {
	root := core.NewNode("padding", core.Single)
	first := core.NewNode("text", core.Single)
	first.SetProperty("data", "kept")
	second := core.NewNode("text", core.Single)
	second.SetProperty("data", "dropped")
	third := core.NewNode("text", core.Single)
	third.SetProperty("data", "also-dropped")
	require.NoError(t, root.AddChildren(first, second, third))

	out := root.Serialize()
	assert.Equal(t, map[string]any{"type": "text", "data": "kept"}, out["child"])
	_, hasChildren := out["children"]
	assert.False(t, hasChildren)

	// The dropped children must not appear anywhere in the output.
	encoded, err := root.ToJSON()
	require.NoError(t, err)
	assert.NotContains(t, encoded, "dropped")
}

func TestSerialize_PropertyOverlayWins(t *testing.T) {
	n := core.NewNode("container", core.Many)
	child := core.NewNode("text", core.Single)
	child.SetProperty("data", "x")
	require.NoError(t, n.AddChild(child))

	n.SetProperty("type", "custom")
	n.SetProperty("children", "overridden")

	out := n.Serialize()
	assert.Equal(t, "custom", out["type"], "property overlay wins over the type tag")
	assert.Equal(t, "overridden", out["children"], "property overlay wins over the child list")
}

func TestSerialize_DotPathsMaterializeAsNestedObjects(t *testing.T) {
	n := core.NewNode("text", core.Single)
	n.SetProperty("data", "Hello")
	n.SetProperty("style.fontSize", 16)
	n.SetProperty("style.color", "red")

	assert.Equal(t, map[string]any{
		"type": "text",
		"data": "Hello",
		"style": map[string]any{
			"fontSize": 16,
			"color":    "red",
		},
	}, n.Serialize())
}

func TestToJSON_NoHTMLEscaping(t *testing.T) {
	n := core.NewNode("text", core.Single)
	n.SetProperty("data", "<b>héllo & good day</b>")

	out, err := n.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, out, "<b>héllo & good day</b>")
	assert.False(t, strings.Contains(out, `\u003c`), "angle brackets must not be escaped")
}

func TestToJSONIndent(t *testing.T) {
	n := core.NewNode("text", core.Single)
	n.SetProperty("data", "Hello")

	out, err := n.ToJSONIndent()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"data\": \"Hello\",\n  \"type\": \"text\"\n}", out)
}
