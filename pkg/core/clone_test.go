package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sdui/pkg/core"
)

func buildSampleTree(t *testing.T) *core.Node {
	t.Helper()
	root := core.NewNode("container", core.Many)
	root.SetProperty("style.background", "white")
	text := core.NewNode("text", core.Single)
	text.SetProperty("data", "Hello")
	icon := core.NewNode("icon", core.Single)
	icon.SetProperty("icon", "star")
	require.NoError(t, root.AddChildren(text, icon))
	return root
}

func TestClone_SerializesIdentically(t *testing.T) {
	original := buildSampleTree(t)
	clone := original.Clone()

	assert.Equal(t, original.Serialize(), clone.Serialize())
	assert.Nil(t, clone.Parent(), "a clone is detached until attached elsewhere")
	assert.Equal(t, original.Multiplicity(), clone.Multiplicity())
}

func TestClone_IsStructurallyIndependent(t *testing.T) {
	original := buildSampleTree(t)
	clone := original.Clone()

	// Mutating the clone leaves the original untouched.
	clone.SetProperty("style.background", "black")
	clone.Children()[0].SetProperty("data", "changed")
	assert.Equal(t, "white", original.Property("style.background", nil))
	assert.Equal(t, "Hello", original.Children()[0].Property("data", nil))

	// And the other way around.
	original.SetProperty("style.border", "thin")
	assert.False(t, clone.Props().Has("style.border"))

	// Child nodes are new objects wired to the clone.
	assert.NotSame(t, original.Children()[0], clone.Children()[0])
	assert.Same(t, clone, clone.Children()[0].Parent())
}

func TestClone_KeepsValidator(t *testing.T) {
	n := core.NewNode("text", core.Single)
	n.SetValidator(func(n *core.Node) []string {
		return []string{"text: data is required"}
	})

	assert.Equal(t, []string{"text: data is required"}, n.Clone().Validate())
}
