package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sdui/pkg/builder"
	"github.com/go-drift/sdui/pkg/core"
)

func TestDiff_PropertyChange(t *testing.T) {
	root := core.NewNode("container", core.Many)
	root.SetProperty("title", "Before")

	prev := builder.New()
	prev.SetRoot(root)

	next := prev.Clone()
	next.Root().SetProperty("title", "After")

	patch, err := builder.Diff(prev, next)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"After"}`, string(patch))
}

func TestDiff_IdenticalTrees(t *testing.T) {
	root := core.NewNode("text", core.Single)
	root.SetProperty("data", "same")

	prev := builder.New()
	prev.SetRoot(root)
	next := prev.Clone()

	patch, err := builder.Diff(prev, next)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(patch))
}

func TestDiff_EmptyBuilders(t *testing.T) {
	patch, err := builder.Diff(builder.New(), builder.New())
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(patch))
}
