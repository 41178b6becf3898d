package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/errors"
	"github.com/go-drift/sdui/pkg/registry"
)

func newCardRegistry() *registry.Registry {
	r := registry.New()
	r.Register("card", func() *core.Node { return core.NewNode("card", core.Single) })
	r.RegisterSetters("card", core.Setters{
		"title": func(n *core.Node, value any) error {
			s, ok := value.(string)
			if !ok {
				return errors.InvalidArgument("card", "title must be a string, got %T", value)
			}
			n.SetProperty("title", s)
			return nil
		},
		"elevation": func(n *core.Node, value any) error {
			n.SetProperty("elevation", value)
			return nil
		},
	})
	return r
}

func TestCreate_UnregisteredKind(t *testing.T) {
	r := registry.New()
	_, err := r.Create("nope", nil)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUnsupportedKind))
}

func TestCreate_AppliesConfig(t *testing.T) {
	r := newCardRegistry()
	n, err := r.Create("card", core.NewConfig().Set("title", "Hello"))
	require.NoError(t, err)
	assert.Equal(t, "card", n.Kind())
	assert.Equal(t, "Hello", n.Property("title", nil))
}

func TestCreate_DefaultsApplyAfterExplicitConfig(t *testing.T) {
	r := newCardRegistry()
	r.RegisterDefaults("card", core.NewConfig().Set("elevation", 2))

	// The registered default is applied second and wins over the caller's
	// explicit value. Legacy ordering, relied on downstream.
	n, err := r.Create("card", core.NewConfig().Set("elevation", 1))
	require.NoError(t, err)
	assert.Equal(t, 2, n.Property("elevation", nil))
}

func TestCreate_ValidatorFailuresJoinIntoValidationError(t *testing.T) {
	r := newCardRegistry()
	r.RegisterValidator("card", func(n *core.Node) []string {
		if !n.Props().Has("title") {
			return []string{"card: title is required"}
		}
		return nil
	})

	_, err := r.Create("card", nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	var verr *errors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"card: title is required"}, verr.Errors)

	n, err := r.Create("card", core.NewConfig().Set("title", "ok"))
	require.NoError(t, err)
	assert.Empty(t, n.Validate(), "the validator stays attached to the node")
}

func TestCreate_SetterErrorFailsImmediately(t *testing.T) {
	r := newCardRegistry()
	_, err := r.Create("card", core.NewConfig().Set("title", 42))
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidArgument))
	assert.False(t, errors.IsValidation(err), "structural errors are not collected")
}

func TestRegistry_KindsAndClear(t *testing.T) {
	r := newCardRegistry()
	r.Register("banner", func() *core.Node { return core.NewNode("banner", core.Many) })
	r.RegisterValidator("ghost", func(n *core.Node) []string { return nil })

	assert.Equal(t, []string{"banner", "card"}, r.Kinds(), "kinds without constructors are not listed")
	assert.True(t, r.Has("card"))
	assert.False(t, r.Has("ghost"))

	r.Clear()
	assert.Empty(t, r.Kinds())
	_, err := r.Create("card", nil)
	assert.True(t, errors.IsKind(err, errors.KindUnsupportedKind))
}
