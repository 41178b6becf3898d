package widgets

import (
	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/errors"
	"github.com/go-drift/sdui/pkg/registry"
)

// Padding insets a single child. The padding value is either one number for
// all four sides or a mapping with left/top/right/bottom keys.
//
// Configuration keys: padding (required).
func Padding(all float64) *core.Node {
	n := core.NewNode("padding", core.Single)
	n.SetProperty("padding", all)
	n.SetValidator(validatePadding)
	return n
}

func paddingSetters() core.Setters {
	const op = "widgets.padding"
	return core.Setters{
		"padding": func(n *core.Node, value any) error {
			switch value.(type) {
			case map[string]any:
				n.SetProperty("padding", value)
				return nil
			}
			f, err := numberValue(op, "padding", value)
			if err != nil {
				return errors.InvalidArgument(op, "padding must be a number or a side mapping, got %T", value)
			}
			n.SetProperty("padding", f)
			return nil
		},
	}
}

func validatePadding(n *core.Node) []string {
	return requireProperty(n, "padding", "padding")
}

func registerPadding(r *registry.Registry) {
	r.Register("padding", func() *core.Node { return core.NewNode("padding", core.Single) })
	r.RegisterSetters("padding", paddingSetters())
	r.RegisterValidator("padding", validatePadding)
}
