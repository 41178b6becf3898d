package widgets

import (
	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/registry"
)

// Scroll makes its single child scrollable along one axis.
//
// Configuration keys: direction (defaults to vertical).
func Scroll() *core.Node {
	n := core.NewNode("scroll", core.Single)
	n.SetProperty("direction", "vertical")
	n.SetValidator(validateScroll)
	return n
}

var scrollDirections = []string{"vertical", "horizontal"}

func scrollSetters() core.Setters {
	const op = "widgets.scroll"
	return core.Setters{
		"direction": enumSetter(op, "direction", scrollDirections...),
	}
}

func validateScroll(n *core.Node) []string {
	return checkStoredEnum(n, "scroll", "direction", scrollDirections...)
}

func registerScroll(r *registry.Registry) {
	r.Register("scroll", func() *core.Node { return core.NewNode("scroll", core.Single) })
	r.RegisterSetters("scroll", scrollSetters())
	r.RegisterDefaults("scroll", core.NewConfig().Set("direction", "vertical"))
	r.RegisterValidator("scroll", validateScroll)
}
