package widgets

import (
	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/registry"
)

// Icon displays a named glyph from the client's icon set.
//
// Configuration keys: icon (required), size, color.
func Icon(name string) *core.Node {
	n := core.NewNode("icon", core.Single)
	n.SetProperty("icon", name)
	n.SetValidator(validateIcon)
	return n
}

func iconSetters() core.Setters {
	const op = "widgets.icon"
	return core.Setters{
		"icon":  stringSetter(op, "icon"),
		"size":  numberSetter(op, "size"),
		"color": stringSetter(op, "color"),
	}
}

func validateIcon(n *core.Node) []string {
	return requireProperty(n, "icon", "icon")
}

func registerIcon(r *registry.Registry) {
	r.Register("icon", func() *core.Node { return core.NewNode("icon", core.Single) })
	r.RegisterSetters("icon", iconSetters())
	r.RegisterValidator("icon", validateIcon)
}
