package widgets

import (
	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/registry"
)

// Container is a general-purpose box that holds any number of children and
// carries visual properties (color, padding, alignment, fixed size).
//
// Configuration keys: color, padding, alignment, width, height.
func Container() *core.Node {
	return core.NewNode("container", core.Many)
}

func containerSetters() core.Setters {
	const op = "widgets.container"
	return core.Setters{
		"color":     stringSetter(op, "color"),
		"padding":   numberSetter(op, "padding"),
		"alignment": enumSetter(op, "alignment", "start", "center", "end", "stretch"),
		"width":     numberSetter(op, "width"),
		"height":    numberSetter(op, "height"),
	}
}

func validateContainer(n *core.Node) []string {
	return checkStoredEnum(n, "container", "alignment", "start", "center", "end", "stretch")
}

func registerContainer(r *registry.Registry) {
	r.Register("container", Container)
	r.RegisterSetters("container", containerSetters())
	r.RegisterValidator("container", validateContainer)
}
