package widgets

import (
	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/registry"
)

// Divider draws a thin separating line.
//
// Configuration keys: thickness (defaults to 1), color.
func Divider() *core.Node {
	n := core.NewNode("divider", core.Single)
	n.SetProperty("thickness", float64(1))
	return n
}

func dividerSetters() core.Setters {
	const op = "widgets.divider"
	return core.Setters{
		"thickness": numberSetter(op, "thickness"),
		"color":     stringSetter(op, "color"),
	}
}

func registerDivider(r *registry.Registry) {
	r.Register("divider", func() *core.Node { return core.NewNode("divider", core.Single) })
	r.RegisterSetters("divider", dividerSetters())
	r.RegisterDefaults("divider", core.NewConfig().Set("thickness", float64(1)))
}
