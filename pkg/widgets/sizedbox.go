package widgets

import (
	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/registry"
)

// SizedBox reserves a fixed amount of space, optionally around one child.
//
// Configuration keys: width, height.
func SizedBox(width, height float64) *core.Node {
	n := core.NewNode("sizedbox", core.Single)
	n.SetProperty("width", width)
	n.SetProperty("height", height)
	return n
}

func sizedBoxSetters() core.Setters {
	const op = "widgets.sizedbox"
	return core.Setters{
		"width":  numberSetter(op, "width"),
		"height": numberSetter(op, "height"),
	}
}

func registerSizedBox(r *registry.Registry) {
	r.Register("sizedbox", func() *core.Node { return core.NewNode("sizedbox", core.Single) })
	r.RegisterSetters("sizedbox", sizedBoxSetters())
}
