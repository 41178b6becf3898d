package widgets

import (
	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/registry"
)

// Image displays a picture fetched by the client from a source URL.
//
// Configuration keys: src (required), fit, width, height.
func Image(src string) *core.Node {
	n := core.NewNode("image", core.Single)
	n.SetProperty("src", src)
	n.SetValidator(validateImage)
	return n
}

var imageFitValues = []string{"contain", "cover", "fill", "none"}

func imageSetters() core.Setters {
	const op = "widgets.image"
	return core.Setters{
		"src":    stringSetter(op, "src"),
		"fit":    enumSetter(op, "fit", imageFitValues...),
		"width":  numberSetter(op, "width"),
		"height": numberSetter(op, "height"),
	}
}

func validateImage(n *core.Node) []string {
	errs := requireProperty(n, "image", "src")
	return append(errs, checkStoredEnum(n, "image", "fit", imageFitValues...)...)
}

func registerImage(r *registry.Registry) {
	r.Register("image", func() *core.Node { return core.NewNode("image", core.Single) })
	r.RegisterSetters("image", imageSetters())
	r.RegisterValidator("image", validateImage)
}
