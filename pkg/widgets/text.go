package widgets

import (
	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/registry"
)

// Text displays a string with a single style.
//
// Configuration keys: data (required), maxLines, wrap, textAlign, plus the
// reserved "style" mapping merged under the style property.
func Text(data string) *core.Node {
	n := core.NewNode("text", core.Single)
	n.SetProperty("data", data)
	n.SetValidator(validateText)
	return n
}

var textAlignValues = []string{"left", "center", "right", "justify"}

func textSetters() core.Setters {
	const op = "widgets.text"
	return core.Setters{
		"data":      stringSetter(op, "data"),
		"maxLines":  numberSetter(op, "maxLines"),
		"wrap":      boolSetter(op, "wrap"),
		"textAlign": enumSetter(op, "textAlign", textAlignValues...),
	}
}

func validateText(n *core.Node) []string {
	errs := requireProperty(n, "text", "data")
	return append(errs, checkStoredEnum(n, "text", "textAlign", textAlignValues...)...)
}

func registerText(r *registry.Registry) {
	r.Register("text", func() *core.Node { return core.NewNode("text", core.Single) })
	r.RegisterSetters("text", textSetters())
	r.RegisterValidator("text", validateText)
}
