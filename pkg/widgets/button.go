package widgets

import (
	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/registry"
)

// Button is a tappable component wrapping at most one child. The action
// string names the client-side handler to invoke on tap.
//
// Configuration keys: label (required), action, enabled (defaults to true).
func Button(label string) *core.Node {
	n := core.NewNode("button", core.Single)
	n.SetProperty("label", label)
	n.SetProperty("enabled", true)
	n.SetValidator(validateButton)
	return n
}

func buttonSetters() core.Setters {
	const op = "widgets.button"
	return core.Setters{
		"label":   stringSetter(op, "label"),
		"action":  stringSetter(op, "action"),
		"enabled": boolSetter(op, "enabled"),
	}
}

func validateButton(n *core.Node) []string {
	return requireProperty(n, "button", "label")
}

func registerButton(r *registry.Registry) {
	r.Register("button", func() *core.Node { return core.NewNode("button", core.Single) })
	r.RegisterSetters("button", buttonSetters())
	r.RegisterDefaults("button", core.NewConfig().Set("enabled", true))
	r.RegisterValidator("button", validateButton)
}
