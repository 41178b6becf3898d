package widgets

import (
	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/registry"
)

// Row lays its children out horizontally.
//
// Configuration keys: mainAxisAlignment, crossAxisAlignment, spacing.
func Row() *core.Node {
	return core.NewNode("row", core.Many)
}

// Column lays its children out vertically.
//
// Configuration keys: mainAxisAlignment, crossAxisAlignment, spacing.
func Column() *core.Node {
	return core.NewNode("column", core.Many)
}

var (
	mainAxisValues  = []string{"start", "center", "end", "spaceBetween", "spaceAround", "spaceEvenly"}
	crossAxisValues = []string{"start", "center", "end", "stretch"}
)

func flexSetters(op string) core.Setters {
	return core.Setters{
		"mainAxisAlignment":  enumSetter(op, "mainAxisAlignment", mainAxisValues...),
		"crossAxisAlignment": enumSetter(op, "crossAxisAlignment", crossAxisValues...),
		"spacing":            numberSetter(op, "spacing"),
	}
}

func flexValidator(kind string) core.ValidatorFunc {
	return func(n *core.Node) []string {
		var errs []string
		errs = append(errs, checkStoredEnum(n, kind, "mainAxisAlignment", mainAxisValues...)...)
		errs = append(errs, checkStoredEnum(n, kind, "crossAxisAlignment", crossAxisValues...)...)
		return errs
	}
}

func registerFlex(r *registry.Registry) {
	r.Register("row", Row)
	r.RegisterSetters("row", flexSetters("widgets.row"))
	r.RegisterValidator("row", flexValidator("row"))

	r.Register("column", Column)
	r.RegisterSetters("column", flexSetters("widgets.column"))
	r.RegisterValidator("column", flexValidator("column"))
}
