package widgets

import (
	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/errors"
	"github.com/go-drift/sdui/pkg/registry"
)

// Spacer consumes free space inside a row or column. The flex factor
// defaults to 1 through the registered default configuration.
//
// Configuration keys: flex.
func Spacer() *core.Node {
	n := core.NewNode("spacer", core.Single)
	n.SetProperty("flex", float64(1))
	return n
}

func spacerSetters() core.Setters {
	const op = "widgets.spacer"
	return core.Setters{
		"flex": func(n *core.Node, value any) error {
			f, err := numberValue(op, "flex", value)
			if err != nil {
				return err
			}
			if f < 1 {
				return errors.InvalidArgument(op, "flex must be at least 1, got %v", f)
			}
			n.SetProperty("flex", f)
			return nil
		},
	}
}

func registerSpacer(r *registry.Registry) {
	r.Register("spacer", func() *core.Node { return core.NewNode("spacer", core.Single) })
	r.RegisterSetters("spacer", spacerSetters())
	r.RegisterDefaults("spacer", core.NewConfig().Set("flex", float64(1)))
}
