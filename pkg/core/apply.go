package core

// Setter applies one configuration value to a node. Setters are registered
// per kind at startup, so configuration keys dispatch through an explicit
// table instead of reflection on method names.
type Setter func(n *Node, value any) error

// Setters maps configuration keys to the typed setters of one node kind.
type Setters map[string]Setter

// Apply mutates n according to cfg, visiting keys in insertion order.
//
// Each key dispatches to the first match:
//
//  1. a registered setter named exactly key;
//  2. "properties" with a mapping value: Store.SetAll on the node;
//  3. "style" with a mapping value: merged under the "style" property;
//  4. "children" with a sequence value: every *Node element is attached via
//     AddChild, other elements are silently skipped;
//  5. otherwise the key is ignored without error.
//
// The first setter or attachment failure stops the walk; earlier keys remain
// applied.
func Apply(n *Node, cfg *Config, setters Setters) error {
	if cfg == nil {
		return nil
	}
	return cfg.Each(func(key string, value any) error {
		if setter, ok := setters[key]; ok {
			return setter(n, value)
		}
		switch key {
		case "properties":
			if m, ok := value.(map[string]any); ok {
				n.props.SetAll(m)
			}
		case "style":
			if m, ok := value.(map[string]any); ok {
				n.props.Set("style", m)
			}
		case "children":
			return applyChildren(n, value)
		}
		return nil
	})
}

func applyChildren(n *Node, value any) error {
	switch children := value.(type) {
	case []*Node:
		return n.AddChildren(children...)
	case []any:
		for _, elem := range children {
			child, ok := elem.(*Node)
			if !ok {
				continue
			}
			if err := n.AddChild(child); err != nil {
				return err
			}
		}
	}
	return nil
}
