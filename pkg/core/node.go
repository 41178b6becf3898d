package core

import (
	"github.com/go-drift/sdui/pkg/errors"
	"github.com/go-drift/sdui/pkg/props"
)

// Multiplicity determines how a node's children appear on the wire.
type Multiplicity uint8

const (
	// Single nodes emit their first child under "child"; any further
	// children are dropped from the serialized output.
	Single Multiplicity = iota
	// Many nodes emit all children under "children" in insertion order.
	Many
)

func (m Multiplicity) String() string {
	if m == Many {
		return "many"
	}
	return "single"
}

// ValidatorFunc is a kind-specific validation check. It returns error strings
// and never fails structurally; the framework composes it with the base
// structural check so implementations do not call anything themselves.
type ValidatorFunc func(n *Node) []string

// Node is one component in a UI-description tree.
type Node struct {
	kind         string
	multiplicity Multiplicity
	props        *props.Store
	children     []*Node
	parent       *Node
	validator    ValidatorFunc
}

// NewNode returns a childless, parentless node of the given kind.
func NewNode(kind string, multiplicity Multiplicity) *Node {
	return &Node{
		kind:         kind,
		multiplicity: multiplicity,
		props:        props.NewStore(),
	}
}

// Kind returns the node's type tag.
func (n *Node) Kind() string {
	return n.kind
}

// Multiplicity returns the serialization multiplicity fixed at construction.
func (n *Node) Multiplicity() Multiplicity {
	return n.multiplicity
}

// Props returns the node's property store.
func (n *Node) Props() *props.Store {
	return n.props
}

// SetProperty stores a (possibly dotted) property on the node.
func (n *Node) SetProperty(key string, value any) {
	n.props.Set(key, value)
}

// Property returns the property at the (possibly dotted) key, or def.
func (n *Node) Property(key string, def any) any {
	return n.props.Get(key, def)
}

// SetValidator attaches the kind-specific validation check. Validate composes
// it with the base structural check.
func (n *Node) SetValidator(fn ValidatorFunc) {
	n.validator = fn
}

// AddChild appends child to n's children and points child's parent at n.
// A child that already has a parent is detached from it first, so a node is
// referenced by at most one parent at a time. Attaching nil, n itself, or an
// ancestor of n fails with an invalid-argument error.
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		return errors.InvalidArgument("core.AddChild", "child must be a non-nil node")
	}
	for ancestor := n; ancestor != nil; ancestor = ancestor.parent {
		if ancestor == child {
			return errors.InvalidArgument("core.AddChild", "adding %q under %q would create a cycle", child.kind, n.kind)
		}
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// AddChildren applies AddChild to each node in order. The first failure stops
// and is returned; earlier children stay attached.
func (n *Node) AddChildren(children ...*Node) error {
	for _, child := range children {
		if err := n.AddChild(child); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Children returns the ordered child list. The slice is shared with the node;
// callers must not mutate it.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the owning parent, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Walk visits n and every descendant in depth-first pre-order, respecting
// sibling order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.children {
		child.Walk(visit)
	}
}

// Clone returns a structurally independent deep copy of the subtree rooted at
// n: same kind, multiplicity, and validator, a value-copy of the properties,
// and recursively cloned children. The clone has no parent until attached
// elsewhere.
func (n *Node) Clone() *Node {
	clone := &Node{
		kind:         n.kind,
		multiplicity: n.multiplicity,
		props:        n.props.Clone(),
		validator:    n.validator,
	}
	for _, child := range n.children {
		childClone := child.Clone()
		childClone.parent = clone
		clone.children = append(clone.children, childClone)
	}
	return clone
}
