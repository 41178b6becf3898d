// Package builder provides the top-level façade for assembling and shipping
// UI-description trees: it holds one root node, forwards short-name creation
// to a registry, and exposes validation, serialization, cloning, and delta
// computation against a previously shipped tree.
package builder

import (
	"fmt"

	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/errors"
	"github.com/go-drift/sdui/pkg/registry"
)

// Builder assembles one UI-description tree.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	registry          *registry.Registry
	root              *core.Node
	strictSingleChild bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithRegistry makes the builder resolve component names against r before
// falling back to the process-wide default registry.
func WithRegistry(r *registry.Registry) Option {
	return func(b *Builder) {
		b.registry = r
	}
}

// WithStrictSingleChild makes Validate flag single-multiplicity nodes that
// hold more than one child, instead of silently dropping the extras at
// serialization time.
func WithStrictSingleChild() Option {
	return func(b *Builder) {
		b.strictSingleChild = true
	}
}

// New returns a Builder with no root component.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetRoot installs the root component.
func (b *Builder) SetRoot(root *core.Node) {
	b.root = root
}

// Root returns the root component, or nil if none is set.
func (b *Builder) Root() *core.Node {
	return b.root
}

// NewNode creates a component by short name, resolving against the builder's
// own registry first and the process-wide default registry second. A name
// found in neither fails with an unknown-operation error.
func (b *Builder) NewNode(name string, cfg *core.Config) (*core.Node, error) {
	if b.registry != nil && b.registry.Has(name) {
		return b.registry.Create(name, cfg)
	}
	if registry.Default().Has(name) {
		return registry.Default().Create(name, cfg)
	}
	return nil, errors.UnknownOperation("builder.NewNode", name)
}

// Validate returns every validation error for the held tree. A missing root
// is itself an error, combined with the root's own recursive errors when one
// is present.
func (b *Builder) Validate() []string {
	if b.root == nil {
		return []string{"root component is required"}
	}
	errs := b.root.Validate()
	if b.strictSingleChild {
		b.root.Walk(func(n *core.Node) {
			if n.Multiplicity() == core.Single && n.ChildCount() > 1 {
				errs = append(errs, fmt.Sprintf("%s: single-child component has %d children", n.Kind(), n.ChildCount()))
			}
		})
	}
	return errs
}

// Build validates the tree and returns its wire mapping. Any validation
// error — including the missing-root error — fails with a ValidationError
// carrying the complete list, reported to the global error handler.
func (b *Builder) Build() (map[string]any, error) {
	if errs := b.Validate(); len(errs) > 0 {
		err := &errors.ValidationError{Op: "builder.Build", Errors: errs}
		errors.Report(err)
		return nil, err
	}
	return b.Serialize(), nil
}

// Serialize returns the wire mapping without validating, or an empty mapping
// when no root is set.
func (b *Builder) Serialize() map[string]any {
	if b.root == nil {
		return map[string]any{}
	}
	return b.root.Serialize()
}

// ToJSON builds the tree and returns its compact JSON encoding.
func (b *Builder) ToJSON() (string, error) {
	if _, err := b.Build(); err != nil {
		return "", err
	}
	return b.root.ToJSON()
}

// ToJSONIndent builds the tree and returns its indented JSON encoding.
func (b *Builder) ToJSONIndent() (string, error) {
	if _, err := b.Build(); err != nil {
		return "", err
	}
	return b.root.ToJSONIndent()
}

// Clone returns a new Builder with the same options and a deep clone of the
// root, sharing no tree storage with the receiver.
func (b *Builder) Clone() *Builder {
	clone := &Builder{
		registry:          b.registry,
		strictSingleChild: b.strictSingleChild,
	}
	if b.root != nil {
		clone.root = b.root.Clone()
	}
	return clone
}
