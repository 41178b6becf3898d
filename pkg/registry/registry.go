// Package registry maps node-kind names to constructors, typed setter
// tables, default configurations, and kind-specific validators.
//
// A Registry is single-writer, read-mostly, and caller-synchronized: register
// every kind during startup, then treat the instance as frozen while trees
// are built. The package-level default registry is process-wide mutable state
// with the same contract; Clear exists to reset it between tests.
package registry

import (
	"sort"

	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/errors"
)

// Constructor builds a bare node of one kind. Kind-specific arguments arrive
// through the configuration applied afterwards.
type Constructor func() *core.Node

type entry struct {
	constructor Constructor
	setters     core.Setters
	defaults    *core.Config
	validator   core.ValidatorFunc
}

// Registry holds the node kinds available to a builder.
type Registry struct {
	entries map[string]*entry
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

func (r *Registry) entryFor(kind string) *entry {
	e, ok := r.entries[kind]
	if !ok {
		e = &entry{}
		r.entries[kind] = e
	}
	return e
}

// Register binds kind to its constructor, replacing any previous binding.
func (r *Registry) Register(kind string, ctor Constructor) {
	r.entryFor(kind).constructor = ctor
}

// RegisterSetters binds kind's configuration keys to typed setters.
func (r *Registry) RegisterSetters(kind string, setters core.Setters) {
	r.entryFor(kind).setters = setters
}

// RegisterDefaults binds a default configuration to kind. Create applies it
// after the caller's configuration, so default values win on overlapping keys.
func (r *Registry) RegisterDefaults(kind string, defaults *core.Config) {
	r.entryFor(kind).defaults = defaults
}

// RegisterValidator binds a kind-specific validation check to kind. The check
// is attached to every node Create builds and composed with the base
// structural check by core.Node.Validate.
func (r *Registry) RegisterValidator(kind string, fn core.ValidatorFunc) {
	r.entryFor(kind).validator = fn
}

// Has reports whether kind has a registered constructor.
func (r *Registry) Has(kind string) bool {
	e, ok := r.entries[kind]
	return ok && e.constructor != nil
}

// Kinds returns the registered kind names in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.entries))
	for kind, e := range r.entries {
		if e.constructor != nil {
			kinds = append(kinds, kind)
		}
	}
	sort.Strings(kinds)
	return kinds
}

// Clear removes every registration.
func (r *Registry) Clear() {
	r.entries = make(map[string]*entry)
}

// Create constructs a node of the given kind and applies cfg to it.
//
// The caller's configuration is applied first and the registered default
// configuration second, so a default can overwrite an explicit caller value
// at any key the default also sets. Downstream clients depend on that
// ordering; do not swap it. The populated node is then validated (base check
// plus the registered kind validator, over the whole subtree) and a
// ValidationError carrying the full error list is returned when anything
// fails.
func (r *Registry) Create(kind string, cfg *core.Config) (*core.Node, error) {
	e, ok := r.entries[kind]
	if !ok || e.constructor == nil {
		return nil, errors.UnsupportedKind("registry.Create", kind)
	}
	n := e.constructor()
	if e.validator != nil {
		n.SetValidator(e.validator)
	}
	if err := core.Apply(n, cfg, e.setters); err != nil {
		return nil, err
	}
	if err := core.Apply(n, e.defaults, e.setters); err != nil {
		return nil, err
	}
	if errs := n.Validate(); len(errs) > 0 {
		return nil, &errors.ValidationError{Op: "registry.Create", Errors: errs}
	}
	return n, nil
}

// defaultRegistry is the process-wide registry used when a builder is not
// given its own. No concurrency guard: single writer, caller-synchronized.
var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register binds kind in the default registry.
func Register(kind string, ctor Constructor) {
	defaultRegistry.Register(kind, ctor)
}

// Create constructs a node from the default registry.
func Create(kind string, cfg *core.Config) (*core.Node, error) {
	return defaultRegistry.Create(kind, cfg)
}

// Clear resets the default registry.
func Clear() {
	defaultRegistry.Clear()
}
