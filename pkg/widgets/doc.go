// Package widgets provides the catalog of concrete node kinds for building
// UI-description trees.
//
// Every kind is a stateless wrapper over the core tree model: a constructor
// producing a bare node, a table of typed setters for its configuration keys,
// optionally a default configuration, and optionally a kind validator. The
// catalog registers all of that with a registry; the core never learns the
// property names a kind uses.
//
// # Construction
//
// Components are normally created through a registry (directly or via the
// builder façade) from a declarative configuration:
//
//	n, err := registry.Create("text", core.NewConfig().
//	    Set("data", "Hello").
//	    Set("maxLines", 2))
//
// Bare constructors (Text, Row, Container, ...) exist for assembling trees in
// code; configure them through setters or the property store afterwards.
//
// # Configuration keys
//
// Setter-backed keys are validated eagerly: an unknown enum value or a
// mis-typed value fails the Apply call with an invalid-argument error. Values
// smuggled in through the reserved "properties" key bypass the setters and
// are only caught by the kind validators at validation time.
package widgets
