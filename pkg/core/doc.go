// Package core implements the component-tree model behind the sdui wire
// format: nodes with path-addressable properties, parent/child ownership,
// multiplicity-driven serialization, recursive validation, deep cloning, and
// the declarative configuration protocol used by the registry and builder.
//
// # Tree model
//
// A Node carries an immutable kind tag, a property Store, an ordered child
// list, and a back-reference to its parent. Ownership runs strictly parent to
// children; the parent pointer is maintained by AddChild and a node belongs to
// at most one parent at a time (attaching an already-attached node moves it).
//
// # Multiplicity
//
// Multiplicity is fixed at construction and only affects serialization shape:
// a Many node emits all children under "children", a Single node emits its
// first child under "child" and drops the rest from the output.
//
// # Concurrency
//
// Nodes have no internal locking. Trees are not meant to be shared across
// goroutines; if they are, callers must synchronize mutation against
// concurrent Validate/Serialize/Clone calls.
package core
