package core

import "strings"

// Validate collects every validation error from n and its descendants in
// depth-first pre-order, respecting sibling order. It never short-circuits:
// all descendants are visited even after errors are found upstream. An empty
// result means the subtree is valid.
//
// Each node contributes the base structural check (non-empty kind) followed
// by its kind-specific validator, if one is attached. The composition is done
// here so kind validators never need to invoke the base check themselves.
func (n *Node) Validate() []string {
	var errs []string
	if strings.TrimSpace(n.kind) == "" {
		errs = append(errs, "component type is required")
	}
	if n.validator != nil {
		errs = append(errs, n.validator(n)...)
	}
	for _, child := range n.children {
		errs = append(errs, child.Validate()...)
	}
	return errs
}
