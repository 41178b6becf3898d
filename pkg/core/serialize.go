package core

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Serialize converts the subtree rooted at n into the plain nested mapping
// shipped to the rendering client.
//
// The result starts with {"type": kind}; children are added under "child"
// (Single, first child only) or "children" (Many, insertion order); finally
// every top-level property is overlaid onto the mapping. A property that
// collides with "type", "child", or "children" wins — the overlay is the last
// write and that precedence is part of the wire contract.
func (n *Node) Serialize() map[string]any {
	out := map[string]any{"type": n.kind}
	if n.HasChildren() {
		if n.multiplicity == Many {
			children := make([]any, 0, len(n.children))
			for _, child := range n.children {
				children = append(children, child.Serialize())
			}
			out["children"] = children
		} else {
			// Extra children of a Single node never reach the wire.
			out["child"] = n.children[0].Serialize()
		}
	}
	for key, value := range n.props.GetAll() {
		out[key] = value
	}
	return out
}

// ToJSON returns the compact JSON encoding of Serialize, with HTML escaping
// disabled so unicode and markup characters pass through untouched.
func (n *Node) ToJSON() (string, error) {
	return encodeJSON(n.Serialize(), "")
}

// ToJSONIndent is ToJSON with two-space indentation.
func (n *Node) ToJSONIndent() (string, error) {
	return encodeJSON(n.Serialize(), "  ")
}

func encodeJSON(value any, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
