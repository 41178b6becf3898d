// Package document loads declarative YAML UI documents and instantiates them
// into component trees through the registry.
package document

import (
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/sdui/pkg/builder"
	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/registry"
)

// SupportedSchema is the major schema version this loader understands.
const SupportedSchema = "v1"

// Document is one YAML UI document: a schema version plus the root component.
type Document struct {
	Schema string    `yaml:"schema"`
	Root   *NodeSpec `yaml:"root"`
}

// NodeSpec is the declarative description of one component: its kind, its
// configuration in document order, and its child specs.
type NodeSpec struct {
	Kind     string
	Config   *core.Config
	Children []*NodeSpec
}

// UnmarshalYAML decodes a component mapping, keeping configuration keys in
// document order and recursing into "children". The "kind" and "children"
// keys are pulled out of the configuration; everything else passes through.
func (s *NodeSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: component must be a mapping", node.Line)
	}
	s.Config = core.NewConfig()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("line %d: component key: %w", node.Content[i].Line, err)
		}
		valueNode := node.Content[i+1]
		switch key {
		case "kind":
			if err := valueNode.Decode(&s.Kind); err != nil {
				return fmt.Errorf("line %d: kind: %w", valueNode.Line, err)
			}
		case "children":
			if valueNode.Kind != yaml.SequenceNode {
				return fmt.Errorf("line %d: children must be a sequence", valueNode.Line)
			}
			for _, childNode := range valueNode.Content {
				child := &NodeSpec{}
				if err := childNode.Decode(child); err != nil {
					return err
				}
				s.Children = append(s.Children, child)
			}
		default:
			var value any
			if err := valueNode.Decode(&value); err != nil {
				return fmt.Errorf("line %d: value for %q: %w", valueNode.Line, key, err)
			}
			s.Config.Set(key, value)
		}
	}
	if s.Kind == "" {
		return fmt.Errorf("line %d: component kind is required", node.Line)
	}
	return nil
}

// Build instantiates the spec (children first) against reg.
func (s *NodeSpec) Build(reg *registry.Registry) (*core.Node, error) {
	cfg := s.Config
	if len(s.Children) > 0 {
		children := make([]*core.Node, 0, len(s.Children))
		for _, childSpec := range s.Children {
			child, err := childSpec.Build(reg)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		cfg.Set("children", children)
	}
	return reg.Create(s.Kind, cfg)
}

// Load reads and parses a YAML UI document, rejecting schemas outside the
// supported major version. A document without a schema line defaults to the
// supported version.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML UI document from memory.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if doc.Schema == "" {
		doc.Schema = SupportedSchema + ".0.0"
	}
	if !semver.IsValid(doc.Schema) {
		return nil, fmt.Errorf("invalid schema version %q (want vMAJOR.MINOR.PATCH)", doc.Schema)
	}
	if semver.Major(doc.Schema) != SupportedSchema {
		return nil, fmt.Errorf("unsupported schema %s (this build supports %s)", doc.Schema, SupportedSchema)
	}
	return &doc, nil
}

// Build instantiates the document into a builder holding its root tree.
func (d *Document) Build(reg *registry.Registry) (*builder.Builder, error) {
	b := builder.New(builder.WithRegistry(reg))
	if d.Root != nil {
		root, err := d.Root.Build(reg)
		if err != nil {
			return nil, err
		}
		b.SetRoot(root)
	}
	return b, nil
}
