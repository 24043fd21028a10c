package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/mandalas/pkg/mandala"
)

// PoolEntry is one candidate in the random element pool.
type PoolEntry struct {
	Type string
	ElementConfig
}

// Pool is the random element pool. In YAML it is a mapping from element type
// to its parameters; document order is kept because draws index into it.
type Pool []PoolEntry

// UnmarshalYAML replaces the pool with the entries of a mapping node.
func (p *Pool) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: pool must be a mapping of element types", node.Line)
	}

	out := make(Pool, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var ec ElementConfig
		if err := value.Decode(&ec); err != nil {
			return fmt.Errorf("pool entry %s: %w", key.Value, err)
		}
		out = append(out, PoolEntry{Type: key.Value, ElementConfig: ec})
	}

	*p = out
	return nil
}

// MarshalYAML writes the pool back as an ordered mapping.
func (p Pool) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range p {
		var value yaml.Node
		if err := value.Encode(e.ElementConfig); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Type},
			&value)
	}
	return node, nil
}

// FixedElements maps an identifier to an element that is always drawn.
type FixedElements map[string]ElementConfig

// UnmarshalYAML replaces the set instead of merging into the defaults.
func (f *FixedElements) UnmarshalYAML(node *yaml.Node) error {
	var m map[string]ElementConfig
	if err := node.Decode(&m); err != nil {
		return err
	}
	*f = m
	return nil
}

// FixedType derives the element type of a fixed element from its identifier.
// The identifier is either a type name or a type name followed by an
// underscore and a suffix, e.g. PETAL_1 or CURVE_CONVEX_outer.
func FixedType(id string) mandala.ElementType {
	name := strings.ToUpper(id)
	for {
		if t, err := mandala.ParseElementType(name); err == nil {
			return t
		}
		i := strings.LastIndex(name, "_")
		if i < 0 {
			return mandala.ElementType(strings.ToUpper(id))
		}
		name = name[:i]
	}
}
