//go:build !tagged_noyaml

package tagged

import (
	"gopkg.in/yaml.v3"
)

// MarshalYAML hands the payload to the YAML encoder.
func (t Tagged[V, M]) MarshalYAML() (interface{}, error) {
	return t.value, nil
}

// UnmarshalYAML decodes the node as a V.
func (t *Tagged[V, M]) UnmarshalYAML(node *yaml.Node) error {
	v := t.value
	if err := node.Decode(&v); err != nil {
		return conversionError[V]("yaml", "unmarshal", err)
	}
	t.value = v
	return nil
}
