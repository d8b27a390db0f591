package mint

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler, emitting the object's members
// in insertion order.
func (o Object) MarshalYAML() (any, error) {
	return yamlNode(o)
}

// UnmarshalYAML implements yaml.Unmarshaler, preserving the key order
// of the source mapping. Nested mappings decode as Object and nested
// sequences as Array.
func (o *Object) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("mint: cannot unmarshal YAML %v node into Object", node.Kind)
	}
	obj, err := yamlObject(node)
	if err != nil {
		return err
	}
	*o = obj
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for arrays.
func (a *Array) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("mint: cannot unmarshal YAML %v node into Array", node.Kind)
	}
	arr, err := yamlArray(node)
	if err != nil {
		return err
	}
	*a = arr
	return nil
}

func yamlNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case Object:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, m := range t {
			keyNode := &yaml.Node{}
			if err := keyNode.Encode(m.Key); err != nil {
				return nil, err
			}
			valNode, err := yamlNode(m.Value)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, keyNode, valNode)
		}
		return n, nil
	case Array:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range t {
			elem, err := yamlNode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, elem)
		}
		return n, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return n, nil
	}
}

func yamlObject(node *yaml.Node) (Object, error) {
	obj := make(Object, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return nil, err
		}
		val, err := yamlValue(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		obj = append(obj, Member{Key: key, Value: val})
	}
	return obj, nil
}

func yamlArray(node *yaml.Node) (Array, error) {
	arr := make(Array, 0, len(node.Content))
	for _, elem := range node.Content {
		val, err := yamlValue(elem)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	return arr, nil
}

func yamlValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		return yamlObject(node)
	case yaml.SequenceNode:
		return yamlArray(node)
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		// Normalize integers to float64 to match the value model.
		switch n := v.(type) {
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case uint64:
			return float64(n), nil
		}
		return v, nil
	}
}
