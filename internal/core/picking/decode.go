package picking

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

// document is the wrapped file form: a top-level "orders" key.
type document struct {
	Orders []Order `yaml:"orders"`
}

// Decode parses YAML (or JSON) order data. Both a top-level "orders" list and a
// bare list of orders are accepted. An empty document decodes to no orders.
func Decode(data []byte) ([]Order, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse orders: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var orders []Order
		if err := root.Decode(&orders); err != nil {
			return nil, fmt.Errorf("decode orders: %w", err)
		}
		return orders, nil
	case yaml.MappingNode:
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode orders: %w", err)
		}
		return doc.Orders, nil
	default:
		return nil, fmt.Errorf("decode orders: expected a list or an orders key, got %s", kindName(root.Kind))
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return fmt.Sprintf("kind %d", k)
	}
}

// Embedded returns the built-in sample orders shipped with the binary.
func Embedded() Source {
	return SourceFunc(func(context.Context) ([]Order, error) {
		orders, err := Decode(sampleYAML)
		if err != nil {
			return nil, fmt.Errorf("embedded sample: %w", err)
		}
		if len(orders) == 0 {
			return nil, ErrNoOrders
		}
		return orders, nil
	})
}
