package either

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	firstKey  = "first"
	secondKey = "second"
)

// MarshalJSON encodes the live value as {"first": ...} or {"second": ...}.
// The cell keeps its value.
func (e *Either[F, S]) MarshalJSON() ([]byte, error) {
	m, err := e.encoded("json marshal")
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes a single-key object and moves the decoded value into
// e, destroying the value e held before.
func (e *Either[F, S]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}

	key, value, err := single(raw)
	if err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}

	var decoded *Either[F, S]
	switch key {
	case firstKey:
		var f F
		if err := json.Unmarshal(value, &f); err != nil {
			return fmt.Errorf("json unmarshal %s: %w", key, err)
		}
		decoded = FromFirst[F, S](f)
	case secondKey:
		var s S
		if err := json.Unmarshal(value, &s); err != nil {
			return fmt.Errorf("json unmarshal %s: %w", key, err)
		}
		decoded = FromSecond[F](s)
	}
	return e.Assign(decoded)
}

// MarshalYAML encodes the live value as a mapping with a single first or
// second key. The cell keeps its value.
func (e *Either[F, S]) MarshalYAML() (interface{}, error) {
	return e.encoded("yaml marshal")
}

// UnmarshalYAML decodes a single-key mapping and moves the decoded value
// into e, destroying the value e held before.
func (e *Either[F, S]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("yaml unmarshal: line %d: expected a mapping: %w", node.Line, ErrMalformed)
	}

	if len(node.Content) != 2 {
		return fmt.Errorf("yaml unmarshal: line %d: %d variant keys: %w", node.Line, len(node.Content)/2, ErrMalformed)
	}

	raw := make(map[string]*yaml.Node, 1)
	for i := 0; i+1 < len(node.Content); i += 2 {
		raw[node.Content[i].Value] = node.Content[i+1]
	}

	key, value, err := single(raw)
	if err != nil {
		return fmt.Errorf("yaml unmarshal: line %d: %w", node.Line, err)
	}

	var decoded *Either[F, S]
	switch key {
	case firstKey:
		var f F
		if err := value.Decode(&f); err != nil {
			return fmt.Errorf("yaml unmarshal %s: %w", key, err)
		}
		decoded = FromFirst[F, S](f)
	case secondKey:
		var s S
		if err := value.Decode(&s); err != nil {
			return fmt.Errorf("yaml unmarshal %s: %w", key, err)
		}
		decoded = FromSecond[F](s)
	}
	return e.Assign(decoded)
}

func (e *Either[F, S]) encoded(op string) (map[string]any, error) {
	switch e.Index() {
	case First:
		return map[string]any{firstKey: e.first}, nil
	case Second:
		return map[string]any{secondKey: e.second}, nil
	}
	return nil, emptyError(op)
}

func single[V any](raw map[string]V) (string, V, error) {
	var zero V
	if len(raw) != 1 {
		return "", zero, fmt.Errorf("%d variant keys: %w", len(raw), ErrMalformed)
	}
	for key, value := range raw {
		if key != firstKey && key != secondKey {
			return "", zero, fmt.Errorf("unknown variant %q: %w", key, ErrMalformed)
		}
		return key, value, nil
	}
	return "", zero, ErrMalformed
}
