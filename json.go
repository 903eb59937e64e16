package queryops

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownKey is returned by ParseQueryOperators for keys that name
// neither an operator nor a Text option.
var ErrUnknownKey = errors.New("unknown key")

// MarshalJSON encodes the table with keys sorted at every level.
func (q QueryOperators) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.toMap())
}

// MarshalYAML implements the yaml.v3 Marshaler interface, giving the
// same key order as MarshalJSON.
func (q QueryOperators) MarshalYAML() (interface{}, error) {
	return q.toMap(), nil
}

// ParseQueryOperators decodes a table from its JSON form. Keys missing
// from data are left empty.
func ParseQueryOperators(data []byte) (QueryOperators, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return QueryOperators{}, fmt.Errorf("parse query operators: %w", err)
	}
	for key, val := range raw {
		if key == textOperatorsKey {
			if err := checkTextOptions(val); err != nil {
				return QueryOperators{}, err
			}
			continue
		}
		if _, ok := operatorIndex[key]; !ok {
			return QueryOperators{}, fmt.Errorf("parse query operators: %w: %q", ErrUnknownKey, key)
		}
	}
	var q QueryOperators
	if err := json.Unmarshal(data, &q); err != nil {
		return QueryOperators{}, fmt.Errorf("parse query operators: %w", err)
	}
	return q, nil
}

func checkTextOptions(data json.RawMessage) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse %s: %w", textOperatorsKey, err)
	}
	for key := range raw {
		if _, ok := textOptionIndex[key]; !ok {
			return fmt.Errorf("parse %s: %w: %q", textOperatorsKey, ErrUnknownKey, key)
		}
	}
	return nil
}
