// Package planner turns a parsed JSON document into a sheet plan.
package planner

import (
	"bytes"
	"encoding/json"

	"github.com/iancoleman/orderedmap"
)

// Decode parses a raw JSON document into its ordered in-memory form:
// objects become *orderedmap.OrderedMap (nested objects decode as
// orderedmap.OrderedMap values), arrays become []interface{}, and scalars
// decode to string, float64, bool, or nil.
func Decode(data []byte) (interface{}, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")

	if len(trimmed) > 0 {
		switch trimmed[0] {
		case '{':
			om := orderedmap.New()
			if err := json.Unmarshal(data, om); err != nil {
				return nil, err
			}
			return om, nil
		case '[':
			var elements []json.RawMessage
			if err := json.Unmarshal(data, &elements); err != nil {
				return nil, err
			}
			arr := make([]interface{}, 0, len(elements))
			for _, raw := range elements {
				v, err := Decode(raw)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			return arr, nil
		}
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
