package planner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alpinaditya/sheetify/pkg/sheetify/models"
	"github.com/iancoleman/orderedmap"
)

// Flatten converts one decoded JSON value into a single flat row.
// Object keys are joined with "." into dotted paths; nested objects merge
// into the row, nested arrays are kept verbatim as one compact-JSON cell,
// and scalars are stored directly. A non-object value produces a single
// entry keyed by the prefix itself (possibly "").
//
// Keys containing a literal dot are not escaped, so they can collide with a
// nested-path key; the later write wins on the shared column. This matches
// the accepted limitation of the dotted-path scheme.
func Flatten(value interface{}, prefix string) *models.Row {
	row := models.NewRow()
	flattenInto(row, value, prefix)
	return row
}

func flattenInto(row *models.Row, value interface{}, prefix string) {
	switch v := value.(type) {
	case *orderedmap.OrderedMap:
		for _, k := range v.Keys() {
			child, _ := v.Get(k)
			key := joinKey(prefix, k)
			switch c := child.(type) {
			case orderedmap.OrderedMap:
				flattenInto(row, &c, key)
			case *orderedmap.OrderedMap:
				flattenInto(row, c, key)
			case []interface{}:
				row.Set(key, models.EncodedJSON(encodeCompact(c)))
			default:
				row.Set(key, models.Scalar(c))
			}
		}
	case orderedmap.OrderedMap:
		flattenInto(row, &v, prefix)
	case []interface{}:
		row.Set(prefix, models.EncodedJSON(encodeCompact(v)))
	default:
		row.Set(prefix, models.Scalar(v))
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// encodeCompact renders a decoded JSON value back to compact JSON without
// HTML escaping, preserving object key order via orderedmap.
func encodeCompact(v interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimRight(buf.String(), "\n")
}
