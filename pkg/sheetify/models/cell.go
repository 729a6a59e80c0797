// Package models defines data structures for the sheet plan.
package models

// CellKind discriminates how a Cell's value should be read.
type CellKind int

const (
	// CellScalar holds a scalar passed through from the source document:
	// string, float64, bool, or nil.
	CellScalar CellKind = iota
	// CellJSON holds the compact JSON encoding of an array or object that
	// was demoted to a single cell. It is never flattened further.
	CellJSON
)

// Cell is one column value in a flat row.
type Cell struct {
	// Kind selects the interpretation of Value.
	Kind CellKind `json:"kind"`
	// Value is the scalar itself, or the JSON-encoded string when Kind is CellJSON.
	Value interface{} `json:"value"`
}

// Scalar wraps a scalar document value as a cell.
func Scalar(v interface{}) Cell {
	return Cell{Kind: CellScalar, Value: v}
}

// EncodedJSON wraps a compact JSON string as a cell.
func EncodedJSON(s string) Cell {
	return Cell{Kind: CellJSON, Value: s}
}

// JSONString returns the JSON-encoded string for CellJSON cells, or "" otherwise.
func (c Cell) JSONString() string {
	if c.Kind == CellJSON {
		if s, ok := c.Value.(string); ok {
			return s
		}
	}
	return ""
}
