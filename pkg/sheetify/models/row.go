package models

import (
	"encoding/json"

	"github.com/iancoleman/orderedmap"
)

// Row is an ordered mapping from column key to cell.
// Keys keep the order in which they were first set; setting an existing key
// overwrites its cell in place without moving it.
type Row struct {
	keys  []string
	cells map[string]Cell
}

// NewRow returns an empty row.
func NewRow() *Row {
	return &Row{cells: make(map[string]Cell)}
}

// Set stores a cell under key. First-seen order is preserved on overwrite.
func (r *Row) Set(key string, c Cell) {
	if _, ok := r.cells[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.cells[key] = c
}

// Get returns the cell stored under key.
func (r *Row) Get(key string) (Cell, bool) {
	c, ok := r.cells[key]
	return c, ok
}

// Keys returns the row's keys in first-seen order.
func (r *Row) Keys() []string {
	return r.keys
}

// Len returns the number of cells in the row.
func (r *Row) Len() int {
	return len(r.keys)
}

// MarshalJSON emits the row as a JSON object with keys in first-seen order.
// CellJSON cells are emitted as their encoded string, scalars as themselves.
func (r *Row) MarshalJSON() ([]byte, error) {
	om := orderedmap.New()
	for _, k := range r.keys {
		om.Set(k, r.cells[k].Value)
	}
	return json.Marshal(om)
}
