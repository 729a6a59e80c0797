package planner

import (
	"reflect"
	"testing"

	"github.com/alpinaditya/sheetify/pkg/sheetify/models"
)

func mustDecode(t *testing.T, doc string) interface{} {
	t.Helper()
	v, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode(%q) failed: %v", doc, err)
	}
	return v
}

func TestFlattenNestedObject(t *testing.T) {
	doc := mustDecode(t, `{"a":1,"b":{"c":"x","d":{"e":true}},"f":null}`)
	row := Flatten(doc, "")

	wantKeys := []string{"a", "b.c", "b.d.e", "f"}
	if !reflect.DeepEqual(row.Keys(), wantKeys) {
		t.Fatalf("Expected keys %v, got %v", wantKeys, row.Keys())
	}

	tests := []struct {
		key   string
		value interface{}
	}{
		{"a", float64(1)},
		{"b.c", "x"},
		{"b.d.e", true},
		{"f", nil},
	}
	for _, tt := range tests {
		cell, ok := row.Get(tt.key)
		if !ok {
			t.Errorf("Missing key %q", tt.key)
			continue
		}
		if cell.Kind != models.CellScalar {
			t.Errorf("Key %q: expected scalar cell, got kind %v", tt.key, cell.Kind)
		}
		if cell.Value != tt.value {
			t.Errorf("Key %q: expected %v, got %v", tt.key, tt.value, cell.Value)
		}
	}
}

func TestFlattenArrayCell(t *testing.T) {
	doc := mustDecode(t, `{"tags":[1,"x"],"meta":{"ids":[{"id":2}]}}`)
	row := Flatten(doc, "")

	tests := []struct {
		key  string
		json string
	}{
		{"tags", `[1,"x"]`},
		{"meta.ids", `[{"id":2}]`},
	}
	for _, tt := range tests {
		cell, ok := row.Get(tt.key)
		if !ok {
			t.Fatalf("Missing key %q", tt.key)
		}
		if cell.Kind != models.CellJSON {
			t.Errorf("Key %q: expected JSON cell, got kind %v", tt.key, cell.Kind)
		}
		if cell.JSONString() != tt.json {
			t.Errorf("Key %q: expected %s, got %s", tt.key, tt.json, cell.JSONString())
		}
	}
}

func TestFlattenScalar(t *testing.T) {
	row := Flatten("hello", "")
	if row.Len() != 1 {
		t.Fatalf("Expected 1 cell, got %d", row.Len())
	}
	cell, ok := row.Get("")
	if !ok {
		t.Fatal("Expected cell under empty key")
	}
	if cell.Kind != models.CellScalar || cell.Value != "hello" {
		t.Errorf("Expected scalar \"hello\", got %v", cell.Value)
	}

	row = Flatten(float64(3), "n")
	cell, ok = row.Get("n")
	if !ok || cell.Value != float64(3) {
		t.Errorf("Expected 3 under key \"n\", got %v", cell.Value)
	}
}

func TestFlattenBareArray(t *testing.T) {
	row := Flatten([]interface{}{float64(1)}, "")
	cell, ok := row.Get("")
	if !ok {
		t.Fatal("Expected cell under empty key")
	}
	if cell.Kind != models.CellJSON || cell.JSONString() != "[1]" {
		t.Errorf("Expected JSON cell [1], got %v", cell.Value)
	}
}

func TestFlattenKeyOrderDeterministic(t *testing.T) {
	const doc = `{"z":1,"a":{"m":2,"b":3},"k":[1],"c":4}`
	first := Flatten(mustDecode(t, doc), "")
	second := Flatten(mustDecode(t, doc), "")
	if !reflect.DeepEqual(first.Keys(), second.Keys()) {
		t.Errorf("Key order differs between runs: %v vs %v", first.Keys(), second.Keys())
	}
}

// A literal dot in an original key collides with the nested-path key; the
// later write wins on the shared column without changing its position.
func TestFlattenDotKeyCollision(t *testing.T) {
	doc := mustDecode(t, `{"a.b":1,"a":{"b":2}}`)
	row := Flatten(doc, "")

	if row.Len() != 1 {
		t.Fatalf("Expected 1 column after collision, got %d: %v", row.Len(), row.Keys())
	}
	cell, _ := row.Get("a.b")
	if cell.Value != float64(2) {
		t.Errorf("Expected later write to win (2), got %v", cell.Value)
	}
}
