package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRowSetKeepsFirstSeenOrder(t *testing.T) {
	row := NewRow()
	row.Set("b", Scalar(1))
	row.Set("a", Scalar(2))
	row.Set("b", Scalar(3)) // overwrite keeps position

	if !reflect.DeepEqual(row.Keys(), []string{"b", "a"}) {
		t.Errorf("Expected keys [b a], got %v", row.Keys())
	}
	cell, _ := row.Get("b")
	if cell.Value != 3 {
		t.Errorf("Expected overwritten value 3, got %v", cell.Value)
	}
}

func TestRowMarshalJSONPreservesOrder(t *testing.T) {
	row := NewRow()
	row.Set("zebra", Scalar("z"))
	row.Set("apple", Scalar(float64(1)))
	row.Set("list", EncodedJSON(`[1,2]`))

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"zebra":"z","apple":1,"list":"[1,2]"}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}

func TestSheetHeaderUnion(t *testing.T) {
	sheet := NewSheet("s")

	first := NewRow()
	first.Set("id", Scalar(1))
	first.Set("name", Scalar("a"))
	sheet.Append(first)

	second := NewRow()
	second.Set("name", Scalar("b"))
	second.Set("age", Scalar(2))
	sheet.Append(second)

	want := []string{"id", "name", "age"}
	if !reflect.DeepEqual(sheet.Header(), want) {
		t.Errorf("Expected header %v, got %v", want, sheet.Header())
	}
}

func TestPlanAddReplacesInPlace(t *testing.T) {
	plan := NewPlan()
	plan.Add(NewSheet("a"))
	plan.Add(NewSheet("b"))

	replacement := NewSheet("a")
	row := NewRow()
	row.Set("x", Scalar(1))
	replacement.Append(row)
	plan.Add(replacement)

	if plan.Len() != 2 {
		t.Fatalf("Expected 2 sheets, got %d", plan.Len())
	}
	if plan.Sheets()[0].Name != "a" || len(plan.Sheets()[0].Rows) != 1 {
		t.Errorf("Expected replacement at original position, got %v", plan.Sheets()[0])
	}
	if plan.Sheets()[1].Name != "b" {
		t.Errorf("Expected \"b\" to keep second position, got %q", plan.Sheets()[1].Name)
	}
}

func TestCellJSONString(t *testing.T) {
	if got := EncodedJSON(`{"a":1}`).JSONString(); got != `{"a":1}` {
		t.Errorf("Expected encoded string back, got %q", got)
	}
	if got := Scalar("x").JSONString(); got != "" {
		t.Errorf("Expected empty string for scalar cell, got %q", got)
	}
}
