package planner

import (
	"github.com/alpinaditya/sheetify/pkg/sheetify/models"
	"github.com/iancoleman/orderedmap"
)

const (
	// DefaultSheetName is used for top-level arrays, top-level scalars, and
	// the degenerate-object fallback.
	DefaultSheetName = "Sheet1"
	// SummarySheetName collects top-level keys whose values are not arrays.
	SummarySheetName = "Summary"
	// ValueColumn is the single column used when wrapping non-object values.
	ValueColumn = "value"
)

// PlanSheets maps a decoded JSON document onto an ordered sheet collection.
// It is total: every valid JSON value yields a non-empty plan, shapes that
// do not fit the array-of-objects pattern fall back to generic single-column
// wrapping rather than failing.
func PlanSheets(doc interface{}) *models.Plan {
	plan := models.NewPlan()

	switch v := doc.(type) {
	case []interface{}:
		sheet := models.NewSheet(DefaultSheetName)
		for _, el := range v {
			if obj, ok := asObject(el); ok {
				sheet.Append(Flatten(obj, ""))
			} else {
				sheet.Append(wrapValueRow(el))
			}
		}
		plan.Add(sheet)
	case *orderedmap.OrderedMap:
		planObject(plan, v)
	case orderedmap.OrderedMap:
		planObject(plan, &v)
	default:
		sheet := models.NewSheet(DefaultSheetName)
		row := models.NewRow()
		row.Set(ValueColumn, models.EncodedJSON(encodeCompact(v)))
		sheet.Append(row)
		plan.Add(sheet)
	}

	return plan
}

// planObject routes each top-level key of an object: arrays become their own
// sheets, everything else is deferred to the Summary bucket.
func planObject(plan *models.Plan, obj *orderedmap.OrderedMap) {
	remaining := orderedmap.New()

	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		arr, ok := v.([]interface{})
		if !ok {
			remaining.Set(k, v)
			continue
		}

		sheet := models.NewSheet(k)
		if allObjects(arr) {
			for _, el := range arr {
				o, _ := asObject(el)
				sheet.Append(Flatten(o, ""))
			}
		} else {
			for _, el := range arr {
				sheet.Append(wrapValueRow(el))
			}
		}
		plan.Add(sheet)
	}

	if len(remaining.Keys()) > 0 {
		sheet := models.NewSheet(SummarySheetName)
		sheet.Append(Flatten(remaining, ""))
		plan.Add(sheet)
	}

	if plan.Len() == 0 {
		sheet := models.NewSheet(DefaultSheetName)
		sheet.Append(Flatten(obj, ""))
		plan.Add(sheet)
	}
}

// wrapValueRow wraps a non-object array element as a single-column row:
// scalars are stored verbatim, arrays and objects are JSON-serialized.
func wrapValueRow(el interface{}) *models.Row {
	row := models.NewRow()
	switch el.(type) {
	case nil, string, float64, bool:
		row.Set(ValueColumn, models.Scalar(el))
	default:
		row.Set(ValueColumn, models.EncodedJSON(encodeCompact(el)))
	}
	return row
}

// asObject normalizes the two orderedmap representations to a pointer.
func asObject(v interface{}) (*orderedmap.OrderedMap, bool) {
	switch obj := v.(type) {
	case *orderedmap.OrderedMap:
		return obj, true
	case orderedmap.OrderedMap:
		return &obj, true
	}
	return nil, false
}

// allObjects reports whether every element of arr is a JSON object.
// An empty array counts as all objects, producing an empty sheet.
func allObjects(arr []interface{}) bool {
	for _, el := range arr {
		if _, ok := asObject(el); !ok {
			return false
		}
	}
	return true
}
