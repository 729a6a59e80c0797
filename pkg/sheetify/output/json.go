package output

import (
	"encoding/json"

	"github.com/alpinaditya/sheetify/pkg/sheetify/models"
)

// ToJSON serializes the plan to JSON for inspection, preserving sheet,
// row, and column order.
func ToJSON(plan *models.Plan, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(plan, "", "  ")
	}
	return json.Marshal(plan)
}
