package sheetify

import (
	"fmt"
	"os"

	"github.com/alpinaditya/sheetify/pkg/sheetify/models"
	"github.com/alpinaditya/sheetify/pkg/sheetify/planner"
)

// PlanJSON decodes a raw JSON document and maps it onto a sheet plan.
// The plan is non-empty for every valid document.
func PlanJSON(data []byte) (*models.Plan, error) {
	doc, err := planner.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return planner.PlanSheets(doc), nil
}

// PlanFile reads a JSON file and maps it onto a sheet plan.
func PlanFile(path string) (*models.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return PlanJSON(data)
}
