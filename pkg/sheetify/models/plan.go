package models

import "encoding/json"

// Plan is the ordered collection of sheets derived from one JSON document.
// Sheet names are distinct; insertion order is the planner's decision order.
type Plan struct {
	sheets []*Sheet
}

// NewPlan returns an empty plan.
func NewPlan() *Plan {
	return &Plan{}
}

// Add appends a sheet. If a sheet with the same name already exists its rows
// are replaced and it keeps its original position.
func (p *Plan) Add(s *Sheet) {
	for i, existing := range p.sheets {
		if existing.Name == s.Name {
			p.sheets[i] = s
			return
		}
	}
	p.sheets = append(p.sheets, s)
}

// Sheets returns the plan's sheets in order.
func (p *Plan) Sheets() []*Sheet {
	return p.sheets
}

// Len returns the number of sheets in the plan.
func (p *Plan) Len() int {
	return len(p.sheets)
}

// MarshalJSON emits the plan as {"sheets": [...]} preserving sheet order.
func (p *Plan) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Sheets []*Sheet `json:"sheets"`
	}{p.sheets})
}
