package models

// Sheet is a named, ordered table of rows destined for one workbook tab and
// one group of the combined export. Rows need not share identical key sets.
type Sheet struct {
	// Name is the proposed sheet name, before export-layer sanitization.
	Name string `json:"name"`
	// Rows contains the sheet's rows in planning order.
	Rows []*Row `json:"rows"`
}

// NewSheet returns an empty sheet with the given name.
func NewSheet(name string) *Sheet {
	return &Sheet{Name: name}
}

// Append adds a row at the end of the sheet.
func (s *Sheet) Append(r *Row) {
	s.Rows = append(s.Rows, r)
}

// Header returns the union of all keys across the sheet's rows in
// first-seen order. Rows missing a key leave that cell empty on export.
func (s *Sheet) Header() []string {
	var header []string
	seen := make(map[string]bool)
	for _, r := range s.Rows {
		for _, k := range r.Keys() {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
	}
	return header
}
