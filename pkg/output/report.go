package output

// Report is the result of a command: a titled table for people and a
// payload for machines.
type Report struct {
	Title  string
	Header []string
	Rows   [][]string
	// Notes are printed after the table, one per line
	Notes []string
	// Data is what the json format emits; nil emits the rows keyed by header
	Data any
}

// AddRow appends a row; missing cells are left empty.
func (r *Report) AddRow(cells ...string) {
	row := make([]string, max(len(cells), len(r.Header)))
	copy(row, cells)
	r.Rows = append(r.Rows, row)
}

// records returns the rows as header-keyed maps.
func (r *Report) records() []map[string]string {
	records := make([]map[string]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rec := make(map[string]string, len(r.Header))
		for i, h := range r.Header {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records
}
