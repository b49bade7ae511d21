package scanner

import "offsets-finder/internal/model"

// Change is an offset whose value differs between two scans.
type Change struct {
	Name     string
	Category string
	Old      string
	OldFound bool
	New      string
	NewFound bool
}

// Compare lists the results of newer whose offset differs from the result
// with the same name in older. Names missing from older count as not found.
// Order follows newer.
func Compare(older, newer []model.Result) []Change {
	prev := make(map[string]model.Result, len(older))
	for _, r := range older {
		if _, seen := prev[r.Name]; !seen {
			prev[r.Name] = r
		}
	}

	var changes []Change
	for _, r := range newer {
		o := prev[r.Name]
		if o.Found == r.Found && (!r.Found || o.Offset == r.Offset) {
			continue
		}
		changes = append(changes, Change{
			Name:     r.Name,
			Category: r.Category,
			Old:      o.Offset,
			OldFound: o.Found,
			New:      r.Offset,
			NewFound: r.Found,
		})
	}
	return changes
}
