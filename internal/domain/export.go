package domain

// ExportRow is a single row in the full-guide export: one flat row per
// eatery, in food guide order.
//
// Tags holds the tag labels ordered alphabetically. Callers that need a
// joined string (e.g. CSV) should join with "|".
type ExportRow struct {
	Position int      `json:"position" yaml:"position"`
	Name     string   `json:"name" yaml:"name"`
	Phone    string   `json:"phone" yaml:"phone"`
	Cuisine  string   `json:"cuisine" yaml:"cuisine"`
	Location string   `json:"location" yaml:"location"`
	Tags     []string `json:"tags" yaml:"tags"`
}

// NewExportRows flattens eateries into export rows. Position is 1-based.
func NewExportRows(eateries []*Eatery) []ExportRow {
	out := make([]ExportRow, 0, len(eateries))
	for i, e := range eateries {
		out = append(out, ExportRow{
			Position: i + 1,
			Name:     e.Name().String(),
			Phone:    e.Phone().String(),
			Cuisine:  e.Cuisine().String(),
			Location: e.Location().String(),
			Tags:     e.Tags().Names(),
		})
	}
	return out
}
