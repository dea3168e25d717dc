package dataset

// Dataset is a set of series plotted against shared category labels.
// Every Series.Data is expected to have len(Labels) values.
type Dataset struct {
	Labels   []string `json:"labels"`
	Datasets []Series `json:"datasets"`
}

// Series is one named numeric sequence.
type Series struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
	Color Color     `json:"color"`

	// Colors is set when every category gets its own color.
	Colors []Color `json:"colors,omitempty"`
}

// Breakdown is a categorical split of one total, used for doughnut charts.
// Percentages are pre-computed and indexed like Labels.
type Breakdown struct {
	Labels      []string  `json:"labels"`
	Data        []float64 `json:"data"`
	Colors      []Color   `json:"colors"`
	Percentages []float64 `json:"percentages"`
}

// Series returns the i-th series, or the zero Series when out of range.
func (d Dataset) Series(i int) Series {
	if i < 0 || i >= len(d.Datasets) {
		return Series{}
	}
	return d.Datasets[i]
}
