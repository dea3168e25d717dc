package registry

import (
	"fmt"
	"strconv"

	"github.com/sgtmarmite/wtfcesko/pkg/dataset"
	"github.com/sgtmarmite/wtfcesko/pkg/style"
)

// percentSuffix is appended to raw values in stacked percentage tooltips.
const percentSuffix = " %"

// DoughnutLabel formats the tooltip line for one doughnut slice:
// " <label>: <cs-CZ value> Kč (<percentage> %)".
func DoughnutLabel(label string, value, percentage float64) string {
	return fmt.Sprintf(" %s: %s Kč (%s %%)", label, style.FormatNumber(value), formatRaw(percentage))
}

// DoughnutLabels precomputes the tooltip line for every slice of b, indexed
// like b.Labels. Slices without a pre-computed percentage omit it.
func DoughnutLabels(b dataset.Breakdown) []string {
	out := make([]string, len(b.Labels))
	for i, label := range b.Labels {
		var v float64
		if i < len(b.Data) {
			v = b.Data[i]
		}
		if i < len(b.Percentages) {
			out[i] = DoughnutLabel(label, v, b.Percentages[i])
			continue
		}
		out[i] = fmt.Sprintf(" %s: %s Kč", label, style.FormatNumber(v))
	}
	return out
}

// PercentLabel formats a stacked-bar tooltip line: "<series>: <value> %".
// The page's mount script produces the same text from a suffix format.
func PercentLabel(series string, value float64) string {
	return series + ": " + formatRaw(value) + percentSuffix
}

// formatRaw prints v the way a browser prints a plain number
// (shortest representation, decimal point).
func formatRaw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
