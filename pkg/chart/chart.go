// Package chart models the declarative configuration consumed by Chart.js.
//
// A [Config] is what the page hands to `new Chart(canvas, config)`: the chart
// [Kind], the labeled series in [Data] and the rendering [Options]. Only the
// subset of Chart.js options the site uses is modeled. Field names follow
// Chart.js via JSON tags so a Config marshals straight into the page bundle.
//
// Optional numeric and boolean options whose zero value is meaningful
// (pointRadius 0, fill false, an axis min of 0) are pointers; use [Bool] and
// [Float] to set them.
package chart

import "encoding/json"

// Kind is the Chart.js chart type.
type Kind string

// Chart kinds used by the site.
const (
	Line     Kind = "line"
	Bar      Kind = "bar"
	Doughnut Kind = "doughnut"
)

// Config is the complete Chart.js configuration of one chart.
type Config struct {
	Type    Kind    `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

// Data holds the category labels and the rendering-ready series.
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one rendering-ready series.
type Dataset struct {
	// Type overrides the chart kind for mixed bar+line charts.
	Type  Kind      `json:"type,omitempty"`
	Label string    `json:"label,omitempty"`
	Data  []float64 `json:"data"`

	BackgroundColor Paint     `json:"backgroundColor,omitempty"`
	BorderColor     Paint     `json:"borderColor,omitempty"`
	BorderWidth     float64   `json:"borderWidth,omitempty"`
	BorderRadius    float64   `json:"borderRadius,omitempty"`
	BorderDash      []float64 `json:"borderDash,omitempty"`

	Fill             *bool    `json:"fill,omitempty"`
	Tension          float64  `json:"tension,omitempty"`
	PointRadius      *float64 `json:"pointRadius,omitempty"`
	PointHoverRadius float64  `json:"pointHoverRadius,omitempty"`
	HoverOffset      float64  `json:"hoverOffset,omitempty"`

	// YAxisID binds the series to a named scale ("y", "y1").
	YAxisID string `json:"yAxisID,omitempty"`
}

// Paint is a color option that is either one color for the whole series or
// one color per data point. A single color marshals as a JSON string.
type Paint []string

// Solid returns a single-color Paint.
func Solid(color string) Paint { return Paint{color} }

// PerPoint returns a Paint with one color per data point.
func PerPoint(colors []string) Paint { return Paint(colors) }

// String returns the single color, or "" for per-point paints.
func (p Paint) String() string {
	if len(p) == 1 {
		return p[0]
	}
	return ""
}

// MarshalJSON implements json.Marshaler.
func (p Paint) MarshalJSON() ([]byte, error) {
	if len(p) == 1 {
		return json.Marshal(p[0])
	}
	return json.Marshal([]string(p))
}

// Options are the top-level rendering options.
type Options struct {
	Responsive          bool       `json:"responsive"`
	MaintainAspectRatio bool       `json:"maintainAspectRatio"`
	Animation           *Animation `json:"animation,omitempty"`

	// IndexAxis "y" turns a bar chart horizontal.
	IndexAxis string `json:"indexAxis,omitempty"`
	// Cutout is the doughnut hole size (e.g. "55%").
	Cutout string `json:"cutout,omitempty"`

	Plugins Plugins           `json:"plugins"`
	Scales  map[string]*Scale `json:"scales,omitempty"`
}

// Animation controls the initial draw animation.
type Animation struct {
	Duration int    `json:"duration"`
	Easing   string `json:"easing"`
}

// Plugins configures the legend and tooltip plugins.
type Plugins struct {
	Legend  Legend  `json:"legend"`
	Tooltip Tooltip `json:"tooltip"`
}

// Legend configures the chart legend.
type Legend struct {
	Display  bool         `json:"display"`
	Position string       `json:"position,omitempty"`
	Labels   LegendLabels `json:"labels"`
}

// LegendLabels styles legend entries.
type LegendLabels struct {
	Color    string `json:"color"`
	Font     Font   `json:"font"`
	BoxWidth int    `json:"boxWidth"`
	Padding  int    `json:"padding"`
}

// Font is a font override.
type Font struct {
	Size int `json:"size"`
}

// Tooltip styles the hover tooltip.
type Tooltip struct {
	BackgroundColor string `json:"backgroundColor"`
	TitleColor      string `json:"titleColor"`
	BodyColor       string `json:"bodyColor"`
	BorderColor     string `json:"borderColor"`
	BorderWidth     int    `json:"borderWidth"`
	CornerRadius    int    `json:"cornerRadius"`
	Padding         int    `json:"padding"`

	// Format replaces the default label callback; see TooltipFormat.
	Format *TooltipFormat `json:"format,omitempty"`
}

// Tooltip format kinds understood by the page's mount script.
const (
	// FormatLookup shows Labels[dataIndex] verbatim.
	FormatLookup = "lookup"
	// FormatSuffix shows "<series label>: <raw value><Suffix>".
	FormatSuffix = "suffix"
)

// TooltipFormat is a declarative stand-in for a Chart.js label callback.
// JSON cannot carry functions, so the mount script turns this into
// options.plugins.tooltip.callbacks.label before creating the chart.
type TooltipFormat struct {
	Kind   string   `json:"kind"`
	Labels []string `json:"labels,omitempty"`
	Suffix string   `json:"suffix,omitempty"`
}

// Scale configures one axis.
type Scale struct {
	Position string      `json:"position,omitempty"`
	Stacked  bool        `json:"stacked,omitempty"`
	Min      *float64    `json:"min,omitempty"`
	Max      *float64    `json:"max,omitempty"`
	Ticks    *Ticks      `json:"ticks,omitempty"`
	Grid     *Grid       `json:"grid,omitempty"`
	Title    *ScaleTitle `json:"title,omitempty"`
}

// Ticks styles axis tick labels.
type Ticks struct {
	Color         string `json:"color"`
	Font          Font   `json:"font"`
	MaxRotation   int    `json:"maxRotation"`
	AutoSkip      bool   `json:"autoSkip"`
	MaxTicksLimit int    `json:"maxTicksLimit"`
}

// Grid styles axis grid lines.
type Grid struct {
	Display *bool  `json:"display,omitempty"`
	Color   string `json:"color,omitempty"`
}

// ScaleTitle is the axis title.
type ScaleTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
	Color   string `json:"color"`
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }
