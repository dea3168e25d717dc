package style

import (
	"github.com/sgtmarmite/wtfcesko/pkg/chart"
	"github.com/sgtmarmite/wtfcesko/pkg/dataset"
)

// BaseOptions returns the top-level options every chart starts from:
// responsive sizing, the shared animation, a legend hidden on mobile and
// the dark tooltip (with tighter padding on mobile).
func BaseOptions(d Device) chart.Options {
	return chart.Options{
		Responsive:          true,
		MaintainAspectRatio: false,
		Animation:           Animation(),
		Plugins: chart.Plugins{
			Legend: chart.Legend{
				Display: d != Mobile,
				Labels: chart.LegendLabels{
					Color:    ColorText,
					Font:     chart.Font{Size: 12},
					BoxWidth: 12,
					Padding:  20,
				},
			},
			Tooltip: Tooltip(pick(d, 12, 8)),
		},
	}
}

// Animation returns the shared draw animation.
func Animation() *chart.Animation {
	return &chart.Animation{Duration: AnimationDuration, Easing: AnimationEasing}
}

// Tooltip returns the dark tooltip styling with the given padding.
func Tooltip(padding int) chart.Tooltip {
	return chart.Tooltip{
		BackgroundColor: ColorTooltipBG,
		TitleColor:      ColorTooltipText,
		BodyColor:       ColorText,
		BorderColor:     ColorBorder,
		BorderWidth:     1,
		CornerRadius:    8,
		Padding:         padding,
	}
}

// GridStyle returns axis tick and grid styling. Mobile gets smaller, rotated
// and fewer tick labels so category axes do not overlap.
func GridStyle(d Device) *chart.Scale {
	return &chart.Scale{
		Ticks: &chart.Ticks{
			Color:         ColorTick,
			Font:          chart.Font{Size: pick(d, 11, 9)},
			MaxRotation:   pick(d, 0, 45),
			AutoSkip:      true,
			MaxTicksLimit: pick(d, 20, 8),
		},
		Grid: &chart.Grid{Color: ColorGrid},
	}
}

// AxisTitle returns a displayed axis title.
func AxisTitle(text string) *chart.ScaleTitle {
	return &chart.ScaleTitle{Display: true, Text: text, Color: ColorAxisTitle}
}

// TitledAxis returns GridStyle with an axis title.
func TitledAxis(d Device, title string) *chart.Scale {
	s := GridStyle(d)
	s.Title = AxisTitle(title)
	return s
}

// LineOptions returns options for a categorical x axis and a titled numeric
// y axis.
func LineOptions(d Device, yTitle string) chart.Options {
	opts := BaseOptions(d)
	opts.Scales = map[string]*chart.Scale{
		"x": GridStyle(d),
		"y": TitledAxis(d, yTitle),
	}
	return opts
}

// GroupedBarOptions returns options for side-by-side bars; the axis layout
// matches LineOptions.
func GroupedBarOptions(d Device, yTitle string) chart.Options {
	opts := BaseOptions(d)
	opts.Scales = map[string]*chart.Scale{
		"x": GridStyle(d),
		"y": TitledAxis(d, yTitle),
	}
	return opts
}

// Line series defaults.
const (
	LineTension          = 0.3
	LinePointRadius      = 3
	LinePointHoverRadius = 6
	LineBorderWidth      = 2.5
)

// LineDataset maps a series to the standard line look. Filled lines get a
// faint area under the curve; unfilled ones a fully transparent background.
func LineDataset(s dataset.Series, fill bool) chart.Dataset {
	alpha := dataset.AlphaTransparent
	if fill {
		alpha = dataset.AlphaFaint
	}
	return chart.Dataset{
		Label:            s.Label,
		Data:             s.Data,
		BorderColor:      chart.Solid(s.Color.String()),
		BackgroundColor:  chart.Solid(s.Color.Alpha(alpha)),
		Fill:             chart.Bool(fill),
		Tension:          LineTension,
		PointRadius:      chart.Float(LinePointRadius),
		PointHoverRadius: LinePointHoverRadius,
		BorderWidth:      LineBorderWidth,
	}
}
