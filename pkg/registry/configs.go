package registry

import (
	"github.com/sgtmarmite/wtfcesko/pkg/chart"
	"github.com/sgtmarmite/wtfcesko/pkg/dataset"
	"github.com/sgtmarmite/wtfcesko/pkg/style"
)

// Bar series defaults.
const (
	barBorderWidth  = 1
	barBorderRadius = 4
)

// highlightedSeries is drawn thicker and solid in the purchasing power chart.
const highlightedSeries = "Reálná kupní síla"

// purchasingPower plots prices and wages as thin dashed context lines
// around a thick, solid real purchasing power line.
func purchasingPower(d dataset.Dataset, yTitle string) Factory {
	return func(dev style.Device) chart.Config {
		sets := make([]chart.Dataset, len(d.Datasets))
		for i, s := range d.Datasets {
			ds := style.LineDataset(s, false)
			if s.Label == highlightedSeries {
				ds.BorderWidth = 3.5
				ds.PointRadius = chart.Float(4)
				ds.BorderDash = nil
			} else {
				ds.BorderWidth = 1.5
				ds.BorderDash = []float64{6, 3}
				ds.PointRadius = chart.Float(2)
			}
			sets[i] = ds
		}
		return chart.Config{
			Type:    chart.Line,
			Data:    chart.Data{Labels: d.Labels, Datasets: sets},
			Options: style.LineOptions(dev, yTitle),
		}
	}
}

// multiLine draws one filled line per series.
func multiLine(d dataset.Dataset, yTitle string) Factory {
	return func(dev style.Device) chart.Config {
		sets := make([]chart.Dataset, len(d.Datasets))
		for i, s := range d.Datasets {
			sets[i] = style.LineDataset(s, true)
		}
		return chart.Config{
			Type:    chart.Line,
			Data:    chart.Data{Labels: d.Labels, Datasets: sets},
			Options: style.LineOptions(dev, yTitle),
		}
	}
}

// shareLine draws the first series as a line with a stronger area fill.
func shareLine(d dataset.Dataset, yTitle string) Factory {
	return func(dev style.Device) chart.Config {
		s := d.Series(0)
		ds := style.LineDataset(s, true)
		ds.BackgroundColor = chart.Solid(s.Color.Alpha(dataset.AlphaSoft))
		return chart.Config{
			Type:    chart.Line,
			Data:    chart.Data{Labels: d.Labels, Datasets: []chart.Dataset{ds}},
			Options: style.LineOptions(dev, yTitle),
		}
	}
}

// fertility draws the measured series against a dashed reference level.
func fertility(d dataset.Dataset, yTitle string) Factory {
	return func(dev style.Device) chart.Config {
		ref := d.Series(1)
		return chart.Config{
			Type: chart.Line,
			Data: chart.Data{
				Labels: d.Labels,
				Datasets: []chart.Dataset{
					style.LineDataset(d.Series(0), true),
					{
						Label:       ref.Label,
						Data:        ref.Data,
						BorderColor: chart.Solid(ref.Color.String()),
						BorderDash:  []float64{8, 4},
						BorderWidth: 1.5,
						PointRadius: chart.Float(0),
						Fill:        chart.Bool(false),
					},
				},
			},
			Options: style.LineOptions(dev, yTitle),
		}
	}
}

// horizontalBar draws a single series as horizontal bars with one color per
// category. xMin and xMax pin the value axis when the metric has a natural
// range.
func horizontalBar(d dataset.Dataset, xTitle string, xMin, xMax *float64) Factory {
	return func(dev style.Device) chart.Config {
		s := d.Series(0)
		colors := s.Colors
		if len(colors) == 0 {
			colors = []dataset.Color{s.Color}
		}

		x := style.TitledAxis(dev, xTitle)
		if xMin != nil {
			x.Min = chart.Float(*xMin)
		}
		if xMax != nil {
			x.Max = chart.Float(*xMax)
		}

		opts := style.BaseOptions(dev)
		opts.IndexAxis = "y"
		opts.Scales = map[string]*chart.Scale{
			"x": x,
			"y": style.GridStyle(dev),
		}

		return chart.Config{
			Type: chart.Bar,
			Data: chart.Data{
				Labels: d.Labels,
				Datasets: []chart.Dataset{{
					Label:           s.Label,
					Data:            s.Data,
					BackgroundColor: chart.PerPoint(dataset.Alphas(colors, dataset.AlphaStrong)),
					BorderColor:     chart.PerPoint(dataset.Strings(colors)),
					BorderWidth:     barBorderWidth,
					BorderRadius:    barBorderRadius,
				}},
			},
			Options: opts,
		}
	}
}

// barDataset styles a series as vertical bars with the given fill alpha.
func barDataset(s dataset.Series, alpha string) chart.Dataset {
	return chart.Dataset{
		Label:           s.Label,
		Data:            s.Data,
		BackgroundColor: chart.Solid(s.Color.Alpha(alpha)),
		BorderColor:     chart.Solid(s.Color.String()),
		BorderWidth:     barBorderWidth,
		BorderRadius:    barBorderRadius,
	}
}

// groupedBar places every series side by side, one color per series.
func groupedBar(d dataset.Dataset, yTitle string) Factory {
	return func(dev style.Device) chart.Config {
		sets := make([]chart.Dataset, len(d.Datasets))
		for i, s := range d.Datasets {
			sets[i] = barDataset(s, dataset.AlphaStrong)
		}
		return chart.Config{
			Type:    chart.Bar,
			Data:    chart.Data{Labels: d.Labels, Datasets: sets},
			Options: style.GroupedBarOptions(dev, yTitle),
		}
	}
}

// singleBar draws the first series as half-transparent vertical bars.
func singleBar(d dataset.Dataset, yTitle string) Factory {
	return func(dev style.Device) chart.Config {
		return chart.Config{
			Type: chart.Bar,
			Data: chart.Data{
				Labels:   d.Labels,
				Datasets: []chart.Dataset{barDataset(d.Series(0), dataset.AlphaHalf)},
			},
			Options: style.LineOptions(dev, yTitle),
		}
	}
}

// barLineCombo draws the first series as bars on the left axis and the
// second as a line on an independent right axis without grid lines.
func barLineCombo(d dataset.Dataset, leftTitle, rightTitle string) Factory {
	return func(dev style.Device) chart.Config {
		bars := barDataset(d.Series(0), dataset.AlphaHalf)
		bars.Type = chart.Bar
		bars.YAxisID = "y"

		ls := d.Series(1)
		line := chart.Dataset{
			Type:             chart.Line,
			Label:            ls.Label,
			Data:             ls.Data,
			BorderColor:      chart.Solid(ls.Color.String()),
			BackgroundColor:  chart.Solid("transparent"),
			BorderWidth:      2.5,
			PointRadius:      chart.Float(4),
			PointHoverRadius: 7,
			Tension:          style.LineTension,
			YAxisID:          "y1",
		}

		left := style.TitledAxis(dev, leftTitle)
		left.Position = "left"
		right := style.TitledAxis(dev, rightTitle)
		right.Position = "right"
		right.Grid = &chart.Grid{Display: chart.Bool(false)}

		opts := style.BaseOptions(dev)
		opts.Scales = map[string]*chart.Scale{
			"x":  style.GridStyle(dev),
			"y":  left,
			"y1": right,
		}

		return chart.Config{
			Type:    chart.Bar,
			Data:    chart.Data{Labels: d.Labels, Datasets: []chart.Dataset{bars, line}},
			Options: opts,
		}
	}
}

// stackedMax caps the value axis of stacked percentage charts.
const stackedMax = 100

// stackedShares stacks percentage shares per category up to 100 %.
func stackedShares(d dataset.Dataset, yTitle string) Factory {
	return func(dev style.Device) chart.Config {
		sets := make([]chart.Dataset, len(d.Datasets))
		for i, s := range d.Datasets {
			sets[i] = chart.Dataset{
				Label:           s.Label,
				Data:            s.Data,
				BackgroundColor: chart.Solid(s.Color.Alpha(dataset.AlphaStrong)),
				BorderColor:     chart.Solid(s.Color.String()),
				BorderWidth:     barBorderWidth,
			}
		}

		x := style.GridStyle(dev)
		x.Stacked = true
		y := style.TitledAxis(dev, yTitle)
		y.Stacked = true
		y.Max = chart.Float(stackedMax)

		opts := style.BaseOptions(dev)
		opts.Scales = map[string]*chart.Scale{"x": x, "y": y}
		opts.Plugins.Tooltip.Format = &chart.TooltipFormat{
			Kind:   chart.FormatSuffix,
			Suffix: percentSuffix,
		}

		return chart.Config{
			Type:    chart.Bar,
			Data:    chart.Data{Labels: d.Labels, Datasets: sets},
			Options: opts,
		}
	}
}

// Doughnut styling.
const (
	doughnutCutout      = "55%"
	doughnutBorderWidth = 2
	doughnutHoverOffset = 8
)

// laborTax shows how a gross wage splits into net pay, tax and insurance.
// The doughnut keeps its legend on every device, below the chart.
func laborTax(b dataset.Breakdown) Factory {
	labels := DoughnutLabels(b)
	return func(dev style.Device) chart.Config {
		tooltip := style.Tooltip(12)
		tooltip.Format = &chart.TooltipFormat{
			Kind:   chart.FormatLookup,
			Labels: append([]string(nil), labels...),
		}

		return chart.Config{
			Type: chart.Doughnut,
			Data: chart.Data{
				Labels: b.Labels,
				Datasets: []chart.Dataset{{
					Data:            b.Data,
					BackgroundColor: chart.PerPoint(dataset.Strings(b.Colors)),
					BorderColor:     chart.Solid(style.ColorPage),
					BorderWidth:     doughnutBorderWidth,
					HoverOffset:     doughnutHoverOffset,
				}},
			},
			Options: chart.Options{
				Responsive:          true,
				MaintainAspectRatio: false,
				Cutout:              doughnutCutout,
				Animation:           style.Animation(),
				Plugins: chart.Plugins{
					Legend: chart.Legend{
						Display:  true,
						Position: "bottom",
						Labels: chart.LegendLabels{
							Color:    style.ColorText,
							Font:     chart.Font{Size: doughnutLegendFont(dev)},
							BoxWidth: 12,
							Padding:  16,
						},
					},
					Tooltip: tooltip,
				},
			},
		}
	}
}

func doughnutLegendFont(dev style.Device) int {
	if dev == style.Mobile {
		return 10
	}
	return 12
}
