package style

import (
	"strings"
	"testing"

	"github.com/sgtmarmite/wtfcesko/pkg/dataset"
)

func TestDeviceForWidth(t *testing.T) {
	tests := []struct {
		px         int
		breakpoint int
		want       Device
	}{
		{320, 0, Mobile},
		{640, 0, Mobile},
		{641, 0, Desktop},
		{1440, 0, Desktop},
		{640, 480, Desktop},
		{480, 480, Mobile},
		{800, 1024, Mobile},
		{1025, 1024, Desktop},
		{640, -1, Mobile},
	}
	for _, tt := range tests {
		if got := DeviceForWidth(tt.px, tt.breakpoint); got != tt.want {
			t.Errorf("DeviceForWidth(%d, %d) = %v, want %v", tt.px, tt.breakpoint, got, tt.want)
		}
	}
}

func TestParseDevice(t *testing.T) {
	for _, d := range Devices {
		got, err := ParseDevice(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDevice(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDevice("tablet"); err == nil {
		t.Error("ParseDevice(tablet) should fail")
	}
}

func TestBaseOptions(t *testing.T) {
	desktop := BaseOptions(Desktop)
	mobile := BaseOptions(Mobile)

	if !desktop.Plugins.Legend.Display {
		t.Error("legend should be shown on desktop")
	}
	if mobile.Plugins.Legend.Display {
		t.Error("legend should be hidden on mobile")
	}
	if desktop.Plugins.Tooltip.Padding != 12 || mobile.Plugins.Tooltip.Padding != 8 {
		t.Errorf("tooltip padding = %d/%d, want 12/8",
			desktop.Plugins.Tooltip.Padding, mobile.Plugins.Tooltip.Padding)
	}
	if !desktop.Responsive || desktop.MaintainAspectRatio {
		t.Error("charts must be responsive without a fixed aspect ratio")
	}
	if desktop.Animation == nil || desktop.Animation.Duration != 1200 || desktop.Animation.Easing != "easeOutQuart" {
		t.Errorf("animation = %+v", desktop.Animation)
	}
}

func TestGridStyle(t *testing.T) {
	tests := []struct {
		device      Device
		fontSize    int
		maxRotation int
		maxTicks    int
	}{
		{Desktop, 11, 0, 20},
		{Mobile, 9, 45, 8},
	}
	for _, tt := range tests {
		t.Run(tt.device.String(), func(t *testing.T) {
			s := GridStyle(tt.device)
			if s.Ticks.Font.Size != tt.fontSize {
				t.Errorf("font size = %d, want %d", s.Ticks.Font.Size, tt.fontSize)
			}
			if s.Ticks.MaxRotation != tt.maxRotation {
				t.Errorf("max rotation = %d, want %d", s.Ticks.MaxRotation, tt.maxRotation)
			}
			if s.Ticks.MaxTicksLimit != tt.maxTicks {
				t.Errorf("max ticks = %d, want %d", s.Ticks.MaxTicksLimit, tt.maxTicks)
			}
			if !s.Ticks.AutoSkip {
				t.Error("autoSkip should be on")
			}
		})
	}
}

func TestGridStyleReturnsFreshValues(t *testing.T) {
	a := GridStyle(Desktop)
	a.Ticks.Color = "#ffffff"
	if b := GridStyle(Desktop); b.Ticks.Color != ColorTick {
		t.Error("GridStyle should not share state between calls")
	}
}

func TestLineOptions(t *testing.T) {
	opts := LineOptions(Mobile, "Index (1998 = 100)")
	x, y := opts.Scales["x"], opts.Scales["y"]
	if x == nil || y == nil {
		t.Fatalf("scales = %v, want x and y", opts.Scales)
	}
	if x.Title != nil {
		t.Error("x axis should be untitled")
	}
	if y.Title == nil || y.Title.Text != "Index (1998 = 100)" || !y.Title.Display {
		t.Errorf("y title = %+v", y.Title)
	}
	if y.Ticks.MaxTicksLimit != 8 {
		t.Error("y axis should carry mobile grid style")
	}
	if opts.Plugins.Legend.Display {
		t.Error("LineOptions should inherit mobile legend visibility")
	}

	bar := GroupedBarOptions(Desktop, "% průměru EU")
	if bar.Scales["y"].Title.Text != "% průměru EU" {
		t.Errorf("grouped bar y title = %q", bar.Scales["y"].Title.Text)
	}
}

func TestLineDataset(t *testing.T) {
	s := dataset.Series{Label: "Ceny bytů", Data: []float64{100, 118, 162}, Color: "#ef4444"}

	tests := []struct {
		name   string
		fill   bool
		wantBG string
	}{
		{"filled", true, "#ef444415"},
		{"unfilled", false, "#ef444400"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := LineDataset(s, tt.fill)
			if got := ds.BackgroundColor.String(); got != tt.wantBG {
				t.Errorf("backgroundColor = %q, want %q", got, tt.wantBG)
			}
			if got := ds.BorderColor.String(); got != "#ef4444" {
				t.Errorf("borderColor = %q", got)
			}
			if ds.Fill == nil || *ds.Fill != tt.fill {
				t.Errorf("fill = %v, want %v", ds.Fill, tt.fill)
			}
			if len(ds.Data) != len(s.Data) || ds.Label != s.Label {
				t.Errorf("series identity lost: %+v", ds)
			}
			if ds.Tension != 0.3 || *ds.PointRadius != 3 || ds.PointHoverRadius != 6 || ds.BorderWidth != 2.5 {
				t.Errorf("line defaults = %+v", ds)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	normalize := func(s string) string {
		return strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(s)
	}
	tests := []struct {
		in   float64
		want string
	}{
		{39270, "39 270"},
		{12400, "12 400"},
		{1234567, "1 234 567"},
		{12.5, "12,5"},
		{0.125, "0,125"},
		{7, "7"},
	}
	for _, tt := range tests {
		if got := normalize(FormatNumber(tt.in)); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
