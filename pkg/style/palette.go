package style

// Page palette (dark theme).
const (
	ColorText        = "#e0e0e0"
	ColorTooltipBG   = "#1a1a1a"
	ColorTooltipText = "#fff"
	ColorBorder      = "#333"
	ColorTick        = "#666"
	ColorGrid        = "#1a1a1a"
	ColorAxisTitle   = "#888"
	ColorPage        = "#0a0a0a"
)

// Animation shared by every chart.
const (
	AnimationDuration = 1200
	AnimationEasing   = "easeOutQuart"
)
