package dataset

import (
	"encoding/json"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/sgtmarmite/wtfcesko/pkg/errors"
)

// Alpha suffixes used by chart styling.
const (
	AlphaTransparent = "00"
	AlphaFaint       = "15"
	AlphaSoft        = "20"
	AlphaHalf        = "80"
	AlphaStrong      = "cc"
)

// Color is a validated "#rrggbb" hex color.
type Color string

// ParseColor validates s and returns it as a lowercase Color.
func ParseColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return "", errors.New(errors.ErrCodeInvalidColor, "color must be #rrggbb, got %q", s)
	}
	if _, err := colorful.Hex(s); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidColor, err, "parse color %q", s)
	}
	return Color(strings.ToLower(s)), nil
}

// MustColor is like ParseColor but panics on error. Meant for literals.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Alpha returns the color with a two-hex-digit alpha channel appended
// ("#3b82f6" + "cc" = "#3b82f6cc").
func (c Color) Alpha(suffix string) string {
	return string(c) + suffix
}

// String returns the "#rrggbb" form.
func (c Color) String() string { return string(c) }

// UnmarshalJSON decodes and validates a JSON string color.
func (c *Color) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidColor, err, "color must be a string")
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Alphas applies suffix to every color in cs.
func Alphas(cs []Color, suffix string) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Alpha(suffix)
	}
	return out
}

// Strings converts cs to plain strings.
func Strings(cs []Color) []string {
	return Alphas(cs, "")
}
