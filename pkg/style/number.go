package style

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// czech formats numbers the way the page's audience reads them:
// no-break space as group separator and a decimal comma.
var czech = message.NewPrinter(language.Czech)

// FormatNumber formats v in the cs-CZ locale with at most three fraction
// digits, e.g. 39270 -> "39 270" and 12.5 -> "12,5".
func FormatNumber(v float64) string {
	return czech.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}
