// Package dataset holds the static indicator fixtures rendered on the page.
//
// Every fixture is a JSON document committed under data/ and embedded into
// the binary. Two shapes exist:
//
//   - [Dataset]: shared category labels plus one or more [Series]
//   - [Breakdown]: a single categorical split with pre-computed percentages
//
// Fixtures are decoded once per process by [Default]; the returned values
// are treated as immutable by every consumer.
//
// Colors are checked when a fixture is decoded: anything other than a
// six-digit "#rrggbb" hex string fails the load with
// errors.ErrCodeInvalidColor, because chart styling composes alpha channels
// by appending two hex digits to the color.
package dataset
