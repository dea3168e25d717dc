// Package style produces the visual configuration fragments shared by every
// chart on the page: legend and tooltip appearance, axis grid and tick
// styling, and the standard line-series look.
//
// The page adapts charts to narrow screens. Instead of reading the viewport,
// every helper takes a [Device]; the page builds one configuration per
// device class and the browser picks the matching one at load time using
// the same [MobileBreakpoint].
//
// All functions are pure and return fresh values, so callers may modify
// the returned fragments freely.
package style
