// Package registry maps every chart on the page to the factory that builds
// its Chart.js configuration.
//
// Each [Entry] is keyed by a stable, human-readable identifier (for example
// "kupni-sila") and closes over exactly one decoded fixture. The page
// resolves an entry's canvas by [CanvasID] ("chart-<key>") and binds the
// configuration returned by [Registry.Mount] to it.
//
// Entries are deliberately written one factory per chart. The chart shapes
// differ in real ways (single vs dual axis, stacked vs grouped, categorical
// vs doughnut) and per-entry literals such as axis bounds, alpha suffixes and
// unit labels are presentation decisions reviewed chart by chart.
//
// Charts are grouped into six narrative acts ([Act]) that become section
// dividers on the page.
package registry
