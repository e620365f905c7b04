// Package uischema loads the presentation overlay for the risk form: field
// labels, units, placeholders and help text, plus the form title and action
// labels. Overlays are JSON or YAML documents; the default one is embedded.
// Validation never depends on the overlay.
package uischema
