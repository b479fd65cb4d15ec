// Package viz renders cosmology results in the terminal.
//
//   - [Plot]: asciigraph line charts of survey columns against redshift
//   - [Table]: lipgloss tables for distance and density listings
//   - [Explorer]: a Bubble Tea app for browsing presets interactively
//
// # Explorer Key Bindings
//
//	j/k   - Select preset (menu) or step size (detail)
//	enter - Open preset / type a redshift
//	h/l   - Decrease/increase redshift
//	+/-   - Grow/shrink the redshift step
//	esc   - Back to the preset list
//	q     - Quit
package viz
