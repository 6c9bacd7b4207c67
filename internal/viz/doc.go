// Package viz renders figures in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas, 2x4 sub-pixels per cell
//   - [RenderFigure]: framed panels with tick and axis labels
//   - [Viewer]: Bubble Tea program that pages through the figures
//   - [Report]: lipgloss summary of the solver output
//
// # Key Bindings
//
//	Tab / ->   - Next figure
//	Shift+Tab  - Previous figure
//	1, 2       - Jump to figure
//	T          - Cycle color themes
//	Q / Esc    - Close the viewer
package viz
