package core

// Color is a foreground color hint for a rendered glyph.
// Frontends that support color map it to terminal styles; the plain
// console ignores it.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorRed
	ColorGray
)
