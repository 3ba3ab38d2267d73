package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFrame      = tcell.NewRGBColor(90, 90, 110)   // Board frame
	RgbText       = tcell.NewRGBColor(220, 220, 220) // HUD text
	RgbDimText    = tcell.NewRGBColor(140, 140, 140) // Footer hints

	RgbTileBg      = tcell.NewRGBColor(200, 40, 40)   // Apple red
	RgbTileAltBg   = tcell.NewRGBColor(175, 30, 30)   // Checkerboard shade
	RgbTileFg      = tcell.NewRGBColor(255, 255, 255) // Tile number
	RgbTileCleared = tcell.NewRGBColor(40, 41, 54)    // Empty cell
	RgbTileHover   = tcell.NewRGBColor(255, 120, 80)  // Tile under the rectangle

	RgbSelectionValid   = tcell.NewRGBColor(50, 255, 50) // Bright green
	RgbSelectionInvalid = tcell.NewRGBColor(255, 255, 0) // Yellow

	RgbGaugeFull  = tcell.NewRGBColor(0, 200, 0)   // Plenty of time
	RgbGaugeLow   = tcell.NewRGBColor(255, 165, 0) // Below half
	RgbGaugeEmpty = tcell.NewRGBColor(200, 50, 50) // Below a fifth
	RgbGaugeTrack = tcell.NewRGBColor(60, 60, 70)

	RgbOverlayBg     = tcell.NewRGBColor(30, 30, 50)
	RgbOverlayBorder = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbOverlayTitle  = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbButtonBg      = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbButtonFg      = tcell.NewRGBColor(0, 0, 0)
)

// GaugeColor returns the gauge fill color for a remaining fraction
func GaugeColor(fraction float64) tcell.Color {
	switch {
	case fraction < 0.2:
		return RgbGaugeEmpty
	case fraction < 0.5:
		return RgbGaugeLow
	default:
		return RgbGaugeFull
	}
}
