package constants

// UI Layout Constants
const (
	// HUDHeight is the number of rows above the board (score, gauge, spacer)
	HUDHeight = 2

	// FooterHeight is the number of rows below the board for key hints
	FooterHeight = 1

	// GaugeMinWidth is the smallest width of the timer gauge bar
	GaugeMinWidth = 10
)

// Overlay text
const (
	TitleStart   = "FRUIT BOX"
	MessageStart = "Drag a box around numbers that add up to 10"

	TitleCleared   = "ALL CLEAR!"
	TitleTimeout   = "TIME UP!"
	MessageCleared = "Time taken: %.1fs"
	MessageScore   = "Final score: %d"

	// Session line on the end overlay: rounds, clears, fastest full clear
	SessionFormat = "Rounds %d  Clears %d  Fastest %s"
	NoFastest     = "-"

	// Live sum label on the board frame while dragging
	SumLabel = " Sum %d "

	ButtonStart   = "[ Start ]"
	ButtonRestart = "[ Restart ]"

	FooterHint   = "drag: select   s: start   r: restart   q: quit"
	TooSmallText = "Terminal too small: need %dx%d"
)
