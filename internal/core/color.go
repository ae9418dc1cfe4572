package core

// Color is the foreground color of a screen cell, as a "#rrggbb" hex string.
// The empty string means the terminal's default foreground.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault Color = ""
	ColorPlayer  Color = "#f6d365" // Warm yellow player block
	ColorBoosted Color = "#fff3b0" // Brighter player while boosted
	ColorPowerUp Color = "#7df9ff" // Electric cyan pickup
	ColorHUD     Color = "#c0c0c0"
	ColorDanger  Color = "#ff5f5f"
	ColorDim     Color = "#5f5f5f"
)
