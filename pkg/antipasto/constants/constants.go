// Package constants defines shared constants and configuration values used
// throughout the antipasto popup menu toolkit.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// WindowWidthEnvVar overrides the window width in development mode.
const WindowWidthEnvVar = "WINDOW_WIDTH"

// WindowHeightEnvVar overrides the window height in development mode.
const WindowHeightEnvVar = "WINDOW_HEIGHT"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Popup interaction timing.
const (
	// AutoScrollInterval rate-limits edge autoscrolling while dragging.
	AutoScrollInterval = 30 * time.Millisecond

	// ClickConfirmTicks delays the close after an explicit click so the user
	// sees the highlighted row before the menu disappears.
	ClickConfirmTicks = 4

	// ReleaseConfirmTicks delays the close after a drag-release over a row.
	ReleaseConfirmTicks = 2

	// EdgeScrollMargin is the cursor distance (in pixels, pre-scaling) from
	// the popup's top or bottom edge that triggers autoscrolling.
	EdgeScrollMargin = 2
)
