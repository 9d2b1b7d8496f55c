package overlay

// Position places the foreground relative to the background on one axis.
// Offsets shift the computed position; the result is clamped to keep the
// foreground inside the background whenever it fits.
type Position int

const (
	Top Position = iota + 1
	Right
	Bottom
	Left
	Center
)
