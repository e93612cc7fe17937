package ui

// Status captures the values the overlay prints each frame.
type Status struct {
	Rule       int
	Generation int
	SPS        int
	Speed      int
	Palette    string
	Paused     bool
}
