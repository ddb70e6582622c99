package ui

// Stats carries the per-frame readout shown by the overlay.
type Stats struct {
	Generation int
	Population int
	Rate       int
	Seed       int64
	Paused     bool
}
