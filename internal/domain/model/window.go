package model

import "time"

// TimeWindow is a half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the window has positive length.
func (w TimeWindow) Valid() bool {
	return w.Start.Before(w.End)
}

// Overlaps reports half-open interval overlap with other:
// a.start < b.end && b.start < a.end.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}
