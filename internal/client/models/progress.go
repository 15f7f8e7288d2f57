package models

import "math"

// Progress is one byte-level tick of an upload session.
type Progress struct {
	Loaded int64
	Total  int64
}

// Percent is round(100 * Loaded / Total). A non-positive Total yields 0.
func (p Progress) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(p.Loaded) / float64(p.Total)))
}

// Scale is the horizontal fill factor of the progress bars, Percent/100.
func (p Progress) Scale() float64 {
	return float64(p.Percent()) / 100
}
