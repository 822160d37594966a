package scrollbox

import "math"

// EasingFunc maps progress in [0,1] to eased progress.
type EasingFunc func(t float64) float64

var (
	// EaseOutQuart decelerates sharply: 1 - (1-t)^4.
	EaseOutQuart EasingFunc = func(t float64) float64 {
		return 1 - math.Pow(1-t, 4)
	}

	// ReverseEaseOutQuart is the inverse of EaseOutQuart: 1 - (1-t)^(1/4).
	ReverseEaseOutQuart EasingFunc = func(t float64) float64 {
		return 1 - math.Pow(1-t, 1.0/4)
	}
)
