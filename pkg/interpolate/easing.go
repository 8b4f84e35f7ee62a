package interpolate

import "math"

// Easing maps animation progress t in [0, 1] to eased progress.
type Easing func(t float64) float64

// Easing names.
const (
	Linear         = "linear"
	EaseIn         = "easeIn"
	EaseOut        = "easeOut"
	EaseInOut      = "easeInOut"
	EaseInCubic    = "easeInCubic"
	EaseOutCubic   = "easeOutCubic"
	EaseInOutCubic = "easeInOutCubic"
)

var easings = map[string]Easing{
	Linear:  func(t float64) float64 { return t },
	EaseIn:  func(t float64) float64 { return t * t },
	EaseOut: func(t float64) float64 { return t * (2 - t) },
	EaseInOut: func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	},
	EaseInCubic:  func(t float64) float64 { return t * t * t },
	EaseOutCubic: func(t float64) float64 { return 1 - math.Pow(1-t, 3) },
	EaseInOutCubic: func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	},
}

// Ease returns the easing registered under name, or linear.
func Ease(name string) Easing {
	if e, ok := easings[name]; ok {
		return e
	}
	return easings[Linear]
}

// Easings returns the names of all easings.
func Easings() []string {
	return []string{Linear, EaseIn, EaseOut, EaseInOut, EaseInCubic, EaseOutCubic, EaseInOutCubic}
}
