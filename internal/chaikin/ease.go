package chaikin

// Ease names for the animation fraction. Linear is the plain fraction;
// smooth and cubic soften the start and end of each level transition.
const (
	EaseLinear = "linear"
	EaseSmooth = "smooth"
	EaseCubic  = "cubic"
)

// clamp01 clamps x into [0,1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// smootherstep: 6x^5 - 15x^4 + 10x^3
func smootherstep(x float64) float64 {
	return x * x * x * (x*(x*6-15) + 10)
}

func easeApply(kind string, x float64) float64 {
	switch kind {
	case EaseLinear, "":
		return x
	case EaseSmooth:
		// classic smoothstep 3x^2 - 2x^3
		return x * x * (3 - 2*x)
	case EaseCubic:
		return smootherstep(x)
	default:
		return x
	}
}
