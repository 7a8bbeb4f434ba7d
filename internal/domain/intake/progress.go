package intake

import "math"

// Progress converts a step position into a display percentage. Step 1 is 0%,
// the final step 100%; a single-step wizard always reports 0.
func Progress(current, total int) int {
	if total <= 1 {
		return 0
	}
	pct := math.Round(float64(current-1) / float64(total-1) * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}
