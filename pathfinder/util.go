package pathfinder

import "math"

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func ceil32(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}
