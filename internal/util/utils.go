package util

// Mean divides an integer sum over count values, returning 0 for no values.
func Mean(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// Round2Ratio rounds sum/count to two decimals, halves away from zero. The
// rounding is done on the exact integer ratio, so 201/200 gives 1.01.
func Round2Ratio(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	if count < 0 {
		sum, count = -sum, -count
	}
	sign := 1
	if sum < 0 {
		sign = -1
	}
	hundredths := (200*sum + sign*count) / (2 * count)
	return float64(hundredths) / 100
}
