package entry

import (
	"math"
	"strconv"
	"strings"
)

// Stars renders a rating as five stars, rounding to the nearest whole star.
func Stars(rating float64) string {
	n := int(math.Round(Clamp(rating)))
	return strings.Repeat("★", n) + strings.Repeat("☆", int(MaxRating)-n)
}

// Clamp limits a rating to [0, MaxRating].
func Clamp(rating float64) float64 {
	if math.IsNaN(rating) || rating < 0 {
		return 0
	}
	return math.Min(rating, MaxRating)
}

// FormatRating prints a rating with at most one decimal.
func FormatRating(rating float64) string {
	return strconv.FormatFloat(math.Round(rating*10)/10, 'f', -1, 64)
}
