package quantity

import (
	"math"
	"strconv"
	"strings"
)

// fractionSnaps are the cooking-friendly fractions a sub-unit result is
// snapped to when it lands close enough.
var fractionSnaps = []struct {
	value float64
	label string
}{
	{0.25, "1/4"},
	{1.0 / 3.0, "1/3"},
	{0.5, "1/2"},
	{2.0 / 3.0, "2/3"},
	{0.75, "3/4"},
}

const snapTolerance = 0.05

// Scale rescales a textual ingredient quantity for a new serving count.
// Quantities may be integers, decimals, simple fractions ("1/2") or mixed
// numbers ("1 1/2"). Anything that cannot be parsed is returned unchanged.
func Scale(qty string, fromServings, toServings int) string {
	if fromServings < 1 {
		fromServings = 1
	}
	if toServings < 1 {
		toServings = 1
	}

	value, ok := Parse(qty)
	if !ok {
		return qty
	}

	scaled := value * float64(toServings) / float64(fromServings)
	return Format(scaled)
}

// Parse extracts a numeric value from a quantity string. The second return
// value is false when no number could be extracted.
func Parse(qty string) (float64, bool) {
	s := strings.TrimSpace(qty)
	if s == "" {
		return 0, false
	}

	// Mixed number: "1 1/2"
	if fields := strings.Fields(s); len(fields) == 2 && strings.Contains(fields[1], "/") {
		whole, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, false
		}
		frac, ok := parseFraction(fields[1])
		if !ok {
			return 0, false
		}
		return whole + frac, true
	}

	// Simple fraction: "1/2"
	if strings.Contains(s, "/") {
		return parseFraction(s)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseFraction(s string) (float64, bool) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, false
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, false
	}
	den, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || den == 0 {
		return 0, false
	}
	return num / den, true
}

// Format renders a scaled value back into a cook-friendly string.
// Whole numbers lose their decimals, sub-unit values snap to common
// fractions, everything else is rounded to one decimal place.
func Format(v float64) string {
	if rounded := math.Round(v); math.Abs(v-rounded) < 1e-9 {
		return strconv.Itoa(int(rounded))
	}

	if v > 0 && v < 1 {
		for _, snap := range fractionSnaps {
			if math.Abs(v-snap.value) <= snapTolerance {
				return snap.label
			}
		}
		return trimZeros(strconv.FormatFloat(v, 'f', 2, 64))
	}

	return trimZeros(strconv.FormatFloat(v, 'f', 1, 64))
}

func trimZeros(s string) string {
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
