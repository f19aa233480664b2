package content

import (
	"strconv"
	"strings"
)

// CompareOrder compares two contentOrder keys by splitting on "." and
// comparing each segment numerically, left to right. A missing segment counts
// as 0, so "2" and "2.0" are equal. Numeric comparison keeps "10.0" after
// "2.0", which lexicographic comparison would get wrong.
func CompareOrder(a, b string) int {
	segsA := strings.Split(a, ".")
	segsB := strings.Split(b, ".")

	n := len(segsA)
	if len(segsB) > n {
		n = len(segsB)
	}

	for i := 0; i < n; i++ {
		va := segmentValue(segsA, i)
		vb := segmentValue(segsB, i)
		if va < vb {
			return -1
		}
		if va > vb {
			return 1
		}
	}

	return 0
}

func segmentValue(segments []string, i int) float64 {
	if i >= len(segments) {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(segments[i]), 64)
	if err != nil {
		return 0
	}
	return v
}
