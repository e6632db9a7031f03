package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/user/memecanvas/pkg/pipeline"
)

// parsePlacement parses a --text value. "TEXT@X,Y" places the caption
// centered on (X, Y); anything else, including an "@" not followed by two
// finite numbers, is taken as plain text added at the center.
func parsePlacement(s string) pipeline.Placement {
	i := strings.LastIndex(s, "@")
	if i < 0 {
		return pipeline.Placement{Text: s}
	}

	xs, ys, ok := strings.Cut(s[i+1:], ",")
	if !ok {
		return pipeline.Placement{Text: s}
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil || !finite(x) || !finite(y) {
		return pipeline.Placement{Text: s}
	}

	return pipeline.Placement{Text: s[:i], X: x, Y: y, Positioned: true}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
