package heatmap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NeutralColor fills every cell whose count is zero or negative.
const NeutralColor = "#ebedf0"

// minIntensity keeps the smallest nonzero count visually distinct from zero.
const minIntensity = 0.35

// ColorFor maps a count to a display color by interpolating each RGB channel
// from white toward baseColor. Counts at or above maxCount saturate fully.
// baseColor is not validated; a malformed value produces a degenerate color
// string rather than an error.
func ColorFor(count int, baseColor string, maxCount int) string {
	if count <= 0 {
		return NeutralColor
	}

	intensity := minIntensity + 0.9*float64(count)/float64(maxCount)
	if intensity > 1 {
		intensity = 1
	}

	r, g, b := parseHexColor(baseColor)
	shade := func(ch float64) int {
		return int(math.Round(255 - (255-ch)*intensity))
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", shade(r), shade(g), shade(b))
}

// parseHexColor reads a "#RRGGBB" string into float channels. Unparsable
// input yields NaN channels, which propagate into the output string.
func parseHexColor(s string) (r, g, b float64) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	channel := func(hex string) float64 {
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return math.NaN()
		}
		return float64(v)
	}
	return channel(s[0:2]), channel(s[2:4]), channel(s[4:6])
}
