// Package main demonstrates the heatmap package by writing a sample SVG to stdout.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mtsk/calheat/heatmap"
)

func main() {
	end := time.Now()
	start := end.AddDate(-1, 0, 0)

	svg := heatmap.RenderSVG(heatmap.NewOptions(generateYearData(start, end), start, end))
	fmt.Println(svg)
}

// generateYearData creates random activity counts for every day in the range,
// with busier weekends and occasional spikes.
func generateYearData(start, end time.Time) map[string]int {
	data := make(map[string]int)
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		var count int
		if current.Weekday() == time.Saturday || current.Weekday() == time.Sunday {
			count = rand.Intn(10)
		} else {
			count = rand.Intn(6)
		}
		if rand.Intn(20) == 0 {
			count += rand.Intn(20)
		}
		if count != 0 {
			data[current.Format(heatmap.DateFormat)] = count
		}
	}
	return data
}
