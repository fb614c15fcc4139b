package heatmap

import (
	"fmt"
	"strings"
)

// labelFontSize is the fixed font size for month and weekday labels (px).
const labelFontSize = 10

// weekdayLabels is the fixed legend column. It is intentionally always
// Monday-first and not reordered by Options.WeekStart.
var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// RenderSVG renders the heatmap described by opts as a standalone SVG
// document. The pass is pure: the grid, labels and colors are recomputed
// from the options every call.
func RenderSVG(opts *Options) string {
	o := opts.normalized()
	g := BuildGrid(o)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", g.Width, g.Height))
	sb.WriteString(fmt.Sprintf(`  <style>.month{font-family:sans-serif;font-size:%dpx;fill:%s}.weekday{font-family:sans-serif;font-size:%dpx;fill:%s}</style>`+"\n",
		labelFontSize, o.MonthLabelColor, labelFontSize, o.WeekdayLabelColor))

	writeWeekdayLabels(&sb, o)
	writeMonthLabels(&sb, g)
	writeCells(&sb, o, g)

	if o.Hover.Active() {
		writeTooltipOverlay(&sb, o.Hover)
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// RenderHTML wraps the SVG document in a container div honoring the Width
// and Scrollable options.
func RenderHTML(opts *Options) string {
	o := opts.normalized()
	overflow := "hidden"
	if o.Scrollable {
		overflow = "auto"
	}
	return fmt.Sprintf(`<div style="width:%s;overflow-x:%s">%s</div>`,
		cssWidth(o.Width), overflow, RenderSVG(o))
}

func writeWeekdayLabels(sb *strings.Builder, o *Options) {
	step := o.CellSize + o.CellSpacing
	for i, label := range weekdayLabels {
		y := monthRowHeight + i*step + o.CellSize - 3
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" text-anchor="end" class="weekday">%s</text>`+"\n",
			weekdayColWidth-6, y, label))
	}
}

func writeMonthLabels(sb *strings.Builder, g *Grid) {
	for _, ml := range g.MonthLabels {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="month">%s</text>`+"\n",
			weekdayColWidth+ml.X, monthRowHeight-6, ml.Text))
	}
}

func writeCells(sb *strings.Builder, o *Options, g *Grid) {
	for _, c := range g.Cells {
		fill := ColorFor(c.Count, o.BaseColor, g.MaxCount)
		date := c.Date.Format(DateFormat)
		x := weekdayColWidth + c.X
		y := monthRowHeight + c.Y

		if o.CellType == CellCircle {
			r := o.CellSize / 2
			sb.WriteString(fmt.Sprintf(`  <circle cx="%d" cy="%d" r="%d" fill="%s" data-date="%s" data-count="%d">`+"\n",
				x+r, y+r, r, fill, date, c.Count))
		} else {
			sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" rx="2" fill="%s" data-date="%s" data-count="%d">`+"\n",
				x, y, o.CellSize, o.CellSize, fill, date, c.Count))
		}
		sb.WriteString(fmt.Sprintf(`    <title>%s</title>`+"\n", escapeText(o.tooltipText(c.Date, c.Count))))
		if o.CellType == CellCircle {
			sb.WriteString(`  </circle>` + "\n")
		} else {
			sb.WriteString(`  </rect>` + "\n")
		}
	}
}

// writeTooltipOverlay emits the floating tooltip box above all other
// content, centered above the stored pointer point. It never receives
// pointer events itself.
func writeTooltipOverlay(sb *strings.Builder, h *HoverState) {
	text := escapeText(h.Text)
	boxWidth := 7*len(h.Text) + 12
	boxX := h.X - boxWidth/2
	boxY := h.Y - 26

	sb.WriteString(`  <g class="tooltip" pointer-events="none">` + "\n")
	sb.WriteString(fmt.Sprintf(`    <rect x="%d" y="%d" width="%d" height="20" rx="3" fill="#333" fill-opacity="0.9"/>`+"\n",
		boxX, boxY, boxWidth))
	sb.WriteString(fmt.Sprintf(`    <text x="%d" y="%d" text-anchor="middle" fill="#fff" font-family="sans-serif" font-size="%d">%s</text>`+"\n",
		h.X, h.Y-12, labelFontSize, text))
	sb.WriteString(`  </g>` + "\n")
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
