// Package wallpaper renders the composed year grid as a phone-lock-screen
// sized SVG: one row of dots per month, summary text, and the quote of the
// day.
package wallpaper

import (
	"fmt"
	"math"
	"strings"

	"github.com/yeargrid/yeargrid/pkg/birthday"
	"github.com/yeargrid/yeargrid/pkg/grid"
)

// Palette for the grid. Birthday colors override payday which overrides the
// past/today/future base; the holiday color is only ever a ring around a dot.
const (
	colorBgTop    = "#0A0E13"
	colorBgBottom = "#060809"

	colorPast   = "#D4D7DC"
	colorFuture = "rgba(212,215,220,0.10)"
	colorToday  = "#E85D3B"

	colorSelf   = "#F5C842"
	colorFamily = "#5B9CF6"
	colorFriend = "#5B9CF6"

	colorPayday  = "#34C759"
	colorHoliday = "rgba(212,215,220,0.25)"

	colorTextMuted = "rgba(212,215,220,0.55)"
	colorTextQuote = "rgba(212,215,220,0.30)"
	colorTextMonth = "rgba(212,215,220,0.35)"

	fontFamily = "Arial, Helvetica, sans-serif"
)

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Options parameterize one render. Width and height are already clamped by
// the handler.
type Options struct {
	Width  int
	Height int
	Result grid.Result
}

func categoryColor(c birthday.Category) string {
	switch c {
	case birthday.CategorySelf:
		return colorSelf
	case birthday.CategoryFamily:
		return colorFamily
	default:
		return colorFriend
	}
}

// Render produces the full SVG document for the given grid result.
func Render(opts Options) string {
	width := float64(opts.Width)
	height := float64(opts.Height)
	summary := opts.Result.Summary

	// Padding tuned for a phone lock screen: the grid sits below the OS
	// clock and above the bottom controls.
	gridTop := math.Round(height * 0.275)
	gridBottom := height - math.Round(height*0.19)
	sidePadLeft := math.Round(width * 0.14)
	sidePadRight := math.Round(width * 0.07)

	gridHeight := gridBottom - gridTop
	gridWidth := width - sidePadLeft - sidePadRight

	// 12 month rows by up to 31 day columns.
	cellX := gridWidth / 30
	cellY := gridHeight / 11
	radius := math.Max(8, math.Round(math.Min(cellX, cellY)*0.38))

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		opts.Width, opts.Height, opts.Width, opts.Height)
	fmt.Fprintf(&b, `<defs><linearGradient id="bg" x1="0" y1="0" x2="0" y2="1">`+
		`<stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/>`+
		`</linearGradient></defs>`, colorBgTop, colorBgBottom)
	b.WriteString(`<rect width="100%" height="100%" fill="url(#bg)"/>`)

	// Header: year and ISO week.
	fmt.Fprintf(&b, `<text x="%.0f" y="%.0f" text-anchor="middle" font-family="%s" font-size="%.0f" font-weight="400" fill="%s">%d · Week %d</text>`,
		width/2, math.Round(height*0.06), fontFamily, math.Round(height*0.014), colorTextMuted, summary.Year, summary.Week)

	writeMonthLabels(&b, gridTop, cellY, sidePadLeft, width, height)
	writeDots(&b, opts.Result.Days, gridTop, sidePadLeft, cellX, cellY, radius)
	writeQuote(&b, summary, width, height, gridBottom)
	writeFooter(&b, summary, width, height, gridBottom)

	b.WriteString(`</svg>`)
	return b.String()
}

func writeMonthLabels(b *strings.Builder, gridTop, cellY, sidePadLeft, width, height float64) {
	fontSize := math.Round(height * 0.014)
	x := sidePadLeft - math.Round(width*0.02)
	for month := 0; month < 12; month++ {
		y := gridTop + float64(month)*cellY + fontSize*0.35
		fmt.Fprintf(b, `<text x="%.0f" y="%.1f" text-anchor="end" font-family="%s" font-size="%.0f" font-weight="400" letter-spacing="0.5" fill="%s">%s</text>`,
			x, y, fontFamily, fontSize, colorTextMonth, monthNames[month])
	}
}

func writeDots(b *strings.Builder, days []grid.DayState, gridTop, sidePadLeft, cellX, cellY, radius float64) {
	for _, day := range days {
		cx := sidePadLeft + float64(day.Date.Day()-1)*cellX
		cy := gridTop + float64(int(day.Date.Month())-1)*cellY

		fill := colorFuture
		opacity := 1.0
		switch {
		case day.IsPast:
			fill = colorPast
		case day.IsToday:
			fill = colorToday
		}
		if day.IsPayday {
			fill = colorPayday
			if day.IsFuture {
				opacity = 0.8
			}
		}
		if day.HasBirthday {
			fill = categoryColor(day.Category)
			if day.IsFuture {
				opacity = 0.7
			}
		}

		if day.IsToday {
			// Soft glow behind today's dot.
			fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" opacity="0.08"/>`,
				cx, cy, radius*2.5, colorToday)
		}
		if day.HasHoliday {
			fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="%.1f"/>`,
				cx, cy, radius*1.6, colorHoliday, math.Max(1, radius*0.15))
		}

		fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="%.0f" fill="%s" opacity="%.2g"/>`,
			cx, cy, radius, fill, opacity)

		if day.IsPayday {
			dollarOpacity := 1.0
			if day.IsFuture {
				dollarOpacity = 0.85
			}
			fmt.Fprintf(b, `<text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.0f" font-weight="700" fill="%s" opacity="%.2g">$</text>`,
				cx, cy, fontFamily, math.Max(8, radius*1.1), colorBgTop, dollarOpacity)
		}
	}
}

func writeQuote(b *strings.Builder, summary grid.YearSummary, width, height, gridBottom float64) {
	quote := QuoteOfDay(summary.DaysElapsed - 1)
	fontSize := math.Round(height * 0.011)
	y := gridBottom + math.Round(height*0.055)
	fmt.Fprintf(b, `<text x="%.0f" y="%.1f" text-anchor="middle" font-family="%s" font-size="%.0f" font-style="italic" fill="%s">“%s” — %s</text>`,
		width/2, y, fontFamily, fontSize, colorTextQuote, escapeText(quote.Text), escapeText(quote.Author))
}

func writeFooter(b *strings.Builder, summary grid.YearSummary, width, height, gridBottom float64) {
	footerY := gridBottom + math.Round(height*0.025)
	fontSize := math.Round(height * 0.013)

	paydayText := fmt.Sprintf("%dd until payday", summary.DaysToPayday)
	if summary.DaysToPayday == 0 {
		paydayText = "Payday today!"
	}

	fmt.Fprintf(b, `<text x="%.0f" y="%.1f" text-anchor="middle" font-family="%s" font-size="%.0f" font-weight="400" fill="%s">`,
		width/2, footerY, fontFamily, fontSize, colorTextMuted)
	fmt.Fprintf(b, `<tspan fill="%s">%d</tspan><tspan>d left</tspan>`, colorToday, summary.DaysLeft)
	fmt.Fprintf(b, `<tspan dx="0.5em">·</tspan><tspan dx="0.5em">%d%%</tspan>`, summary.PercentDone)
	fmt.Fprintf(b, `<tspan dx="0.5em">·</tspan><tspan dx="0.5em" fill="%s">%s</tspan>`, colorPayday, paydayText)
	if summary.NextBirthday != nil {
		birthdayText := fmt.Sprintf("%dd to %s", summary.NextBirthday.DaysUntil, escapeText(summary.NextBirthday.Name))
		if summary.NextBirthday.DaysUntil == 0 {
			birthdayText = fmt.Sprintf("%s's birthday today!", escapeText(summary.NextBirthday.Name))
		}
		fmt.Fprintf(b, `<tspan dx="0.5em">·</tspan><tspan dx="0.5em" fill="%s">%s</tspan>`, colorFriend, birthdayText)
	}
	b.WriteString(`</text>`)
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
