package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophcal/internal/client/models"
	"github.com/dmitrijs2005/gophcal/internal/timex"
)

// renderMonth draws the month grid. The selected day is prefixed with '>'
// and days that have events carry a '*'.
func renderMonth(w io.Writer, year int, month time.Month, weekStart time.Weekday, selected string, hasEvents func(date string) bool) {
	fmt.Fprintf(w, "%s %d\n", month, year)

	var sb strings.Builder
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(weekStart) + i) % 7)
		sb.WriteString(" " + day.String()[:2] + " ")
	}
	fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))

	grid := timex.MonthGrid(year, month, weekStart)
	for _, week := range grid {
		if week[0].Month() != month && week[6].Month() != month {
			continue
		}
		sb.Reset()
		for _, day := range week {
			if day.Month() != month {
				sb.WriteString("    ")
				continue
			}
			date := timex.FormatDate(day)
			sel, mark := ' ', ' '
			if date == selected {
				sel = '>'
			}
			if hasEvents(date) {
				mark = '*'
			}
			fmt.Fprintf(&sb, "%c%2d%c", sel, day.Day(), mark)
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}

// renderDay lists the events of one day in the order given.
func renderDay(w io.Writer, date string, events []models.Event) {
	fmt.Fprintln(w, timex.FormatDisplayDate(date))
	if len(events) == 0 {
		fmt.Fprintln(w, "  No events")
		return
	}
	for _, e := range events {
		fmt.Fprintf(w, "  %s  %s (%s)  [%s]\n", timex.FormatTimeRange(e.StartTime, e.EndTime), e.Title, e.Color, e.ID)
		if e.Description != nil && *e.Description != "" {
			for _, line := range strings.Split(*e.Description, "\n") {
				fmt.Fprintf(w, "      %s\n", line)
			}
		}
	}
}
