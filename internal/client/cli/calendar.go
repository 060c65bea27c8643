package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophcal/internal/client/state"
	"github.com/dmitrijs2005/gophcal/internal/timex"
)

type monthKey struct {
	year  int
	month time.Month
}

func (a *App) Month(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.showMonth()
		return nil
	}

	m, err := time.Parse(timex.MonthLayout, args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Usage: month [YYYY-MM]")
		return err
	}
	// asked for explicitly, so redraw even when it is already shown
	a.drawn = monthKey{}
	a.calendar.ShowMonth(m.Year(), m.Month())
	return nil
}

func (a *App) Next(ctx context.Context) error {
	a.calendar.ShiftMonth(1)
	return nil
}

func (a *App) Prev(ctx context.Context) error {
	a.calendar.ShiftMonth(-1)
	return nil
}

// onCalendarChange redraws the month grid whenever the displayed month moves
// away from the one last drawn.
func (a *App) onCalendarChange(c *state.Calendar) {
	year, month := c.Month()
	if a.drawn == (monthKey{year, month}) {
		return
	}
	a.showMonth()
}

func (a *App) showMonth() {
	year, month := a.calendar.Month()
	renderMonth(a.out, year, month, a.config.WeekStart, a.calendar.Selected(), a.calendar.HasEvents)
	if a.calendar.Stale() {
		fmt.Fprintln(a.out, "(event markers may be out of date)")
	}
	a.drawn = monthKey{year, month}
}

func (a *App) Day(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if err := a.calendar.Select(args[0]); err != nil {
			fmt.Fprintln(a.out, "Usage: day [YYYY-MM-DD]")
			return err
		}
	}
	return a.showDay(ctx)
}

func (a *App) Today(ctx context.Context) error {
	if err := a.calendar.Select(timex.FormatDate(a.now())); err != nil {
		return err
	}
	return a.showDay(ctx)
}

// showDay lists the selected day from the cache, or straight from storage
// when the cache is stale.
func (a *App) showDay(ctx context.Context) error {
	date := a.calendar.Selected()
	events := a.calendar.EventsOn(date)
	if a.calendar.Stale() {
		var err error
		if events, err = a.calendar.Day(ctx, date); err != nil {
			a.reportError(ctx, err)
			return err
		}
	}
	renderDay(a.out, date, events)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return errUsage
	}

	if err := a.calendar.Delete(ctx, args[0]); err != nil {
		a.reportError(ctx, err)
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *App) Clear(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "Delete ALL events? Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		a.reportError(ctx, errAborted)
		return errAborted
	}

	if err := a.calendar.ClearAll(ctx); err != nil {
		a.reportError(ctx, err)
		return err
	}
	fmt.Fprintln(a.out, "All events deleted")
	return nil
}
