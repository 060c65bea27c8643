package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophcal/internal/client/models"
	"github.com/dmitrijs2005/gophcal/internal/timex"
)

var (
	defaultStart = timex.FormatClock(9, 0)
	defaultEnd   = timex.FormatClock(10, 0)
)

func (a *App) Add(ctx context.Context) error {
	initial := models.EventForm{
		Date:      a.calendar.Selected(),
		StartTime: defaultStart,
		EndTime:   defaultEnd,
	}

	form, err := a.inputForm(initial)
	if err != nil {
		return err
	}

	e, err := a.calendar.Create(ctx, form)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	fmt.Fprintf(a.out, "Created event %s\n", e.ID)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: edit <id>")
		return errUsage
	}
	id := args[0]

	current, ok := a.calendar.Find(id)
	if !ok {
		a.reportError(ctx, errNotFound)
		return errNotFound
	}

	form, err := a.inputForm(models.FormOf(current))
	if err != nil {
		return err
	}

	e, err := a.calendar.Update(ctx, id, form)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	if e == nil {
		// removed by someone else since it was listed
		a.reportError(ctx, errNotFound)
		return errNotFound
	}
	fmt.Fprintf(a.out, "Updated event %s\n", e.ID)
	return nil
}

// inputForm walks the user through every field, offering the values of
// initial as defaults. Validation is left to the service.
func (a *App) inputForm(initial models.EventForm) (models.EventForm, error) {
	var (
		f   models.EventForm
		err error
	)

	if f.Title, err = GetTextWithDefault(a.reader, "Title", initial.Title, a.out); err != nil {
		return f, err
	}
	if f.Description, err = GetOptionalText(a.reader, "Description", initial.Description, a.out); err != nil {
		return f, err
	}
	if f.Date, err = GetTextWithDefault(a.reader, "Date (YYYY-MM-DD)", initial.Date, a.out); err != nil {
		return f, err
	}
	if f.StartTime, err = GetTextWithDefault(a.reader, "Start (HH:mm)", initial.StartTime, a.out); err != nil {
		return f, err
	}
	if f.EndTime, err = GetTextWithDefault(a.reader, "End (HH:mm)", initial.EndTime, a.out); err != nil {
		return f, err
	}

	colorDefault := initial.Color
	if colorDefault == "" {
		colorDefault = models.DefaultColor
	}
	prompt := fmt.Sprintf("Color (%s)", strings.Join(models.Palette, ", "))
	if f.Color, err = GetTextWithDefault(a.reader, prompt, colorDefault, a.out); err != nil {
		return f, err
	}
	return f, nil
}
