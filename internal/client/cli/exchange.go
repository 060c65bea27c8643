package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophcal/internal/client/ics"
	"github.com/dmitrijs2005/gophcal/internal/client/services"
)

func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: export <file.ics>")
		return errUsage
	}

	if err := a.calendar.Load(ctx); err != nil {
		a.reportError(ctx, err)
		return err
	}
	events := a.calendar.Events()

	path := args[0]
	f, err := os.Create(path)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	err = ics.Export(f, events, a.loc, a.now())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// no partial calendars left behind
		_ = os.Remove(path)
		a.reportError(ctx, err)
		return err
	}
	fmt.Fprintf(a.out, "Exported %d events to %s\n", len(events), path)
	return nil
}

// Import creates one event per importable VEVENT. Events rejected by
// validation are counted and skipped; a storage failure stops the import.
func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: import <file.ics>")
		return errUsage
	}

	f, err := os.Open(args[0])
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	defer f.Close()

	res, err := ics.Parse(f, a.loc)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	imported, rejected := 0, 0
	for _, form := range res.Forms {
		if _, err := a.calendar.Create(ctx, form); err != nil {
			if services.IsStorageError(err) {
				a.reportError(ctx, err)
				return err
			}
			rejected++
			a.log.Info(ctx, "import: event rejected", "title", form.Title, "err", err)
			continue
		}
		imported++
	}

	fmt.Fprintf(a.out, "Imported %d events (%d skipped)\n", imported, res.Skipped+rejected)
	return nil
}
