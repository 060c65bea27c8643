package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophcal/internal/client/services"
)

var (
	errUsage    = errors.New("usage")
	errNotFound = errors.New("event not found")
	errAborted  = errors.New("aborted")
)

// reportError prints err as a one-line message the user can act on.
func (a *App) reportError(ctx context.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		fmt.Fprintf(a.out, "Error: %s\n", ve.Reason)
	case errors.Is(err, services.ErrStorageRead):
		fmt.Fprintln(a.out, "Failed to load events")
	case errors.Is(err, services.ErrStorageWrite):
		fmt.Fprintln(a.out, "Failed to save events")
	case errors.Is(err, errNotFound):
		fmt.Fprintln(a.out, "Event not found")
	case errors.Is(err, errAborted):
		fmt.Fprintln(a.out, "Cancelled")
	default:
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
	if !errors.Is(err, services.ErrValidation) {
		a.log.Debug(ctx, "command failed", "err", err)
	}
}
