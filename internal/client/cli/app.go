package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophcal/internal/client/config"
	"github.com/dmitrijs2005/gophcal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophcal/internal/client/services"
	"github.com/dmitrijs2005/gophcal/internal/client/state"
	"github.com/dmitrijs2005/gophcal/internal/client/storage"
	"github.com/dmitrijs2005/gophcal/internal/logging"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	config   *config.Config
	db       *sql.DB
	calendar *state.Calendar
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time
	loc      *time.Location

	// drawn is the month grid last printed.
	drawn monthKey

	// interactive is false when stdin is not a terminal; the REPL prompt is
	// then suppressed so piped scripts produce clean output.
	interactive bool
}

// NewApp opens the database named in c and builds the service stack on top
// of it. The caller owns the returned App and must call Close.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, storage.DSN(c.DatabasePath, c.BusyTimeout))
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "err", err)
		return nil, err
	}

	svc := services.NewEventService(
		metadata.NewSQLiteRepository(db),
		services.WithStorageKey(c.StorageKey),
		services.WithLogger(log),
	)

	app := newApp(c, svc, log, os.Stdin, os.Stdout)
	app.db = db
	app.interactive = isTerminal(int(os.Stdin.Fd()))
	return app, nil
}

func newApp(c *config.Config, svc services.EventService, log logging.Logger, in io.Reader, out io.Writer) *App {
	now := time.Now
	a := &App{
		config:      c,
		calendar:    state.NewCalendar(svc, now(), state.WithLogger(log)),
		log:         log,
		reader:      bufio.NewReader(in),
		out:         out,
		now:         now,
		loc:         time.Local,
		interactive: true,
	}
	a.calendar.Subscribe(a.onCalendarChange)
	return a
}

// Run loads the calendar, shows the current month and serves commands until
// the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to GophCal (type 'help' for commands)")

	// a successful load draws the month through onCalendarChange
	if err := a.calendar.Load(ctx); err != nil {
		a.reportError(ctx, err)
		a.showMonth()
	}

	prompt := func() string { return "" }
	if a.interactive {
		prompt = a.getStatus
	}
	runREPL(ctx, a, prompt, a.reader, a.out)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) getStatus() string {
	return fmt.Sprintf("gcal (%s)> ", a.calendar.Selected())
}
