// Package state holds the view state of the calendar front end: the selected
// day, the displayed month and the events last loaded from EventService.
// It is owned by the application and passed to the views that need it.
package state

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophcal/internal/client/models"
	"github.com/dmitrijs2005/gophcal/internal/client/services"
	"github.com/dmitrijs2005/gophcal/internal/logging"
	"github.com/dmitrijs2005/gophcal/internal/timex"
)

// Listener is called after the loaded events, the selection or the displayed
// month change.
type Listener func(c *Calendar)

type Calendar struct {
	svc services.EventService
	log logging.Logger

	mu     sync.RWMutex
	events []models.Event
	// stale is set until the first successful Load and whenever a refresh
	// after a write fails.
	stale     bool
	selected  string
	month     time.Time
	listeners map[int]Listener
	nextID    int
}

// Option customizes a Calendar.
type Option func(*Calendar)

func WithLogger(l logging.Logger) Option {
	return func(c *Calendar) { c.log = l }
}

// NewCalendar creates the state with today selected. Events are empty and
// the cache is stale until Load is called.
func NewCalendar(svc services.EventService, today time.Time, opts ...Option) *Calendar {
	c := &Calendar{
		svc:       svc,
		log:       logging.Discard(),
		events:    []models.Event{},
		stale:     true,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.selectDay(today)
	return c
}

// Subscribe registers fn and returns a function that removes it.
func (c *Calendar) Subscribe(fn Listener) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Calendar) notify() {
	c.mu.RLock()
	fns := make([]Listener, 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.RUnlock()

	for _, fn := range fns {
		fn(c)
	}
}

// Load replaces the cached events with the stored collection. On failure
// the previous events are kept and the cache is marked stale.
func (c *Calendar) Load(ctx context.Context) error {
	events, err := c.svc.ListAll(ctx)
	if err != nil {
		c.mu.Lock()
		c.stale = true
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.events = events
	c.stale = false
	c.mu.Unlock()

	c.notify()
	return nil
}

// refresh reloads after a successful write. A failed reload does not undo
// the write, so it only leaves the cache stale.
func (c *Calendar) refresh(ctx context.Context) {
	if err := c.Load(ctx); err != nil {
		c.log.Warn(ctx, "failed to refresh events after write", "err", err)
	}
}

// Create, Update, Delete and ClearAll report only the outcome of the write
// itself. See Stale for the state of the cache afterwards.
func (c *Calendar) Create(ctx context.Context, form models.EventForm) (*models.Event, error) {
	e, err := c.svc.Create(ctx, form)
	if err != nil {
		return nil, err
	}
	c.refresh(ctx)
	return e, nil
}

// Update returns (nil, nil) when id is unknown, like EventService.Update.
func (c *Calendar) Update(ctx context.Context, id string, form models.EventForm) (*models.Event, error) {
	e, err := c.svc.Update(ctx, id, form)
	if err != nil || e == nil {
		return e, err
	}
	c.refresh(ctx)
	return e, nil
}

func (c *Calendar) Delete(ctx context.Context, id string) error {
	if err := c.svc.Delete(ctx, id); err != nil {
		return err
	}
	c.refresh(ctx)
	return nil
}

func (c *Calendar) ClearAll(ctx context.Context) error {
	if err := c.svc.ClearAll(ctx); err != nil {
		return err
	}
	c.refresh(ctx)
	return nil
}

// Stale reports whether the cached events may differ from storage.
func (c *Calendar) Stale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stale
}

// Select makes date (YYYY-MM-DD) the selected day and shows its month.
func (c *Calendar) Select(date string) error {
	day, err := timex.ParseDate(date, time.UTC)
	if err != nil {
		return err
	}
	c.selectDay(day)
	c.notify()
	return nil
}

func (c *Calendar) selectDay(day time.Time) {
	c.mu.Lock()
	c.selected = timex.FormatDate(day)
	c.month = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	c.mu.Unlock()
}

// ShowMonth changes the displayed month without touching the selection.
func (c *Calendar) ShowMonth(year int, month time.Month) {
	c.mu.Lock()
	c.month = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	c.mu.Unlock()
	c.notify()
}

// ShiftMonth moves the displayed month by n (negative goes back).
func (c *Calendar) ShiftMonth(n int) {
	c.mu.RLock()
	m := c.month.AddDate(0, n, 0)
	c.mu.RUnlock()
	c.ShowMonth(m.Year(), m.Month())
}

func (c *Calendar) Selected() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selected
}

func (c *Calendar) Month() (int, time.Month) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.month.Year(), c.month.Month()
}

// Events returns a copy of the cached events in canonical order.
func (c *Calendar) Events() []models.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Day queries storage for the events on date, bypassing the cache.
func (c *Calendar) Day(ctx context.Context, date string) ([]models.Event, error) {
	return c.svc.ListByDate(ctx, date)
}

func (c *Calendar) EventsOn(date string) []models.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return models.FilterByDate(c.events, date)
}

func (c *Calendar) HasEvents(date string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.events {
		if e.Date == date {
			return true
		}
	}
	return false
}

// Find returns the cached event with id.
func (c *Calendar) Find(id string) (models.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}
