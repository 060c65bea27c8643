// Package services contains the application services of the calendar client.
// EventService owns the event collection: it is the only code that reads or
// writes the stored events.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophcal/internal/client/models"
	"github.com/dmitrijs2005/gophcal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophcal/internal/logging"
	"github.com/google/uuid"
)

// DefaultStorageKey is the metadata key holding the serialized collection.
const DefaultStorageKey = "calendar_events"

// EventService exposes CRUD and date queries over the stored events.
//
// Contract:
//   - ListAll / ListByDate return events ordered by date, then start time.
//   - Create and Update validate the form before touching storage.
//   - Update returns (nil, nil) when no event has the given id.
//   - Delete of an unknown id is a no-op.
//   - ClearAll removes the storage key itself.
//
// Storage failures come back as ErrStorageRead or ErrStorageWrite; invalid
// input as a *ValidationError matching ErrValidation.
type EventService interface {
	ListAll(ctx context.Context) ([]models.Event, error)
	ListByDate(ctx context.Context, date string) ([]models.Event, error)
	Create(ctx context.Context, form models.EventForm) (*models.Event, error)
	Update(ctx context.Context, id string, form models.EventForm) (*models.Event, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}

type eventService struct {
	repo  metadata.Repository
	key   string
	log   logging.Logger
	now   func() time.Time
	newID func() string

	// serializes read-modify-write cycles issued through this value
	mu sync.Mutex
}

// Option customizes an EventService.
type Option func(*eventService)

func WithStorageKey(key string) Option {
	return func(s *eventService) { s.key = key }
}

func WithLogger(l logging.Logger) Option {
	return func(s *eventService) { s.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *eventService) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *eventService) { s.newID = newID }
}

// NewEventService builds an EventService persisting into repo.
func NewEventService(repo metadata.Repository, opts ...Option) EventService {
	s := &eventService{
		repo:  repo,
		key:   DefaultStorageKey,
		log:   logging.Discard(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "events", "key", s.key)
	return s
}

func (s *eventService) ListAll(ctx context.Context) ([]models.Event, error) {
	events, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	models.SortEvents(events)
	return events, nil
}

func (s *eventService) ListByDate(ctx context.Context, date string) ([]models.Event, error) {
	events, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return models.FilterByDate(events, date), nil
}

func (s *eventService) Create(ctx context.Context, form models.EventForm) (*models.Event, error) {
	if err := ValidateForm(form); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	ts := s.now().UnixMilli()
	event := models.Event{ID: s.newID(), CreatedAt: ts, UpdatedAt: ts}
	form.Apply(&event)

	if err := s.save(ctx, append(events, event)); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Debug(ctx, "event created", "id", event.ID, "date", event.Date)
	return &event, nil
}

func (s *eventService) Update(ctx context.Context, id string, form models.EventForm) (*models.Event, error) {
	if err := ValidateForm(form); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	idx := -1
	for i := range events {
		if events[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	event := events[idx]
	form.Apply(&event)
	event.UpdatedAt = max(s.now().UnixMilli(), event.UpdatedAt)
	events[idx] = event

	if err := s.save(ctx, events); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.log.Debug(ctx, "event updated", "id", id)
	return &event, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(events) {
		return nil
	}

	if err := s.save(ctx, kept); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.log.Debug(ctx, "event deleted", "id", id)
	return nil
}

func (s *eventService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, s.key); err != nil {
		s.log.Error(ctx, "failed to remove events key", "err", err)
		return fmt.Errorf("clear events: %w", ErrStorageWrite)
	}

	s.log.Debug(ctx, "events cleared")
	return nil
}

// load reads and decodes the whole collection in stored order.
func (s *eventService) load(ctx context.Context) ([]models.Event, error) {
	data, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.log.Error(ctx, "failed to read events", "err", err)
		return nil, ErrStorageRead
	}

	events, err := models.DecodeEvents(data)
	if err != nil {
		s.log.Error(ctx, "failed to decode events", "err", err, "bytes", len(data))
		return nil, ErrStorageRead
	}
	return events, nil
}

func (s *eventService) save(ctx context.Context, events []models.Event) error {
	data, err := models.EncodeEvents(events)
	if err != nil {
		s.log.Error(ctx, "failed to encode events", "err", err)
		return ErrStorageWrite
	}

	if err := s.repo.Set(ctx, s.key, data); err != nil {
		s.log.Error(ctx, "failed to write events", "err", err, "count", len(events))
		return ErrStorageWrite
	}
	return nil
}

// IsStorageError reports whether err came from the storage backend rather
// than from the caller's input.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorageRead) || errors.Is(err, ErrStorageWrite)
}
