// Package models defines the calendar data persisted on the device.
package models

import (
	"encoding/json"
	"sort"
	"strings"
)

// Color names one entry of the fixed event palette.
type Color = string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorPurple Color = "purple"
	ColorTeal   Color = "teal"

	// DefaultColor is applied when a form leaves the color empty.
	DefaultColor = ColorBlue
)

// Palette lists the colors offered to the user, default first.
var Palette = []Color{ColorBlue, ColorGreen, ColorRed, ColorOrange, ColorPurple, ColorTeal}

// Event is a single timed calendar entry.
type Event struct {
	// ID is generated on creation and never changes.
	ID string `json:"id"`

	Title string `json:"title"`

	// Description is nil when the user gave none; "" is kept as given.
	Description *string `json:"description,omitempty"`

	// Date is YYYY-MM-DD; StartTime and EndTime are zero-padded HH:mm.
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	Color Color `json:"color"`

	// CreatedAt and UpdatedAt are milliseconds since the Unix epoch.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// EventForm is what a caller submits to create or update an event.
type EventForm struct {
	Title       string
	Description *string
	Date        string
	StartTime   string
	EndTime     string
	// Color is optional; empty means DefaultColor.
	Color Color
}

// Apply copies the normalized form fields onto e. ID and timestamps are
// left alone.
func (f EventForm) Apply(e *Event) {
	e.Title = strings.TrimSpace(f.Title)
	e.Description = nil
	if f.Description != nil {
		d := strings.TrimSpace(*f.Description)
		e.Description = &d
	}
	e.Date = f.Date
	e.StartTime = f.StartTime
	e.EndTime = f.EndTime
	e.Color = f.Color
	if e.Color == "" {
		e.Color = DefaultColor
	}
}

// FormOf returns the form that would reproduce e, used to pre-fill edits.
func FormOf(e Event) EventForm {
	f := EventForm{
		Title:     e.Title,
		Date:      e.Date,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Color:     e.Color,
	}
	if e.Description != nil {
		d := *e.Description
		f.Description = &d
	}
	return f
}

// SortEvents orders events by date, then start time. Ties keep their
// relative order.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].StartTime < events[j].StartTime
	})
}

// FilterByDate returns the events on date, preserving order.
func FilterByDate(events []Event, date string) []Event {
	out := make([]Event, 0)
	for _, e := range events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// DecodeEvents parses a stored collection. An empty payload is an empty
// collection.
func DecodeEvents(data []byte) ([]Event, error) {
	events := make([]Event, 0)
	if len(data) == 0 {
		return events, nil
	}
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = make([]Event, 0)
	}
	return events, nil
}

func EncodeEvents(events []Event) ([]byte, error) {
	if events == nil {
		events = []Event{}
	}
	return json.Marshal(events)
}
