// Package ics exchanges events with other calendars as iCalendar files.
package ics

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/dmitrijs2005/gophcal/internal/client/models"
	"github.com/dmitrijs2005/gophcal/internal/timex"
)

const productID = "-//gophcal//EN"

var ErrEmptyCalendar = errors.New("empty calendar")

// Export writes events as a VCALENDAR, one VEVENT per event. Stored dates and
// times are interpreted in loc; now stamps DTSTAMP.
func Export(w io.Writer, events []models.Event, loc *time.Location, now time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		start, err := timex.At(e.Date, e.StartTime, loc)
		if err != nil {
			return fmt.Errorf("event %s: %w", e.ID, err)
		}
		end, err := timex.At(e.Date, e.EndTime, loc)
		if err != nil {
			return fmt.Errorf("event %s: %w", e.ID, err)
		}

		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(now)
		ve.SetCreatedTime(time.UnixMilli(e.CreatedAt))
		ve.SetModifiedAt(time.UnixMilli(e.UpdatedAt))
		ve.SetStartAt(start)
		ve.SetEndAt(end)
		ve.SetSummary(e.Title)
		if e.Description != nil {
			ve.SetDescription(*e.Description)
		}
		if e.Color != "" {
			ve.SetProperty(ical.ComponentPropertyColor, e.Color)
		}
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}

// ParseResult holds the importable events of a calendar and the number of
// VEVENTs that could not be represented.
type ParseResult struct {
	Forms   []models.EventForm
	Skipped int
}

// Parse reads VEVENTs from r and converts them to forms in loc. All-day
// events, events that end on another day and events without a summary are
// skipped. Forms are not validated here.
func Parse(r io.Reader, loc *time.Location) (ParseResult, error) {
	var res ParseResult

	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return res, fmt.Errorf("parse calendar: %w", err)
	}

	vevents := cal.Events()
	if len(vevents) == 0 {
		return res, ErrEmptyCalendar
	}

	for _, ve := range vevents {
		form, ok := toForm(ve, loc)
		if !ok {
			res.Skipped++
			continue
		}
		res.Forms = append(res.Forms, form)
	}
	return res, nil
}

func toForm(ve *ical.VEvent, loc *time.Location) (models.EventForm, bool) {
	var form models.EventForm

	summary := ve.GetProperty(ical.ComponentPropertySummary)
	if summary == nil || strings.TrimSpace(summary.Value) == "" {
		return form, false
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil || !strings.Contains(dtStart.Value, "T") {
		return form, false
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return form, false
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return form, false
	}
	start, end = start.In(loc), end.In(loc)

	if timex.FormatDate(start) != timex.FormatDate(end) {
		return form, false
	}

	form.Title = summary.Value
	form.Date = timex.FormatDate(start)
	form.StartTime = start.Format(timex.ClockLayout)
	form.EndTime = end.Format(timex.ClockLayout)

	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		d := p.Value
		form.Description = &d
	}
	if p := ve.GetProperty(ical.ComponentPropertyColor); p != nil && slices.Contains(models.Palette, p.Value) {
		form.Color = p.Value
	}
	return form, true
}
