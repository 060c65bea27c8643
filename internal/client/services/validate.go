package services

import (
	"strings"

	"github.com/dmitrijs2005/gophcal/internal/client/models"
	"github.com/dmitrijs2005/gophcal/internal/timex"
)

// ValidateForm checks f before any storage access. Date and times must be
// zero-padded: ordering and the end-after-start check compare them as strings.
func ValidateForm(f models.EventForm) error {
	switch {
	case strings.TrimSpace(f.Title) == "":
		return &ValidationError{Reason: ReasonTitleRequired}
	case f.Date == "":
		return &ValidationError{Reason: ReasonDateRequired}
	case f.StartTime == "":
		return &ValidationError{Reason: ReasonStartRequired}
	case f.EndTime == "":
		return &ValidationError{Reason: ReasonEndRequired}
	case !timex.IsValidDate(f.Date):
		return &ValidationError{Reason: ReasonInvalidDate}
	case !timex.IsValidClock(f.StartTime):
		return &ValidationError{Reason: ReasonInvalidStartTime}
	case !timex.IsValidClock(f.EndTime):
		return &ValidationError{Reason: ReasonInvalidEndTime}
	case f.EndTime <= f.StartTime:
		return &ValidationError{Reason: ReasonEndBeforeStart}
	}
	return nil
}
