package services

import "errors"

// Sentinel errors returned by EventService. Match them with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrStorageRead  = errors.New("failed to load events")
	ErrStorageWrite = errors.New("failed to save events")
)

// Validation reasons, in the order the rules are checked.
const (
	ReasonTitleRequired    = "title required"
	ReasonDateRequired     = "date required"
	ReasonStartRequired    = "start time required"
	ReasonEndRequired      = "end time required"
	ReasonInvalidDate      = "invalid date"
	ReasonInvalidStartTime = "invalid start time"
	ReasonInvalidEndTime   = "invalid end time"
	ReasonEndBeforeStart   = "end before start"
)

// ValidationError reports the first rule an EventForm broke.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
