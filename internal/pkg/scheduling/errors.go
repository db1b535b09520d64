package scheduling

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTimeFormat   = errors.New("invalid time format")
	ErrInvalidRange        = errors.New("invalid range: end must be after start")
	ErrOverlap             = errors.New("interval overlaps an existing interval")
	ErrLastSlot            = errors.New("cannot remove the last slot of an available day")
	ErrSlotIndexOutOfRange = errors.New("slot index out of range")
	ErrDayUnavailable      = errors.New("day is not available, enable it before editing slots")
	ErrInvalidDuration     = errors.New("invalid duration")
	ErrInvalidTimeGap      = errors.New("invalid time gap")
	ErrInvalidDate         = errors.New("invalid date")
	ErrUnknownWeekday      = errors.New("unknown weekday")

	ErrNotHost          = errors.New("only the host can perform this action")
	ErrNotParticipant   = errors.New("viewer is not a participant of this meeting")
	ErrAlreadyResponded = errors.New("participant already responded")
	ErrMeetingClosed    = errors.New("meeting is cancelled or rejected")
)

// OverlapError reports the existing interval a new interval collides with.
type OverlapError struct {
	Existing  Interval
	Requested Interval
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("interval %s overlaps existing interval %s", e.Requested, e.Existing)
}

func (e *OverlapError) Unwrap() error {
	return ErrOverlap
}
