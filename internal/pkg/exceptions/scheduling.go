package exceptions

import (
	"errors"
	"meetslot-service/internal/pkg/constvars"
	"meetslot-service/internal/pkg/scheduling"
)

// ErrScheduling maps an engine error onto the status and client message callers
// should see. Errors the engine does not define are treated as server failures.
func ErrScheduling(err error) *CustomError {
	var validationErrs scheduling.ValidationErrors
	if errors.As(err, &validationErrs) {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidAvailability, constvars.ErrDevAvailabilityValidation).
			WithDetails([]scheduling.ValidationError(validationErrs))
	}

	var overlapErr *scheduling.OverlapError
	if errors.As(err, &overlapErr) {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientSlotOverlap, constvars.ErrDevSchedulingRule).
			WithDetails(map[string]scheduling.Interval{"conflictWith": overlapErr.Existing})
	}

	for _, m := range schedulingErrorMappings {
		if errors.Is(err, m.target) {
			return BuildNewCustomError(err, m.statusCode, m.clientMessage, constvars.ErrDevSchedulingRule)
		}
	}
	return ErrServerProcess(err)
}

type schedulingErrorMapping struct {
	target        error
	statusCode    int
	clientMessage string
}

var schedulingErrorMappings = []schedulingErrorMapping{
	{scheduling.ErrInvalidTimeFormat, constvars.StatusBadRequest, constvars.ErrClientInvalidTime},
	{scheduling.ErrInvalidRange, constvars.StatusBadRequest, constvars.ErrClientInvalidTime},
	{scheduling.ErrInvalidDuration, constvars.StatusBadRequest, constvars.ErrClientInvalidDuration},
	{scheduling.ErrInvalidDate, constvars.StatusBadRequest, constvars.ErrClientInvalidDate},
	{scheduling.ErrUnknownWeekday, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest},
	{scheduling.ErrInvalidTimeGap, constvars.StatusBadRequest, constvars.ErrClientInvalidTimeGap},
	{scheduling.ErrOverlap, constvars.StatusConflict, constvars.ErrClientSlotOverlap},
	{scheduling.ErrLastSlot, constvars.StatusConflict, constvars.ErrClientLastSlot},
	{scheduling.ErrDayUnavailable, constvars.StatusConflict, constvars.ErrClientDayUnavailable},
	{scheduling.ErrSlotIndexOutOfRange, constvars.StatusNotFound, constvars.ErrClientSlotNotFound},
	{scheduling.ErrMeetingClosed, constvars.StatusConflict, constvars.ErrClientMeetingClosed},
	{scheduling.ErrAlreadyResponded, constvars.StatusConflict, constvars.ErrClientAlreadyResponded},
	{scheduling.ErrNotParticipant, constvars.StatusForbidden, constvars.ErrClientNotParticipant},
	{scheduling.ErrNotHost, constvars.StatusForbidden, constvars.ErrClientOnlyHostCanCancel},
}
