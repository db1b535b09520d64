package exceptions

import (
	"fmt"
	"meetslot-service/internal/pkg/constvars"
	"meetslot-service/internal/pkg/scheduling"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrScheduling(t *testing.T) {
	t.Run("Validation Errors Become Bad Request With Details", func(t *testing.T) {
		errs := scheduling.ValidationErrors{{Day: "monday", Kind: scheduling.KindNoSlots, Message: "no slots"}}

		customErr := ErrScheduling(errs)

		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidAvailability, customErr.ClientMessage)
		require.IsType(t, []scheduling.ValidationError{}, customErr.Details)
		assert.Len(t, customErr.Details, 1)
	})

	t.Run("Overlap Error Carries Colliding Interval", func(t *testing.T) {
		existing := scheduling.MustInterval(scheduling.MustTimeValue(9, 0), scheduling.MustTimeValue(12, 0))
		err := fmt.Errorf("add slot: %w", &scheduling.OverlapError{Existing: existing})

		customErr := ErrScheduling(err)

		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, map[string]scheduling.Interval{"conflictWith": existing}, customErr.Details)
	})

	t.Run("Sentinel Errors Map To Their Status", func(t *testing.T) {
		cases := map[error]int{
			scheduling.ErrInvalidTimeFormat:   constvars.StatusBadRequest,
			scheduling.ErrInvalidDuration:     constvars.StatusBadRequest,
			scheduling.ErrLastSlot:            constvars.StatusConflict,
			scheduling.ErrDayUnavailable:      constvars.StatusConflict,
			scheduling.ErrSlotIndexOutOfRange: constvars.StatusNotFound,
			scheduling.ErrNotHost:             constvars.StatusForbidden,
			scheduling.ErrAlreadyResponded:    constvars.StatusConflict,
		}
		for err, status := range cases {
			assert.Equal(t, status, ErrScheduling(fmt.Errorf("wrapped: %w", err)).StatusCode, err.Error())
		}
	})

	t.Run("Unknown Errors Become Server Errors", func(t *testing.T) {
		customErr := ErrScheduling(fmt.Errorf("boom"))

		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "boom")
	})
}
