package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	iv, err := ParseInterval(start, end)
	require.NoError(t, err)
	return iv
}

func mustDate(t *testing.T, raw string) time.Time {
	t.Helper()
	d, err := ParseDate(raw)
	require.NoError(t, err)
	return d
}

// 2024-03-04 is a Monday.
const monday = "2024-03-04"
