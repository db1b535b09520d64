package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("Missing Keys Use Defaults", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnvString("MEETSLOT_TEST_MISSING", "fallback"))
		assert.Equal(t, 7, GetEnvInt("MEETSLOT_TEST_MISSING", 7))
		assert.Equal(t, 2*time.Second, GetEnvDuration("MEETSLOT_TEST_MISSING", 2*time.Second))
	})

	t.Run("Set Keys Are Parsed", func(t *testing.T) {
		t.Setenv("MEETSLOT_TEST_INT", "42")
		t.Setenv("MEETSLOT_TEST_BOOL", "true")
		t.Setenv("MEETSLOT_TEST_DURATION", "1m30s")

		assert.Equal(t, 42, GetEnvInt("MEETSLOT_TEST_INT", 0))
		assert.True(t, GetEnvBool("MEETSLOT_TEST_BOOL", false))
		assert.Equal(t, 90*time.Second, GetEnvDuration("MEETSLOT_TEST_DURATION", 0))
	})

	t.Run("Unparsable Values Fall Back To Default", func(t *testing.T) {
		t.Setenv("MEETSLOT_TEST_INT", "forty")

		assert.Equal(t, 5, GetEnvInt("MEETSLOT_TEST_INT", 5), "a bad integer should not panic")
	})
}
