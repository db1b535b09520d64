package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseViewerJWT(t *testing.T) {
	const secret = "test-secret"

	t.Run("Valid Token Returns Subject", func(t *testing.T) {
		token, err := GenerateViewerJWT("user-1", secret, time.Hour)
		require.NoError(t, err)

		viewer, err := ParseViewerJWT(token, secret)

		require.NoError(t, err)
		assert.Equal(t, "user-1", viewer)
	})

	t.Run("Wrong Secret Is Rejected", func(t *testing.T) {
		token, err := GenerateViewerJWT("user-1", secret, time.Hour)
		require.NoError(t, err)

		_, err = ParseViewerJWT(token, "other-secret")

		assert.Error(t, err)
	})

	t.Run("Expired Token Is Rejected", func(t *testing.T) {
		token, err := GenerateViewerJWT("user-1", secret, -time.Minute)
		require.NoError(t, err)

		_, err = ParseViewerJWT(token, secret)

		assert.Error(t, err)
	})

	t.Run("Token Without Subject Is Rejected", func(t *testing.T) {
		token, err := GenerateViewerJWT("", secret, time.Hour)
		require.NoError(t, err)

		_, err = ParseViewerJWT(token, secret)

		assert.Error(t, err)
	})
}

func TestGenerateRequestID(t *testing.T) {
	t.Run("Request IDs Are Prefixed And Unique", func(t *testing.T) {
		first, second := GenerateRequestID(), GenerateRequestID()

		assert.True(t, strings.HasPrefix(first, "MEETSLOT_SVC_"))
		assert.NotEqual(t, first, second)
	})
}
