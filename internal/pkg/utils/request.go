package utils

import (
	"meetslot-service/internal/pkg/scheduling"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// ParseJSONBody decodes the request body into dst, rejecting unknown fields.
func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// ParseDateQuery reads a calendar date from the query string. A missing value
// returns fallback.
func ParseDateQuery(r *http.Request, name string, fallback time.Time) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	return scheduling.ParseDate(raw)
}

func ParseSlotIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, scheduling.ErrSlotIndexOutOfRange
	}
	return index, nil
}
