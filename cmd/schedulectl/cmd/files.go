package cmd

import (
	"fmt"
	"io"
	"meetslot-service/internal/pkg/scheduling"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// decodeFile reads a JSON or YAML file into out. YAML is converted to JSON
// first so the custom JSON decoders of the scheduling types apply to both.
func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		data, err = json.Marshal(jsonCompatible(doc))
		if err != nil {
			return fmt.Errorf("convert %s: %w", path, err)
		}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func jsonCompatible(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = jsonCompatible(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = jsonCompatible(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = jsonCompatible(val)
		}
		return out
	case time.Time:
		return scheduling.FormatDate(t)
	default:
		return v
	}
}

// loadAvailability falls back to the default week when path is empty.
func loadAvailability(path string) (scheduling.WeeklyAvailability, error) {
	if path == "" {
		return scheduling.DefaultWeeklyAvailability(), nil
	}
	var w scheduling.WeeklyAvailability
	if err := decodeFile(path, &w); err != nil {
		return scheduling.WeeklyAvailability{}, err
	}
	return w, nil
}

func loadMeetings(path string) ([]scheduling.RawMeeting, error) {
	if path == "" {
		return nil, fmt.Errorf("a meetings file is required")
	}
	var raws []scheduling.RawMeeting
	if err := decodeFile(path, &raws); err != nil {
		return nil, err
	}
	return raws, nil
}

// render writes v as JSON or YAML. Text output is handled by each command.
func render(w io.Writer, format string, v any) error {
	switch format {
	case outputYAML:
		// Round trip through JSON so the JSON field names and marshalers apply.
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}
