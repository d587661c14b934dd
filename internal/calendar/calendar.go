package calendar

import (
	"ecoalerta/internal/core"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrCalendarNotFound is returned when the calendar file does not exist
var ErrCalendarNotFound = errors.New("calendar file not found")

// Neighborhood is one calendar entry
type Neighborhood struct {
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
}

// Load reads a neighborhood calendar from a JSON or YAML file.
// An empty path yields an empty calendar.
func Load(path string) (core.Calendar, error) {
	if path == "" {
		return core.Calendar{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCalendarNotFound, path)
		}
		return nil, fmt.Errorf("failed to read calendar file: %w", err)
	}

	return Parse(data, filepath.Ext(path))
}

// Parse decodes calendar data. ext selects the format: ".yaml" and ".yml"
// are YAML, anything else is JSON.
func Parse(data []byte, ext string) (core.Calendar, error) {
	cal := core.Calendar{}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cal); err != nil {
			return nil, fmt.Errorf("failed to parse calendar YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cal); err != nil {
			return nil, fmt.Errorf("failed to parse calendar JSON: %w", err)
		}
	}

	if cal == nil {
		cal = core.Calendar{}
	}
	return cal, nil
}

// Neighborhoods lists the calendar sorted by neighborhood name
func Neighborhoods(cal core.Calendar) []Neighborhood {
	names := make([]string, 0, len(cal))
	for name := range cal {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Neighborhood, 0, len(names))
	for _, name := range names {
		slots := cal[name]
		if slots == nil {
			slots = []string{}
		}
		result = append(result, Neighborhood{Name: name, Slots: slots})
	}
	return result
}
