// Package dataset supplies event collections for mock-mode operation:
// an embedded sample file, loading from an external JSON file, and a
// deterministic generator for demo seeding.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"

	_ "embed"
)

//go:embed events.json
var embeddedEvents []byte

// Load parses the embedded sample dataset. The sample carries fixed
// timestamps, so it mainly serves tests and documentation; live demo
// seeding uses Generate instead.
func Load() ([]model.Event, error) {
	return parse(embeddedEvents)
}

// LoadFile parses an external events JSON file in the same shape as the
// embedded sample.
func LoadFile(path string) ([]model.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]model.Event, error) {
	var events []model.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return events, nil
}
