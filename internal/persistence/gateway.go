// Package persistence stores whole collections under string keys.
//
// Values are written as indented JSON so that a stored collection can be
// read and edited by hand. Every Save replaces the previous value for the
// key; there is no incremental patching.
package persistence

import (
	"encoding/json"
	"fmt"
)

// Keys used by the planner.
const (
	KeyGoals     = "goals"
	KeyTasks     = "tasks"
	KeyReminders = "reminders"
	KeyTheme     = "theme"
)

// Gateway loads and saves values by key.
type Gateway interface {
	// Load decodes the value stored under key into v. It reports false when
	// nothing is stored under key.
	Load(key string, v any) (bool, error)
	// Save encodes v and replaces whatever is stored under key.
	Save(key string, v any) error
}

func encode(key string, v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}
	return data, nil
}

func decode(key string, data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
