package ids

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator produces identifiers for new entities.
type Generator interface {
	NewID() (string, error)
}

// UUIDv7 issues time-ordered UUIDs. Within a process the uuid package keeps
// them strictly increasing even when several are drawn in the same
// millisecond.
type UUIDv7 struct{}

func (UUIDv7) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}

// Sequence issues "1", "2", "3", ... and is meant for tests and fixtures.
type Sequence struct {
	mu   sync.Mutex
	next int
}

func (s *Sequence) NewID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return strconv.Itoa(s.next), nil
}
