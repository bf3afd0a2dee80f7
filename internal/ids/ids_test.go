package ids

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDv7Unique(t *testing.T) {
	t.Parallel()

	var gen UUIDv7
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 500; i++ {
		id, err := gen.NewID()
		if err != nil {
			t.Fatalf("NewID: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %s after %d draws", id, i)
		}
		seen[id] = true

		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("id %q is not a UUID: %v", id, err)
		}
		if parsed.Version() != 7 {
			t.Fatalf("id %q has version %d, want 7", id, parsed.Version())
		}
		if prev != "" && id <= prev {
			t.Fatalf("ids not increasing: %s then %s", prev, id)
		}
		prev = id
	}
}

func TestSequence(t *testing.T) {
	t.Parallel()

	var seq Sequence
	for _, want := range []string{"1", "2", "3"} {
		got, err := seq.NewID()
		if err != nil {
			t.Fatalf("NewID: %v", err)
		}
		if got != want {
			t.Fatalf("NewID() = %q, want %q", got, want)
		}
	}
}
