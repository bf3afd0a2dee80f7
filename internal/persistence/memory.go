package persistence

import (
	"sync"
)

// MemoryGateway holds encoded values in a map. Values still go through the
// JSON codec so that loads never alias saved data.
type MemoryGateway struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemory() *MemoryGateway {
	return &MemoryGateway{values: make(map[string][]byte)}
}

func (g *MemoryGateway) Load(key string, v any) (bool, error) {
	g.mu.RLock()
	data, ok := g.values[key]
	g.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := decode(key, data, v); err != nil {
		return false, err
	}
	return true, nil
}

func (g *MemoryGateway) Save(key string, v any) error {
	data, err := encode(key, v)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.values[key] = data
	return nil
}

// Raw returns the stored text for key, for inspection.
func (g *MemoryGateway) Raw(key string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	data, ok := g.values[key]
	return string(data), ok
}
