package persistence

import (
	"fmt"

	"github.com/peterbourgon/diskv/v3"
)

// DiskGateway writes each key to its own file under a base directory.
type DiskGateway struct {
	d *diskv.Diskv
}

// NewDisk stores files under basePath.
func NewDisk(basePath string) *DiskGateway {
	return &DiskGateway{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (g *DiskGateway) Load(key string, v any) (bool, error) {
	if !g.d.Has(key) {
		return false, nil
	}
	data, err := g.d.Read(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := decode(key, data, v); err != nil {
		return false, err
	}
	return true, nil
}

func (g *DiskGateway) Save(key string, v any) error {
	data, err := encode(key, v)
	if err != nil {
		return err
	}
	if err := g.d.Write(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
