package persistence

import (
	"errors"
	"fmt"

	"github.com/pathakanu/studyPlanner/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLGateway keeps one row per key in the records table.
type SQLGateway struct {
	db *gorm.DB
}

// NewSQL wraps an open, migrated database.
func NewSQL(db *gorm.DB) *SQLGateway {
	return &SQLGateway{db: db}
}

func (g *SQLGateway) Load(key string, v any) (bool, error) {
	var rec model.Record
	err := g.db.Where("name = ?", key).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := decode(key, []byte(rec.Value), v); err != nil {
		return false, err
	}
	return true, nil
}

func (g *SQLGateway) Save(key string, v any) error {
	data, err := encode(key, v)
	if err != nil {
		return err
	}
	rec := model.Record{Key: key, Value: string(data)}
	err = g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
