package persistence

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pathakanu/studyPlanner/internal/database"
	"github.com/pathakanu/studyPlanner/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestSQL(t *testing.T) *SQLGateway {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite memory: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewSQL(db)
}

func gateways(t *testing.T) map[string]Gateway {
	t.Helper()
	return map[string]Gateway{
		"memory": NewMemory(),
		"disk":   NewDisk(t.TempDir()),
		"sql":    newTestSQL(t),
	}
}

func sampleGoals() []model.Goal {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return []model.Goal{
		{ID: "1", Title: "Exam Prep", Description: "chapters 1-4", Deadline: "2026-03-11", Priority: model.PriorityHigh, Progress: 40, CreatedAt: created},
		{ID: "2", Title: "Read \"SICP\"", Deadline: "2026-04-01", Priority: model.PriorityLow, CreatedAt: created.Add(time.Minute)},
	}
}

func TestRoundTripGoals(t *testing.T) {
	for name, gw := range gateways(t) {
		gw := gw
		t.Run(name, func(t *testing.T) {
			want := sampleGoals()
			if err := gw.Save(KeyGoals, want); err != nil {
				t.Fatalf("Save: %v", err)
			}

			var got []model.Goal
			ok, err := gw.Load(KeyGoals, &got)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !ok {
				t.Fatalf("Load reported missing key")
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestLoadMissingKey(t *testing.T) {
	for name, gw := range gateways(t) {
		gw := gw
		t.Run(name, func(t *testing.T) {
			var got []model.Task
			ok, err := gw.Load(KeyTasks, &got)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if ok {
				t.Fatalf("expected missing key to report false")
			}
			if got != nil {
				t.Fatalf("expected untouched target, got %+v", got)
			}
		})
	}
}

func TestSaveReplacesWholeValue(t *testing.T) {
	for name, gw := range gateways(t) {
		gw := gw
		t.Run(name, func(t *testing.T) {
			if err := gw.Save(KeyGoals, sampleGoals()); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := gw.Save(KeyGoals, sampleGoals()[:1]); err != nil {
				t.Fatalf("second Save: %v", err)
			}

			var got []model.Goal
			if _, err := gw.Load(KeyGoals, &got); err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(got) != 1 || got[0].ID != "1" {
				t.Fatalf("expected only goal 1 after replace, got %+v", got)
			}
		})
	}
}

func TestThemeValue(t *testing.T) {
	for name, gw := range gateways(t) {
		gw := gw
		t.Run(name, func(t *testing.T) {
			if err := gw.Save(KeyTheme, "dark"); err != nil {
				t.Fatalf("Save: %v", err)
			}
			var theme string
			if _, err := gw.Load(KeyTheme, &theme); err != nil {
				t.Fatalf("Load: %v", err)
			}
			if theme != "dark" {
				t.Fatalf("theme = %q, want dark", theme)
			}
		})
	}
}

func TestMemoryStoresReadableJSON(t *testing.T) {
	gw := NewMemory()
	if err := gw.Save(KeyGoals, sampleGoals()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, ok := gw.Raw(KeyGoals)
	if !ok {
		t.Fatalf("expected raw value")
	}
	for _, needle := range []string{`"title": "Exam Prep"`, `"deadline": "2026-03-11"`, `"createdAt"`, "\n  "} {
		if !strings.Contains(raw, needle) {
			t.Fatalf("stored text missing %q:\n%s", needle, raw)
		}
	}
}

func TestLoadCorruptValue(t *testing.T) {
	gw := NewMemory()
	gw.values[KeyGoals] = []byte("{not json")

	var got []model.Goal
	if _, err := gw.Load(KeyGoals, &got); err == nil {
		t.Fatalf("expected decode error")
	}
}
