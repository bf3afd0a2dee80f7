package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pathakanu/studyPlanner/internal/clock"
	"github.com/pathakanu/studyPlanner/internal/config"
	"github.com/pathakanu/studyPlanner/internal/database"
	"github.com/pathakanu/studyPlanner/internal/ids"
	myopenai "github.com/pathakanu/studyPlanner/internal/openai"
	"github.com/pathakanu/studyPlanner/internal/persistence"
	"github.com/pathakanu/studyPlanner/internal/planner"
	"github.com/pathakanu/studyPlanner/internal/printers"
	"github.com/pathakanu/studyPlanner/internal/store"
	"github.com/pathakanu/studyPlanner/internal/twilio"
)

// app is everything a command needs, built from configuration.
type app struct {
	cfg     *config.Config
	planner *planner.Planner
	printer *printers.PrettyPrint
	logger  *log.Logger
	close   func()
}

func openApp(out io.Writer) (*app, error) {
	cfg := config.Load()
	if bo.Backend != "" {
		cfg.StoreBackend = bo.Backend
	}

	gw, closeFn, err := openGateway(cfg)
	if err != nil {
		return nil, err
	}

	clk := clock.System{Location: cfg.LocalTimezone}
	st := store.New(gw, clk, ids.UUIDv7{}, logger)
	if err := st.Load(); err != nil {
		closeFn()
		return nil, err
	}

	var messenger planner.Messenger
	if cfg.NotificationsEnabled() {
		messenger = twilio.New(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber, logger)
	}
	p := planner.New(cfg, st, clk, messenger, myopenai.New(cfg.OpenAIAPIKey), logger)

	return &app{
		cfg:     cfg,
		planner: p,
		printer: printers.New(out, st.Theme()),
		logger:  logger,
		close:   closeFn,
	}, nil
}

func openGateway(cfg *config.Config) (persistence.Gateway, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return persistence.NewMemory(), func() {}, nil
	case config.BackendDisk:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("data dir: %w", err)
		}
		return persistence.NewDisk(cfg.DataDir), func() {}, nil
	case config.BackendSQL:
		db, err := database.New(cfg.DatabaseURL, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("database init failed: %w", err)
		}
		return persistence.NewSQL(db), func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.StoreBackend)
	}
}

// result reports the outcome of a mutation. A failed save has already been
// logged by the store and does not fail the command; the change stays in
// effect for this run.
func (a *app) result(v any, err error, format string, args ...any) error {
	if err != nil && !store.IsPersistence(err) {
		return err
	}
	if oo.JSON {
		return a.printer.JSON(v)
	}
	a.printer.Done(fmt.Sprintf(format, args...))
	return nil
}
