package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/lingo/internal/catalog"
	"github.com/felixgeelhaar/lingo/internal/clock"
	"github.com/felixgeelhaar/lingo/internal/config"
	"github.com/felixgeelhaar/lingo/internal/persist"
	"github.com/felixgeelhaar/lingo/internal/player"
	"github.com/felixgeelhaar/lingo/internal/quest"
	"github.com/felixgeelhaar/lingo/internal/review"
	"github.com/felixgeelhaar/lingo/internal/session"
	"github.com/felixgeelhaar/lingo/internal/speech"
	"github.com/felixgeelhaar/lingo/internal/storage/local"
	"github.com/felixgeelhaar/lingo/internal/storage/sqlite"
)

// app wires the ledgers, engine, and stores together. Everything is
// constructed once per invocation and passed by reference; there are no
// package-level singletons.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	clock    clock.Clock
	registry *catalog.Registry
	store    *local.Store
	db       *sqlite.DB
	writer   *persist.Writer
	player   *player.Ledger
	quests   *quest.Ledger
	engine   *session.Engine
	audio    *speech.NoOp
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	registry := catalog.NewRegistry(catalog.NewLoader(cfg.CatalogPath))
	if err := registry.Load(); err != nil {
		return nil, err
	}

	store, err := local.NewStore(cfg.DataPath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	clk := clock.System()
	writer := persist.NewWriter(logger)

	playerLedger, err := player.NewLedger(store, writer, clk, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load player ledger: %w", err)
	}
	questLedger, err := quest.NewLedger(store, writer, clk, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load quest ledger: %w", err)
	}

	engine, err := session.NewEngine(registry, playerLedger, review.NewSM2(clk), sqlite.NewProgressStore(db), writer, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create session engine: %w", err)
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		clock:    clk,
		registry: registry,
		store:    store,
		db:       db,
		writer:   writer,
		player:   playerLedger,
		quests:   questLedger,
		engine:   engine,
		audio:    speech.NewNoOp(logger),
	}, nil
}

// Close drains pending durable writes and releases the database.
func (a *app) Close() {
	a.writer.Close()
	a.db.Close()
}
