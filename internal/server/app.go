package server

import (
	"context"
	"log"
	"time"

	"RacketHearts/internal/game"
	"RacketHearts/internal/storage"
	"RacketHearts/internal/story"
)

// App wires the authored content, the session hub, and the save database
// behind the HTTP surface.
type App struct {
	Cfg     Config
	Hub     *game.Hub
	Store   *storage.Store
	Library *story.Library
}

// StartApp builds the app and serves it. Blocks until the listener dies.
func StartApp(cfg Config) error {
	tuning, err := loadTuningFromFile(cfg.TuningPath)
	if err != nil {
		log.Printf("tuning config: %v (using defaults)", err)
	}

	lib := story.DefaultLibrary()
	graph := story.DefaultGraph()
	for _, problem := range graph.Lint() {
		log.Printf("[story] lint: %s", problem)
	}
	log.Printf("[story] graph loaded: %d nodes, %d characters, %d endings",
		len(graph.Nodes), len(lib.Characters), len(lib.Endings))

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}

	meta, err := loadMeta(store)
	if err != nil {
		log.Printf("[story] meta load: %v (starting empty)", err)
		meta = game.NewMeta()
	}

	app := &App{
		Cfg:     cfg,
		Hub:     game.NewHub(graph, lib, tuning, meta),
		Store:   store,
		Library: lib,
	}

	go app.housekeeping()

	log.Printf("starting server on %s (ending threshold %d, session ttl %s)",
		cfg.Addr, tuning.EndingThreshold, cfg.SessionTTL)
	return app.router().Run(cfg.Addr)
}

func loadMeta(store *storage.Store) (*game.Meta, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	blob, err := store.LoadMeta(ctx)
	if err != nil {
		return nil, err
	}
	return game.LoadMetaSnapshot(blob)
}

// persistMeta writes the ending gallery through to the database.
func (a *App) persistMeta() {
	blob, err := a.Hub.Meta().Snapshot()
	if err != nil {
		log.Printf("[story] meta snapshot: %v", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	if err := a.Store.SaveMeta(ctx, blob); err != nil {
		log.Printf("[story] meta save: %v", err)
	}
}

// housekeeping expires idle sessions and keeps the meta blob current.
func (a *App) housekeeping() {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		if dropped := a.Hub.Sweep(a.Cfg.SessionTTL); dropped > 0 {
			log.Printf("[story] swept %d idle sessions", dropped)
		}
		a.persistMeta()
	}
}
