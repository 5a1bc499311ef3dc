package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-converter/internal/clients/external"
	"github.com/KirkDiggler/rpg-converter/internal/clients/ocr"
	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/orchestrators/importer"
	"github.com/KirkDiggler/rpg-converter/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-converter/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-converter/internal/redis"
	"github.com/KirkDiggler/rpg-converter/internal/repositories/ocrcache"
	"github.com/KirkDiggler/rpg-converter/internal/repositories/output"
	"github.com/KirkDiggler/rpg-converter/internal/services/conversion"
)

// Foundry document ids are 16 hex characters
const foundryIDLength = 16

func newConverter() (conversion.Converter, error) {
	return conversion.New(&conversion.Config{
		IDGenerator: idgen.NewHex(foundryIDLength),
		Clock:       clock.New(),
		UserID:      cfg.UserID,
	})
}

// importerDeps are the optional sources; the converter and writer are always
// built.
type importerDeps struct {
	engine   ocr.Engine
	monsters external.Client
}

func newImporter(deps importerDeps) (importer.Service, error) {
	converter, err := newConverter()
	if err != nil {
		return nil, err
	}

	writer, err := output.NewFilesystem(&output.FilesystemConfig{BaseDir: cfg.OutputDir})
	if err != nil {
		return nil, err
	}

	return importer.NewOrchestrator(&importer.Config{
		Converter:   converter,
		Writer:      writer,
		Engine:      deps.engine,
		Monsters:    deps.monsters,
		IDGenerator: idgen.NewUUID("run_"),
		Workers:     cfg.Workers,
	})
}

// newEngine builds the tesseract engine, wrapped in the Redis cache when one
// is configured and reachable. The returned func releases the cache client.
func newEngine(ctx context.Context, refresh bool) (ocr.Engine, func(), error) {
	noop := func() {}

	engine, err := ocr.NewTesseract(&ocr.TesseractConfig{
		Binary:   cfg.OCR.Binary,
		Language: cfg.OCR.Language,
	})
	if err != nil {
		return nil, noop, err
	}

	if cfg.Redis.Addr == "" {
		return engine, noop, nil
	}

	repo, closeCache, err := openCache(ctx)
	if err != nil {
		if errors.IsUnavailable(err) {
			slog.WarnContext(ctx, "ocr cache unavailable, continuing without it",
				"addr", cfg.Redis.Addr,
				"error", err)
			return engine, noop, nil
		}
		return nil, noop, err
	}

	cached, err := ocrcache.NewCachedEngine(&ocrcache.CachedEngineConfig{
		Engine:     engine,
		Repository: repo,
		Refresh:    refresh,
	})
	if err != nil {
		closeCache()
		return nil, noop, err
	}

	slog.DebugContext(ctx, "ocr cache enabled", "addr", cfg.Redis.Addr)
	return cached, closeCache, nil
}

// openCache connects to the configured Redis and returns the OCR cache on it.
func openCache(ctx context.Context) (ocrcache.Repository, func(), error) {
	noop := func() {}

	if cfg.Redis.Addr == "" {
		return nil, noop, errors.FailedPrecondition("redis address is not configured")
	}

	client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, noop, err
	}
	closeClient := func() { _ = client.Close() }

	if err := redis.Ping(ctx, client); err != nil {
		closeClient()
		return nil, noop, errors.Wrap(err, "redis is unreachable").
			WithMeta("addr", cfg.Redis.Addr)
	}

	repo, err := ocrcache.NewRedisRepository(&ocrcache.Config{
		Client: client,
		Clock:  clock.New(),
		TTL:    cfg.Redis.CacheTTL,
	})
	if err != nil {
		closeClient()
		return nil, noop, err
	}

	return repo, closeClient, nil
}

func newMonsterClient() (external.Client, error) {
	return external.New(&external.Config{
		BaseURL:     cfg.DND5E.BaseURL,
		HTTPTimeout: cfg.DND5E.Timeout,
	})
}
