package ocrcache

import (
	"context"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-converter/internal/clients/ocr"
	"github.com/KirkDiggler/rpg-converter/internal/errors"
)

// CachedEngineConfig configures a CachedEngine
type CachedEngineConfig struct {
	Engine     ocr.Engine
	Repository Repository
	// Refresh skips lookups but still stores fresh results
	Refresh bool
}

// Validate ensures all required dependencies are provided
func (c *CachedEngineConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	return vb.Build()
}

// CachedEngine is an ocr.Engine that consults the repository first. Cache
// failures are logged and bypassed; only engine failures are returned.
type CachedEngine struct {
	engine  ocr.Engine
	repo    Repository
	refresh bool
}

var _ ocr.Engine = (*CachedEngine)(nil)

// NewCachedEngine wraps an engine with the cache
func NewCachedEngine(cfg *CachedEngineConfig) (*CachedEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &CachedEngine{
		engine:  cfg.Engine,
		repo:    cfg.Repository,
		refresh: cfg.Refresh,
	}, nil
}

// Recognize returns cached text for identical image bytes, otherwise runs
// the engine and caches what it returns.
func (e *CachedEngine) Recognize(ctx context.Context, imagePath string) (string, error) {
	hash, err := hashFile(imagePath)
	if err != nil {
		return "", err
	}

	if !e.refresh {
		out, err := e.repo.Get(ctx, GetInput{ImageHash: hash})
		switch {
		case err == nil:
			slog.DebugContext(ctx, "ocr cache hit", "image", imagePath, "image_hash", hash)
			return out.Entry.Text, nil
		case errors.IsNotFound(err):
			slog.DebugContext(ctx, "ocr cache miss", "image", imagePath, "image_hash", hash)
		default:
			slog.WarnContext(ctx, "ocr cache lookup failed, running engine",
				"image", imagePath,
				"error", err)
		}
	}

	text, err := e.engine.Recognize(ctx, imagePath)
	if err != nil {
		return "", err
	}

	if _, err := e.repo.Put(ctx, PutInput{ImageHash: hash, Source: imagePath, Text: text}); err != nil {
		slog.WarnContext(ctx, "failed to cache ocr text",
			"image", imagePath,
			"error", err)
	}

	return text, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the batch directory listing
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFoundf("image %s not found", path)
		}
		return "", errors.Wrapf(err, "failed to open image %s", path)
	}
	defer func() { _ = f.Close() }()

	return HashImage(f)
}
