package output

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/services/conversion"
)

// DefaultBaseDir is where Foundry import files land by default
const DefaultBaseDir = "daggerheart_import_files"

// FilesystemConfig configures the filesystem writer
type FilesystemConfig struct {
	// BaseDir defaults to DefaultBaseDir
	BaseDir string
}

// Validate applies defaults
func (c *FilesystemConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.BaseDir == "" {
		c.BaseDir = DefaultBaseDir
	}
	return nil
}

type filesystemWriter struct {
	baseDir string
}

// NewFilesystem creates a Writer that lays files out as
// <base>/<adversary>/feature_<name>.json and adversary_<name>.json.
func NewFilesystem(cfg *FilesystemConfig) (Writer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &filesystemWriter{baseDir: cfg.BaseDir}, nil
}

var _ Writer = (*filesystemWriter)(nil)

func (w *filesystemWriter) Write(ctx context.Context, out *conversion.Output) (*WriteOutput, error) {
	if out == nil || out.Adversary == nil {
		return nil, errors.InvalidArgument("conversion output with an adversary is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "write canceled")
	}

	name := safeName(out.Adversary.Name)
	dir := filepath.Join(w.baseDir, name)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", dir)
	}

	result := &WriteOutput{
		Dir:   dir,
		Files: make([]string, 0, len(out.Features)+1),
	}

	// Duplicate feature names share a file; the adversary still embeds every one.
	for _, feature := range out.Features {
		path := filepath.Join(dir, "feature_"+safeName(feature.Name)+".json")
		if err := writeJSON(path, feature); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, path)
	}

	path := filepath.Join(dir, "adversary_"+name+".json")
	if err := writeJSON(path, out.Adversary); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, path)

	slog.DebugContext(ctx, "wrote adversary",
		"name", out.Adversary.Name,
		"dir", dir,
		"files", len(result.Files))

	return result, nil
}

// writeJSON matches Foundry's own export: four-space indent, HTML left
// unescaped.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrapf(err, "failed to encode %s", filepath.Base(path))
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
