// Package sheet renders 5e item exports as a plain-text conversion sheet, for
// rewriting features by hand.
package sheet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/rpg-converter/internal/entities/foundry5e"
	"github.com/KirkDiggler/rpg-converter/internal/errors"
)

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/rpg-converter/internal/services/sheet Service

// Placeholders written for missing item fields
const (
	MissingName        = "No Name Found"
	MissingType        = "No Type Found"
	MissingImage       = "No Image Path Found"
	MissingDescription = "No Description Found"
)

// Separator ends every block
const Separator = "----------------------------------------"

// Service builds conversion sheets
type Service interface {
	Build(ctx context.Context, input *BuildInput) (*BuildOutput, error)
}

// BuildInput names the item directory and where the sheet goes
type BuildInput struct {
	// Dir is scanned for .json item exports, without recursion
	Dir string
	Out io.Writer
}

// BuildOutput reports what made it onto the sheet
type BuildOutput struct {
	Written int
	// Failed maps file names to the reason they were left out
	Failed map[string]error
}

type service struct{}

// New creates a sheet service
func New() Service {
	return &service{}
}

// Build writes one block per item file in name order. Files that fail to
// load are recorded and skipped.
func (s *service) Build(ctx context.Context, input *BuildInput) (*BuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Dir == "" {
		vb.RequiredField("Dir")
	}
	if input.Out == nil {
		vb.RequiredField("Out")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(input.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("directory %s not found", input.Dir)
		}
		return nil, errors.Wrapf(err, "failed to read directory %s", input.Dir)
	}

	out := &BuildOutput{Failed: make(map[string]error)}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "sheet build canceled")
		}

		item, err := loadItem(filepath.Join(input.Dir, entry.Name()))
		if err != nil {
			slog.WarnContext(ctx, "skipping item", "file", entry.Name(), "error", err)
			out.Failed[entry.Name()] = err
			continue
		}

		if _, err := io.WriteString(input.Out, Block(item)); err != nil {
			return nil, errors.Wrap(err, "failed to write sheet")
		}
		out.Written++
	}

	slog.InfoContext(ctx, "conversion sheet built",
		"dir", input.Dir,
		"written", out.Written,
		"failed", len(out.Failed))

	return out, nil
}

// Block renders one item
func Block(item *foundry5e.Item) string {
	description := MissingDescription
	if item.System.Description.Value != "" {
		description = StripHTML(item.System.Description.Value)
	}

	return fmt.Sprintf("Name: %s\nType: %s\nImage Path: %s\nDescription:\n%s\n%s\n\n",
		orDefault(item.Name, MissingName),
		orDefault(item.Type, MissingType),
		orDefault(item.Img, MissingImage),
		description,
		Separator)
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func loadItem(path string) (*foundry5e.Item, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the directory listing
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	return foundry5e.LoadItem(f)
}
