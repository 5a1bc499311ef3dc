// Package importer drives batch conversion: it finds the sources, runs them
// through OCR, parsing and conversion, and writes the results.
package importer

//go:generate mockgen -destination=mock/mock_service.go -package=importermock github.com/KirkDiggler/rpg-converter/internal/orchestrators/importer Service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-converter/internal/clients/external"
	"github.com/KirkDiggler/rpg-converter/internal/clients/ocr"
	"github.com/KirkDiggler/rpg-converter/internal/entities/foundry5e"
	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-converter/internal/repositories/output"
	"github.com/KirkDiggler/rpg-converter/internal/services/conversion"
	"github.com/KirkDiggler/rpg-converter/internal/statblock"
)

// DefaultWorkers bounds concurrent conversions when Config.Workers is zero
const DefaultWorkers = 4

// SkipReasonNoName marks OCR text whose first line could not be read
const SkipReasonNoName = "could not determine adversary name"

// Service defines the batch import operations
type Service interface {
	// ImportImages OCRs, parses, converts and writes every .png in a directory
	ImportImages(ctx context.Context, input *ImportImagesInput) (*ImportOutput, error)

	// ImportActors converts every .json 5e actor export in a directory
	ImportActors(ctx context.Context, input *ImportActorsInput) (*ImportOutput, error)

	// ImportMonsters fetches and converts SRD monsters
	ImportMonsters(ctx context.Context, input *ImportMonstersInput) (*ImportOutput, error)

	// ParseText parses and converts one stat block without writing it
	ParseText(ctx context.Context, input *ParseTextInput) (*ParseTextOutput, error)
}

// Config holds the dependencies for the importer
type Config struct {
	Converter conversion.Converter
	Writer    output.Writer
	// Parser defaults to the standard correction table
	Parser *statblock.Parser
	// Engine is needed for ImportImages only
	Engine ocr.Engine
	// Monsters is needed for ImportMonsters only
	Monsters external.Client
	// IDGenerator names each batch run
	IDGenerator idgen.Generator
	// Workers bounds concurrent sources. Zero means DefaultWorkers.
	Workers int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Converter == nil {
		vb.RequiredField("Converter")
	}
	if c.Writer == nil {
		vb.RequiredField("Writer")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Workers < 0 {
		vb.Fieldf("Workers", "must not be negative, got %d", c.Workers)
	}
	return vb.Build()
}

type orchestrator struct {
	converter conversion.Converter
	writer    output.Writer
	parser    *statblock.Parser
	engine    ocr.Engine
	monsters  external.Client
	idGen     idgen.Generator
	workers   int
}

// NewOrchestrator creates a new importer with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	parser := cfg.Parser
	if parser == nil {
		var err error
		parser, err = statblock.New(nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create parser")
		}
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = DefaultWorkers
	}

	return &orchestrator{
		converter: cfg.Converter,
		writer:    cfg.Writer,
		parser:    parser,
		engine:    cfg.Engine,
		monsters:  cfg.Monsters,
		idGen:     cfg.IDGenerator,
		workers:   workers,
	}, nil
}

func (o *orchestrator) ImportImages(ctx context.Context, input *ImportImagesInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.engine == nil {
		return nil, errors.FailedPrecondition("no OCR engine configured")
	}

	paths, err := listFiles(input.Dir, ".png")
	if err != nil {
		return nil, err
	}

	return o.run(ctx, "images", paths, o.importImage)
}

func (o *orchestrator) importImage(ctx context.Context, path string) *FileResult {
	result := &FileResult{Source: path}

	text, err := o.engine.Recognize(ctx, path)
	if err != nil {
		result.Err = errors.Wrapf(err, "failed to read text from %s", filepath.Base(path))
		return result
	}

	record := o.parser.Parse(text)
	if !record.HasName() {
		result.Skipped = true
		result.SkipReason = SkipReasonNoName
		slog.WarnContext(ctx, "skipping image",
			"image", path,
			"reason", SkipReasonNoName)
		return result
	}

	converted, err := o.converter.FromRecord(ctx, record)
	if err != nil {
		result.Name = record.Name
		result.Err = errors.Wrapf(err, "failed to convert %s", record.Name)
		return result
	}

	return o.write(ctx, result, converted)
}

func (o *orchestrator) ImportActors(ctx context.Context, input *ImportActorsInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	paths, err := listFiles(input.Dir, ".json")
	if err != nil {
		return nil, err
	}

	return o.run(ctx, "actors", paths, o.importActor)
}

func (o *orchestrator) importActor(ctx context.Context, path string) *FileResult {
	result := &FileResult{Source: path}

	actor, err := loadActor(path)
	if err != nil {
		result.Err = err
		return result
	}

	converted, err := o.converter.FromActor(ctx, actor)
	if err != nil {
		result.Name = actor.Name
		result.Err = errors.Wrapf(err, "failed to convert %s", filepath.Base(path))
		return result
	}

	return o.write(ctx, result, converted)
}

func loadActor(path string) (*foundry5e.Actor, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the batch directory listing
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	actor, err := foundry5e.LoadActor(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", filepath.Base(path))
	}
	return actor, nil
}

func (o *orchestrator) ImportMonsters(ctx context.Context, input *ImportMonstersInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.monsters == nil {
		return nil, errors.FailedPrecondition("no dnd5e client configured")
	}
	if len(input.Keys) == 0 && input.ChallengeRating == nil {
		return nil, errors.InvalidArgument("monster keys or a challenge rating are required")
	}

	keys := make([]string, 0, len(input.Keys))
	seen := make(map[string]bool)
	add := func(key string) {
		key = strings.TrimSpace(key)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		keys = append(keys, key)
	}

	for _, key := range input.Keys {
		add(key)
	}
	if input.ChallengeRating != nil {
		byCR, err := o.monsters.ListMonsterKeysByCR(ctx, *input.ChallengeRating)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list monsters for challenge rating %g", *input.ChallengeRating)
		}
		for _, key := range byCR {
			add(key)
		}
	}
	if len(keys) == 0 {
		return nil, errors.NotFound("no monsters matched")
	}

	return o.run(ctx, "monsters", keys, o.importMonster)
}

func (o *orchestrator) importMonster(ctx context.Context, key string) *FileResult {
	result := &FileResult{Source: key}

	monster, err := o.monsters.GetMonster(ctx, key)
	if err != nil {
		result.Err = err
		return result
	}

	converted, err := o.converter.FromMonster(ctx, monster)
	if err != nil {
		result.Name = monster.Name
		result.Err = errors.Wrapf(err, "failed to convert %s", key)
		return result
	}

	return o.write(ctx, result, converted)
}

func (o *orchestrator) ParseText(ctx context.Context, input *ParseTextInput) (*ParseTextOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	record := o.parser.Parse(input.Text)

	converted, err := o.converter.FromRecord(ctx, record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert parsed text")
	}

	return &ParseTextOutput{
		Record: record,
		Output: converted,
	}, nil
}

func (o *orchestrator) write(ctx context.Context, result *FileResult, converted *conversion.Output) *FileResult {
	result.Name = converted.Adversary.Name
	result.Warnings = converted.Warnings

	written, err := o.writer.Write(ctx, converted)
	if err != nil {
		result.Err = errors.Wrapf(err, "failed to write %s", result.Name)
		return result
	}

	result.Files = written.Files
	return result
}

// run processes sources concurrently. Per-source failures land in the
// results; only cancellation stops the batch.
func (o *orchestrator) run(
	ctx context.Context,
	kind string,
	sources []string,
	process func(context.Context, string) *FileResult,
) (*ImportOutput, error) {
	runID := o.idGen.Generate()
	results := make([]*FileResult, len(sources))

	slog.InfoContext(ctx, "import started",
		"run_id", runID,
		"kind", kind,
		"sources", len(sources),
		"workers", o.workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, source := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result := process(gctx, source)
			results[i] = result

			if result.Err != nil {
				slog.WarnContext(gctx, "import failed",
					"run_id", runID,
					"source", source,
					"error", result.Err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "import canceled")
	}

	out := &ImportOutput{RunID: runID, Results: results}

	slog.InfoContext(ctx, "import finished",
		"run_id", runID,
		"kind", kind,
		"converted", out.Converted(),
		"failed", len(out.Failed()))

	return out, nil
}

// listFiles returns the files in dir with the given extension, matched
// case-insensitively, in name order.
func listFiles(dir, ext string) ([]string, error) {
	if dir == "" {
		return nil, errors.InvalidArgument("directory is required")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("directory %s not found", dir)
		}
		return nil, errors.Wrapf(err, "failed to read directory %s", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
