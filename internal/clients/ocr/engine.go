// Package ocr recognises text in stat-block images
package ocr

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
)

//go:generate mockgen -destination=mock/mock_engine.go -package=ocrmock github.com/KirkDiggler/rpg-converter/internal/clients/ocr Engine

// Engine turns an image into text
type Engine interface {
	// Recognize returns the raw text found in the image at imagePath
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// TesseractConfig configures the tesseract engine
type TesseractConfig struct {
	// Binary is the tesseract executable (default "tesseract")
	Binary string
	// Language is the traineddata to use (default "eng")
	Language string
	// ExtraArgs are passed through before the output arguments, e.g. "--psm 4"
	ExtraArgs []string
}

// Validate validates the config and sets defaults
func (c *TesseractConfig) Validate() error {
	if c.Binary == "" {
		c.Binary = "tesseract"
	}
	if c.Language == "" {
		c.Language = "eng"
	}
	if strings.ContainsAny(c.Language, " \t\n") {
		return errors.InvalidArgumentf("invalid tesseract language %q", c.Language)
	}
	return nil
}

type tesseract struct {
	binary   string
	language string
	extra    []string
}

// NewTesseract creates an engine that shells out to the tesseract CLI
func NewTesseract(cfg *TesseractConfig) (Engine, error) {
	if cfg == nil {
		cfg = &TesseractConfig{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	binary, err := exec.LookPath(cfg.Binary)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeFailedPrecondition, "tesseract binary %q not found", cfg.Binary)
	}

	return &tesseract{
		binary:   binary,
		language: cfg.Language,
		extra:    cfg.ExtraArgs,
	}, nil
}

// Recognize runs "tesseract <image> stdout -l <lang>"
func (t *tesseract) Recognize(ctx context.Context, imagePath string) (string, error) {
	if imagePath == "" {
		return "", errors.InvalidArgument("image path is required")
	}
	if _, err := os.Stat(imagePath); err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFoundf("image %s not found", imagePath)
		}
		return "", errors.Wrapf(err, "failed to stat image %s", imagePath)
	}

	args := []string{imagePath, "stdout", "-l", t.language}
	args = append(args, t.extra...)

	// #nosec G204 -- binary comes from configuration, not from input
	cmd := exec.CommandContext(ctx, t.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "ocr canceled")
		}
		return "", errors.WrapWithCodef(err, errors.CodeInternal, "tesseract failed on %s", imagePath).
			WithMeta("stderr", strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
