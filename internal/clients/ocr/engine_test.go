package ocr_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-converter/internal/clients/ocr"
	"github.com/KirkDiggler/rpg-converter/internal/errors"
)

// fakeTesseract writes a shell script that stands in for the real binary
func fakeTesseract(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in needs a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "tesseract")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func writeImage(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brute.png")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestTesseractRecognize(t *testing.T) {
	binary := fakeTesseract(t, `cat "$1"; echo "lang=$4"`)
	engine, err := ocr.NewTesseract(&ocr.TesseractConfig{Binary: binary, Language: "eng"})
	require.NoError(t, err)

	text, err := engine.Recognize(context.Background(), writeImage(t, "Ironclaw Brute\nTier 2 Solo\n"))

	require.NoError(t, err)
	assert.Equal(t, "Ironclaw Brute\nTier 2 Solo\nlang=eng\n", text)
}

func TestTesseractFailure(t *testing.T) {
	binary := fakeTesseract(t, `echo "Error opening data file" >&2; exit 1`)
	engine, err := ocr.NewTesseract(&ocr.TesseractConfig{Binary: binary})
	require.NoError(t, err)

	_, err = engine.Recognize(context.Background(), writeImage(t, "x"))

	require.Error(t, err)
	assert.Equal(t, errors.CodeInternal, errors.GetCode(err))
	assert.Equal(t, "Error opening data file", errors.GetMeta(err)["stderr"])
}

func TestTesseractMissingImage(t *testing.T) {
	binary := fakeTesseract(t, `exit 0`)
	engine, err := ocr.NewTesseract(&ocr.TesseractConfig{Binary: binary})
	require.NoError(t, err)

	_, err = engine.Recognize(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	assert.True(t, errors.IsNotFound(err))

	_, err = engine.Recognize(context.Background(), "")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewTesseractMissingBinary(t *testing.T) {
	_, err := ocr.NewTesseract(&ocr.TesseractConfig{Binary: filepath.Join(t.TempDir(), "nope")})

	require.Error(t, err)
	assert.Equal(t, errors.CodeFailedPrecondition, errors.GetCode(err))
}

func TestTesseractConfigValidate(t *testing.T) {
	cfg := &ocr.TesseractConfig{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "tesseract", cfg.Binary)
	assert.Equal(t, "eng", cfg.Language)

	assert.Error(t, (&ocr.TesseractConfig{Language: "eng fra"}).Validate())
}
