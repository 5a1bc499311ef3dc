// Package ocrcache stores OCR text by image content so repeat batches skip
// the OCR engine.
package ocrcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"time"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=ocrcachemock github.com/KirkDiggler/rpg-converter/internal/repositories/ocrcache Repository

// Entry is the cached OCR result for one image
type Entry struct {
	// ImageHash is the hex SHA-256 of the image bytes
	ImageHash string

	// Source is the path the image was read from when it was cached
	Source string

	// Text is the raw OCR output
	Text string

	CreatedAt time.Time
	ExpiresAt time.Time
}

// GetInput contains parameters for looking up cached text
type GetInput struct {
	ImageHash string
}

// GetOutput contains the cached entry
type GetOutput struct {
	Entry *Entry
}

// PutInput contains parameters for caching text
type PutInput struct {
	ImageHash string
	Source    string
	Text      string
	TTL       time.Duration // Zero uses the repository default
}

// PutOutput contains the stored entry
type PutOutput struct {
	Entry *Entry
}

// DeleteInput contains parameters for evicting an entry
type DeleteInput struct {
	ImageHash string
}

// DeleteOutput reports whether anything was evicted
type DeleteOutput struct {
	Deleted bool
}

// ScanInput contains parameters for checking every cached entry
type ScanInput struct {
	// Fix deletes the corrupt entries found
	Fix bool
}

// ScanOutput reports the result of a scan
type ScanOutput struct {
	Checked int
	// Corrupt holds the hashes of entries that do not decode or whose
	// recorded hash disagrees with their key
	Corrupt []string
	Removed int
}

// Repository defines the interface for OCR text storage
type Repository interface {
	// Get returns a NotFound error on a miss
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores text for an image, replacing any previous entry
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete evicts an entry
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Scan walks all entries looking for corrupt data
	Scan(ctx context.Context, input ScanInput) (*ScanOutput, error)
}

// HashImage returns the hex SHA-256 of r's contents
func HashImage(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", errors.Wrap(err, "failed to hash image")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
