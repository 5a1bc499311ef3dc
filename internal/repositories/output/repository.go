// Package output writes converted documents where Foundry can import them.
package output

import (
	"context"
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-converter/internal/services/conversion"
)

//go:generate mockgen -destination=mock/mock_writer.go -package=outputmock github.com/KirkDiggler/rpg-converter/internal/repositories/output Writer

// WriteOutput lists what was written for one adversary
type WriteOutput struct {
	// Dir is the adversary's folder under the base directory
	Dir string
	// Files are the written paths, features first and the adversary last
	Files []string
}

// Writer persists a conversion result
type Writer interface {
	Write(ctx context.Context, out *conversion.Output) (*WriteOutput, error)
}

// UnnamedFolder replaces names that sanitize to nothing usable
const UnnamedFolder = "Unnamed_Adversary"

var (
	parenPattern        = regexp.MustCompile(`[()]`)
	reservedCharPattern = regexp.MustCompile(`[\\/*?:"<>|]`)
)

// SanitizeFilename strips characters that are unsafe in file names and turns
// spaces into underscores.
func SanitizeFilename(name string) string {
	name = parenPattern.ReplaceAllString(name, "")
	name = reservedCharPattern.ReplaceAllString(name, "")
	return strings.ReplaceAll(name, " ", "_")
}

func safeName(name string) string {
	s := SanitizeFilename(name)
	if s == "" || s == "." || s == ".." {
		return UnnamedFolder
	}
	return s
}
