package main

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/orchestrators/importer"
)

// printReport writes one line per source and a summary. It returns an error
// when any source failed so the process exits non-zero.
func printReport(w io.Writer, out *importer.ImportOutput) error {
	for _, r := range out.Results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(w, "FAIL  %s: %v\n", r.Source, r.Err)
		case r.Skipped:
			fmt.Fprintf(w, "SKIP  %s: %s\n", r.Source, r.SkipReason)
		default:
			fmt.Fprintf(w, "OK    %s -> %s (%d files)\n", r.Source, r.Name, len(r.Files))
			for _, warning := range r.Warnings {
				fmt.Fprintf(w, "      warning: %s\n", warning)
			}
		}
	}

	failed := len(out.Failed())
	fmt.Fprintf(w, "\nrun %s: %d converted, %d skipped, %d failed\n",
		out.RunID, out.Converted(), len(out.Results)-out.Converted()-failed, failed)

	if failed > 0 {
		return errors.Internalf("%d of %d sources failed", failed, len(out.Results))
	}
	return nil
}
