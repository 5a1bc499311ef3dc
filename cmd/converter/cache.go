package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-converter/internal/repositories/ocrcache"
)

var fixCorrupt bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Maintain the OCR text cache",
}

var cacheScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find cached OCR entries that no longer decode",
	Args:  cobra.NoArgs,
	RunE:  runCacheScan,
}

var cacheForgetCmd = &cobra.Command{
	Use:   "forget <image>...",
	Short: "Drop the cached OCR text of images so the next run reads them again",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCacheForget,
}

func init() {
	cacheScanCmd.Flags().BoolVar(&fixCorrupt, "fix", false, "delete the corrupt entries")

	cacheCmd.AddCommand(cacheScanCmd)
	cacheCmd.AddCommand(cacheForgetCmd)
}

func runCacheScan(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	repo, cleanup, err := openCache(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := repo.Scan(ctx, ocrcache.ScanInput{Fix: fixCorrupt})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, hash := range out.Corrupt {
		fmt.Fprintf(w, "CORRUPT %s\n", hash)
	}
	fmt.Fprintf(w, "\n%d checked, %d corrupt, %d removed\n", out.Checked, len(out.Corrupt), out.Removed)
	if len(out.Corrupt) > 0 && !fixCorrupt {
		fmt.Fprintln(w, "run with --fix to delete them")
	}
	return nil
}

func runCacheForget(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo, cleanup, err := openCache(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	w := cmd.OutOrStdout()
	for _, path := range args {
		hash, err := hashImageFile(path)
		if err != nil {
			return err
		}

		out, err := repo.Delete(ctx, ocrcache.DeleteInput{ImageHash: hash})
		if err != nil {
			return err
		}
		if out.Deleted {
			fmt.Fprintf(w, "forgot %s\n", path)
		} else {
			fmt.Fprintf(w, "not cached %s\n", path)
		}
	}
	return nil
}

func hashImageFile(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path is a user argument
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return ocrcache.HashImage(f)
}
