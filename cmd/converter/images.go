package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-converter/internal/orchestrators/importer"
)

var refreshOCR bool

var imagesCmd = &cobra.Command{
	Use:   "images [dir]",
	Short: "Convert stat-block images",
	Long: `OCR every .png in dir (default input_pngs), parse the stat block and write
the adversary and its features. Images whose name cannot be read are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImages,
}

func init() {
	imagesCmd.Flags().BoolVar(&refreshOCR, "refresh", false, "ignore cached OCR text")
}

func runImages(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dir := "input_pngs"
	if len(args) > 0 {
		dir = args[0]
	}

	engine, cleanup, err := newEngine(ctx, refreshOCR)
	if err != nil {
		return err
	}
	defer cleanup()

	svc, err := newImporter(importerDeps{engine: engine})
	if err != nil {
		return err
	}

	out, err := svc.ImportImages(ctx, &importer.ImportImagesInput{Dir: dir})
	if err != nil {
		return err
	}

	return printReport(cmd.OutOrStdout(), out)
}
