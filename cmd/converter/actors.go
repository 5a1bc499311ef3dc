package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-converter/internal/orchestrators/importer"
)

var actorsCmd = &cobra.Command{
	Use:   "actors [dir]",
	Short: "Convert FoundryVTT D&D 5e actor exports",
	Long:  `Convert every .json actor export in dir (default the current directory).`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runActors,
}

func runActors(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	svc, err := newImporter(importerDeps{})
	if err != nil {
		return err
	}

	out, err := svc.ImportActors(cmd.Context(), &importer.ImportActorsInput{Dir: dir})
	if err != nil {
		return err
	}

	return printReport(cmd.OutOrStdout(), out)
}
