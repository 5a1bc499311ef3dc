package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-converter/internal/orchestrators/importer"
)

var monsterCR float64

var monstersCmd = &cobra.Command{
	Use:   "monsters [key...]",
	Short: "Convert D&D 5e SRD monsters",
	Long: `Fetch SRD monsters by key, by challenge rating, or both, and convert them.

  monsters goblin owlbear
  monsters --cr 0.25`,
	RunE: runMonsters,
}

func init() {
	monstersCmd.Flags().Float64Var(&monsterCR, "cr", 0, "also convert every monster of this challenge rating")
}

func runMonsters(cmd *cobra.Command, args []string) error {
	input := &importer.ImportMonstersInput{Keys: args}
	if cmd.Flags().Changed("cr") {
		input.ChallengeRating = &monsterCR
	}

	monsters, err := newMonsterClient()
	if err != nil {
		return err
	}

	svc, err := newImporter(importerDeps{monsters: monsters})
	if err != nil {
		return err
	}

	out, err := svc.ImportMonsters(cmd.Context(), input)
	if err != nil {
		return err
	}

	return printReport(cmd.OutOrStdout(), out)
}
