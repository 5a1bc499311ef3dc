package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/services/sheet"
)

var sheetOutput string

var sheetCmd = &cobra.Command{
	Use:   "sheet [dir]",
	Short: "Write a plain-text sheet of 5e item exports",
	Long: `List the name, type, image and description of every .json item export in dir
(default input_5e) for converting features by hand.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSheet,
}

func init() {
	sheetCmd.Flags().StringVar(&sheetOutput, "out", "conversion_sheet.txt", "sheet file, - for stdout")
}

func runSheet(cmd *cobra.Command, args []string) error {
	dir := "input_5e"
	if len(args) > 0 {
		dir = args[0]
	}

	w := cmd.OutOrStdout()
	if sheetOutput != "-" {
		f, err := os.Create(sheetOutput) // #nosec G304 -- path is a user flag
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", sheetOutput)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	out, err := sheet.New().Build(cmd.Context(), &sheet.BuildInput{Dir: dir, Out: w})
	if err != nil {
		return err
	}

	for name, reason := range out.Failed {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %v\n", name, reason)
	}
	if sheetOutput != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "%d items written to %s\n", out.Written, sheetOutput)
	}
	return nil
}
