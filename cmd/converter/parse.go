package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-converter/internal/orchestrators/importer"
	"github.com/KirkDiggler/rpg-converter/internal/pkg/idgen"
)

// Parse output formats
const (
	formatRecord    = "record"
	formatAdversary = "adversary"
)

var (
	parseImage  bool
	parseFormat string
	parseRolls  int
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse one stat block and print the result",
	Long: `Parse stat-block text from file, or stdin when file is "-" or missing, and
print the parsed record or the converted adversary as JSON. Nothing is written.

  parse brute.txt
  parse --image --format adversary input_pngs/brute.png
  parse --roll 5 brute.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseImage, "image", false, "treat file as an image and OCR it first")
	parseCmd.Flags().StringVar(&parseFormat, "format", formatRecord, "output: record or adversary")
	parseCmd.Flags().IntVar(&parseRolls, "roll", 0, "roll the attack damage this many times")
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if parseFormat != formatRecord && parseFormat != formatAdversary {
		return errors.InvalidArgumentf("unknown format %q", parseFormat)
	}

	path := "-"
	if len(args) > 0 {
		path = args[0]
	}

	var text string
	if parseImage {
		if path == "-" {
			return errors.InvalidArgument("--image needs a file")
		}
		engine, cleanup, err := newEngine(ctx, false)
		if err != nil {
			return err
		}
		defer cleanup()

		if text, err = engine.Recognize(ctx, path); err != nil {
			return err
		}
	} else {
		data, err := readInput(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		text = string(data)
	}

	svc, err := newImporter(importerDeps{})
	if err != nil {
		return err
	}

	out, err := svc.ParseText(ctx, &importer.ParseTextInput{Text: text})
	if err != nil {
		return err
	}

	var doc any = out.Record
	if parseFormat == formatAdversary {
		doc = out.Output.Adversary
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "failed to encode result")
	}

	for _, warning := range out.Output.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
	}

	if parseRolls > 0 {
		return rollAttack(cmd, out)
	}
	return nil
}

func rollAttack(cmd *cobra.Command, out *importer.ParseTextOutput) error {
	attack := out.Record.Attack
	if attack == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "no attack to roll")
		return nil
	}

	roller, err := dice.NewOrchestrator(&dice.Config{IDGenerator: idgen.NewSequential("roll_")})
	if err != nil {
		return err
	}

	rolled, err := roller.RollDamage(cmd.Context(), &dice.RollDamageInput{
		Notation: attack.Notation(),
		Times:    parseRolls,
	})
	if err != nil {
		return err
	}

	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "%s %s (average %.1f):", attack.Name, attack.Notation(), rolled.Average)
	for _, roll := range rolled.Rolls {
		fmt.Fprintf(w, " %d", roll.Total)
	}
	fmt.Fprintln(w)
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is a user argument
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("%s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}
