package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/identicon/internal/colour"
	"github.com/jmylchreest/identicon/internal/identicon"
	"github.com/jmylchreest/identicon/internal/render"
)

// newInspectCmd creates the inspect command.
func newInspectCmd() *cobra.Command {
	var format string
	var stage string

	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Show how an identicon is derived",
		Long: `Show the intermediate values produced for an input: the seed, the fill
colour, the full grid, the visible cells and the pixel map.

Examples:
  # Show every stage as text
  identicon inspect Chris

  # Show only the pixel map stage as JSON
  identicon inspect --format json --stage mapped Chris`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], format, stage)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringVar(&stage, "stage", "all", "stage to show (all, seeded, coloured, gridded, filtered, mapped)")

	return cmd
}

// runInspect executes the inspect command.
func runInspect(cmd *cobra.Command, input, format, stage string) error {
	seeded := identicon.Hash(input)
	coloured := seeded.PickColour()
	gridded := coloured.BuildGrid()
	filtered := gridded.FilterOdd()
	mapped := filtered.MapPixels()

	all := []identicon.Descriptor{
		seeded.Descriptor(),
		coloured.Descriptor(),
		gridded.Descriptor(),
		filtered.Descriptor(),
		mapped.Descriptor(),
	}

	var selected []identicon.Descriptor
	if stage == "all" {
		selected = all
	} else {
		for _, d := range all {
			if string(d.Stage) == stage {
				selected = append(selected, d)
			}
		}
		if len(selected) == 0 {
			return fmt.Errorf("invalid stage: %s (valid: all, seeded, coloured, gridded, filtered, mapped)", stage)
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		var v any = selected
		if len(selected) == 1 {
			v = selected[0]
		}
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "text":
		for i, d := range selected {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, d.String())
		}
		if stage == "all" || stage == string(identicon.StageMapped) {
			ansi := out == os.Stdout && colour.SupportsANSIColours(os.Stdout)
			fmt.Fprintln(out)
			if ansi {
				fmt.Fprintln(out, colour.FormatColourWithPreview(mapped.RGB(), 4))
			}
			fmt.Fprint(out, render.Blocks(mapped.RGB(), mapped.Rects(), ansi))
		}
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}

	return nil
}
