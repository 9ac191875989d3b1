package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/identicon/internal/colour"
	"github.com/jmylchreest/identicon/internal/identicon"
	"github.com/jmylchreest/identicon/internal/image"
	"github.com/jmylchreest/identicon/internal/render"
)

// newVerifyCmd creates the verify command.
func newVerifyCmd() *cobra.Command {
	var background string

	cmd := &cobra.Command{
		Use:   "verify <image> <input>",
		Short: "Check that an image is the identicon for an input",
		Long: `Render the identicon for input at the size of the given PNG and compare
them pixel by pixel. Exits non-zero if they differ.

Examples:
  identicon verify Chris.png Chris
  identicon verify --background "#ffffff" avatars/alice.png alice`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args[0], args[1], background)
		},
	}

	cmd.Flags().StringVar(&background, "background", "", "background colour the image was generated with (default: transparent)")

	return cmd
}

// runVerify executes the verify command.
func runVerify(cmd *cobra.Command, path, input, background string) error {
	logger := newLogger(cmd)

	renderer := &render.PNGRenderer{}
	if background != "" {
		rgb, err := colour.ParseHex(background)
		if err != nil {
			return fmt.Errorf("invalid background: %w", err)
		}
		renderer.Background = &rgb
	}

	actual, err := image.NewFileLoader().Load(path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	size, err := image.SquareSize(actual)
	if err != nil {
		return err
	}
	renderer.Size = size

	m := identicon.Generate(input)
	expected, err := renderer.Draw(m.RGB(), m.Rects())
	if err != nil {
		return fmt.Errorf("failed to render identicon: %w", err)
	}

	diff := image.Diff(expected, actual)
	logger.Debug("compared image", "path", path, "input", input, "size", size, "differing_pixels", diff)
	if diff > 0 {
		return fmt.Errorf("%s does not match the identicon for %q (%d pixels differ)", path, input, diff)
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s matches %q\n", path, input)
	}
	return nil
}
