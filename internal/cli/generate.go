package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/identicon/internal/colour"
	"github.com/jmylchreest/identicon/internal/config"
	"github.com/jmylchreest/identicon/internal/generator"
	"github.com/jmylchreest/identicon/internal/render"
	"github.com/jmylchreest/identicon/internal/store"
)

// generateOptions holds the generate command flags.
type generateOptions struct {
	outputDir  string
	size       int
	jobs       int
	background string
	name       string
	preview    bool
}

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <input>...",
		Short: "Generate identicon images",
		Long: `Generate a PNG identicon for each input string.

Each image is written to <output-dir>/<input>.png, replacing any existing
file. Inputs that cannot be used as a file name are stored under a hash of
the input instead.

Settings can also be provided through the environment:
  IDENTICON_OUTPUT_DIR, IDENTICON_SIZE, IDENTICON_JOBS, IDENTICON_BACKGROUND
Flags take precedence over the environment.

Examples:
  # Generate Chris.png in the current directory
  identicon generate Chris

  # Generate several avatars into a directory, 4 at a time
  identicon generate -o avatars -j 4 alice bob carol

  # Generate a 64px avatar on a white background
  identicon generate --size 64 --background "#ffffff" user@example.com

  # Store under a different name and show a terminal preview
  identicon generate --name avatar --preview Chris`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory (default: current directory)")
	cmd.Flags().IntVarP(&opts.size, "size", "s", defaults.Size, fmt.Sprintf("image size in pixels (%d-%d)", render.MinSize, render.MaxSize))
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", defaults.Jobs, "number of identicons generated concurrently")
	cmd.Flags().StringVar(&opts.background, "background", "", "background colour as hex (default: transparent)")
	cmd.Flags().StringVar(&opts.name, "name", "", "file name to store a single identicon under (default: the input)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show a preview of each identicon in the terminal")

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, opts *generateOptions, args []string) error {
	if opts.name != "" && len(args) > 1 {
		return fmt.Errorf("--name can only be used with a single input")
	}

	cfg, err := resolveConfig(cmd.Flags(), opts)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cmd)
	logger.Debug("configuration", "output_dir", cfg.OutputDir, "size", cfg.Size, "jobs", cfg.Jobs)

	gen := generator.New(
		generator.WithRenderer(&render.PNGRenderer{Size: cfg.Size, Background: cfg.Background}),
		generator.WithPersister(store.NewFilePersister(cfg.OutputDir)),
		generator.WithLogger(logger),
	)

	reqs := make([]generator.Request, len(args))
	for i, input := range args {
		reqs[i] = generator.Request{Input: input, Identifier: opts.name}
	}

	results, err := gen.GenerateAll(cmd.Context(), reqs, cfg.Jobs)

	quiet, _ := cmd.Flags().GetBool("quiet")
	out := cmd.OutOrStdout()
	ansi := out == os.Stdout && colour.SupportsANSIColours(os.Stdout)
	for _, res := range results {
		if res.Path == "" || quiet {
			continue
		}
		fmt.Fprintln(out, res.Path)
		if opts.preview {
			fmt.Fprintf(out, "colour: %s\n", colour.Label(res.Image.RGB(), ansi))
			fmt.Fprint(out, render.Blocks(res.Image.RGB(), res.Image.Rects(), ansi))
		}
	}

	if err != nil {
		switch {
		case errors.Is(err, generator.ErrRender) && errors.Is(err, generator.ErrPersist):
			return fmt.Errorf("failed to generate identicons: %w", err)
		case errors.Is(err, generator.ErrRender):
			return fmt.Errorf("failed to render identicons: %w", err)
		case errors.Is(err, generator.ErrPersist):
			return fmt.Errorf("failed to save identicons: %w", err)
		default:
			return fmt.Errorf("failed to generate identicons: %w", err)
		}
	}
	return nil
}

// resolveConfig layers explicitly set flags over the environment and defaults.
func resolveConfig(flags *pflag.FlagSet, opts *generateOptions) (config.Config, error) {
	base, err := config.NewBuilder().WithEnvConfig().Build()
	if err != nil {
		return config.Config{}, err
	}

	if flags.Changed("output-dir") {
		base.OutputDir = opts.outputDir
	}
	if flags.Changed("size") {
		base.Size = opts.size
	}
	if flags.Changed("jobs") {
		base.Jobs = opts.jobs
	}
	if flags.Changed("background") {
		rgb, err := colour.ParseHex(opts.background)
		if err != nil {
			return config.Config{}, err
		}
		base.Background = &rgb
	}

	return base, base.Validate()
}
