package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordcast/pkg/cloud"
	"github.com/matzehuels/wordcast/pkg/fonts"
	wio "github.com/matzehuels/wordcast/pkg/io"
	"github.com/matzehuels/wordcast/pkg/measure"
	"github.com/matzehuels/wordcast/pkg/pipeline"
)

// optionFlags holds the layout and render flags shared by several commands.
// Values only override an options file when the flag was set explicitly.
type optionFlags struct {
	config         string
	minFont        int
	maxFont        int
	paddingX       float64
	paddingY       float64
	spread         int
	palette        string
	font           string
	colorMode      string
	maxEvaluations int
	measurer       string
	width          float64
	height         float64
	seed           uint64
}

// addLayoutFlags registers the flags that influence placement.
func addLayoutFlags(cmd *cobra.Command, f *optionFlags) {
	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "options file (.toml, .yaml)")
	fl.IntVar(&f.minFont, "min-font", cloud.DefaultMinFontSize, "smallest font size")
	fl.IntVar(&f.maxFont, "max-font", cloud.DefaultMaxFontSize, "largest font size")
	fl.Float64Var(&f.paddingX, "padding-x", cloud.DefaultXPadding, "horizontal padding around each word")
	fl.Float64Var(&f.paddingY, "padding-y", cloud.DefaultYPadding, "vertical padding around each word")
	fl.IntVar(&f.spread, "spread", cloud.DefaultSpreadLimit, "spiral steps tried per word")
	fl.StringVar(&f.palette, "palette", "", "comma-separated hex colors (default black)")
	fl.StringVar(&f.font, "font", cloud.DefaultFontFamily, "font family (see 'wordcast fonts')")
	fl.StringVar(&f.colorMode, "color-mode", "round-robin", "color assignment: round-robin, random")
	fl.IntVar(&f.maxEvaluations, "max-evaluations", 0, "stop after this many candidate tests (0 = unlimited)")
	fl.StringVar(&f.measurer, "measurer", pipeline.DefaultMeasurer, "text measurer: font, estimate")
	fl.Float64Var(&f.width, "width", pipeline.DefaultWidth, "frame width")
	fl.Float64Var(&f.height, "height", pipeline.DefaultHeight, "frame height")
	fl.Uint64Var(&f.seed, "seed", pipeline.DefaultSeed, "random seed")

	_ = cmd.RegisterFlagCompletionFunc("font", completeFixed(fonts.Default().Families()...))
	_ = cmd.RegisterFlagCompletionFunc("color-mode", completeFixed("round-robin", "random"))
	_ = cmd.RegisterFlagCompletionFunc("measurer", completeFixed(measure.Names...))
	_ = cmd.MarkFlagFilename("config", "toml", "yaml", "yml")
}

func completeFixed(choices ...string) cobra.CompletionFunc {
	return cobra.FixedCompletions(choices, cobra.ShellCompDirectiveNoFileComp)
}

// options loads the options file, if any, and applies explicitly set flags
// on top of it.
func (f *optionFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	var opts pipeline.Options
	if f.config != "" {
		loaded, err := pipeline.LoadOptionsFile(f.config)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	fl := cmd.Flags()
	set := func(name string, apply func()) {
		if fl.Changed(name) {
			apply()
		}
	}
	set("min-font", func() { opts.MinFontSize = f.minFont })
	set("max-font", func() { opts.MaxFontSize = f.maxFont })
	set("padding-x", func() { opts.PaddingX = &f.paddingX })
	set("padding-y", func() { opts.PaddingY = &f.paddingY })
	set("spread", func() { opts.SpreadLimit = f.spread })
	set("palette", func() { opts.Palette = parseList(f.palette) })
	set("font", func() { opts.FontFamily = f.font })
	set("color-mode", func() { opts.ColorMode = f.colorMode })
	set("max-evaluations", func() { opts.MaxEvaluations = f.maxEvaluations })
	set("measurer", func() { opts.Measurer = f.measurer })
	set("width", func() { opts.Width = f.width })
	set("height", func() { opts.Height = f.height })
	set("seed", func() { opts.Seed = f.seed })
	return opts, nil
}

// renderFlags adds the output flags of the render command.
type renderFlags struct {
	optionFlags
	output     string
	formats    string
	boxes      bool
	background string
	embedFont  bool
	scale      float64
	unplaced   string
}

// renderCommand creates the render command for writing output files.
func (c *CLI) renderCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render [words-file]",
		Short: "Lay out a word list and write the rendered cloud",
		Long: `Lay out a word list and write the rendered cloud.

The words file holds one word per line (blank lines and lines starting
with '#' are skipped) or a JSON array of strings when it ends in .json.
Words are sized by their position in the list: the first word is the
biggest. Use '-' to read plain text from stdin.

Flags override values from --config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") || len(opts.Formats) == 0 {
				opts.Formats = parseFormats(f.formats)
			}
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if cmd.Flags().Changed("boxes") {
				opts.ShowBoxes = f.boxes
			}
			if cmd.Flags().Changed("background") {
				opts.Background = f.background
			}
			if cmd.Flags().Changed("embed-font") {
				opts.EmbedFont = f.embedFont
			}
			if cmd.Flags().Changed("scale") {
				opts.Scale = f.scale
			}
			return c.runRender(cmd.Context(), args[0], opts, f.output, f.unplaced)
		},
	}

	addLayoutFlags(cmd, &f.optionFlags)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&f.boxes, "boxes", false, "outline each word's padded bounding box")
	cmd.Flags().StringVar(&f.background, "background", pipeline.DefaultBackground, "background color, or 'none' for transparent")
	cmd.Flags().BoolVar(&f.embedFont, "embed-font", false, "embed the font in SVG output")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG pixel density")
	cmd.Flags().StringVar(&f.unplaced, "unplaced", "", "write words that did not fit to this file")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFixed(pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatPDF, pipeline.FormatJSON))

	return cmd
}

// readWords loads the words file, or stdin for "-".
func readWords(input string) ([]string, error) {
	if input == "-" {
		return wio.ReadWords(os.Stdin, wio.FormatText)
	}
	return wio.ImportWords(input)
}

// runRender lays out the words and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output, unplacedPath string) error {
	logger := loggerFromContext(ctx)

	words, err := readWords(input)
	if err != nil {
		return fmt.Errorf("load words %s: %w", input, err)
	}
	logger.Debug("loaded words", "file", input, "count", len(words))

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Validating options...")
	opts.OnStage = func(stage string) { spinner.Stage(stage, len(words), opts.Formats) }
	spinner.Start()

	res, err := c.newRunner().Execute(ctx, words, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Laid out %d words", len(words)))

	base := basePath(output, input)
	var written []string
	for _, format := range opts.Formats {
		path := outputPath(output, base, format, len(opts.Formats))
		if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	if unplacedPath != "" {
		unplaced := make([]string, len(res.Cloud.Unplaced))
		for i, w := range res.Cloud.Unplaced {
			unplaced[i] = w.Text
		}
		if err := wio.ExportWords(unplacedPath, unplaced); err != nil {
			return fmt.Errorf("write unplaced words: %w", err)
		}
		written = append(written, unplacedPath)
	}

	printSuccess("Render complete")
	for _, path := range written {
		printFile(path)
	}
	printStats(res.Stats)
	if res.Stats.BudgetExhausted {
		printWarning("evaluation budget exhausted; raise --max-evaluations to place more words")
	}
	if input != "-" {
		printNewline()
		printNextStep("Inspect", appName+" inspect "+input)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input ("cloud" for stdin).
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return "cloud"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns the file written for format. A single format honours
// an explicit output path as given.
func outputPath(output, base, format string, formats int) string {
	if formats == 1 && output != "" && filepath.Ext(output) != "" {
		return output
	}
	return base + "." + format
}
