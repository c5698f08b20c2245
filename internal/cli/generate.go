package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/tintbar/internal/colour"
	"github.com/jmylchreest/tintbar/internal/config"
)

// generateOptions holds the generate command flags.
type generateOptions struct {
	count       int
	minDistance float64
	minContrast float64
	seed        uint64
	jsonOut     bool
	noPreview   bool
	savePath    string
	configPath  string
}

// RegisterFlags registers the generate flags on the given flag set.
func (o *generateOptions) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVarP(&o.count, "count", "n", 10, "number of colour pairs to generate")
	flags.Float64Var(&o.minDistance, "min-distance", 0, "minimum CIELAB distance between backgrounds (0 = derive from count)")
	flags.Float64Var(&o.minContrast, "min-contrast", 0, "minimum pairwise contrast ratio for small palettes (0 = default 1.5)")
	flags.Uint64Var(&o.seed, "seed", 0, "random seed for reproducible palettes")
	flags.BoolVar(&o.jsonOut, "json", false, "emit the palette as JSON")
	flags.BoolVar(&o.noPreview, "no-preview", false, "disable ANSI colour previews")
	flags.StringVar(&o.savePath, "save", "", "save the palette to a JSON file")
	flags.StringVar(&o.configPath, "save-config", "", "save the palette as a tintbar config colour pool")
}

var generateOpts generateOptions

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate distinct, accessible colour pairs",
	Long: `Generate a palette of visually distinct background colours, each paired
with whichever of white or black reads better on top of it.

Candidates are sampled in CIELAB space with golden-ratio hue cycling and
validated for perceptual separation and WCAG contrast. If the constraints
cannot all be satisfied within the attempt budget, a shorter palette is
returned with a warning.

Examples:
  # Ten pairs with tier defaults
  tintbar generate

  # Five pairs, reproducible
  tintbar generate -n 5 --seed 42

  # Stricter separation, saved for later use with apply
  tintbar generate -n 20 --min-distance 25 --save-config ~/.config/tintbar/config.json`,
	RunE: runGenerate,
}

func init() {
	generateOpts.RegisterFlags(generateCmd.Flags())
}

// buildGenerateConfig translates flags into a sampler config.
func buildGenerateConfig(opts generateOptions) colour.Config {
	cfg := colour.DefaultConfig(opts.count)
	if opts.minDistance > 0 {
		cfg.MinDistance = opts.minDistance
	}
	if opts.minContrast > 0 {
		cfg.MinContrast = opts.minContrast
	}
	return cfg
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := buildGenerateConfig(generateOpts)

	rng := colour.NewRand()
	if cmd.Flags().Changed("seed") {
		rng = colour.NewSeededRand(generateOpts.seed)
		logger.Debug("using fixed seed", "seed", generateOpts.seed)
	}

	logger.Debug("generating palette",
		"count", cfg.Count,
		"min_distance", cfg.MinDistance,
		"min_contrast", cfg.MinContrast)

	palette := colour.Generate(cfg, rng)

	if palette.Len() < generateOpts.count {
		color.New(color.FgYellow).Fprintf(os.Stderr,
			"Warning: could only generate %d distinct colours out of %d requested\n",
			palette.Len(), generateOpts.count)
	}

	if generateOpts.jsonOut {
		data, err := palette.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printPalette(palette, !generateOpts.noPreview && stdoutIsTerminal())
	}

	if generateOpts.savePath != "" {
		if err := savePalette(generateOpts.savePath, palette); err != nil {
			return err
		}
		logger.Info("palette saved", "path", generateOpts.savePath)
	}

	if generateOpts.configPath != "" {
		if err := savePaletteConfig(generateOpts.configPath, palette); err != nil {
			return err
		}
		logger.Info("config colour pool saved", "path", generateOpts.configPath)
	}

	return nil
}

// printPalette writes the palette to stdout, one pair per line. Background
// hex is uppercased at this presentation boundary.
func printPalette(palette *colour.Palette, preview bool) {
	for i, e := range palette.All() {
		line := fmt.Sprintf("%2d. %s on %s  (contrast %.2f:1)",
			i+1,
			strings.ToUpper(e.Foreground.Hex()),
			strings.ToUpper(e.Background.Hex()),
			colour.ContrastRatio(e.Background, e.Foreground))
		if preview {
			line = colour.PairPreview(e.Background, e.Foreground, "COLOUR PREVIEW") + " " + line
		}
		fmt.Println(line)
	}
}

// savePalette writes the palette JSON to a file.
func savePalette(path string, palette *colour.Palette) error {
	data, err := palette.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to encode palette: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save palette: %w", err)
	}
	return nil
}

// savePaletteConfig persists the palette as a config colour pool that apply
// can assign from. Backgrounds take the uppercase presentation form.
func savePaletteConfig(path string, palette *colour.Palette) error {
	existing, err := config.Load(path)
	if err != nil {
		existing = &config.Config{}
	}

	colours := make([]config.NamedColour, palette.Len())
	for i, e := range palette.All() {
		colours[i] = config.NamedColour{
			Name:       fmt.Sprintf("Colour %d", i+1),
			Background: strings.ToUpper(e.Background.Hex()),
			Foreground: e.Foreground.Hex(),
		}
	}
	existing.Colours = colours

	return config.Save(path, existing)
}
