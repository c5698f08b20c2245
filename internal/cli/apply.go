package cli

import (
	"fmt"
	mathrand "math/rand/v2"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tintbar/internal/colour"
	"github.com/jmylchreest/tintbar/internal/config"
	"github.com/jmylchreest/tintbar/internal/workspace"
)

var (
	applyConfigPath string
	applyDryRun     bool
	applyOverwrite  bool
)

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Assign unused colours to workspaces",
	Long: `Scan the configured parent directories for workspaces and give each one a
colour pair from the config pool that no other workspace is using yet.

Workspaces that already have colours keep them unless --overwrite is set.
With --dry-run the assignment is printed but nothing is written.

Examples:
  tintbar apply
  tintbar apply --dry-run
  tintbar apply --config ./config.json --overwrite`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyConfigPath, "config", "", "config file path (default: user config dir)")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "show assignments without writing settings")
	applyCmd.Flags().BoolVar(&applyOverwrite, "overwrite", false, "reassign workspaces that already have colours")
}

// runApply executes the apply command.
func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(applyConfigPath)
	if err != nil {
		return err
	}
	if len(cfg.Colours) == 0 {
		return fmt.Errorf("config has no colours; run 'tintbar generate --save-config' first")
	}

	dirs := workspace.Dirs(cfg.ParentDirectories)
	if len(dirs) == 0 {
		return fmt.Errorf("no workspaces found under %v", cfg.ParentDirectories)
	}
	logger.Debug("scanned workspaces", "count", len(dirs))

	used := usedPairs(dirs)
	preview := stdoutIsTerminal()
	rng := colour.NewRand()

	for _, dir := range dirs {
		name := workspace.Name(dir)

		if _, has := workspace.Colour(dir); has && !applyOverwrite {
			logger.Debug("workspace already coloured, skipping", "workspace", name)
			continue
		}

		pick, ok := pickUnused(cfg.Colours, used, rng)
		if !ok {
			color.New(color.FgYellow).Fprintf(os.Stderr,
				"Warning: no unused colours left for %s and later workspaces\n", name)
			break
		}
		used[normaliseOrKeep(pick.Pair())] = dir

		line := fmt.Sprintf("%-25s %s (%s, %s)", name, pick.Name, pick.Background, pick.Foreground)
		if preview {
			if bg, err := colour.ParseHex(pick.Background); err == nil {
				fg, _ := colour.ParseHex(pick.Foreground)
				line = colour.PairPreview(bg, fg, "COLOUR PREVIEW") + " " + line
			}
		}

		if applyDryRun {
			fmt.Printf("would apply: %s\n", line)
			continue
		}

		if err := workspace.Apply(dir, pick.Pair()); err != nil {
			return fmt.Errorf("failed to apply colours to %s: %w", name, err)
		}
		fmt.Printf("applied: %s\n", line)
	}

	return nil
}

// usedPairs collects the normalised colour pairs already applied across the
// given workspaces, mapped to the workspace using them.
func usedPairs(dirs []string) map[colour.Pair]string {
	used := make(map[colour.Pair]string)
	for _, dir := range dirs {
		if pair, ok := workspace.Colour(dir); ok {
			used[normaliseOrKeep(pair)] = dir
		}
	}
	return used
}

// normaliseOrKeep canonicalises hex case so pairs compare reliably across
// config files and settings written by other tools. Unparseable values are
// kept as-is; they can never equal a normalised pair.
func normaliseOrKeep(pair colour.Pair) colour.Pair {
	bg, err := colour.ParseHex(pair.Background)
	if err != nil {
		return pair
	}
	fg, err := colour.ParseHex(pair.Foreground)
	if err != nil {
		return pair
	}
	return colour.Pair{Background: bg.Hex(), Foreground: fg.Hex()}
}

// pickUnused selects a random configured colour whose pair is not yet in use.
func pickUnused(colours []config.NamedColour, used map[colour.Pair]string, rng *mathrand.Rand) (config.NamedColour, bool) {
	var available []config.NamedColour
	for _, c := range colours {
		if _, taken := used[normaliseOrKeep(c.Pair())]; !taken {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		return config.NamedColour{}, false
	}
	return available[rng.IntN(len(available))], true
}
