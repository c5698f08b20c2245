package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tintbar/internal/colour"
	"github.com/jmylchreest/tintbar/internal/config"
	"github.com/jmylchreest/tintbar/internal/workspace"
)

var listConfigPath string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured colours and their assignments",
	Long: `List the colour pairs in the config pool, with a preview of each and the
workspace currently using it, if any.

Examples:
  tintbar list
  tintbar list --config ./config.json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listConfigPath, "config", "", "config file path (default: user config dir)")
}

// runList executes the list command.
func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(listConfigPath)
	if err != nil {
		return err
	}
	if len(cfg.Colours) == 0 {
		fmt.Println("No colours configured.")
		return nil
	}

	used := usedPairs(workspace.Dirs(cfg.ParentDirectories))
	preview := stdoutIsTerminal()

	fmt.Printf("Available colours (total: %d):\n", len(cfg.Colours))
	for i, c := range cfg.Colours {
		line := fmt.Sprintf("%2d. %-12s (%s, %s)", i+1, c.Name, c.Background, c.Foreground)
		if preview {
			if bg, err := colour.ParseHex(c.Background); err == nil {
				fg, _ := colour.ParseHex(c.Foreground)
				line = fmt.Sprintf("%2d. %s %-12s (%s, %s)",
					i+1, colour.PairPreview(bg, fg, "COLOUR PREVIEW"), c.Name, c.Background, c.Foreground)
			}
		}
		if dir, taken := used[normaliseOrKeep(c.Pair())]; taken {
			line += fmt.Sprintf("  in use by %s", workspace.Name(dir))
		}
		fmt.Println(line)
	}

	return nil
}
