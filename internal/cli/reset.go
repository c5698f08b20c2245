package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tintbar/internal/config"
	"github.com/jmylchreest/tintbar/internal/workspace"
)

var (
	resetConfigPath string
	resetAll        bool
	resetDryRun     bool
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset [workspace-dir...]",
	Short: "Remove colour customisations from workspaces",
	Long: `Remove the title bar colour customisations from the given workspace
directories, or from every configured workspace with --all. Other settings
in each workspace are left untouched.

Examples:
  tintbar reset ~/projects/myapp
  tintbar reset --all --dry-run`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().StringVar(&resetConfigPath, "config", "", "config file path (default: user config dir)")
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "reset every workspace under the configured parent directories")
	resetCmd.Flags().BoolVar(&resetDryRun, "dry-run", false, "show what would be reset without writing")
}

// runReset executes the reset command.
func runReset(cmd *cobra.Command, args []string) error {
	dirs := args
	if resetAll {
		cfg, err := config.Load(resetConfigPath)
		if err != nil {
			return err
		}
		dirs = append(dirs, workspace.Dirs(cfg.ParentDirectories)...)
	}
	if len(dirs) == 0 {
		return fmt.Errorf("no workspaces given; pass directories or use --all")
	}

	for _, dir := range dirs {
		dir = workspace.ExpandHome(dir)
		name := workspace.Name(dir)

		if _, has := workspace.Colour(dir); !has {
			logger.Debug("workspace has no colours", "workspace", name)
			continue
		}

		if resetDryRun {
			fmt.Printf("would reset: %s\n", name)
			continue
		}

		if err := workspace.Reset(dir); err != nil {
			return fmt.Errorf("failed to reset %s: %w", name, err)
		}
		fmt.Printf("reset: %s\n", name)
	}

	return nil
}
