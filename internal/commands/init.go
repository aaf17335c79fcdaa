package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bankstmt-dev/bankstmt/internal/config"
)

// configFileName is the workspace configuration file.
const configFileName = "bankstmt.yaml"

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a statement parsing workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, cmd.OutOrStdout())
		},
	}
}

func runInit(dir string, out io.Writer) error {
	cfg := config.Default()

	for _, d := range []string{cfg.Dirs.Statements, cfg.Dirs.Results, cfg.Dirs.Failures} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, configFileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(out, "Initialized bankstmt workspace at %s\n", dir)
	return nil
}
