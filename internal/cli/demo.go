package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/zoo/internal/demo"
)

// demoFileName is the document the demo writes inside the data directory.
const demoFileName = "zoo_data.json"

func newDemoCmd(e *env) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the sample zoo walkthrough",
		Long: "Build the sample zoo, let the animals sound off, save and reload it, then\n" +
			"list the staff and their duties. The registry document is not touched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := e.player()
			if err != nil {
				return err
			}

			if file == "" {
				dataDir, err := e.dataDir()
				if err != nil {
					return err
				}
				if err := os.MkdirAll(dataDir, 0o755); err != nil {
					return sysError(fmt.Errorf("create data directory: %w", err))
				}
				file = filepath.Join(dataDir, demoFileName)
			}

			if err := demo.Run(cmd.OutOrStdout(), player, file, e.logger); err != nil {
				return sysError(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "document to save and reload (default: <data-dir>/"+demoFileName+")")
	return cmd
}
