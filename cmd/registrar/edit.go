package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/registrar/internal/logging"
	"github.com/mesh-intelligence/registrar/internal/paths"
	"github.com/mesh-intelligence/registrar/internal/tui"
	"github.com/mesh-intelligence/registrar/pkg/sqlite"
)

func (c *cli) newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive record editor",
		Long: `Edit opens a terminal editor over every table. Logs go to
<data-dir>/registrar.log while the editor owns the screen.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := c.resolveDataDir()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dataDir, 0o755); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}
			logFile, err := os.OpenFile(paths.LogFile(dataDir), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer logFile.Close()

			// The terminal belongs to the editor; every logger writes to the file.
			c.logger = logging.New(logFile, c.level(), c.cfg.GetString(cfgKeyLogFormat))

			return c.withBackend(func(b sqlite.Backend) error {
				return tui.Run(b, c.logger)
			})
		},
	}
}
