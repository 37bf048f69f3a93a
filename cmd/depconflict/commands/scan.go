package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [dir]",
		Short: "Scan a directory tree for dependency version conflicts",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.runScan,
	}
}

func (c *CLI) runScan(cmd *cobra.Command, args []string) error {
	_, err := c.app.Scan(cmd.Context(), targetDir(args), scanOptions(cmd))
	return err
}
