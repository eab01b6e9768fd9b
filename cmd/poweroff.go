package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var poweroffCmd = &cobra.Command{
	Use:         "poweroff",
	Short:       "Power the camera off",
	Annotations: cameraCommand,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.PowerOff(cmd.Context()); err != nil {
			return fmt.Errorf("power off: %w", err)
		}
		if !settings.JSON {
			fmt.Fprintln(cmd.OutOrStdout(), "Camera powered off.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(poweroffCmd)
}
