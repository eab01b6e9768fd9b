package cmd

import (
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:         "info",
	Short:       "Show the camera model",
	Annotations: cameraCommand,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Text mode already printed the model during the preflight.
		if !settings.JSON {
			return nil
		}
		info, err := api.GetInfo(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), info)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
