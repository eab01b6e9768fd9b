package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"omd-cli/pkg/models"
)

var listCmd = &cobra.Command{
	Use:         "list",
	Short:       "List images stored on the camera",
	Long:        `Print the name of every image in the camera's /DCIM/100OLYMP folder, in camera order.`,
	Annotations: cameraCommand,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := api.ListImages(cmd.Context())
		if err != nil {
			return fmt.Errorf("cannot list images: %w", err)
		}

		// --- JSON OUTPUT ---
		if settings.JSON {
			entries := make([]models.ImageEntry, 0, len(records))
			for _, r := range records {
				e, err := models.ParseImageEntry(r)
				if err != nil {
					logger.Warn("Skip unparsable record", slog.String("record", r), slog.Any("error", err))
					continue
				}
				entries = append(entries, e)
			}
			return printJSON(cmd.OutOrStdout(), entries)
		}
		// -------------------

		out := cmd.OutOrStdout()
		for _, r := range records {
			name, ok := models.FileNameOf(r)
			if !ok {
				logger.Warn("Skip unparsable record", slog.String("record", r))
				continue
			}
			fmt.Fprintln(out, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
