package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"omd-cli/internal/client"
	"omd-cli/internal/config"
)

// Variables to hold flag values
var (
	firstImage string
	keepGoing  bool
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download images from the camera",
	Long: `Download every image from the camera into the output directory.
Existing files are skipped unless --force is given. With --first the
download starts at that file and everything listed before it is skipped.`,
	Example: `  omd-cli download --out ~/Pictures/omd
  omd-cli --poweroff download --first P5140042.JPG --force`,
	Annotations: cameraCommand,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := client.DownloadOptions{
			OutputDir: settings.OutputDir,
			First:     firstImage,
			Overwrite: settings.Force,
			KeepGoing: keepGoing,
		}
		if !settings.JSON {
			opts.Observer = &progressPrinter{w: cmd.OutOrStdout()}
		}

		report, err := api.DownloadImages(cmd.Context(), opts)

		if settings.JSON {
			if jerr := printJSON(cmd.OutOrStdout(), report); jerr != nil && err == nil {
				err = jerr
			}
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	f := downloadCmd.Flags()
	f.String("out", config.DefaultOut, "Output directory")
	f.StringVar(&firstImage, "first", "", "Start downloading from this file")
	f.Bool("force", false, "Download even if the local file exists")
	f.BoolVar(&keepGoing, "keep-going", false, "Continue with the next image when a transfer fails")

	_ = viper.BindPFlag(config.KeyOut, f.Lookup("out"))
	_ = viper.BindPFlag(config.KeyForce, f.Lookup("force"))
}
