package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"omd-cli/internal/client"
	"omd-cli/internal/config"
	"omd-cli/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// State shared by camera commands, filled in by the info preflight.
var (
	settings config.Settings
	logger   *slog.Logger
	api      *client.OlympusClient
)

// needsCamera marks commands that talk to the camera and therefore run the
// info preflight and the optional power-off.
const needsCamera = "camera"

var cameraCommand = map[string]string{needsCamera: "true"}

// errPreflight is returned after the preflight failure was already reported.
var errPreflight = errors.New("camera info preflight failed")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "omd-cli",
	Short: "A CLI for downloading images from an Olympus OM-D camera over Wi-Fi",
	Long: `Query the camera, list the images on its card, download them and
power the camera off through its built-in HTTP interface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[needsCamera] == "" {
			return nil
		}
		return setupCameraClient(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[needsCamera] == "" {
			return nil
		}
		if settings.PowerOff && cmd != poweroffCmd {
			if err := api.PowerOff(cmd.Context()); err != nil {
				return fmt.Errorf("power off: %w", err)
			}
			logger.Info("Camera powered off")
		}
		if !settings.JSON {
			fmt.Fprintln(cmd.OutOrStdout(), "Done.")
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errPreflight) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// setupCameraClient resolves the configuration, builds the client and runs
// the mandatory camera info preflight.
func setupCameraClient(cmd *cobra.Command) error {
	if err := config.InitConfig(viper.GetViper(), cfgFile); err != nil {
		return err
	}

	s, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	if verbose {
		s.LogLevel = logging.LevelDebug
	}

	log, err := logging.New(s.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	settings, logger = s, log
	api = client.New(client.ClientConfig{IP: s.IP, Timeout: s.Timeout}, log)

	info, err := api.GetInfo(cmd.Context())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Failed to get camera info: %v\n", err)
		return errPreflight
	}

	if !s.JSON {
		fmt.Fprintf(cmd.OutOrStdout(), "Camera found: %s\n", info.Model)
	}
	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.omd-cli.yaml)")
	pf.Bool("json", false, "Output results as JSON")
	pf.String("ip", config.DefaultIP, "Camera IP address")
	pf.Bool("poweroff", false, "Power-off camera at the end")
	pf.Duration("timeout", 0, "HTTP timeout per request (0 means none)")
	pf.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Shortcut for --log-level debug")

	_ = viper.BindPFlag(config.KeyJSON, pf.Lookup("json"))
	_ = viper.BindPFlag(config.KeyIP, pf.Lookup("ip"))
	_ = viper.BindPFlag(config.KeyPowerOff, pf.Lookup("poweroff"))
	_ = viper.BindPFlag(config.KeyTimeout, pf.Lookup("timeout"))
	_ = viper.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
}
