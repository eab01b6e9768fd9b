package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"omd-cli/internal/logging"
)

// Configuration keys shared by the config file, OMD_* env vars and flags.
const (
	KeyIP       = "ip"
	KeyPowerOff = "poweroff"
	KeyOut      = "out"
	KeyForce    = "force"
	KeyTimeout  = "timeout"
	KeyLogLevel = "log_level"
	KeyJSON     = "json"
)

const (
	DefaultIP       = "192.168.0.10"
	DefaultOut      = "."
	DefaultLogLevel = logging.LevelWarn

	envPrefix  = "OMD"
	configName = ".omd-cli"
)

// Settings is the resolved configuration handed to the camera client.
type Settings struct {
	IP        string
	PowerOff  bool
	OutputDir string
	Force     bool
	Timeout   time.Duration
	LogLevel  string
	JSON      bool
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyIP, DefaultIP)
	v.SetDefault(KeyPowerOff, false)
	v.SetDefault(KeyOut, DefaultOut)
	v.SetDefault(KeyForce, false)
	v.SetDefault(KeyTimeout, time.Duration(0))
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyJSON, false)
}

// InitConfig reads in config file and ENV variables if set.
// A missing default config file is not an error; a missing explicit one is.
func InitConfig(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			// Search config in home directory with name ".omd-cli" (without extension).
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(configName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("cannot read config: %w", err)
	}
	return nil
}

// Load resolves and validates the settings held by v.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		IP:        strings.TrimSpace(v.GetString(KeyIP)),
		PowerOff:  v.GetBool(KeyPowerOff),
		OutputDir: v.GetString(KeyOut),
		Force:     v.GetBool(KeyForce),
		Timeout:   v.GetDuration(KeyTimeout),
		LogLevel:  v.GetString(KeyLogLevel),
		JSON:      v.GetBool(KeyJSON),
	}

	if s.IP == "" {
		return s, errors.New("camera ip must not be empty")
	}
	if s.OutputDir == "" {
		s.OutputDir = DefaultOut
	}
	if s.Timeout < 0 {
		return s, fmt.Errorf("timeout must not be negative, got %s", s.Timeout)
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return s, err
	}

	return s, nil
}
