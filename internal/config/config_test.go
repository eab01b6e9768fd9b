package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	v := viper.New()
	require.NoError(t, InitConfig(v, ""))

	s, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, Settings{
		IP:        DefaultIP,
		OutputDir: DefaultOut,
		LogLevel:  DefaultLogLevel,
	}, s)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "omd.yaml")
	content := `ip: 10.0.0.7
out: /srv/photos
force: true
poweroff: true
timeout: 30s
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	require.NoError(t, InitConfig(v, path))

	s, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, "10.0.0.7", s.IP)
	require.Equal(t, "/srv/photos", s.OutputDir)
	require.True(t, s.Force)
	require.True(t, s.PowerOff)
	require.Equal(t, 30*time.Second, s.Timeout)
	require.Equal(t, "debug", s.LogLevel)
}

func TestLoadFromHomeFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".omd-cli.yaml"), []byte("ip: 10.0.0.9\n"), 0o644))

	v := viper.New()
	require.NoError(t, InitConfig(v, ""))

	s, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, "10.0.0.9", s.IP)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OMD_IP", "172.16.0.2")
	t.Setenv("OMD_LOG_LEVEL", "info")

	v := viper.New()
	require.NoError(t, InitConfig(v, ""))

	s, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, "172.16.0.2", s.IP)
	require.Equal(t, "info", s.LogLevel)
}

func TestInitConfigMissingExplicitFile(t *testing.T) {
	v := viper.New()
	err := InitConfig(v, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  any
	}{
		{"empty ip", KeyIP, " "},
		{"negative timeout", KeyTimeout, "-1s"},
		{"unknown log level", KeyLogLevel, "chatty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tc.key, tc.val)

			_, err := Load(v)
			require.Error(t, err)
		})
	}
}
