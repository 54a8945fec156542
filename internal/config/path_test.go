package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("MODABER_TEST_DIR", "/opt/data")

	home, err := filepath.Abs(t.TempDir())
	require.NoError(t, err)
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty stays empty", in: "", want: ""},
		{name: "absolute untouched", in: "/var/lib/modaber.db", want: "/var/lib/modaber.db"},
		{name: "bare tilde", in: "~", want: home},
		{name: "tilde prefix", in: "~/modaber.db", want: filepath.Join(home, "modaber.db")},
		{name: "env var", in: "$MODABER_TEST_DIR/modaber.db", want: "/opt/data/modaber.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestDataPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	assert.Equal(t, "/xdg/data/modaber/modaber.db", DataPath("modaber.db"))
}

func TestDataPathFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".local/share/modaber/modaber.db"), DataPath("modaber.db"))
}

func TestConfigDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	assert.Equal(t, "/xdg/config/modaber", ConfigDir())
}
