package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadPlatformSelectsSection(t *testing.T) {
	path := writeConfig(t, `{
		"Linux": {
			"launcher_base": "/opt/menus",
			"shell": {"command": "bash -c {cmd}", "arg_flags": {}}
		},
		"Windows": {"launcher_base": "C:\\menus"}
	}`)

	cfg, err := LoadPlatform(path, "linux")
	require.NoError(t, err)
	assert.Equal(t, "/opt/menus", cfg.Base)

	spec, ok := cfg.Command("shell")
	require.True(t, ok)
	assert.Equal(t, "bash -c {cmd}", spec.Command)

	_, ok = cfg.Command("unknown")
	assert.False(t, ok)
}

func TestLoadPlatformLowercaseSection(t *testing.T) {
	path := writeConfig(t, `{"linux": {"launcher_base": "menus"}}`)
	cfg, err := LoadPlatform(path, "linux")
	require.NoError(t, err)
	assert.Equal(t, "menus", cfg.Base)
	assert.Empty(t, cfg.Commands)
}

func TestLoadPlatformMissingSection(t *testing.T) {
	path := writeConfig(t, `{"Linux": {"launcher_base": "menus"}}`)
	_, err := LoadPlatform(path, "darwin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "darwin")
}

func TestLoadToleratesCommentsAndTrailingCommas(t *testing.T) {
	path := writeConfig(t, `{
		// deployment-wide settings
		"linux": {
			"launcher_base": "/srv/menus",
			"caqtdm": {
				"command": "caqtdm {panel} {macro}",
				"arg_flags": {"macro": "-macro "},
			},
		},
	}`)

	cfg, err := LoadPlatform(path, "linux")
	require.NoError(t, err)
	spec, ok := cfg.Command("caqtdm")
	require.True(t, ok)
	assert.Equal(t, "-macro ", spec.ArgFlags["macro"])
}

func TestLoadRejectsUnbalancedTemplate(t *testing.T) {
	path := writeConfig(t, `{"linux": {"bad": {"command": "tool {arg"}}}`)
	_, err := LoadPlatform(path, "linux")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `custom type "bad"`)
}

func TestLoadRejectsMissingCommandTemplate(t *testing.T) {
	path := writeConfig(t, `{"linux": {"bad": {"arg_flags": {}}}}`)
	_, err := LoadPlatform(path, "linux")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mandatory")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadPlatform(filepath.Join(t.TempDir(), "absent.json"), "linux")
	require.Error(t, err)
}
