package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scusemua/alert-view/m/v2/src/domain"
	"github.com/scusemua/alert-view/m/v2/src/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
address: ":9090"
default-size: medium
theme:
  --lumo-error-color: "#cc0000"
alerts:
  - title: Maintenance tonight
    level: warning
    show-icon: true
    permanent: true
  - title: Plain
`)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", conf.Address)
	assert.Equal(t, "Alerts", conf.Title)
	assert.Equal(t, "medium", conf.DefaultSize)
	assert.Equal(t, "#cc0000", conf.Theme["--lumo-error-color"])

	require.Len(t, conf.Alerts, 2)
	assert.Equal(t, domain.Attributes{
		Title:     "Maintenance tonight",
		Level:     domain.LevelWarning,
		Size:      "medium",
		ShowIcon:  true,
		Permanent: true,
	}, conf.Alerts[0])
	assert.Equal(t, domain.LevelInfo, conf.Alerts[1].Level)

	provider, err := conf.ThemeProvider()
	require.NoError(t, err)
	assert.Contains(t, provider.Stylesheet(), "#cc0000")
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "alerts: [\n"))
		assert.Error(t, err)
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := Load(writeConfig(t, "alerts:\n  - level: fatal\n"))
		assert.ErrorIs(t, err, domain.ErrUnknownLevel)
	})

	t.Run("unknown theme token", func(t *testing.T) {
		_, err := Load(writeConfig(t, "theme:\n  --my-color: red\n"))
		assert.ErrorIs(t, err, theme.ErrUnknownToken)
	})

	t.Run("empty address", func(t *testing.T) {
		_, err := Load(writeConfig(t, "address: \"\"\n"))
		assert.ErrorIs(t, err, ErrEmptyAddress)
	})
}

func TestDefaultConfigurationIsValid(t *testing.T) {
	conf := GetConfiguration()
	require.NoError(t, conf.Validate())
	assert.Contains(t, conf.String(), `"address":":8000"`)
}
