package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Origin  string `json:"origin"`
	Timeout int    `json:"timeout"`
}

func TestReadConfigMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "scraper.json5"),
		[]byte(`{origin: "https://wiki.supercombo.gg", timeout: 30}`),
		0644,
	)
	require.NoError(t, err)
	err = os.WriteFile(
		filepath.Join(dir, "scraper.local.json5"),
		[]byte(`{timeout: 5}`),
		0644,
	)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "scraper.json5"))
	require.NoError(t, err)
	require.Equal(t, "https://wiki.supercombo.gg", config.Origin)
	require.Equal(t, 5, config.Timeout)
}

func TestReadConfigNotFound(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "missing.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadRecursivelyFindsParentConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	err := os.WriteFile(
		filepath.Join(root, "scraper.json5"),
		[]byte(`{origin: "https://wiki.supercombo.gg", timeout: 30}`),
		0644,
	)
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	defer func() {
		require.NoError(t, os.Chdir(cwd))
	}()

	config, err := ReadRecursively[testConfig]("scraper.json5")
	require.NoError(t, err)
	require.Equal(t, "https://wiki.supercombo.gg", config.Origin)
	require.Equal(t, 30, config.Timeout)
}
