package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Config{}, *cfg)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	content := "app: my_tool\ndescription: Does things\nforce: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "my_tool", cfg.App)
	assert.Equal(t, "Does things", cfg.Description)
	assert.True(t, cfg.Force)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, filepath.Join(dir, FileName), cfg.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("app: from_file\n"), 0644))

	t.Setenv("TELETYPE_APP", "from_env")
	t.Setenv("TELETYPE_NO_COLOR", "true")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.App)
	assert.True(t, cfg.NoColor)
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("app: [unclosed\n"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), FileName)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	err := Save(dir, &Config{App: "my_tool", NoColor: true, File: "ignored"})
	require.NoError(t, err)

	data, err := os.ReadFile(Path(dir))
	require.NoError(t, err)
	assert.Equal(t, "app: my_tool\nno_color: true\n", string(data))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "my_tool", cfg.App)
	assert.True(t, cfg.NoColor)
}
