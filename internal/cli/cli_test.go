package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/ryanrauch/restaurant-ai-landing/internal/storage"
	"github.com/ryanrauch/restaurant-ai-landing/internal/version"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-dotenv"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func cleanEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONTENT_FILE", "BRAND_NAME", "CONTACT_EMAIL", "DEMO_NUMBER", "BOOKING_URL",
		"STORAGE_ENDPOINT", "STORAGE_ACCESS_KEY", "STORAGE_SECRET_KEY", "STORAGE_BUCKET_SITE",
		"SERVER_PORT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("LOG_LEVEL", "error")
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "export", "publish", "version"} {
		assert.Contains(t, names, want)
	}

	flag := cmd.PersistentFlags().Lookup("no-dotenv")
	require.NotNil(t, flag)
	assert.Equal(t, "bool", flag.Value.Type())
}

func TestRootCommand_Help(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Serve, export and publish")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "vtable "+version.Version)
	assert.Contains(t, out, "Go version:")
	assert.Contains(t, out, "Module:     "+version.Module)
}

func TestVersion_JSON(t *testing.T) {
	out, err := run(t, "version", "--json")
	require.NoError(t, err)

	var info version.VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version.Info(), info)
}

func TestExport(t *testing.T) {
	cleanEnv(t)
	dir := filepath.Join(t.TempDir(), "site")

	out, err := run(t, "export", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "index.html")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "to "+dir))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "VTable.ai | Smart Reservations")

	_, err = os.Stat(filepath.Join(dir, "static", "styles.css"))
	assert.NoError(t, err)
}

func TestExport_BrandOverride(t *testing.T) {
	cleanEnv(t)
	t.Setenv("BRAND_NAME", "TableTalk")
	dir := t.TempDir()

	_, err := run(t, "export", "-o", dir)
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "TableTalk – AI Phone Host for Restaurants")
}

func TestExport_BadContentFile(t *testing.T) {
	cleanEnv(t)
	t.Setenv("CONTENT_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := run(t, "export", "--out", t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPublish_StorageDisabled(t *testing.T) {
	cleanEnv(t)

	_, err := run(t, "publish", "--dir", t.TempDir())
	assert.ErrorIs(t, err, storage.ErrDisabled)
}

func TestPublish_Flags(t *testing.T) {
	cmd, _, err := NewRootCommand().Find([]string{"publish"})
	require.NoError(t, err)

	for name, typ := range map[string]string{
		"dir":         "string",
		"prefix":      "string",
		"concurrency": "int",
		"skip-export": "bool",
	} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, "--%s", name)
		assert.Equal(t, typ, flag.Value.Type())
	}
}

func TestServeOptions_Validate(t *testing.T) {
	cleanEnv(t)
	assert.NoError(t, fx.ValidateApp(serveOptions()))
}
