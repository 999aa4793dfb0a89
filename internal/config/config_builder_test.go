package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty layer list.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no layers returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple layers
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers,
		&StructuredConfig{App: App{SecretHashKey: "hash_secret"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "hash_secret", cfg.App.SecretHashKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// TestBuild_FirstSourceWins verifies the merge priority: a field already set
// by an earlier source is not overwritten by a later one.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers,
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://from-env"}},
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://from-json", Token: "json-token"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://from-env", cfg.Adapter.BaseURL)
	assert.Equal(t, "json-token", cfg.Adapter.Token)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("ADAPTER_BASE_URL", "https://env.example.com")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.layers, 1)
	assert.Equal(t, "env-issuer", b.layers[0].App.TokenIssuer)
	assert.Equal(t, "https://env.example.com", b.layers[0].Adapter.BaseURL)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_AppendsParsedLayer verifies that the injected flag set is
// parsed against the given arguments and recorded as a layer.
func TestWithFlags_AppendsParsedLayer(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(newTestFlagSet(), []string{"-base-url", "https://flags.example.com", "-c", "/flags/config.json"})

	require.Len(t, b.layers, 1)
	assert.Equal(t, "https://flags.example.com", b.layers[0].Adapter.BaseURL)
	assert.Equal(t, "/flags/config.json", b.layers[0].JSONFilePath)
}

// TestWithFlags_FeedsPathToWithJSON verifies that a -c flag parsed through
// the builder is picked up by the subsequent withJSON step.
func TestWithFlags_FeedsPathToWithJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "from-json"
	path := writeTempJSONConfig(t, payload)

	cfg, err := newConfigBuilder().
		withFlags(newTestFlagSet(), []string{"-c", path, "-token-issuer", "flag-issuer"}).
		withJSON().
		build()
	require.NoError(t, err)
	// the flag layer comes first, so its issuer wins over the JSON file
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no layer has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.layers, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "json-issuer"
	payload.Adapter.BaseURL = "https://json.example.com"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.layers = append(b.layers, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.layers, 2)
	assert.Equal(t, "json-issuer", b.layers[1].App.TokenIssuer)
	assert.Equal(t, "https://json.example.com", b.layers[1].Adapter.BaseURL)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.layers = append(b.layers,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.layers, 3)
	assert.Equal(t, "last-wins", b.layers[2].App.TokenIssuer)
}
