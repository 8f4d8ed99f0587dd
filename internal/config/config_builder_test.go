// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/go-acervo/models"
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

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields a
// fully defaulted configuration.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newTestBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, "config.yaml", cfg.Storage.Document.Path)
	assert.Equal(t, RecordsBackendFile, cfg.Storage.Records.Backend)
	assert.Equal(t, "user_data", cfg.Storage.Records.Dir)
	assert.Equal(t, ImagesBackendLocal, cfg.Storage.Images.Backend)
	assert.Equal(t, "user_images", cfg.Storage.Images.Dir)
	assert.Equal(t, "acervo", cfg.App.TokenIssuer)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadSize)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of a later config
// override the same fields of an earlier one.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:1111"}, App: App{Version: "keep"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:2222"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
	assert.Equal(t, "keep", cfg.App.Version)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{Records: Records{Backend: RecordsBackendPostgres}},
	})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_RejectsPlaceholderSignKey(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{TokenSignKey: models.DefaultCookieKey},
	})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_AppendsConfig(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")

	b := newTestBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
}

func TestWithEnv_InvalidValue(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	b := newTestBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newTestBuilder("-a", "localhost:9000", "-records-backend", "sqlite", "-d", "file:test.db").withFlags()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:9000", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, RecordsBackendSQLite, b.configs[0].Storage.Records.Backend)
	assert.Equal(t, "file:test.db", b.configs[0].Storage.Records.DSN)
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newTestBuilder("-unknown").withFlags()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.App.Version)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestFullChain_EnvFlagsJSON verifies the env -> flags -> json priority order.
func TestFullChain_EnvFlagsJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{
			"records": map[string]any{"dir": "/json/records"},
		},
	})

	t.Setenv("STORAGE_RECORDS_DIR", "/env/records")
	t.Setenv("STORAGE_IMAGES_DIR", "/env/images")
	t.Setenv("APP_VERSION", "env")

	cfg, err := newTestBuilder("-c", path, "-images-dir", "/flag/images").
		withEnv().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "/json/records", cfg.Storage.Records.Dir)
	assert.Equal(t, "/flag/images", cfg.Storage.Images.Dir)
	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, path, cfg.JSONFilePath)
}

// ── GetCLIConfig ──────────────────────────────────────────────────────────────

func TestGetCLIConfig_OverridesWin(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{
			"document": map[string]any{"path": "/json/config.yaml"},
			"records":  map[string]any{"dir": "/json/records"},
		},
	})

	cfg, err := GetCLIConfig(StructuredConfig{
		JSONFilePath: path,
		Storage:      Storage{Document: Document{Path: "/override/config.yaml"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "/override/config.yaml", cfg.Storage.Document.Path)
	assert.Equal(t, "/json/records", cfg.Storage.Records.Dir)
}

// ── client config ─────────────────────────────────────────────────────────────

func TestNewClientConfig(t *testing.T) {
	cfg, err := newTestBuilder("-s", "localhost:7070", "-log-file", "/tmp/acervo.log").withFlags().build()
	require.NoError(t, err)

	clientCfg, err := newClientConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "localhost:7070", clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/acervo.log", clientCfg.App.LogFile)
	assert.Equal(t, 10*time.Second, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, clientCfg.Workers.InvitePollInterval)
}

func TestNewClientConfig_Invalid(t *testing.T) {
	_, err := newClientConfig(&StructuredConfig{})
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
