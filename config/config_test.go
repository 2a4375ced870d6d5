package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	PubSub struct {
		Provider string `yaml:"provider"`
		TopicID  string `yaml:"topicId"`
	} `yaml:"pubsub"`
	Mail struct {
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"mail"`
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.yaml"), []byte(
		"pubsub:\n  provider: inline\n  topicId: fanout\nmail:\n  timeout: 3s\n",
	), 0o600))

	t.Chdir(dir)
	t.Setenv("PUBSUB_PROVIDER", "local")

	cfg, err := LoadWithEnv[sampleConfig]("sample")
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.PubSub.Provider)
	assert.Equal(t, "fanout", cfg.PubSub.TopicID)
	assert.Equal(t, 3*time.Second, cfg.Mail.Timeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[sampleConfig]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultMailTimeout, cfg.Mail.Timeout)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
	assert.Equal(t, defaultMigrationsPath, cfg.Migrations.Path)
	assert.Empty(t, cfg.PubSub.Provider)
}
