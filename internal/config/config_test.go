package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("creates default config on first run", func(t *testing.T) {
		tmpDir := t.TempDir()

		cfg, err := LoadConfig(tmpDir)

		require.NoError(t, err)
		assert.Equal(t, "en", cfg.Language)
		assert.True(t, cfg.UseEmoji)
		assert.Equal(t, filepath.Join(tmpDir, ".issuemate", "config.json"), cfg.PathFile)
		assert.FileExists(t, cfg.PathFile)
	})

	t.Run("loads an existing config file directly", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")

		stored := &Config{
			Language:          "es",
			UseEmoji:          false,
			ActiveVCSProvider: "github",
			VCSConfigs: map[string]VCSConfig{
				"github": {Provider: "github", Owner: "thomas-vilte", Repo: "issuemate", Token: "tok"},
			},
		}
		data, err := json.MarshalIndent(stored, "", "  ")
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(configPath, data, 0644))

		cfg, err := LoadConfig(configPath)

		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, "github", cfg.ActiveVCSProvider)
		assert.Equal(t, "thomas-vilte", cfg.VCSConfigs["github"].Owner)
		assert.Equal(t, configPath, cfg.PathFile)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte("{malformed json"), 0644))

		_, err := LoadConfig(configPath)

		assert.Error(t, err)
	})

	t.Run("rejects unsupported VCS provider", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")

		data, err := json.Marshal(&Config{Language: "en", ActiveVCSProvider: "bitbucket"})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(configPath, data, 0644))

		_, err = LoadConfig(configPath)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "bitbucket")
	})

	t.Run("rejects unsupported AI provider", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")

		stored := &Config{Language: "en", AIConfig: AIConfig{ActiveAI: "skynet"}}
		data, err := json.Marshal(stored)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(configPath, data, 0644))

		_, err = LoadConfig(configPath)

		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("round-trips through load", func(t *testing.T) {
		tmpDir := t.TempDir()

		cfg, err := LoadConfig(tmpDir)
		require.NoError(t, err)

		cfg.Language = "es"
		cfg.TemplatesDir = "docs/issue_templates"
		cfg.VCSConfigs = map[string]VCSConfig{
			"github": {Provider: "github", Owner: "thomas-vilte", Repo: "issuemate"},
		}
		require.NoError(t, SaveConfig(cfg))

		loaded, err := LoadConfig(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, "es", loaded.Language)
		assert.Equal(t, "docs/issue_templates", loaded.TemplatesDir)
		assert.Equal(t, "issuemate", loaded.VCSConfigs["github"].Repo)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		err := SaveConfig(&Config{Language: ""})
		assert.Error(t, err)
	})

	t.Run("rejects missing path", func(t *testing.T) {
		err := SaveConfig(&Config{Language: "en"})
		assert.Error(t, err)
	})
}

func TestActiveVCS(t *testing.T) {
	t.Run("defaults to github", func(t *testing.T) {
		t.Setenv("ISSUEMATE_GITHUB_TOKEN", "")

		cfg := &Config{Language: "en"}
		vcsCfg, hasToken := cfg.ActiveVCS()

		assert.Equal(t, "github", vcsCfg.Provider)
		assert.False(t, hasToken)
	})

	t.Run("environment token overrides stored token", func(t *testing.T) {
		t.Setenv("ISSUEMATE_GITHUB_TOKEN", "env-token")

		cfg := &Config{
			Language:          "en",
			ActiveVCSProvider: "github",
			VCSConfigs:        map[string]VCSConfig{"github": {Token: "stored-token"}},
		}
		vcsCfg, hasToken := cfg.ActiveVCS()

		assert.True(t, hasToken)
		assert.Equal(t, "env-token", vcsCfg.Token)
	})

	t.Run("stored token used when env unset", func(t *testing.T) {
		t.Setenv("ISSUEMATE_GITHUB_TOKEN", "")

		cfg := &Config{
			Language:          "en",
			ActiveVCSProvider: "github",
			VCSConfigs:        map[string]VCSConfig{"github": {Token: "stored-token", Owner: "o", Repo: "r"}},
		}
		vcsCfg, hasToken := cfg.ActiveVCS()

		assert.True(t, hasToken)
		assert.Equal(t, "stored-token", vcsCfg.Token)
		assert.Equal(t, "o", vcsCfg.Owner)
	})
}

func TestModelsForAI(t *testing.T) {
	assert.NotEmpty(t, ModelsForAI(AIGemini))
	assert.Empty(t, ModelsForAI(AIOpenAI))
	assert.Equal(t, ModelGeminiV25Pro, DefaultModelForAI(AIGemini))
	assert.Equal(t, Model(""), DefaultModelForAI(AIOpenAI))
}
