package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thomas-vilte/issuemate/internal/config"
)

func TestConfigShowCommand(t *testing.T) {
	cfg, translations, _ := setupConfigTest(t)
	cfg.TemplatesDir = "/tmp/templates"
	cfg.ActiveVCSProvider = "github"
	cfg.VCSConfigs = map[string]config.VCSConfig{
		"github": {Provider: "github", Owner: "acme", Repo: "widgets", Token: "ghp_secret"},
	}
	cfg.AIConfig = config.AIConfig{
		ActiveAI: config.AIGemini,
		Models:   map[config.AI]config.Model{config.AIGemini: config.DefaultModelForAI(config.AIGemini)},
	}
	cfg.AIProviders = map[string]config.AIProviderConfig{
		"gemini": {APIKey: "api_secret"},
	}

	app := newConfigApp(cfg, translations)
	err := app.Run(context.Background(), []string{"issuemate", "config", "show"})
	assert.NoError(t, err)
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{name: "empty secret", secret: "", want: "(not set)"},
		{name: "short secret", secret: "abcd", want: "****"},
		{name: "long secret keeps a prefix", secret: "ghp_1234567890", want: "ghp_****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maskSecret(tt.secret))
		})
	}
}
