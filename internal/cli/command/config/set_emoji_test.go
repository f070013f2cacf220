package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/issuemate/internal/config"
	"github.com/thomas-vilte/issuemate/internal/ui"
)

func TestConfigSetEmojiCommand(t *testing.T) {
	t.Cleanup(func() { ui.SetEmojiEnabled(true) })

	t.Run("turns emoji off and on", func(t *testing.T) {
		cfg, translations, _ := setupConfigTest(t)
		app := newConfigApp(cfg, translations)

		require.NoError(t, app.Run(context.Background(), []string{"issuemate", "config", "set-emoji", "off"}))
		loaded, err := config.LoadConfig(cfg.PathFile)
		require.NoError(t, err)
		assert.False(t, loaded.UseEmoji)

		require.NoError(t, app.Run(context.Background(), []string{"issuemate", "config", "set-emoji", "on"}))
		loaded, err = config.LoadConfig(cfg.PathFile)
		require.NoError(t, err)
		assert.True(t, loaded.UseEmoji)
	})

	t.Run("rejects anything else", func(t *testing.T) {
		cfg, translations, _ := setupConfigTest(t)
		app := newConfigApp(cfg, translations)

		err := app.Run(context.Background(), []string{"issuemate", "config", "set-emoji", "maybe"})
		assert.Error(t, err)
	})
}
