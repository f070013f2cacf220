package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/issuemate/internal/config"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/urfave/cli/v3"
)

func setupConfigTest(t *testing.T) (*config.Config, *i18n.Translations, string) {
	t.Helper()

	tmpDir := t.TempDir()
	cfg := &config.Config{
		Language: "en",
		UseEmoji: true,
		PathFile: filepath.Join(tmpDir, "config.json"),
	}

	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	return cfg, translations, tmpDir
}

func newConfigApp(cfg *config.Config, translations *i18n.Translations) *cli.Command {
	return &cli.Command{
		Commands: []*cli.Command{NewConfigCommandFactory().CreateCommand(translations, cfg)},
	}
}
