package config

import (
	"fmt"
	"os"

	"github.com/thomas-vilte/issuemate/internal/config"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/thomas-vilte/issuemate/internal/ui"
	"github.com/urfave/cli/v3"
)

// ConfigCommandFactory is the factory for the config command family.
type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

// CreateCommand creates the config command with its subcommands.
func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config.usage", 0, nil),
		Commands: []*cli.Command{
			c.newInitCommand(t, cfg),
			c.newShowCommand(t, cfg),
			c.newSetLangCommand(t, cfg),
			c.newSetVCSCommand(t, cfg),
			c.newSetAIKeyCommand(t, cfg),
			c.newSetEmojiCommand(t, cfg),
		},
	}
}

func saveConfig(t *i18n.Translations, cfg *config.Config) error {
	if err := config.SaveConfig(cfg); err != nil {
		msg := t.GetMessage("config_save.error_saving_config", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		ui.PrintError(os.Stdout, msg)
		return fmt.Errorf("%s", msg)
	}
	return nil
}
