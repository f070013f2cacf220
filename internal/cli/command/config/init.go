package config

import (
	"context"
	"os"

	"github.com/thomas-vilte/issuemate/internal/config"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/thomas-vilte/issuemate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_init.usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			if _, err := os.Stat(cfg.PathFile); err == nil {
				ui.PrintInfo(t.GetMessage("config_init.already", 0, map[string]interface{}{
					"Path": cfg.PathFile,
				}))
				return nil
			}

			if err := saveConfig(t, cfg); err != nil {
				return err
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("config_init.created", 0, map[string]interface{}{
				"Path": cfg.PathFile,
			}))
			return nil
		},
	}
}
