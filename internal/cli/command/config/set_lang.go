package config

import (
	"context"
	"fmt"
	"os"

	"github.com/thomas-vilte/issuemate/internal/config"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/thomas-vilte/issuemate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-lang",
		Usage: t.GetMessage("config_set_lang.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lang",
				Aliases:  []string{"l"},
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.String("lang")
			if lang != "en" && lang != "es" {
				msg := t.GetMessage("config_set_lang.invalid", 0, map[string]interface{}{
					"Lang": lang,
				})
				ui.PrintError(os.Stdout, msg)
				return fmt.Errorf("%s", msg)
			}

			cfg.Language = lang
			if err := saveConfig(t, cfg); err != nil {
				return err
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("config_set_lang.updated", 0, map[string]interface{}{
				"Lang": lang,
			}))
			return nil
		},
	}
}
