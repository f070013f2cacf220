package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/thomas-vilte/issuemate/internal/config"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/thomas-vilte/issuemate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetEmojiCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-emoji",
		Usage:     t.GetMessage("config_set_emoji.usage", 0, nil),
		ArgsUsage: "<on|off>",
		Action: func(ctx context.Context, command *cli.Command) error {
			var enabled bool
			switch strings.ToLower(command.Args().First()) {
			case "on", "true":
				enabled = true
			case "off", "false":
				enabled = false
			default:
				msg := t.GetMessage("config_set_emoji.invalid", 0, nil)
				ui.PrintError(os.Stdout, msg)
				return fmt.Errorf("%s", msg)
			}

			cfg.UseEmoji = enabled
			if err := saveConfig(t, cfg); err != nil {
				return err
			}

			// Applies immediately so the confirmation line already reflects it.
			ui.SetEmojiEnabled(enabled)
			if enabled {
				ui.PrintSuccess(os.Stdout, t.GetMessage("config_set_emoji.on", 0, nil))
			} else {
				ui.PrintSuccess(os.Stdout, t.GetMessage("config_set_emoji.off", 0, nil))
			}
			return nil
		},
	}
}
