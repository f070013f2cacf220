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

func (c *ConfigCommandFactory) newSetAIKeyCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-ai-key",
		Usage: t.GetMessage("config_set_ai_key.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage:   t.GetMessage("config_set_ai_key.provider_flag_usage", 0, nil),
				Value:   "gemini",
			},
			&cli.StringFlag{
				Name:     "key",
				Aliases:  []string{"k"},
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			provider := command.String("provider")
			ai := config.AI(provider)
			if !isSupportedAI(ai) {
				msg := t.GetMessage("config_set_ai_key.invalid", 0, map[string]interface{}{
					"Provider": provider,
				})
				ui.PrintError(os.Stdout, msg)
				return fmt.Errorf("%s", msg)
			}

			if cfg.AIProviders == nil {
				cfg.AIProviders = make(map[string]config.AIProviderConfig)
			}
			cfg.AIProviders[provider] = config.AIProviderConfig{APIKey: command.String("key")}

			// Storing a key activates the provider and pins a default model
			// so `new --ai` works right away.
			cfg.AIConfig.ActiveAI = ai
			if cfg.AIConfig.Models == nil {
				cfg.AIConfig.Models = make(map[config.AI]config.Model)
			}
			if cfg.AIConfig.Models[ai] == "" {
				cfg.AIConfig.Models[ai] = config.DefaultModelForAI(ai)
			}

			if err := saveConfig(t, cfg); err != nil {
				return err
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("config_set_ai_key.updated", 0, map[string]interface{}{
				"Provider": provider,
			}))
			return nil
		},
	}
}

func isSupportedAI(ai config.AI) bool {
	for _, supported := range config.SupportedAIs() {
		if ai == supported {
			return true
		}
	}
	return false
}
