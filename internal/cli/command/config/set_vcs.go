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

func (c *ConfigCommandFactory) newSetVCSCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-vcs",
		Usage: t.GetMessage("config_set_vcs.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "provider",
				Aliases:  []string{"p"},
				Usage:    t.GetMessage("config_set_vcs.provider_flag_usage", 0, nil),
				Required: true,
			},
			&cli.StringFlag{
				Name:    "owner",
				Aliases: []string{"o"},
				Usage:   t.GetMessage("config_set_vcs.owner_flag_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   t.GetMessage("config_set_vcs.repo_flag_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "token",
				Usage: t.GetMessage("config_set_vcs.token_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			provider := command.String("provider")
			if provider != "github" && provider != "gitlab" {
				msg := t.GetMessage("config_set_vcs.invalid", 0, map[string]interface{}{
					"Provider": provider,
				})
				ui.PrintError(os.Stdout, msg)
				return fmt.Errorf("%s", msg)
			}

			if cfg.VCSConfigs == nil {
				cfg.VCSConfigs = make(map[string]config.VCSConfig)
			}

			// Flags merge into the stored entry so owner, repo and token
			// can be set in separate invocations.
			vcsConfig, exists := cfg.VCSConfigs[provider]
			if !exists {
				vcsConfig = config.VCSConfig{Provider: provider}
			}
			if owner := command.String("owner"); owner != "" {
				vcsConfig.Owner = owner
			}
			if repo := command.String("repo"); repo != "" {
				vcsConfig.Repo = repo
			}
			if token := command.String("token"); token != "" {
				vcsConfig.Token = token
			}

			cfg.VCSConfigs[provider] = vcsConfig
			cfg.ActiveVCSProvider = provider

			if err := saveConfig(t, cfg); err != nil {
				return err
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("config_set_vcs.updated", 0, map[string]interface{}{
				"Provider": provider,
			}))
			return nil
		},
	}
}
