package template

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/thomas-vilte/issuemate/internal/cli/completion_helper"
	"github.com/thomas-vilte/issuemate/internal/config"
	domainErrors "github.com/thomas-vilte/issuemate/internal/errors"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/thomas-vilte/issuemate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (f *TemplateCommandFactory) newPullCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "pull",
		Usage: t.GetMessage("template_pull.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   t.GetMessage("template_pull.repo_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   t.GetMessage("template_pull.force_flag_usage", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, command *cli.Command) error {
			owner, repo, err := resolvePullSource(t, cfg, command.String("repo"))
			if err != nil {
				return err
			}

			client, err := f.clientProvider(ctx)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			spinner := ui.NewSmartSpinner(t.GetMessage("template_pull.fetching", 0, map[string]interface{}{
				"Owner": owner,
				"Repo":  repo,
			}))
			spinner.Start()

			fetched, err := f.templates.PullTemplates(ctx, client, owner, repo, command.Bool("force"))
			spinner.Stop()

			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			if len(fetched) == 0 {
				ui.PrintInfo(t.GetMessage("template_pull.none_found", 0, map[string]interface{}{
					"Owner": owner,
					"Repo":  repo,
				}))
				return nil
			}

			for _, name := range fetched {
				fmt.Printf("  %s\n", ui.Dim.Sprint(name))
			}
			ui.PrintSuccess(os.Stdout, t.GetMessage("template_pull.fetched", len(fetched), map[string]interface{}{
				"Count": len(fetched),
				"Owner": owner,
				"Repo":  repo,
			}))
			return nil
		},
	}
}

// resolvePullSource picks the remote repository, preferring the --repo flag
// over the configured VCS provider.
func resolvePullSource(t *i18n.Translations, cfg *config.Config, flagValue string) (string, string, error) {
	if flagValue != "" {
		parts := strings.Split(flagValue, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			msg := t.GetMessage("template_pull.repo_invalid", 0, map[string]interface{}{
				"Repo": flagValue,
			})
			ui.PrintError(os.Stdout, msg)
			return "", "", fmt.Errorf("%s", msg)
		}
		return parts[0], parts[1], nil
	}

	vcsConfig, _ := cfg.ActiveVCS()
	if vcsConfig.Owner == "" || vcsConfig.Repo == "" {
		ui.HandleAppError(domainErrors.ErrRepoNotConfigured, t)
		return "", "", domainErrors.ErrRepoNotConfigured
	}
	return vcsConfig.Owner, vcsConfig.Repo, nil
}
