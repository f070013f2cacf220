package template

import (
	"context"
	"os"

	"github.com/thomas-vilte/issuemate/internal/cli/completion_helper"
	"github.com/thomas-vilte/issuemate/internal/config"
	domainErrors "github.com/thomas-vilte/issuemate/internal/errors"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/thomas-vilte/issuemate/internal/models"
	"github.com/thomas-vilte/issuemate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (f *TemplateCommandFactory) newLintCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "lint",
		Usage: t.GetMessage("template_lint.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: t.GetMessage("template_lint.file_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   t.GetMessage("template_lint.watch_flag_usage", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, command *cli.Command) error {
			if file := command.String("file"); file != "" {
				findings, err := f.linter.LintFile(ctx, file)
				if err != nil {
					ui.HandleAppError(err, t)
					return err
				}
				return f.reportLintResult(t, &models.LintReport{Findings: findings, Checked: 1})
			}

			dir, err := f.templates.TemplatesDir(ctx)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			if command.Bool("watch") {
				ui.PrintInfo(t.GetMessage("template_lint.watching", 0, map[string]interface{}{
					"Dir": dir,
				}))
				if report, lintErr := f.linter.LintDir(ctx, dir); lintErr == nil {
					_ = f.reportLintResult(t, report)
				}
				return f.linter.Watch(ctx, dir, func(report *models.LintReport) {
					_ = f.reportLintResult(t, report)
				})
			}

			report, err := f.linter.LintDir(ctx, dir)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}
			return f.reportLintResult(t, report)
		},
	}
}

// reportLintResult prints the report and fails only on error-severity
// findings, so warnings never break CI pipelines.
func (f *TemplateCommandFactory) reportLintResult(t *i18n.Translations, report *models.LintReport) error {
	ui.PrintLintReport(os.Stdout, report)

	if len(report.Findings) == 0 {
		ui.PrintSuccess(os.Stdout, t.GetMessage("template_lint.ok", report.Checked, map[string]interface{}{
			"Count": report.Checked,
		}))
		return nil
	}

	errorCount, warningCount, _ := report.Counts()
	ui.PrintInfo(t.GetMessage("template_lint.problems", 0, map[string]interface{}{
		"Errors":   errorCount,
		"Warnings": warningCount,
	}))
	if report.HasErrors() {
		return domainErrors.ErrLintFailed
	}
	return nil
}
