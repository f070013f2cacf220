package doctor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/thomas-vilte/issuemate/internal/config"
	domainErrors "github.com/thomas-vilte/issuemate/internal/errors"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/thomas-vilte/issuemate/internal/services"
	"github.com/thomas-vilte/issuemate/internal/ui"
	"github.com/thomas-vilte/issuemate/internal/vcs"
	"github.com/thomas-vilte/issuemate/internal/version"
	"github.com/urfave/cli/v3"
)

const tokenCheckTimeout = 5 * time.Second

// VCSClientProvider builds the VCS client used for the token check.
type VCSClientProvider func(ctx context.Context) (vcs.Client, error)

// DoctorCommandFactory is the factory for the doctor command.
type DoctorCommandFactory struct {
	templates      *services.TemplateService
	linter         *services.LintService
	clientProvider VCSClientProvider
}

func NewDoctorCommandFactory(templates *services.TemplateService, linter *services.LintService, clientProvider VCSClientProvider) *DoctorCommandFactory {
	return &DoctorCommandFactory{
		templates:      templates,
		linter:         linter,
		clientProvider: clientProvider,
	}
}

// CreateCommand creates the doctor command.
func (f *DoctorCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "doctor",
		Aliases: []string{"dr"},
		Usage:   t.GetMessage("doctor.usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			return f.runChecks(ctx, t, cfg)
		},
	}
}

// runChecks walks the setup from config to tracker access and reports
// one line per check. Warnings count as problems in the summary; only
// hard failures make the command exit non-zero.
func (f *DoctorCommandFactory) runChecks(ctx context.Context, t *i18n.Translations, cfg *config.Config) error {
	ui.PrintSectionBanner(t.GetMessage("doctor.header", 0, nil))

	problems := 0
	failed := false

	// Config file.
	if cfg.PathFile != "" && fileExists(cfg.PathFile) {
		ui.PrintSuccess(os.Stdout, t.GetMessage("doctor.config_ok", 0, map[string]interface{}{
			"Path": cfg.PathFile,
		}))
	} else {
		problems++
		failed = true
		ui.PrintError(os.Stdout, domainErrors.ErrConfigMissing.Message)
		printSuggestion(domainErrors.ErrConfigMissing.Suggestion)
	}

	// Template directory and its contents.
	dir, err := f.templates.TemplatesDir(ctx)
	dirOK := err == nil && fileExists(dir)
	if dirOK {
		ui.PrintSuccess(os.Stdout, t.GetMessage("doctor.templates_dir_ok", 0, map[string]interface{}{
			"Dir": dir,
		}))
	} else {
		problems++
		ui.PrintWarning(t.GetMessage("doctor.templates_dir_missing", 0, map[string]interface{}{
			"Dir": dir,
		}))
		printSuggestion(domainErrors.ErrTemplatesDirMissing.Suggestion)
	}

	if dirOK {
		templates, listErr := f.templates.ListTemplates(ctx)
		switch {
		case listErr != nil:
			problems++
			ui.PrintWarning(listErr.Error())
		case len(templates) == 0:
			problems++
			ui.PrintWarning(t.GetMessage("new.no_templates", 0, nil))
		default:
			ui.PrintSuccess(os.Stdout, t.GetMessage("doctor.templates_found", len(templates), map[string]interface{}{
				"Count": len(templates),
			}))
			f.checkLint(ctx, t, dir, &problems, &failed)
		}
	}

	// Tracker token.
	f.checkToken(ctx, t, cfg, &problems, &failed)

	// AI drafting is optional, so a missing key is informational only.
	if providerCfg, ok := cfg.AIProviders["gemini"]; ok && providerCfg.APIKey != "" {
		model := string(cfg.AIConfig.Models[config.AIGemini])
		if model == "" {
			model = string(config.DefaultModelForAI(config.AIGemini))
		}
		ui.PrintSuccess(os.Stdout, t.GetMessage("doctor.ai_ok", 0, map[string]interface{}{
			"Model": model,
		}))
	} else {
		ui.PrintWarning(t.GetMessage("doctor.ai_missing", 0, nil))
	}

	// Release check prints its own nudge when a newer version exists.
	if !cfg.DisableUpdateCheck {
		services.NewVersionChecker(version.Version, t, cfg).CheckForUpdates(ctx)
	}
	ui.PrintSuccess(os.Stdout, t.GetMessage("doctor.update_ok", 0, map[string]interface{}{
		"Version": version.FullVersion(),
	}))

	fmt.Println()
	if problems == 0 {
		ui.PrintSuccess(os.Stdout, t.GetMessage("doctor.summary_ok", 0, nil))
		return nil
	}

	summary := t.GetMessage("doctor.summary_problems", problems, map[string]interface{}{
		"Count": problems,
	})
	if failed {
		ui.PrintError(os.Stdout, summary)
		return fmt.Errorf("%s", summary)
	}
	ui.PrintWarning(summary)
	return nil
}

func (f *DoctorCommandFactory) checkLint(ctx context.Context, t *i18n.Translations, dir string, problems *int, failed *bool) {
	report, err := f.linter.LintDir(ctx, dir)
	if err != nil {
		*problems++
		ui.PrintWarning(err.Error())
		return
	}

	errorCount, warningCount, _ := report.Counts()
	if errorCount == 0 && warningCount == 0 {
		ui.PrintSuccess(os.Stdout, t.GetMessage("doctor.lint_ok", 0, nil))
		return
	}

	*problems++
	msg := t.GetMessage("doctor.lint_problems", 0, map[string]interface{}{
		"Errors":   errorCount,
		"Warnings": warningCount,
	})
	if errorCount > 0 {
		*failed = true
		ui.PrintError(os.Stdout, msg)
		return
	}
	ui.PrintWarning(msg)
}

func (f *DoctorCommandFactory) checkToken(ctx context.Context, t *i18n.Translations, cfg *config.Config, problems *int, failed *bool) {
	_, hasToken := cfg.ActiveVCS()
	if !hasToken {
		*problems++
		ui.PrintWarning(t.GetMessage("doctor.token_missing", 0, nil))
		printSuggestion(domainErrors.ErrTokenMissing.Suggestion)
		return
	}

	client, err := f.clientProvider(ctx)
	if err != nil {
		*problems++
		*failed = true
		ui.PrintError(os.Stdout, t.GetMessage("doctor.token_invalid", 0, nil))
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, tokenCheckTimeout)
	defer cancel()

	user, err := client.GetAuthenticatedUser(checkCtx)
	if err != nil {
		*problems++
		*failed = true
		ui.PrintError(os.Stdout, t.GetMessage("doctor.token_invalid", 0, nil))
		return
	}

	ui.PrintSuccess(os.Stdout, t.GetMessage("doctor.token_ok", 0, map[string]interface{}{
		"User": user,
	}))
}

func printSuggestion(suggestion string) {
	if suggestion != "" {
		ui.PrintInfo("   → " + suggestion)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
