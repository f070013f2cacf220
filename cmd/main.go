package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/thomas-vilte/issuemate/internal/ai/gemini"
	"github.com/thomas-vilte/issuemate/internal/cli/command/completion"
	configcmd "github.com/thomas-vilte/issuemate/internal/cli/command/config"
	"github.com/thomas-vilte/issuemate/internal/cli/command/doctor"
	"github.com/thomas-vilte/issuemate/internal/cli/command/draft"
	"github.com/thomas-vilte/issuemate/internal/cli/command/issue"
	"github.com/thomas-vilte/issuemate/internal/cli/command/preview"
	"github.com/thomas-vilte/issuemate/internal/cli/command/template"
	"github.com/thomas-vilte/issuemate/internal/cli/registry"
	"github.com/thomas-vilte/issuemate/internal/config"
	domainErrors "github.com/thomas-vilte/issuemate/internal/errors"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/thomas-vilte/issuemate/internal/logger"
	"github.com/thomas-vilte/issuemate/internal/services"
	"github.com/thomas-vilte/issuemate/internal/ui"
	"github.com/thomas-vilte/issuemate/internal/vcs"
	"github.com/thomas-vilte/issuemate/internal/vcs/github"
	"github.com/thomas-vilte/issuemate/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error starting the cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	configPath := os.Getenv("ISSUEMATE_CONFIG")
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not resolve the user home directory: %w", err)
		}
		configPath = homeDir
	}

	cfgApp, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, err
	}

	// Re-save so files written by older versions pick up new fields.
	if err := config.SaveConfig(cfgApp); err != nil {
		return nil, err
	}

	ui.SetEmojiEnabled(cfgApp.UseEmoji)

	templateService := services.NewTemplateService(services.WithTemplateConfig(cfgApp))
	lintService := services.NewLintService()
	chooserService := services.NewChooserService(templateService)

	clientProvider := func(ctx context.Context) (vcs.Client, error) {
		vcsCfg, hasToken := cfgApp.ActiveVCS()
		if vcsCfg.Provider != "github" {
			return nil, domainErrors.NewAppError(domainErrors.TypeVCS,
				fmt.Sprintf("publishing via %s is not supported yet", vcsCfg.Provider), nil)
		}
		if vcsCfg.Owner == "" || vcsCfg.Repo == "" {
			return nil, domainErrors.ErrRepoNotConfigured
		}
		if !hasToken {
			return nil, domainErrors.ErrTokenMissing
		}
		return github.NewGitHubClient(vcsCfg.Owner, vcsCfg.Repo, vcsCfg.Token), nil
	}

	ctx := context.Background()

	reportOpts := make([]services.ReportOption, 0, 2)
	if vcsClient, err := clientProvider(ctx); err == nil {
		reportOpts = append(reportOpts, services.WithReportVCSClient(vcsClient))
	}
	if providerCfg, ok := cfgApp.AIProviders["gemini"]; ok && providerCfg.APIKey != "" {
		generator, err := gemini.NewGeminiReportGenerator(ctx, cfgApp)
		if err != nil {
			log.Printf("Warning: could not initialize the Gemini generator: %v", err)
		} else {
			reportOpts = append(reportOpts, services.WithReportGenerator(generator))
		}
	}
	reportService := services.NewReportService(cfgApp, chooserService, reportOpts...)

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("new", issue.NewIssueCommandFactory(templateService, chooserService, reportService, clientProvider)); err != nil {
		log.Fatalf("Error registering the 'new' command: %v", err)
	}

	if err := registerCommand.Register("template", template.NewTemplateCommandFactory(templateService, lintService, clientProvider)); err != nil {
		log.Fatalf("Error registering the 'template' command: %v", err)
	}

	if err := registerCommand.Register("preview", preview.NewPreviewCommandFactory(templateService, chooserService)); err != nil {
		log.Fatalf("Error registering the 'preview' command: %v", err)
	}

	if err := registerCommand.Register("draft", draft.NewDraftCommandFactory(reportService)); err != nil {
		log.Fatalf("Error registering the 'draft' command: %v", err)
	}

	if err := registerCommand.Register("doctor", doctor.NewDoctorCommandFactory(templateService, lintService, clientProvider)); err != nil {
		log.Fatalf("Error registering the 'doctor' command: %v", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error registering the 'config' command: %v", err)
	}

	if err := registerCommand.Register("completion", completion.NewCompletionCommandFactory()); err != nil {
		log.Fatalf("Error registering the 'completion' command: %v", err)
	}

	if !cfgApp.DisableUpdateCheck && os.Getenv("ISSUEMATE_DISABLE_UPDATE_CHECK") == "" {
		go services.NewVersionChecker(version.Version, translations, cfgApp).CheckForUpdates(context.Background())
	}

	return &cli.Command{
		Name:        "issuemate",
		Usage:       translations.GetMessage("app.usage", 0, nil),
		Description: translations.GetMessage("app.description", 0, nil),
		Version:     version.Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("app.debug_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("app.verbose_flag_usage", 0, nil),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))
			return ctx, nil
		},
		Commands:              registerCommand.CreateCommands(),
		EnableShellCompletion: true,
	}, nil
}
