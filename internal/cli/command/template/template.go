package template

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/thomas-vilte/issuemate/internal/cli/completion_helper"
	"github.com/thomas-vilte/issuemate/internal/config"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/thomas-vilte/issuemate/internal/services"
	"github.com/thomas-vilte/issuemate/internal/ui"
	"github.com/thomas-vilte/issuemate/internal/vcs"
	"github.com/urfave/cli/v3"
)

// VCSClientProvider builds the VCS client lazily, so commands that never
// touch the network work without a configured repository.
type VCSClientProvider func(ctx context.Context) (vcs.Client, error)

// TemplateCommandFactory is the factory for the template command tree.
type TemplateCommandFactory struct {
	templates      *services.TemplateService
	linter         *services.LintService
	clientProvider VCSClientProvider
}

func NewTemplateCommandFactory(templates *services.TemplateService, linter *services.LintService, clientProvider VCSClientProvider) *TemplateCommandFactory {
	return &TemplateCommandFactory{
		templates:      templates,
		linter:         linter,
		clientProvider: clientProvider,
	}
}

// CreateCommand creates the template command with its subcommands.
func (f *TemplateCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "template",
		Aliases: []string{"tpl"},
		Usage:   t.GetMessage("template.usage", 0, nil),
		Commands: []*cli.Command{
			f.newListCommand(t, cfg),
			f.newShowCommand(t, cfg),
			f.newInitCommand(t, cfg),
			f.newLintCommand(t, cfg),
			f.newPullCommand(t, cfg),
		},
	}
}

func (f *TemplateCommandFactory) newListCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   t.GetMessage("template_list.usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			templates, err := f.templates.ListTemplates(ctx)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			if len(templates) == 0 {
				ui.PrintInfo(t.GetMessage("template_list.empty", 0, nil))
				return nil
			}

			dir, err := f.templates.TemplatesDir(ctx)
			if err != nil {
				return err
			}

			ui.PrintInfo(t.GetMessage("template_list.header", 0, map[string]interface{}{
				"Dir": dir,
			}))
			fmt.Println()

			for _, meta := range templates {
				name := meta.Name
				if meta.IsForm {
					name = fmt.Sprintf("%s (%s)", name, t.GetMessage("template_list.form_label", 0, nil))
				}
				fmt.Printf("  %-32s %s\n", name, ui.Dim.Sprint(meta.FilePath))
				if meta.About != "" {
					fmt.Printf("    %s\n", ui.Dim.Sprint(meta.About))
				}
				if len(meta.Labels) > 0 {
					fmt.Printf("    %s\n", ui.Dim.Sprintf("labels: %s", strings.Join(meta.Labels, ", ")))
				}
			}
			fmt.Println()
			return nil
		},
	}
}

func (f *TemplateCommandFactory) newShowCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     t.GetMessage("template_show.usage", 0, nil),
		ArgsUsage: "<name>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "raw",
				Usage: t.GetMessage("template_show.raw_flag_usage", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, command *cli.Command) error {
			name := command.Args().First()
			if name == "" {
				msg := t.GetMessage("template_show.arg_missing", 0, nil)
				ui.PrintError(os.Stdout, msg)
				return fmt.Errorf("%s", msg)
			}

			template, err := f.templates.GetTemplateByName(ctx, name)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			if command.Bool("raw") {
				content, err := os.ReadFile(template.FilePath)
				if err != nil {
					return err
				}
				fmt.Print(string(content))
				return nil
			}

			ui.PrintSectionBanner(template.Name)

			ui.PrintInfo(t.GetMessage("template_show.metadata_header", 0, nil))
			if about := template.GetAbout(); about != "" {
				ui.PrintKeyValue("about", about)
			}
			if template.Title != "" {
				ui.PrintKeyValue("title", template.Title)
			}
			if len(template.Labels) > 0 {
				ui.PrintKeyValue("labels", strings.Join(template.Labels, ", "))
			}
			if len(template.Assignees) > 0 {
				ui.PrintKeyValue("assignees", strings.Join(template.Assignees, ", "))
			}
			ui.PrintKeyValue("file", template.FilePath)

			headings := template.SectionHeadings()
			if len(headings) > 0 {
				fmt.Println()
				ui.PrintInfo(t.GetMessage("template_show.sections_header", 0, nil))
				for i, heading := range headings {
					fmt.Printf("   %d. %s\n", i+1, heading)
				}
			}

			if !template.IsForm() && template.RawBody != "" {
				fmt.Println()
				fmt.Print(ui.RenderMarkdown(template.RawBody))
			}
			return nil
		},
	}
}

func (f *TemplateCommandFactory) newInitCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("template_init.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   t.GetMessage("template_init.force_flag_usage", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, command *cli.Command) error {
			created, skipped, err := f.templates.InitializeTemplates(ctx, command.Bool("force"))

			for _, path := range created {
				ui.PrintSuccess(os.Stdout, t.GetMessage("template_init.created", 0, map[string]interface{}{
					"Path": path,
				}))
			}
			for _, path := range skipped {
				ui.PrintInfo(t.GetMessage("template_init.skipped", 0, map[string]interface{}{
					"Path": path,
				}))
			}

			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			dir, dirErr := f.templates.TemplatesDir(ctx)
			if dirErr != nil {
				return dirErr
			}
			ui.PrintSuccess(os.Stdout, t.GetMessage("template_init.done", len(created), map[string]interface{}{
				"Count": len(created),
				"Dir":   dir,
			}))
			return nil
		},
	}
}
