package preview

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/thomas-vilte/issuemate/internal/cli/completion_helper"
	"github.com/thomas-vilte/issuemate/internal/config"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/thomas-vilte/issuemate/internal/markdown"
	"github.com/thomas-vilte/issuemate/internal/services"
	"github.com/thomas-vilte/issuemate/internal/ui"
	"github.com/urfave/cli/v3"
)

// PreviewCommandFactory is the factory for the preview command.
type PreviewCommandFactory struct {
	templates *services.TemplateService
	chooser   *services.ChooserService
}

func NewPreviewCommandFactory(templates *services.TemplateService, chooser *services.ChooserService) *PreviewCommandFactory {
	return &PreviewCommandFactory{templates: templates, chooser: chooser}
}

// CreateCommand creates the preview command.
func (f *PreviewCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "preview",
		Usage:     t.GetMessage("preview.usage", 0, nil),
		ArgsUsage: "<name>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "plain",
				Usage: t.GetMessage("preview.plain_flag_usage", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, command *cli.Command) error {
			name := command.Args().First()
			if name == "" {
				msg := t.GetMessage("preview.arg_missing", 0, nil)
				ui.PrintError(os.Stdout, msg)
				return fmt.Errorf("%s", msg)
			}

			template, err := f.templates.GetTemplateByName(ctx, name)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			draft, err := f.chooser.Prefill(ctx, template)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			body := markdown.RenderSections(draft.Sections)
			if command.Bool("plain") {
				fmt.Print(body)
				return nil
			}

			ui.PrintSectionBanner(template.Name)
			if draft.Title != "" {
				ui.PrintKeyValue("title", draft.Title)
			}
			if len(draft.Labels) > 0 {
				ui.PrintKeyValue("labels", strings.Join(draft.Labels, ", "))
			}
			fmt.Println()
			fmt.Print(ui.RenderMarkdown(body))
			return nil
		},
	}
}
