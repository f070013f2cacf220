package draft

import (
	"context"
	"fmt"
	"os"

	"github.com/thomas-vilte/issuemate/internal/cli/command/issue"
	"github.com/thomas-vilte/issuemate/internal/cli/completion_helper"
	"github.com/thomas-vilte/issuemate/internal/config"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/thomas-vilte/issuemate/internal/services"
	"github.com/thomas-vilte/issuemate/internal/ui"
	"github.com/urfave/cli/v3"
)

// DraftCommandFactory is the factory for the draft command tree.
type DraftCommandFactory struct {
	reports *services.ReportService
}

func NewDraftCommandFactory(reports *services.ReportService) *DraftCommandFactory {
	return &DraftCommandFactory{reports: reports}
}

// CreateCommand creates the draft command with its subcommands.
func (f *DraftCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "draft",
		Usage: t.GetMessage("draft.usage", 0, nil),
		Commands: []*cli.Command{
			f.newListCommand(t, cfg),
			f.newResumeCommand(t, cfg),
			f.newRemoveCommand(t, cfg),
		},
	}
}

func (f *DraftCommandFactory) newListCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   t.GetMessage("draft_list.usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			drafts, err := f.reports.ListDrafts(ctx)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			if len(drafts) == 0 {
				ui.PrintInfo(t.GetMessage("draft_list.empty", 0, nil))
				return nil
			}

			ui.PrintInfo(t.GetMessage("draft_list.header", 0, nil))
			fmt.Println()
			for i := range drafts {
				draft := &drafts[i]

				title := draft.Title
				if title == "" {
					title = t.GetMessage("draft_list.untitled", 0, nil)
				}
				template := draft.TemplateName
				if template == "" {
					template = t.GetMessage("new.blank_issue", 0, nil)
				}

				fmt.Printf("  %s  %-40s %s\n",
					ui.Accent.Sprint(draft.ShortID()),
					title,
					ui.Dim.Sprintf("%s, %d/%d, %s",
						template,
						draft.FilledCount(), len(draft.Sections),
						draft.CreatedAt.Format("2006-01-02 15:04")),
				)
			}
			fmt.Println()
			return nil
		},
	}
}

func (f *DraftCommandFactory) newResumeCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "resume",
		Usage:         t.GetMessage("draft_resume.usage", 0, nil),
		ArgsUsage:     "<id>",
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, command *cli.Command) error {
			id := command.Args().First()
			if id == "" {
				msg := t.GetMessage("draft_resume.arg_missing", 0, nil)
				ui.PrintError(os.Stdout, msg)
				return fmt.Errorf("%s", msg)
			}

			draft, err := f.reports.LoadDraft(ctx, id)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			return issue.PublishDraft(ctx, t, f.reports, draft)
		},
	}
}

func (f *DraftCommandFactory) newRemoveCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "rm",
		Usage:         t.GetMessage("draft_rm.usage", 0, nil),
		ArgsUsage:     "<id>",
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, command *cli.Command) error {
			id := command.Args().First()
			if id == "" {
				msg := t.GetMessage("draft_rm.arg_missing", 0, nil)
				ui.PrintError(os.Stdout, msg)
				return fmt.Errorf("%s", msg)
			}

			if err := f.reports.DeleteDraft(ctx, id); err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("draft_rm.removed", 0, map[string]interface{}{
				"ID": id,
			}))
			return nil
		},
	}
}
