package issue

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/thomas-vilte/issuemate/internal/cli/completion_helper"
	"github.com/thomas-vilte/issuemate/internal/config"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/thomas-vilte/issuemate/internal/markdown"
	"github.com/thomas-vilte/issuemate/internal/models"
	"github.com/thomas-vilte/issuemate/internal/services"
	"github.com/thomas-vilte/issuemate/internal/ui"
	"github.com/thomas-vilte/issuemate/internal/vcs"
	"github.com/urfave/cli/v3"
)

// VCSClientProvider builds the VCS client lazily. Only --assign-me and
// the final publish need the network.
type VCSClientProvider func(ctx context.Context) (vcs.Client, error)

// IssueCommandFactory is the factory for the new command.
type IssueCommandFactory struct {
	templates      *services.TemplateService
	chooser        *services.ChooserService
	reports        *services.ReportService
	clientProvider VCSClientProvider
}

func NewIssueCommandFactory(templates *services.TemplateService, chooser *services.ChooserService, reports *services.ReportService, clientProvider VCSClientProvider) *IssueCommandFactory {
	return &IssueCommandFactory{
		templates:      templates,
		chooser:        chooser,
		reports:        reports,
		clientProvider: clientProvider,
	}
}

// CreateCommand creates the new command.
func (f *IssueCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "new",
		Aliases:       []string{"n"},
		Usage:         t.GetMessage("new.usage", 0, nil),
		Flags:         f.createNewFlags(t),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.createNewAction(t, cfg),
	}
}

func (f *IssueCommandFactory) createNewFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "template",
			Aliases: []string{"t"},
			Usage:   t.GetMessage("new.template_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: t.GetMessage("new.title_flag_usage", 0, nil),
		},
		&cli.StringSliceFlag{
			Name:    "section",
			Aliases: []string{"s"},
			Usage:   t.GetMessage("new.section_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "editor",
			Aliases: []string{"e"},
			Usage:   t.GetMessage("new.editor_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "ai",
			Usage: t.GetMessage("new.ai_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "context",
			Usage: t.GetMessage("new.context_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: t.GetMessage("new.dry_run_flag_usage", 0, nil),
		},
		&cli.StringSliceFlag{
			Name:    "label",
			Aliases: []string{"l"},
			Usage:   t.GetMessage("new.label_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "assign-me",
			Usage: t.GetMessage("new.assign_me_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "draft",
			Aliases: []string{"d"},
			Usage:   t.GetMessage("new.draft_flag_usage", 0, nil),
		},
	}
}

func (f *IssueCommandFactory) createNewAction(t *i18n.Translations, cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		draft, err := f.resolveDraft(ctx, t, command.String("template"))
		if err != nil {
			return err
		}
		if draft == nil {
			// The picker was cancelled or a contact link was chosen.
			return nil
		}

		f.reports.FillEnvironment(draft, f.reports.DetectEnvironment(ctx))

		if title := command.String("title"); title != "" {
			draft.Title = title
		}

		for _, raw := range command.StringSlice("section") {
			heading, content, found := strings.Cut(raw, "=")
			if !found || strings.TrimSpace(heading) == "" {
				msg := t.GetMessage("new.section_invalid", 0, map[string]interface{}{
					"Value": raw,
				})
				ui.PrintError(os.Stdout, msg)
				return fmt.Errorf("%s", msg)
			}
			f.reports.FillSection(draft, strings.TrimSpace(heading), content)
		}

		for _, label := range command.StringSlice("label") {
			if label != "" && !containsFold(draft.Labels, label) {
				draft.Labels = append(draft.Labels, label)
			}
		}

		if description := command.String("ai"); description != "" {
			if err := f.generate(ctx, t, cfg, draft, description, command.String("context")); err != nil {
				return err
			}
		}

		if command.Bool("editor") {
			edited, err := ui.EditText(f.reports.RenderBody(draft), t.GetMessage("new.editor_failed", 0, nil))
			if err != nil {
				ui.PrintError(os.Stdout, err.Error())
				return err
			}
			draft.Sections = markdown.ParseSections(edited)
		}

		if command.Bool("assign-me") {
			f.assignSelf(ctx, t, draft)
		}

		if command.Bool("dry-run") {
			return f.printDryRun(t, draft)
		}

		if command.Bool("draft") {
			return f.saveDraft(ctx, t, draft)
		}

		return f.publish(ctx, t, draft)
	}
}

// resolveDraft turns the --template flag, or an interactive pick, into a
// draft. A nil draft with a nil error means there is nothing to file.
func (f *IssueCommandFactory) resolveDraft(ctx context.Context, t *i18n.Translations, templateName string) (*models.ReportDraft, error) {
	if templateName != "" {
		template, err := f.templates.GetTemplateByName(ctx, templateName)
		if err != nil {
			ui.HandleAppError(err, t)
			return nil, err
		}
		return f.draftFromTemplate(ctx, t, template)
	}

	entries, err := f.chooser.BuildMenu(ctx)
	if err != nil {
		ui.HandleAppError(err, t)
		return nil, err
	}

	hasTemplates := false
	for i := range entries {
		if entries[i].IsBlank && entries[i].Name == "" {
			entries[i].Name = t.GetMessage("new.blank_issue", 0, nil)
		}
		if !entries[i].IsBlank && !entries[i].IsLink {
			hasTemplates = true
		}
	}
	if !hasTemplates {
		ui.PrintInfo(t.GetMessage("new.no_templates", 0, nil))
		if len(entries) == 0 {
			return nil, nil
		}
	}

	entry, err := runPicker(t.GetMessage("new.pick_template", 0, nil), entries)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		ui.PrintInfo(t.GetMessage("new.cancelled", 0, nil))
		return nil, nil
	}

	switch {
	case entry.IsLink:
		ui.PrintInfo(t.GetMessage("new.link_redirect", 0, map[string]interface{}{
			"URL": entry.URL,
		}))
		return nil, nil
	case entry.IsBlank:
		return f.reports.BlankDraft(ctx), nil
	}

	template, err := f.templates.GetTemplateByName(ctx, entry.FileName)
	if err != nil {
		ui.HandleAppError(err, t)
		return nil, err
	}
	return f.draftFromTemplate(ctx, t, template)
}

func (f *IssueCommandFactory) draftFromTemplate(ctx context.Context, t *i18n.Translations, template *models.IssueTemplate) (*models.ReportDraft, error) {
	draft, err := f.reports.NewDraft(ctx, template)
	if err != nil {
		ui.HandleAppError(err, t)
		return nil, err
	}
	return draft, nil
}

func (f *IssueCommandFactory) generate(ctx context.Context, t *i18n.Translations, cfg *config.Config, draft *models.ReportDraft, description, hint string) error {
	model := string(cfg.AIConfig.Models[config.AIGemini])
	if model == "" {
		model = string(config.DefaultModelForAI(config.AIGemini))
	}

	spinner := ui.NewSmartSpinner(t.GetMessage("new.generating", 0, map[string]interface{}{
		"Model": model,
	}))
	spinner.Start()

	err := f.reports.GenerateWithAI(ctx, draft, description, hint)
	spinner.Stop()

	if err != nil {
		ui.HandleAppError(err, t)
		return err
	}

	ui.PrintTokenUsage(draft.Usage, t)
	return nil
}

// assignSelf is best effort: a failed user lookup warns and files the
// issue unassigned, like the web form would.
func (f *IssueCommandFactory) assignSelf(ctx context.Context, t *i18n.Translations, draft *models.ReportDraft) {
	client, err := f.clientProvider(ctx)
	if err == nil {
		var username string
		username, err = client.GetAuthenticatedUser(ctx)
		if err == nil && username != "" && !containsFold(draft.Assignees, username) {
			draft.Assignees = append(draft.Assignees, username)
			return
		}
	}
	if err != nil {
		ui.PrintWarning(fmt.Sprintf("%s: %v", t.GetMessage("new.assignee_failed", 0, nil), err))
	}
}

func (f *IssueCommandFactory) printDryRun(t *i18n.Translations, draft *models.ReportDraft) error {
	ui.PrintInfo(t.GetMessage("new.dry_run_header", 0, nil))
	if draft.Title != "" {
		ui.PrintKeyValue("title", draft.Title)
	}
	if len(draft.Labels) > 0 {
		ui.PrintKeyValue("labels", strings.Join(draft.Labels, ", "))
	}
	if len(draft.Assignees) > 0 {
		ui.PrintKeyValue("assignees", strings.Join(draft.Assignees, ", "))
	}
	fmt.Println()
	fmt.Print(ui.RenderMarkdown(f.reports.RenderBody(draft)))
	return nil
}

func (f *IssueCommandFactory) saveDraft(ctx context.Context, t *i18n.Translations, draft *models.ReportDraft) error {
	return SaveDraft(ctx, t, f.reports, draft)
}

func (f *IssueCommandFactory) publish(ctx context.Context, t *i18n.Translations, draft *models.ReportDraft) error {
	return PublishDraft(ctx, t, f.reports, draft)
}

// SaveDraft persists the draft and tells the user how to pick it back up.
func SaveDraft(ctx context.Context, t *i18n.Translations, reports *services.ReportService, draft *models.ReportDraft) error {
	if _, err := reports.SaveDraft(ctx, draft); err != nil {
		ui.HandleAppError(err, t)
		return err
	}
	ui.PrintSuccess(os.Stdout, t.GetMessage("new.draft_saved", 0, map[string]interface{}{
		"ID": draft.ShortID(),
	}))
	return nil
}

// PublishDraft runs the interactive tail of filing an issue: title prompt,
// empty-section confirmation, then the create call. Shared with draft
// resume so both paths behave the same.
func PublishDraft(ctx context.Context, t *i18n.Translations, reports *services.ReportService, draft *models.ReportDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		draft.Title = ui.ReadLine(t.GetMessage("new.title_prompt", 0, nil))
		if draft.Title == "" {
			msg := t.GetMessage("new.title_empty", 0, nil)
			ui.PrintError(os.Stdout, msg)
			return fmt.Errorf("%s", msg)
		}
	}

	if empty := len(draft.Sections) - draft.FilledCount(); empty > 0 {
		ui.PrintWarning(t.GetMessage("new.empty_sections_warning", empty, map[string]interface{}{
			"Count": empty,
		}))
		if !ui.AskConfirmation(t.GetMessage("new.publish_anyway", 0, nil)) {
			ui.PrintInfo(t.GetMessage("new.cancelled", 0, nil))
			return SaveDraft(ctx, t, reports, draft)
		}
	}

	spinner := ui.NewSmartSpinner(t.GetMessage("new.publishing", 0, nil))
	spinner.Start()

	issue, err := reports.Publish(ctx, draft)
	spinner.Stop()

	if err != nil {
		ui.HandleAppError(err, t)
		return err
	}

	ui.PrintSuccess(os.Stdout, t.GetMessage("new.created", 0, map[string]interface{}{
		"Number": issue.Number,
		"URL":    issue.URL,
	}))
	return nil
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
