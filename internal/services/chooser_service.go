package services

import (
	"context"

	domainErrors "github.com/thomas-vilte/issuemate/internal/errors"
	"github.com/thomas-vilte/issuemate/internal/logger"
	"github.com/thomas-vilte/issuemate/internal/models"
)

// ChooserService reproduces the platform's "new issue" menu locally: the
// template rows read from frontmatter, the blank-issue row and the
// contact links of config.yml.
type ChooserService struct {
	templates *TemplateService
}

func NewChooserService(templates *TemplateService) *ChooserService {
	return &ChooserService{templates: templates}
}

// BuildMenu returns the chooser rows in the order the platform renders
// them: templates in file-name order, then the blank-issue row unless
// config.yml disables it, then the contact links. The same directory
// always yields the same menu.
func (s *ChooserService) BuildMenu(ctx context.Context) ([]models.ChooserEntry, error) {
	templates, err := s.templates.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}

	chooserCfg, err := s.templates.LoadChooserConfig(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ChooserEntry, 0, len(templates)+1+len(chooserCfg.ContactLinks))
	for _, tmpl := range templates {
		entries = append(entries, models.ChooserEntry{
			Name:     tmpl.Name,
			About:    tmpl.About,
			Labels:   tmpl.Labels,
			FileName: tmpl.FilePath,
		})
	}

	if chooserCfg.BlankIssuesAllowed() {
		entries = append(entries, models.ChooserEntry{IsBlank: true})
	}

	for _, link := range chooserCfg.ContactLinks {
		entries = append(entries, models.ChooserEntry{
			Name:   link.Name,
			About:  link.About,
			URL:    link.URL,
			IsLink: true,
		})
	}

	logger.Debug(ctx, "built chooser menu", "entries", len(entries))
	return entries, nil
}

// Prefill builds a report draft from a template the way the platform
// prefills the issue body: every section heading in template order, with
// the placeholder text kept so the reporter can overwrite it. Title,
// labels and assignees come from the frontmatter.
func (s *ChooserService) Prefill(ctx context.Context, template *models.IssueTemplate) (models.ReportDraft, error) {
	if template == nil {
		return models.ReportDraft{}, domainErrors.ErrEmptyTemplate
	}

	draft := models.ReportDraft{
		TemplateName: template.Name,
		TemplateFile: template.FilePath,
		Title:        template.Title,
		Labels:       append([]string(nil), template.Labels...),
		Assignees:    append([]string(nil), template.Assignees...),
	}

	if template.IsForm() {
		for _, item := range template.Body {
			if item.Type == models.FormTypeMarkdown {
				continue
			}
			if item.Attributes.Label == "" {
				continue
			}
			draft.Sections = append(draft.Sections, models.Section{
				Heading: item.Attributes.Label,
				Body:    item.Attributes.Placeholder,
				Style:   models.HeadingBold,
			})
		}
		logger.Debug(ctx, "prefilled draft from issue form",
			"template", template.Name, "sections", len(draft.Sections))
		return draft, nil
	}

	draft.Sections = make([]models.Section, len(template.Sections))
	copy(draft.Sections, template.Sections)

	logger.Debug(ctx, "prefilled draft from template",
		"template", template.Name, "sections", len(draft.Sections))
	return draft, nil
}
