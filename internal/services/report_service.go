package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thomas-vilte/issuemate/internal/ai"
	"github.com/thomas-vilte/issuemate/internal/config"
	domainErrors "github.com/thomas-vilte/issuemate/internal/errors"
	"github.com/thomas-vilte/issuemate/internal/logger"
	"github.com/thomas-vilte/issuemate/internal/markdown"
	"github.com/thomas-vilte/issuemate/internal/models"
	"github.com/thomas-vilte/issuemate/internal/vcs"
	"github.com/thomas-vilte/issuemate/internal/version"
)

const draftsDirName = "drafts"

// nowFunc is swapped in tests.
var nowFunc = time.Now

// ReportService turns a template into a filled bug report: prefill,
// section content, environment detection, draft persistence and the
// final publish to the VCS.
type ReportService struct {
	config    *config.Config
	chooser   *ChooserService
	vcsClient vcs.Client
	generator ai.ReportContentGenerator
}

type ReportOption func(*ReportService)

func WithReportVCSClient(client vcs.Client) ReportOption {
	return func(s *ReportService) {
		s.vcsClient = client
	}
}

func WithReportGenerator(generator ai.ReportContentGenerator) ReportOption {
	return func(s *ReportService) {
		s.generator = generator
	}
}

func NewReportService(cfg *config.Config, chooser *ChooserService, opts ...ReportOption) *ReportService {
	s := &ReportService{
		config:  cfg,
		chooser: chooser,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDraft prefills a draft from the template and stamps it with an id
// and creation time.
func (s *ReportService) NewDraft(ctx context.Context, template *models.IssueTemplate) (*models.ReportDraft, error) {
	draft, err := s.chooser.Prefill(ctx, template)
	if err != nil {
		return nil, err
	}

	draft.ID = uuid.NewString()
	draft.CreatedAt = nowFunc()

	logger.Debug(ctx, "created draft", "id", draft.ID, "template", draft.TemplateName)
	return &draft, nil
}

// BlankDraft is the "open a blank issue" row of the chooser: no template,
// no prefilled sections.
func (s *ReportService) BlankDraft(ctx context.Context) *models.ReportDraft {
	draft := &models.ReportDraft{
		ID:        uuid.NewString(),
		CreatedAt: nowFunc(),
	}
	logger.Debug(ctx, "created blank draft", "id", draft.ID)
	return draft
}

// FillSection sets the content of the section with the given heading.
// Matching ignores case and trailing colons; an unknown heading appends a
// new section, since the platform tolerates free-form additions.
func (s *ReportService) FillSection(draft *models.ReportDraft, heading, content string) {
	want := markdown.NormalizeHeading(heading)
	for i := range draft.Sections {
		if markdown.NormalizeHeading(draft.Sections[i].Heading) == want {
			draft.Sections[i].Body = content
			return
		}
	}
	draft.SetSection(heading, content)
}

// DetectEnvironment gathers the machine context a bug report's
// environment section asks for.
func (s *ReportService) DetectEnvironment(ctx context.Context) models.Environment {
	env := models.Environment{
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		AppVersion: version.FullVersion(),
		GoVersion:  runtime.Version(),
	}
	logger.Debug(ctx, "detected environment", "os", env.OS, "arch", env.Arch)
	return env
}

// FillEnvironment replaces the environment section's placeholder bullets
// with the detected OS and Version lines. Templates without an
// environment section are left alone.
func (s *ReportService) FillEnvironment(draft *models.ReportDraft, env models.Environment) bool {
	for i := range draft.Sections {
		if markdown.NormalizeHeading(draft.Sections[i].Heading) != "environment" {
			continue
		}
		draft.Sections[i].Body = strings.Join(env.Lines(), "\n")
		return true
	}
	return false
}

// RenderBody renders the draft as the markdown body the issue will carry,
// sections in template order.
func (s *ReportService) RenderBody(draft *models.ReportDraft) string {
	return markdown.RenderSections(draft.Sections)
}

// DraftsDir returns the directory drafts persist in.
func (s *ReportService) DraftsDir() string {
	return filepath.Join(s.config.ConfigDir(), draftsDirName)
}

// SaveDraft writes the draft as JSON under the config dir and returns its
// path.
func (s *ReportService) SaveDraft(ctx context.Context, draft *models.ReportDraft) (string, error) {
	dir := s.DraftsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", domainErrors.NewAppError(domainErrors.TypeInternal, "failed to create drafts directory", err).
			WithContext("path", dir)
	}

	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return "", domainErrors.NewAppError(domainErrors.TypeInternal, "failed to serialize draft", err)
	}

	path := filepath.Join(dir, draft.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", domainErrors.NewAppError(domainErrors.TypeInternal, "failed to write draft", err).
			WithContext("path", path)
	}

	logger.Debug(ctx, "saved draft", "id", draft.ID, "path", path)
	return path, nil
}

// LoadDraft loads a saved draft by id. A unique id prefix is enough,
// so "issuemate draft resume 3fa8" works.
func (s *ReportService) LoadDraft(ctx context.Context, id string) (*models.ReportDraft, error) {
	if id == "" {
		return nil, domainErrors.ErrDraftNotFound
	}

	path := filepath.Join(s.DraftsDir(), id+".json")
	if _, err := os.Stat(path); err != nil {
		resolved, err := s.resolveDraftID(id)
		if err != nil {
			return nil, err
		}
		path = filepath.Join(s.DraftsDir(), resolved+".json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domainErrors.ErrDraftNotFound.WithContext("id", id)
	}

	var draft models.ReportDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeInternal, "failed to parse draft", err).
			WithContext("path", path)
	}

	logger.Debug(ctx, "loaded draft", "id", draft.ID, "path", path)
	return &draft, nil
}

func (s *ReportService) resolveDraftID(prefix string) (string, error) {
	entries, err := os.ReadDir(s.DraftsDir())
	if err != nil {
		return "", domainErrors.ErrDraftNotFound.WithContext("id", prefix)
	}

	var matches []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		id := strings.TrimSuffix(name, ".json")
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", domainErrors.ErrDraftNotFound.WithContext("id", prefix)
	default:
		return "", domainErrors.NewAppError(domainErrors.TypeConfiguration, "Draft id prefix is ambiguous", nil).
			WithContext("id", prefix).
			WithContext("matches", len(matches)).
			WithSuggestion("Use a longer prefix; list drafts with: issuemate draft list")
	}
}

// ListDrafts returns the saved drafts, newest first.
func (s *ReportService) ListDrafts(ctx context.Context) ([]models.ReportDraft, error) {
	entries, err := os.ReadDir(s.DraftsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []models.ReportDraft{}, nil
		}
		return nil, domainErrors.NewAppError(domainErrors.TypeInternal, "failed to read drafts directory", err).
			WithContext("path", s.DraftsDir())
	}

	drafts := make([]models.ReportDraft, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.DraftsDir(), entry.Name()))
		if err != nil {
			logger.Warn(ctx, "skipping unreadable draft", "file", entry.Name(), "error", err)
			continue
		}
		var draft models.ReportDraft
		if err := json.Unmarshal(data, &draft); err != nil {
			logger.Warn(ctx, "skipping corrupt draft", "file", entry.Name(), "error", err)
			continue
		}
		drafts = append(drafts, draft)
	}

	sort.Slice(drafts, func(i, j int) bool {
		if !drafts[i].CreatedAt.Equal(drafts[j].CreatedAt) {
			return drafts[i].CreatedAt.After(drafts[j].CreatedAt)
		}
		return drafts[i].ID < drafts[j].ID
	})
	return drafts, nil
}

// DeleteDraft removes a saved draft. Accepts the same id prefixes as
// LoadDraft.
func (s *ReportService) DeleteDraft(ctx context.Context, id string) error {
	draft, err := s.LoadDraft(ctx, id)
	if err != nil {
		return err
	}

	path := filepath.Join(s.DraftsDir(), draft.ID+".json")
	if err := os.Remove(path); err != nil {
		return domainErrors.NewAppError(domainErrors.TypeInternal, "failed to delete draft", err).
			WithContext("path", path)
	}

	logger.Debug(ctx, "deleted draft", "id", draft.ID)
	return nil
}

// Publish creates the issue on the VCS. Labels are ensured first so
// triage colors stay consistent; a label failure downgrades to a warning
// because the issue itself matters more. On a failed create the draft is
// saved so nothing typed is lost.
func (s *ReportService) Publish(ctx context.Context, draft *models.ReportDraft) (*models.Issue, error) {
	if s.vcsClient == nil {
		return nil, domainErrors.ErrRepoNotConfigured
	}
	if strings.TrimSpace(draft.Title) == "" {
		return nil, domainErrors.NewAppError(domainErrors.TypeVCS, "Issue title is empty", nil).
			WithSuggestion("Pass a title with --title or fill it interactively")
	}

	if len(draft.Labels) > 0 {
		if err := s.vcsClient.EnsureLabels(ctx, draft.Labels); err != nil {
			logger.Warn(ctx, "failed to ensure labels, publishing anyway",
				"labels", strings.Join(draft.Labels, ","), "error", err)
		}
	}

	body := s.RenderBody(draft)
	issue, err := s.vcsClient.CreateIssue(ctx, draft.Title, body, draft.Labels, draft.Assignees)
	if err != nil {
		path, saveErr := s.SaveDraft(ctx, draft)
		if saveErr != nil {
			logger.Warn(ctx, "failed to save draft after publish error", "error", saveErr)
			return nil, err
		}
		var appErr *domainErrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr.WithContext("draft", path)
		}
		return nil, domainErrors.NewAppError(domainErrors.TypeVCS, "failed to create issue", err).
			WithContext("draft", path)
	}

	if removeErr := os.Remove(filepath.Join(s.DraftsDir(), draft.ID+".json")); removeErr != nil && !os.IsNotExist(removeErr) {
		logger.Warn(ctx, "failed to remove published draft", "id", draft.ID, "error", removeErr)
	}

	logger.Info(ctx, "published issue", "number", issue.Number, "url", issue.URL)
	return issue, nil
}

// GenerateWithAI fills the draft from a free-form description: the
// generator gets the template's section headings and returns content per
// heading plus a title and label suggestions. Labels are merged with the
// template's, deduplicated; sections the generator skips keep their
// placeholder text.
func (s *ReportService) GenerateWithAI(ctx context.Context, draft *models.ReportDraft, description, hint string) error {
	if s.generator == nil {
		return domainErrors.ErrAPIKeyMissing
	}
	if strings.TrimSpace(description) == "" {
		return domainErrors.NewAppError(domainErrors.TypeAI, "Description for AI generation is empty", nil).
			WithSuggestion("Tell the AI what happened: issuemate new --ai \"crash when ...\"")
	}

	request := models.ReportGenerationRequest{
		TemplateName:    draft.TemplateName,
		SectionHeadings: draftHeadings(draft),
		Description:     description,
		Hint:            hint,
		Language:        s.config.Language,
	}

	result, err := s.generator.GenerateReportContent(ctx, request)
	if err != nil {
		return err
	}

	s.applyGeneration(draft, result)
	logger.Info(ctx, "AI generation applied",
		"sections", len(result.Sections), "labels", len(result.Labels))
	return nil
}

func draftHeadings(draft *models.ReportDraft) []string {
	headings := make([]string, 0, len(draft.Sections))
	for _, section := range draft.Sections {
		if section.Heading != "" {
			headings = append(headings, section.Heading)
		}
	}
	return headings
}

func (s *ReportService) applyGeneration(draft *models.ReportDraft, result *models.ReportGenerationResult) {
	if result.Title != "" {
		switch {
		case draft.Title == "":
			draft.Title = result.Title
		case strings.HasSuffix(draft.Title, " ") || strings.HasSuffix(draft.Title, ":"):
			// Frontmatter title prefills are prefixes like "[Bug]: ".
			draft.Title = draft.Title + result.Title
		}
	}

	// Fill known sections in template order first, then append whatever
	// extra headings the generator invented, sorted for determinism.
	used := make(map[string]bool, len(result.Sections))
	for i := range draft.Sections {
		for heading, content := range result.Sections {
			if markdown.NormalizeHeading(heading) != markdown.NormalizeHeading(draft.Sections[i].Heading) {
				continue
			}
			if strings.TrimSpace(content) != "" {
				draft.Sections[i].Body = content
			}
			used[heading] = true
		}
	}

	var extra []string
	for heading := range result.Sections {
		if !used[heading] {
			extra = append(extra, heading)
		}
	}
	sort.Strings(extra)
	for _, heading := range extra {
		if strings.TrimSpace(result.Sections[heading]) == "" {
			continue
		}
		draft.SetSection(heading, result.Sections[heading])
	}

	for _, label := range result.Labels {
		if !containsFold(draft.Labels, label) {
			draft.Labels = append(draft.Labels, label)
		}
	}

	draft.Usage = result.Usage
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
