package issue

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/issuemate/internal/config"
	domainErrors "github.com/thomas-vilte/issuemate/internal/errors"
	"github.com/thomas-vilte/issuemate/internal/i18n"
	"github.com/thomas-vilte/issuemate/internal/models"
	"github.com/thomas-vilte/issuemate/internal/services"
	"github.com/thomas-vilte/issuemate/internal/vcs"
	"github.com/urfave/cli/v3"
)

type createdIssue struct {
	title     string
	body      string
	labels    []string
	assignees []string
}

type fakeVCSClient struct {
	created   []createdIssue
	createErr error
	user      string
	userErr   error
}

func (f *fakeVCSClient) CreateIssue(_ context.Context, title string, body string, labels []string, assignees []string) (*models.Issue, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, createdIssue{title: title, body: body, labels: labels, assignees: assignees})
	return &models.Issue{
		Number: 7,
		Title:  title,
		State:  "open",
		URL:    "https://github.com/acme/widgets/issues/7",
	}, nil
}

func (f *fakeVCSClient) GetRepoLabels(_ context.Context) ([]string, error) { return nil, nil }

func (f *fakeVCSClient) CreateLabel(_ context.Context, _ string, _ string, _ string) error {
	return nil
}

func (f *fakeVCSClient) EnsureLabels(_ context.Context, _ []string) error { return nil }

func (f *fakeVCSClient) GetAuthenticatedUser(_ context.Context) (string, error) {
	return f.user, f.userErr
}

func (f *fakeVCSClient) ListTemplateFiles(_ context.Context, _, _ string) ([]models.RemoteFile, error) {
	return nil, nil
}

type fakeGenerator struct {
	request models.ReportGenerationRequest
	result  *models.ReportGenerationResult
	err     error
}

func (g *fakeGenerator) GenerateReportContent(_ context.Context, request models.ReportGenerationRequest) (*models.ReportGenerationResult, error) {
	g.request = request
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func setupIssueTest(t *testing.T) (*config.Config, *i18n.Translations, string) {
	t.Helper()

	tmpDir := t.TempDir()
	cfg := &config.Config{
		Language:          "en",
		ActiveVCSProvider: "github",
		TemplatesDir:      filepath.Join(tmpDir, "ISSUE_TEMPLATE"),
		PathFile:          filepath.Join(tmpDir, "config.json"),
	}

	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	seedTemplates(t, cfg.TemplatesDir)
	return cfg, translations, tmpDir
}

func seedTemplates(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, name := range services.DefaultTemplateFiles() {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(services.DefaultTemplateContent(name)), 0644))
	}
}

func newIssueApp(cfg *config.Config, translations *i18n.Translations, client vcs.Client, opts ...services.ReportOption) *cli.Command {
	templates := services.NewTemplateService(services.WithTemplateConfig(cfg))
	chooser := services.NewChooserService(templates)
	reports := services.NewReportService(cfg, chooser, opts...)

	provider := func(_ context.Context) (vcs.Client, error) {
		if client == nil {
			return nil, domainErrors.ErrTokenMissing
		}
		return client, nil
	}

	factory := NewIssueCommandFactory(templates, chooser, reports, provider)
	return &cli.Command{Commands: []*cli.Command{factory.CreateCommand(translations, cfg)}}
}

func draftFiles(t *testing.T, tmpDir string) []string {
	t.Helper()

	entries, err := os.ReadDir(filepath.Join(tmpDir, "drafts"))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestNewCommand_DryRun(t *testing.T) {
	cfg, translations, tmpDir := setupIssueTest(t)
	app := newIssueApp(cfg, translations, nil)

	err := app.Run(context.Background(), []string{
		"issuemate", "new", "-t", "bug_report", "--title", "Crash on save", "--dry-run",
	})

	assert.NoError(t, err)
	assert.Empty(t, draftFiles(t, tmpDir), "dry run must not persist anything")
}

func TestNewCommand_UnknownTemplate(t *testing.T) {
	cfg, translations, _ := setupIssueTest(t)
	app := newIssueApp(cfg, translations, nil)

	err := app.Run(context.Background(), []string{
		"issuemate", "new", "-t", "no-such-template", "--dry-run",
	})

	assert.ErrorIs(t, err, domainErrors.ErrTemplateNotFound)
}

func TestNewCommand_MalformedSectionFlag(t *testing.T) {
	cfg, translations, _ := setupIssueTest(t)
	app := newIssueApp(cfg, translations, nil)

	err := app.Run(context.Background(), []string{
		"issuemate", "new", "-t", "bug_report", "--dry-run",
		"--section", "no separator here",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Heading=content")
}

func TestNewCommand_SaveDraft(t *testing.T) {
	cfg, translations, tmpDir := setupIssueTest(t)
	app := newIssueApp(cfg, translations, nil)

	err := app.Run(context.Background(), []string{
		"issuemate", "new", "-t", "bug_report", "--title", "Crash on save", "--draft",
		"--section", "Describe the bug=The editor crashes when saving large files",
	})

	assert.NoError(t, err)

	files := draftFiles(t, tmpDir)
	require.Len(t, files, 1)

	content, readErr := os.ReadFile(filepath.Join(tmpDir, "drafts", files[0]))
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "Crash on save")
	assert.Contains(t, string(content), "The editor crashes when saving large files")
	assert.Contains(t, string(content), "- OS: ", "environment section should be auto-filled")
}

func TestNewCommand_Publish(t *testing.T) {
	t.Run("creates the issue and passes the draft through", func(t *testing.T) {
		cfg, translations, tmpDir := setupIssueTest(t)
		client := &fakeVCSClient{user: "octocat"}
		app := newIssueApp(cfg, translations, client, services.WithReportVCSClient(client))

		err := app.Run(context.Background(), []string{
			"issuemate", "new", "-t", "bug_report",
			"--title", "Crash on save",
			"--section", "Describe the bug=It crashes when saving",
			"--label", "crash", "--label", "bug",
			"--assign-me",
		})

		assert.NoError(t, err)
		require.Len(t, client.created, 1)

		issue := client.created[0]
		assert.Equal(t, "Crash on save", issue.title)
		assert.Contains(t, issue.body, "**Describe the bug**")
		assert.Contains(t, issue.body, "It crashes when saving")
		assert.Contains(t, issue.body, "**Environment**")
		assert.Equal(t, []string{"bug", "crash"}, issue.labels, "template label kept, duplicate dropped")
		assert.Equal(t, []string{"octocat"}, issue.assignees)
		assert.Empty(t, draftFiles(t, tmpDir))
	})

	t.Run("failed publish saves a recovery draft", func(t *testing.T) {
		cfg, translations, tmpDir := setupIssueTest(t)
		client := &fakeVCSClient{createErr: errors.New("boom")}
		app := newIssueApp(cfg, translations, client, services.WithReportVCSClient(client))

		err := app.Run(context.Background(), []string{
			"issuemate", "new", "-t", "bug_report", "--title", "Crash on save",
		})

		assert.Error(t, err)
		assert.Len(t, draftFiles(t, tmpDir), 1)
	})

	t.Run("without a configured repository", func(t *testing.T) {
		cfg, translations, _ := setupIssueTest(t)
		app := newIssueApp(cfg, translations, nil)

		err := app.Run(context.Background(), []string{
			"issuemate", "new", "-t", "bug_report", "--title", "Crash on save",
		})

		assert.ErrorIs(t, err, domainErrors.ErrRepoNotConfigured)
	})

	t.Run("refuses an empty title", func(t *testing.T) {
		cfg, translations, _ := setupIssueTest(t)
		client := &fakeVCSClient{}
		app := newIssueApp(cfg, translations, client, services.WithReportVCSClient(client))

		// Stdin is not a terminal here, so the prompt reads nothing.
		err := app.Run(context.Background(), []string{
			"issuemate", "new", "-t", "bug_report",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "title")
		assert.Empty(t, client.created)
	})
}

func TestNewCommand_AI(t *testing.T) {
	t.Run("fills the draft from the generated content", func(t *testing.T) {
		cfg, translations, _ := setupIssueTest(t)
		generator := &fakeGenerator{result: &models.ReportGenerationResult{
			Title: "Editor crashes when saving large files",
			Sections: map[string]string{
				"Describe the bug": "The editor exits with a panic when saving files over 2 GB.",
			},
			Labels: []string{"crash"},
			Usage:  &models.TokenUsage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
		}}
		client := &fakeVCSClient{}
		app := newIssueApp(cfg, translations, client,
			services.WithReportVCSClient(client),
			services.WithReportGenerator(generator),
		)

		err := app.Run(context.Background(), []string{
			"issuemate", "new", "-t", "bug_report",
			"--ai", "the editor crashes with big files",
			"--context", "started after the 0.3 upgrade",
			"--title", "Crash on save",
		})

		assert.NoError(t, err)
		assert.Equal(t, "the editor crashes with big files", generator.request.Description)
		assert.Equal(t, "started after the 0.3 upgrade", generator.request.Hint)
		assert.Equal(t, "Bug report", generator.request.TemplateName)
		assert.Equal(t, "en", generator.request.Language)
		assert.Len(t, generator.request.SectionHeadings, 5)

		require.Len(t, client.created, 1)
		assert.Contains(t, client.created[0].body, "saving files over 2 GB")
		assert.Contains(t, client.created[0].labels, "crash")
	})

	t.Run("generation errors propagate", func(t *testing.T) {
		cfg, translations, _ := setupIssueTest(t)
		generator := &fakeGenerator{err: domainErrors.ErrGeminiQuotaExceeded}
		app := newIssueApp(cfg, translations, nil, services.WithReportGenerator(generator))

		err := app.Run(context.Background(), []string{
			"issuemate", "new", "-t", "bug_report", "--ai", "it crashes", "--dry-run",
		})

		assert.ErrorIs(t, err, domainErrors.ErrGeminiQuotaExceeded)
	})

	t.Run("without a configured generator", func(t *testing.T) {
		cfg, translations, _ := setupIssueTest(t)
		app := newIssueApp(cfg, translations, nil)

		err := app.Run(context.Background(), []string{
			"issuemate", "new", "-t", "bug_report", "--ai", "it crashes", "--dry-run",
		})

		assert.ErrorIs(t, err, domainErrors.ErrAPIKeyMissing)
	})
}
