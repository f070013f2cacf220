package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/issuemate/internal/errors"
	"github.com/thomas-vilte/issuemate/internal/models"
)

func writeTemplate(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLintFileScaffolds(t *testing.T) {
	svc := NewLintService()
	dir := t.TempDir()

	t.Run("default bug report has no findings", func(t *testing.T) {
		path := writeTemplate(t, dir, "bug_report.md", defaultBugReportTemplate)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("default feature request has no findings", func(t *testing.T) {
		path := writeTemplate(t, dir, "feature_request.md", defaultFeatureRequestTemplate)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("default bug form has no findings", func(t *testing.T) {
		path := writeTemplate(t, dir, "bug_form.yml", defaultBugFormTemplate)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("default chooser config has no findings", func(t *testing.T) {
		path := writeTemplate(t, dir, "config.yml", defaultChooserConfig)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("default custom template only warns about labels", func(t *testing.T) {
		path := writeTemplate(t, dir, "custom.md", defaultCustomTemplate)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, models.SeverityWarning, findings[0].Severity)
		assert.Equal(t, "labels", findings[0].Rule)
	})
}

func TestLintFileFrontmatter(t *testing.T) {
	svc := NewLintService()
	dir := t.TempDir()

	tests := []struct {
		name         string
		content      string
		wantRule     string
		wantSeverity models.Severity
		wantLine     int
		wantContains string
	}{
		{
			name:         "missing frontmatter",
			content:      "**Describe the bug**\ntext\n",
			wantRule:     "frontmatter",
			wantSeverity: models.SeverityError,
			wantLine:     1,
			wantContains: "missing frontmatter",
		},
		{
			name:         "unterminated frontmatter",
			content:      "---\nname: Bug report\nabout: x\n\n**Describe the bug**\ntext\n",
			wantRule:     "frontmatter",
			wantSeverity: models.SeverityError,
			wantLine:     1,
			wantContains: "never closed",
		},
		{
			name:         "missing name key",
			content:      "---\nabout: x\nlabels: bug\n---\n\n**Describe the bug**\ntext\n",
			wantRule:     "required-key",
			wantSeverity: models.SeverityError,
			wantLine:     1,
			wantContains: `missing required key "name"`,
		},
		{
			name:         "empty about value",
			content:      "---\nname: Bug report\nabout: \"\"\nlabels: bug\n---\n\n**Describe the bug**\ntext\n",
			wantRule:     "required-key",
			wantSeverity: models.SeverityError,
			wantLine:     3,
			wantContains: `key "about" is empty`,
		},
		{
			name:         "unknown key",
			content:      "---\nname: Bug report\nabout: x\nlabels: bug\ncolour: red\n---\n\n**Describe the bug**\ntext\n",
			wantRule:     "unknown-key",
			wantSeverity: models.SeverityWarning,
			wantLine:     5,
			wantContains: `"colour"`,
		},
		{
			name:         "invalid frontmatter yaml",
			content:      "---\nname: [unclosed\n---\n\n**Describe the bug**\ntext\n",
			wantRule:     "frontmatter-yaml",
			wantSeverity: models.SeverityError,
			wantLine:     1,
			wantContains: "invalid frontmatter YAML",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemplate(t, dir, "case_"+string(rune('a'+i))+".md", tt.content)

			findings, err := svc.LintFile(context.Background(), path)

			require.NoError(t, err)
			found := false
			for _, f := range findings {
				if f.Rule == tt.wantRule {
					found = true
					assert.Equal(t, tt.wantSeverity, f.Severity)
					assert.Equal(t, tt.wantLine, f.Line)
					assert.Contains(t, f.Message, tt.wantContains)
				}
			}
			assert.True(t, found, "expected a %q finding, got %+v", tt.wantRule, findings)
		})
	}
}

func TestLintFileSections(t *testing.T) {
	svc := NewLintService()
	dir := t.TempDir()

	t.Run("detects out of order sections", func(t *testing.T) {
		content := "---\nname: Bug report\nabout: x\nlabels: bug\n---\n\n" +
			"**Describe the bug**\nd\n\n**Expected behavior**\ne\n\n**To Reproduce**\nr\n"
		path := writeTemplate(t, dir, "order.md", content)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "section-order", findings[0].Rule)
		assert.Equal(t, models.SeverityError, findings[0].Severity)
		assert.Equal(t, 13, findings[0].Line)
		assert.Contains(t, findings[0].Message, `section "To Reproduce" is out of order`)
	})

	t.Run("accepts atx headings with trailing colon", func(t *testing.T) {
		content := "---\nname: Bug report\nabout: x\nlabels: bug\n---\n\n" +
			"## Describe the bug\nd\n\n## To Reproduce:\nr\n\n## Expected behavior\ne\n"
		path := writeTemplate(t, dir, "atx.md", content)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("detects duplicate sections", func(t *testing.T) {
		content := "---\nname: Bug report\nabout: x\nlabels: bug\n---\n\n" +
			"**Describe the bug**\nd\n\n**Describe the bug**\nagain\n"
		path := writeTemplate(t, dir, "dup.md", content)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "duplicate-section", findings[0].Rule)
		assert.Equal(t, 10, findings[0].Line)
	})

	t.Run("warns about empty sections", func(t *testing.T) {
		content := "---\nname: Bug report\nabout: x\nlabels: bug\n---\n\n" +
			"**Describe the bug**\n\n**Additional context**\nmore\n"
		path := writeTemplate(t, dir, "empty_section.md", content)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "empty-section", findings[0].Rule)
		assert.Equal(t, models.SeverityWarning, findings[0].Severity)
		assert.Contains(t, findings[0].Message, `"Describe the bug"`)
		assert.Equal(t, 7, findings[0].Line)
	})

	t.Run("errors on empty body", func(t *testing.T) {
		content := "---\nname: Bug report\nabout: x\nlabels: bug\n---\n"
		path := writeTemplate(t, dir, "empty_body.md", content)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "empty-body", findings[0].Rule)
		assert.Equal(t, models.SeverityError, findings[0].Severity)
	})

	t.Run("warns when environment section lacks version line", func(t *testing.T) {
		content := "---\nname: Bug report\nabout: x\nlabels: bug\n---\n\n" +
			"**Describe the bug**\nd\n\n**Environment**\n- OS: Ubuntu\n"
		path := writeTemplate(t, dir, "env.md", content)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "environment-fields", findings[0].Rule)
		assert.Contains(t, findings[0].Message, "no Version line")
		assert.Equal(t, 10, findings[0].Line)
	})

	t.Run("ignores headings inside code fences", func(t *testing.T) {
		content := "---\nname: Bug report\nabout: x\nlabels: bug\n---\n\n" +
			"**Describe the bug**\n```\n**Environment**\n## Expected behavior\n```\nreal text\n"
		path := writeTemplate(t, dir, "fenced.md", content)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		assert.Empty(t, findings)
	})
}

func TestLintFileForms(t *testing.T) {
	svc := NewLintService()
	dir := t.TempDir()

	t.Run("missing description and label", func(t *testing.T) {
		content := "name: Bug form\nbody:\n" +
			"  - type: textarea\n    id: repro\n"
		path := writeTemplate(t, dir, "form_a.yml", content)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		rules := make(map[string]models.LintFinding)
		for _, f := range findings {
			rules[f.Rule] = f
		}
		require.Contains(t, rules, "required-key")
		assert.Contains(t, rules["required-key"].Message, `"description"`)
		require.Contains(t, rules, "form-item-label")
		assert.Equal(t, 3, rules["form-item-label"].Line)
	})

	t.Run("unknown item type", func(t *testing.T) {
		content := "name: Bug form\ndescription: Report a bug\nbody:\n" +
			"  - type: textbox\n    id: repro\n    attributes:\n      label: Steps\n"
		path := writeTemplate(t, dir, "form_b.yml", content)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "form-item-type", findings[0].Rule)
		assert.Contains(t, findings[0].Message, `"textbox"`)
		assert.Equal(t, 4, findings[0].Line)
	})

	t.Run("duplicate item ids", func(t *testing.T) {
		content := "name: Bug form\ndescription: Report a bug\nbody:\n" +
			"  - type: textarea\n    id: repro\n    attributes:\n      label: Steps\n" +
			"  - type: input\n    id: repro\n    attributes:\n      label: Version\n"
		path := writeTemplate(t, dir, "form_c.yml", content)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "duplicate-id", findings[0].Rule)
		assert.Contains(t, findings[0].Message, `id "repro"`)
		assert.Equal(t, 8, findings[0].Line)
	})

	t.Run("dropdown without options", func(t *testing.T) {
		content := "name: Bug form\ndescription: Report a bug\nbody:\n" +
			"  - type: dropdown\n    id: severity\n    attributes:\n      label: Severity\n"
		path := writeTemplate(t, dir, "form_d.yml", content)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "form-item-options", findings[0].Rule)
	})

	t.Run("empty body", func(t *testing.T) {
		content := "name: Bug form\ndescription: Report a bug\n"
		path := writeTemplate(t, dir, "form_e.yml", content)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "form-body", findings[0].Rule)
	})
}

func TestLintFileChooserConfig(t *testing.T) {
	svc := NewLintService()
	dir := t.TempDir()

	t.Run("contact link without url", func(t *testing.T) {
		content := "blank_issues_enabled: false\ncontact_links:\n" +
			"  - name: Forum\n    about: Ask questions\n"
		path := writeTemplate(t, dir, "config.yml", content)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "contact-link", findings[0].Rule)
		assert.Equal(t, models.SeverityError, findings[0].Severity)
		assert.Contains(t, findings[0].Message, "missing a url")
		assert.Equal(t, 3, findings[0].Line)
	})

	t.Run("non http url and unknown key", func(t *testing.T) {
		content := "blank_issues: true\ncontact_links:\n" +
			"  - name: Forum\n    url: ftp://forum.example.com\n    about: Ask\n"
		path := writeTemplate(t, dir, "config.yml", content)

		findings, err := svc.LintFile(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, findings, 2)
		assert.Equal(t, "unknown-key", findings[0].Rule)
		assert.Equal(t, 1, findings[0].Line)
		assert.Equal(t, "contact-link", findings[1].Rule)
		assert.Contains(t, findings[1].Message, "non-http url")
	})
}

func TestLintDir(t *testing.T) {
	t.Run("merges findings sorted by file then line", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "bug_report.md", defaultBugReportTemplate)
		writeTemplate(t, dir, "custom.md", defaultCustomTemplate)
		writeTemplate(t, dir, "a_broken.md", "**No frontmatter**\ntext\n")
		writeTemplate(t, dir, "notes.txt", "not a template\n")

		svc := NewLintService(WithLintConcurrency(2))
		report, err := svc.LintDir(context.Background(), dir)

		require.NoError(t, err)
		assert.Equal(t, 3, report.Checked)
		require.Len(t, report.Findings, 2)
		assert.Contains(t, report.Findings[0].FilePath, "a_broken.md")
		assert.Equal(t, "frontmatter", report.Findings[0].Rule)
		assert.Contains(t, report.Findings[1].FilePath, "custom.md")
		assert.Equal(t, "labels", report.Findings[1].Rule)
		assert.True(t, report.HasErrors())

		errs, warns, _ := report.Counts()
		assert.Equal(t, 1, errs)
		assert.Equal(t, 1, warns)
	})

	t.Run("missing directory", func(t *testing.T) {
		svc := NewLintService()

		_, err := svc.LintDir(context.Background(), filepath.Join(t.TempDir(), "nope"))

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrTemplatesDirMissing))
	})

	t.Run("empty directory checks nothing", func(t *testing.T) {
		svc := NewLintService()

		report, err := svc.LintDir(context.Background(), t.TempDir())

		require.NoError(t, err)
		assert.Equal(t, 0, report.Checked)
		assert.Empty(t, report.Findings)
	})
}

func TestLintServiceWatch(t *testing.T) {
	dir := t.TempDir()
	svc := NewLintService(WithLintDebounce(10 * time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reports := make(chan *models.LintReport, 4)
	done := make(chan error, 1)
	go func() {
		done <- svc.Watch(ctx, dir, func(r *models.LintReport) {
			reports <- r
		})
	}()

	// Let the watcher register before the first write.
	time.Sleep(100 * time.Millisecond)
	writeTemplate(t, dir, "bug_report.md", defaultBugReportTemplate)

	select {
	case report := <-reports:
		assert.Equal(t, 1, report.Checked)
		assert.False(t, report.HasErrors())
	case <-time.After(5 * time.Second):
		t.Fatal("no lint report received after write")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop on context cancel")
	}
}
