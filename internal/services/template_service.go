package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thomas-vilte/issuemate/internal/config"
	domainErrors "github.com/thomas-vilte/issuemate/internal/errors"
	"github.com/thomas-vilte/issuemate/internal/logger"
	"github.com/thomas-vilte/issuemate/internal/markdown"
	"github.com/thomas-vilte/issuemate/internal/models"
	"github.com/thomas-vilte/issuemate/internal/vcs"
	"gopkg.in/yaml.v3"
)

// ChooserConfigFile is the chooser configuration the platform reads from
// the template directory. It is not itself a template.
const ChooserConfigFile = "config.yml"

type TemplateService struct {
	config *config.Config
}

type TemplateOption func(*TemplateService)

func WithTemplateConfig(cfg *config.Config) TemplateOption {
	return func(s *TemplateService) {
		s.config = cfg
	}
}

func NewTemplateService(opts ...TemplateOption) *TemplateService {
	s := &TemplateService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TemplatesDir resolves the directory the platform reads issue templates
// from: .github/ISSUE_TEMPLATE for GitHub, .gitlab/issue_templates for
// GitLab, or the configured override.
func (s *TemplateService) TemplatesDir(ctx context.Context) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		logger.Error(ctx, "failed to get current working directory", err)
		return "", domainErrors.NewAppError(domainErrors.TypeInternal, "failed to get current working directory", err)
	}

	if override := s.config.TemplatesDir; override != "" {
		if !filepath.IsAbs(override) {
			override = filepath.Join(cwd, override)
		}
		logger.Debug(ctx, "using configured templates directory", "path", override)
		return override, nil
	}

	provider := strings.ToLower(s.config.ActiveVCSProvider)
	var templatesDir string

	switch provider {
	case "gitlab":
		templatesDir = filepath.Join(cwd, ".gitlab", "issue_templates")
	case "github":
		fallthrough
	default:
		templatesDir = filepath.Join(cwd, ".github", "ISSUE_TEMPLATE")
	}

	logger.Debug(ctx, "identified templates directory", "provider", provider, "path", templatesDir)
	return templatesDir, nil
}

// ListTemplates returns the metadata of every template in the directory,
// in file-name order, which is the order the platform menu uses.
func (s *TemplateService) ListTemplates(ctx context.Context) ([]models.TemplateMetadata, error) {
	templatesDir, err := s.TemplatesDir(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(templatesDir); os.IsNotExist(err) {
		logger.Debug(ctx, "templates directory does not exist, returning empty list", "path", templatesDir)
		return []models.TemplateMetadata{}, nil
	}

	entries, err := os.ReadDir(templatesDir)
	if err != nil {
		logger.Error(ctx, "failed to read templates directory", err, "path", templatesDir)
		return nil, domainErrors.NewAppError(domainErrors.TypeInternal, "failed to read templates directory", err)
	}

	templates := make([]models.TemplateMetadata, 0)
	for _, entry := range entries {
		if entry.IsDir() || !isTemplateFile(entry.Name()) {
			continue
		}

		filePath := filepath.Join(templatesDir, entry.Name())
		template, err := s.LoadTemplate(ctx, filePath)
		if err != nil {
			logger.Warn(ctx, "skipping invalid template", "path", filePath, "error", err)
			continue
		}

		templates = append(templates, models.TemplateMetadata{
			Name:     template.Name,
			About:    template.GetAbout(),
			Labels:   template.Labels,
			FilePath: entry.Name(),
			IsForm:   template.IsForm(),
		})
	}

	logger.Debug(ctx, "listed templates", "count", len(templates))
	return templates, nil
}

func isTemplateFile(name string) bool {
	if name == ChooserConfigFile {
		return false
	}
	switch filepath.Ext(name) {
	case ".md", ".yml", ".yaml":
		return true
	}
	return false
}

// LoadTemplate loads and parses one template file. Markdown templates go
// through the frontmatter/section codec; .yml files are Issue Forms.
func (s *TemplateService) LoadTemplate(ctx context.Context, filePath string) (*models.IssueTemplate, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error(ctx, "failed to read template file", err, "path", filePath)
		return nil, domainErrors.NewAppError(domainErrors.TypeTemplate, fmt.Sprintf("failed to read template file: %s", filePath), err)
	}

	if filepath.Ext(filePath) == ".md" {
		return s.parseMarkdownTemplate(ctx, string(content), filePath)
	}
	return s.parseFormTemplate(ctx, string(content), filePath)
}

func (s *TemplateService) parseFormTemplate(ctx context.Context, content string, filePath string) (*models.IssueTemplate, error) {
	template := &models.IssueTemplate{
		FilePath: filePath,
	}

	if err := yaml.Unmarshal([]byte(content), template); err != nil {
		logger.Error(ctx, "failed to parse YAML template", err, "path", filePath)
		return nil, domainErrors.NewAppError(domainErrors.TypeTemplate, fmt.Sprintf("failed to parse YAML template: %s", filePath), err)
	}

	logger.Debug(ctx, "parsed form template", "name", template.Name, "path", filePath)
	return template, nil
}

func (s *TemplateService) parseMarkdownTemplate(ctx context.Context, content string, filePath string) (*models.IssueTemplate, error) {
	template := &models.IssueTemplate{
		FilePath: filePath,
	}

	frontmatter, body, found := markdown.SplitFrontmatter(content)
	if found {
		if err := yaml.Unmarshal([]byte(frontmatter), template); err != nil {
			logger.Warn(ctx, "failed to parse YAML frontmatter, using as plain markdown", "path", filePath, "error", err)
			body = content
		}
	}

	template.RawBody = strings.TrimSpace(body)
	template.Sections = markdown.ParseSections(template.RawBody)

	if template.Name == "" {
		template.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	logger.Debug(ctx, "parsed markdown template", "name", template.Name, "path", filePath, "sections", len(template.Sections))
	return template, nil
}

// GetTemplateByName finds a template by its display name (case-insensitive)
// or by its file name.
func (s *TemplateService) GetTemplateByName(ctx context.Context, name string) (*models.IssueTemplate, error) {
	templatesDir, err := s.TemplatesDir(ctx)
	if err != nil {
		return nil, err
	}

	metas, err := s.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	for _, meta := range metas {
		if strings.EqualFold(meta.Name, name) {
			return s.LoadTemplate(ctx, filepath.Join(templatesDir, meta.FilePath))
		}
	}

	possiblePaths := []string{
		filepath.Join(templatesDir, name),
		filepath.Join(templatesDir, name+".md"),
		filepath.Join(templatesDir, name+".yml"),
		filepath.Join(templatesDir, name+".yaml"),
	}
	for _, path := range possiblePaths {
		if isTemplateFile(filepath.Base(path)) {
			if _, err := os.Stat(path); err == nil {
				return s.LoadTemplate(ctx, path)
			}
		}
	}

	logger.Warn(ctx, "template not found by name", "name", name)
	return nil, domainErrors.ErrTemplateNotFound.WithContext("path", name)
}

// LoadChooserConfig reads the optional config.yml of the template
// directory. A missing file yields the platform defaults.
func (s *TemplateService) LoadChooserConfig(ctx context.Context) (*models.ChooserConfig, error) {
	templatesDir, err := s.TemplatesDir(ctx)
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(templatesDir, ChooserConfigFile)
	content, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		logger.Debug(ctx, "no chooser config, using defaults", "path", configPath)
		return &models.ChooserConfig{}, nil
	}
	if err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeTemplate, "failed to read chooser config", err)
	}

	var chooserCfg models.ChooserConfig
	if err := yaml.Unmarshal(content, &chooserCfg); err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeTemplate, fmt.Sprintf("failed to parse chooser config: %s", configPath), err)
	}
	return &chooserCfg, nil
}

// InitializeTemplates scaffolds the default template set. Existing files
// are skipped unless force is set.
func (s *TemplateService) InitializeTemplates(ctx context.Context, force bool) (created []string, skipped []string, err error) {
	templatesDir, err := s.TemplatesDir(ctx)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(templatesDir, 0755); err != nil {
		logger.Error(ctx, "failed to create templates directory", err, "path", templatesDir)
		return nil, nil, domainErrors.NewAppError(domainErrors.TypeInternal, "failed to create templates directory", err)
	}

	for _, name := range DefaultTemplateFiles() {
		filePath := filepath.Join(templatesDir, name)

		if _, statErr := os.Stat(filePath); statErr == nil && !force {
			logger.Debug(ctx, "template already exists, skipping", "path", filePath)
			skipped = append(skipped, filePath)
			continue
		}

		if writeErr := os.WriteFile(filePath, []byte(DefaultTemplateContent(name)), 0644); writeErr != nil {
			logger.Error(ctx, "failed to write template file during initialization", writeErr, "path", filePath)
			return created, skipped, domainErrors.NewAppError(domainErrors.TypeInternal, fmt.Sprintf("failed to write template: %s", filePath), writeErr)
		}
		logger.Info(ctx, "created template", "path", filePath)
		created = append(created, filePath)
	}

	logger.Info(ctx, "template initialization complete", "created", len(created), "skipped", len(skipped))
	if len(created) == 0 && len(skipped) > 0 {
		return created, skipped, domainErrors.ErrTemplatesAlreadyExist
	}
	return created, skipped, nil
}

// PullTemplates fetches the issue templates of a remote repository and
// writes them into the local template directory. It returns the fetched
// file names.
func (s *TemplateService) PullTemplates(ctx context.Context, client vcs.Client, owner, repo string, force bool) ([]string, error) {
	templatesDir, err := s.TemplatesDir(ctx)
	if err != nil {
		return nil, err
	}

	files, err := client.ListTemplateFiles(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(templatesDir, 0755); err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeInternal, "failed to create templates directory", err)
	}

	var fetched []string
	for _, file := range files {
		if !isTemplateFile(file.Name) && file.Name != ChooserConfigFile {
			continue
		}

		filePath := filepath.Join(templatesDir, file.Name)
		if _, statErr := os.Stat(filePath); statErr == nil && !force {
			logger.Debug(ctx, "local template exists, not overwriting", "path", filePath)
			continue
		}

		if writeErr := os.WriteFile(filePath, []byte(file.Content), 0644); writeErr != nil {
			return fetched, domainErrors.NewAppError(domainErrors.TypeInternal, fmt.Sprintf("failed to write template: %s", filePath), writeErr)
		}
		logger.Info(ctx, "fetched remote template", "path", filePath, "repo", owner+"/"+repo)
		fetched = append(fetched, file.Name)
	}

	return fetched, nil
}
