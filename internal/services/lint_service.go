package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	domainErrors "github.com/thomas-vilte/issuemate/internal/errors"
	"github.com/thomas-vilte/issuemate/internal/logger"
	"github.com/thomas-vilte/issuemate/internal/markdown"
	"github.com/thomas-vilte/issuemate/internal/models"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// canonicalSectionOrder is the relative order the bug-report sections must
// keep when a template uses them. Headings are compared normalized, so
// "Environment:" and "## Environment" both count.
var canonicalSectionOrder = []string{
	"describe the bug",
	"to reproduce",
	"expected behavior",
	"environment",
	"additional context",
}

// allowedFrontmatterKeys are the markdown frontmatter keys the chooser
// honors. Anything else is ignored by the renderer, which usually means
// a typo.
var allowedFrontmatterKeys = map[string]bool{
	"name":        true,
	"about":       true,
	"description": true,
	"title":       true,
	"labels":      true,
	"assignees":   true,
}

type LintService struct {
	concurrency int
	debounce    time.Duration
}

type LintOption func(*LintService)

// WithLintConcurrency bounds the directory lint fan-out.
func WithLintConcurrency(n int) LintOption {
	return func(s *LintService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithLintDebounce sets the settle window of watch mode.
func WithLintDebounce(d time.Duration) LintOption {
	return func(s *LintService) {
		if d > 0 {
			s.debounce = d
		}
	}
}

func NewLintService(opts ...LintOption) *LintService {
	s := &LintService{
		concurrency: 4,
		debounce:    300 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LintDir lints every template file in dir, plus the chooser config.yml
// when present, and merges the findings sorted by file, line and rule.
func (s *LintService) LintDir(ctx context.Context, dir string) (*models.LintReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domainErrors.ErrTemplatesDirMissing.WithContext("path", dir)
		}
		return nil, domainErrors.NewAppError(domainErrors.TypeLint, "failed to read templates directory", err).
			WithContext("path", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if isTemplateFile(name) || name == ChooserConfigFile {
			paths = append(paths, filepath.Join(dir, name))
		}
	}

	logger.Debug(ctx, "linting templates directory", "path", dir, "files", len(paths))

	var (
		mu       sync.Mutex
		findings []models.LintFinding
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, path := range paths {
		g.Go(func() error {
			fileFindings, err := s.LintFile(ctx, path)
			if err != nil {
				return err
			}
			mu.Lock()
			findings = append(findings, fileFindings...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortFindings(findings)
	return &models.LintReport{Findings: findings, Checked: len(paths)}, nil
}

// LintFile runs the rule set for a single template file. The chooser
// config.yml gets its own rules; .md files are linted as frontmatter plus
// sections, .yml files as Issue Forms.
func (s *LintService) LintFile(ctx context.Context, path string) ([]models.LintFinding, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeLint, "failed to read template file", err).
			WithContext("path", path)
	}

	logger.Debug(ctx, "linting template file", "path", path)

	source := strings.ReplaceAll(string(raw), "\r\n", "\n")
	var findings []models.LintFinding
	switch {
	case filepath.Base(path) == ChooserConfigFile:
		findings = lintChooserSource(path, source)
	case strings.EqualFold(filepath.Ext(path), ".md"):
		findings = lintMarkdownSource(path, source)
	case strings.EqualFold(filepath.Ext(path), ".yml"), strings.EqualFold(filepath.Ext(path), ".yaml"):
		findings = lintFormSource(path, source)
	default:
		return nil, domainErrors.NewAppError(domainErrors.TypeLint, "not a template file", nil).
			WithContext("path", path)
	}

	sortFindings(findings)
	return findings, nil
}

// Watch re-lints dir whenever a template file changes, calling onReport
// with each fresh report. Rapid saves are debounced. The loop runs until
// ctx is cancelled.
func (s *LintService) Watch(ctx context.Context, dir string, onReport func(*models.LintReport)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return domainErrors.NewAppError(domainErrors.TypeLint, "failed to create file watcher", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(dir); err != nil {
		return domainErrors.NewAppError(domainErrors.TypeLint, "failed to watch templates directory", err).
			WithContext("path", dir)
	}

	logger.Info(ctx, "watching templates directory", "path", dir)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(event.Name)
			if !isTemplateFile(name) && name != ChooserConfigFile {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug(ctx, "template file changed", "path", event.Name, "op", event.Op.String())
			pending[event.Name] = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn(ctx, "file watcher error", "error", err)

		case now := <-ticker.C:
			settled := false
			for path, at := range pending {
				if now.Sub(at) >= s.debounce {
					delete(pending, path)
					settled = true
				}
			}
			if !settled {
				continue
			}
			report, err := s.LintDir(ctx, dir)
			if err != nil {
				logger.Warn(ctx, "re-lint failed", "path", dir, "error", err)
				continue
			}
			onReport(report)
		}
	}
}

type lintRule struct {
	name string
	run  func(doc *lintDocument) []models.LintFinding
}

// lintDocument is a template file parsed once and shared by every rule.
type lintDocument struct {
	path     string
	source   string
	meta     models.IssueTemplate
	sections []models.Section
	headings []markdown.Heading

	frontmatter    string
	hasFrontmatter bool
	unterminated   bool
	fmKeys         []yamlKey
	fmInvalid      error

	// bodyOffset maps body line numbers to file line numbers.
	bodyOffset int
}

// yamlKey is a top-level mapping key with its 1-based file line.
type yamlKey struct {
	name string
	line int
}

var markdownRules = []lintRule{
	{"frontmatter", ruleFrontmatterPresent},
	{"frontmatter-yaml", ruleFrontmatterYAML},
	{"required-key", ruleRequiredKeys},
	{"labels", ruleLabels},
	{"unknown-key", ruleUnknownKeys},
	{"empty-body", ruleEmptyBody},
	{"section-order", ruleSectionOrder},
	{"duplicate-section", ruleDuplicateSections},
	{"empty-section", ruleEmptySections},
	{"environment-fields", ruleEnvironmentFields},
}

func lintMarkdownSource(path, source string) []models.LintFinding {
	doc := parseMarkdownForLint(path, source)

	var findings []models.LintFinding
	for _, rule := range markdownRules {
		for _, f := range rule.run(doc) {
			f.Rule = rule.name
			f.FilePath = path
			findings = append(findings, f)
		}
	}
	return findings
}

func parseMarkdownForLint(path, source string) *lintDocument {
	doc := &lintDocument{path: path, source: source}

	fm, body, found := markdown.SplitFrontmatter(source)
	doc.frontmatter = fm
	doc.hasFrontmatter = found
	doc.unterminated = !found && strings.HasPrefix(source, "---\n")

	if found {
		// Opening fence plus frontmatter lines plus closing fence.
		fmLines := 0
		if fm != "" {
			fmLines = strings.Count(fm, "\n") + 1
		}
		doc.bodyOffset = fmLines + 2

		if err := yaml.Unmarshal([]byte(fm), &doc.meta); err != nil {
			doc.fmInvalid = err
		} else {
			doc.fmKeys = topLevelKeys(fm, 1)
		}
	}

	doc.sections = markdown.ParseSections(body)
	doc.headings = markdown.Headings(body)
	return doc
}

// topLevelKeys returns the top-level mapping keys of a YAML document with
// their file lines. lineOffset is the number of file lines before the
// YAML content (the opening fence, for frontmatter).
func topLevelKeys(source string, lineOffset int) []yamlKey {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(source), &node); err != nil {
		return nil
	}
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return nil
	}

	mapping := node.Content[0]
	keys := make([]yamlKey, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keys = append(keys, yamlKey{
			name: mapping.Content[i].Value,
			line: mapping.Content[i].Line + lineOffset,
		})
	}
	return keys
}

func (d *lintDocument) keyLine(name string) int {
	for _, k := range d.fmKeys {
		if k.name == name {
			return k.line
		}
	}
	return 0
}

func (d *lintDocument) hasKey(name string) bool {
	return d.keyLine(name) > 0
}

func ruleFrontmatterPresent(doc *lintDocument) []models.LintFinding {
	if doc.hasFrontmatter {
		return nil
	}
	message := "missing frontmatter block; the template will not appear in the chooser"
	if doc.unterminated {
		message = "frontmatter block is never closed with ---"
	}
	return []models.LintFinding{{
		Severity: models.SeverityError,
		Message:  message,
		Line:     1,
	}}
}

func ruleFrontmatterYAML(doc *lintDocument) []models.LintFinding {
	if doc.fmInvalid == nil {
		return nil
	}
	return []models.LintFinding{{
		Severity: models.SeverityError,
		Message:  fmt.Sprintf("invalid frontmatter YAML: %v", doc.fmInvalid),
		Line:     1,
	}}
}

func ruleRequiredKeys(doc *lintDocument) []models.LintFinding {
	if !doc.hasFrontmatter || doc.fmInvalid != nil {
		return nil
	}

	var findings []models.LintFinding

	switch {
	case !doc.hasKey("name"):
		findings = append(findings, models.LintFinding{
			Severity: models.SeverityError,
			Message:  `frontmatter is missing required key "name"`,
			Line:     1,
		})
	case strings.TrimSpace(doc.meta.Name) == "":
		findings = append(findings, models.LintFinding{
			Severity: models.SeverityError,
			Message:  `frontmatter key "name" is empty`,
			Line:     doc.keyLine("name"),
		})
	}

	// "description" is the Issue Forms spelling; both satisfy about.
	aboutLine := doc.keyLine("about")
	if aboutLine == 0 {
		aboutLine = doc.keyLine("description")
	}
	switch {
	case aboutLine == 0:
		findings = append(findings, models.LintFinding{
			Severity: models.SeverityError,
			Message:  `frontmatter is missing required key "about"`,
			Line:     1,
		})
	case strings.TrimSpace(doc.meta.GetAbout()) == "":
		findings = append(findings, models.LintFinding{
			Severity: models.SeverityError,
			Message:  `frontmatter key "about" is empty`,
			Line:     aboutLine,
		})
	}
	return findings
}

func ruleLabels(doc *lintDocument) []models.LintFinding {
	if !doc.hasFrontmatter || doc.fmInvalid != nil {
		return nil
	}
	if doc.hasKey("labels") && len(doc.meta.Labels) > 0 {
		return nil
	}
	line := doc.keyLine("labels")
	if line == 0 {
		line = 1
	}
	return []models.LintFinding{{
		Severity: models.SeverityWarning,
		Message:  "frontmatter declares no labels; issues will arrive untriaged",
		Line:     line,
	}}
}

func ruleUnknownKeys(doc *lintDocument) []models.LintFinding {
	if !doc.hasFrontmatter || doc.fmInvalid != nil {
		return nil
	}

	var findings []models.LintFinding
	for _, key := range doc.fmKeys {
		if allowedFrontmatterKeys[key.name] {
			continue
		}
		findings = append(findings, models.LintFinding{
			Severity: models.SeverityWarning,
			Message:  fmt.Sprintf("frontmatter key %q is not read by the platform", key.name),
			Line:     key.line,
		})
	}
	return findings
}

func ruleEmptyBody(doc *lintDocument) []models.LintFinding {
	for _, s := range doc.sections {
		if s.Heading != "" || strings.TrimSpace(s.Body) != "" {
			return nil
		}
	}
	return []models.LintFinding{{
		Severity: models.SeverityError,
		Message:  "template body is empty",
		Line:     1,
	}}
}

func ruleSectionOrder(doc *lintDocument) []models.LintFinding {
	rank := make(map[string]int, len(canonicalSectionOrder))
	for i, h := range canonicalSectionOrder {
		rank[h] = i
	}

	last := -1
	for _, h := range doc.headings {
		r, known := rank[markdown.NormalizeHeading(h.Text)]
		if !known {
			continue
		}
		if r < last {
			return []models.LintFinding{{
				Severity: models.SeverityError,
				Message: fmt.Sprintf("section %q is out of order; expected: %s",
					h.Text, strings.Join(canonicalSectionTitles(), ", ")),
				Line: doc.bodyOffset + h.Line,
			}}
		}
		last = r
	}
	return nil
}

func canonicalSectionTitles() []string {
	return []string{"Describe the bug", "To Reproduce", "Expected behavior", "Environment", "Additional context"}
}

func ruleDuplicateSections(doc *lintDocument) []models.LintFinding {
	var findings []models.LintFinding
	seen := make(map[string]bool)
	for _, h := range doc.headings {
		normalized := markdown.NormalizeHeading(h.Text)
		if seen[normalized] {
			findings = append(findings, models.LintFinding{
				Severity: models.SeverityError,
				Message:  fmt.Sprintf("duplicate section %q", h.Text),
				Line:     doc.bodyOffset + h.Line,
			})
			continue
		}
		seen[normalized] = true
	}
	return findings
}

func ruleEmptySections(doc *lintDocument) []models.LintFinding {
	var findings []models.LintFinding
	headingIdx := -1
	for _, s := range doc.sections {
		if s.Heading == "" {
			// Preamble sections have no heading entry.
			continue
		}
		headingIdx++
		if strings.TrimSpace(s.Body) != "" {
			continue
		}
		line := 0
		if headingIdx < len(doc.headings) {
			line = doc.bodyOffset + doc.headings[headingIdx].Line
		}
		findings = append(findings, models.LintFinding{
			Severity: models.SeverityWarning,
			Message:  fmt.Sprintf("section %q has no content", s.Heading),
			Line:     line,
		})
	}
	return findings
}

func ruleEnvironmentFields(doc *lintDocument) []models.LintFinding {
	var envSection *models.Section
	for i := range doc.sections {
		if markdown.NormalizeHeading(doc.sections[i].Heading) == "environment" {
			envSection = &doc.sections[i]
			break
		}
	}
	if envSection == nil {
		return nil
	}

	hasOS, hasVersion := false, false
	for _, line := range strings.Split(envSection.Body, "\n") {
		item := strings.TrimSpace(line)
		item = strings.TrimPrefix(item, "-")
		item = strings.TrimPrefix(item, "*")
		item = strings.ToLower(strings.TrimSpace(item))
		if strings.HasPrefix(item, "os") {
			hasOS = true
		}
		if strings.HasPrefix(item, "version") {
			hasVersion = true
		}
	}

	var findings []models.LintFinding
	line := headingLine(doc, "environment")
	if !hasOS {
		findings = append(findings, models.LintFinding{
			Severity: models.SeverityWarning,
			Message:  "environment section has no OS line",
			Line:     line,
		})
	}
	if !hasVersion {
		findings = append(findings, models.LintFinding{
			Severity: models.SeverityWarning,
			Message:  "environment section has no Version line",
			Line:     line,
		})
	}
	return findings
}

func headingLine(doc *lintDocument, normalized string) int {
	for _, h := range doc.headings {
		if markdown.NormalizeHeading(h.Text) == normalized {
			return doc.bodyOffset + h.Line
		}
	}
	return 0
}

func lintFormSource(path, source string) []models.LintFinding {
	finding := func(severity models.Severity, rule, message string, line int) models.LintFinding {
		return models.LintFinding{
			Severity: severity,
			Rule:     rule,
			Message:  message,
			FilePath: path,
			Line:     line,
		}
	}

	var form models.IssueTemplate
	if err := yaml.Unmarshal([]byte(source), &form); err != nil {
		return []models.LintFinding{
			finding(models.SeverityError, "form-yaml", fmt.Sprintf("invalid form YAML: %v", err), 1),
		}
	}

	var findings []models.LintFinding
	if strings.TrimSpace(form.Name) == "" {
		findings = append(findings, finding(models.SeverityError, "required-key",
			`form is missing required key "name"`, 1))
	}
	if strings.TrimSpace(form.Description) == "" {
		findings = append(findings, finding(models.SeverityError, "required-key",
			`form is missing required key "description"`, 1))
	}
	if len(form.Body) == 0 {
		findings = append(findings, finding(models.SeverityError, "form-body",
			"form has no body items", 1))
		return findings
	}

	itemLines := formItemLines(source)
	lineOf := func(i int) int {
		if i < len(itemLines) {
			return itemLines[i]
		}
		return 0
	}

	seenIDs := make(map[string]int)
	for i, item := range form.Body {
		if !models.IsKnownFormType(item.Type) {
			findings = append(findings, finding(models.SeverityError, "form-item-type",
				fmt.Sprintf("body item %d has unknown type %q", i+1, item.Type), lineOf(i)))
			continue
		}

		switch item.Type {
		case models.FormTypeMarkdown:
			if strings.TrimSpace(item.Attributes.Value) == "" {
				findings = append(findings, finding(models.SeverityWarning, "form-item-value",
					fmt.Sprintf("markdown body item %d has no value", i+1), lineOf(i)))
			}
		default:
			if strings.TrimSpace(item.Attributes.Label) == "" {
				findings = append(findings, finding(models.SeverityError, "form-item-label",
					fmt.Sprintf("body item %d (%s) is missing a label", i+1, item.Type), lineOf(i)))
			}
		}

		if item.Type == models.FormTypeDropdown || item.Type == models.FormTypeCheckboxes {
			if len(item.Attributes.Options) == 0 {
				findings = append(findings, finding(models.SeverityError, "form-item-options",
					fmt.Sprintf("body item %d (%s) has no options", i+1, item.Type), lineOf(i)))
			}
		}

		if item.ID != "" {
			if first, dup := seenIDs[item.ID]; dup {
				findings = append(findings, finding(models.SeverityError, "duplicate-id",
					fmt.Sprintf("body item %d reuses id %q of item %d", i+1, item.ID, first), lineOf(i)))
			} else {
				seenIDs[item.ID] = i + 1
			}
		}
	}
	return findings
}

// formItemLines returns the 1-based line of each body item of an Issue
// Form document.
func formItemLines(source string) []int {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(source), &node); err != nil {
		return nil
	}
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return nil
	}

	mapping := node.Content[0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != "body" {
			continue
		}
		sequence := mapping.Content[i+1]
		if sequence.Kind != yaml.SequenceNode {
			return nil
		}
		lines := make([]int, len(sequence.Content))
		for j, item := range sequence.Content {
			lines[j] = item.Line
		}
		return lines
	}
	return nil
}

func lintChooserSource(path, source string) []models.LintFinding {
	finding := func(severity models.Severity, rule, message string, line int) models.LintFinding {
		return models.LintFinding{
			Severity: severity,
			Rule:     rule,
			Message:  message,
			FilePath: path,
			Line:     line,
		}
	}

	var cfg models.ChooserConfig
	if err := yaml.Unmarshal([]byte(source), &cfg); err != nil {
		return []models.LintFinding{
			finding(models.SeverityError, "chooser-yaml", fmt.Sprintf("invalid chooser config YAML: %v", err), 1),
		}
	}

	var findings []models.LintFinding
	for _, key := range topLevelKeys(source, 0) {
		if key.name == "blank_issues_enabled" || key.name == "contact_links" {
			continue
		}
		findings = append(findings, finding(models.SeverityWarning, "unknown-key",
			fmt.Sprintf("chooser config key %q is not read by the platform", key.name), key.line))
	}

	linkLines := chooserLinkLines(source)
	lineOf := func(i int) int {
		if i < len(linkLines) {
			return linkLines[i]
		}
		return 0
	}
	for i, link := range cfg.ContactLinks {
		if strings.TrimSpace(link.Name) == "" {
			findings = append(findings, finding(models.SeverityError, "contact-link",
				fmt.Sprintf("contact link %d is missing a name", i+1), lineOf(i)))
		}
		if strings.TrimSpace(link.URL) == "" {
			findings = append(findings, finding(models.SeverityError, "contact-link",
				fmt.Sprintf("contact link %d is missing a url", i+1), lineOf(i)))
		} else if !strings.HasPrefix(link.URL, "http://") && !strings.HasPrefix(link.URL, "https://") {
			findings = append(findings, finding(models.SeverityError, "contact-link",
				fmt.Sprintf("contact link %d has a non-http url %q", i+1, link.URL), lineOf(i)))
		}
		if strings.TrimSpace(link.About) == "" {
			findings = append(findings, finding(models.SeverityWarning, "contact-link",
				fmt.Sprintf("contact link %d has no about text", i+1), lineOf(i)))
		}
	}
	return findings
}

func chooserLinkLines(source string) []int {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(source), &node); err != nil {
		return nil
	}
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return nil
	}

	mapping := node.Content[0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != "contact_links" {
			continue
		}
		sequence := mapping.Content[i+1]
		if sequence.Kind != yaml.SequenceNode {
			return nil
		}
		lines := make([]int, len(sequence.Content))
		for j, item := range sequence.Content {
			lines[j] = item.Line
		}
		return lines
	}
	return nil
}

func sortFindings(findings []models.LintFinding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].FilePath != findings[j].FilePath {
			return findings[i].FilePath < findings[j].FilePath
		}
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Rule < findings[j].Rule
	})
}
