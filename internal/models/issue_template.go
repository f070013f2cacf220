package models

import "strings"

// IssueTemplate represents an issue template with its metadata.
//
// Two flavors exist on disk: legacy markdown templates (.md) with YAML
// frontmatter followed by a free-text body, and GitHub Issue Forms (.yml)
// where the whole file is YAML and the body is a list of typed form items.
type IssueTemplate struct {
	// YAML frontmatter metadata
	Name        string     `yaml:"name"`
	About       string     `yaml:"about,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Title       string     `yaml:"title,omitempty"`
	Labels      StringList `yaml:"labels,omitempty"`
	Assignees   StringList `yaml:"assignees,omitempty"`

	// Body holds the form items of a .yml Issue Form.
	Body []FormItem `yaml:"body,omitempty"`

	// Sections holds the parsed heading-delimited regions of a .md body.
	Sections []Section `yaml:"-"`

	// RawBody is the markdown body exactly as read, below the frontmatter.
	RawBody string `yaml:"-"`

	// Path to the template file
	FilePath string `yaml:"-"`
}

// GetAbout returns the template description (uses 'description' or 'about')
func (t *IssueTemplate) GetAbout() string {
	if t.Description != "" {
		return t.Description
	}
	return t.About
}

// IsForm reports whether the template is a GitHub Issue Form (.yml body).
func (t *IssueTemplate) IsForm() bool {
	return len(t.Body) > 0
}

// SectionHeadings returns the section headings of a markdown template in
// document order. For forms it returns the labels of the visible fields.
func (t *IssueTemplate) SectionHeadings() []string {
	if t.IsForm() {
		headings := make([]string, 0, len(t.Body))
		for _, item := range t.Body {
			if item.Type == FormTypeMarkdown {
				continue
			}
			if item.Attributes.Label != "" {
				headings = append(headings, item.Attributes.Label)
			}
		}
		return headings
	}

	headings := make([]string, 0, len(t.Sections))
	for _, s := range t.Sections {
		if s.Heading == "" {
			continue
		}
		headings = append(headings, s.Heading)
	}
	return headings
}

// HasSection reports whether the template body contains the given heading.
// Comparison ignores case and a trailing colon.
func (t *IssueTemplate) HasSection(heading string) bool {
	want := foldHeading(heading)
	for _, h := range t.SectionHeadings() {
		if foldHeading(h) == want {
			return true
		}
	}
	return false
}

func foldHeading(h string) string {
	h = strings.TrimSpace(h)
	h = strings.TrimSuffix(h, ":")
	return strings.ToLower(h)
}

// TemplateMetadata is the subset of a template the chooser menu needs.
type TemplateMetadata struct {
	Name     string
	About    string
	Labels   []string
	FilePath string
	IsForm   bool
}
