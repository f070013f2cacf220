package models

import "time"

// ReportDraft is a template being filled into a concrete issue report.
// Drafts persist as JSON under the config directory until published.
type ReportDraft struct {
	ID           string      `json:"id"`
	TemplateName string      `json:"template_name"`
	TemplateFile string      `json:"template_file,omitempty"`
	Title        string      `json:"title"`
	Sections     []Section   `json:"sections"`
	Labels       []string    `json:"labels,omitempty"`
	Assignees    []string    `json:"assignees,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	Usage        *TokenUsage `json:"-"`
}

// Section returns the draft section with the given heading, or nil.
func (d *ReportDraft) Section(heading string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Heading == heading {
			return &d.Sections[i]
		}
	}
	return nil
}

// SetSection fills the section with the given heading, appending a new
// one when the template did not declare it. The platform tolerates
// free-form additions, so unknown headings are not an error.
func (d *ReportDraft) SetSection(heading, content string) {
	if s := d.Section(heading); s != nil {
		s.Body = content
		return
	}
	d.Sections = append(d.Sections, Section{
		Heading: heading,
		Body:    content,
		Style:   HeadingBold,
	})
}

// FilledCount returns how many sections have non-empty content.
func (d *ReportDraft) FilledCount() int {
	n := 0
	for _, s := range d.Sections {
		if s.Body != "" {
			n++
		}
	}
	return n
}

// ShortID is the id prefix shown in listings, long enough to resume with.
func (d *ReportDraft) ShortID() string {
	if len(d.ID) > 8 {
		return d.ID[:8]
	}
	return d.ID
}

// Environment is the auto-detected context for the environment section
// of a bug report.
type Environment struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	AppVersion string `json:"app_version"`
	GoVersion  string `json:"go_version"`
}

// Lines renders the environment as the bullet list a bug report expects.
func (e Environment) Lines() []string {
	return []string{
		"- OS: " + e.OS + "/" + e.Arch,
		"- Version: " + e.AppVersion,
		"- Go: " + e.GoVersion,
	}
}
