package models

// ChooserEntry is one row of the "new issue" menu the platform renders
// from template frontmatter: the name, the about text, and where it leads.
type ChooserEntry struct {
	Name     string
	About    string
	Labels   []string
	FileName string

	// IsBlank marks the "open a blank issue" row.
	IsBlank bool

	// IsLink marks an external contact link row; URL is set for those.
	IsLink bool
	URL    string
}

// ChooserConfig mirrors the optional config.yml of a template directory,
// which tunes how the platform renders the chooser.
type ChooserConfig struct {
	// BlankIssuesEnabled is a pointer because GitHub defaults the setting
	// to true when config.yml or the key is absent.
	BlankIssuesEnabled *bool         `yaml:"blank_issues_enabled,omitempty"`
	ContactLinks       []ContactLink `yaml:"contact_links,omitempty"`
}

// BlankIssuesAllowed resolves the setting with the platform default.
func (c *ChooserConfig) BlankIssuesAllowed() bool {
	if c == nil || c.BlankIssuesEnabled == nil {
		return true
	}
	return *c.BlankIssuesEnabled
}

// ContactLink is an external row of the chooser (forums, security contact).
type ContactLink struct {
	Name  string `yaml:"name"`
	URL   string `yaml:"url"`
	About string `yaml:"about"`
}
