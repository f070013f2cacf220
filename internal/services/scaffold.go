package services

// The default template set. bug_report.md is the canonical document: the
// platform reads its frontmatter into the "new issue" menu and prefills
// the body, so its keys and section order are what the linter checks.

const defaultBugReportTemplate = `---
name: Bug report
about: Create a report to help us improve
labels: bug
---

**Describe the bug**
A clear and concise description of what the bug is.

**To Reproduce**
Steps to reproduce the behavior:
1. Go to '...'
2. Run '...'
3. See error

**Expected behavior**
A clear and concise description of what you expected to happen.

**Environment**
- OS: [e.g. Ubuntu 24.04]
- Version: [e.g. v0.3.0]

**Additional context**
Add any other context about the problem here.
`

const defaultFeatureRequestTemplate = `---
name: Feature request
about: Suggest an idea for this project
labels: enhancement
---

**Is your feature request related to a problem? Please describe.**
A clear and concise description of what the problem is. Ex. I'm always frustrated when [...]

**Describe the solution you'd like**
A clear and concise description of what you want to happen.

**Describe alternatives you've considered**
A clear and concise description of any alternative solutions or features you've considered.

**Additional context**
Add any other context or screenshots about the feature request here.
`

const defaultCustomTemplate = `---
name: Custom issue
about: File an issue that fits no other template
---

**Description**
Describe your issue here.

**Additional context**
Add any other context here.
`

const defaultBugFormTemplate = `name: Bug report (form)
description: Create a report to help us improve
labels:
  - bug
body:
  - type: markdown
    attributes:
      value: Thank you for reporting a bug!
  - type: textarea
    id: description
    attributes:
      label: Describe the bug
      description: A clear and concise description of what the bug is.
    validations:
      required: true
  - type: textarea
    id: steps
    attributes:
      label: To Reproduce
      description: Steps to reproduce the behavior.
      placeholder: |
        1. Go to '...'
        2. Run '...'
        3. See error
    validations:
      required: true
  - type: textarea
    id: expected
    attributes:
      label: Expected behavior
      description: A clear and concise description of what you expected to happen.
    validations:
      required: true
  - type: textarea
    id: environment
    attributes:
      label: Environment
      placeholder: |
        - OS: Ubuntu 24.04
        - Version: v0.3.0
    validations:
      required: true
  - type: textarea
    id: additional
    attributes:
      label: Additional context
      description: Add any other context about the problem here.
`

const defaultChooserConfig = `blank_issues_enabled: false
contact_links:
  - name: Questions & discussions
    url: https://github.com/thomas-vilte/issuemate/discussions
    about: Ask about using issuemate before filing a bug
`

// DefaultTemplateFiles returns the scaffold file names in the order they
// are written.
func DefaultTemplateFiles() []string {
	return []string{
		"bug_report.md",
		"feature_request.md",
		"custom.md",
		"bug_form.yml",
		ChooserConfigFile,
	}
}

// DefaultTemplateContent returns the scaffold content for one of the
// DefaultTemplateFiles names.
func DefaultTemplateContent(name string) string {
	switch name {
	case "bug_report.md":
		return defaultBugReportTemplate
	case "feature_request.md":
		return defaultFeatureRequestTemplate
	case "custom.md":
		return defaultCustomTemplate
	case "bug_form.yml":
		return defaultBugFormTemplate
	case ChooserConfigFile:
		return defaultChooserConfig
	default:
		return ""
	}
}
