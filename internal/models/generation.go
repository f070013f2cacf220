package models

// ReportGenerationRequest contains the information needed to generate the
// content of a bug report from a free-form description.
type ReportGenerationRequest struct {
	// TemplateName is the display name of the template being filled.
	TemplateName string

	// SectionHeadings are the template's section headings in order; the
	// generator must produce content for each of them.
	SectionHeadings []string

	// Description is the reporter's free-form account of the problem.
	Description string

	// Hint is additional context to guide generation (optional).
	Hint string

	// Language is the language for content generation (e.g.: "es", "en").
	Language string
}

// ReportGenerationResult contains the generated report content.
type ReportGenerationResult struct {
	// Title is the generated issue title.
	Title string

	// Sections maps section headings to generated content. Headings not
	// present keep their placeholder text.
	Sections map[string]string

	// Labels are the suggested labels for the issue.
	Labels []string

	// Usage contains metadata on token usage by the AI.
	Usage *TokenUsage
}
