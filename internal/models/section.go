package models

// HeadingStyle identifies how a section heading is written in markdown.
type HeadingStyle string

const (
	// HeadingATX is a "## Heading" style heading.
	HeadingATX HeadingStyle = "atx"
	// HeadingBold is a "**Heading**" pseudo-heading on its own line,
	// the style GitHub's own generated templates use.
	HeadingBold HeadingStyle = "bold"
)

// Section is one heading-delimited free-text region of a template body.
type Section struct {
	Heading string       `json:"heading"`
	Body    string       `json:"body"`
	Style   HeadingStyle `json:"style,omitempty"`

	// Level is the ATX heading depth (2 for "##"). Zero for bold headings.
	Level int `json:"level,omitempty"`
}
