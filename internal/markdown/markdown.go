// Package markdown implements the issue-template document format: YAML
// frontmatter between --- fences followed by a markdown body, and the
// heading-delimited sections inside that body.
package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/thomas-vilte/issuemate/internal/models"
	"gopkg.in/yaml.v3"
)

const fence = "---"

var (
	atxHeadingPattern  = regexp.MustCompile(`^(#{1,6})\s+(.*?)\s*#*\s*$`)
	boldHeadingPattern = regexp.MustCompile(`^\*\*(.+?)\*\*\s*$`)
	codeFencePattern   = regexp.MustCompile("^(```|~~~)")
)

// SplitFrontmatter splits a template document into its YAML frontmatter and
// markdown body. The frontmatter fence must open at the very first byte;
// a document without one (or with an unterminated one) is returned whole as
// the body. CRLF input is normalized to LF.
func SplitFrontmatter(content string) (frontmatter, body string, found bool) {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	if !strings.HasPrefix(content, fence+"\n") {
		return "", content, false
	}

	rest := content[len(fence)+1:]
	if rest == fence || strings.HasPrefix(rest, fence+"\n") {
		// Empty frontmatter block.
		body = strings.TrimPrefix(strings.TrimPrefix(rest, fence), "\n")
		return "", body, true
	}

	if idx := strings.Index(rest, "\n"+fence+"\n"); idx >= 0 {
		return rest[:idx], rest[idx+len(fence)+2:], true
	}
	if strings.HasSuffix(rest, "\n"+fence) {
		return rest[:len(rest)-len(fence)-1], "", true
	}

	// Unterminated fence: treat the whole document as plain markdown.
	return "", content, false
}

// ParseSections splits a markdown body into heading-delimited sections.
// Both ATX headings ("## Heading") and the bold pseudo-headings of
// GitHub's generated templates ("**Heading**" alone on a line) open a
// section. Headings inside fenced code blocks are ignored. Content before
// the first heading becomes a section with an empty heading.
func ParseSections(body string) []models.Section {
	body = strings.ReplaceAll(body, "\r\n", "\n")

	var (
		sections    []models.Section
		current     *models.Section
		buf         []string
		inCodeFence bool
	)

	flush := func() {
		text := strings.TrimSpace(strings.Join(buf, "\n"))
		buf = buf[:0]
		if current != nil {
			current.Body = text
			sections = append(sections, *current)
			current = nil
			return
		}
		if text != "" {
			sections = append(sections, models.Section{Body: text})
		}
	}

	for _, line := range strings.Split(body, "\n") {
		if codeFencePattern.MatchString(line) {
			inCodeFence = !inCodeFence
			buf = append(buf, line)
			continue
		}
		if inCodeFence {
			buf = append(buf, line)
			continue
		}

		if m := atxHeadingPattern.FindStringSubmatch(line); m != nil {
			flush()
			current = &models.Section{
				Heading: m[2],
				Style:   models.HeadingATX,
				Level:   len(m[1]),
			}
			continue
		}
		if m := boldHeadingPattern.FindStringSubmatch(line); m != nil {
			flush()
			current = &models.Section{
				Heading: m[1],
				Style:   models.HeadingBold,
			}
			continue
		}

		buf = append(buf, line)
	}
	flush()

	return sections
}

// Heading is a section heading located in a markdown body.
type Heading struct {
	Text string
	Line int
}

// Headings returns the section headings of a markdown body in document
// order with their 1-based line numbers. Headings inside fenced code
// blocks are ignored, like in ParseSections.
func Headings(body string) []Heading {
	body = strings.ReplaceAll(body, "\r\n", "\n")

	var (
		headings    []Heading
		inCodeFence bool
	)
	for i, line := range strings.Split(body, "\n") {
		if codeFencePattern.MatchString(line) {
			inCodeFence = !inCodeFence
			continue
		}
		if inCodeFence {
			continue
		}
		if m := atxHeadingPattern.FindStringSubmatch(line); m != nil {
			headings = append(headings, Heading{Text: m[2], Line: i + 1})
			continue
		}
		if m := boldHeadingPattern.FindStringSubmatch(line); m != nil {
			headings = append(headings, Heading{Text: m[1], Line: i + 1})
		}
	}
	return headings
}

// RenderSections writes sections back out as a markdown body, preserving
// each section's heading style.
func RenderSections(sections []models.Section) string {
	var sb strings.Builder

	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		if s.Heading != "" {
			switch s.Style {
			case models.HeadingBold:
				sb.WriteString("**" + s.Heading + "**\n")
			default:
				level := s.Level
				if level < 1 || level > 6 {
					level = 2
				}
				sb.WriteString(strings.Repeat("#", level) + " " + s.Heading + "\n")
			}
		}
		if s.Body != "" {
			sb.WriteString(s.Body + "\n")
		}
	}

	return sb.String()
}

// ComposeDocument marshals frontmatter and joins it with a markdown body
// into a complete template document. A nil frontmatter yields the bare
// body. Compose round-trips everything SplitFrontmatter accepts.
func ComposeDocument(frontmatter interface{}, body string) (string, error) {
	if frontmatter == nil {
		return body, nil
	}

	encoded, err := yaml.Marshal(frontmatter)
	if err != nil {
		return "", fmt.Errorf("error marshaling frontmatter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fence + "\n")
	sb.Write(encoded)
	sb.WriteString(fence + "\n")
	if body != "" {
		sb.WriteString("\n")
		sb.WriteString(body)
	}
	return sb.String(), nil
}

// NormalizeHeading prepares a heading for comparisons: case is folded and
// a trailing colon (common in "**Environment:**") is dropped.
func NormalizeHeading(heading string) string {
	h := strings.TrimSpace(heading)
	h = strings.TrimSuffix(h, ":")
	return strings.ToLower(h)
}
