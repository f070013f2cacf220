package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/thomas-vilte/issuemate/internal/models"
)

// PrintLintReport writes lint findings grouped by file, one finding per
// line, in the compiler-diagnostic style editors know how to jump to.
func PrintLintReport(w io.Writer, report *models.LintReport) {
	var lastFile string
	for _, finding := range report.Findings {
		if finding.FilePath != lastFile {
			if lastFile != "" {
				_, _ = fmt.Fprintln(w)
			}
			_, _ = fmt.Fprintln(w, Info.Sprint(finding.FilePath))
			lastFile = finding.FilePath
		}

		location := ""
		if finding.Line > 0 {
			location = fmt.Sprintf("%d: ", finding.Line)
		}
		_, _ = fmt.Fprintf(w, "  %s%s %s %s\n",
			Dim.Sprint(location),
			severityBadge(finding.Severity),
			finding.Message,
			Dim.Sprintf("(%s)", finding.Rule),
		)
	}
	if len(report.Findings) > 0 {
		_, _ = fmt.Fprintln(w)
	}
}

func severityBadge(severity models.Severity) string {
	switch severity {
	case models.SeverityError:
		return color.New(color.FgRed, color.Bold).Sprint("error:")
	case models.SeverityWarning:
		return color.New(color.FgYellow).Sprint("warning:")
	default:
		return color.New(color.FgCyan).Sprint("info:")
	}
}
