package models

// Severity classifies a lint finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// LintFinding is one rule violation found in a template file.
type LintFinding struct {
	Severity Severity
	Rule     string
	Message  string
	FilePath string

	// Line is 1-based when the rule can point at one; zero otherwise.
	Line int
}

// LintReport aggregates the findings of a lint run.
type LintReport struct {
	Findings []LintFinding
	Checked  int
}

// HasErrors reports whether any finding has error severity.
func (r *LintReport) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Counts returns the number of findings per severity.
func (r *LintReport) Counts() (errors, warnings, infos int) {
	for _, f := range r.Findings {
		switch f.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		case SeverityInfo:
			infos++
		}
	}
	return errors, warnings, infos
}
