package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// StringList is a list of strings that tolerates the two spellings GitHub
// accepts in template frontmatter: a YAML sequence, or a single scalar with
// comma-separated values ("labels: bug, needs-triage").
type StringList []string

func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = splitCommaList(s)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		out := make(StringList, 0, len(items))
		for _, item := range items {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("expected string or sequence, got yaml kind %d", value.Kind)
	}
}

func (l StringList) MarshalYAML() (interface{}, error) {
	return []string(l), nil
}

// Contains reports whether the list holds the given value.
func (l StringList) Contains(value string) bool {
	for _, item := range l {
		if item == value {
			return true
		}
	}
	return false
}

func splitCommaList(s string) StringList {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make(StringList, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
