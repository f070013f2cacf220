package models

import "gopkg.in/yaml.v3"

// Form item types supported by GitHub Issue Forms.
const (
	FormTypeMarkdown   = "markdown"
	FormTypeInput      = "input"
	FormTypeTextarea   = "textarea"
	FormTypeDropdown   = "dropdown"
	FormTypeCheckboxes = "checkboxes"
)

// KnownFormTypes lists the valid values for FormItem.Type.
var KnownFormTypes = []string{
	FormTypeMarkdown,
	FormTypeInput,
	FormTypeTextarea,
	FormTypeDropdown,
	FormTypeCheckboxes,
}

// IsKnownFormType reports whether t is a form item type GitHub renders.
func IsKnownFormType(t string) bool {
	for _, known := range KnownFormTypes {
		if t == known {
			return true
		}
	}
	return false
}

// FormItem represents an item within a GitHub Issue Form (YAML).
type FormItem struct {
	Type        string          `yaml:"type"`
	ID          string          `yaml:"id,omitempty"`
	Attributes  FormAttributes  `yaml:"attributes,omitempty"`
	Validations FormValidations `yaml:"validations,omitempty"`
}

// FormAttributes contains the visual and behavioral attributes of the field.
type FormAttributes struct {
	Label       string       `yaml:"label,omitempty"`
	Description string       `yaml:"description,omitempty"`
	Placeholder string       `yaml:"placeholder,omitempty"`
	Value       string       `yaml:"value,omitempty"`  // For 'markdown' type elements
	Render      string       `yaml:"render,omitempty"` // Syntax highlighting for textareas
	Options     []FormOption `yaml:"options,omitempty"`
	Multiple    bool         `yaml:"multiple,omitempty"`
}

// FormValidations defines validation rules.
type FormValidations struct {
	Required bool `yaml:"required,omitempty"`
}

// FormOption is one selectable option of a dropdown or checkboxes item.
// Dropdowns spell options as plain strings, checkboxes as mappings with
// a label and an optional required flag; both decode into this type.
type FormOption struct {
	Label    string
	Required bool
}

func (o *FormOption) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&o.Label)
	}

	var raw struct {
		Label    string `yaml:"label"`
		Required bool   `yaml:"required"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	o.Label = raw.Label
	o.Required = raw.Required
	return nil
}

func (o FormOption) MarshalYAML() (interface{}, error) {
	if !o.Required {
		return o.Label, nil
	}
	return struct {
		Label    string `yaml:"label"`
		Required bool   `yaml:"required"`
	}{o.Label, o.Required}, nil
}
