package ai

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// PromptData holds the values injected into the report prompt templates.
type PromptData struct {
	TemplateName string
	SectionList  string
	Description  string
	Hint         string
}

// RenderPrompt renders a prompt template with the provided data.
func RenderPrompt(name, tmplStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("error parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

const reportPromptTemplateEN = `# Task
Act as an experienced software engineer writing a bug report. Turn the
user's raw description into a complete, well-formed report.

# What the user observed
{{.Description}}
{{if .Hint}}
# Additional hint
{{.Hint}}
{{end}}
# Report structure
The report follows the "{{.TemplateName}}" template and has exactly these sections:
{{.SectionList}}

# Requirements
- Respond in English.
- "title": short and specific, under 80 characters, no trailing period.
- "sections": one entry per section listed above, the "heading" copied verbatim and the "content" in markdown.
- Write the reproduction steps as a numbered list.
- Leave a section's content empty when nothing can be inferred from the description. Never invent facts, versions or error messages.
- "labels": pick the labels that fit the report.`

const reportPromptTemplateES = `# Tarea
Actuá como un ingeniero de software con experiencia escribiendo un reporte de bug. Convertí la descripción cruda del usuario en un reporte completo y bien formado.

# Lo que el usuario observó
{{.Description}}
{{if .Hint}}
# Pista adicional
{{.Hint}}
{{end}}
# Estructura del reporte
El reporte sigue la plantilla "{{.TemplateName}}" y tiene exactamente estas secciones:
{{.SectionList}}

# Requisitos
- Respondé en español.
- "title": corto y específico, menos de 80 caracteres, sin punto final.
- "sections": una entrada por cada sección listada arriba, con el "heading" copiado textual y el "content" en markdown.
- Escribí los pasos de reproducción como lista numerada.
- Dejá el contenido de una sección vacío cuando no se pueda inferir nada de la descripción. Nunca inventes hechos, versiones ni mensajes de error.
- "labels": elegí las etiquetas que le queden al reporte.`

// GetReportPromptTemplate returns the report prompt for the given
// language, falling back to English.
func GetReportPromptTemplate(lang string) string {
	switch lang {
	case "es":
		return reportPromptTemplateES
	default:
		return reportPromptTemplateEN
	}
}

// FormatSectionList renders template section headings as the bullet list
// the prompt embeds.
func FormatSectionList(headings []string) string {
	if len(headings) == 0 {
		return "- Describe the bug"
	}

	var sb strings.Builder
	for i, heading := range headings {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- " + heading)
	}
	return sb.String()
}
