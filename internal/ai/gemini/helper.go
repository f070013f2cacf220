package gemini

import (
	"strings"

	"github.com/thomas-vilte/issuemate/internal/models"
	"google.golang.org/genai"
)

// extractUsage extracts usage metadata from the Gemini response
func extractUsage(resp *genai.GenerateContentResponse) *models.TokenUsage {
	if resp == nil || resp.UsageMetadata == nil {
		return nil
	}
	return &models.TokenUsage{
		InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
		OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
	}
}

// GetGenerateConfig returns the generation configuration for the model.
func GetGenerateConfig(modelName string, responseType string, schema *genai.Schema) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature:     float32Ptr(0.3),
		MaxOutputTokens: int32(10000),
	}

	if responseType == "application/json" {
		config.ResponseMIMEType = "application/json"
		if schema != nil {
			config.ResponseJsonSchema = schema
		}
	}

	return config
}

func float32Ptr(f float32) *float32 {
	return &f
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if part.Thought {
					continue
				}
				if part.Text != "" {
					formattedContent.WriteString(part.Text)
				}
			}
		}
	}
	return formattedContent.String()
}

// extractJSON strips the markdown code fences Gemini sometimes wraps
// JSON output in.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

// cleanLabels lowercases, deduplicates and filters the labels the model
// suggested, keeping only names a tracker commonly understands.
func cleanLabels(labels []string) []string {
	allowedLabels := map[string]bool{
		"bug":              true,
		"crash":            true,
		"regression":       true,
		"performance":      true,
		"security":         true,
		"documentation":    true,
		"enhancement":      true,
		"question":         true,
		"needs-triage":     true,
		"good first issue": true,
		"help wanted":      true,
		"duplicate":        true,
		"invalid":          true,
		"wontfix":          true,
	}

	cleaned := make([]string, 0)
	seen := make(map[string]bool)

	for _, label := range labels {
		trimmed := strings.TrimSpace(strings.ToLower(label))
		if trimmed != "" && allowedLabels[trimmed] && !seen[trimmed] {
			cleaned = append(cleaned, trimmed)
			seen[trimmed] = true
		}
	}

	return cleaned
}
