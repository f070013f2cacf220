package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestExtractUsage(t *testing.T) {
	t.Run("nil response returns nil", func(t *testing.T) {
		assert.Nil(t, extractUsage(nil))
	})

	t.Run("response without metadata returns nil", func(t *testing.T) {
		assert.Nil(t, extractUsage(&genai.GenerateContentResponse{}))
	})

	t.Run("extracts token counts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
				PromptTokenCount:     120,
				CandidatesTokenCount: 80,
				TotalTokenCount:      200,
			},
		}

		usage := extractUsage(resp)

		require.NotNil(t, usage)
		assert.Equal(t, 120, usage.InputTokens)
		assert.Equal(t, 80, usage.OutputTokens)
		assert.Equal(t, 200, usage.TotalTokens)
	})
}

func TestFormatResponse(t *testing.T) {
	t.Run("nil response", func(t *testing.T) {
		assert.Empty(t, formatResponse(nil))
	})

	t.Run("no candidates", func(t *testing.T) {
		assert.Empty(t, formatResponse(&genai.GenerateContentResponse{}))
	})

	t.Run("candidate without content", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{}},
		}
		assert.Empty(t, formatResponse(resp))
	})

	t.Run("concatenates text parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{
					Content: &genai.Content{
						Parts: []*genai.Part{
							{Text: "hello "},
							{Text: "world"},
						},
					},
				},
			},
		}
		assert.Equal(t, "hello world", formatResponse(resp))
	})

	t.Run("skips thought parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{
					Content: &genai.Content{
						Parts: []*genai.Part{
							{Text: "internal reasoning", Thought: true},
							{Text: "visible answer"},
						},
					},
				},
			},
		}
		assert.Equal(t, "visible answer", formatResponse(resp))
	})
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain JSON untouched",
			input:    `{"title": "x"}`,
			expected: `{"title": "x"}`,
		},
		{
			name:     "json fence stripped",
			input:    "```json\n{\"title\": \"x\"}\n```",
			expected: `{"title": "x"}`,
		},
		{
			name:     "bare fence stripped",
			input:    "```\n{\"title\": \"x\"}\n```",
			expected: `{"title": "x"}`,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n{\"title\": \"x\"}\n  ",
			expected: `{"title": "x"}`,
		},
		{
			name:     "prose without fences untouched",
			input:    "not json at all",
			expected: "not json at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSON(tt.input))
		})
	}
}

func TestGetGenerateConfig(t *testing.T) {
	t.Run("json mode sets mime type and schema", func(t *testing.T) {
		schema := &genai.Schema{Type: genai.TypeObject}

		config := GetGenerateConfig("gemini-2.5-flash", "application/json", schema)

		require.NotNil(t, config)
		assert.Equal(t, "application/json", config.ResponseMIMEType)
		assert.Equal(t, schema, config.ResponseJsonSchema)
		require.NotNil(t, config.Temperature)
		assert.InDelta(t, 0.3, float64(*config.Temperature), 0.001)
		assert.Equal(t, int32(10000), config.MaxOutputTokens)
	})

	t.Run("plain mode leaves response format empty", func(t *testing.T) {
		config := GetGenerateConfig("gemini-2.5-flash", "text/plain", nil)

		require.NotNil(t, config)
		assert.Empty(t, config.ResponseMIMEType)
		assert.Nil(t, config.ResponseJsonSchema)
	})
}

func TestCleanLabels(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "lowercases and trims",
			input:    []string{" Bug ", "CRASH"},
			expected: []string{"bug", "crash"},
		},
		{
			name:     "deduplicates case-insensitively",
			input:    []string{"bug", "Bug", "BUG"},
			expected: []string{"bug"},
		},
		{
			name:     "drops labels the tracker does not understand",
			input:    []string{"bug", "banana", "urgent-fix-now"},
			expected: []string{"bug"},
		},
		{
			name:     "keeps multi-word labels",
			input:    []string{"good first issue", "help wanted"},
			expected: []string{"good first issue", "help wanted"},
		},
		{
			name:     "empty input",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "nil input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanLabels(tt.input))
		})
	}
}
