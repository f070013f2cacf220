package gemini

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/issuemate/internal/config"
	domainErrors "github.com/thomas-vilte/issuemate/internal/errors"
	"github.com/thomas-vilte/issuemate/internal/models"
	"github.com/thomas-vilte/issuemate/internal/services/cost"
	"google.golang.org/genai"
)

func newTestGenerator() *GeminiReportGenerator {
	return &GeminiReportGenerator{
		modelName:  "gemini-2.5-flash",
		calculator: cost.NewCalculator(),
	}
}

func textResponse(payload string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: payload}},
				},
			},
		},
	}
}

func bugRequest() models.ReportGenerationRequest {
	return models.ReportGenerationRequest{
		TemplateName: "Bug report",
		SectionHeadings: []string{
			"Describe the bug",
			"To Reproduce",
			"Expected behavior",
			"Environment",
			"Additional context",
		},
		Description: "the editor crashes when saving large files",
		Language:    "en",
	}
}

func TestNewGeminiReportGenerator(t *testing.T) {
	t.Run("no gemini provider configured", func(t *testing.T) {
		cfg := &config.Config{}

		gen, err := NewGeminiReportGenerator(context.Background(), cfg)

		assert.Nil(t, gen)
		assert.ErrorIs(t, err, domainErrors.ErrAPIKeyMissing)
	})

	t.Run("empty API key", func(t *testing.T) {
		cfg := &config.Config{
			AIProviders: map[string]config.AIProviderConfig{
				"gemini": {APIKey: ""},
			},
		}

		gen, err := NewGeminiReportGenerator(context.Background(), cfg)

		assert.Nil(t, gen)
		assert.ErrorIs(t, err, domainErrors.ErrAPIKeyMissing)
	})
}

func TestGeminiReportGenerator_GenerateReportContent(t *testing.T) {
	t.Run("parses structured response", func(t *testing.T) {
		payload, err := json.Marshal(map[string]interface{}{
			"title": "Editor crashes when saving large files",
			"sections": []map[string]string{
				{"heading": "Describe the bug", "content": "The editor exits with a segfault when saving files over 100MB."},
				{"heading": "To Reproduce", "content": "1. Open a file over 100MB\n2. Press save"},
			},
			"labels": []string{"Bug", "crash", "banana"},
		})
		require.NoError(t, err)

		gen := newTestGenerator()
		var gotModel, gotPrompt string
		gen.generateFn = func(ctx context.Context, model string, prompt string) (interface{}, *models.TokenUsage, error) {
			gotModel = model
			gotPrompt = prompt
			usage := &models.TokenUsage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150}
			return textResponse(string(payload)), usage, nil
		}

		result, err := gen.GenerateReportContent(context.Background(), bugRequest())

		require.NoError(t, err)
		assert.Equal(t, "Editor crashes when saving large files", result.Title)
		assert.Equal(t, "The editor exits with a segfault when saving files over 100MB.", result.Sections["Describe the bug"])
		assert.Equal(t, "1. Open a file over 100MB\n2. Press save", result.Sections["To Reproduce"])
		assert.Equal(t, []string{"bug", "crash"}, result.Labels)

		assert.Equal(t, "gemini-2.5-flash", gotModel)
		assert.Contains(t, gotPrompt, "the editor crashes when saving large files")
		assert.Contains(t, gotPrompt, `"Bug report"`)
		assert.Contains(t, gotPrompt, "- Describe the bug")
		assert.Contains(t, gotPrompt, "- Additional context")
		assert.NotContains(t, gotPrompt, "Additional hint")

		require.NotNil(t, result.Usage)
		assert.Equal(t, "gemini-2.5-flash", result.Usage.Model)
		assert.Equal(t, 150, result.Usage.TotalTokens)
		assert.InDelta(t, 0.00003, result.Usage.CostUSD, 1e-9)
		assert.GreaterOrEqual(t, result.Usage.DurationMs, int64(0))
	})

	t.Run("accepts a raw string response wrapped in fences", func(t *testing.T) {
		gen := newTestGenerator()
		gen.generateFn = func(ctx context.Context, model string, prompt string) (interface{}, *models.TokenUsage, error) {
			return "```json\n{\"title\": \"Crash on save\", \"sections\": [], \"labels\": []}\n```", nil, nil
		}

		result, err := gen.GenerateReportContent(context.Background(), bugRequest())

		require.NoError(t, err)
		assert.Equal(t, "Crash on save", result.Title)
		assert.Empty(t, result.Sections)
		assert.Nil(t, result.Usage)
	})

	t.Run("falls back to first section when response is not JSON", func(t *testing.T) {
		gen := newTestGenerator()
		gen.generateFn = func(ctx context.Context, model string, prompt string) (interface{}, *models.TokenUsage, error) {
			return "the model rambled instead of returning JSON", nil, nil
		}

		result, err := gen.GenerateReportContent(context.Background(), bugRequest())

		require.NoError(t, err)
		assert.Equal(t, "Generated report", result.Title)
		assert.Equal(t, "the model rambled instead of returning JSON", result.Sections["Describe the bug"])
		assert.Empty(t, result.Labels)
	})

	t.Run("empty response is an error", func(t *testing.T) {
		gen := newTestGenerator()
		gen.generateFn = func(ctx context.Context, model string, prompt string) (interface{}, *models.TokenUsage, error) {
			return textResponse(""), nil, nil
		}

		result, err := gen.GenerateReportContent(context.Background(), bugRequest())

		assert.Nil(t, result)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty response from AI")
	})

	t.Run("propagates quota errors", func(t *testing.T) {
		gen := newTestGenerator()
		gen.generateFn = func(ctx context.Context, model string, prompt string) (interface{}, *models.TokenUsage, error) {
			return nil, nil, domainErrors.ErrGeminiQuotaExceeded
		}

		result, err := gen.GenerateReportContent(context.Background(), bugRequest())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domainErrors.ErrGeminiQuotaExceeded)
	})

	t.Run("spanish prompt when language is es", func(t *testing.T) {
		gen := newTestGenerator()
		var gotPrompt string
		gen.generateFn = func(ctx context.Context, model string, prompt string) (interface{}, *models.TokenUsage, error) {
			gotPrompt = prompt
			return "{\"title\": \"t\", \"sections\": [], \"labels\": []}", nil, nil
		}

		request := bugRequest()
		request.Language = "es"
		_, err := gen.GenerateReportContent(context.Background(), request)

		require.NoError(t, err)
		assert.Contains(t, gotPrompt, "Respondé en español")
	})

	t.Run("hint is rendered into the prompt", func(t *testing.T) {
		gen := newTestGenerator()
		var gotPrompt string
		gen.generateFn = func(ctx context.Context, model string, prompt string) (interface{}, *models.TokenUsage, error) {
			gotPrompt = prompt
			return "{\"title\": \"t\", \"sections\": [], \"labels\": []}", nil, nil
		}

		request := bugRequest()
		request.Hint = "started after upgrading to v2.1"
		_, err := gen.GenerateReportContent(context.Background(), request)

		require.NoError(t, err)
		assert.Contains(t, gotPrompt, "Additional hint")
		assert.Contains(t, gotPrompt, "started after upgrading to v2.1")
	})
}

func TestGeminiReportGenerator_ParseReportResponse(t *testing.T) {
	gen := newTestGenerator()

	t.Run("skips entries without a heading", func(t *testing.T) {
		content := `{"title": "t", "sections": [{"heading": "  ", "content": "lost"}, {"heading": "Environment", "content": "- OS: linux"}], "labels": []}`

		result, err := gen.parseReportResponse(content, bugRequest())

		require.NoError(t, err)
		assert.Len(t, result.Sections, 1)
		assert.Equal(t, "- OS: linux", result.Sections["Environment"])
	})

	t.Run("defaults an empty title", func(t *testing.T) {
		content := `{"title": "   ", "sections": [], "labels": []}`

		result, err := gen.parseReportResponse(content, bugRequest())

		require.NoError(t, err)
		assert.Equal(t, "Generated report", result.Title)
	})

	t.Run("fallback heading when request has no sections", func(t *testing.T) {
		request := models.ReportGenerationRequest{Description: "x"}

		result, err := gen.parseReportResponse("plain text", request)

		require.NoError(t, err)
		assert.Equal(t, "plain text", result.Sections["Describe the bug"])
	})
}
