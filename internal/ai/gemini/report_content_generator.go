package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/thomas-vilte/issuemate/internal/ai"
	"github.com/thomas-vilte/issuemate/internal/config"
	domainErrors "github.com/thomas-vilte/issuemate/internal/errors"
	"github.com/thomas-vilte/issuemate/internal/logger"
	"github.com/thomas-vilte/issuemate/internal/models"
	"github.com/thomas-vilte/issuemate/internal/services/cost"
	"google.golang.org/genai"
)

type GeminiReportGenerator struct {
	client     *genai.Client
	modelName  string
	calculator *cost.Calculator
	generateFn ai.GenerateFunc
}

var _ ai.ReportContentGenerator = (*GeminiReportGenerator)(nil)

func NewGeminiReportGenerator(ctx context.Context, cfg *config.Config) (*GeminiReportGenerator, error) {
	providerCfg, exists := cfg.AIProviders["gemini"]
	if !exists || providerCfg.APIKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  providerCfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		errMsg := strings.ToLower(err.Error())
		if strings.Contains(errMsg, "invalid") ||
			strings.Contains(errMsg, "unauthorized") ||
			strings.Contains(errMsg, "api key") ||
			strings.Contains(errMsg, "authentication") {
			return nil, domainErrors.ErrGeminiAPIKeyInvalid.WithError(err)
		}
		return nil, domainErrors.NewAppError(domainErrors.TypeAI, "error creating AI client", err)
	}

	modelName := string(cfg.AIConfig.Models[config.AIGemini])
	if modelName == "" {
		modelName = string(config.DefaultModelForAI(config.AIGemini))
	}

	service := &GeminiReportGenerator{
		client:     client,
		modelName:  modelName,
		calculator: cost.NewCalculator(),
	}
	service.generateFn = service.defaultGenerate

	return service, nil
}

func getReportSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"title", "sections", "labels"},
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "The title of the issue",
			},
			"sections": {
				Type:        genai.TypeArray,
				Description: "One entry per template section",
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"heading", "content"},
					Properties: map[string]*genai.Schema{
						"heading": {
							Type:        genai.TypeString,
							Description: "A section heading copied verbatim from the template",
						},
						"content": {
							Type:        genai.TypeString,
							Description: "The markdown content of that section",
						},
					},
				},
			},
			"labels": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeString,
				},
				Description: "List of labels (e.g. bug, crash, regression)",
			},
		},
	}
}

func (s *GeminiReportGenerator) defaultGenerate(ctx context.Context, mName string, p string) (interface{}, *models.TokenUsage, error) {
	schema := getReportSchema()
	genConfig := GetGenerateConfig(mName, "application/json", schema)
	log := logger.FromContext(ctx)

	resp, err := s.client.Models.GenerateContent(ctx, mName, genai.Text(p), genConfig)
	if err != nil {
		log.Error("gemini API call failed",
			"error", err,
			"model", mName)

		errMsg := strings.ToLower(err.Error())
		if strings.Contains(errMsg, "quota") ||
			strings.Contains(errMsg, "rate limit") ||
			strings.Contains(errMsg, "resource exhausted") {
			return nil, nil, domainErrors.ErrGeminiQuotaExceeded.WithError(err)
		}

		if strings.Contains(errMsg, "invalid") ||
			strings.Contains(errMsg, "unauthorized") ||
			strings.Contains(errMsg, "api key") {
			return nil, nil, domainErrors.ErrGeminiAPIKeyInvalid.WithError(err)
		}

		return nil, nil, domainErrors.ErrAIGeneration.WithError(err)
	}

	usage := extractUsage(resp)
	return resp, usage, nil
}

// GenerateReportContent generates report content using Gemini AI.
func (s *GeminiReportGenerator) GenerateReportContent(ctx context.Context, request models.ReportGenerationRequest) (*models.ReportGenerationResult, error) {
	log := logger.FromContext(ctx)

	log.Info("generating report content via gemini",
		"template", request.TemplateName,
		"sections_count", len(request.SectionHeadings),
		"has_hint", request.Hint != "")

	prompt, err := s.buildReportPrompt(request)
	if err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeAI, "error building report prompt", err)
	}

	log.Debug("calling gemini API for report content",
		"prompt_length", len(prompt))

	startTime := time.Now()
	resp, usage, err := s.generateFn(ctx, s.modelName, prompt)
	if err != nil {
		log.Error("failed to generate report content",
			"error", err)
		return nil, err
	}

	var responseText string
	if geminiResp, ok := resp.(*genai.GenerateContentResponse); ok {
		responseText = formatResponse(geminiResp)
	} else if str, ok := resp.(string); ok {
		responseText = str
	} else {
		log.Warn("unexpected response type", "type", fmt.Sprintf("%T", resp))
	}

	if responseText == "" {
		log.Error("empty response from gemini AI")
		return nil, domainErrors.NewAppError(domainErrors.TypeAI, "empty response from AI", nil)
	}

	result, err := s.parseReportResponse(responseText, request)
	if err != nil {
		log.Error("failed to parse report response",
			"error", err)
		return nil, domainErrors.NewAppError(domainErrors.TypeAI, "error parsing AI response", err)
	}

	result.Labels = cleanLabels(result.Labels)

	if usage != nil {
		usage.Model = s.modelName
		usage.CostUSD = s.calculator.EstimateCost("gemini", s.modelName, usage.InputTokens, usage.OutputTokens)
		usage.DurationMs = time.Since(startTime).Milliseconds()
	}
	result.Usage = usage

	log.Info("report content generated successfully via gemini",
		"title", result.Title,
		"sections_count", len(result.Sections),
		"labels_count", len(result.Labels))

	return result, nil
}

// buildReportPrompt builds the prompt to generate report content.
func (s *GeminiReportGenerator) buildReportPrompt(request models.ReportGenerationRequest) (string, error) {
	templateName := request.TemplateName
	if templateName == "" {
		templateName = "Bug report"
	}

	data := ai.PromptData{
		TemplateName: templateName,
		SectionList:  ai.FormatSectionList(request.SectionHeadings),
		Description:  request.Description,
		Hint:         request.Hint,
	}

	return ai.RenderPrompt("reportPrompt", ai.GetReportPromptTemplate(request.Language), data)
}

// parseReportResponse parses the Gemini JSON response.
func (s *GeminiReportGenerator) parseReportResponse(content string, request models.ReportGenerationRequest) (*models.ReportGenerationResult, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainErrors.NewAppError(domainErrors.TypeAI, "empty response from AI", nil)
	}

	content = extractJSON(content)

	var jsonResult struct {
		Title    string `json:"title"`
		Sections []struct {
			Heading string `json:"heading"`
			Content string `json:"content"`
		} `json:"sections"`
		Labels []string `json:"labels"`
	}

	if err := json.Unmarshal([]byte(content), &jsonResult); err != nil {
		logger.Warn(context.Background(), "failed to unmarshal JSON, using fallback",
			"error", err.Error())

		heading := "Describe the bug"
		if len(request.SectionHeadings) > 0 {
			heading = request.SectionHeadings[0]
		}
		return &models.ReportGenerationResult{
			Title:    "Generated report",
			Sections: map[string]string{heading: content},
			Labels:   []string{},
		}, nil
	}

	sections := make(map[string]string, len(jsonResult.Sections))
	for _, item := range jsonResult.Sections {
		heading := strings.TrimSpace(item.Heading)
		if heading == "" {
			continue
		}
		sections[heading] = strings.TrimSpace(item.Content)
	}

	result := &models.ReportGenerationResult{
		Title:    strings.TrimSpace(jsonResult.Title),
		Sections: sections,
		Labels:   jsonResult.Labels,
	}

	if result.Title == "" {
		result.Title = "Generated report"
	}

	return result, nil
}
