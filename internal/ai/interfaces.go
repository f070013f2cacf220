package ai

import (
	"context"

	"github.com/thomas-vilte/issuemate/internal/models"
)

// ReportContentGenerator defines the interface to generate bug report
// content with AI.
type ReportContentGenerator interface {
	// GenerateReportContent generates the title, per-section content and
	// labels of a report from the description in the request.
	GenerateReportContent(ctx context.Context, request models.ReportGenerationRequest) (*models.ReportGenerationResult, error)
}

// GenerateFunc is the raw model call a generator runs. Providers swap it
// in tests to avoid hitting the real API.
type GenerateFunc func(ctx context.Context, model string, prompt string) (interface{}, *models.TokenUsage, error)
