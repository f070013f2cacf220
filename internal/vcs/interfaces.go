package vcs

import (
	"context"

	"github.com/thomas-vilte/issuemate/internal/models"
)

// Client defines the methods issuemate needs from a version control
// provider's API.
type Client interface {
	// CreateIssue creates a new issue in the repository.
	CreateIssue(ctx context.Context, title string, body string, labels []string, assignees []string) (*models.Issue, error)
	// GetRepoLabels gets all available labels in the repository.
	GetRepoLabels(ctx context.Context) ([]string, error)
	// CreateLabel creates a new label in the repository.
	CreateLabel(ctx context.Context, name string, color string, description string) error
	// EnsureLabels creates any of the given labels the repository is missing.
	EnsureLabels(ctx context.Context, labels []string) error
	// GetAuthenticatedUser gets the login of the authenticated user.
	GetAuthenticatedUser(ctx context.Context) (string, error)
	// ListTemplateFiles fetches the issue template files of a repository.
	ListTemplateFiles(ctx context.Context, owner, repo string) ([]models.RemoteFile, error)
}
