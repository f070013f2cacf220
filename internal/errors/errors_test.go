package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		innerErr := errors.New("connection refused")
		err := NewAppError(TypeVCS, "could not reach GitHub", innerErr)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "VCS")
		assert.Contains(t, err.Error(), "could not reach GitHub")
		assert.Contains(t, err.Error(), "connection refused")

		assert.Equal(t, innerErr, errors.Unwrap(err))
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewAppError(TypeTemplate, "template is empty", nil)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TEMPLATE")
		assert.Contains(t, err.Error(), "template is empty")
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("with path context", func(t *testing.T) {
		err := NewAppError(TypeTemplate, "cannot read template", nil).
			WithContext("path", ".github/ISSUE_TEMPLATE/bug_report.md")

		assert.Contains(t, err.Error(), "bug_report.md")
	})
}

func TestAppError_Is(t *testing.T) {
	t.Run("sentinel matches derived copies", func(t *testing.T) {
		withErr := ErrTokenMissing.WithError(errors.New("401"))
		withCtx := ErrTokenMissing.WithContext("provider", "github")

		assert.ErrorIs(t, withErr, ErrTokenMissing)
		assert.ErrorIs(t, withCtx, ErrTokenMissing)
	})

	t.Run("sentinel matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("publishing issue: %w", ErrRepoNotConfigured.WithContext("provider", "github"))

		assert.ErrorIs(t, err, ErrRepoNotConfigured)
		assert.NotErrorIs(t, err, ErrTokenMissing)
	})

	t.Run("different type or message does not match", func(t *testing.T) {
		assert.NotErrorIs(t, ErrTemplateNotFound, ErrNoTemplates)
		assert.NotErrorIs(t, ErrTokenMissing, errors.New("VCS token is missing"))
	})
}

func TestAppError_As(t *testing.T) {
	err := fmt.Errorf("linting: %w", ErrLintFailed)

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, TypeLint, appErr.Type)
	assert.NotEmpty(t, appErr.Suggestion)
}

func TestAppError_WithContext(t *testing.T) {
	base := NewAppError(TypeConfiguration, "missing field", nil)
	derived := base.WithContext("field", "owner").WithContext("file", "config.json")

	assert.Equal(t, "owner", derived.Context["field"])
	assert.Equal(t, "config.json", derived.Context["file"])
	assert.Nil(t, base.Context, "derived copies must not touch the original")
}

func TestAppError_WithSuggestion(t *testing.T) {
	base := NewAppError(TypeAI, "generation failed", nil)
	derived := base.WithSuggestion("check the API key")

	assert.Equal(t, "check the API key", derived.Suggestion)
	assert.Empty(t, base.Suggestion)
	assert.ErrorIs(t, derived, base)
}

func TestSentinels_CarrySuggestions(t *testing.T) {
	sentinels := []*AppError{
		ErrTemplatesDirMissing,
		ErrTemplateNotFound,
		ErrNoTemplates,
		ErrTemplatesAlreadyExist,
		ErrEmptyTemplate,
		ErrLintFailed,
		ErrConfigMissing,
		ErrRepoNotConfigured,
		ErrDraftNotFound,
		ErrTokenMissing,
		ErrRepositoryNotFound,
		ErrGitHubTokenInvalid,
		ErrGitHubInsufficientPerms,
		ErrGitHubRateLimit,
		ErrAPIKeyMissing,
		ErrAIGeneration,
		ErrGeminiAPIKeyInvalid,
		ErrGeminiQuotaExceeded,
		ErrUpdateFailed,
	}

	for _, sentinel := range sentinels {
		assert.NotEmpty(t, sentinel.Message)
		assert.NotEmpty(t, sentinel.Suggestion, "sentinel %q must tell the user what to do next", sentinel.Message)
	}
}
