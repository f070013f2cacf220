package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeTemplate      ErrorType = "TEMPLATE"
	TypeLint          ErrorType = "LINT"
	TypeVCS           ErrorType = "VCS"
	TypeAI            ErrorType = "AI"
	TypeInternal      ErrorType = "INTERNAL"
	TypeUpdate        ErrorType = "UPDATE"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if path, ok := e.Context["path"].(string); ok && path != "" {
			msg += fmt.Sprintf(" - %s", path)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by type and message, so sentinel errors still match
// after WithContext or WithError derived copies of them.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Template errors
var (
	ErrTemplatesDirMissing = NewAppError(TypeTemplate, "Templates directory does not exist", nil).
				WithSuggestion("Scaffold the default templates first: issuemate template init")

	ErrTemplateNotFound = NewAppError(TypeTemplate, "Template not found", nil).
				WithSuggestion("List available templates: issuemate template list")

	ErrNoTemplates = NewAppError(TypeTemplate, "No templates found", nil).
			WithSuggestion("Create the default set: issuemate template init")

	ErrTemplatesAlreadyExist = NewAppError(TypeTemplate, "Templates already exist", nil).
					WithSuggestion("Use --force to overwrite the existing templates")

	ErrEmptyTemplate = NewAppError(TypeTemplate, "Template has no body", nil).
				WithSuggestion("Add at least one section heading below the frontmatter")
)

// Lint errors
var (
	ErrLintFailed = NewAppError(TypeLint, "Template validation failed", nil).
		WithSuggestion("Review the findings above and fix the template, or re-run with --verbose for details")
)

// Configuration errors
var (
	ErrConfigMissing = NewAppError(TypeConfiguration, "Configuration is missing", nil).
				WithSuggestion("Initialize configuration: issuemate config init")

	ErrRepoNotConfigured = NewAppError(TypeConfiguration, "Target repository is not configured", nil).
				WithSuggestion("Set it with: issuemate config set-vcs --owner <owner> --repo <repo>")

	ErrDraftNotFound = NewAppError(TypeConfiguration, "Draft not found", nil).
				WithSuggestion("List saved drafts: issuemate draft list")
)

// VCS errors
var (
	ErrTokenMissing = NewAppError(TypeVCS, "VCS token is missing", nil).
			WithSuggestion("Configure a GitHub token: issuemate config set-vcs --token <token>")

	ErrRepositoryNotFound = NewAppError(TypeVCS, "Repository not found", nil).
				WithSuggestion("Check repository owner/name and access permissions")

	ErrGitHubTokenInvalid = NewAppError(TypeVCS, "GitHub token is invalid or expired", nil).
				WithSuggestion("Generate a new token at: https://github.com/settings/tokens\nThen run: issuemate config set-vcs --token <token>")

	ErrGitHubInsufficientPerms = NewAppError(TypeVCS, "GitHub token has insufficient permissions", nil).
					WithSuggestion("Token needs the 'repo' scope.\nRegenerate at: https://github.com/settings/tokens")

	ErrGitHubRateLimit = NewAppError(TypeVCS, "GitHub API rate limit exceeded", nil).
				WithSuggestion("Wait a few minutes or use a personal access token for higher limits")
)

// AI errors
var (
	ErrAPIKeyMissing = NewAppError(TypeAI, "AI API key is missing", nil).
				WithSuggestion("Run: issuemate config set-ai-key <key>")

	ErrAIGeneration = NewAppError(TypeAI, "AI generation failed", nil).
			WithSuggestion("Try again or check your API key configuration")

	ErrGeminiAPIKeyInvalid = NewAppError(TypeAI, "Gemini API key is invalid", nil).
				WithSuggestion("Get a valid API key at: https://aistudio.google.com/app/apikey\nThen run: issuemate config set-ai-key <key>")

	ErrGeminiQuotaExceeded = NewAppError(TypeAI, "Gemini API quota exceeded", nil).
				WithSuggestion("Wait for quota to reset or upgrade your Gemini plan")
)

// Update errors
var (
	ErrUpdateFailed = NewAppError(TypeUpdate, "Failed to check for updates", nil).
		WithSuggestion("See releases at: https://github.com/thomas-vilte/issuemate/releases")
)
