package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v80/github"
	domainErrors "github.com/thomas-vilte/issuemate/internal/errors"
	"github.com/thomas-vilte/issuemate/internal/logger"
	"github.com/thomas-vilte/issuemate/internal/models"
	"github.com/thomas-vilte/issuemate/internal/vcs"
	"golang.org/x/oauth2"
)

var _ vcs.Client = (*GitHubClient)(nil)

// templatesPath is where GitHub reads issue templates from.
const templatesPath = ".github/ISSUE_TEMPLATE"

type IssuesService interface {
	Create(ctx context.Context, owner, repo string, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
	ListLabels(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.Label, *github.Response, error)
	CreateLabel(ctx context.Context, owner, repo string, label *github.Label) (*github.Label, *github.Response, error)
}

type RepositoriesService interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error)
}

type UsersService interface {
	Get(ctx context.Context, user string) (*github.User, *github.Response, error)
}

type GitHubClient struct {
	issuesService IssuesService
	repoService   RepositoriesService
	usersService  UsersService
	owner         string
	repo          string
	token         string
	httpClient    *http.Client
}

// defaultLabels mirrors the label set GitHub seeds new repositories with,
// so labels created on the fly match the platform's palette.
var defaultLabels = map[string]struct {
	Color       string
	Description string
}{
	"bug":              {"d73a4a", "Something isn't working"},
	"documentation":    {"0075ca", "Improvements or additions to documentation"},
	"duplicate":        {"cfd3d7", "This issue or pull request already exists"},
	"enhancement":      {"a2eeef", "New feature or request"},
	"good first issue": {"7057ff", "Good for newcomers"},
	"help wanted":      {"008672", "Extra attention is needed"},
	"invalid":          {"e4e669", "This doesn't seem right"},
	"needs-triage":     {"ededed", "Awaiting triage"},
	"question":         {"d876e3", "Further information is requested"},
	"wontfix":          {"ffffff", "This will not be worked on"},
}

const fallbackLabelColor = "ededed"

func NewGitHubClient(owner, repo, token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		issuesService: client.Issues,
		repoService:   client.Repositories,
		usersService:  client.Users,
		owner:         owner,
		repo:          repo,
		token:         token,
		httpClient:    httpClient,
	}
}

func NewGitHubClientWithServices(
	issuesService IssuesService,
	repoService RepositoriesService,
	usersService UsersService,
	owner string,
	repo string,
) *GitHubClient {
	return &GitHubClient{
		issuesService: issuesService,
		repoService:   repoService,
		usersService:  usersService,
		owner:         owner,
		repo:          repo,
		token:         "",
		httpClient:    &http.Client{},
	}
}

func (ghc *GitHubClient) CreateIssue(ctx context.Context, title string, body string, labels []string, assignees []string) (*models.Issue, error) {
	log := logger.FromContext(ctx)

	log.Info("creating github issue",
		"owner", ghc.owner,
		"repo", ghc.repo,
		"title", title,
		"labels_count", len(labels),
		"assignees_count", len(assignees))

	if labels == nil {
		labels = []string{}
	}
	if assignees == nil {
		assignees = []string{}
	}

	issueRequest := &github.IssueRequest{
		Title:     github.Ptr(title),
		Body:      github.Ptr(body),
		Labels:    &labels,
		Assignees: &assignees,
	}

	ghIssue, resp, err := ghc.issuesService.Create(ctx, ghc.owner, ghc.repo, issueRequest)
	if err != nil {
		if resp != nil {
			if resp.StatusCode == http.StatusUnauthorized {
				return nil, domainErrors.ErrGitHubTokenInvalid.
					WithContext("operation", "create issue")
			}
			if resp.StatusCode == http.StatusForbidden {
				return nil, domainErrors.ErrGitHubInsufficientPerms.
					WithContext("operation", "create issue").
					WithContext("repo", fmt.Sprintf("%s/%s", ghc.owner, ghc.repo))
			}
			if resp.StatusCode == http.StatusNotFound {
				return nil, domainErrors.ErrRepositoryNotFound.
					WithContext("operation", "create issue").
					WithContext("repo", fmt.Sprintf("%s/%s", ghc.owner, ghc.repo))
			}
			if resp.StatusCode == http.StatusTooManyRequests {
				return nil, domainErrors.ErrGitHubRateLimit.
					WithContext("retry_after", resp.Header.Get("Retry-After")).
					WithContext("operation", "create issue")
			}
		}
		log.Error("failed to create github issue",
			"error", err,
			"owner", ghc.owner,
			"repo", ghc.repo)
		return nil, fmt.Errorf("error creating issue: %w", err)
	}

	issue := &models.Issue{
		Number: ghIssue.GetNumber(),
		Title:  ghIssue.GetTitle(),
		Body:   ghIssue.GetBody(),
		State:  ghIssue.GetState(),
		URL:    ghIssue.GetHTMLURL(),
		Labels: make([]string, 0),
	}

	for _, label := range ghIssue.Labels {
		if label.Name != nil {
			issue.Labels = append(issue.Labels, label.GetName())
		}
	}

	log.Info("github issue created successfully",
		"issue_number", issue.Number,
		"issue_url", issue.URL)

	return issue, nil
}

func (ghc *GitHubClient) GetRepoLabels(ctx context.Context) ([]string, error) {
	labels, _, err := ghc.issuesService.ListLabels(ctx, ghc.owner, ghc.repo, &github.ListOptions{PerPage: 100})
	if err != nil {
		return nil, fmt.Errorf("failed to list repository labels: %w", err)
	}

	labelNames := make([]string, len(labels))
	for i, label := range labels {
		labelNames[i] = label.GetName()
	}
	return labelNames, nil
}

func (ghc *GitHubClient) CreateLabel(ctx context.Context, name, color, description string) error {
	_, _, err := ghc.issuesService.CreateLabel(ctx, ghc.owner, ghc.repo, &github.Label{
		Name:        github.Ptr(name),
		Color:       github.Ptr(color),
		Description: github.Ptr(description),
	})
	return err
}

// EnsureLabels creates any of the given labels the repository does not
// have yet, using GitHub's stock colors where the name is a known one.
func (ghc *GitHubClient) EnsureLabels(ctx context.Context, labels []string) error {
	if len(labels) == 0 {
		return nil
	}

	existingLabels, err := ghc.GetRepoLabels(ctx)
	if err != nil {
		return fmt.Errorf("failed to get repository labels: %w", err)
	}

	return ghc.ensureLabelsExist(ctx, existingLabels, labels)
}

func (ghc *GitHubClient) GetAuthenticatedUser(ctx context.Context) (string, error) {
	user, resp, err := ghc.usersService.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return "", domainErrors.ErrGitHubTokenInvalid.
				WithContext("operation", "get authenticated user")
		}
		return "", fmt.Errorf("error obtaining authenticated user: %w", err)
	}

	if user.Login == nil {
		return "", fmt.Errorf("authenticated user has no login")
	}

	return *user.Login, nil
}

// ListTemplateFiles fetches the issue template files of a remote
// repository, chooser config included. Empty owner/repo fall back to the
// client's configured repository.
func (ghc *GitHubClient) ListTemplateFiles(ctx context.Context, owner, repo string) ([]models.RemoteFile, error) {
	if owner == "" {
		owner = ghc.owner
	}
	if repo == "" {
		repo = ghc.repo
	}

	log := logger.FromContext(ctx)
	log.Debug("listing remote issue templates",
		"owner", owner,
		"repo", repo,
		"path", templatesPath)

	_, dirContent, resp, err := ghc.repoService.GetContents(ctx, owner, repo, templatesPath, nil)
	if err != nil {
		if resp != nil {
			if resp.StatusCode == http.StatusUnauthorized {
				return nil, domainErrors.ErrGitHubTokenInvalid.
					WithContext("operation", "list remote templates")
			}
			if resp.StatusCode == http.StatusNotFound {
				return nil, domainErrors.ErrRepositoryNotFound.
					WithContext("operation", "list remote templates").
					WithContext("repo", fmt.Sprintf("%s/%s", owner, repo)).
					WithContext("path", templatesPath)
			}
		}
		return nil, fmt.Errorf("failed to list %s in %s/%s: %w", templatesPath, owner, repo, err)
	}

	if dirContent == nil {
		return nil, fmt.Errorf("%s in %s/%s is not a directory", templatesPath, owner, repo)
	}

	files := make([]models.RemoteFile, 0, len(dirContent))
	for _, entry := range dirContent {
		if entry.GetType() != "file" {
			continue
		}

		fileContent, _, _, err := ghc.repoService.GetContents(ctx, owner, repo, entry.GetPath(), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", entry.GetPath(), err)
		}
		if fileContent == nil {
			continue
		}

		content, err := fileContent.GetContent()
		if err != nil {
			return nil, fmt.Errorf("error decoding content of %s: %w", entry.GetPath(), err)
		}

		files = append(files, models.RemoteFile{
			Name:    entry.GetName(),
			Path:    entry.GetPath(),
			Content: content,
		})
	}

	log.Debug("remote issue templates listed", "count", len(files))
	return files, nil
}

func (ghc *GitHubClient) labelExists(existingLabels []string, target string) bool {
	for _, l := range existingLabels {
		if strings.EqualFold(l, target) {
			return true
		}
	}
	return false
}

func (ghc *GitHubClient) ensureLabelsExist(ctx context.Context, existingLabels []string, requiredLabels []string) error {
	log := logger.FromContext(ctx)

	for _, label := range requiredLabels {
		if !ghc.labelExists(existingLabels, label) {
			meta, known := defaultLabels[strings.ToLower(label)]
			if !known {
				meta.Color = fallbackLabelColor
			}

			if err := ghc.CreateLabel(ctx, label, meta.Color, meta.Description); err != nil {
				if !strings.Contains(err.Error(), "already_exists") && !strings.Contains(err.Error(), "422") {
					return fmt.Errorf("failed to create label '%s': %w", label, err)
				}
				log.Debug("label already exists, skipping creation",
					"label", label,
					"owner", ghc.owner,
					"repo", ghc.repo)
			}
		}
	}
	return nil
}
