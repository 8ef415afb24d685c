package github

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// PullRequestInfo contains information about a pull request
// This is a simplified struct to avoid coupling to go-github library
type PullRequestInfo struct {
	Number  int
	HTMLURL string
	Title   string
}

// RepositoryService answers the questions pushit asks the hosting service after a push
type RepositoryService interface {
	// DefaultBranch returns the default branch of the repository
	DefaultBranch(ctx context.Context, owner, repo string) (string, error)

	// OpenPullRequest returns the open pull request for a branch, or nil when there is none
	OpenPullRequest(ctx context.Context, owner, repo, branch string) (*PullRequestInfo, error)
}

// Client implements RepositoryService using the GitHub REST API
type Client struct {
	client *github.Client
}

// NewClient creates a Client for the given hostname, authenticated with
// GITHUB_TOKEN or the token of the gh CLI
func NewClient(ctx context.Context, hostname string) (*Client, error) {
	token, err := getGitHubToken(ctx)
	if err != nil {
		return nil, err
	}

	client, err := createGitHubClient(ctx, hostname, token)
	if err != nil {
		return nil, err
	}

	return &Client{client: client}, nil
}

// NewClientFromGitHub wraps an already configured go-github client
func NewClientFromGitHub(client *github.Client) *Client {
	return &Client{client: client}
}

// DefaultBranch returns the default branch of the repository
func (c *Client) DefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	repository, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return "", fmt.Errorf("failed to get repository %s/%s: %w", owner, repo, err)
	}
	return repository.GetDefaultBranch(), nil
}

// OpenPullRequest returns the open pull request for a branch, or nil when there is none
func (c *Client) OpenPullRequest(ctx context.Context, owner, repo, branch string) (*PullRequestInfo, error) {
	prs, _, err := c.client.PullRequests.List(ctx, owner, repo, &github.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", owner, branch),
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests for %s: %w", branch, err)
	}

	if len(prs) == 0 {
		return nil, nil
	}

	pr := prs[0]
	return &PullRequestInfo{
		Number:  pr.GetNumber(),
		HTMLURL: pr.GetHTMLURL(),
		Title:   pr.GetTitle(),
	}, nil
}

// createGitHubClient creates a GitHub client configured for the given hostname
// Supports both github.com and GitHub Enterprise instances
func createGitHubClient(ctx context.Context, hostname, token string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if hostname != Host {
		// GitHub Enterprise API endpoints
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", hostname, err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", hostname, err)
		}

		client.BaseURL = baseURL
		client.UploadURL = uploadURL
	}

	return client, nil
}

// getGitHubToken gets GitHub token from environment or gh CLI
func getGitHubToken(ctx context.Context) (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	output, err := exec.CommandContext(ctx, "gh", "auth", "token").Output()
	if err != nil {
		return "", fmt.Errorf("failed to get GitHub token: %w", err)
	}

	token := strings.TrimSpace(string(output))
	if token == "" {
		return "", fmt.Errorf("empty GitHub token")
	}

	return token, nil
}
