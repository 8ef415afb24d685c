package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-github/v62/github"
)

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	// Owner and Repo for the mock server
	Owner string
	Repo  string
	// DefaultBranch is reported by GET /repos/{owner}/{repo}
	DefaultBranch string
	// PRs maps head branch names to their open pull request
	PRs map[string]*github.PullRequest
	// FailRepository makes GET /repos/{owner}/{repo} return 500
	FailRepository bool
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		Owner:         "owner",
		Repo:          "repo",
		DefaultBranch: "main",
		PRs:           make(map[string]*github.PullRequest),
	}
}

// NewMockGitHubServer creates an httptest server that mocks the repository and pull request list endpoints
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	t.Helper()
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	repoPath := "/repos/" + config.Owner + "/" + config.Repo
	mux := http.NewServeMux()

	mux.HandleFunc(repoPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if config.FailRepository {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		writeJSON(w, &github.Repository{
			Name:          github.String(config.Repo),
			DefaultBranch: github.String(config.DefaultBranch),
		})
	})

	mux.HandleFunc(repoPath+"/pulls", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		// head is "owner:branch"
		head := r.URL.Query().Get("head")
		branch := head[strings.Index(head, ":")+1:]
		if pr, ok := config.PRs[branch]; ok {
			writeJSON(w, []*github.PullRequest{pr})
			return
		}
		writeJSON(w, []*github.PullRequest{})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(func() { server.Close() })
	return server
}

// NewMockGitHubClient creates a GitHub client configured to use a mock server
func NewMockGitHubClient(t *testing.T, config *MockGitHubServerConfig) *github.Client {
	t.Helper()
	server := NewMockGitHubServer(t, config)
	client := github.NewClient(nil)
	baseURL, _ := url.Parse(server.URL + "/")
	client.BaseURL = baseURL
	client.UploadURL = baseURL
	return client
}

// NewOpenPullRequest builds the pull request the mock server returns for a branch
func NewOpenPullRequest(number int, owner, repo, head, base string) *github.PullRequest {
	return &github.PullRequest{
		Number:  github.Int(number),
		HTMLURL: github.String("https://github.com/" + owner + "/" + repo + "/pull/" + strconv.Itoa(number)),
		Title:   github.String("Changes from " + head),
		State:   github.String("open"),
		Head:    &github.PullRequestBranch{Ref: github.String(head)},
		Base:    &github.PullRequestBranch{Ref: github.String(base)},
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
