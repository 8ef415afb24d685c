// Package github turns git remotes into GitHub repository coordinates and talks to the GitHub API.
package github

import (
	"fmt"
	"strings"
)

// Host is the hosting domain whose remotes get a browser URL
const Host = "github.com"

// RepoInfo contains parsed information from a git remote URL
type RepoInfo struct {
	Hostname string
	Owner    string
	Repo     string
}

// WebURL returns the browser URL of the repository
func (r *RepoInfo) WebURL() string {
	return fmt.Sprintf("https://%s/%s/%s", r.Hostname, r.Owner, r.Repo)
}

// CompareURL returns the page that opens a pull request from head into base
func (r *RepoInfo) CompareURL(base, head string) string {
	return fmt.Sprintf("%s/compare/%s...%s?expand=1", r.WebURL(), base, head)
}

// ParseRemoteURL parses a git remote URL and extracts hostname, owner, and repo
// Examples:
//   - https://github.com/owner/repo.git
//   - git@github.com:owner/repo.git
//   - ssh://git@github.com/owner/repo.git
//   - https://github.company.com/owner/repo.git
//   - https://git.example.com/group/subgroup/repo.git
func ParseRemoteURL(remoteURL string) (*RepoInfo, error) {
	remoteURL = strings.TrimSpace(remoteURL)
	remoteURL = strings.TrimSuffix(remoteURL, "/")
	remoteURL = strings.TrimSuffix(remoteURL, ".git")
	remoteURL = strings.TrimPrefix(remoteURL, "ssh://")

	var hostname, path string

	if strings.HasPrefix(remoteURL, "https://") || strings.HasPrefix(remoteURL, "http://") {
		remoteURL = strings.TrimPrefix(remoteURL, "https://")
		remoteURL = strings.TrimPrefix(remoteURL, "http://")
		// Drop credentials: https://user@host/owner/repo
		if at := strings.Index(remoteURL, "@"); at >= 0 && at < strings.Index(remoteURL, "/") {
			remoteURL = remoteURL[at+1:]
		}
		parts := strings.SplitN(remoteURL, "/", 2)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid HTTPS remote URL: must be protocol://hostname/owner/repo")
		}
		hostname, path = parts[0], parts[1]
	} else {
		// SSH format: git@hostname:owner/repo or git@hostname/owner/repo
		hostAndPath := remoteURL
		if at := strings.Index(remoteURL, "@"); at >= 0 {
			hostAndPath = remoteURL[at+1:]
		}
		sep := strings.IndexAny(hostAndPath, ":/")
		if sep < 0 {
			return nil, fmt.Errorf("invalid SSH remote URL: missing path")
		}
		hostname, path = hostAndPath[:sep], hostAndPath[sep+1:]
	}

	// Strip a port left over from host:port/owner/repo
	if i := strings.Index(hostname, ":"); i >= 0 {
		hostname = hostname[:i]
	}

	pathParts := strings.Split(path, "/")
	if len(pathParts) < 2 {
		return nil, fmt.Errorf("invalid remote URL: path must be owner/repo")
	}
	if isPort(pathParts[0]) && len(pathParts) >= 3 {
		pathParts = pathParts[1:]
	}
	// Nested namespaces (group/subgroup/repo) keep every leading segment in the owner
	owner := strings.Join(pathParts[:len(pathParts)-1], "/")
	repo := pathParts[len(pathParts)-1]

	if hostname == "" || owner == "" || repo == "" {
		return nil, fmt.Errorf("failed to parse hostname, owner, or repo from remote URL")
	}

	return &RepoInfo{
		Hostname: hostname,
		Owner:    owner,
		Repo:     repo,
	}, nil
}

// BrowserURL returns the https page of a GitHub remote. The second result is
// false for remotes on any other host or that cannot be parsed.
func BrowserURL(remoteURL string) (string, bool) {
	if !strings.Contains(remoteURL, Host) {
		return "", false
	}
	info, err := ParseRemoteURL(remoteURL)
	if err != nil {
		return "", false
	}
	return info.WebURL(), true
}

func isPort(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
