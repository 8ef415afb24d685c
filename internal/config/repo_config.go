package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// repoConfigFile is stored inside .git so it never shows up as a change
const repoConfigFile = ".pushit_config"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	DefaultBranch *string `json:"defaultBranch,omitempty"`
	OpenBrowser   *bool   `json:"openBrowser,omitempty"`
}

// RepoConfigPath returns the location of the config file for a repository root
func RepoConfigPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", repoConfigFile)
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(RepoConfigPath(repoRoot))
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// SaveRepoConfig writes the repository configuration
func SaveRepoConfig(repoRoot string, config *RepoConfig) error {
	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(RepoConfigPath(repoRoot), configJSON, 0600)
}

// Branch returns the configured default branch, or "main"
func (c *RepoConfig) Branch() string {
	if c != nil && c.DefaultBranch != nil && *c.DefaultBranch != "" {
		return *c.DefaultBranch
	}
	return DefaultBranch
}

// ShouldOpenBrowser returns whether the repository page should be opened after a push
func (c *RepoConfig) ShouldOpenBrowser() bool {
	return c != nil && c.OpenBrowser != nil && *c.OpenBrowser
}
