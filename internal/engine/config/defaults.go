package config

import (
	"github.com/devnanny/githook/internal/engine/git"
)

// Default returns the configuration used when no config file exists. Its
// rules reject unmerged and unknown entries, which can never be committed
// as they are.
func Default() *Config {
	return &Config{
		Version: 1,
		Rules:   DefaultRules(),
	}
}

// DefaultRules returns the built-in rules.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:       "unmerged",
			DenyStatus: []git.Status{git.StatusUnmerged},
			Message:    "complete the merge before committing",
		},
		{
			Name:       "unknown-status",
			DenyStatus: []git.Status{git.StatusUnknown},
			Message:    "git reported an unknown change type, this is most likely a git bug",
		},
	}
}

// DefaultYAML is written by `githook init` when no config file exists.
const DefaultYAML = `# githook configuration
version: 1

git:
  binary: git
  timeout: 1h

defaults:
  blocking: true

rules:
  - name: unmerged
    deny_status: [U]
    message: complete the merge before committing

  - name: unknown-status
    deny_status: [X]
    message: git reported an unknown change type, this is most likely a git bug

  # - name: no-dotenv
  #   only: [".env", "*.env"]
  #   deny_status: [A, C, M, R]
  #   message: environment files must not be committed

  # - name: small-commits
  #   max_files: 50
  #   blocking: false
`
