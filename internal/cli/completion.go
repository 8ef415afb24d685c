package cli

import (
	"github.com/spf13/cobra"

	"pushit.dev/pushit/internal/git"
)

// completeBranches is a helper for cobra.RegisterFlagCompletionFunc
// that returns all local branch names in the repository.
func completeBranches(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	repo := git.NewRepository(git.NewCommandRunner(""))
	if !repo.IsRepository(cmd.Context()) {
		return nil, cobra.ShellCompDirectiveError
	}
	branches, err := repo.LocalBranches(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}
