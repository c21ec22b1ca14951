package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const githubRepoSlug = "rostan-t/refery"

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update refery to the latest version",
		Long: `Checks for the latest release of refery on GitHub and
replaces the running binary with it when it is newer.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	currentVersion := rootCmd.Version
	if currentVersion == "" || currentVersion == "dev" {
		return fmt.Errorf("cannot self-update a development version, install a release instead")
	}

	ctx := context.Background()
	out := io.Writer(os.Stdout)
	if cmd != nil {
		ctx = cmd.Context()
		out = cmd.OutOrStdout()
	}

	release, err := selfupdate.UpdateSelf(ctx, currentVersion, selfupdate.ParseSlug(githubRepoSlug))
	if err != nil {
		return fmt.Errorf("failed to update refery: %w", err)
	}

	if release.LessOrEqual(currentVersion) {
		fmt.Fprintf(out, "refery is up to date (version %s)\n", currentVersion)
		return nil
	}
	fmt.Fprintf(out, "Updated refery to version %s\n", release.Version())
	return nil
}
