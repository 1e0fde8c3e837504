package main

import (
	"fmt"

	"github.com/justinpbarnett/ps3decui/internal/ui/panels"
	"github.com/justinpbarnett/ps3decui/internal/update"
	"github.com/spf13/cobra"
)

func versionString() string {
	return panels.Version
}

func newVersionCmd() *cobra.Command {
	var repo string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version and check for a newer release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ps3decui version %s\n", versionString())
			if configPath != "" {
				fmt.Fprintf(out, "config: %s\n", configPath)
			}

			if update.IsDevBuild(versionString()) {
				fmt.Fprintln(out, "Development build, update check skipped.")
				return nil
			}

			rel, err := update.New(repo).Check(cmd.Context(), versionString())
			if err != nil {
				logger.Debug("update check failed", "err", err)
				fmt.Fprintf(out, "Update check failed: %v\n", err)
				return nil
			}
			if rel != nil {
				fmt.Fprintf(out, "Update available: v%s. Run \"ps3decui update\" to install.\n", rel.Version)
			} else {
				fmt.Fprintln(out, "You are up to date.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&repo, "repo", update.DefaultRepo, "GitHub repository to check")
	return cmd
}

func newUpdateCmd() *cobra.Command {
	var repo string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace this binary with the latest release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			u := update.New(repo)

			if !update.IsDevBuild(versionString()) {
				rel, err := u.Check(cmd.Context(), versionString())
				if err != nil {
					return err
				}
				if rel == nil {
					fmt.Fprintf(out, "ps3decui %s is up to date.\n", versionString())
					return nil
				}
			}

			applied, err := u.Apply(cmd.Context(), versionString())
			if err != nil {
				return err
			}
			logger.Info("updated", "from", versionString(), "to", applied.Version)
			fmt.Fprintf(out, "Updated to v%s.\n", applied.Version)
			return nil
		},
	}
	cmd.Flags().StringVar(&repo, "repo", update.DefaultRepo, "GitHub repository to update from")
	return cmd
}
