package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "アクセス可能なプロジェクトの一覧を表示",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			projects, err := a.client.ListProjects(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			for _, project := range projects {
				keyColor.Fprintf(cmd.OutOrStdout(), "%-12s", project.Key)
				fmt.Fprintln(cmd.OutOrStdout(), project.Name)
			}
			return nil
		},
	}
	return cmd
}
