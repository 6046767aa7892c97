package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/douhashi/tsugi/internal/jira"
)

func newCreateCmd() *cobra.Command {
	var (
		projectKey  string
		issueType   string
		summary     string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "新しい課題を作成",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			created, err := a.client.CreateIssue(cmd.Context(), &jira.CreateIssueFields{
				Project:     &jira.Project{Key: projectKey},
				Summary:     summary,
				Description: description,
				IssueType:   &jira.IssueType{Name: issueType},
			})
			if err != nil {
				return fmt.Errorf("failed to create issue: %w", err)
			}

			keyColor.Fprintln(cmd.OutOrStdout(), created.Key)

			// 次回のshowに備えてプロジェクトのキャッシュを温めておく
			a.prefetcher.Prefetch(cmd.Context(), projectKey)

			return nil
		},
	}

	cmd.Flags().StringVarP(&projectKey, "project", "p", "", "プロジェクトキー（必須）")
	cmd.Flags().StringVarP(&issueType, "type", "t", "Task", "課題タイプ")
	cmd.Flags().StringVarP(&summary, "summary", "s", "", "要約（必須）")
	cmd.Flags().StringVarP(&description, "description", "d", "", "説明")
	cmd.MarkFlagRequired("project")
	cmd.MarkFlagRequired("summary")

	return cmd
}
