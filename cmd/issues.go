package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/douhashi/tsugi/internal/jira"
	"github.com/douhashi/tsugi/internal/workflow"
)

func newIssuesCmd() *cobra.Command {
	var (
		jql        string
		status     string
		assignee   string
		maxResults int
		warm       bool
	)

	cmd := &cobra.Command{
		Use:   "issues <project-key>",
		Short: "プロジェクトの課題一覧を表示",
		Long: `プロジェクトの課題を更新日時の新しい順に表示します。
--warmを指定すると、表示した課題のトランジションキャッシュを温めます。`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			projectKey := strings.TrimSpace(args[0])
			query := jql
			if query == "" {
				clauses := []string{"project = " + jira.QuoteValue(projectKey)}
				if status != "" {
					clauses = append(clauses, "status = "+jira.QuoteValue(status))
				}
				if assignee != "" {
					clauses = append(clauses, "assignee = "+jira.QuoteValue(assignee))
				}
				query = strings.Join(clauses, " AND ") + " ORDER BY updated DESC"
			}

			result, err := a.client.SearchIssues(cmd.Context(), &jira.SearchOptions{
				JQL:        query,
				MaxResults: maxResults,
				Fields:     []string{"summary", "status", "issuetype", "assignee", "updated"},
			})
			if err != nil {
				return fmt.Errorf("failed to search issues: %w", err)
			}

			for _, issue := range result.Issues {
				printIssueLine(cmd, issue)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d / %d issues\n", len(result.Issues), result.Total)

			if warm {
				a.prefetcher.PrefetchIssues(cmd.Context(), projectKey, result.Issues)
				fmt.Fprintf(cmd.OutOrStdout(), "warmed transition cache: %d entries\n", a.cache.Len())
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&jql, "jql", "", "JQLクエリを直接指定する")
	cmd.Flags().StringVar(&status, "status", "", "ステータスで絞り込む")
	cmd.Flags().StringVar(&assignee, "assignee", "", "担当者で絞り込む")
	cmd.Flags().IntVar(&maxResults, "max", 50, "最大表示件数")
	cmd.Flags().BoolVar(&warm, "warm", false, "表示した課題のトランジションキャッシュを温める")

	return cmd
}

// printIssueLine は課題一覧の1行を出力する
func printIssueLine(cmd *cobra.Command, issue *jira.Issue) {
	w := cmd.OutOrStdout()

	keyColor.Fprintf(w, "%-12s", issue.Key)

	statusName := ""
	if issue.Fields != nil && issue.Fields.Status != nil {
		statusName = issue.Fields.Status.Name
	}
	colorForCategory(workflow.CategoryForName(statusName)).Fprintf(w, "%-16s", statusName)

	summary := ""
	if issue.Fields != nil && issue.Fields.Summary != nil {
		summary = *issue.Fields.Summary
	}
	fmt.Fprintln(w, summary)
}
