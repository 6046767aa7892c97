package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment <issue-key> <body>...",
		Short: "課題にコメントを追加",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			body := strings.Join(args[1:], " ")
			comment, err := a.client.AddComment(cmd.Context(), args[0], body)
			if err != nil {
				return fmt.Errorf("failed to add comment: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "comment %s added to %s\n", comment.ID, args[0])
			return nil
		},
	}
	return cmd
}
