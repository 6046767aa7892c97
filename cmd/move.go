package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/douhashi/tsugi/internal/panel"
	"github.com/douhashi/tsugi/internal/workflow"
)

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <issue-key> <transition>",
		Short: "課題にトランジションを適用",
		Long: `課題に指定したトランジション（IDまたは名前）を適用します。
適用後は課題とトランジションをライブで再取得して結果を表示します。`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}

			renderer := &captureRenderer{}
			controller, err := panel.NewController(a.client, a.store, a.cache, a.prefetcher, renderer, a.log)
			if err != nil {
				return err
			}
			defer controller.Dispose()

			if err := controller.OpenKey(cmd.Context(), args[0]); err != nil {
				return err
			}

			state := renderer.Latest()
			if state == nil || state.StatusError != nil {
				if state != nil && state.StatusError != nil {
					return fmt.Errorf("failed to resolve transitions: %w", state.StatusError)
				}
				return fmt.Errorf("failed to resolve transitions for %s", args[0])
			}

			option := findTransition(state.StatusOptions, args[1])
			if option == nil {
				return fmt.Errorf("transition %q is not available for %s", args[1], args[0])
			}

			if err := controller.ApplyTransition(cmd.Context(), option.ID); err != nil {
				return fmt.Errorf("failed to apply transition: %w", err)
			}

			printIssuePanel(cmd.OutOrStdout(), renderer.Latest())
			return nil
		},
	}
	return cmd
}

// findTransition はIDまたは名前（大文字小文字を無視）でトランジションを探す
func findTransition(options []*workflow.StatusOption, query string) *workflow.StatusOption {
	for _, option := range options {
		if option.ID == query {
			return option
		}
	}
	for _, option := range options {
		if strings.EqualFold(option.Name, query) {
			return option
		}
	}
	return nil
}
