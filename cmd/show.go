package cmd

import (
	"github.com/spf13/cobra"

	"github.com/douhashi/tsugi/internal/panel"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <issue-key>",
		Short: "課題の詳細を表示",
		Long: `課題の詳細・利用可能なトランジション・コメントを表示します。
トランジションはキャッシュを最優先で参照し、ミス時のみライブ取得します。`,
		Args: cobra.ExactArgs(1),
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

			printIssuePanel(cmd.OutOrStdout(), renderer.Latest())
			return nil
		},
	}
	return cmd
}
