package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/douhashi/tsugi/internal/config"
	"github.com/douhashi/tsugi/internal/logger"
	"github.com/douhashi/tsugi/internal/version"
)

var (
	cfgFile string
	verbose bool
	rootCmd *cobra.Command
	appCfg  *config.Config
	appLog  logger.Logger
)

func init() {
	rootCmd = newRootCmd()

	// サブコマンドの追加
	addCommands(rootCmd)
}

func addCommands(cmd *cobra.Command) {
	cmd.AddCommand(newProjectsCmd())
	cmd.AddCommand(newIssuesCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newMoveCmd())
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newCommentCmd())
}

// NewRootCmd creates a new root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := newRootCmd()
	addCommands(cmd)
	return cmd
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tsugi",
		Short: "ターミナルからJiraのワークフローを操作するCLIツール",
		Long: `tsugiは、Jira (Cloud / Server / Data Center) の課題の閲覧・作成・
ステータス遷移をターミナルから行うCLIツールです。
プロジェクトのステータス体系とトランジションをキャッシュ・プリフェッチし、
課題詳細の表示を高速化します。`,
		Version: version.Get().Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// 設定ファイルを先に読み込む
			if err := initConfig(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			// ロガーの初期化
			if verbose {
				os.Setenv("DEBUG", "true")
			}
			var err error
			appLog, err = logger.NewFromEnv()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "設定ファイルのパス")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "詳細出力")

	viper.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	return cmd
}

// Execute はルートコマンドを実行する
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig は設定ファイルを読み込む
func initConfig() error {
	appCfg = config.NewConfig()

	path := cfgFile
	if path == "" {
		path = defaultConfigPath()
	}
	if path == "" {
		return nil
	}

	appCfg.LoadOrDefault(path)
	return nil
}

// defaultConfigPath はデフォルトの設定ファイルのパスを返す
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tsugi", "config.yml")
}
