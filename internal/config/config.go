package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config はアプリケーション全体の設定
type Config struct {
	Jira     JiraConfig     `mapstructure:"jira"`
	Prefetch PrefetchConfig `mapstructure:"prefetch"`
	Log      LogConfig      `mapstructure:"log"`
}

// JiraConfig はJira接続の設定
type JiraConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Username    string        `mapstructure:"username"`
	Token       string        `mapstructure:"token"`
	ServerLabel string        `mapstructure:"server_label"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// PrefetchConfig はトランジションプリフェッチの設定
type PrefetchConfig struct {
	MaxIssues   int `mapstructure:"max_issues"`
	Concurrency int `mapstructure:"concurrency"`
}

// LogConfig はログ出力の設定
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NewConfig は新しいConfigを作成する
func NewConfig() *Config {
	return &Config{
		Jira: JiraConfig{
			Timeout: 30 * time.Second,
		},
		Prefetch: PrefetchConfig{
			MaxIssues:   10,
			Concurrency: 4,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load は設定ファイルから設定を読み込む
func (c *Config) Load(configPath string) error {
	v := viper.New()

	// 設定ファイルのパスを設定
	v.SetConfigFile(configPath)

	// 環境変数の設定
	v.SetEnvPrefix("TSUGI")
	v.AutomaticEnv()

	// JIRA_API_TOKENもサポート
	v.BindEnv("jira.token", "JIRA_API_TOKEN", "TSUGI_JIRA_TOKEN")
	v.BindEnv("jira.base_url", "JIRA_BASE_URL", "TSUGI_JIRA_BASE_URL")
	v.BindEnv("jira.username", "JIRA_USERNAME", "TSUGI_JIRA_USERNAME")

	// デフォルト値の設定
	v.SetDefault("jira.timeout", 30*time.Second)
	v.SetDefault("prefetch.max_issues", 10)
	v.SetDefault("prefetch.concurrency", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// 設定ファイルを読み込む
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	// 設定を構造体にマッピング
	if err := v.Unmarshal(c); err != nil {
		return err
	}

	return nil
}

// LoadOrDefault は設定ファイルを読み込み、失敗した場合はデフォルト値を使用する
func (c *Config) LoadOrDefault(configPath string) {
	// ファイルが存在しない場合はデフォルト値を使用
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return
	}

	// 設定ファイルを読み込む（エラーは無視）
	_ = c.Load(configPath)
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Jira.BaseURL == "" {
		return errors.New("Jira base URL is required")
	}

	if c.Jira.Token == "" {
		return errors.New("Jira API token is required")
	}

	if c.Prefetch.MaxIssues <= 0 {
		c.Prefetch.MaxIssues = 10
	}
	if c.Prefetch.Concurrency <= 0 {
		c.Prefetch.Concurrency = 4
	}

	return nil
}
