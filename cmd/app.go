package cmd

import (
	"fmt"

	"github.com/douhashi/tsugi/internal/auth"
	"github.com/douhashi/tsugi/internal/config"
	"github.com/douhashi/tsugi/internal/jira"
	"github.com/douhashi/tsugi/internal/logger"
	"github.com/douhashi/tsugi/internal/workflow"
)

// app はコマンドが使用する依存関係一式。
// グローバルな状態は持たず、コマンド実行時に一度だけ構築して注入する。
type app struct {
	cfg        *config.Config
	log        logger.Logger
	client     jira.JiraClient
	provider   *auth.StaticProvider
	notifier   *auth.Notifier
	cache      *workflow.TransitionCache
	store      *workflow.ProjectStatusStore
	prefetcher *workflow.TransitionPrefetcher
}

// newApp は設定から依存関係一式を構築する
func newApp(cfg *config.Config, log logger.Logger) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	client, err := jira.NewClient(cfg.Jira.BaseURL, cfg.Jira.Username, cfg.Jira.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Jira client: %w", err)
	}

	provider := auth.NewStaticProvider(&auth.Credentials{
		BaseURL:     cfg.Jira.BaseURL,
		Username:    cfg.Jira.Username,
		ServerLabel: cfg.Jira.ServerLabel,
		Token:       cfg.Jira.Token,
	})

	cache := workflow.NewTransitionCache()
	store := workflow.NewProjectStatusStore(client, provider, log)
	prefetcher := workflow.NewTransitionPrefetcher(client, provider, store, cache, log,
		workflow.WithMaxIssues(cfg.Prefetch.MaxIssues),
		workflow.WithConcurrency(cfg.Prefetch.Concurrency),
	)

	// 認証状態が変化したら全キャッシュを破棄する
	notifier := auth.NewNotifier()
	notifier.Subscribe(func(event auth.Event) {
		log.Debug("auth state changed, clearing caches", "event", string(event.Type))
		cache.Clear()
		store.Clear()
		prefetcher.Reset()
	})

	return &app{
		cfg:        cfg,
		log:        log,
		client:     client,
		provider:   provider,
		notifier:   notifier,
		cache:      cache,
		store:      store,
		prefetcher: prefetcher,
	}, nil
}

// requireApp は設定済みのappを返す。設定が不足している場合はエラー。
func requireApp() (*app, error) {
	if appCfg == nil {
		return nil, fmt.Errorf("configuration is not initialized")
	}
	return newApp(appCfg, appLog)
}
