package workflow

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/douhashi/tsugi/internal/auth"
	"github.com/douhashi/tsugi/internal/jira"
	"github.com/douhashi/tsugi/internal/logger"
)

const (
	// defaultMaxPrefetchIssues はPrefetchIssuesで処理する課題数の上限
	defaultMaxPrefetchIssues = 10
	// defaultPrefetchConcurrency はウォームアップの同時実行数の上限
	defaultPrefetchConcurrency = 4
)

// searchFields は代表課題の検索で取得するフィールド
var searchFields = []string{"status", "issuetype", "updated"}

// TransitionPrefetcher はプロジェクトの全 (課題タイプ, ステータス) の組について
// バックグラウンドでトランジションキャッシュを温める。
// すべてベストエフォートであり、失敗はユーザーに一切表面化しない。
type TransitionPrefetcher struct {
	client jira.JiraClient
	auth   auth.Provider
	store  *ProjectStatusStore
	cache  *TransitionCache
	logger logger.Logger

	maxIssues   int
	concurrency int

	mu        sync.Mutex
	running   map[string]bool // 実行中のプロジェクト（小文字化済みキー）
	attempted map[string]bool // プロセス生存期間中に成功した複合キー
	wg        sync.WaitGroup
}

// PrefetcherOption はTransitionPrefetcherの設定オプション
type PrefetcherOption func(*TransitionPrefetcher)

// WithMaxIssues はPrefetchIssuesで処理する課題数の上限を設定するオプション
func WithMaxIssues(n int) PrefetcherOption {
	return func(p *TransitionPrefetcher) {
		if n > 0 {
			p.maxIssues = n
		}
	}
}

// WithConcurrency はウォームアップの同時実行数を設定するオプション
func WithConcurrency(n int) PrefetcherOption {
	return func(p *TransitionPrefetcher) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// NewTransitionPrefetcher は新しいTransitionPrefetcherを作成する
func NewTransitionPrefetcher(client jira.JiraClient, authProvider auth.Provider, store *ProjectStatusStore, cache *TransitionCache, log logger.Logger, opts ...PrefetcherOption) *TransitionPrefetcher {
	p := &TransitionPrefetcher{
		client:      client,
		auth:        authProvider,
		store:       store,
		cache:       cache,
		logger:      log,
		maxIssues:   defaultMaxPrefetchIssues,
		concurrency: defaultPrefetchConcurrency,
		running:     make(map[string]bool),
		attempted:   make(map[string]bool),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Prefetch はプロジェクトのプリフェッチをバックグラウンドで開始する。
// 同一プロジェクトのタスクが実行中の場合は何もしない（falseを返す）。
// タスク完了後は同じプロジェクトへの再実行が許可される。
func (p *TransitionPrefetcher) Prefetch(ctx context.Context, projectKey string) bool {
	key := strings.ToLower(strings.TrimSpace(projectKey))
	if key == "" {
		return false
	}

	p.mu.Lock()
	if p.running[key] {
		p.mu.Unlock()
		return false
	}
	p.running[key] = true
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			delete(p.running, key)
			p.mu.Unlock()
		}()

		p.run(ctx, strings.TrimSpace(projectKey))
	}()

	return true
}

// Wait は実行中の全プリフェッチタスクの完了を待つ
func (p *TransitionPrefetcher) Wait() {
	p.wg.Wait()
}

// Reset は試行済みの記録を破棄する（ログイン/ログアウト時に使用）
func (p *TransitionPrefetcher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attempted = make(map[string]bool)
}

// run はプリフェッチ本体。全 (課題タイプ, ステータス) の組を並行して
// ウォームアップし、個々の失敗は握りつぶす。
func (p *TransitionPrefetcher) run(ctx context.Context, projectKey string) {
	if _, ok := p.auth.Credentials(); !ok {
		p.logger.Debug("prefetch skipped: no credentials", "project", projectKey)
		return
	}

	groups, err := p.store.EnsureAllIssueTypeStatuses(ctx, projectKey)
	if err != nil {
		p.logger.Debug("prefetch aborted: status fetch failed", "project", projectKey, "error", err)
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for _, group := range groups {
		if group == nil {
			continue
		}
		issueType := group.IssueTypeID
		issueTypeName := group.IssueTypeName
		if issueType == "" {
			issueType = issueTypeName
		}
		if issueType == "" {
			continue
		}

		for _, status := range group.Statuses {
			if status == nil || status.Name == "" {
				continue
			}
			statusName := status.Name
			g.Go(func() error {
				if err := p.warmStatus(gctx, projectKey, issueType, issueTypeName, statusName); err != nil {
					p.logger.Debug("prefetch warm-up failed",
						"project", projectKey, "issueType", issueType, "status", statusName, "error", err)
				}
				return nil
			})
		}
	}

	g.Wait()
	p.logger.Debug("prefetch pass completed", "project", projectKey)
}

// warmStatus は1つの (プロジェクト, 課題タイプ, ステータス) の組をウォームアップする。
// 代表課題を1件検索し、そのトランジションを取得してキャッシュする。
// 代表課題が見つからない場合やトランジション取得に失敗した場合は
// 試行済みとして記録しない（後続のパスで再試行できるようにする）。
func (p *TransitionPrefetcher) warmStatus(ctx context.Context, projectKey, issueType, issueTypeName, statusName string) error {
	key := TransitionKey{ProjectKey: projectKey, IssueType: issueType, StatusName: statusName}
	if p.isAttempted(key) || len(p.cache.Get(key)) > 0 {
		return nil
	}

	jql := fmt.Sprintf("project = %s AND status = %s", jira.QuoteValue(projectKey), jira.QuoteValue(statusName))
	if issueTypeName != "" {
		jql += " AND issuetype = " + jira.QuoteValue(issueTypeName)
	}
	jql += " ORDER BY updated DESC"

	result, err := p.client.SearchIssues(ctx, &jira.SearchOptions{
		JQL:        jql,
		MaxResults: 1,
		Fields:     searchFields,
	})
	if err != nil {
		return err
	}
	if result == nil || len(result.Issues) == 0 {
		return nil
	}

	return p.warmFromIssue(ctx, key, result.Issues[0].Key)
}

// warmFromIssue は課題のトランジションを取得してキャッシュに登録する。
// 空でない登録に成功した場合のみ試行済みとして記録する。
func (p *TransitionPrefetcher) warmFromIssue(ctx context.Context, key TransitionKey, issueKey string) error {
	if issueKey == "" {
		return nil
	}

	transitions, err := p.client.GetTransitions(ctx, issueKey)
	if err != nil {
		return err
	}

	options := OptionsFromTransitions(transitions)
	if len(options) == 0 {
		return nil
	}

	p.cache.Remember(key, options)
	p.markAttempted(key)
	return nil
}

// PrefetchIssues は既知の課題の一覧からトランジションキャッシュを直接温める。
// 先頭のmaxIssues件のみを対象とし、全件を並行処理して失敗は握りつぶす。
func (p *TransitionPrefetcher) PrefetchIssues(ctx context.Context, projectKey string, issues []*jira.Issue) {
	projectKey = strings.TrimSpace(projectKey)
	if projectKey == "" || len(issues) == 0 {
		return
	}

	if len(issues) > p.maxIssues {
		issues = issues[:p.maxIssues]
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for _, issue := range issues {
		key, ok := issueTransitionKey(projectKey, issue)
		if !ok {
			continue
		}
		issueKey := issue.Key

		g.Go(func() error {
			if p.isAttempted(key) || len(p.cache.Get(key)) > 0 {
				return nil
			}
			if err := p.warmFromIssue(gctx, key, issueKey); err != nil {
				p.logger.Debug("issue warm-up failed", "issue", issueKey, "error", err)
			}
			return nil
		})
	}

	g.Wait()
}

// issueTransitionKey は課題から複合キーを解決する。
// 課題タイプ識別子（ID優先、なければ名前）とステータス名の両方が必要。
func issueTransitionKey(projectKey string, issue *jira.Issue) (TransitionKey, bool) {
	if issue == nil || issue.Fields == nil || issue.Fields.Status == nil || issue.Fields.IssueType == nil {
		return TransitionKey{}, false
	}

	issueType := issue.Fields.IssueType.ID
	if issueType == "" {
		issueType = issue.Fields.IssueType.Name
	}
	statusName := issue.Fields.Status.Name
	if issueType == "" || statusName == "" {
		return TransitionKey{}, false
	}

	return TransitionKey{ProjectKey: projectKey, IssueType: issueType, StatusName: statusName}, true
}

// isAttempted は複合キーが試行済みかを返す
func (p *TransitionPrefetcher) isAttempted(key TransitionKey) bool {
	normalized, ok := key.normalized()
	if !ok {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attempted[normalized]
}

// markAttempted は複合キーを試行済みとして記録する
func (p *TransitionPrefetcher) markAttempted(key TransitionKey) {
	normalized, ok := key.normalized()
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.attempted[normalized] = true
}
