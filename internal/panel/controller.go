package panel

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/douhashi/tsugi/internal/jira"
	"github.com/douhashi/tsugi/internal/logger"
	"github.com/douhashi/tsugi/internal/workflow"
)

// Controller は課題詳細パネルの状態を管理する。
// トランジションキャッシュを最優先で参照し、ミス時のみライブ取得に
// フォールバックすることで、パネルの初期描画を即時に行う。
type Controller struct {
	client     jira.JiraClient
	store      *workflow.ProjectStatusStore
	cache      *workflow.TransitionCache
	prefetcher *workflow.TransitionPrefetcher
	renderer   Renderer
	logger     logger.Logger

	mu       sync.Mutex
	state    RenderState
	disposed bool
}

// NewController は新しいControllerを作成する
func NewController(client jira.JiraClient, store *workflow.ProjectStatusStore, cache *workflow.TransitionCache, prefetcher *workflow.TransitionPrefetcher, renderer Renderer, log logger.Logger) (*Controller, error) {
	if client == nil {
		return nil, errors.New("client is required")
	}
	if store == nil || cache == nil || prefetcher == nil {
		return nil, errors.New("workflow caches are required")
	}
	if renderer == nil {
		return nil, errors.New("renderer is required")
	}

	c := &Controller{
		client:     client,
		store:      store,
		cache:      cache,
		prefetcher: prefetcher,
		renderer:   renderer,
		logger:     log,
	}
	return c, nil
}

// ProjectKeyFromIssueKey は課題キーの先頭部分（最初のハイフンの前）から
// プロジェクトキーを解決する
func ProjectKeyFromIssueKey(issueKey string) string {
	if idx := strings.Index(issueKey, "-"); idx >= 0 {
		return issueKey[:idx]
	}
	return issueKey
}

// transitionKeyForIssue は課題から複合キャッシュキーを解決する。
// 課題タイプはIDを優先し、なければ名前を使用する。
func transitionKeyForIssue(issue *jira.Issue) (workflow.TransitionKey, bool) {
	if issue == nil || issue.Fields == nil || issue.Fields.IssueType == nil || issue.Fields.Status == nil {
		return workflow.TransitionKey{}, false
	}

	issueType := issue.Fields.IssueType.ID
	if issueType == "" {
		issueType = issue.Fields.IssueType.Name
	}
	statusName := issue.Fields.Status.Name
	if issueType == "" || statusName == "" {
		return workflow.TransitionKey{}, false
	}

	return workflow.TransitionKey{
		ProjectKey: ProjectKeyFromIssueKey(issue.Key),
		IssueType:  issueType,
		StatusName: statusName,
	}, true
}

// OpenKey は課題キーから課題を取得してパネルを開く
func (c *Controller) OpenKey(ctx context.Context, issueKey string) error {
	if issueKey == "" {
		return errors.New("issue key is required")
	}

	issue, err := c.client.GetIssue(ctx, issueKey)
	if err != nil {
		return err
	}
	return c.Open(ctx, issue)
}

// Open は課題詳細パネルを開く。トランジションキャッシュにヒットすれば
// 即座に確定状態で描画し、ミスした場合は保留状態で描画した上で
// ステータスキャッシュの確保・プリフェッチの起動・ライブ取得を行う。
func (c *Controller) Open(ctx context.Context, issue *jira.Issue) error {
	if issue == nil || issue.Key == "" {
		return errors.New("issue is required")
	}

	projectKey := ProjectKeyFromIssueKey(issue.Key)
	key, keyOK := transitionKeyForIssue(issue)

	if keyOK {
		if cached := c.cache.Get(key); len(cached) > 0 {
			c.mu.Lock()
			c.state = RenderState{
				Issue:         issue,
				StatusOptions: cached,
				StatusState:   StateReady,
			}
			c.mu.Unlock()
			c.render()
			c.loadComments(ctx, issue.Key)
			return nil
		}
	}

	c.mu.Lock()
	c.state = RenderState{
		Issue:         issue,
		StatusState:   StatePending,
		StatusPending: true,
	}
	c.mu.Unlock()
	c.render()

	// ステータスキャッシュの確保とプリフェッチはバックグラウンドで実施する
	go func() {
		if _, err := c.store.Ensure(ctx, projectKey); err != nil {
			c.logger.Debug("status store ensure failed", "project", projectKey, "error", err)
		}
	}()
	c.prefetcher.Prefetch(ctx, projectKey)

	transitions, err := c.client.GetTransitions(ctx, issue.Key)
	if err != nil {
		c.mu.Lock()
		c.state.StatusError = err
		c.state.StatusState = StateReady
		c.state.StatusPending = false
		// フォールバック表示としてプロジェクトの全ステータスを使用する
		if fallback := c.store.Get(projectKey); len(fallback) > 0 {
			c.state.StatusOptions = fallback
		}
		c.mu.Unlock()
		c.render()
		c.loadComments(ctx, issue.Key)
		return nil
	}

	options := workflow.OptionsFromTransitions(transitions)
	if keyOK {
		c.cache.Remember(key, options)
	}

	c.mu.Lock()
	c.state.StatusOptions = options
	c.state.StatusState = StateReady
	c.state.StatusPending = false
	c.state.StatusError = nil
	c.mu.Unlock()
	c.render()

	c.loadComments(ctx, issue.Key)
	return nil
}

// ApplyTransition はユーザーが選択したトランジションを適用する。
// 適用後は課題とトランジションを必ずライブで再取得し（キャッシュ不使用）、
// 新しい状態の複合キーでキャッシュを更新する。
func (c *Controller) ApplyTransition(ctx context.Context, transitionID string) error {
	if transitionID == "" {
		return errors.New("transition ID is required")
	}

	c.mu.Lock()
	issue := c.state.Issue
	c.mu.Unlock()
	if issue == nil || issue.Key == "" {
		return errors.New("no issue is open")
	}

	c.mu.Lock()
	c.state.StatusState = StateApplying
	c.state.StatusError = nil
	c.mu.Unlock()
	c.render()

	if err := c.client.DoTransition(ctx, issue.Key, transitionID); err != nil {
		c.failApply(err)
		return err
	}

	// 遷移後の状態から出られるトランジションは遷移前と異なるため、
	// キャッシュを介さずに再取得する
	fresh, err := c.client.GetIssue(ctx, issue.Key)
	if err != nil {
		c.failApply(err)
		return err
	}

	transitions, err := c.client.GetTransitions(ctx, fresh.Key)
	if err != nil {
		c.failApply(err)
		return err
	}

	options := workflow.OptionsFromTransitions(transitions)
	if key, ok := transitionKeyForIssue(fresh); ok {
		c.cache.Remember(key, options)
	}

	c.mu.Lock()
	c.state.Issue = fresh
	c.state.StatusOptions = options
	c.state.StatusState = StateReady
	c.state.StatusError = nil
	c.mu.Unlock()
	c.render()

	return nil
}

// failApply はトランジション適用の失敗を描画状態に反映する。
// 直前の選択肢は保持したままコントロールを再度有効にする。
func (c *Controller) failApply(err error) {
	c.mu.Lock()
	c.state.StatusError = err
	c.state.StatusState = StateReady
	c.mu.Unlock()
	c.render()
}

// loadComments は課題のコメントをベストエフォートで取得して再描画する
func (c *Controller) loadComments(ctx context.Context, issueKey string) {
	comments, err := c.client.ListComments(ctx, issueKey)
	if err != nil {
		c.logger.Debug("comment fetch failed", "issue", issueKey, "error", err)
		return
	}

	c.mu.Lock()
	c.state.Comments = comments
	c.mu.Unlock()
	c.render()
}

// Dispose はパネルを破棄する。以降の描画は行われない。
// 進行中の非同期処理は中断されないが、結果は破棄される。
func (c *Controller) Dispose() {
	c.mu.Lock()
	c.disposed = true
	c.mu.Unlock()
}

// render は現在の状態のスナップショットを描画する。破棄済みの場合は何もしない。
func (c *Controller) render() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	snapshot := c.state
	c.mu.Unlock()

	c.renderer.Render(&snapshot)
}
