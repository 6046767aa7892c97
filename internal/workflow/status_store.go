package workflow

import (
	"context"
	"strings"
	"sync"

	"github.com/douhashi/tsugi/internal/auth"
	"github.com/douhashi/tsugi/internal/jira"
	"github.com/douhashi/tsugi/internal/logger"
)

// ProjectStatusEntry はプロジェクト単位のステータスキャッシュエントリ
type ProjectStatusEntry struct {
	// AllStatuses は全課題タイプのステータスの和集合
	AllStatuses []*StatusOption
	// IssueTypeStatuses は課題タイプごとのステータス一覧
	IssueTypeStatuses []*IssueTypeStatuses
}

// IssueTypeSelector は課題タイプの指定。IDと名前のどちらか一方だけが
// 信頼できるJiraインスタンスがあるため、両方を受け付ける。
type IssueTypeSelector struct {
	ID   string
	Name string
}

// inflightFetch は進行中のリモート取得を表す。
// 同一プロジェクトへの並行呼び出しはこの1つの取得に合流する。
type inflightFetch struct {
	done  chan struct{}
	entry *ProjectStatusEntry
	err   error
}

// ProjectStatusStore はプロジェクトのステータス体系をキャッシュし、
// 未取得の場合はリモートAPIから遅延取得する。
type ProjectStatusStore struct {
	client jira.JiraClient
	auth   auth.Provider
	logger logger.Logger

	mu          sync.Mutex
	entries     map[string]*ProjectStatusEntry
	byIssueType map[string]map[string][]*StatusOption
	inflight    map[string]*inflightFetch
	generation  uint64 // Clear/Refreshで進む世代。古い取得結果の格納を防ぐ
}

// NewProjectStatusStore は新しいProjectStatusStoreを作成する
func NewProjectStatusStore(client jira.JiraClient, authProvider auth.Provider, log logger.Logger) *ProjectStatusStore {
	return &ProjectStatusStore{
		client:      client,
		auth:        authProvider,
		logger:      log,
		entries:     make(map[string]*ProjectStatusEntry),
		byIssueType: make(map[string]map[string][]*StatusOption),
		inflight:    make(map[string]*inflightFetch),
	}
}

// Get はキャッシュ済みの全ステータスの和集合を同期的に返す。未取得の場合はnil。
func (s *ProjectStatusStore) Get(projectKey string) []*StatusOption {
	key := strings.TrimSpace(projectKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok {
		return entry.AllStatuses
	}
	return nil
}

// GetIssueTypeStatuses は課題タイプに対応するステータス一覧を同期的に返す。
// IDでの検索を優先し、見つからない場合は名前で検索する。
func (s *ProjectStatusStore) GetIssueTypeStatuses(projectKey string, selector IssueTypeSelector) []*StatusOption {
	key := strings.TrimSpace(projectKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	slots, ok := s.byIssueType[key]
	if !ok {
		return nil
	}

	if ident := normalizeIdentifier(selector.ID); ident != "" {
		if statuses, ok := slots[ident]; ok {
			return statuses
		}
	}
	if ident := normalizeIdentifier(selector.Name); ident != "" {
		if statuses, ok := slots[ident]; ok {
			return statuses
		}
	}
	return nil
}

// Ensure はキャッシュ済みの全ステータスを返す。未取得の場合は
// リモート取得を開始（または進行中の取得に合流）して結果を待つ。
func (s *ProjectStatusStore) Ensure(ctx context.Context, projectKey string) ([]*StatusOption, error) {
	entry, err := s.ensureEntry(ctx, projectKey)
	if err != nil || entry == nil {
		return nil, err
	}
	return entry.AllStatuses, nil
}

// EnsureAllIssueTypeStatuses は課題タイプごとのステータス一覧を返す。
// 合流のセマンティクスはEnsureと同じ。
func (s *ProjectStatusStore) EnsureAllIssueTypeStatuses(ctx context.Context, projectKey string) ([]*IssueTypeStatuses, error) {
	entry, err := s.ensureEntry(ctx, projectKey)
	if err != nil || entry == nil {
		return nil, err
	}
	return entry.IssueTypeStatuses, nil
}

// Refresh はプロジェクトのキャッシュエントリ（派生キャッシュ含む）を破棄して再取得する
func (s *ProjectStatusStore) Refresh(ctx context.Context, projectKey string) ([]*StatusOption, error) {
	key := strings.TrimSpace(projectKey)

	s.mu.Lock()
	delete(s.entries, key)
	delete(s.byIssueType, key)
	s.generation++
	s.mu.Unlock()

	return s.Ensure(ctx, projectKey)
}

// Clear は全プロジェクトのキャッシュを破棄する（ログイン/ログアウト時に使用）
func (s *ProjectStatusStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*ProjectStatusEntry)
	s.byIssueType = make(map[string]map[string][]*StatusOption)
	s.generation++
}

// ensureEntry はエントリを取得する。キャッシュヒット時は即座に返し、
// 進行中の取得があれば合流し、なければ新しい取得を開始する。
// プロジェクトごとに同時に1つのリモート取得しか許可しない。
func (s *ProjectStatusStore) ensureEntry(ctx context.Context, projectKey string) (*ProjectStatusEntry, error) {
	key := strings.TrimSpace(projectKey)
	if key == "" {
		return nil, nil
	}

	s.mu.Lock()
	if entry, ok := s.entries[key]; ok {
		s.mu.Unlock()
		return entry, nil
	}
	if f, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		select {
		case <-f.done:
			return f.entry, f.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f := &inflightFetch{done: make(chan struct{})}
	s.inflight[key] = f
	gen := s.generation
	s.mu.Unlock()

	entry, err := s.fetch(ctx, key)

	s.mu.Lock()
	delete(s.inflight, key)
	if err == nil && entry != nil && gen == s.generation {
		s.entries[key] = entry
		s.prime(key, entry.IssueTypeStatuses)
	}
	s.mu.Unlock()

	f.entry, f.err = entry, err
	close(f.done)

	return entry, err
}

// fetch はリモートAPIからプロジェクトのステータス体系を取得する。
// 認証情報がない場合は (nil, nil) を返す（エラーにはしない）。
func (s *ProjectStatusStore) fetch(ctx context.Context, projectKey string) (*ProjectStatusEntry, error) {
	if _, ok := s.auth.Credentials(); !ok {
		s.logger.Debug("status fetch skipped: no credentials", "project", projectKey)
		return nil, nil
	}

	groups, err := s.client.GetProjectStatuses(ctx, projectKey)
	if err != nil {
		s.logger.Debug("status fetch failed", "project", projectKey, "error", err)
		return nil, err
	}

	return buildEntry(groups), nil
}

// buildEntry はAPIレスポンスからキャッシュエントリを構築する。
// 和集合も課題タイプ内の一覧も、ステータス名の大文字小文字を無視して重複排除する。
func buildEntry(groups []*jira.ProjectStatusGroup) *ProjectStatusEntry {
	entry := &ProjectStatusEntry{}
	seenAll := make(map[string]bool)

	for _, group := range groups {
		if group == nil {
			continue
		}

		seenGroup := make(map[string]bool)
		var statuses []*StatusOption
		for _, status := range group.Statuses {
			option := OptionFromStatus(status)
			if option == nil {
				continue
			}

			nameKey := strings.ToLower(option.Name)
			if seenGroup[nameKey] {
				continue
			}
			seenGroup[nameKey] = true
			statuses = append(statuses, option)

			if !seenAll[nameKey] {
				seenAll[nameKey] = true
				entry.AllStatuses = append(entry.AllStatuses, option)
			}
		}

		entry.IssueTypeStatuses = append(entry.IssueTypeStatuses, &IssueTypeStatuses{
			IssueTypeID:   group.ID,
			IssueTypeName: group.Name,
			Statuses:      statuses,
		})
	}

	return entry
}

// prime は課題タイプ単位のキャッシュを先行登録する。
// 各グループをID・名前両方の識別子の下に登録する。同一の識別子スロットへは
// 1回のプライミング内で先勝ちとし、上書きしない。
// 呼び出し側がmuを保持していること。
func (s *ProjectStatusStore) prime(projectKey string, groups []*IssueTypeStatuses) {
	slots, ok := s.byIssueType[projectKey]
	if !ok {
		slots = make(map[string][]*StatusOption)
		s.byIssueType[projectKey] = slots
	}

	for _, group := range groups {
		if group == nil || len(group.Statuses) == 0 {
			continue
		}
		for _, raw := range []string{group.IssueTypeID, group.IssueTypeName} {
			ident := normalizeIdentifier(raw)
			if ident == "" {
				continue
			}
			if _, exists := slots[ident]; exists {
				continue
			}
			slots[ident] = group.Statuses
		}
	}
}

// normalizeIdentifier は課題タイプ識別子をトリム + ASCII小文字化する
func normalizeIdentifier(ident string) string {
	return strings.ToLower(strings.TrimSpace(ident))
}
