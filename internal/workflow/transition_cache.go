package workflow

import (
	"strings"
	"sync"
)

// keyDelimiter はキャッシュキーの結合に使う区切り文字
const keyDelimiter = "\x1f"

// TransitionKey は (プロジェクト, 課題タイプ, ステータス) の複合キー
type TransitionKey struct {
	ProjectKey string
	IssueType  string // 課題タイプのIDまたは名前
	StatusName string
}

// normalized はキーの各要素をトリム + ASCII小文字化して結合する。
// いずれかの要素が空の場合は (空文字列, false) を返す。
// Unicodeのケースフォールディングは行わない（意図的にASCIIのみ）。
func (k TransitionKey) normalized() (string, bool) {
	project := strings.ToLower(strings.TrimSpace(k.ProjectKey))
	issueType := strings.ToLower(strings.TrimSpace(k.IssueType))
	status := strings.ToLower(strings.TrimSpace(k.StatusName))

	if project == "" || issueType == "" || status == "" {
		return "", false
	}

	return project + keyDelimiter + issueType + keyDelimiter + status, true
}

// TransitionCache は複合キーからトランジション一覧への純粋なキャッシュ。
// I/Oは一切行わない。
type TransitionCache struct {
	mu      sync.RWMutex
	entries map[string][]*StatusOption
}

// NewTransitionCache は新しいTransitionCacheを作成する
func NewTransitionCache() *TransitionCache {
	return &TransitionCache{
		entries: make(map[string][]*StatusOption),
	}
}

// Get はキャッシュされたトランジション一覧を返す。未登録の場合はnil。
func (c *TransitionCache) Get(key TransitionKey) []*StatusOption {
	normalized, ok := key.normalized()
	if !ok {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[normalized]
}

// Remember はトランジション一覧をキャッシュに登録する。
// 空のリスト、不正なキー、既に登録済みのキーは黙って無視する（先勝ち）。
func (c *TransitionCache) Remember(key TransitionKey, transitions []*StatusOption) {
	if len(transitions) == 0 {
		return
	}

	normalized, ok := key.normalized()
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[normalized]; exists {
		return
	}

	stored := make([]*StatusOption, len(transitions))
	copy(stored, transitions)
	c.entries[normalized] = stored
}

// Clear は全エントリを破棄する
func (c *TransitionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]*StatusOption)
}

// Len は登録済みエントリ数を返す
func (c *TransitionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
