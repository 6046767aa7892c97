package workflow

import (
	"strings"

	"github.com/douhashi/tsugi/internal/jira"
)

// Category はステータスの分類を表す
type Category string

const (
	// CategoryDone 完了状態
	CategoryDone Category = "done"
	// CategoryInProgress 進行中状態
	CategoryInProgress Category = "inProgress"
	// CategoryOpen 未着手状態
	CategoryOpen Category = "open"
	// CategoryDefault 分類不能な状態
	CategoryDefault Category = "default"
)

// CategoryForName はステータス名から分類を推定する。
// ステータス名の部分一致によるヒューリスティックで、リモートの
// statusCategoryには依存しない（CloudとServerで形が異なるため）。
func CategoryForName(name string) Category {
	lower := strings.ToLower(strings.TrimSpace(name))

	switch {
	case strings.Contains(lower, "done"),
		strings.Contains(lower, "closed"),
		strings.Contains(lower, "resolved"),
		strings.Contains(lower, "complete"):
		return CategoryDone
	case strings.Contains(lower, "progress"),
		strings.Contains(lower, "review"),
		strings.Contains(lower, "doing"):
		return CategoryInProgress
	case strings.Contains(lower, "to do"),
		strings.Contains(lower, "todo"),
		strings.Contains(lower, "open"),
		strings.Contains(lower, "backlog"),
		strings.Contains(lower, "new"):
		return CategoryOpen
	default:
		return CategoryDefault
	}
}

// StatusOption はステータス選択肢を表す
type StatusOption struct {
	ID       string
	Name     string
	Category Category
}

// OptionFromStatus はJiraのステータスからStatusOptionを作成する。
// idまたはnameが欠けている場合はnilを返す。
func OptionFromStatus(status *jira.Status) *StatusOption {
	if status == nil || status.ID == "" || status.Name == "" {
		return nil
	}

	return &StatusOption{
		ID:       status.ID,
		Name:     status.Name,
		Category: CategoryForName(status.Name),
	}
}

// OptionFromTransition はJiraのトランジションからStatusOptionを作成する。
// 分類は遷移先ステータスの名前から推定する。
func OptionFromTransition(t *jira.Transition) *StatusOption {
	if t == nil || t.ID == "" || t.Name == "" {
		return nil
	}

	categorySource := t.Name
	if t.To != nil && t.To.Name != "" {
		categorySource = t.To.Name
	}

	return &StatusOption{
		ID:       t.ID,
		Name:     t.Name,
		Category: CategoryForName(categorySource),
	}
}

// OptionsFromTransitions はトランジション一覧をStatusOptionの一覧に変換する。
// 不完全な要素は除外される。
func OptionsFromTransitions(transitions []*jira.Transition) []*StatusOption {
	var options []*StatusOption
	for _, t := range transitions {
		if option := OptionFromTransition(t); option != nil {
			options = append(options, option)
		}
	}
	return options
}

// IssueTypeStatuses は1つの課題タイプで利用可能なステータス一覧
type IssueTypeStatuses struct {
	IssueTypeID   string
	IssueTypeName string
	Statuses      []*StatusOption
}
