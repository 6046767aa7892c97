package panel

import (
	"github.com/douhashi/tsugi/internal/jira"
	"github.com/douhashi/tsugi/internal/workflow"
)

// StatusControlState はステータスコントロールの状態を表す
type StatusControlState int

const (
	// StateUninitialized 初期状態
	StateUninitialized StatusControlState = iota
	// StatePending キャッシュミスで解決待ち
	StatePending
	// StateReady 選択肢が確定した状態
	StateReady
	// StateApplying トランジション適用中
	StateApplying
)

// String はステータスコントロール状態の文字列表現を返す
func (s StatusControlState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateApplying:
		return "applying"
	default:
		return "unknown"
	}
}

// RenderState はパネルの描画に渡される状態のスナップショット
type RenderState struct {
	Issue         *jira.Issue
	Comments      []*jira.Comment
	StatusOptions []*workflow.StatusOption
	StatusState   StatusControlState
	StatusPending bool
	StatusError   error
}

// Renderer はパネルの描画先のインターフェース。
// キャッシュヒット時の即時描画とネットワーク解決後の再描画の両方で呼ばれる。
type Renderer interface {
	Render(state *RenderState)
}

// RendererFunc は関数をRendererとして使うためのアダプター
type RendererFunc func(state *RenderState)

// Render はRendererインターフェースを実装する
func (f RendererFunc) Render(state *RenderState) {
	f(state)
}
