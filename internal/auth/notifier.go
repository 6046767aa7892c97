package auth

import "sync"

// EventType は認証状態の変化の種類を表す
type EventType string

const (
	// EventLogin ログインした
	EventLogin EventType = "login"
	// EventLogout ログアウトした
	EventLogout EventType = "logout"
)

// Event は認証状態の変化イベント
type Event struct {
	Type        EventType
	ServerLabel string
}

// Subscriber はイベントを受け取るコールバック関数
type Subscriber func(Event)

// Notifier は認証状態の変化を購読者に通知する
type Notifier struct {
	mu          sync.RWMutex
	subscribers []Subscriber
}

// NewNotifier は新しいNotifierを作成する
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe はイベントの購読者を登録する
func (n *Notifier) Subscribe(fn Subscriber) {
	if fn == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, fn)
}

// Notify は全購読者にイベントを通知する
func (n *Notifier) Notify(event Event) {
	n.mu.RLock()
	subscribers := make([]Subscriber, len(n.subscribers))
	copy(subscribers, n.subscribers)
	n.mu.RUnlock()

	for _, fn := range subscribers {
		fn(event)
	}
}
