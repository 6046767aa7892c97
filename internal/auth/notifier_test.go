package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_Notify(t *testing.T) {
	notifier := NewNotifier()

	var received []Event
	notifier.Subscribe(func(event Event) {
		received = append(received, event)
	})
	notifier.Subscribe(func(event Event) {
		received = append(received, event)
	})

	notifier.Notify(Event{Type: EventLogin, ServerLabel: "example"})

	// 全購読者に届く
	assert.Len(t, received, 2)
	assert.Equal(t, EventLogin, received[0].Type)
	assert.Equal(t, "example", received[0].ServerLabel)

	notifier.Notify(Event{Type: EventLogout})
	assert.Len(t, received, 4)
	assert.Equal(t, EventLogout, received[2].Type)
}

func TestNotifier_NilSubscriberIgnored(t *testing.T) {
	notifier := NewNotifier()
	notifier.Subscribe(nil)

	// nilの購読者が登録されていてもパニックしない
	assert.NotPanics(t, func() {
		notifier.Notify(Event{Type: EventLogin})
	})
}
