package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionCache_RememberAndGet(t *testing.T) {
	cache := NewTransitionCache()

	key := TransitionKey{ProjectKey: "ABC", IssueType: "10001", StatusName: "To Do"}
	options := []*StatusOption{
		{ID: "11", Name: "Start Progress", Category: CategoryInProgress},
	}

	cache.Remember(key, options)

	got := cache.Get(key)
	assert.Equal(t, options, got)
}

func TestTransitionCache_CaseInsensitiveKeyMatching(t *testing.T) {
	cache := NewTransitionCache()

	cache.Remember(TransitionKey{ProjectKey: "ABC", IssueType: "10001", StatusName: "To Do"},
		[]*StatusOption{{ID: "11", Name: "Start Progress"}})

	// キーの大文字小文字とトリムの違いは吸収される
	got := cache.Get(TransitionKey{ProjectKey: "abc", IssueType: "10001", StatusName: " TO DO "})
	assert.Len(t, got, 1)
	assert.Equal(t, "Start Progress", got[0].Name)
}

func TestTransitionCache_FirstWriteWins(t *testing.T) {
	cache := NewTransitionCache()
	key := TransitionKey{ProjectKey: "ABC", IssueType: "10001", StatusName: "To Do"}

	first := []*StatusOption{{ID: "11", Name: "Start Progress"}}
	second := []*StatusOption{{ID: "21", Name: "Close"}}

	cache.Remember(key, first)
	cache.Remember(key, second)

	assert.Equal(t, first, cache.Get(key))
}

func TestTransitionCache_EmptyListIgnored(t *testing.T) {
	cache := NewTransitionCache()
	key := TransitionKey{ProjectKey: "ABC", IssueType: "10001", StatusName: "To Do"}

	cache.Remember(key, nil)
	assert.Nil(t, cache.Get(key))

	first := []*StatusOption{{ID: "11", Name: "Start Progress"}}
	cache.Remember(key, first)
	cache.Remember(key, []*StatusOption{})

	assert.Equal(t, first, cache.Get(key))
}

func TestTransitionCache_MalformedKeyIgnored(t *testing.T) {
	cache := NewTransitionCache()
	options := []*StatusOption{{ID: "11", Name: "Start Progress"}}

	tests := []struct {
		name string
		key  TransitionKey
	}{
		{name: "empty project", key: TransitionKey{IssueType: "10001", StatusName: "To Do"}},
		{name: "empty issue type", key: TransitionKey{ProjectKey: "ABC", StatusName: "To Do"}},
		{name: "empty status", key: TransitionKey{ProjectKey: "ABC", IssueType: "10001"}},
		{name: "whitespace only", key: TransitionKey{ProjectKey: "  ", IssueType: "10001", StatusName: "To Do"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache.Remember(tt.key, options)
			assert.Nil(t, cache.Get(tt.key))
			assert.Equal(t, 0, cache.Len())
		})
	}
}

func TestTransitionCache_Clear(t *testing.T) {
	cache := NewTransitionCache()
	key := TransitionKey{ProjectKey: "ABC", IssueType: "10001", StatusName: "To Do"}

	cache.Remember(key, []*StatusOption{{ID: "11", Name: "Start Progress"}})
	assert.Equal(t, 1, cache.Len())

	cache.Clear()

	assert.Nil(t, cache.Get(key))
	assert.Equal(t, 0, cache.Len())
}
