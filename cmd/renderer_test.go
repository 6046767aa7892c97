package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/douhashi/tsugi/internal/jira"
	"github.com/douhashi/tsugi/internal/panel"
	"github.com/douhashi/tsugi/internal/workflow"
)

func TestCaptureRenderer(t *testing.T) {
	renderer := &captureRenderer{}
	assert.Nil(t, renderer.Latest())

	first := &panel.RenderState{StatusState: panel.StatePending}
	second := &panel.RenderState{StatusState: panel.StateReady}

	renderer.Render(first)
	renderer.Render(second)

	// 最後に描画された状態だけを保持する
	assert.Equal(t, second, renderer.Latest())
}

func TestPrintIssuePanel(t *testing.T) {
	color.NoColor = true

	t.Run("full state", func(t *testing.T) {
		var buf bytes.Buffer
		printIssuePanel(&buf, &panel.RenderState{
			Issue: &jira.Issue{
				Key: "ABC-1",
				Fields: &jira.IssueFields{
					Summary:   jira.String("Fix login timeout"),
					Status:    &jira.Status{Name: "To Do"},
					IssueType: &jira.IssueType{Name: "Task"},
				},
			},
			StatusOptions: []*workflow.StatusOption{
				{ID: "11", Name: "Start Progress", Category: workflow.CategoryInProgress},
			},
			StatusState: panel.StateReady,
			Comments: []*jira.Comment{
				{Body: "looking into it", Author: &jira.User{DisplayName: "Dev"}},
			},
		})

		out := buf.String()
		assert.Contains(t, out, "ABC-1")
		assert.Contains(t, out, "Fix login timeout")
		assert.Contains(t, out, "To Do")
		assert.Contains(t, out, "[11] Start Progress")
		assert.Contains(t, out, "Comments (1)")
		assert.Contains(t, out, "Dev: looking into it")
	})

	t.Run("pending state", func(t *testing.T) {
		var buf bytes.Buffer
		printIssuePanel(&buf, &panel.RenderState{
			Issue:         &jira.Issue{Key: "ABC-1"},
			StatusState:   panel.StatePending,
			StatusPending: true,
		})

		assert.Contains(t, buf.String(), "loading")
	})

	t.Run("error state", func(t *testing.T) {
		var buf bytes.Buffer
		printIssuePanel(&buf, &panel.RenderState{
			Issue:       &jira.Issue{Key: "ABC-1"},
			StatusState: panel.StateReady,
			StatusError: errors.New("boom"),
		})

		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("nil state", func(t *testing.T) {
		var buf bytes.Buffer
		printIssuePanel(&buf, nil)
		assert.Contains(t, buf.String(), "no issue loaded")
	})
}

func TestFindTransition(t *testing.T) {
	options := []*workflow.StatusOption{
		{ID: "11", Name: "Start Progress"},
		{ID: "31", Name: "Close"},
	}

	t.Run("by ID", func(t *testing.T) {
		option := findTransition(options, "31")
		assert.NotNil(t, option)
		assert.Equal(t, "Close", option.Name)
	})

	t.Run("by name case insensitive", func(t *testing.T) {
		option := findTransition(options, "start progress")
		assert.NotNil(t, option)
		assert.Equal(t, "11", option.ID)
	})

	t.Run("not found", func(t *testing.T) {
		assert.Nil(t, findTransition(options, "Reopen"))
	})
}
