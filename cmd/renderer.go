package cmd

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/douhashi/tsugi/internal/panel"
	"github.com/douhashi/tsugi/internal/workflow"
)

// captureRenderer は最新の描画状態を保持するpanel.Renderer実装。
// 一度きりのCLI実行では逐次描画ではなく、コマンドの最後にまとめて出力する。
type captureRenderer struct {
	mu    sync.Mutex
	state *panel.RenderState
}

// Render はpanel.Rendererインターフェースを実装する
func (r *captureRenderer) Render(state *panel.RenderState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state
}

// Latest は最後に描画された状態を返す
func (r *captureRenderer) Latest() *panel.RenderState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

var (
	headerColor   = color.New(color.FgCyan, color.Bold)
	keyColor      = color.New(color.FgBlue, color.Bold)
	errorColor    = color.New(color.FgRed)
	pendingColor  = color.New(color.FgYellow)
	doneColor     = color.New(color.FgGreen)
	progressColor = color.New(color.FgYellow)
	openColor     = color.New(color.FgWhite)
)

// colorForCategory はステータス分類に対応する色を返す
func colorForCategory(category workflow.Category) *color.Color {
	switch category {
	case workflow.CategoryDone:
		return doneColor
	case workflow.CategoryInProgress:
		return progressColor
	case workflow.CategoryOpen:
		return openColor
	default:
		return openColor
	}
}

// printIssuePanel は課題詳細パネルの状態を出力する
func printIssuePanel(w io.Writer, state *panel.RenderState) {
	if state == nil || state.Issue == nil {
		fmt.Fprintln(w, "no issue loaded")
		return
	}

	issue := state.Issue
	keyColor.Fprintf(w, "%s", issue.Key)
	if issue.Fields != nil && issue.Fields.Summary != nil {
		fmt.Fprintf(w, "  %s", *issue.Fields.Summary)
	}
	fmt.Fprintln(w)

	if issue.Fields != nil {
		if issue.Fields.Status != nil && issue.Fields.Status.Name != "" {
			category := workflow.CategoryForName(issue.Fields.Status.Name)
			fmt.Fprintf(w, "  Status:   ")
			colorForCategory(category).Fprintln(w, issue.Fields.Status.Name)
		}
		if issue.Fields.IssueType != nil && issue.Fields.IssueType.Name != "" {
			fmt.Fprintf(w, "  Type:     %s\n", issue.Fields.IssueType.Name)
		}
		if issue.Fields.Assignee != nil && issue.Fields.Assignee.DisplayName != "" {
			fmt.Fprintf(w, "  Assignee: %s\n", issue.Fields.Assignee.DisplayName)
		}
		if issue.Fields.Description != nil && *issue.Fields.Description != "" {
			fmt.Fprintf(w, "\n%s\n", *issue.Fields.Description)
		}
	}

	fmt.Fprintln(w)
	if state.StatusPending {
		pendingColor.Fprintln(w, "  Transitions: (loading...)")
	} else if len(state.StatusOptions) > 0 {
		headerColor.Fprintln(w, "  Transitions:")
		for _, option := range state.StatusOptions {
			fmt.Fprintf(w, "    [%s] ", option.ID)
			colorForCategory(option.Category).Fprintln(w, option.Name)
		}
	}

	if state.StatusError != nil {
		errorColor.Fprintf(w, "  Error: %v\n", state.StatusError)
	}

	if len(state.Comments) > 0 {
		fmt.Fprintln(w)
		headerColor.Fprintf(w, "  Comments (%d):\n", len(state.Comments))
		for _, comment := range state.Comments {
			author := ""
			if comment.Author != nil {
				author = comment.Author.DisplayName
			}
			fmt.Fprintf(w, "    %s: %s\n", author, comment.Body)
		}
	}
}
