package jira

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// transitionsResponse はGET issue/{key}/transitionsのレスポンス
type transitionsResponse struct {
	Transitions []*Transition `json:"transitions"`
}

// GetTransitions は課題の現在の状態から遷移可能なトランジション一覧を取得する
func (c *Client) GetTransitions(ctx context.Context, issueKey string) ([]*Transition, error) {
	if issueKey == "" {
		return nil, errors.New("issue key is required")
	}

	var resp transitionsResponse
	if err := c.do(ctx, http.MethodGet, "/issue/"+url.PathEscape(issueKey)+"/transitions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transitions, nil
}

// DoTransition は課題にトランジションを適用する
func (c *Client) DoTransition(ctx context.Context, issueKey, transitionID string) error {
	if issueKey == "" {
		return errors.New("issue key is required")
	}
	if transitionID == "" {
		return errors.New("transition ID is required")
	}

	body := struct {
		Transition struct {
			ID string `json:"id"`
		} `json:"transition"`
	}{}
	body.Transition.ID = transitionID

	return c.do(ctx, http.MethodPost, "/issue/"+url.PathEscape(issueKey)+"/transitions", body, nil)
}
