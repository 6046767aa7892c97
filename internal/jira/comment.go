package jira

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// commentsResponse はGET issue/{key}/commentのレスポンス
type commentsResponse struct {
	StartAt    int        `json:"startAt"`
	MaxResults int        `json:"maxResults"`
	Total      int        `json:"total"`
	Comments   []*Comment `json:"comments"`
}

// ListComments は課題のコメント一覧を取得する
func (c *Client) ListComments(ctx context.Context, issueKey string) ([]*Comment, error) {
	if issueKey == "" {
		return nil, errors.New("issue key is required")
	}

	var resp commentsResponse
	if err := c.do(ctx, http.MethodGet, "/issue/"+url.PathEscape(issueKey)+"/comment", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// AddComment は課題にコメントを追加する
func (c *Client) AddComment(ctx context.Context, issueKey, body string) (*Comment, error) {
	if issueKey == "" {
		return nil, errors.New("issue key is required")
	}
	if body == "" {
		return nil, errors.New("comment body is required")
	}

	req := struct {
		Body string `json:"body"`
	}{Body: body}

	var comment Comment
	if err := c.do(ctx, http.MethodPost, "/issue/"+url.PathEscape(issueKey)+"/comment", req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
