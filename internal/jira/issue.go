package jira

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// GetIssue は課題の詳細を取得する
func (c *Client) GetIssue(ctx context.Context, issueKey string) (*Issue, error) {
	if issueKey == "" {
		return nil, errors.New("issue key is required")
	}

	var issue Issue
	if err := c.do(ctx, http.MethodGet, "/issue/"+url.PathEscape(issueKey), nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// CreateIssue は新しい課題を作成する
func (c *Client) CreateIssue(ctx context.Context, fields *CreateIssueFields) (*CreatedIssue, error) {
	if fields == nil {
		return nil, errors.New("fields are required")
	}
	if fields.Project == nil || fields.Project.Key == "" {
		return nil, errors.New("project key is required")
	}
	if fields.Summary == "" {
		return nil, errors.New("summary is required")
	}
	if fields.IssueType == nil || (fields.IssueType.ID == "" && fields.IssueType.Name == "") {
		return nil, errors.New("issue type is required")
	}

	body := struct {
		Fields *CreateIssueFields `json:"fields"`
	}{Fields: fields}

	var created CreatedIssue
	if err := c.do(ctx, http.MethodPost, "/issue", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AssignIssue は課題の担当者を変更する。
// accountIDはCloud、nameはServer/DCで使用される。空文字列の指定で担当者を解除する。
func (c *Client) AssignIssue(ctx context.Context, issueKey string, assignee *User) error {
	if issueKey == "" {
		return errors.New("issue key is required")
	}

	return c.do(ctx, http.MethodPut, "/issue/"+url.PathEscape(issueKey)+"/assignee", assignee, nil)
}
