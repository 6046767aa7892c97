package jira

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// ListProjects はアクセス可能なプロジェクトの一覧を取得する
func (c *Client) ListProjects(ctx context.Context) ([]*Project, error) {
	var projects []*Project
	if err := c.do(ctx, http.MethodGet, "/project", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject はプロジェクトの詳細を取得する
func (c *Client) GetProject(ctx context.Context, projectKey string) (*Project, error) {
	if projectKey == "" {
		return nil, errors.New("project key is required")
	}

	var project Project
	if err := c.do(ctx, http.MethodGet, "/project/"+url.PathEscape(projectKey), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProjectStatuses はプロジェクトの課題タイプごとのステータス一覧を取得する
func (c *Client) GetProjectStatuses(ctx context.Context, projectKey string) ([]*ProjectStatusGroup, error) {
	if projectKey == "" {
		return nil, errors.New("project key is required")
	}

	var groups []*ProjectStatusGroup
	if err := c.do(ctx, http.MethodGet, "/project/"+url.PathEscape(projectKey)+"/statuses", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
