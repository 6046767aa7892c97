package jira

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// SearchIssues はJQLで課題を検索する。
// POSTエンドポイントを優先し、許可されていない場合はGETにフォールバックする。
func (c *Client) SearchIssues(ctx context.Context, opts *SearchOptions) (*SearchResult, error) {
	if opts == nil || opts.JQL == "" {
		return nil, errors.New("JQL is required")
	}

	var result SearchResult
	err := c.do(ctx, http.MethodPost, "/search", opts, &result)
	if err == nil {
		return &result, nil
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || (apiErr.StatusCode != http.StatusMethodNotAllowed && apiErr.StatusCode != http.StatusNotFound) {
		return nil, err
	}

	// 一部のServer/DC構成はPOST searchを受け付けない
	return c.searchIssuesGet(ctx, opts)
}

// searchIssuesGet はGETエンドポイントで課題を検索する
func (c *Client) searchIssuesGet(ctx context.Context, opts *SearchOptions) (*SearchResult, error) {
	params := url.Values{}
	params.Set("jql", opts.JQL)
	if opts.StartAt > 0 {
		params.Set("startAt", strconv.Itoa(opts.StartAt))
	}
	if opts.MaxResults > 0 {
		params.Set("maxResults", strconv.Itoa(opts.MaxResults))
	}
	for _, field := range opts.Fields {
		params.Add("fields", field)
	}

	var result SearchResult
	if err := c.do(ctx, http.MethodGet, "/search?"+params.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
