package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// AuthType は認証方式を表す
type AuthType string

const (
	// AuthTypeBasic はメールアドレス + APIトークンによるBasic認証（Jira Cloud）
	AuthTypeBasic AuthType = "basic"
	// AuthTypeBearer はPersonal Access TokenによるBearer認証（Jira Server / Data Center）
	AuthTypeBearer AuthType = "bearer"
)

// apiPrefixCandidates はAPIバージョンの候補（優先順）
var apiPrefixCandidates = []string{
	"/rest/api/3",
	"/rest/api/2",
	"/rest/api/latest",
}

// Client はJira REST APIクライアントのラッパー
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	username   string
	token      string
	authType   AuthType

	mu        sync.Mutex
	apiPrefix string // ネゴシエーション済みのAPIプレフィックス
}

// Option はクライアントの設定オプション
type Option func(*Client)

// WithHTTPClient はHTTPクライアントを差し替えるオプション
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithAPIPrefix はAPIプレフィックスを固定するオプション（ネゴシエーションを省略する）
func WithAPIPrefix(prefix string) Option {
	return func(c *Client) {
		c.apiPrefix = prefix
	}
}

// NewClient は新しいJira APIクライアントを作成する。
// usernameが空の場合はBearer認証（Server/DC）、それ以外はBasic認証（Cloud）を使用する。
func NewClient(baseURL, username, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if token == "" {
		return nil, errors.New("API token is required")
	}

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	c := &Client{
		baseURL:  u,
		username: username,
		token:    token,
		authType: AuthTypeBasic,
	}
	if username == "" {
		c.authType = AuthTypeBearer
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		if c.authType == AuthTypeBearer {
			ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
			c.httpClient = oauth2.NewClient(context.Background(), ts)
		} else {
			c.httpClient = &http.Client{Timeout: 30 * time.Second}
		}
	}

	return c, nil
}

// AuthType は使用中の認証方式を返す
func (c *Client) AuthType() AuthType {
	return c.authType
}

// resolveAPIPrefix はAPIバージョンをネゴシエーションする。
// 候補を優先順に試し、最初に成功したプレフィックスを固定する。
func (c *Client) resolveAPIPrefix(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.apiPrefix != "" {
		prefix := c.apiPrefix
		c.mu.Unlock()
		return prefix, nil
	}
	c.mu.Unlock()

	var lastErr error
	for _, candidate := range apiPrefixCandidates {
		req, err := c.newRequest(ctx, http.MethodGet, candidate+"/serverInfo", nil)
		if err != nil {
			return "", err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			c.mu.Lock()
			c.apiPrefix = candidate
			c.mu.Unlock()
			return candidate, nil
		}
		lastErr = &APIError{
			Type:       errorTypeForStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Message:    "serverInfo probe failed",
			Endpoint:   candidate + "/serverInfo",
		}
	}

	return "", fmt.Errorf("API version negotiation failed: %w", lastErr)
}

// newRequest はbaseURL配下へのリクエストを作成する
func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	u := *c.baseURL
	if i := strings.Index(path, "?"); i >= 0 {
		u.RawQuery = path[i+1:]
		path = path[:i]
	}
	u.Path = strings.TrimRight(u.Path, "/") + path

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authType == AuthTypeBasic {
		req.SetBasicAuth(c.username, c.token)
	}
	// Bearer認証はoauth2.Transportがヘッダーを付与する

	return req, nil
}

// do はAPIプレフィックスを解決した上でリクエストを実行し、レスポンスをデコードする。
// outがnilの場合、レスポンスボディは破棄される。
func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	prefix, err := c.resolveAPIPrefix(ctx)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, method, prefix+endpoint, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.parseErrorResponse(resp, endpoint)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// errorBody はJiraのエラーレスポンスの形
type errorBody struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}

// parseErrorResponse はエラーレスポンスを構造化エラーに変換する
func (c *Client) parseErrorResponse(resp *http.Response, endpoint string) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	message := http.StatusText(resp.StatusCode)
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		var parts []string
		parts = append(parts, body.ErrorMessages...)
		for field, msg := range body.Errors {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
		}
		if len(parts) > 0 {
			message = strings.Join(parts, "; ")
		}
	}

	return &APIError{
		Type:       errorTypeForStatus(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Message:    message,
		Endpoint:   endpoint,
	}
}

// GetMyself は認証中のユーザー情報を取得する
func (c *Client) GetMyself(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/myself", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
