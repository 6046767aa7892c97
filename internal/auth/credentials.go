package auth

import "sync"

// Credentials はJiraサイトへの接続情報
type Credentials struct {
	BaseURL     string
	Username    string
	AccountID   string
	ServerLabel string
	Token       string
}

// Valid は認証に必要な最低限の情報が揃っているかを返す
func (c *Credentials) Valid() bool {
	return c != nil && c.BaseURL != "" && c.Token != ""
}

// Provider は認証情報の供給元のインターフェース。
// 認証情報が未設定の場合は (nil, false) を返し、エラーにはしない。
type Provider interface {
	Credentials() (*Credentials, bool)
}

// StaticProvider はメモリ上の認証情報を保持するProvider実装
type StaticProvider struct {
	mu    sync.RWMutex
	creds *Credentials
}

// NewStaticProvider は新しいStaticProviderを作成する
func NewStaticProvider(creds *Credentials) *StaticProvider {
	p := &StaticProvider{}
	if creds != nil && creds.Valid() {
		p.creds = creds
	}
	return p
}

// Credentials は保持している認証情報を返す
func (p *StaticProvider) Credentials() (*Credentials, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.creds == nil || !p.creds.Valid() {
		return nil, false
	}
	return p.creds, true
}

// Set は認証情報を差し替える（ログイン/ログアウト）。
// nilまたは不完全な認証情報の指定はログアウトとして扱う。
func (p *StaticProvider) Set(creds *Credentials) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if creds == nil || !creds.Valid() {
		p.creds = nil
		return
	}
	p.creds = creds
}
