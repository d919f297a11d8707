// Package openrouter はOpenRouterのチャット補完APIを使用した企業分析クライアントを提供します。
package openrouter

import "time"

const (
	// DefaultBaseURL はOpenRouter APIのベースURLです。
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	// DefaultMaxTokens は1回の応答の最大トークン数です。
	DefaultMaxTokens = 500
	// DefaultTemperature はサンプリング温度です。
	DefaultTemperature float32 = 0.3
	// DefaultSiteName はOpenRouterのランキング用に送るアプリ名です。
	DefaultSiteName = "Company Analysis Tool"
)

// Config はOpenRouterクライアントの設定です。
type Config struct {
	APIKey      string        // 認証キー（OPENROUTER_API_KEY）
	BaseURL     string        // APIのベースURL
	Timeout     time.Duration // リクエスト全体のタイムアウト（0ならトランスポートの既定値）
	MaxTokens   int
	Temperature float32
	SiteURL     string // HTTP-Refererヘッダー（任意）
	SiteName    string // X-Titleヘッダー（任意）
}

// withDefaults は未設定の項目にデフォルト値を補います。
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Temperature <= 0 {
		c.Temperature = DefaultTemperature
	}
	if c.SiteName == "" {
		c.SiteName = DefaultSiteName
	}
	return c
}
