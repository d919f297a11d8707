// Package http provides the shared outbound HTTP client.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient はOpenRouterなど外部API呼び出し用のHTTPクライアントを作成します。
//
// timeoutはリクエスト全体のタイムアウトです。0の場合は全体のタイムアウトを設けず、
// 接続・TLSハンドシェイク・レスポンスヘッダー待ちの各段階のタイムアウトのみが効きます。
// LLMの応答は数十秒かかることがあるため、ResponseHeaderTimeoutは長めに取っています。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 120 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
