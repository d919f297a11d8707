package openrouter

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"company_analyzer/internal/feature/companyanalysis/domain/entity"
	"company_analyzer/internal/feature/companyanalysis/usecase"
)

// chatModel はeinoのチャットモデルのうち、このクライアントが使う部分です。
type chatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Client はOpenRouterのOpenAI互換APIを使用して企業分析を生成します。
// チャットモデルは最初の呼び出し時に生成するため、認証キーの未設定はその時点でエラーになります。
type Client struct {
	cfg        Config
	httpClient *http.Client

	mu       sync.Mutex
	cm       chatModel
	newModel func(ctx context.Context) (chatModel, error)
}

// ClientがCompletionClientを実装していることをコンパイル時に検証します。
var _ usecase.CompletionClient = (*Client)(nil)

// NewClient はClientの新しいインスタンスを生成します。httpClientがnilなら既定のクライアントを使います。
func NewClient(cfg Config, httpClient *http.Client) *Client {
	cfg = cfg.withDefaults()
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	c := &Client{
		cfg:        cfg,
		httpClient: withHeaders(httpClient, cfg.SiteURL, cfg.SiteName),
	}
	c.newModel = c.newChatModel
	return c
}

// Complete はシステムメッセージとプロンプトを送り、最初の候補の本文を返します。リトライは行いません。
func (c *Client) Complete(ctx context.Context, modelID entity.ModelID, prompt string) (string, error) {
	cm, err := c.chatModel(ctx)
	if err != nil {
		return "", err
	}

	messages := []*schema.Message{
		schema.SystemMessage(usecase.SystemInstruction),
		schema.UserMessage(prompt),
	}
	resp, err := cm.Generate(ctx, messages, model.WithModel(string(modelID)))
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp == nil {
		return "", usecase.ErrEmptyCompletion
	}
	return resp.Content, nil
}

// chatModel は生成済みのチャットモデルを返し、未生成なら生成します。
func (c *Client) chatModel(ctx context.Context) (chatModel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cm != nil {
		return c.cm, nil
	}
	if c.cfg.APIKey == "" {
		return nil, usecase.ErrMissingAPIKey
	}
	cm, err := c.newModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create openrouter chat model: %w", err)
	}
	c.cm = cm
	return cm, nil
}

func (c *Client) newChatModel(ctx context.Context) (chatModel, error) {
	maxTokens := c.cfg.MaxTokens
	temperature := c.cfg.Temperature
	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      c.cfg.APIKey,
		BaseURL:     c.cfg.BaseURL,
		Model:       string(entity.DefaultModel),
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
		HTTPClient:  c.httpClient,
	})
}

// headerTransport はOpenRouter固有のヘッダーを付与します。
type headerTransport struct {
	base     http.RoundTripper
	siteURL  string
	siteName string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if t.siteURL != "" {
		req.Header.Set("HTTP-Referer", t.siteURL)
	}
	if t.siteName != "" {
		req.Header.Set("X-Title", t.siteName)
	}
	return t.base.RoundTrip(req)
}

// withHeaders はhttpClientのコピーを返し、そのトランスポートにヘッダー付与を挟みます。
func withHeaders(httpClient *http.Client, siteURL, siteName string) *http.Client {
	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	out := *httpClient
	out.Transport = &headerTransport{base: base, siteURL: siteURL, siteName: siteName}
	return &out
}
