package handler

import (
	"errors"
	"net/http"

	"company_analyzer/internal/feature/companyanalysis/usecase"
)

// MissingAPIKeyMessage は認証キー未設定時に利用者へ表示する文言です。
const MissingAPIKeyMessage = "OpenRouter API key not found. Set OPENROUTER_API_KEY in your .env file or the server environment."

// failure は分析エラーを利用者向けに変換した結果です。
type failure struct {
	status  int
	message string
	field   string
	warning bool // 入力不備（警告表示）かどうか
}

// classify は分析エラーをHTTPステータスと表示メッセージに変換します。
//   - *usecase.InputError       → 400（警告）
//   - usecase.ErrMissingAPIKey  → 503（設定エラー）
//   - *usecase.RequestError     → 502
//   - それ以外                   → 500
func classify(err error) failure {
	var inputErr *usecase.InputError
	if errors.As(err, &inputErr) {
		return failure{status: http.StatusBadRequest, message: inputErr.Message, field: inputErr.Field, warning: true}
	}
	if errors.Is(err, usecase.ErrMissingAPIKey) {
		return failure{status: http.StatusServiceUnavailable, message: MissingAPIKeyMessage}
	}
	var reqErr *usecase.RequestError
	if errors.As(err, &reqErr) {
		return failure{status: http.StatusBadGateway, message: "Error analyzing company: " + reqErr.Err.Error()}
	}
	return failure{status: http.StatusInternalServerError, message: "Error analyzing company: internal error"}
}
