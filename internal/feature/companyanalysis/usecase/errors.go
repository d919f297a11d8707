// Package usecase はcompanyanalysisフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"errors"
	"fmt"

	"company_analyzer/internal/feature/companyanalysis/domain/entity"
)

var (
	// ErrMissingAPIKey は補完APIの認証情報が設定されていないことを示します。
	ErrMissingAPIKey = errors.New("OPENROUTER_API_KEY is not configured")

	// ErrEmptyCompletion は補完APIが本文を返さなかったことを示します。
	ErrEmptyCompletion = errors.New("completion returned no choices")
)

// InputError は入力値の不備を表します。外部APIへのリクエストは行われません。
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// RequestError は補完APIの呼び出しに失敗したことを表します。
// 分析は実行されなかったものとして扱い、履歴には追加しません。
type RequestError struct {
	Model entity.ModelID
	Err   error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("analysis request to %s failed: %v", e.Model, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
