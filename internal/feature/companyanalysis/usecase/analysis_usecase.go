package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"company_analyzer/internal/feature/companyanalysis/domain/entity"
)

const (
	// MaxCompanyNameLength は企業名の最大文字数（rune数）です。
	MaxCompanyNameLength = 200
	// MaxDescriptionLength は説明の最大文字数（rune数）です。
	MaxDescriptionLength = 4000
	// DefaultHistoryLimit は表示する履歴の件数です。
	DefaultHistoryLimit = 10
)

// 分析結果の種別。メトリクスのラベルに使います。
const (
	OutcomeSuccess      = "success"
	OutcomeRecovered    = "recovered"
	OutcomeInputError   = "input_error"
	OutcomeRequestError = "request_error"
)

// CompletionClient は補完APIを呼び出すリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CompletionClient interface {
	// Complete はプロンプトを指定モデルに送り、最初の候補の本文を返します。
	Complete(ctx context.Context, model entity.ModelID, prompt string) (string, error)
}

// HistoryRepository はセッションごとの分析履歴を保持します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type HistoryRepository interface {
	// Load はセッションの履歴を返します。存在しなければ空の履歴を返します。
	Load(ctx context.Context, sessionID string) (*entity.History, error)
	// Save はセッションの履歴を保存します。
	Save(ctx context.Context, sessionID string, h *entity.History) error
	// Delete はセッションの履歴を破棄します。
	Delete(ctx context.Context, sessionID string) error
}

// Observer は分析結果を計測します。
type Observer interface {
	ObserveAnalysis(outcome, assignedTo string, elapsed time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveAnalysis(string, string, time.Duration) {}

// analysisUsecase は企業分析のビジネスロジックを提供します。
type analysisUsecase struct {
	client       CompletionClient
	history      HistoryRepository
	observer     Observer
	historyLimit int
}

// NewAnalysisUsecase はanalysisUsecaseの新しいインスタンスを生成します。
// observerがnilなら計測は行いません。historyLimitが0以下ならDefaultHistoryLimitを使います。
func NewAnalysisUsecase(client CompletionClient, history HistoryRepository, observer Observer, historyLimit int) *analysisUsecase {
	if observer == nil {
		observer = noopObserver{}
	}
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &analysisUsecase{
		client:       client,
		history:      history,
		observer:     observer,
		historyLimit: historyLimit,
	}
}

// Analyze は企業を分析し、担当メンバーを割り当て、セッションの履歴に追加します。
//
// 入力に不備があれば*InputError、補完APIの呼び出しに失敗すれば*RequestErrorを返します。
// モデル出力が読めない場合はエラーにせず、フォールバック結果を履歴に追加して返します。
func (u *analysisUsecase) Analyze(ctx context.Context, sessionID string, req entity.AnalysisRequest) (*entity.Analysis, error) {
	start := time.Now()

	req, err := normalize(req)
	if err != nil {
		u.observer.ObserveAnalysis(OutcomeInputError, "", time.Since(start))
		return nil, err
	}

	prompt := BuildPrompt(req.CompanyName, req.CompanyDescription)
	raw, err := u.client.Complete(ctx, req.Model, prompt)
	if err != nil {
		u.observer.ObserveAnalysis(OutcomeRequestError, "", time.Since(start))
		return nil, &RequestError{Model: req.Model, Err: err}
	}

	result, recovered := ExtractResult(raw, req.CompanyName)
	analysis := &entity.Analysis{
		Result:     result,
		AssignedTo: ResolveTeam(result.Sectors()),
		Recovered:  recovered,
	}
	if recovered {
		slog.Warn("model output was not valid JSON; using fallback result",
			"company", req.CompanyName, "model", req.Model, "raw_length", len(raw))
	}

	u.record(ctx, sessionID, analysis)

	outcome := OutcomeSuccess
	if recovered {
		outcome = OutcomeRecovered
	}
	u.observer.ObserveAnalysis(outcome, analysis.AssignedTo, time.Since(start))
	return analysis, nil
}

// History はセッションの直近の履歴を新しい順で返します。
func (u *analysisUsecase) History(ctx context.Context, sessionID string) ([]entity.HistoryEntry, error) {
	h, err := u.history.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load history for session %q: %w", sessionID, err)
	}
	return h.Recent(u.historyLimit), nil
}

// ResetHistory はセッションの履歴を破棄します。
func (u *analysisUsecase) ResetHistory(ctx context.Context, sessionID string) error {
	if err := u.history.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete history for session %q: %w", sessionID, err)
	}
	return nil
}

// record は分析結果を履歴に追加します。失敗してもログに残すだけで分析は成功扱いにします。
func (u *analysisUsecase) record(ctx context.Context, sessionID string, a *entity.Analysis) {
	if sessionID == "" {
		slog.Warn("no session bound to request; skipping history", "company", a.Result.CompanyName)
		return
	}
	h, err := u.history.Load(ctx, sessionID)
	if err != nil {
		slog.Error("failed to load history", "error", err, "session", sessionID)
		return
	}
	if !h.Add(entity.NewHistoryEntry(a)) {
		return
	}
	if err := u.history.Save(ctx, sessionID, h); err != nil {
		slog.Error("failed to save history", "error", err, "session", sessionID)
	}
}

// normalize は入力値を検証し、前後の空白除去とデフォルト値の補完を行います。
func normalize(req entity.AnalysisRequest) (entity.AnalysisRequest, error) {
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.CompanyDescription = strings.TrimSpace(req.CompanyDescription)

	if req.CompanyName == "" {
		return req, &InputError{Field: "company_name", Message: "Please enter a company name"}
	}
	if utf8.RuneCountInString(req.CompanyName) > MaxCompanyNameLength {
		return req, &InputError{
			Field:   "company_name",
			Message: fmt.Sprintf("company name exceeds maximum length of %d characters", MaxCompanyNameLength),
		}
	}
	if utf8.RuneCountInString(req.CompanyDescription) > MaxDescriptionLength {
		return req, &InputError{
			Field:   "company_description",
			Message: fmt.Sprintf("description exceeds maximum length of %d characters", MaxDescriptionLength),
		}
	}
	if req.Model == "" {
		req.Model = entity.DefaultModel
	}
	if !req.Model.Valid() {
		return req, &InputError{Field: "model", Message: fmt.Sprintf("unsupported model %q", req.Model)}
	}
	return req, nil
}
