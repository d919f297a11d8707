// Package handler はcompanyanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"company_analyzer/internal/feature/companyanalysis/domain/entity"
	"company_analyzer/internal/feature/companyanalysis/transport/http/dto"
	jwtmw "company_analyzer/internal/platform/jwt"
)

// AnalysisUsecase は企業分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalysisUsecase interface {
	Analyze(ctx context.Context, sessionID string, req entity.AnalysisRequest) (*entity.Analysis, error)
	History(ctx context.Context, sessionID string) ([]entity.HistoryEntry, error)
	ResetHistory(ctx context.Context, sessionID string) error
}

// AnalysisHandler は企業分析のJSON APIリクエストを処理します。
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler はAnalysisHandlerの新しいインスタンスを生成します。
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Analyze は企業を分析し、担当メンバーを割り当てます。
//
// エンドポイント: POST /v1/analyses
// Content-Type: application/json
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("分析リクエストのJSONが不正", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "request body must be a JSON object"})
		return
	}

	analysis, err := h.uc.Analyze(c.Request.Context(), jwtmw.SessionID(c), req.ToEntity())
	if err != nil {
		f := classify(err)
		if f.warning {
			slog.Warn("分析リクエストの入力が不正", "error", err)
		} else {
			slog.Error("企業分析に失敗", "error", err, "company", req.CompanyName)
		}
		c.JSON(f.status, dto.ErrorResponse{Error: f.message, Field: f.field})
		return
	}

	c.JSON(http.StatusOK, dto.FromAnalysis(analysis))
}

// History はセッションの直近の分析履歴を新しい順で返します。
//
// エンドポイント: GET /v1/history
func (h *AnalysisHandler) History(c *gin.Context) {
	entries, err := h.uc.History(c.Request.Context(), jwtmw.SessionID(c))
	if err != nil {
		slog.Error("履歴の取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, dto.FromHistory(entries))
}

// ClearHistory はセッションの分析履歴を破棄します。
//
// エンドポイント: DELETE /v1/history
func (h *AnalysisHandler) ClearHistory(c *gin.Context) {
	if err := h.uc.ResetHistory(c.Request.Context(), jwtmw.SessionID(c)); err != nil {
		slog.Error("履歴の削除に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to clear history"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Models は選択可能なモデルの一覧を返します。
//
// エンドポイント: GET /v1/models
func (h *AnalysisHandler) Models(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewModelsResponse())
}

// AssignmentRules は表示用の割り当てルールを返します。
//
// エンドポイント: GET /v1/assignment-rules
func (h *AnalysisHandler) AssignmentRules(c *gin.Context) {
	c.JSON(http.StatusOK, dto.AssignmentRulesResponse{Rules: entity.AssignmentTable})
}
