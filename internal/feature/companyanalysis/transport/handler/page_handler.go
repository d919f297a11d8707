package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"company_analyzer/internal/feature/companyanalysis/domain/entity"
	"company_analyzer/internal/feature/companyanalysis/transport/http/dto"
	"company_analyzer/internal/feature/companyanalysis/transport/web"
	jwtmw "company_analyzer/internal/platform/jwt"
)

// PageHandler は分析画面（HTML）のリクエストを処理します。
// テンプレートはrouterでweb.Templates()を登録しておく必要があります。
type PageHandler struct {
	uc AnalysisUsecase
}

// NewPageHandler はPageHandlerの新しいインスタンスを生成します。
func NewPageHandler(uc AnalysisUsecase) *PageHandler {
	return &PageHandler{uc: uc}
}

// pageView はindex.htmlに渡す表示データです。
type pageView struct {
	Models             []string
	SelectedModel      string
	CompanyName        string
	CompanyDescription string
	Rules              []entity.AssignmentRule
	Result             *dto.AnalysisResponse
	Warning            string
	Error              string
	History            []dto.HistoryEntryResponse
}

func newPageView() pageView {
	return pageView{
		Models:        dto.NewModelsResponse().Models,
		SelectedModel: string(entity.DefaultModel),
		Rules:         entity.AssignmentTable,
	}
}

// Index は入力フォームと履歴を表示します。
//
// エンドポイント: GET /
func (h *PageHandler) Index(c *gin.Context) {
	view := newPageView()
	h.render(c, http.StatusOK, view)
}

// Analyze はフォーム送信を受けて分析し、結果を同じ画面に表示します。
//
// エンドポイント: POST /analyze
// Content-Type: application/x-www-form-urlencoded
func (h *PageHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	view := newPageView()
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("フォームの解析に失敗", "error", err, "remote_addr", c.ClientIP())
		view.Error = "Could not read the submitted form"
		h.render(c, http.StatusBadRequest, view)
		return
	}

	view.CompanyName = req.CompanyName
	view.CompanyDescription = req.CompanyDescription
	if req.Model != "" {
		view.SelectedModel = req.Model
	}

	analysis, err := h.uc.Analyze(c.Request.Context(), jwtmw.SessionID(c), req.ToEntity())
	if err != nil {
		f := classify(err)
		if f.warning {
			view.Warning = f.message
		} else {
			slog.Error("企業分析に失敗", "error", err, "company", req.CompanyName)
			view.Error = f.message
		}
		h.render(c, f.status, view)
		return
	}

	res := dto.FromAnalysis(analysis)
	view.Result = &res
	h.render(c, http.StatusOK, view)
}

// ClearHistory はセッションの履歴を破棄してトップへリダイレクトします。
//
// エンドポイント: POST /history/clear
func (h *PageHandler) ClearHistory(c *gin.Context) {
	if err := h.uc.ResetHistory(c.Request.Context(), jwtmw.SessionID(c)); err != nil {
		slog.Error("履歴の削除に失敗", "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// render は履歴を読み込んでからテンプレートを描画します。履歴の取得に失敗しても画面は表示します。
func (h *PageHandler) render(c *gin.Context, status int, view pageView) {
	entries, err := h.uc.History(c.Request.Context(), jwtmw.SessionID(c))
	if err != nil {
		slog.Error("履歴の取得に失敗", "error", err)
	}
	view.History = dto.FromHistory(entries).Entries
	c.HTML(status, web.IndexTemplate, view)
}
