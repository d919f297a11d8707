package router

import (
	"github.com/gin-gonic/gin"

	"company_analyzer/internal/feature/companyanalysis/transport/handler"
	"company_analyzer/internal/feature/companyanalysis/transport/web"
	platformhandler "company_analyzer/internal/platform/http/handler"
	jwtmw "company_analyzer/internal/platform/jwt"
	"company_analyzer/internal/platform/logger"
	"company_analyzer/internal/platform/metrics"
	"company_analyzer/internal/shared/ratelimiter"
)

// Deps は NewRouter に渡すハンドラーとミドルウェアの依存関係です。
type Deps struct {
	Page     *handler.PageHandler
	API      *handler.AnalysisHandler
	Health   *platformhandler.HealthHandler
	Metrics  *metrics.Manager
	Sessions jwtmw.Generator
	Cookie   jwtmw.CookieOptions
	Limiter  *ratelimiter.RateLimiter
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger(), d.Metrics.Middleware())
	r.SetHTMLTemplate(web.Templates())

	// セッション不要
	// 導通確認用
	r.GET("/healthz", d.Health.Health)
	r.HEAD("/healthz", d.Health.Health)
	r.OPTIONS("/healthz", d.Health.Health)
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	// セッション必須のルート
	// Cookieがなければ新しいセッションを発行し、履歴はセッションごとに分離される
	sess := r.Group("/")
	sess.Use(jwtmw.SessionRequired(d.Sessions, d.Cookie))
	{
		// 画面
		sess.GET("/", d.Page.Index)
		sess.POST("/analyze", d.Limiter.Middleware(), d.Page.Analyze)
		sess.POST("/history/clear", d.Page.ClearHistory)

		// JSON API
		v1 := sess.Group("/v1")
		v1.POST("/analyses", d.Limiter.Middleware(), d.API.Analyze)
		v1.GET("/history", d.API.History)
		v1.DELETE("/history", d.API.ClearHistory)
		v1.GET("/models", d.API.Models)
		v1.GET("/assignment-rules", d.API.AssignmentRules)
	}

	return r
}
