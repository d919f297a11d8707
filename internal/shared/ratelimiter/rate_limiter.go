// Package ratelimiter は分析リクエストの頻度を制限します。
package ratelimiter

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	Allow() bool
	Wait(ctx context.Context) error
}

// RateLimiter はトークンバケットで1分あたりの実行回数を制限します。
// rpmが0以下の場合は制限しません。
type RateLimiter struct {
	rpm     int
	limiter *rate.Limiter
}

var _ RateLimiterInterface = (*RateLimiter)(nil)

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// バーストはrpmの10分の1（最低1）です。
func NewRateLimiter(rpm int) *RateLimiter {
	if rpm <= 0 {
		return &RateLimiter{}
	}
	burst := rpm / 10
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		rpm:     rpm,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst),
	}
}

// Enabled は制限が有効かを返します。
func (rl *RateLimiter) Enabled() bool {
	return rl.limiter != nil
}

// Allow は今すぐ実行してよいかを返します。
func (rl *RateLimiter) Allow() bool {
	if rl.limiter == nil {
		return true
	}
	return rl.limiter.Allow()
}

// Wait は実行可能になるまで待機します。ctxがキャンセルされた場合はエラーを返します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl.limiter == nil {
		return nil
	}
	return rl.limiter.Wait(ctx)
}

// retryAfterSeconds はトークン1つが補充されるまでの秒数（切り上げ）です。
func (rl *RateLimiter) retryAfterSeconds() int {
	return int(math.Ceil(60.0 / float64(rl.rpm)))
}

// Middleware は上限を超えたリクエストを429で拒否するginミドルウェアを返します。
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.Allow() {
			c.Next()
			return
		}

		slog.Warn("rate limit exceeded", "rpm", rl.rpm, "path", c.Request.URL.Path)
		c.Header("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many analysis requests, please retry later"})
	}
}
