// ============================================================================
// 健康检查与首页跳转
// ============================================================================

package handler

import (
	"net/http"
	"runtime"
	"time"

	"mergington-activities/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

var startTime = time.Now()

// HealthHandler 健康检查接口
// GET /health
func HealthHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.OkJsonCtx(r.Context(), w, map[string]interface{}{
			"status":     "healthy",
			"timestamp":  time.Now().Format(time.RFC3339),
			"uptime":     time.Since(startTime).String(),
			"go_version": runtime.Version(),
		})
	}
}

// IndexHandler 首页跳转
// GET / -> 静态报名页面
func IndexHandler(ctx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	}
}
