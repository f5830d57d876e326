// ============================================================================
// 路由注册
// ============================================================================
//
// 接口契约（路径和响应格式与原有客户端逐字兼容）：
//   - GET    /activities                    活动列表
//   - POST   /activities/:name/signup       报名（email 查询参数）
//   - DELETE /activities/:name/unregister   取消报名（email 查询参数）
//
// 非契约路由：
//   - GET /health   健康检查
//   - GET /         跳转到静态页面
//
// 中间件执行顺序：
//   CORS -> RequestID -> Handler
//
// ============================================================================

package handler

import (
	"net/http"

	"mergington-activities/internal/handler/activity"
	"mergington-activities/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

// RegisterHandlers 注册所有路由
func RegisterHandlers(server *rest.Server, ctx *svc.ServiceContext) {
	// ==================== 全局中间件 ====================
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.Cors(next)
	})
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.RequestID(next)
	})

	// ==================== 活动模块路由 ====================
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/activities",
				Handler: activity.ListActivitiesHandler(ctx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/activities/:name/signup",
				Handler: activity.SignupActivityHandler(ctx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/activities/:name/unregister",
				Handler: activity.UnregisterActivityHandler(ctx),
			},
		},
	)

	// ==================== 公开路由 ====================
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/health",
				Handler: HealthHandler(ctx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: IndexHandler(ctx),
			},
		},
	)
}
