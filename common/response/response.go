package response

import (
	"context"
	"net/http"

	"mergington-activities/common/errorx"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// ErrorBody 失败响应结构
// 形如 {"detail": "Activity not found"}，字段名属于接口契约。
type ErrorBody struct {
	Detail string `json:"detail"`
}

// SetupGlobalErrorHandler 设置全局错误处理器
// 必须在 server.Start() 之前调用。
// handler/logic 层只管返回 error，HTTP 状态码和响应体在这里统一转换。
func SetupGlobalErrorHandler() {
	httpx.SetErrorHandlerCtx(func(ctx context.Context, err error) (int, any) {
		bizErr := errorx.FromError(err)
		return getHttpStatus(bizErr.Code), ErrorBody{Detail: bizErr.Message}
	})
}

// getHttpStatus 根据业务错误码映射 HTTP 状态码
func getHttpStatus(code int) int {
	switch code {
	case errorx.CodeSuccess:
		return http.StatusOK
	case errorx.CodeActivityNotFound, errorx.CodeNotFound:
		return http.StatusNotFound
	case errorx.CodeAlreadySignedUp, errorx.CodeNotRegistered, errorx.CodeInvalidParams:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
