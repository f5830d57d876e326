package errorx

// 错误码规范：
// 0       - 成功
// 1xxx    - 通用错误
// 3xxx    - 活动服务错误

const (
	CodeSuccess       = 0    // 成功
	CodeInternalError = 1000 // 内部服务器错误
	CodeInvalidParams = 1001 // 参数校验失败
	CodeNotFound      = 1004 // 资源不存在

	// 活动服务 3001-3010
	CodeActivityNotFound = 3001 // 活动不存在
	CodeAlreadySignedUp  = 3002 // 重复报名
	CodeNotRegistered    = 3003 // 未报名，无法取消
)

// codeMessages 错误码对应的默认消息
// 对外展示的消息统一使用英文，3xxx 的文案属于接口契约，不可随意改动。
var codeMessages = map[int]string{
	CodeSuccess:          "success",
	CodeInternalError:    "Internal server error",
	CodeInvalidParams:    "Invalid parameters",
	CodeNotFound:         "Resource not found",
	CodeActivityNotFound: "Activity not found",
	CodeAlreadySignedUp:  "Already signed up",
	CodeNotRegistered:    "Not registered",
}

// GetMessage 根据错误码获取默认消息
func GetMessage(code int) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return "Unknown error"
}

// IsValidCode 判断是否为有效的业务错误码
func IsValidCode(code int) bool {
	_, exists := codeMessages[code]
	return exists
}
