// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

// ==================== 活动相关类型 ====================

// ActivityInfo 单个活动的对外视图
// GET /activities 返回 map[活动名]ActivityInfo，四个字段缺一不可。
type ActivityInfo struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SignupActivityRequest 报名活动请求
// 活动名取自路径段（路由层已完成 URL 解码，活动名可含空格），邮箱取自查询参数。
type SignupActivityRequest struct {
	ActivityName string `path:"name"`
	Email        string `form:"email,optional"`
}

// UnregisterActivityRequest 取消报名请求
type UnregisterActivityRequest struct {
	ActivityName string `path:"name"`
	Email        string `form:"email,optional"`
}

// MessageResponse 操作确认响应
type MessageResponse struct {
	Message string `json:"message"`
}
