package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ==================== 报名指标收集器 ====================
//
// 用途：监控报名/取消报名接口的成功率和各活动名单规模
// 对接：go-zero 自带的 Prometheus Agent（etc 配置中的 Prometheus 段）
//
// 指标使用包级单例，进程内只注册一次，测试中重复构造 ServiceContext 不会重复注册。

const namespace = "activity"

var (
	// signupTotal 报名请求计数，按结果分类
	signupTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signup_total",
			Help:      "Total number of signup requests by result",
		},
		[]string{"result"},
	)

	// unregisterTotal 取消报名请求计数，按结果分类
	unregisterTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unregister_total",
			Help:      "Total number of unregister requests by result",
		},
		[]string{"result"},
	)

	// participants 各活动当前报名人数
	participants = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "participants",
			Help:      "Current number of participants per activity",
		},
		[]string{"activity"},
	)
)

// 结果标签取值
const (
	ResultSuccess       = "success"
	ResultNotFound      = "not_found"
	ResultDuplicate     = "duplicate"
	ResultNotRegistered = "not_registered"
	ResultInvalidParams = "invalid_params"
)

// RecordSignup 记录一次报名请求
func RecordSignup(result string) {
	signupTotal.WithLabelValues(result).Inc()
}

// RecordUnregister 记录一次取消报名请求
func RecordUnregister(result string) {
	unregisterTotal.WithLabelValues(result).Inc()
}

// SetParticipants 更新活动当前报名人数
func SetParticipants(activity string, count int) {
	participants.WithLabelValues(activity).Set(float64(count))
}
