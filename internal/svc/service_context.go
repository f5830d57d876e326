// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"mergington-activities/internal/config"
	"mergington-activities/internal/metrics"
	"mergington-activities/internal/middleware"
	"mergington-activities/internal/store"

	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	// Store 活动目录，进程内唯一实例，显式构造后注入各 logic
	Store *store.ActivityStore

	Cors      rest.Middleware
	RequestID rest.Middleware
}

func NewServiceContext(c config.Config) *ServiceContext {
	s := store.NewActivityStore()

	// 启动时上报各活动初始报名人数
	for name, act := range s.List() {
		metrics.SetParticipants(name, len(act.Participants))
	}

	return &ServiceContext{
		Config: c,
		Store:  s,
		Cors: middleware.NewCorsMiddleware(
			c.Cors.AllowOrigins,
			c.Cors.AllowMethods,
			c.Cors.AllowHeaders,
		).Handle,
		RequestID: middleware.NewRequestIDMiddleware().Handle,
	}
}
