// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activity

import (
	"context"

	"mergington-activities/internal/svc"
	"mergington-activities/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListActivitiesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 活动列表
func NewListActivitiesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListActivitiesLogic {
	return &ListActivitiesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ListActivities 返回全部活动及报名名单
// 不做筛选、不做分页，整个目录一次性返回。
func (l *ListActivitiesLogic) ListActivities() (map[string]types.ActivityInfo, error) {
	snapshot := l.svcCtx.Store.List()

	resp := make(map[string]types.ActivityInfo, len(snapshot))
	for name, act := range snapshot {
		resp[name] = types.ActivityInfo{
			Description:     act.Description,
			Schedule:        act.Schedule,
			MaxParticipants: act.MaxParticipants,
			Participants:    act.Participants,
		}
	}

	return resp, nil
}
