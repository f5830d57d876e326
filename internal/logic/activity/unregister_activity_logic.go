// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activity

import (
	"context"
	"errors"
	"fmt"

	"mergington-activities/common/errorx"
	"mergington-activities/internal/metrics"
	"mergington-activities/internal/store"
	"mergington-activities/internal/svc"
	"mergington-activities/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type UnregisterActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 取消报名
func NewUnregisterActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UnregisterActivityLogic {
	return &UnregisterActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UnregisterActivityLogic) Unregister(req *types.UnregisterActivityRequest) (*types.MessageResponse, error) {
	// 1. 参数校验（只做存在性检查）
	if req.Email == "" {
		metrics.RecordUnregister(metrics.ResultInvalidParams)
		return nil, errorx.ErrInvalidParams("email is required")
	}

	// 2. 从名单中移除
	if err := l.svcCtx.Store.Unregister(req.ActivityName, req.Email); err != nil {
		switch {
		case errors.Is(err, store.ErrActivityNotFound):
			metrics.RecordUnregister(metrics.ResultNotFound)
			l.Infof("取消失败，活动不存在: activity=%s, email=%s", req.ActivityName, req.Email)
			return nil, errorx.ErrActivityNotFound()
		case errors.Is(err, store.ErrNotRegistered):
			metrics.RecordUnregister(metrics.ResultNotRegistered)
			l.Infof("取消失败，未报名: activity=%s, email=%s", req.ActivityName, req.Email)
			return nil, errorx.ErrNotRegistered(req.Email, req.ActivityName)
		default:
			metrics.RecordUnregister(metrics.ResultInvalidParams)
			l.Errorf("取消报名失败: activity=%s, email=%s, err=%v", req.ActivityName, req.Email, err)
			return nil, errorx.ErrInternalError()
		}
	}

	// 3. 记录指标并返回确认消息
	metrics.RecordUnregister(metrics.ResultSuccess)
	metrics.SetParticipants(req.ActivityName, l.svcCtx.Store.ParticipantCount(req.ActivityName))
	l.Infof("取消报名成功: activity=%s, email=%s", req.ActivityName, req.Email)

	return &types.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", req.Email, req.ActivityName),
	}, nil
}
