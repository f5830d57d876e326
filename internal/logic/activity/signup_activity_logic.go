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

type SignupActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 报名活动
func NewSignupActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SignupActivityLogic {
	return &SignupActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SignupActivityLogic) Signup(req *types.SignupActivityRequest) (*types.MessageResponse, error) {
	// 1. 参数校验（只做存在性检查）
	if req.Email == "" {
		metrics.RecordSignup(metrics.ResultInvalidParams)
		return nil, errorx.ErrInvalidParams("email is required")
	}

	// 2. 写入活动目录
	if err := l.svcCtx.Store.Signup(req.ActivityName, req.Email); err != nil {
		switch {
		case errors.Is(err, store.ErrActivityNotFound):
			metrics.RecordSignup(metrics.ResultNotFound)
			l.Infof("报名失败，活动不存在: activity=%s, email=%s", req.ActivityName, req.Email)
			return nil, errorx.ErrActivityNotFound()
		case errors.Is(err, store.ErrAlreadySignedUp):
			metrics.RecordSignup(metrics.ResultDuplicate)
			l.Infof("重复报名: activity=%s, email=%s", req.ActivityName, req.Email)
			return nil, errorx.ErrAlreadySignedUp(req.Email, req.ActivityName)
		default:
			metrics.RecordSignup(metrics.ResultInvalidParams)
			l.Errorf("报名写入失败: activity=%s, email=%s, err=%v", req.ActivityName, req.Email, err)
			return nil, errorx.ErrInternalError()
		}
	}

	// 3. 记录指标并返回确认消息
	metrics.RecordSignup(metrics.ResultSuccess)
	metrics.SetParticipants(req.ActivityName, l.svcCtx.Store.ParticipantCount(req.ActivityName))
	l.Infof("报名成功: activity=%s, email=%s", req.ActivityName, req.Email)

	return &types.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", req.Email, req.ActivityName),
	}, nil
}
