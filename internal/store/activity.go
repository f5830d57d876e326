package store

import (
	"errors"
	"sync"
)

// ==================== 错误定义 ====================

var (
	ErrActivityNotFound = errors.New("活动不存在")
	ErrAlreadySignedUp  = errors.New("已报名该活动")
	ErrNotRegistered    = errors.New("未报名该活动")
)

// ==================== Activity 活动模型 ====================

type Activity struct {
	Description     string   `json:"description"`      // 活动简介
	Schedule        string   `json:"schedule"`         // 活动时间（人类可读文本，不做解析）
	MaxParticipants int      `json:"max_participants"` // 最大参与人数（仅展示，不做硬性限制）
	Participants    []string `json:"participants"`     // 报名邮箱列表，按报名顺序排列
}

// ==================== ActivityStore 活动目录 ====================

// ActivityStore 进程内活动目录，唯一的服务状态。
// 活动集合在启动时固定写入，之后只有报名名单会变化。
// 存在检查和写入在同一把锁内完成，避免并发报名时的竞态。
type ActivityStore struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// NewActivityStore 创建并填充活动目录
func NewActivityStore() *ActivityStore {
	s := &ActivityStore{
		activities: make(map[string]*Activity, len(defaultActivities)),
	}
	s.seed()
	return s
}

// seed 写入固定活动数据集
func (s *ActivityStore) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, act := range defaultActivities {
		copied := *act
		copied.Participants = append([]string(nil), act.Participants...)
		s.activities[name] = &copied
	}
}

// List 返回活动目录的只读快照
// 名单切片为深拷贝，调用方修改快照不影响目录本身；
// 空名单返回空切片而不是 nil，序列化结果始终是数组。
func (s *ActivityStore) List() map[string]Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]Activity, len(s.activities))
	for name, act := range s.activities {
		copied := *act
		copied.Participants = make([]string, len(act.Participants))
		copy(copied.Participants, act.Participants)
		snapshot[name] = copied
	}
	return snapshot
}

// Signup 为指定活动追加一名参与者
// 校验顺序：活动存在 -> 未重复报名。重复报名显式报错而不是静默成功。
// 注意：名额(MaxParticipants)不参与校验，满员后仍可报名。
func (s *ActivityStore) Signup(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	for _, p := range act.Participants {
		if p == email {
			return ErrAlreadySignedUp
		}
	}

	act.Participants = append(act.Participants, email)
	return nil
}

// Unregister 将参与者从指定活动名单中移除
// 校验顺序：活动存在 -> 已在名单中。未报名时显式报错。
func (s *ActivityStore) Unregister(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	for i, p := range act.Participants {
		if p == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			return nil
		}
	}

	return ErrNotRegistered
}

// ParticipantCount 返回指定活动当前报名人数，活动不存在时返回 0
func (s *ActivityStore) ParticipantCount(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if act, ok := s.activities[name]; ok {
		return len(act.Participants)
	}
	return 0
}
