package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// 初始数据集
// ==========================

func TestNewActivityStore_Seed(t *testing.T) {
	s := NewActivityStore()
	snapshot := s.List()

	require.Len(t, snapshot, 9)

	wantNames := []string{
		"Tennis Club", "Basketball Team", "Art Club", "Music Ensemble",
		"Debate Team", "Science Club", "Chess Club", "Programming Class", "Gym Class",
	}
	for _, name := range wantNames {
		act, ok := snapshot[name]
		require.True(t, ok, "missing activity %s", name)
		assert.NotEmpty(t, act.Description)
		assert.NotEmpty(t, act.Schedule)
		assert.Greater(t, act.MaxParticipants, 0)
		assert.NotNil(t, act.Participants)
	}

	assert.Equal(t, []string{"alex@mergington.edu"}, snapshot["Tennis Club"].Participants)
	assert.Equal(t, []string{"marcus@mergington.edu", "jordan@mergington.edu"},
		snapshot["Basketball Team"].Participants)
}

func TestNewActivityStore_SeedIsolated(t *testing.T) {
	// 两个实例之间不共享名单
	s1 := NewActivityStore()
	s2 := NewActivityStore()

	require.NoError(t, s1.Signup("Chess Club", "new@mergington.edu"))

	assert.Equal(t, 3, s1.ParticipantCount("Chess Club"))
	assert.Equal(t, 2, s2.ParticipantCount("Chess Club"))
}

// ==========================
// 报名
// ==========================

func TestSignup(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		email    string
		wantErr  error
	}{
		{
			name:     "新参与者报名成功",
			activity: "Chess Club",
			email:    "eve@mergington.edu",
			wantErr:  nil,
		},
		{
			name:     "重复报名被拒绝",
			activity: "Tennis Club",
			email:    "alex@mergington.edu",
			wantErr:  ErrAlreadySignedUp,
		},
		{
			name:     "活动不存在",
			activity: "Swimming Club",
			email:    "eve@mergington.edu",
			wantErr:  ErrActivityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewActivityStore()
			before := s.ParticipantCount(tt.activity)

			err := s.Signup(tt.activity, tt.email)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, s.ParticipantCount(tt.activity), "失败时名单不应变化")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, before+1, s.ParticipantCount(tt.activity))

			participants := s.List()[tt.activity].Participants
			assert.Equal(t, tt.email, participants[len(participants)-1], "新参与者应追加到末尾")
		})
	}
}

// ==========================
// 取消报名
// ==========================

func TestUnregister(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		email    string
		wantErr  error
	}{
		{
			name:     "取消已有报名",
			activity: "Tennis Club",
			email:    "alex@mergington.edu",
			wantErr:  nil,
		},
		{
			name:     "未报名无法取消",
			activity: "Tennis Club",
			email:    "stranger@mergington.edu",
			wantErr:  ErrNotRegistered,
		},
		{
			name:     "活动不存在",
			activity: "Swimming Club",
			email:    "alex@mergington.edu",
			wantErr:  ErrActivityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewActivityStore()
			before := s.ParticipantCount(tt.activity)

			err := s.Unregister(tt.activity, tt.email)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, s.ParticipantCount(tt.activity), "失败时名单不应变化")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, before-1, s.ParticipantCount(tt.activity))
			assert.NotContains(t, s.List()[tt.activity].Participants, tt.email)
		})
	}
}

func TestUnregister_KeepsOrder(t *testing.T) {
	s := NewActivityStore()

	// Basketball Team: [marcus, jordan]，移除 marcus 后 jordan 仍在原相对位置
	require.NoError(t, s.Unregister("Basketball Team", "marcus@mergington.edu"))
	assert.Equal(t, []string{"jordan@mergington.edu"}, s.List()["Basketball Team"].Participants)
}

// ==========================
// 状态机往返
// ==========================

func TestSignupUnregisterRoundTrip(t *testing.T) {
	s := NewActivityStore()
	const email = "alex@mergington.edu"

	// enrolled -> absent -> enrolled
	require.NoError(t, s.Unregister("Tennis Club", email))
	assert.NotContains(t, s.List()["Tennis Club"].Participants, email)

	require.NoError(t, s.Signup("Tennis Club", email))
	assert.Contains(t, s.List()["Tennis Club"].Participants, email)

	// 再次报名必须显式失败，而不是静默成功
	require.ErrorIs(t, s.Signup("Tennis Club", email), ErrAlreadySignedUp)
}

func TestSignup_IndependentActivities(t *testing.T) {
	s := NewActivityStore()
	const email = "busy@mergington.edu"

	require.NoError(t, s.Signup("Tennis Club", email))
	require.NoError(t, s.Signup("Basketball Team", email))

	assert.Contains(t, s.List()["Tennis Club"].Participants, email)
	assert.Contains(t, s.List()["Basketball Team"].Participants, email)
}

func TestSignup_NoCapacityCheck(t *testing.T) {
	// 名额仅作展示，满员后报名仍然成功
	s := NewActivityStore()

	max := s.List()["Chess Club"].MaxParticipants
	for i := 0; i < max+3; i++ {
		email := fmt.Sprintf("player%d@mergington.edu", i)
		require.NoError(t, s.Signup("Chess Club", email))
	}

	assert.Greater(t, s.ParticipantCount("Chess Club"), max)
}

// ==========================
// 快照与并发
// ==========================

func TestList_SnapshotIsolation(t *testing.T) {
	s := NewActivityStore()

	snapshot := s.List()
	act := snapshot["Art Club"]
	act.Participants[0] = "hacked@mergington.edu"

	assert.Equal(t, []string{"isabella@mergington.edu"}, s.List()["Art Club"].Participants,
		"修改快照不应影响目录本身")
}

func TestSignup_Concurrent(t *testing.T) {
	s := NewActivityStore()
	const workers = 64

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = s.Signup("Gym Class", fmt.Sprintf("runner%d@mergington.edu", n))
		}(i)
	}
	wg.Wait()

	// 初始 2 人 + 并发写入 64 人
	assert.Equal(t, 66, s.ParticipantCount("Gym Class"))
}

func TestSignup_ConcurrentDuplicate(t *testing.T) {
	// 同一邮箱并发报名，检查-写入在同一临界区内，恰好一次成功
	s := NewActivityStore()
	const workers = 32

	var wg sync.WaitGroup
	success := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Signup("Debate Team", "contested@mergington.edu"); err == nil {
				success <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(success)

	assert.Len(t, success, 1)

	count := 0
	for _, p := range s.List()["Debate Team"].Participants {
		if p == "contested@mergington.edu" {
			count++
		}
	}
	assert.Equal(t, 1, count, "名单内不应出现重复邮箱")
}
