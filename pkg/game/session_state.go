package game

import (
	"time"

	"github.com/google/uuid"
)

// SessionState 一局拼图的会话状态
//
// 由胜利/重置控制器持有，并注入到拖拽、放置等系统中。
// 不变式：
//   - IsGameActive 为 true 当且仅当计时器在运行
//   - SuccessfulDrops 只增不减（重置除外），达到阈值后本局结束
type SessionState struct {
	// ID 本局标识，每次重置重新生成
	ID uuid.UUID

	// SuccessfulDrops 成功放置次数（0 - 6）
	SuccessfulDrops int

	// IsGameActive 计时器是否在运行
	IsGameActive bool

	// StartTime 第一次拖拽的时刻，未开始时为零值
	StartTime time.Time

	// Won 是否已经胜利
	Won bool
}

// NewSessionState 创建新会话
func NewSessionState() *SessionState {
	return &SessionState{ID: uuid.New()}
}

// HasStarted 本局是否已经开始（发生过拖拽）
func (s *SessionState) HasStarted() bool {
	return !s.StartTime.IsZero()
}

// Reset 回到初始状态并换一个新的会话 ID
func (s *SessionState) Reset() {
	*s = SessionState{ID: uuid.New()}
}
