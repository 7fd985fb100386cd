package systems

import (
	"github.com/rs/zerolog"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/ecs"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/game"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/logging"
)

// DragSystem 处理骨头的拖拽生命周期：开始、移动、结束
type DragSystem struct {
	entityManager *ecs.EntityManager
	doc           *layout.Document
	placeholders  *PlaceholderSystem
	session       *game.SessionState
	timer         *game.GameTimer
	listeners     Listeners
	logger        zerolog.Logger
}

// NewDragSystem 创建拖拽系统
func NewDragSystem(em *ecs.EntityManager, doc *layout.Document, ps *PlaceholderSystem, session *game.SessionState, timer *game.GameTimer, listeners Listeners) *DragSystem {
	return &DragSystem{
		entityManager: em,
		doc:           doc,
		placeholders:  ps,
		session:       session,
		timer:         timer,
		listeners:     listeners,
		logger:        logging.For("DragSystem"),
	}
}

// OnDragStart 开始拖拽
//
// 已放置的骨头拒绝拖拽。本局的第一次拖拽会启动计时器。
// 返回 false 表示手势被拒绝，后续的移动和结束事件都会被忽略。
func (s *DragSystem) OnDragStart(boneID ecs.EntityID) bool {
	bone, drag, ok := boneParts(s.entityManager, boneID)
	if !ok {
		return false
	}
	if bone.IsPlaced() {
		s.logger.Debug().Str("part", bone.Part.Slug()).Msg("rejected drag of placed bone")
		return false
	}
	if drag.Active {
		return false
	}

	drag.Active = true
	drag.OffsetX = 0
	drag.OffsetY = 0
	if _, ok := s.placeholders.BeginLift(boneID); !ok {
		drag.Clear()
		return false
	}

	if !s.session.HasStarted() {
		s.timer.Start()
		s.session.StartTime = s.timer.Epoch()
		s.session.IsGameActive = true
		s.logger.Info().Str("session", s.session.ID.String()).Msg("timer started")
	}

	s.listeners.lifted(bone.Part)
	return true
}

// OnDragMove 累加指针增量并更新骨头的视觉平移
func (s *DragSystem) OnDragMove(boneID ecs.EntityID, dx, dy float64) {
	bone, drag, ok := boneParts(s.entityManager, boneID)
	if !ok || !drag.Active {
		return
	}
	node, ok := s.doc.NodeByID(bone.NodeID)
	if !ok {
		return
	}

	drag.OffsetX += dx
	drag.OffsetY += dy
	node.Style.TranslateX = drag.OffsetX
	node.Style.TranslateY = drag.OffsetY
}

// OnDragEnd 结束拖拽
// 骨头没有被放置时回到占位符位置；已放置时不做任何操作
func (s *DragSystem) OnDragEnd(boneID ecs.EntityID) {
	bone, drag, ok := boneParts(s.entityManager, boneID)
	if !ok || !drag.Active {
		return
	}
	if bone.IsPlaced() {
		drag.Clear()
		return
	}

	if s.placeholders.Revert(boneID) {
		s.listeners.reverted(bone.Part)
	}
	drag.Clear()
}
