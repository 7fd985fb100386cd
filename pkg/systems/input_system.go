package systems

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/components"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/ecs"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/logging"
)

// DefaultDragDeadZone 按下后移动超过该距离（像素）才开始拖拽
const DefaultDragDeadZone = 4.0

// GestureState 指针手势状态
type GestureState int

const (
	// GestureIdle 无手势
	GestureIdle GestureState = iota
	// GesturePressed 已按下，还在死区内
	GesturePressed
	// GestureDragging 拖拽中
	GestureDragging
)

// InputSystem 把原始指针采样（位置 + 是否按下）识别为拖拽手势
//
// 事件顺序：拖拽开始、若干次移动、（在轮廓上时）放下、拖拽结束。
// 悬停判断使用被拖骨头矩形的中心点。
type InputSystem struct {
	entityManager *ecs.EntityManager
	doc           *layout.Document
	drag          *DragSystem
	placement     *PlacementSystem
	deadZone      float64
	logger        zerolog.Logger

	state          GestureState
	captured       ecs.EntityID
	hover          ecs.EntityID
	startX, startY float64
	lastX, lastY   float64
}

// NewInputSystem 创建输入系统
// deadZone <= 0 时使用 DefaultDragDeadZone
func NewInputSystem(em *ecs.EntityManager, doc *layout.Document, ds *DragSystem, ps *PlacementSystem, deadZone float64) *InputSystem {
	if deadZone <= 0 {
		deadZone = DefaultDragDeadZone
	}
	return &InputSystem{
		entityManager: em,
		doc:           doc,
		drag:          ds,
		placement:     ps,
		deadZone:      deadZone,
		logger:        logging.For("InputSystem"),
	}
}

// HandlePointer 处理一次指针采样
//
// 参数：
//   - x, y: 指针屏幕坐标
//   - pressed: 主按钮（或触摸）是否按下
func (s *InputSystem) HandlePointer(x, y float64, pressed bool) {
	switch {
	case pressed && s.state == GestureIdle:
		s.press(x, y)
	case pressed:
		s.move(x, y)
	case s.state != GestureIdle:
		s.release()
	}
}

// Cancel 放弃当前手势，不触发放下和拖拽结束
// 重置时调用，骨头的状态由重置流程负责恢复
func (s *InputSystem) Cancel() {
	if s.hover != ecs.InvalidEntity {
		s.placement.OnHoverLeave(s.hover)
	}
	s.clear()
}

// State 当前手势状态
func (s *InputSystem) State() GestureState {
	return s.state
}

// Captured 当前手势抓住的骨头，没有时为 ecs.InvalidEntity
func (s *InputSystem) Captured() ecs.EntityID {
	return s.captured
}

// Hovered 拖拽中骨头悬停的轮廓，没有时为 ecs.InvalidEntity
func (s *InputSystem) Hovered() ecs.EntityID {
	return s.hover
}

func (s *InputSystem) press(x, y float64) {
	s.state = GesturePressed
	s.startX, s.startY = x, y
	s.lastX, s.lastY = x, y
	s.captured = s.boneAt(x, y)
}

func (s *InputSystem) move(x, y float64) {
	if s.captured == ecs.InvalidEntity {
		s.lastX, s.lastY = x, y
		return
	}
	if x == s.lastX && y == s.lastY {
		return
	}

	if s.state == GesturePressed {
		if math.Hypot(x-s.startX, y-s.startY) <= s.deadZone {
			s.lastX, s.lastY = x, y
			return
		}
		if !s.drag.OnDragStart(s.captured) {
			s.captured = ecs.InvalidEntity
			s.lastX, s.lastY = x, y
			return
		}
		s.state = GestureDragging
		// 死区内累积的位移一次性补上，骨头始终跟随指针
		s.drag.OnDragMove(s.captured, x-s.startX, y-s.startY)
	} else {
		s.drag.OnDragMove(s.captured, x-s.lastX, y-s.lastY)
	}

	s.lastX, s.lastY = x, y
	s.updateHover()
}

func (s *InputSystem) release() {
	if s.state == GestureDragging {
		bone := s.captured
		s.logger.Debug().Bool("over_outline", s.hover != ecs.InvalidEntity).Msg("gesture released")
		if s.hover != ecs.InvalidEntity {
			s.placement.OnDrop(bone, s.hover)
		}
		s.drag.OnDragEnd(bone)
	}
	s.clear()
}

func (s *InputSystem) clear() {
	s.state = GestureIdle
	s.captured = ecs.InvalidEntity
	s.hover = ecs.InvalidEntity
}

// updateHover 根据骨头中心点所在的轮廓触发进入/离开
func (s *InputSystem) updateHover() {
	next := ecs.InvalidEntity
	bone, ok := ecs.GetComponent[*components.BoneComponent](s.entityManager, s.captured)
	if ok {
		if node, found := s.doc.NodeByID(bone.NodeID); found {
			cx, cy := s.doc.BoundingBox(node).Center()
			if c, hit := s.doc.ContainerAt(cx, cy); hit {
				if id, isOutline := findOutlineByContainer(s.entityManager, c.ID); isOutline {
					next = id
				}
			}
		}
	}

	if next == s.hover {
		return
	}
	if s.hover != ecs.InvalidEntity {
		s.placement.OnHoverLeave(s.hover)
	}
	s.hover = next
	if next != ecs.InvalidEntity {
		s.placement.OnHoverEnter(s.captured, next)
	}
}

// boneAt 返回该点处最上层的骨头
// 已放置的骨头也会被抓住，由拖拽系统拒绝
func (s *InputSystem) boneAt(x, y float64) ecs.EntityID {
	s.doc.Layout()
	node, ok := s.doc.NodeAt(x, y)
	if !ok || node.Kind != layout.KindBone {
		return ecs.InvalidEntity
	}
	id, ok := findBoneByNode(s.entityManager, node.ID)
	if !ok {
		return ecs.InvalidEntity
	}
	return id
}
