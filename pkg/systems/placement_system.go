package systems

import (
	"github.com/rs/zerolog"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/components"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/ecs"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/logging"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

// PlacementObserver 接收成功放置通知（胜利检测）
type PlacementObserver interface {
	OnPlacement()
}

// PlacementSystem 处理轮廓上的悬停高亮与放下提交
type PlacementSystem struct {
	entityManager *ecs.EntityManager
	doc           *layout.Document
	placeholders  *PlaceholderSystem
	observer      PlacementObserver
	listeners     Listeners
	logger        zerolog.Logger
}

// NewPlacementSystem 创建放置系统
// observer 可为 nil，之后通过 SetObserver 设置
func NewPlacementSystem(em *ecs.EntityManager, doc *layout.Document, ps *PlaceholderSystem, observer PlacementObserver, listeners Listeners) *PlacementSystem {
	return &PlacementSystem{
		entityManager: em,
		doc:           doc,
		placeholders:  ps,
		observer:      observer,
		listeners:     listeners,
		logger:        logging.For("PlacementSystem"),
	}
}

// SetObserver 设置放置通知接收者
func (s *PlacementSystem) SetObserver(observer PlacementObserver) {
	s.observer = observer
}

// Place 把骨头放进轮廓
//
// 前置条件：骨头与轮廓匹配且骨头未放置。
// 占位符被删除，骨头成为轮廓容器的子节点并填满容器，状态变为 Placed，
// 然后通知胜利检测。返回是否真正放置。
func (s *PlacementSystem) Place(boneID, outlineID ecs.EntityID) bool {
	bone, drag, ok := boneParts(s.entityManager, boneID)
	if !ok {
		return false
	}
	outline, ok := ecs.GetComponent[*components.OutlineComponent](s.entityManager, outlineID)
	if !ok {
		return false
	}
	if bone.IsPlaced() || !IsMatch(bone.NodeID, outline.ContainerID) {
		return false
	}
	node, ok := s.doc.NodeByID(bone.NodeID)
	if !ok {
		return false
	}
	container, ok := s.doc.Container(outline.ContainerID)
	if !ok {
		return false
	}

	s.placeholders.Consume(boneID)
	container.Append(node)
	node.Style = layout.Style{
		Position: layout.PositionFill,
		Margin:   layout.Px(0),
	}
	bone.Status = types.Placed
	drag.Clear()
	outline.Occupant = boneID
	s.setHighlight(outlineID, false)

	s.logger.Info().Str("part", bone.Part.Slug()).Msg("bone placed")
	s.listeners.placed(bone.Part, s.placedCount())
	if s.observer != nil {
		s.observer.OnPlacement()
	}
	return true
}

// OnHoverEnter 拖拽中的骨头进入轮廓
// 只有匹配时才高亮
func (s *PlacementSystem) OnHoverEnter(boneID, outlineID ecs.EntityID) {
	bone, ok := ecs.GetComponent[*components.BoneComponent](s.entityManager, boneID)
	if !ok {
		return
	}
	outline, ok := ecs.GetComponent[*components.OutlineComponent](s.entityManager, outlineID)
	if !ok {
		return
	}
	if IsMatch(bone.NodeID, outline.ContainerID) {
		s.setHighlight(outlineID, true)
	}
}

// OnHoverLeave 骨头离开轮廓，无论是否匹配都取消高亮
func (s *PlacementSystem) OnHoverLeave(outlineID ecs.EntityID) {
	s.setHighlight(outlineID, false)
}

// OnDrop 骨头在轮廓上放下
// 匹配时放置；不匹配时只取消高亮，随后的拖拽结束会让骨头回到原位
func (s *PlacementSystem) OnDrop(boneID, outlineID ecs.EntityID) bool {
	bone, ok := ecs.GetComponent[*components.BoneComponent](s.entityManager, boneID)
	if !ok {
		return false
	}
	outline, ok := ecs.GetComponent[*components.OutlineComponent](s.entityManager, outlineID)
	if !ok {
		return false
	}

	s.setHighlight(outlineID, false)
	if !IsMatch(bone.NodeID, outline.ContainerID) {
		s.logger.Debug().
			Str("bone", bone.Part.Slug()).
			Str("outline", outline.Part.Slug()).
			Msg("mismatched drop")
		s.listeners.mismatch(bone.Part, outline.Part)
		return false
	}
	return s.Place(boneID, outlineID)
}

// IsHighlighted 轮廓当前是否高亮
func (s *PlacementSystem) IsHighlighted(outlineID ecs.EntityID) bool {
	hl, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, outlineID)
	return ok && hl.IsActive
}

func (s *PlacementSystem) setHighlight(outlineID ecs.EntityID, active bool) {
	hl, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, outlineID)
	if !ok {
		return
	}
	hl.IsActive = active
	if active {
		hl.Intensity = 1.0
	} else {
		hl.Intensity = 0
	}
}

func (s *PlacementSystem) placedCount() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.BoneComponent](s.entityManager) {
		bone, _ := ecs.GetComponent[*components.BoneComponent](s.entityManager, id)
		if bone.IsPlaced() {
			count++
		}
	}
	return count
}
