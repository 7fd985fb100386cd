package systems

import (
	"fmt"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/ecs"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
)

// OverlayZIndex 被拿起的骨头所在覆盖层的层级
const OverlayZIndex = 1000

// PlaceholderSystem 管理骨头拿起时留下的占位符
//
// 每次拿起（BeginLift）之后恰好跟随一次 Revert 或 Consume：
// 放置失败时骨头回到占位符的位置，放置成功时占位符被删除。
type PlaceholderSystem struct {
	entityManager *ecs.EntityManager
	doc           *layout.Document
	seq           int
}

// NewPlaceholderSystem 创建占位符系统
func NewPlaceholderSystem(em *ecs.EntityManager, doc *layout.Document) *PlaceholderSystem {
	return &PlaceholderSystem{
		entityManager: em,
		doc:           doc,
	}
}

// BeginLift 在骨头原位置插入占位符，并把骨头提升到覆盖层
//
// 占位符复制骨头拿起前的尺寸、外边距、display 和 flex，托盘中其他骨头不会移动。
// 骨头改为以拿起前的屏幕矩形为锚点的覆盖层样式，外边距清零。
// 返回占位符节点，骨头不在页面中时返回 false。
func (s *PlaceholderSystem) BeginLift(boneID ecs.EntityID) (*layout.Node, bool) {
	bone, drag, ok := boneParts(s.entityManager, boneID)
	if !ok {
		return nil, false
	}
	node, ok := s.doc.NodeByID(bone.NodeID)
	if !ok {
		return nil, false
	}

	// 残留的占位符直接丢弃，保证每块骨头至多一个
	if stale, found := s.doc.NodeByID(drag.PlaceholderID); found {
		s.doc.Discard(stale)
	}

	rect := s.doc.BoundingBox(node)
	cs := node.Computed()

	s.seq++
	placeholder := s.doc.CreateNode(fmt.Sprintf("placeholder-%d", s.seq), layout.KindPlaceholder, layout.Intrinsic{})
	placeholder.Style = layout.Style{
		Width:   rect.W,
		Height:  rect.H,
		Margin:  layout.Px(cs.Margin),
		Display: cs.Display,
		Flex:    cs.Flex,
	}
	node.Parent().InsertBefore(placeholder, node)

	node.Style = layout.Style{
		Position: layout.PositionOverlay,
		Left:     rect.X,
		Top:      rect.Y,
		Width:    rect.W,
		Height:   rect.H,
		Margin:   layout.Px(0),
		ZIndex:   OverlayZIndex,
	}

	drag.PlaceholderID = placeholder.ID
	return placeholder, true
}

// Revert 骨头回到占位符所在位置，清除覆盖层样式和拖拽偏移
// 占位符已不在页面中时不做任何操作并返回 false
func (s *PlaceholderSystem) Revert(boneID ecs.EntityID) bool {
	bone, drag, ok := boneParts(s.entityManager, boneID)
	if !ok {
		return false
	}
	placeholder, ok := s.doc.NodeByID(drag.PlaceholderID)
	if !ok {
		return false
	}
	node, ok := s.doc.NodeByID(bone.NodeID)
	if !ok {
		return false
	}

	placeholder.Parent().Replace(node, placeholder)
	s.doc.Discard(placeholder)
	node.ClearStyle()
	drag.Clear()
	return true
}

// Consume 放置成功后删除占位符
func (s *PlaceholderSystem) Consume(boneID ecs.EntityID) bool {
	_, drag, ok := boneParts(s.entityManager, boneID)
	if !ok {
		return false
	}
	placeholder, found := s.doc.NodeByID(drag.PlaceholderID)
	drag.PlaceholderID = ""
	if !found {
		return false
	}
	s.doc.Discard(placeholder)
	return true
}

// Discard 重置时无条件删除骨头的占位符（不移动骨头）
func (s *PlaceholderSystem) Discard(boneID ecs.EntityID) {
	s.Consume(boneID)
}

