package components

import (
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

// BoneComponent 标识实体为可拖动的骨头
//
// 骨头的页面元素由 NodeID 指向 layout.Document 中的节点，
// 节点 ID 即 "bone-<part>"。
type BoneComponent struct {
	// Part 骨骼部位
	Part types.Part
	// Status 放置状态，Placed 后拒绝新的拖拽手势
	Status types.PlacementStatus
	// CanonicalIndex 在骨头托盘中的规范顺序（0-5），重置时按此排序
	CanonicalIndex int
	// NodeID 页面节点 ID
	NodeID string
}

// IsPlaced 是否已放置
func (b *BoneComponent) IsPlaced() bool {
	return b.Status == types.Placed
}
