package components

import (
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/ecs"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

// OutlineComponent 标识实体为骨骼轮廓（放置目标）
// 每个轮廓只接受一个部位相同的骨头，整个会话内固定不变
type OutlineComponent struct {
	// Part 轮廓对应的骨骼部位
	Part types.Part
	// ContainerID 轮廓槽容器 ID，即 "outline-<part>"
	ContainerID string
	// Occupant 已放入的骨头实体，未放置时为 ecs.InvalidEntity
	Occupant ecs.EntityID
}

// IsOccupied 是否已放入骨头
func (o *OutlineComponent) IsOccupied() bool {
	return o.Occupant != ecs.InvalidEntity
}
