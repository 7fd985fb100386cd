package systems

import (
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/components"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/ecs"
)

// findBoneByNode 按页面节点 ID 查找骨头实体
func findBoneByNode(em *ecs.EntityManager, nodeID string) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.BoneComponent](em) {
		bone, _ := ecs.GetComponent[*components.BoneComponent](em, id)
		if bone.NodeID == nodeID {
			return id, true
		}
	}
	return ecs.InvalidEntity, false
}

// findOutlineByContainer 按容器 ID 查找轮廓实体
func findOutlineByContainer(em *ecs.EntityManager, containerID string) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.OutlineComponent](em) {
		outline, _ := ecs.GetComponent[*components.OutlineComponent](em, id)
		if outline.ContainerID == containerID {
			return id, true
		}
	}
	return ecs.InvalidEntity, false
}

// boneParts 取骨头及其拖拽组件，任一缺失返回 false
func boneParts(em *ecs.EntityManager, id ecs.EntityID) (*components.BoneComponent, *components.DragComponent, bool) {
	bone, ok := ecs.GetComponent[*components.BoneComponent](em, id)
	if !ok {
		return nil, nil, false
	}
	drag, ok := ecs.GetComponent[*components.DragComponent](em, id)
	if !ok {
		return nil, nil, false
	}
	return bone, drag, true
}
