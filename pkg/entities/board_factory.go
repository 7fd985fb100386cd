package entities

import (
	"fmt"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/components"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/config"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/ecs"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/game"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

// BoardEntities 拼图面板上创建的全部实体
type BoardEntities struct {
	// Bones 部位 -> 骨头实体
	Bones map[types.Part]ecs.EntityID
	// Outlines 部位 -> 轮廓实体
	Outlines map[types.Part]ecs.EntityID
	// VictoryPanel 胜利面板实体
	VictoryPanel ecs.EntityID
	// TimerDisplay 计时文本实体
	TimerDisplay ecs.EntityID
}

// NewBoardEntities 创建骨头托盘、六个轮廓槽、六块骨头以及界面实体
//
// 参数:
//   - em: 实体管理器
//   - doc: 页面布局（会注册托盘和轮廓槽容器）
//
// 返回:
//   - *BoardEntities: 创建的实体
//   - error: em 或 doc 为 nil 时返回错误
//
// 骨头按规范顺序（头骨、胸腔、左臂、右臂、左腿、右腿）放入托盘。
func NewBoardEntities(em *ecs.EntityManager, doc *layout.Document) (*BoardEntities, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}

	yard := layout.NewContainer(config.BoneyardID, config.BoneyardRect())
	yard.Label = "Bone Yard"
	yard.Padding = config.BoneyardPadding
	yard.Gap = config.BoneyardGap
	doc.AddContainer(yard)

	board := &BoardEntities{
		Bones:    make(map[types.Part]ecs.EntityID, types.PartCount),
		Outlines: make(map[types.Part]ecs.EntityID, types.PartCount),
	}

	for _, part := range types.AllParts() {
		board.Outlines[part] = newOutlineEntity(em, doc, part)
	}

	for i, part := range types.AllParts() {
		board.Bones[part] = newBoneEntity(em, doc, yard, part, i)
	}

	board.VictoryPanel = em.CreateEntity()
	em.AddComponent(board.VictoryPanel, &components.VictoryPanelComponent{})

	board.TimerDisplay = em.CreateEntity()
	em.AddComponent(board.TimerDisplay, &components.TimerDisplayComponent{Text: game.FormatTime(0)})

	doc.Layout()
	return board, nil
}

// newOutlineEntity 创建轮廓槽容器及其实体
func newOutlineEntity(em *ecs.EntityManager, doc *layout.Document, part types.Part) ecs.EntityID {
	slot := layout.NewContainer(types.TargetID(part), config.OutlineSlot(part))
	slot.Label = part.String()
	doc.AddContainer(slot)

	id := em.CreateEntity()
	em.AddComponent(id, &components.OutlineComponent{
		Part:        part,
		ContainerID: slot.ID,
		Occupant:    ecs.InvalidEntity,
	})
	em.AddComponent(id, &components.HoverHighlightComponent{})
	return id
}

// newBoneEntity 创建骨头节点并追加到托盘
func newBoneEntity(em *ecs.EntityManager, doc *layout.Document, yard *layout.Container, part types.Part, index int) ecs.EntityID {
	node := doc.CreateNode(types.ItemID(part), layout.KindBone, config.BoneIntrinsic(part))
	node.Label = part.String()
	yard.Append(node)

	id := em.CreateEntity()
	em.AddComponent(id, &components.BoneComponent{
		Part:           part,
		Status:         types.Unplaced,
		CanonicalIndex: index,
		NodeID:         node.ID,
	})
	em.AddComponent(id, &components.DragComponent{})
	return id
}
