package board

import (
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/components"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/config"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/ecs"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

// NodeView 一个可见节点（骨头或占位符）
type NodeView struct {
	ID       string
	Label    string
	Kind     layout.NodeKind
	Part     types.Part
	Rect     layout.Rect
	Placed   bool
	Dragging bool
}

// SlotView 一个轮廓槽
type SlotView struct {
	ID          string
	Label       string
	Part        types.Part
	Rect        layout.Rect
	Highlighted bool
	Occupied    bool
}

// Snapshot 某一时刻的完整画面，渲染层只读
type Snapshot struct {
	Boneyard    layout.Rect
	ResetButton layout.Rect
	Slots       []SlotView
	// Nodes 按绘制顺序排列（被拖动的骨头在最后）
	Nodes     []NodeView
	TimerText string
	Drops     int
	Victory   components.VictoryPanelComponent
}

// Snapshot 生成当前画面
func (b *Board) Snapshot() Snapshot {
	b.doc.Layout()

	snap := Snapshot{
		Boneyard:    config.BoneyardRect(),
		ResetButton: config.ResetButtonRect(),
		Drops:       b.session.SuccessfulDrops,
	}

	for _, part := range types.AllParts() {
		id := b.entities.Outlines[part]
		outline, _ := ecs.GetComponent[*components.OutlineComponent](b.em, id)
		slot, ok := b.doc.Container(outline.ContainerID)
		if !ok {
			continue
		}
		snap.Slots = append(snap.Slots, SlotView{
			ID:          slot.ID,
			Label:       slot.Label,
			Part:        part,
			Rect:        slot.Bounds,
			Highlighted: b.placement.IsHighlighted(id),
			Occupied:    outline.IsOccupied(),
		})
	}

	dragging := b.input.Captured()
	for _, n := range b.doc.PaintOrder() {
		view := NodeView{
			ID:    n.ID,
			Label: n.Label,
			Kind:  n.Kind,
			Rect:  n.Rect(),
		}
		if n.Kind == layout.KindBone {
			part, _ := types.ParseItemID(n.ID)
			view.Part = part
			boneID := b.entities.Bones[part]
			if bone, ok := ecs.GetComponent[*components.BoneComponent](b.em, boneID); ok {
				view.Placed = bone.IsPlaced()
			}
			if drag, ok := ecs.GetComponent[*components.DragComponent](b.em, boneID); ok {
				view.Dragging = drag.Active && boneID == dragging
			}
		}
		snap.Nodes = append(snap.Nodes, view)
	}

	if hud, ok := ecs.GetComponent[*components.TimerDisplayComponent](b.em, b.entities.TimerDisplay); ok {
		snap.TimerText = hud.Text
	}
	if panel, ok := ecs.GetComponent[*components.VictoryPanelComponent](b.em, b.entities.VictoryPanel); ok {
		snap.Victory = *panel
	}
	return snap
}

// VictoryLines 胜利面板上的文字，两个前端共用
func VictoryLines(v components.VictoryPanelComponent) []string {
	lines := []string{
		"Skeleton complete!",
		"Your time: " + v.FinalTime,
		"Best time: " + v.BestTime,
	}
	if v.NewRecord {
		lines = append(lines, "New record!")
	}
	return append(lines, "Press R or Reset to play again")
}
