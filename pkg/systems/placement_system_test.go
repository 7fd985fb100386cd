package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/components"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/config"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/ecs"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

func TestPlaceSnapsIntoOutline(t *testing.T) {
	r := newTestRig(t)
	boneID := r.board.Bones[types.PartLeftLeg]
	outlineID := r.board.Outlines[types.PartLeftLeg]
	require.True(t, r.drag.OnDragStart(boneID))

	require.True(t, r.placement.Place(boneID, outlineID))

	node := r.node(types.PartLeftLeg)
	assert.Equal(t, "outline-left-leg", node.Parent().ID)
	assert.Equal(t, layout.PositionFill, node.Style.Position)
	r.doc.Layout()
	assert.Equal(t, config.OutlineSlot(types.PartLeftLeg), node.Rect())
	assert.True(t, r.bone(types.PartLeftLeg).IsPlaced())
	assert.Equal(t, 0, r.placeholderCount())
	assert.Equal(t, 1, r.session.SuccessfulDrops)

	outline, _ := ecs.GetComponent[*components.OutlineComponent](r.em, outlineID)
	assert.Equal(t, boneID, outline.Occupant)
}

func TestPlaceRejectsMismatchAndDoublePlacement(t *testing.T) {
	r := newTestRig(t)
	boneID := r.board.Bones[types.PartLeftArm]

	assert.False(t, r.placement.Place(boneID, r.board.Outlines[types.PartRightArm]))
	assert.False(t, r.bone(types.PartLeftArm).IsPlaced())

	require.True(t, r.placement.Place(boneID, r.board.Outlines[types.PartLeftArm]))
	assert.False(t, r.placement.Place(boneID, r.board.Outlines[types.PartLeftArm]))
	assert.Equal(t, 1, r.session.SuccessfulDrops)
}

func TestHoverHighlightOnlyForMatch(t *testing.T) {
	r := newTestRig(t)
	boneID := r.board.Bones[types.PartLeftArm]
	left := r.board.Outlines[types.PartLeftArm]
	right := r.board.Outlines[types.PartRightArm]

	r.placement.OnHoverEnter(boneID, right)
	assert.False(t, r.placement.IsHighlighted(right))

	r.placement.OnHoverEnter(boneID, left)
	assert.True(t, r.placement.IsHighlighted(left))

	r.placement.OnHoverLeave(left)
	assert.False(t, r.placement.IsHighlighted(left))

	// 离开不匹配的轮廓同样没有副作用
	r.placement.OnHoverLeave(right)
	assert.False(t, r.placement.IsHighlighted(right))
}

func TestDropMismatchLeavesBoneUnplaced(t *testing.T) {
	r := newTestRig(t)
	boneID := r.board.Bones[types.PartLeftArm]
	right := r.board.Outlines[types.PartRightArm]
	require.True(t, r.drag.OnDragStart(boneID))

	assert.False(t, r.placement.OnDrop(boneID, right))
	r.drag.OnDragEnd(boneID)

	assert.False(t, r.bone(types.PartLeftArm).IsPlaced())
	assert.Equal(t, 0, r.session.SuccessfulDrops)
	assert.Equal(t, canonicalYardOrder(), r.yardOrder())
	assert.Contains(t, r.listener.events, "mismatch:left-arm>right-arm")
}

func TestDropMatchClearsHighlight(t *testing.T) {
	r := newTestRig(t)
	boneID := r.board.Bones[types.PartSkull]
	outlineID := r.board.Outlines[types.PartSkull]
	require.True(t, r.drag.OnDragStart(boneID))
	r.placement.OnHoverEnter(boneID, outlineID)
	require.True(t, r.placement.IsHighlighted(outlineID))

	assert.True(t, r.placement.OnDrop(boneID, outlineID))
	assert.False(t, r.placement.IsHighlighted(outlineID))
	assert.Equal(t, []string{"lift:skull", "place:skull"}, r.listener.events)
}
