package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/components"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/ecs"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

func TestFirstDragStartsTimer(t *testing.T) {
	r := newTestRig(t)
	require.False(t, r.timer.IsRunning())
	require.False(t, r.session.HasStarted())

	require.True(t, r.drag.OnDragStart(r.board.Bones[types.PartSkull]))
	assert.True(t, r.timer.IsRunning())
	assert.True(t, r.session.IsGameActive)
	assert.Equal(t, r.clock.Now(), r.session.StartTime)
	assert.Equal(t, "00:00", r.hudText())

	r.clock.Advance(2500 * time.Millisecond)
	r.scheduler.Advance(2500 * time.Millisecond)
	assert.Equal(t, "00:02", r.hudText())

	// 第二次拖拽不会重新开始计时
	epoch := r.timer.Epoch()
	r.drag.OnDragEnd(r.board.Bones[types.PartSkull])
	require.True(t, r.drag.OnDragStart(r.board.Bones[types.PartRibcage]))
	assert.Equal(t, epoch, r.timer.Epoch())
	assert.Equal(t, 1, r.scheduler.Pending())
}

func TestRejectedLiftDoesNotStartTimer(t *testing.T) {
	r := newTestRig(t)
	boneID := r.board.Bones[types.PartLeftLeg]
	r.doc.Discard(r.node(types.PartLeftLeg))

	assert.False(t, r.drag.OnDragStart(boneID))
	assert.False(t, r.timer.IsRunning())
	assert.False(t, r.session.HasStarted())
	assert.False(t, r.session.IsGameActive)
	assert.Equal(t, 0, r.scheduler.Pending())
	assert.Empty(t, r.listener.events)

	drag, _ := ecs.GetComponent[*components.DragComponent](r.em, boneID)
	assert.False(t, drag.Active)
}

func TestDragMoveAccumulates(t *testing.T) {
	r := newTestRig(t)
	boneID := r.board.Bones[types.PartLeftArm]
	require.True(t, r.drag.OnDragStart(boneID))

	r.drag.OnDragMove(boneID, 10, 5)
	r.drag.OnDragMove(boneID, -3, 20)

	drag, _ := ecs.GetComponent[*components.DragComponent](r.em, boneID)
	assert.Equal(t, 7.0, drag.OffsetX)
	assert.Equal(t, 25.0, drag.OffsetY)
	node := r.node(types.PartLeftArm)
	assert.Equal(t, 7.0, node.Style.TranslateX)
	assert.Equal(t, 25.0, node.Style.TranslateY)
}

func TestDragMoveIgnoredWithoutStart(t *testing.T) {
	r := newTestRig(t)
	boneID := r.board.Bones[types.PartLeftArm]

	r.drag.OnDragMove(boneID, 10, 5)
	r.drag.OnDragEnd(boneID)

	assert.True(t, r.node(types.PartLeftArm).Style.IsZero())
	assert.Equal(t, 0, r.placeholderCount())
	assert.False(t, r.timer.IsRunning())
}

func TestDragEndRevertsUnplacedBone(t *testing.T) {
	r := newTestRig(t)
	boneID := r.board.Bones[types.PartRightLeg]
	require.True(t, r.drag.OnDragStart(boneID))
	r.drag.OnDragMove(boneID, 100, 100)

	r.drag.OnDragEnd(boneID)

	assert.Equal(t, canonicalYardOrder(), r.yardOrder())
	assert.True(t, r.node(types.PartRightLeg).Style.IsZero())
	assert.Equal(t, 0, r.placeholderCount())
	drag, _ := ecs.GetComponent[*components.DragComponent](r.em, boneID)
	assert.False(t, drag.Active)
	assert.Equal(t, []string{"lift:right-leg", "revert:right-leg"}, r.listener.events)
}

func TestPlacedBoneRejectsDrag(t *testing.T) {
	r := newTestRig(t)
	boneID := r.board.Bones[types.PartSkull]
	require.True(t, r.drag.OnDragStart(boneID))
	require.True(t, r.placement.Place(boneID, r.board.Outlines[types.PartSkull]))
	r.drag.OnDragEnd(boneID)

	assert.False(t, r.drag.OnDragStart(boneID))
	assert.Equal(t, 0, r.placeholderCount())
	assert.Equal(t, "outline-skull", r.node(types.PartSkull).Parent().ID)
}
