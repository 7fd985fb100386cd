package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/components"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/ecs"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

func TestBeginLiftKeepsSiblingsInPlace(t *testing.T) {
	r := newTestRig(t)
	r.doc.Layout()
	before := map[string]layout.Rect{}
	for _, n := range r.yard().Children() {
		before[n.ID] = n.Rect()
	}

	boneID := r.board.Bones[types.PartRibcage]
	ph, ok := r.placeholders.BeginLift(boneID)
	require.True(t, ok)

	r.doc.Layout()
	// 占位符占据骨头原来的位置
	assert.Equal(t, before["bone-ribcage"], ph.Rect())
	assert.Equal(t, 1, r.yard().IndexOf(ph))
	for _, n := range r.yard().Children() {
		if n.Kind == layout.KindBone && n.ID != "bone-ribcage" {
			assert.Equal(t, before[n.ID], n.Rect(), "sibling %s moved", n.ID)
		}
	}

	// 骨头进入覆盖层，锚定在原位置
	node := r.node(types.PartRibcage)
	assert.Equal(t, layout.PositionOverlay, node.Style.Position)
	assert.Equal(t, OverlayZIndex, node.Style.ZIndex)
	assert.Equal(t, before["bone-ribcage"], node.Rect())
	require.NotNil(t, node.Style.Margin)
	assert.Equal(t, 0.0, *node.Style.Margin)

	drag, _ := ecs.GetComponent[*components.DragComponent](r.em, boneID)
	assert.Equal(t, ph.ID, drag.PlaceholderID)
}

// TestLiftRevertRoundTrip 拿起后回退，页面与拿起前完全一致
func TestLiftRevertRoundTrip(t *testing.T) {
	r := newTestRig(t)
	r.doc.Layout()
	before := map[string]layout.Rect{}
	for _, n := range r.yard().Children() {
		before[n.ID] = n.Rect()
	}
	nodesBefore := r.doc.NodeCount()

	for _, part := range types.AllParts() {
		boneID := r.board.Bones[part]
		_, ok := r.placeholders.BeginLift(boneID)
		require.True(t, ok)
		r.node(part).Style.TranslateX = 42
		require.True(t, r.placeholders.Revert(boneID))

		r.doc.Layout()
		assert.Equal(t, canonicalYardOrder(), r.yardOrder())
		assert.True(t, r.node(part).Style.IsZero())
		for _, n := range r.yard().Children() {
			assert.Equal(t, before[n.ID], n.Rect())
		}
		assert.Equal(t, nodesBefore, r.doc.NodeCount())
	}
}

func TestRevertWithoutPlaceholderIsNoop(t *testing.T) {
	r := newTestRig(t)
	boneID := r.board.Bones[types.PartSkull]

	assert.False(t, r.placeholders.Revert(boneID))
	assert.Equal(t, canonicalYardOrder(), r.yardOrder())

	_, ok := r.placeholders.BeginLift(boneID)
	require.True(t, ok)
	assert.True(t, r.placeholders.Consume(boneID))
	assert.False(t, r.placeholders.Revert(boneID), "placeholder already consumed")
	assert.Equal(t, 0, r.placeholderCount())
}

func TestBeginLiftDiscardsStalePlaceholder(t *testing.T) {
	r := newTestRig(t)
	boneID := r.board.Bones[types.PartLeftLeg]

	_, ok := r.placeholders.BeginLift(boneID)
	require.True(t, ok)
	_, ok = r.placeholders.BeginLift(boneID)
	require.True(t, ok)

	assert.Equal(t, 1, r.placeholderCount())
}
