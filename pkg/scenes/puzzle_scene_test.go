package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

func TestShortLabel(t *testing.T) {
	assert.Equal(t, "L.Arm", shortLabel(types.PartLeftArm))
	assert.Equal(t, "R.Leg", shortLabel(types.PartRightLeg))
	assert.Equal(t, types.PartSkull.String(), shortLabel(types.PartSkull))
}

func TestEveryPartHasAColor(t *testing.T) {
	for _, p := range types.AllParts() {
		_, ok := boneColors[p]
		assert.True(t, ok, p.String())
	}
}
