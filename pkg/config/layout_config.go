package config

import (
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

// 布局配置常量
// 所有坐标都是逻辑屏幕坐标（像素），ebiten 的 Layout 固定返回 ScreenWidth x ScreenHeight，
// 终端前端按比例缩放到字符网格。

const (
	// ScreenWidth 逻辑屏幕宽度
	ScreenWidth = 800
	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 600

	// BoneyardID 骨头托盘容器 ID
	BoneyardID = "boneyard"
)

// Bone Yard Configuration (骨头托盘配置)
const (
	BoneyardX       = 20.0
	BoneyardY       = 80.0
	BoneyardWidth   = 330.0
	BoneyardHeight  = 420.0
	BoneyardPadding = 10.0
	BoneyardGap     = 4.0

	// BoneMargin 骨头在托盘中的外边距
	BoneMargin = 6.0
)

// HUD Configuration (界面元素位置)
const (
	TimerTextX = 20.0
	TimerTextY = 30.0

	ResetButtonX      = 20.0
	ResetButtonY      = 520.0
	ResetButtonWidth  = 120.0
	ResetButtonHeight = 40.0

	VictoryPanelWidth  = 320.0
	VictoryPanelHeight = 160.0
)

// boneSizes 每个部位骨头的固有尺寸（宽，高）
var boneSizes = map[types.Part][2]float64{
	types.PartSkull:    {70, 70},
	types.PartRibcage:  {90, 110},
	types.PartLeftArm:  {40, 130},
	types.PartRightArm: {40, 130},
	types.PartLeftLeg:  {45, 150},
	types.PartRightLeg: {45, 150},
}

// outlineSlots 轮廓槽位置
// 骨架面朝玩家，骨架的左臂/左腿在屏幕右侧
var outlineSlots = map[types.Part]layout.Rect{
	types.PartSkull:    {X: 545, Y: 70, W: 70, H: 70},
	types.PartRibcage:  {X: 535, Y: 150, W: 90, H: 110},
	types.PartRightArm: {X: 485, Y: 150, W: 40, H: 130},
	types.PartLeftArm:  {X: 635, Y: 150, W: 40, H: 130},
	types.PartRightLeg: {X: 528, Y: 270, W: 45, H: 150},
	types.PartLeftLeg:  {X: 587, Y: 270, W: 45, H: 150},
}

// BoneIntrinsic 返回部位骨头的固有样式
func BoneIntrinsic(p types.Part) layout.Intrinsic {
	size := boneSizes[p]
	return layout.Intrinsic{
		Width:   size[0],
		Height:  size[1],
		Margin:  BoneMargin,
		Display: "inline-block",
		Flex:    "0 0 auto",
	}
}

// OutlineSlot 返回部位轮廓槽的屏幕矩形
func OutlineSlot(p types.Part) layout.Rect {
	return outlineSlots[p]
}

// BoneyardRect 骨头托盘矩形
func BoneyardRect() layout.Rect {
	return layout.Rect{X: BoneyardX, Y: BoneyardY, W: BoneyardWidth, H: BoneyardHeight}
}

// ResetButtonRect 重置按钮矩形
func ResetButtonRect() layout.Rect {
	return layout.Rect{X: ResetButtonX, Y: ResetButtonY, W: ResetButtonWidth, H: ResetButtonHeight}
}

// VictoryPanelRect 胜利面板矩形（屏幕居中）
func VictoryPanelRect() layout.Rect {
	return layout.Rect{
		X: (ScreenWidth - VictoryPanelWidth) / 2,
		Y: (ScreenHeight - VictoryPanelHeight) / 2,
		W: VictoryPanelWidth,
		H: VictoryPanelHeight,
	}
}
