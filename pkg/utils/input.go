// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSample 一帧的指针采样
// 鼠标左键和触摸统一成一个指针
type PointerSample struct {
	// X, Y 指针位置（逻辑屏幕坐标）
	X, Y int
	// Pressed 是否按下
	Pressed bool
	// IsTouch 是否来自触摸
	IsTouch bool
}

type touchPoint struct {
	id   ebiten.TouchID
	x, y int
}

// PointerTracker 跟踪当前指针
//
// 触摸优先：第一个按下的触摸点被跟踪直到抬起，期间忽略其他触摸点。
// 触摸抬起的那一帧 ebiten 已经拿不到位置，使用最后一次记录的位置。
type PointerTracker struct {
	touchID  ebiten.TouchID
	touching bool
	lastX    int
	lastY    int
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{touchID: -1}
}

// Sample 读取本帧的指针状态（每帧调用一次）
func (pt *PointerTracker) Sample() PointerSample {
	ids := ebiten.AppendTouchIDs(nil)
	touches := make([]touchPoint, 0, len(ids))
	for _, id := range ids {
		x, y := ebiten.TouchPosition(id)
		touches = append(touches, touchPoint{id: id, x: x, y: y})
	}
	cx, cy := ebiten.CursorPosition()
	return pt.next(touches, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), cx, cy)
}

// next 根据原始输入推进跟踪状态
func (pt *PointerTracker) next(touches []touchPoint, mousePressed bool, cx, cy int) PointerSample {
	if pt.touching {
		for _, tp := range touches {
			if tp.id == pt.touchID {
				pt.lastX, pt.lastY = tp.x, tp.y
				return PointerSample{X: tp.x, Y: tp.y, Pressed: true, IsTouch: true}
			}
		}
		// 跟踪的触摸点已抬起
		pt.touching = false
		pt.touchID = -1
		return PointerSample{X: pt.lastX, Y: pt.lastY, Pressed: false, IsTouch: true}
	}

	if len(touches) > 0 {
		tp := touches[0]
		pt.touching = true
		pt.touchID = tp.id
		pt.lastX, pt.lastY = tp.x, tp.y
		return PointerSample{X: tp.x, Y: tp.y, Pressed: true, IsTouch: true}
	}

	return PointerSample{X: cx, Y: cy, Pressed: mousePressed}
}
