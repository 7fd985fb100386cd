package systems

import (
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

// EventListener 游戏事件监听者（音效、指标等旁路功能）
// 监听者不能修改游戏状态
type EventListener interface {
	OnLifted(part types.Part)
	OnPlaced(part types.Part, drops int)
	OnReverted(part types.Part)
	OnMismatch(bone, target types.Part)
	OnWin(finalMs, bestMs int64, newRecord bool)
	OnReset()
}

// NopListener 空实现，嵌入后只需覆盖关心的方法
type NopListener struct{}

func (NopListener) OnLifted(types.Part) {}
func (NopListener) OnPlaced(types.Part, int) {}
func (NopListener) OnReverted(types.Part) {}
func (NopListener) OnMismatch(types.Part, types.Part) {}
func (NopListener) OnWin(int64, int64, bool) {}
func (NopListener) OnReset() {}

// Listeners 按顺序分发给多个监听者
type Listeners []EventListener

func (ls Listeners) lifted(p types.Part) {
	for _, l := range ls {
		l.OnLifted(p)
	}
}

func (ls Listeners) placed(p types.Part, drops int) {
	for _, l := range ls {
		l.OnPlaced(p, drops)
	}
}

func (ls Listeners) reverted(p types.Part) {
	for _, l := range ls {
		l.OnReverted(p)
	}
}

func (ls Listeners) mismatch(bone, target types.Part) {
	for _, l := range ls {
		l.OnMismatch(bone, target)
	}
}

func (ls Listeners) win(finalMs, bestMs int64, newRecord bool) {
	for _, l := range ls {
		l.OnWin(finalMs, bestMs, newRecord)
	}
}

func (ls Listeners) reset() {
	for _, l := range ls {
		l.OnReset()
	}
}
