package components

// TimerDisplayComponent 计时器显示文本
// 由 GameTimer 的周期刷新回调写入，渲染系统只读
type TimerDisplayComponent struct {
	// Text 当前显示文本，如 "01:23"
	Text string
}
