package components

// DragComponent 骨头在一次拖拽手势中的临时状态
//
// 手势开始时 Active 置为 true、偏移归零；移动事件累加增量；
// 手势结束（放置或回退）后清空。
type DragComponent struct {
	// Active 是否处于拖拽手势中
	Active bool

	// OffsetX, OffsetY 相对于拿起时屏幕锚点的累计偏移（像素）
	OffsetX float64
	OffsetY float64

	// PlaceholderID 拿起时留在原位置的占位符节点 ID，为空表示没有占位符
	PlaceholderID string
}

// Clear 清空拖拽状态
func (d *DragComponent) Clear() {
	d.Active = false
	d.OffsetX = 0
	d.OffsetY = 0
	d.PlaceholderID = ""
}
