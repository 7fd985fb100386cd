package components

// HoverHighlightComponent 悬停高亮组件
// 拖拽中的骨头悬停在匹配的轮廓上时激活，指针离开轮廓时关闭（无论是否匹配）
type HoverHighlightComponent struct {
	// Intensity 高亮强度（0.0 - 1.0）
	// 1.0 = 最亮，0.0 = 无效果
	Intensity float64

	// IsActive 是否激活
	IsActive bool
}
