package components

// VictoryPanelComponent 管理胜利面板的显示状态
// 六块骨头全部放置后显示本局用时和最佳用时
type VictoryPanelComponent struct {
	// IsVisible 面板是否可见
	IsVisible bool

	// FinalTime 本局用时（MM:SS）
	FinalTime string

	// BestTime 最佳用时（MM:SS），可能刚被本局刷新
	BestTime string

	// NewRecord 本局是否刷新了最佳用时
	NewRecord bool

	// FadeAlpha 淡入透明度（0.0 - 1.0）
	FadeAlpha float64
}
