// Package layout 页面布局模型
//
// 拼图页面由若干容器（骨头托盘、每个部位的轮廓槽）组成，容器内是有序的节点
// （骨头或占位符）。节点的样式决定它参与流式布局、以覆盖层方式浮在页面上，
// 还是填满所在容器。渲染层（ebiten / tcell）只读取 Layout() 计算出的矩形。
package layout

// Rect 轴对齐矩形（屏幕坐标，像素）
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center 返回矩形中心点
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// PositionMode 节点定位方式
type PositionMode int

const (
	// PositionFlow 参与所在容器的流式布局（默认）
	PositionFlow PositionMode = iota
	// PositionOverlay 脱离布局流，以屏幕坐标锚定，叠加在页面之上
	PositionOverlay
	// PositionFill 填满所在容器
	PositionFill
)

// Style 节点的内联样式
// 零值表示"没有内联样式"，节点按其固有属性参与流式布局
type Style struct {
	Position PositionMode

	// Left/Top 覆盖层模式下的锚点（屏幕坐标）
	Left, Top float64
	// Width/Height 为 0 时使用节点固有尺寸
	Width, Height float64

	// Margin 为 nil 时使用节点固有外边距
	Margin *float64
	// Display/Flex 为空时使用节点固有值
	Display string
	Flex    string

	ZIndex int

	// TranslateX/TranslateY 视觉平移，不影响布局
	TranslateX, TranslateY float64
}

// IsZero 是否为空样式
func (s Style) IsZero() bool {
	return s.Position == PositionFlow &&
		s.Left == 0 && s.Top == 0 &&
		s.Width == 0 && s.Height == 0 &&
		s.Margin == nil &&
		s.Display == "" && s.Flex == "" &&
		s.ZIndex == 0 &&
		s.TranslateX == 0 && s.TranslateY == 0
}

// Px 返回 float64 指针，用于设置 Style.Margin
func Px(v float64) *float64 {
	return &v
}

// Intrinsic 节点的固有（样式表）属性，相当于未被内联样式覆盖时的计算样式
type Intrinsic struct {
	Width, Height float64
	Margin        float64
	Display       string
	Flex          string
}

// Computed 合并内联样式与固有属性后的计算样式
type Computed struct {
	Width, Height float64
	Margin        float64
	Display       string
	Flex          string
}
