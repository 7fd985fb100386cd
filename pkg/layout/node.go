package layout

// NodeKind 节点类型
type NodeKind int

const (
	// KindBone 可拖动的骨头
	KindBone NodeKind = iota
	// KindPlaceholder 骨头被拿起后留下的占位符
	KindPlaceholder
)

// Node 页面中的一个元素
type Node struct {
	ID        string
	Kind      NodeKind
	Label     string
	Style     Style
	Intrinsic Intrinsic

	parent *Container
	rect   Rect
}

// Parent 返回所在容器，未挂载时为 nil
func (n *Node) Parent() *Container {
	return n.parent
}

// Attached 节点是否挂在某个容器下
func (n *Node) Attached() bool {
	return n.parent != nil
}

// Rect 返回最近一次 Layout 计算出的矩形
func (n *Node) Rect() Rect {
	return n.rect
}

// Computed 合并内联样式与固有属性
func (n *Node) Computed() Computed {
	c := Computed{
		Width:   n.Intrinsic.Width,
		Height:  n.Intrinsic.Height,
		Margin:  n.Intrinsic.Margin,
		Display: n.Intrinsic.Display,
		Flex:    n.Intrinsic.Flex,
	}
	if n.Style.Width > 0 {
		c.Width = n.Style.Width
	}
	if n.Style.Height > 0 {
		c.Height = n.Style.Height
	}
	if n.Style.Margin != nil {
		c.Margin = *n.Style.Margin
	}
	if n.Style.Display != "" {
		c.Display = n.Style.Display
	}
	if n.Style.Flex != "" {
		c.Flex = n.Style.Flex
	}
	return c
}

// ClearStyle 清除全部内联样式，节点回到正常流式布局
func (n *Node) ClearStyle() {
	n.Style = Style{}
}
