package layout

// Container 有序容纳节点的区域（骨头托盘或轮廓槽）
// 子节点按顺序从左到右排列，超出宽度时换行
type Container struct {
	ID      string
	Label   string
	Bounds  Rect
	Padding float64
	Gap     float64

	children []*Node
}

// NewContainer 创建容器
func NewContainer(id string, bounds Rect) *Container {
	return &Container{
		ID:       id,
		Bounds:   bounds,
		children: make([]*Node, 0),
	}
}

// Children 返回子节点副本
func (c *Container) Children() []*Node {
	out := make([]*Node, len(c.children))
	copy(out, c.children)
	return out
}

// Len 子节点数量
func (c *Container) Len() int {
	return len(c.children)
}

// IndexOf 返回子节点下标，不存在返回 -1
func (c *Container) IndexOf(n *Node) int {
	for i, child := range c.children {
		if child == n {
			return i
		}
	}
	return -1
}

// Contains 节点是否为本容器的直接子节点
func (c *Container) Contains(n *Node) bool {
	return n != nil && n.parent == c
}

// Append 将节点追加到末尾（会先从原容器中摘下）
func (c *Container) Append(n *Node) {
	if n == nil {
		return
	}
	detach(n)
	c.children = append(c.children, n)
	n.parent = c
}

// InsertBefore 将节点插入到 ref 之前
// ref 为 nil 时等同于 Append；ref 不是本容器子节点时不做任何操作并返回 false
func (c *Container) InsertBefore(n, ref *Node) bool {
	if n == nil {
		return false
	}
	if ref == nil {
		c.Append(n)
		return true
	}
	if ref.parent != c || n == ref {
		return false
	}

	detach(n)
	idx := c.IndexOf(ref)
	c.children = append(c.children, nil)
	copy(c.children[idx+1:], c.children[idx:])
	c.children[idx] = n
	n.parent = c
	return true
}

// Remove 移除子节点
func (c *Container) Remove(n *Node) bool {
	idx := c.IndexOf(n)
	if idx < 0 {
		return false
	}
	c.children = append(c.children[:idx], c.children[idx+1:]...)
	n.parent = nil
	return true
}

// Replace 用 n 替换 old，n 占据 old 的位置
func (c *Container) Replace(n, old *Node) bool {
	if n == nil || old == nil || old.parent != c || n == old {
		return false
	}
	detach(n)
	idx := c.IndexOf(old)
	c.children[idx] = n
	n.parent = c
	old.parent = nil
	return true
}

// Clear 移除全部子节点
func (c *Container) Clear() {
	for _, child := range c.children {
		child.parent = nil
	}
	c.children = c.children[:0]
}

func detach(n *Node) {
	if n.parent != nil {
		n.parent.Remove(n)
	}
}

// layout 计算流式子节点的位置
func (c *Container) layout() {
	left := c.Bounds.X + c.Padding
	right := c.Bounds.X + c.Bounds.W - c.Padding
	x := left
	y := c.Bounds.Y + c.Padding
	rowHeight := 0.0
	rowStart := true

	for _, n := range c.children {
		switch n.Style.Position {
		case PositionFill:
			n.rect = Rect{
				X: c.Bounds.X,
				Y: c.Bounds.Y,
				W: c.Bounds.W,
				H: c.Bounds.H,
			}
			continue
		case PositionOverlay:
			n.rect = Rect{
				X: n.Style.Left + n.Style.TranslateX,
				Y: n.Style.Top + n.Style.TranslateY,
				W: n.Style.Width,
				H: n.Style.Height,
			}
			continue
		}

		cs := n.Computed()
		outerW := cs.Width + 2*cs.Margin
		outerH := cs.Height + 2*cs.Margin

		// 换行
		if !rowStart && x+outerW > right {
			x = left
			y += rowHeight + c.Gap
			rowHeight = 0
		}

		n.rect = Rect{
			X: x + cs.Margin + n.Style.TranslateX,
			Y: y + cs.Margin + n.Style.TranslateY,
			W: cs.Width,
			H: cs.Height,
		}

		x += outerW + c.Gap
		if outerH > rowHeight {
			rowHeight = outerH
		}
		rowStart = false
	}
}
