package layout

import "sort"

// Document 整个页面：容器集合与节点注册表
type Document struct {
	containers map[string]*Container
	order      []string
	nodes      map[string]*Node
}

// NewDocument 创建空页面
func NewDocument() *Document {
	return &Document{
		containers: make(map[string]*Container),
		order:      make([]string, 0),
		nodes:      make(map[string]*Node),
	}
}

// AddContainer 注册容器，同 ID 的容器会被替换
func (d *Document) AddContainer(c *Container) {
	if c == nil {
		return
	}
	if _, exists := d.containers[c.ID]; !exists {
		d.order = append(d.order, c.ID)
	}
	d.containers[c.ID] = c
}

// Container 按 ID 查找容器
func (d *Document) Container(id string) (*Container, bool) {
	c, ok := d.containers[id]
	return c, ok
}

// Containers 按注册顺序返回全部容器
func (d *Document) Containers() []*Container {
	out := make([]*Container, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.containers[id])
	}
	return out
}

// CreateNode 创建并注册一个未挂载的节点
func (d *Document) CreateNode(id string, kind NodeKind, intrinsic Intrinsic) *Node {
	n := &Node{
		ID:        id,
		Kind:      kind,
		Intrinsic: intrinsic,
	}
	d.nodes[id] = n
	return n
}

// NodeByID 查找挂载在页面中的节点
// 已从页面中移除的节点查不到（与 getElementById 行为一致）
func (d *Document) NodeByID(id string) (*Node, bool) {
	if id == "" {
		return nil, false
	}
	n, ok := d.nodes[id]
	if !ok || !n.Attached() {
		return nil, false
	}
	return n, true
}

// Discard 将节点从页面和注册表中彻底删除
func (d *Document) Discard(n *Node) {
	if n == nil {
		return
	}
	if n.parent != nil {
		n.parent.Remove(n)
	}
	if d.nodes[n.ID] == n {
		delete(d.nodes, n.ID)
	}
}

// NodeCount 注册表中的节点数量（含未挂载节点）
func (d *Document) NodeCount() int {
	return len(d.nodes)
}

// Layout 重新计算所有节点的矩形
func (d *Document) Layout() {
	for _, id := range d.order {
		d.containers[id].layout()
	}
}

// BoundingBox 重新布局后返回节点的屏幕矩形
func (d *Document) BoundingBox(n *Node) Rect {
	d.Layout()
	return n.rect
}

// ContainerAt 返回包含该点的容器
// 多个容器重叠时返回最后注册的那个
func (d *Document) ContainerAt(x, y float64) (*Container, bool) {
	for i := len(d.order) - 1; i >= 0; i-- {
		c := d.containers[d.order[i]]
		if c.Bounds.Contains(x, y) {
			return c, true
		}
	}
	return nil, false
}

// PaintOrder 返回按绘制顺序排列的已挂载节点（z-index 升序，同层保持文档顺序）
func (d *Document) PaintOrder() []*Node {
	out := make([]*Node, 0)
	for _, id := range d.order {
		out = append(out, d.containers[id].children...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Style.ZIndex < out[j].Style.ZIndex
	})
	return out
}

// NodeAt 返回该点处最上层的节点
func (d *Document) NodeAt(x, y float64) (*Node, bool) {
	nodes := d.PaintOrder()
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i].rect.Contains(x, y) {
			return nodes[i], true
		}
	}
	return nil, false
}
