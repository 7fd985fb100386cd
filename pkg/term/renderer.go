// Package term 终端版前端：tcell 屏幕上的同一局骨架拼图
//
// 面板的逻辑坐标（ScreenWidth x ScreenHeight 像素）按终端尺寸缩放到字符格，
// 鼠标左键按下、拖动、松开被还原成面板坐标上的指针采样。
package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/board"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/config"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

// Canvas 渲染目标，tcell.Screen 满足该接口
type Canvas interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	styleBackground  = tcell.StyleDefault.Background(tcell.NewRGBColor(29, 31, 43))
	styleBoneyard    = tcell.StyleDefault.Background(tcell.NewRGBColor(42, 45, 62)).Foreground(tcell.ColorSilver)
	styleOutline     = tcell.StyleDefault.Background(tcell.NewRGBColor(29, 31, 43)).Foreground(tcell.NewRGBColor(138, 143, 168))
	styleHighlight   = tcell.StyleDefault.Background(tcell.NewRGBColor(76, 201, 106)).Foreground(tcell.ColorBlack)
	styleBone        = tcell.StyleDefault.Background(tcell.NewRGBColor(232, 224, 200)).Foreground(tcell.ColorBlack)
	styleBoneDrag    = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 244, 214)).Foreground(tcell.ColorBlack).Bold(true)
	stylePlaceholder = tcell.StyleDefault.Background(tcell.NewRGBColor(42, 45, 62)).Foreground(tcell.NewRGBColor(69, 73, 96))
	styleButton      = tcell.StyleDefault.Background(tcell.NewRGBColor(176, 58, 46)).Foreground(tcell.ColorWhite).Bold(true)
	styleText        = tcell.StyleDefault.Background(tcell.NewRGBColor(29, 31, 43)).Foreground(tcell.ColorWhite)
	stylePanel       = tcell.StyleDefault.Background(tcell.NewRGBColor(42, 45, 62)).Foreground(tcell.ColorWhite)
)

// Grid 面板坐标与字符格之间的换算
type Grid struct {
	Cols, Rows int
}

// scale 每个字符格对应的像素
func (g Grid) scale() (float64, float64) {
	cols, rows := max(g.Cols, 1), max(g.Rows, 1)
	return float64(config.ScreenWidth) / float64(cols), float64(config.ScreenHeight) / float64(rows)
}

// ToBoard 字符格中心对应的面板坐标
func (g Grid) ToBoard(col, row int) (float64, float64) {
	sx, sy := g.scale()
	return (float64(col) + 0.5) * sx, (float64(row) + 0.5) * sy
}

// ToCell 面板坐标所在的字符格
func (g Grid) ToCell(x, y float64) (int, int) {
	sx, sy := g.scale()
	return int(math.Floor(x / sx)), int(math.Floor(y / sy))
}

// Cells 矩形覆盖的字符格范围（含两端），至少一格
func (g Grid) Cells(r layout.Rect) (x0, y0, x1, y1 int) {
	sx, sy := g.scale()
	x0 = int(math.Floor(r.X / sx))
	y0 = int(math.Floor(r.Y / sy))
	x1 = max(x0, int(math.Ceil((r.X+r.W)/sx))-1)
	y1 = max(y0, int(math.Ceil((r.Y+r.H)/sy))-1)
	return x0, y0, x1, y1
}

// Renderer 把面板快照画到字符格上
type Renderer struct {
	canvas Canvas
}

// NewRenderer 创建渲染器
func NewRenderer(c Canvas) *Renderer {
	return &Renderer{canvas: c}
}

// Draw 绘制一帧（不调用 Show）
func (r *Renderer) Draw(snap board.Snapshot) {
	cols, rows := r.canvas.Size()
	g := Grid{Cols: cols, Rows: rows}

	r.fill(0, 0, cols-1, rows-1, ' ', styleBackground)

	x0, y0, x1, y1 := g.Cells(snap.Boneyard)
	r.fill(x0, y0, x1, y1, ' ', styleBoneyard)
	r.text(x0, y0-1, "Bone Yard", styleText)

	for _, slot := range snap.Slots {
		x0, y0, x1, y1 := g.Cells(slot.Rect)
		if slot.Highlighted {
			r.fill(x0, y0, x1, y1, ' ', styleHighlight)
		} else {
			r.box(x0, y0, x1, y1, styleOutline)
		}
		if !slot.Occupied {
			r.centered(x0, y0, x1, y1, cellLabel(slot.Part), styleOutline)
		}
	}

	for _, n := range snap.Nodes {
		x0, y0, x1, y1 := g.Cells(n.Rect)
		switch {
		case n.Kind == layout.KindPlaceholder:
			r.fill(x0, y0, x1, y1, '·', stylePlaceholder)
		case n.Dragging:
			r.fill(x0, y0, x1, y1, ' ', styleBoneDrag)
			r.centered(x0, y0, x1, y1, cellLabel(n.Part), styleBoneDrag)
		default:
			r.fill(x0, y0, x1, y1, ' ', styleBone)
			if !n.Placed {
				r.centered(x0, y0, x1, y1, cellLabel(n.Part), styleBone)
			}
		}
	}

	r.text(0, 0, StatusLine(snap), styleText)

	x0, y0, x1, y1 = g.Cells(snap.ResetButton)
	r.fill(x0, y0, x1, y1, ' ', styleButton)
	r.centered(x0, y0, x1, y1, "Reset", styleButton)

	if snap.Victory.IsVisible {
		x0, y0, x1, y1 := g.Cells(config.VictoryPanelRect())
		r.fill(x0, y0, x1, y1, ' ', stylePanel)
		lines := board.VictoryLines(snap.Victory)
		top := y0 + (y1-y0+1-len(lines))/2
		for i, line := range lines {
			r.centered(x0, top+i, x1, top+i, line, stylePanel)
		}
	}
}

// StatusLine 顶部状态行
func StatusLine(snap board.Snapshot) string {
	return fmt.Sprintf("Time %s  Placed %d/%d  [r] reset  [q] quit", snap.TimerText, snap.Drops, types.PartCount)
}

// cellLabel 字符格上的部位名称
func cellLabel(p types.Part) string {
	switch p {
	case types.PartSkull:
		return "Skull"
	case types.PartRibcage:
		return "Ribs"
	case types.PartLeftArm:
		return "LA"
	case types.PartRightArm:
		return "RA"
	case types.PartLeftLeg:
		return "LL"
	case types.PartRightLeg:
		return "RL"
	}
	return "?"
}

func (r *Renderer) fill(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.canvas.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) box(x0, y0, x1, y1 int, style tcell.Style) {
	for x := x0; x <= x1; x++ {
		r.canvas.SetContent(x, y0, '─', nil, style)
		r.canvas.SetContent(x, y1, '─', nil, style)
	}
	for y := y0; y <= y1; y++ {
		r.canvas.SetContent(x0, y, '│', nil, style)
		r.canvas.SetContent(x1, y, '│', nil, style)
	}
	r.canvas.SetContent(x0, y0, '┌', nil, style)
	r.canvas.SetContent(x1, y0, '┐', nil, style)
	r.canvas.SetContent(x0, y1, '└', nil, style)
	r.canvas.SetContent(x1, y1, '┘', nil, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	if y < 0 {
		return
	}
	for _, ch := range s {
		r.canvas.SetContent(x, y, ch, nil, style)
		x++
	}
}

// centered 在矩形中间一行居中写字，放不下时截断
func (r *Renderer) centered(x0, y0, x1, y1 int, s string, style tcell.Style) {
	runes := []rune(s)
	width := x1 - x0 + 1
	if len(runes) > width {
		runes = runes[:max(width, 0)]
	}
	x := x0 + (width-len(runes))/2
	y := y0 + (y1-y0)/2
	r.text(x, y, string(runes), style)
}
