package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/board"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/components"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/config"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/logging"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/utils"
)

// 调试文字的字符尺寸（ebitenutil.DebugPrintAt 使用的位图字体）
const (
	debugCharWidth  = 6
	debugCharHeight = 16
)

var (
	backgroundColor  = color.RGBA{R: 0x1d, G: 0x1f, B: 0x2b, A: 0xff}
	boneyardColor    = color.RGBA{R: 0x2a, G: 0x2d, B: 0x3e, A: 0xff}
	outlineColor     = color.RGBA{R: 0x8a, G: 0x8f, B: 0xa8, A: 0xff}
	highlightColor   = color.RGBA{R: 0x4c, G: 0xc9, B: 0x6a, A: 0xff}
	placeholderColor = color.RGBA{R: 0x45, G: 0x49, B: 0x60, A: 0xff}
	buttonColor      = color.RGBA{R: 0xb0, G: 0x3a, B: 0x2e, A: 0xff}
)

// boneColors 每个部位的骨头颜色（略有区别，方便辨认）
var boneColors = map[types.Part]color.RGBA{
	types.PartSkull:    {R: 0xf2, G: 0xec, B: 0xdc, A: 0xff},
	types.PartRibcage:  {R: 0xe8, G: 0xe0, B: 0xc8, A: 0xff},
	types.PartLeftArm:  {R: 0xe3, G: 0xd9, B: 0xbd, A: 0xff},
	types.PartRightArm: {R: 0xe3, G: 0xd9, B: 0xbd, A: 0xff},
	types.PartLeftLeg:  {R: 0xdc, G: 0xd1, B: 0xb2, A: 0xff},
	types.PartRightLeg: {R: 0xdc, G: 0xd1, B: 0xb2, A: 0xff},
}

// PuzzleScene ebiten 版拼图场景
type PuzzleScene struct {
	board   *board.Board
	pointer *utils.PointerTracker
	logger  zerolog.Logger
}

// NewPuzzleScene 创建拼图场景
func NewPuzzleScene(b *board.Board) *PuzzleScene {
	return &PuzzleScene{
		board:   b,
		pointer: utils.NewPointerTracker(),
		logger:  logging.For("PuzzleScene"),
	}
}

// Update 读取输入并推进面板
func (s *PuzzleScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.logger.Info().Msg("reset (R)")
		s.board.Reset()
	}

	p := s.pointer.Sample()
	s.board.Pointer(float64(p.X), float64(p.Y), p.Pressed)
	s.board.Update(deltaTime)
}

// Draw 绘制当前画面
func (s *PuzzleScene) Draw(screen *ebiten.Image) {
	snap := s.board.Snapshot()
	screen.Fill(backgroundColor)

	fillRect(screen, snap.Boneyard, boneyardColor)
	ebitenutil.DebugPrintAt(screen, "Bone Yard", int(snap.Boneyard.X), int(snap.Boneyard.Y)-debugCharHeight)

	for _, slot := range snap.Slots {
		s.drawSlot(screen, slot)
	}
	for _, n := range snap.Nodes {
		s.drawNode(screen, n)
	}

	ebitenutil.DebugPrintAt(screen, "Time: "+snap.TimerText, int(config.TimerTextX), int(config.TimerTextY))
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Placed: %d/%d", snap.Drops, types.PartCount), int(config.TimerTextX)+120, int(config.TimerTextY))

	fillRect(screen, snap.ResetButton, buttonColor)
	drawCenteredText(screen, "Reset", snap.ResetButton)

	if snap.Victory.IsVisible {
		s.drawVictory(screen, snap.Victory)
	}
}

// OnExit 退出时停止计时器
func (s *PuzzleScene) OnExit() {
	s.board.Stop()
}

func (s *PuzzleScene) drawSlot(screen *ebiten.Image, slot board.SlotView) {
	if slot.Highlighted {
		fillRect(screen, slot.Rect, color.NRGBA{R: highlightColor.R, G: highlightColor.G, B: highlightColor.B, A: 0x60})
		strokeRect(screen, slot.Rect, 3, highlightColor)
	} else {
		strokeRect(screen, slot.Rect, 1, outlineColor)
	}
	if !slot.Occupied {
		drawCenteredText(screen, shortLabel(slot.Part), slot.Rect)
	}
}

func (s *PuzzleScene) drawNode(screen *ebiten.Image, n board.NodeView) {
	if n.Kind == layout.KindPlaceholder {
		strokeRect(screen, n.Rect, 1, placeholderColor)
		return
	}
	c := boneColors[n.Part]
	if n.Dragging {
		fillRect(screen, n.Rect, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xd0})
	} else {
		fillRect(screen, n.Rect, c)
	}
	strokeRect(screen, n.Rect, 1, color.Black)
	if !n.Placed {
		drawCenteredText(screen, shortLabel(n.Part), n.Rect)
	}
}

func (s *PuzzleScene) drawVictory(screen *ebiten.Image, v components.VictoryPanelComponent) {
	alpha := utils.EaseOutCubic(v.FadeAlpha)
	shade := color.RGBA{A: uint8(0x90 * alpha)}
	fillRect(screen, layout.Rect{W: config.ScreenWidth, H: config.ScreenHeight}, shade)

	panel := config.VictoryPanelRect()
	bg := color.NRGBA{R: boneyardColor.R, G: boneyardColor.G, B: boneyardColor.B, A: uint8(0xff * alpha)}
	fillRect(screen, panel, bg)
	strokeRect(screen, panel, 2, highlightColor)

	lines := board.VictoryLines(v)
	y := int(panel.Y) + 30
	for _, line := range lines {
		x := int(panel.X + (panel.W-float64(len(line)*debugCharWidth))/2)
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += 2 * debugCharHeight
	}
}

// shortLabel 槽位和骨头上显示的简短名称
func shortLabel(p types.Part) string {
	switch p {
	case types.PartLeftArm:
		return "L.Arm"
	case types.PartRightArm:
		return "R.Arm"
	case types.PartLeftLeg:
		return "L.Leg"
	case types.PartRightLeg:
		return "R.Leg"
	default:
		return p.String()
	}
}

func fillRect(dst *ebiten.Image, r layout.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(dst *ebiten.Image, r layout.Rect, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}

func drawCenteredText(dst *ebiten.Image, s string, r layout.Rect) {
	x := r.X + (r.W-float64(len(s)*debugCharWidth))/2
	y := r.Y + (r.H-debugCharHeight)/2
	ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
}
