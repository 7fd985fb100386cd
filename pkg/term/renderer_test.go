package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/board"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/config"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
)

type fakeCanvas struct {
	cols, rows int
	cells      [][]rune
}

func newFakeCanvas(cols, rows int) *fakeCanvas {
	c := &fakeCanvas{cols: cols, rows: rows, cells: make([][]rune, rows)}
	for y := range c.cells {
		c.cells[y] = make([]rune, cols)
	}
	return c
}

func (c *fakeCanvas) Size() (int, int) { return c.cols, c.rows }

func (c *fakeCanvas) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.cells[y][x] = primary
}

func (c *fakeCanvas) row(y int) string {
	return string(c.cells[y])
}

func (c *fakeCanvas) text() string {
	var sb strings.Builder
	for y := range c.cells {
		sb.WriteString(c.row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestGridConversions(t *testing.T) {
	g := Grid{Cols: 80, Rows: 30}

	x, y := g.ToBoard(0, 0)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 10.0, y)

	col, row := g.ToCell(585, 110)
	assert.Equal(t, 58, col)
	assert.Equal(t, 5, row)

	x0, y0, x1, y1 := g.Cells(layout.Rect{X: 20, Y: 80, W: 330, H: 420})
	assert.Equal(t, []int{2, 4, 34, 24}, []int{x0, y0, x1, y1})

	// 小于一格的矩形至少占一格
	x0, y0, x1, y1 = g.Cells(layout.Rect{X: 3, Y: 3, W: 1, H: 1})
	assert.Equal(t, []int{0, 0, 0, 0}, []int{x0, y0, x1, y1})
}

func TestRendererDrawsInitialBoard(t *testing.T) {
	b, err := board.New(board.Options{})
	require.NoError(t, err)
	defer b.Stop()

	canvas := newFakeCanvas(80, 30)
	NewRenderer(canvas).Draw(b.Snapshot())

	assert.True(t, strings.HasPrefix(canvas.row(0), "Time 00:00  Placed 0/6"))
	out := canvas.text()
	assert.Contains(t, out, "Bone Yard")
	assert.Contains(t, out, "Reset")
	assert.Contains(t, out, "Skull")
	assert.NotContains(t, out, "Skeleton complete!")
}

func TestRendererDrawsVictoryPanel(t *testing.T) {
	b, err := board.New(board.Options{})
	require.NoError(t, err)
	defer b.Stop()

	snap := b.Snapshot()
	snap.Victory.IsVisible = true
	snap.Victory.FinalTime = "00:42"
	snap.Victory.BestTime = "00:42"
	snap.Victory.NewRecord = true

	canvas := newFakeCanvas(100, 40)
	NewRenderer(canvas).Draw(snap)

	out := canvas.text()
	assert.Contains(t, out, "Skeleton complete!")
	assert.Contains(t, out, "Your time: 00:42")
	assert.Contains(t, out, "New record!")
}

func TestStatusLine(t *testing.T) {
	line := StatusLine(board.Snapshot{TimerText: "01:05", Drops: 3})
	assert.Equal(t, "Time 01:05  Placed 3/6  [r] reset  [q] quit", line)
	assert.Less(t, len(line), config.ScreenWidth)
}
