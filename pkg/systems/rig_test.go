package systems

import (
	"testing"
	"time"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/components"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/config"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/ecs"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/entities"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/game"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// memStore 内存版最佳用时仓库
type memStore struct {
	best    int64
	has     bool
	saves   []int64
	loadErr error
}

func (m *memStore) Load() (int64, bool, error) {
	if m.loadErr != nil {
		return 0, false, m.loadErr
	}
	return m.best, m.has, nil
}

func (m *memStore) Save(ms int64) error {
	if ms <= 0 {
		return game.ErrInvalidBestTime
	}
	m.saves = append(m.saves, ms)
	m.best = ms
	m.has = true
	return nil
}

// recordingListener 记录事件顺序
type recordingListener struct {
	NopListener
	events []string
}

func (r *recordingListener) OnLifted(p types.Part) { r.events = append(r.events, "lift:"+p.Slug()) }
func (r *recordingListener) OnPlaced(p types.Part, _ int) {
	r.events = append(r.events, "place:"+p.Slug())
}
func (r *recordingListener) OnReverted(p types.Part) { r.events = append(r.events, "revert:"+p.Slug()) }
func (r *recordingListener) OnMismatch(b, t types.Part) {
	r.events = append(r.events, "mismatch:"+b.Slug()+">"+t.Slug())
}
func (r *recordingListener) OnWin(int64, int64, bool) { r.events = append(r.events, "win") }
func (r *recordingListener) OnReset() { r.events = append(r.events, "reset") }

// testRig 组装完整的拼图系统（不依赖任何前端）
type testRig struct {
	em        *ecs.EntityManager
	doc       *layout.Document
	board     *entities.BoardEntities
	clock     *fakeClock
	scheduler *game.TickScheduler
	session   *game.SessionState
	timer     *game.GameTimer
	store     *memStore
	listener  *recordingListener

	placeholders *PlaceholderSystem
	drag         *DragSystem
	placement    *PlacementSystem
	win          *WinSystem
	input        *InputSystem
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()

	r := &testRig{
		em:        ecs.NewEntityManager(),
		doc:       layout.NewDocument(),
		clock:     newFakeClock(),
		scheduler: game.NewTickScheduler(),
		session:   game.NewSessionState(),
		store:     &memStore{},
		listener:  &recordingListener{},
	}

	board, err := entities.NewBoardEntities(r.em, r.doc)
	if err != nil {
		t.Fatalf("NewBoardEntities: %v", err)
	}
	r.board = board

	r.timer = game.NewGameTimer(r.clock, r.scheduler, 0, func(text string) {
		if hud, ok := ecs.GetComponent[*components.TimerDisplayComponent](r.em, board.TimerDisplay); ok {
			hud.Text = text
		}
	})

	listeners := Listeners{r.listener}
	r.placeholders = NewPlaceholderSystem(r.em, r.doc)
	r.drag = NewDragSystem(r.em, r.doc, r.placeholders, r.session, r.timer, listeners)
	r.placement = NewPlacementSystem(r.em, r.doc, r.placeholders, nil, listeners)
	r.win = NewWinSystem(r.em, r.doc, r.placeholders, r.session, r.timer, r.store, WinSystemConfig{
		BoneyardID:  config.BoneyardID,
		PanelEntity: board.VictoryPanel,
		HUDEntity:   board.TimerDisplay,
	}, listeners)
	r.placement.SetObserver(r.win)
	r.input = NewInputSystem(r.em, r.doc, r.drag, r.placement, 0)
	r.win.SetGestureCanceler(r.input)
	return r
}

func (r *testRig) bone(p types.Part) *components.BoneComponent {
	bone, _ := ecs.GetComponent[*components.BoneComponent](r.em, r.board.Bones[p])
	return bone
}

func (r *testRig) node(p types.Part) *layout.Node {
	n, _ := r.doc.NodeByID(types.ItemID(p))
	return n
}

func (r *testRig) yard() *layout.Container {
	c, _ := r.doc.Container(config.BoneyardID)
	return c
}

func (r *testRig) hudText() string {
	hud, _ := ecs.GetComponent[*components.TimerDisplayComponent](r.em, r.board.TimerDisplay)
	return hud.Text
}

func (r *testRig) panel() *components.VictoryPanelComponent {
	p, _ := ecs.GetComponent[*components.VictoryPanelComponent](r.em, r.board.VictoryPanel)
	return p
}

// pickUp 按住骨头中心并移出死区，返回当前指针位置
func (r *testRig) pickUp(p types.Part) (float64, float64) {
	cx, cy := r.doc.BoundingBox(r.node(p)).Center()
	r.input.HandlePointer(cx, cy, true)
	r.input.HandlePointer(cx+DefaultDragDeadZone+1, cy, true)
	return cx + DefaultDragDeadZone + 1, cy
}

// moveOver 把拖拽中的骨头中心移到目标轮廓中心
func (r *testRig) moveOver(target types.Part) (float64, float64) {
	tx, ty := config.OutlineSlot(target).Center()
	r.input.HandlePointer(tx, ty, true)
	return tx, ty
}

// dropOn 完整手势：拿起 part，移到 target 上松开
func (r *testRig) dropOn(part, target types.Part) {
	r.pickUp(part)
	x, y := r.moveOver(target)
	r.input.HandlePointer(x, y, false)
}

// yardOrder 托盘当前子节点 ID
func (r *testRig) yardOrder() []string {
	var ids []string
	for _, n := range r.yard().Children() {
		ids = append(ids, n.ID)
	}
	return ids
}

func (r *testRig) placeholderCount() int {
	count := 0
	for _, c := range r.doc.Containers() {
		for _, n := range c.Children() {
			if n.Kind == layout.KindPlaceholder {
				count++
			}
		}
	}
	return count
}

func canonicalYardOrder() []string {
	var ids []string
	for _, p := range types.AllParts() {
		ids = append(ids, types.ItemID(p))
	}
	return ids
}
