package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/board"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/game"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/logging"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/systems"
)

// DefaultFrameInterval 终端重绘周期
const DefaultFrameInterval = 33 * time.Millisecond

// Options 终端前端参数
type Options struct {
	Store           systems.BestTimeRepository
	Listeners       []systems.EventListener
	RefreshInterval time.Duration
	DragDeadZone    float64
	// FrameInterval <= 0 时为 DefaultFrameInterval
	FrameInterval time.Duration
}

// 通过 EventInterrupt 投递到事件循环的消息
type (
	frameTick  struct{}
	quitSignal struct{}
)

// Terminal 在 tcell 屏幕上运行一局拼图
// 所有面板操作都发生在事件循环所在的 goroutine 上
type Terminal struct {
	screen   tcell.Screen
	board    *board.Board
	sched    *game.TickerScheduler
	renderer *Renderer
	frame    time.Duration
	logger   zerolog.Logger
}

// NewScreen 创建并初始化系统终端屏幕
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	return screen, nil
}

// New 创建终端前端，screen 必须已经 Init
func New(screen tcell.Screen, opts Options) (*Terminal, error) {
	t := &Terminal{
		screen:   screen,
		renderer: NewRenderer(screen),
		frame:    opts.FrameInterval,
		logger:   logging.For("Terminal"),
	}
	if t.frame <= 0 {
		t.frame = DefaultFrameInterval
	}
	t.sched = game.NewTickerScheduler(t.post)

	b, err := board.New(board.Options{
		Scheduler:       t.sched,
		Store:           opts.Store,
		Listeners:       opts.Listeners,
		RefreshInterval: opts.RefreshInterval,
		DragDeadZone:    opts.DragDeadZone,
	})
	if err != nil {
		return nil, err
	}
	t.board = b
	return t, nil
}

// Board 返回拼图面板
func (t *Terminal) Board() *board.Board {
	return t.board
}

// Run 运行事件循环，直到按下 q / Esc 或 ctx 被取消
// 返回前会停止计时器并调用 screen.Fini
func (t *Terminal) Run(ctx context.Context) error {
	t.screen.EnableMouse()
	t.screen.HideCursor()
	defer t.screen.Fini()
	defer t.sched.Close()
	defer t.board.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	loopDone := make(chan struct{})
	g.Go(func() error {
		defer close(loopDone)
		defer cancel()
		return t.loop()
	})

	g.Go(func() error {
		ticker := time.NewTicker(t.frame)
		defer ticker.Stop()
		for {
			select {
			case <-loopDone:
				return nil
			case <-ctx.Done():
				// 唤醒阻塞在 PollEvent 上的事件循环，队列满时下一帧重试
				for {
					if t.screen.PostEvent(tcell.NewEventInterrupt(quitSignal{})) == nil {
						return nil
					}
					select {
					case <-loopDone:
						return nil
					case <-ticker.C:
					}
				}
			case <-ticker.C:
				t.send(frameTick{})
			}
		}
	})

	t.logger.Info().Dur("frame", t.frame).Msg("terminal started")
	err := g.Wait()
	t.logger.Info().Msg("terminal stopped")
	return err
}

func (t *Terminal) loop() error {
	t.draw()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !t.handleEvent(ev) {
			return nil
		}
	}
}

// post 调度器回调投递
func (t *Terminal) post(fn func()) {
	t.send(fn)
}

func (t *Terminal) send(data interface{}) {
	if err := t.screen.PostEvent(tcell.NewEventInterrupt(data)); err != nil {
		t.logger.Debug().Err(err).Msg("event queue full, dropped")
	}
}

// handleEvent 处理一个事件，返回 false 表示退出
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case func():
			data()
		case frameTick:
			t.board.Update(t.frame.Seconds())
			t.draw()
		case quitSignal:
			return false
		}
	case *tcell.EventKey:
		return t.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.pointer(x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		t.screen.Sync()
		t.draw()
	}
	return true
}

func (t *Terminal) handleKey(key tcell.Key, ch rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return false
		case 'r', 'R':
			t.logger.Info().Msg("reset (r)")
			t.board.Reset()
			t.draw()
		}
	}
	return true
}

// pointer 把字符格坐标换算成面板坐标后交给面板
func (t *Terminal) pointer(col, row int, pressed bool) {
	cols, rows := t.screen.Size()
	x, y := Grid{Cols: cols, Rows: rows}.ToBoard(col, row)
	t.board.Pointer(x, y, pressed)
	t.draw()
}

func (t *Terminal) draw() {
	t.renderer.Draw(t.board.Snapshot())
	t.screen.Show()
}
