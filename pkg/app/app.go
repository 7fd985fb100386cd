// Package app 提供 ebiten 窗口版的应用包装器
//
// 该包把配置、拼图面板和场景管理器组装在一起，main 包只负责
// 准备存储、音效和指标，然后交给 ebiten.RunGame。
package app

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/board"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/config"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/game"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/logging"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/scenes"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/systems"
)

// Options 定义应用启动参数
type Options struct {
	// Config 已加载并校验过的应用配置
	Config config.AppConfig
	// Store 最佳用时仓库，nil 时不记录
	Store systems.BestTimeRepository
	// Listeners 音效、指标等事件监听者
	Listeners []systems.EventListener
	// Context 取消后游戏循环退出，nil 表示只能关窗口退出
	Context context.Context
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	ctx                      context.Context
	sceneManager             *game.SceneManager
	board                    *board.Board
	windowWidth              int
	windowHeight             int
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	logger                   zerolog.Logger
}

// NewApp 创建并初始化应用
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	b, err := board.New(board.Options{
		Store:           opts.Store,
		Listeners:       opts.Listeners,
		RefreshInterval: cfg.RefreshInterval(),
		DragDeadZone:    cfg.DragDeadZone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewPuzzleScene(b))

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	return &App{
		ctx:          ctx,
		sceneManager: sceneManager,
		board:        b,
		windowWidth:  cfg.WindowWidth,
		windowHeight: cfg.WindowHeight,
		logger:       logging.For("App"),
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	select {
	case <-a.ctx.Done():
		a.logger.Info().Err(context.Cause(a.ctx)).Msg("context done, leaving game loop")
		return ebiten.Termination
	default:
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.windowWidth, a.windowHeight)
			a.logger.Debug().Int("width", a.windowWidth).Int("height", a.windowHeight).Msg("delayed SetWindowSize")
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.logger.Debug().Msg("exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸，缩放由 ebiten 处理
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Board 返回拼图面板
func (a *App) Board() *board.Board {
	return a.board
}

// Shutdown 关闭当前场景（停止计时器）
func (a *App) Shutdown() {
	a.sceneManager.Shutdown()
}
