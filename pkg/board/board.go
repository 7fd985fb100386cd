// Package board 把布局、实体和各个系统组装成一局完整的骨架拼图
//
// 前端（ebiten 窗口或终端）只需要三件事：把指针采样交给 Pointer，
// 每帧调用 Update，按 Snapshot 绘制。
package board

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/components"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/config"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/ecs"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/entities"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/game"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/logging"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/systems"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

// Options 创建拼图面板的参数
type Options struct {
	// Clock 时间来源，nil 时使用系统时间
	Clock game.Clock
	// Scheduler 计时器刷新调度器，nil 时使用帧驱动的 TickScheduler（由 Update 推进）
	Scheduler game.Scheduler
	// Store 最佳用时仓库，nil 时不记录最佳用时
	Store systems.BestTimeRepository
	// Listeners 事件监听者（音效、指标）
	Listeners []systems.EventListener
	// RefreshInterval 计时文本刷新周期，<= 0 时为 100ms
	RefreshInterval time.Duration
	// DragDeadZone 拖拽死区（像素），<= 0 时为默认值
	DragDeadZone float64
}

// Board 一局骨架拼图
type Board struct {
	em       *ecs.EntityManager
	doc      *layout.Document
	entities *entities.BoardEntities
	session  *game.SessionState
	timer    *game.GameTimer
	ticks    *game.TickScheduler

	placeholders *systems.PlaceholderSystem
	drag         *systems.DragSystem
	placement    *systems.PlacementSystem
	win          *systems.WinSystem
	input        *systems.InputSystem

	resetPressed bool
	logger       zerolog.Logger
}

// New 创建拼图面板，骨头按规范顺序放在托盘中，计时器未启动
func New(opts Options) (*Board, error) {
	b := &Board{
		em:      ecs.NewEntityManager(),
		doc:     layout.NewDocument(),
		session: game.NewSessionState(),
		logger:  logging.For("Board"),
	}

	ents, err := entities.NewBoardEntities(b.em, b.doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create board entities: %w", err)
	}
	b.entities = ents

	scheduler := opts.Scheduler
	if scheduler == nil {
		b.ticks = game.NewTickScheduler()
		scheduler = b.ticks
	}
	b.timer = game.NewGameTimer(opts.Clock, scheduler, opts.RefreshInterval, b.publishTime)

	listeners := systems.Listeners(opts.Listeners)
	b.placeholders = systems.NewPlaceholderSystem(b.em, b.doc)
	b.drag = systems.NewDragSystem(b.em, b.doc, b.placeholders, b.session, b.timer, listeners)
	b.placement = systems.NewPlacementSystem(b.em, b.doc, b.placeholders, nil, listeners)
	b.win = systems.NewWinSystem(b.em, b.doc, b.placeholders, b.session, b.timer, opts.Store, systems.WinSystemConfig{
		Threshold:   types.PartCount,
		BoneyardID:  config.BoneyardID,
		PanelEntity: ents.VictoryPanel,
		HUDEntity:   ents.TimerDisplay,
	}, listeners)
	b.placement.SetObserver(b.win)
	b.input = systems.NewInputSystem(b.em, b.doc, b.drag, b.placement, opts.DragDeadZone)
	b.win.SetGestureCanceler(b.input)

	b.logger.Info().Str("session", b.session.ID.String()).Msg("board created")
	return b, nil
}

// publishTime 计时器刷新回调
func (b *Board) publishTime(text string) {
	if hud, ok := ecs.GetComponent[*components.TimerDisplayComponent](b.em, b.entities.TimerDisplay); ok {
		hud.Text = text
	}
}

// Pointer 处理一次指针采样（屏幕逻辑坐标）
// 在重置按钮上按下并松开触发重置，其余交给手势识别
func (b *Board) Pointer(x, y float64, pressed bool) {
	button := config.ResetButtonRect()

	if b.resetPressed {
		if !pressed {
			b.resetPressed = false
			if button.Contains(x, y) {
				b.Reset()
			}
		}
		return
	}
	if pressed && b.input.State() == systems.GestureIdle && button.Contains(x, y) {
		b.resetPressed = true
		return
	}

	b.input.HandlePointer(x, y, pressed)
}

// Reset 恢复到初始状态
func (b *Board) Reset() {
	b.resetPressed = false
	b.win.Reset()
}

// Update 推进帧驱动的调度器和界面动画
func (b *Board) Update(deltaTime float64) {
	if b.ticks != nil {
		b.ticks.Update(deltaTime)
	}
	b.win.Update(deltaTime)
}

// Session 当前会话状态（只读使用）
func (b *Board) Session() *game.SessionState {
	return b.session
}

// Timer 计时器
func (b *Board) Timer() *game.GameTimer {
	return b.timer
}

// Stop 停止计时器刷新，退出前调用
func (b *Board) Stop() {
	b.timer.Stop()
}
