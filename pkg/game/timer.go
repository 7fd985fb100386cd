package game

import (
	"fmt"
	"time"
)

// DefaultRefreshInterval 计时器显示刷新周期
const DefaultRefreshInterval = 100 * time.Millisecond

// TimerState 计时器状态
type TimerState int

const (
	// TimerStopped 已停止（或从未启动）
	TimerStopped TimerState = iota
	// TimerRunning 运行中
	TimerRunning
)

// GameTimer 拼图用时计时器
//
// 第一次拖拽时启动，胜利时停止。运行期间按固定周期把格式化后的用时
// 发布给 onRefresh（界面上的计时文本）。
type GameTimer struct {
	clock     Clock
	scheduler Scheduler
	interval  time.Duration
	onRefresh func(text string)

	state     TimerState
	epoch     time.Time
	stoppedAt time.Time
	cancel    Cancel
}

// NewGameTimer 创建计时器
//
// 参数：
//   - clock: 时间来源，nil 时使用系统时间
//   - scheduler: 周期刷新调度器
//   - interval: 刷新周期，<= 0 时使用 DefaultRefreshInterval
//   - onRefresh: 刷新回调，可为 nil
func NewGameTimer(clock Clock, scheduler Scheduler, interval time.Duration, onRefresh func(string)) *GameTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &GameTimer{
		clock:     clock,
		scheduler: scheduler,
		interval:  interval,
		onRefresh: onRefresh,
	}
}

// Start 启动计时器，运行中再次调用无效
// 启动前先清掉残留的刷新周期，保证任何时刻至多一个刷新周期
func (t *GameTimer) Start() {
	if t.state == TimerRunning {
		return
	}
	t.clearCycle()

	t.epoch = t.clock.Now()
	t.stoppedAt = time.Time{}
	t.state = TimerRunning

	if t.scheduler != nil {
		t.cancel = t.scheduler.Every(t.interval, t.refresh)
	}
	t.refresh()
}

// Stop 停止计时器并冻结用时，可重复调用
func (t *GameTimer) Stop() {
	t.clearCycle()
	if t.state == TimerRunning {
		t.stoppedAt = t.clock.Now()
	}
	t.state = TimerStopped
}

// Clear 停止并清零，用时回到 0
func (t *GameTimer) Clear() {
	t.Stop()
	t.epoch = time.Time{}
	t.stoppedAt = time.Time{}
}

// State 当前状态
func (t *GameTimer) State() TimerState {
	return t.state
}

// IsRunning 是否运行中
func (t *GameTimer) IsRunning() bool {
	return t.state == TimerRunning
}

// Epoch 启动时刻，未启动时为零值
func (t *GameTimer) Epoch() time.Time {
	return t.epoch
}

// Elapsed 已用时间，停止后返回停止时刻的值
func (t *GameTimer) Elapsed() time.Duration {
	if t.epoch.IsZero() {
		return 0
	}
	if t.state == TimerRunning {
		return t.clock.Now().Sub(t.epoch)
	}
	return t.stoppedAt.Sub(t.epoch)
}

// ElapsedMillis 已用毫秒数
func (t *GameTimer) ElapsedMillis() int64 {
	return t.Elapsed().Milliseconds()
}

func (t *GameTimer) refresh() {
	if t.onRefresh != nil {
		t.onRefresh(FormatTime(t.ElapsedMillis()))
	}
}

func (t *GameTimer) clearCycle() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// FormatTime 将毫秒格式化为 MM:SS
// 秒数向下取整（不四舍五入），分钟不按 60 回绕
func FormatTime(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
