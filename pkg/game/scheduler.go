package game

import (
	"sync"
	"time"
)

// Clock 时间来源，测试时注入假时钟
type Clock interface {
	Now() time.Time
}

// SystemClock 使用系统时间
type SystemClock struct{}

// Now 返回当前时间
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Cancel 取消一个周期回调，可重复调用
type Cancel func()

// Scheduler 周期回调调度器
//
// 所有回调都在拥有该调度器的事件循环上执行：
//   - TickScheduler 由帧循环的 Update(deltaTime) 驱动（ebiten、测试）
//   - TickerScheduler 使用 time.Ticker，并把回调投递回事件循环（tcell）
type Scheduler interface {
	Every(interval time.Duration, fn func()) Cancel
}

// ========== TickScheduler ==========

type tickEntry struct {
	interval  time.Duration
	elapsed   time.Duration
	fn        func()
	cancelled bool
}

// TickScheduler 帧驱动的调度器
type TickScheduler struct {
	entries []*tickEntry
}

// NewTickScheduler 创建帧驱动调度器
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{entries: make([]*tickEntry, 0)}
}

// Every 注册周期回调
func (s *TickScheduler) Every(interval time.Duration, fn func()) Cancel {
	if interval <= 0 || fn == nil {
		return func() {}
	}
	e := &tickEntry{interval: interval, fn: fn}
	s.entries = append(s.entries, e)
	return func() {
		e.cancelled = true
		s.compact()
	}
}

// Update 推进时间（秒），与场景的 Update(deltaTime) 约定一致
func (s *TickScheduler) Update(deltaTime float64) {
	s.Advance(time.Duration(deltaTime * float64(time.Second)))
}

// Advance 推进时间，到期的回调按注册顺序触发
// 一次推进跨越多个周期时，回调会触发多次
func (s *TickScheduler) Advance(d time.Duration) {
	// 回调中可能注册或取消其他回调，遍历快照
	snapshot := make([]*tickEntry, len(s.entries))
	copy(snapshot, s.entries)

	for _, e := range snapshot {
		if e.cancelled {
			continue
		}
		e.elapsed += d
		for e.elapsed >= e.interval && !e.cancelled {
			e.elapsed -= e.interval
			e.fn()
		}
	}
}

// Pending 当前有效的周期回调数量
func (s *TickScheduler) Pending() int {
	n := 0
	for _, e := range s.entries {
		if !e.cancelled {
			n++
		}
	}
	return n
}

func (s *TickScheduler) compact() {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if !e.cancelled {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

// ========== TickerScheduler ==========

// TickerScheduler 基于 time.Ticker 的调度器
// 每个周期回调占用一个 goroutine，到期时通过 post 把回调交还给事件循环，
// 因此回调本身永远不会在 ticker goroutine 上执行
type TickerScheduler struct {
	post func(func())

	mu      sync.Mutex
	cancels map[int]Cancel
	nextID  int
}

// NewTickerScheduler 创建 ticker 调度器
//
// 参数：
//   - post: 将回调投递到事件循环的函数（如 tcell 的 PostEvent），不能阻塞
func NewTickerScheduler(post func(func())) *TickerScheduler {
	return &TickerScheduler{
		post:    post,
		cancels: make(map[int]Cancel),
	}
}

// Every 注册周期回调
func (s *TickerScheduler) Every(interval time.Duration, fn func()) Cancel {
	if interval <= 0 || fn == nil {
		return func() {}
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	ticker := time.NewTicker(interval)

	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				select {
				case <-stop:
					return
				default:
					s.post(fn)
				}
			}
		}
	}()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(stop)
			<-done
			s.mu.Lock()
			delete(s.cancels, id)
			s.mu.Unlock()
		})
	}
	s.cancels[id] = cancel
	s.mu.Unlock()

	return cancel
}

// Close 取消全部周期回调并等待 goroutine 退出
func (s *TickerScheduler) Close() {
	s.mu.Lock()
	cancels := make([]Cancel, 0, len(s.cancels))
	for _, c := range s.cancels {
		cancels = append(cancels, c)
	}
	s.mu.Unlock()

	for _, c := range cancels {
		c()
	}
}
