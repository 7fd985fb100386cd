package sfx

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/logging"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

// Player 把游戏事件映射为音效，作为事件监听者挂到拼图面板上
// 未初始化（或初始化失败）时所有播放都是空操作
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      zerolog.Logger
}

// NewPlayer 创建音效播放器
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logging.For("Sfx"),
	}
}

// Init 初始化扬声器
// 失败时返回错误，播放器保持静音
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled 是否会出声
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Close 停止所有声音
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// OnLifted 拿起没有音效
func (p *Player) OnLifted(types.Part) {}

// OnPlaced 放置成功
func (p *Player) OnPlaced(types.Part, int) {
	p.play(Snap(SampleRate, p.volume))
}

// OnReverted 骨头回到托盘
func (p *Player) OnReverted(types.Part) {
	p.play(Thud(SampleRate, p.volume))
}

// OnMismatch 放错时只在随后的回退里出声
func (p *Player) OnMismatch(bone, target types.Part) {
	p.logger.Debug().Str("bone", bone.Slug()).Str("outline", target.Slug()).Msg("mismatch")
}

// OnWin 胜利
func (p *Player) OnWin(int64, int64, bool) {
	p.play(Fanfare(SampleRate, p.volume))
}

// OnReset 重置时停掉还在播放的音效
func (p *Player) OnReset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
