// Package sfx 合成的短音效：放置、回退、胜利
//
// 所有音效都由振荡器和包络实时合成，不依赖音频资源文件。
package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate 音效采样率
const SampleRate = beep.SampleRate(44100)

// Wave 波形
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// tone 固定频率、固定长度的振荡器
type tone struct {
	freq     float64
	wave     Wave
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

// newTone 创建振荡器
func newTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) *tone {
	return &tone{
		freq:   freq,
		wave:   wave,
		length: rate.N(d),
		rate:   rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.length {
			return i, true
		}

		var v float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// decay 指数衰减包络，起音用线性淡入避免爆音
type decay struct {
	streamer beep.Streamer
	attack   int
	tau      float64
	position int
}

func newDecay(s beep.Streamer, attack, tau time.Duration, rate beep.SampleRate) *decay {
	return &decay{
		streamer: s,
		attack:   rate.N(attack),
		tau:      float64(rate.N(tau)),
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := math.Exp(-float64(d.position) / d.tau)
		if d.position < d.attack && d.attack > 0 {
			gain *= float64(d.position) / float64(d.attack)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// withVolume 线性音量 (0 - 1)，0 为静音
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note 一个带包络的音符
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return newDecay(newTone(freq, d, wave, rate), 4*time.Millisecond, d/3, rate)
}

// Snap 放置成功：两个快速上行的高音
func Snap(rate beep.SampleRate, vol float64) beep.Streamer {
	return withVolume(beep.Seq(
		note(1046.50, 45*time.Millisecond, WaveSine, rate),
		note(1567.98, 70*time.Millisecond, WaveSine, rate),
	), vol)
}

// Thud 骨头回到托盘：低沉的方波
func Thud(rate beep.SampleRate, vol float64) beep.Streamer {
	return withVolume(note(98, 140*time.Millisecond, WaveSquare, rate), vol*0.5)
}

// Fanfare 胜利：C 大调琶音，最后一个音延长
func Fanfare(rate beep.SampleRate, vol float64) beep.Streamer {
	return withVolume(beep.Seq(
		note(523.25, 110*time.Millisecond, WaveTriangle, rate),
		note(659.25, 110*time.Millisecond, WaveTriangle, rate),
		note(783.99, 110*time.Millisecond, WaveTriangle, rate),
		beep.Mix(
			note(1046.50, 420*time.Millisecond, WaveTriangle, rate),
			withVolume(note(523.25, 420*time.Millisecond, WaveSine, rate), 0.5),
		),
	), vol)
}
