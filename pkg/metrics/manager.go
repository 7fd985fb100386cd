// Package metrics 拼图游戏的 Prometheus 指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

// Manager 收集游戏事件指标，作为事件监听者挂到拼图面板上
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	lifts         prometheus.Counter
	placements    *prometheus.CounterVec
	reverts       prometheus.Counter
	mismatches    *prometheus.CounterVec
	wins          prometheus.Counter
	newRecords    prometheus.Counter
	resets        prometheus.Counter
	solveDuration prometheus.Histogram
	bestTime      prometheus.Gauge
	boardDrops    prometheus.Gauge
}

// NewManager 创建指标管理器
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "skeleton",
		subsystem:        "puzzle",
		histogramBuckets: []float64{10, 20, 30, 45, 60, 90, 120, 180, 300},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.lifts = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lifts_total",
		Help:      "Bones picked up from the bone yard.",
	})
	m.placements = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "placements_total",
		Help:      "Bones snapped into their outline.",
	}, []string{"part"})
	m.reverts = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reverts_total",
		Help:      "Bones returned to the bone yard.",
	})
	m.mismatches = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "mismatches_total",
		Help:      "Bones dropped on the wrong outline.",
	}, []string{"bone", "outline"})
	m.wins = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "wins_total",
		Help:      "Completed skeletons.",
	})
	m.newRecords = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "new_records_total",
		Help:      "Wins that improved the best time.",
	})
	m.resets = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "resets_total",
		Help:      "Board resets.",
	})
	m.solveDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "solve_duration_seconds",
		Help:      "Time from first drag to the sixth placement.",
		Buckets:   m.histogramBuckets,
	})
	m.bestTime = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "best_time_seconds",
		Help:      "Best completion time known to this process.",
	})
	m.boardDrops = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "placed_bones",
		Help:      "Bones currently placed on the board.",
	})
}

// Registry 返回指标注册表（HTTP 服务使用）
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// OnLifted 骨头被拿起
func (m *Manager) OnLifted(types.Part) {
	m.lifts.Inc()
}

// OnPlaced 骨头放置成功
func (m *Manager) OnPlaced(part types.Part, drops int) {
	m.placements.WithLabelValues(part.Slug()).Inc()
	m.boardDrops.Set(float64(drops))
}

// OnReverted 骨头回到托盘
func (m *Manager) OnReverted(types.Part) {
	m.reverts.Inc()
}

// OnMismatch 骨头放错轮廓
func (m *Manager) OnMismatch(bone, target types.Part) {
	m.mismatches.WithLabelValues(bone.Slug(), target.Slug()).Inc()
}

// OnWin 完成拼图
func (m *Manager) OnWin(finalMs, bestMs int64, newRecord bool) {
	m.wins.Inc()
	m.solveDuration.Observe(float64(finalMs) / 1000)
	m.bestTime.Set(float64(bestMs) / 1000)
	if newRecord {
		m.newRecords.Inc()
	}
}

// OnReset 重置
func (m *Manager) OnReset() {
	m.resets.Inc()
	m.boardDrops.Set(0)
}
