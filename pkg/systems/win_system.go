package systems

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/components"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/ecs"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/game"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/layout"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/logging"
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/types"
)

// BestTimeRepository 最佳用时存取
// Load 返回 (毫秒, 是否存在, 错误)
type BestTimeRepository interface {
	Load() (int64, bool, error)
	Save(ms int64) error
}

// GestureCanceler 取消进行中的指针手势
type GestureCanceler interface {
	Cancel()
}

// WinSystem 胜利检测与重置控制器
//
// 持有会话状态：每次成功放置计数加一，达到阈值时停止计时、比较并保存最佳用时、
// 显示胜利面板。Reset 把整局恢复到初始状态。
type WinSystem struct {
	entityManager *ecs.EntityManager
	doc           *layout.Document
	placeholders  *PlaceholderSystem
	session       *game.SessionState
	timer         *game.GameTimer
	store         BestTimeRepository
	canceler      GestureCanceler
	listeners     Listeners
	logger        zerolog.Logger

	threshold   int
	boneyardID  string
	panelEntity ecs.EntityID
	hudEntity   ecs.EntityID
}

// WinSystemConfig 胜利系统依赖的实体与参数
type WinSystemConfig struct {
	// Threshold 胜利所需的成功放置次数，<= 0 时为 types.PartCount
	Threshold int
	// BoneyardID 骨头托盘容器 ID
	BoneyardID string
	// PanelEntity 带 VictoryPanelComponent 的实体
	PanelEntity ecs.EntityID
	// HUDEntity 带 TimerDisplayComponent 的实体
	HUDEntity ecs.EntityID
}

// NewWinSystem 创建胜利系统
// store 为 nil 时不读写最佳用时
func NewWinSystem(em *ecs.EntityManager, doc *layout.Document, ps *PlaceholderSystem, session *game.SessionState, timer *game.GameTimer, store BestTimeRepository, cfg WinSystemConfig, listeners Listeners) *WinSystem {
	if cfg.Threshold <= 0 {
		cfg.Threshold = types.PartCount
	}
	return &WinSystem{
		entityManager: em,
		doc:           doc,
		placeholders:  ps,
		session:       session,
		timer:         timer,
		store:         store,
		listeners:     listeners,
		logger:        logging.For("WinSystem"),
		threshold:     cfg.Threshold,
		boneyardID:    cfg.BoneyardID,
		panelEntity:   cfg.PanelEntity,
		hudEntity:     cfg.HUDEntity,
	}
}

// SetGestureCanceler 设置重置时要取消的手势识别器
func (s *WinSystem) SetGestureCanceler(c GestureCanceler) {
	s.canceler = c
}

// OnPlacement 记录一次成功放置，第 threshold 次触发胜利
func (s *WinSystem) OnPlacement() {
	if s.session.SuccessfulDrops >= s.threshold {
		return
	}
	s.session.SuccessfulDrops++
	s.logger.Debug().Int("drops", s.session.SuccessfulDrops).Msg("placement recorded")
	if s.session.SuccessfulDrops == s.threshold {
		s.win()
	}
}

// win 停止计时，更新最佳用时并显示胜利面板
// 只有严格小于已有记录（或没有记录）时才保存
func (s *WinSystem) win() {
	s.timer.Stop()
	s.session.IsGameActive = false
	s.session.Won = true

	final := s.timer.ElapsedMillis()
	// 存储只接受正数用时
	if final < 1 {
		final = 1
	}
	best, hasBest := s.loadBest()
	newRecord := !hasBest || final < best
	if newRecord {
		best = final
		if s.store != nil {
			if err := s.store.Save(final); err != nil {
				s.logger.Warn().Err(err).Int64("ms", final).Msg("failed to save best time")
			}
		}
	}

	finalText := game.FormatTime(final)
	if hud, ok := ecs.GetComponent[*components.TimerDisplayComponent](s.entityManager, s.hudEntity); ok {
		hud.Text = finalText
	}
	if panel, ok := ecs.GetComponent[*components.VictoryPanelComponent](s.entityManager, s.panelEntity); ok {
		panel.IsVisible = true
		panel.FinalTime = finalText
		panel.BestTime = game.FormatTime(best)
		panel.NewRecord = newRecord
		panel.FadeAlpha = 0
	}

	s.logger.Info().
		Str("session", s.session.ID.String()).
		Int64("final_ms", final).
		Int64("best_ms", best).
		Bool("new_record", newRecord).
		Msg("puzzle solved")
	s.listeners.win(final, best, newRecord)
}

func (s *WinSystem) loadBest() (int64, bool) {
	if s.store == nil {
		return 0, false
	}
	best, ok, err := s.store.Load()
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load best time, treating as no record")
		return 0, false
	}
	return best, ok
}

// Reset 恢复到初始状态
//
// 取消进行中的手势，清零计时器和会话，隐藏胜利面板，删除所有占位符，
// 清除骨头的内联样式与放置状态，并按规范顺序把骨头放回托盘。
// 任何状态下都可以调用，连续调用结果相同。
func (s *WinSystem) Reset() {
	if s.canceler != nil {
		s.canceler.Cancel()
	}
	s.timer.Clear()
	s.session.Reset()

	if hud, ok := ecs.GetComponent[*components.TimerDisplayComponent](s.entityManager, s.hudEntity); ok {
		hud.Text = game.FormatTime(0)
	}
	if panel, ok := ecs.GetComponent[*components.VictoryPanelComponent](s.entityManager, s.panelEntity); ok {
		*panel = components.VictoryPanelComponent{}
	}

	yard, ok := s.doc.Container(s.boneyardID)
	if !ok {
		s.logger.Error().Str("container", s.boneyardID).Msg("boneyard missing, reset aborted")
		return
	}

	boneIDs := ecs.GetEntitiesWith2[*components.BoneComponent, *components.DragComponent](s.entityManager)
	sort.SliceStable(boneIDs, func(i, j int) bool {
		bi, _ := ecs.GetComponent[*components.BoneComponent](s.entityManager, boneIDs[i])
		bj, _ := ecs.GetComponent[*components.BoneComponent](s.entityManager, boneIDs[j])
		return bi.CanonicalIndex < bj.CanonicalIndex
	})

	for _, id := range boneIDs {
		bone, drag, _ := boneParts(s.entityManager, id)
		s.placeholders.Discard(id)
		drag.Clear()
		bone.Status = types.Unplaced
	}
	// 托盘中残留的占位符
	for _, child := range yard.Children() {
		if child.Kind == layout.KindPlaceholder {
			s.doc.Discard(child)
		}
	}
	for _, id := range boneIDs {
		bone, _ := ecs.GetComponent[*components.BoneComponent](s.entityManager, id)
		node, ok := s.doc.NodeByID(bone.NodeID)
		if !ok {
			s.logger.Warn().Str("node", bone.NodeID).Msg("bone node not attached, skipped")
			continue
		}
		node.ClearStyle()
		yard.Append(node)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.OutlineComponent](s.entityManager) {
		outline, _ := ecs.GetComponent[*components.OutlineComponent](s.entityManager, id)
		outline.Occupant = ecs.InvalidEntity
		if hl, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id); ok {
			hl.IsActive = false
			hl.Intensity = 0
		}
	}

	s.doc.Layout()
	s.logger.Info().Str("session", s.session.ID.String()).Msg("board reset")
	s.listeners.reset()
}

// Update 推进胜利面板的淡入
func (s *WinSystem) Update(deltaTime float64) {
	panel, ok := ecs.GetComponent[*components.VictoryPanelComponent](s.entityManager, s.panelEntity)
	if !ok || !panel.IsVisible || panel.FadeAlpha >= 1 {
		return
	}
	panel.FadeAlpha += deltaTime / victoryFadeSeconds
	if panel.FadeAlpha > 1 {
		panel.FadeAlpha = 1
	}
}

const victoryFadeSeconds = 0.4
