package game

import (
	"errors"
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/logging"
)

// 存储路径常量（固定的 key，跨会话共享）
const (
	recordsObject    = "records"
	bestTimeProperty = "bestTime"
)

// ErrInvalidBestTime 存档中的最佳用时不是正数
var ErrInvalidBestTime = errors.New("invalid best time record")

// BestTimeRecord 存档格式
// 只保存一个毫秒标量
type BestTimeRecord struct {
	BestTimeMs int64 `yaml:"bestTimeMs"`
}

// BestTimeStore 最佳用时存储
//
// 数据通过 gdata 持久化（YAML 格式，与项目其他存档保持一致）。
// gdataManager 为 nil 时进入降级模式：只在内存中保存，不报错。
type BestTimeStore struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	memBest      int64          // 降级模式下的内存记录，0 表示没有记录
}

// NewBestTimeStore 创建最佳用时存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
func NewBestTimeStore(gdataManager *gdata.Manager) *BestTimeStore {
	if gdataManager == nil {
		logger := logging.For("BestTimeStore")
		logger.Warn().Msg("no storage available, best time is kept in memory only")
	}
	return &BestTimeStore{gdataManager: gdataManager}
}

// OpenBestTimeStore 按应用名打开 gdata 存储
// 打开失败时返回降级模式的存储和错误，调用方可以只记录日志继续运行
func OpenBestTimeStore(appName string) (*BestTimeStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewBestTimeStore(nil), fmt.Errorf("failed to open storage %q: %w", appName, err)
	}
	return NewBestTimeStore(manager), nil
}

// Persistent 是否真正持久化
func (s *BestTimeStore) Persistent() bool {
	return s.gdataManager != nil
}

// Load 读取最佳用时
//
// 返回：
//   - ms: 最佳用时（毫秒）
//   - ok: 是否存在记录
//   - error: 读取或反序列化失败
func (s *BestTimeStore) Load() (int64, bool, error) {
	// 降级模式
	if s.gdataManager == nil {
		return s.memBest, s.memBest > 0, nil
	}

	if !s.gdataManager.ObjectPropExists(recordsObject, bestTimeProperty) {
		return 0, false, nil
	}

	data, err := s.gdataManager.LoadObjectProp(recordsObject, bestTimeProperty)
	if err != nil {
		return 0, false, fmt.Errorf("failed to load best time: %w", err)
	}

	var record BestTimeRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return 0, false, fmt.Errorf("failed to unmarshal best time: %w", err)
	}
	if record.BestTimeMs <= 0 {
		return 0, false, fmt.Errorf("%w: %d", ErrInvalidBestTime, record.BestTimeMs)
	}

	return record.BestTimeMs, true, nil
}

// Save 写入最佳用时（不做比较，比较由调用方负责）
func (s *BestTimeStore) Save(ms int64) error {
	if ms <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBestTime, ms)
	}

	if s.gdataManager == nil {
		s.memBest = ms
		return nil
	}

	data, err := yaml.Marshal(BestTimeRecord{BestTimeMs: ms})
	if err != nil {
		return fmt.Errorf("failed to marshal best time: %w", err)
	}

	if err := s.gdataManager.SaveObjectProp(recordsObject, bestTimeProperty, data); err != nil {
		return fmt.Errorf("failed to save best time: %w", err)
	}

	logger := logging.For("BestTimeStore")
	logger.Debug().Int64("ms", ms).Msg("best time saved")
	return nil
}

// Clear 删除最佳用时记录，记录不存在时不报错
func (s *BestTimeStore) Clear() error {
	if s.gdataManager == nil {
		s.memBest = 0
		return nil
	}

	if !s.gdataManager.ObjectPropExists(recordsObject, bestTimeProperty) {
		return nil
	}
	if err := s.gdataManager.DeleteObjectProp(recordsObject, bestTimeProperty); err != nil {
		return fmt.Errorf("failed to delete best time: %w", err)
	}
	return nil
}
