package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix 环境变量前缀，如 SKELETON_LOG_LEVEL
const EnvPrefix = "SKELETON_"

// EnvConfigPath 指定配置文件路径的环境变量
const EnvConfigPath = "SKELETON_CONFIG"

// metricNamePattern Prometheus 指标名允许的字符
var metricNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// 配置错误
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// AppConfig 程序配置
type AppConfig struct {
	// LogLevel 日志级别：debug, info, warn, error
	LogLevel string `koanf:"log_level"`

	// AppName gdata 存储使用的应用名
	AppName string `koanf:"app_name"`

	// WindowWidth / WindowHeight 窗口尺寸（逻辑分辨率固定为 ScreenWidth x ScreenHeight）
	WindowWidth  int `koanf:"window_width"`
	WindowHeight int `koanf:"window_height"`

	// Sound 是否播放音效
	Sound bool `koanf:"sound"`

	// MetricsAddr Prometheus 监听地址，为空时不启动
	MetricsAddr string `koanf:"metrics_addr"`

	// MetricsNamespace 指标名前缀，如 skeleton_puzzle_wins_total 中的 skeleton
	MetricsNamespace string `koanf:"metrics_namespace"`

	// RefreshIntervalMS 计时文本刷新周期（毫秒）
	RefreshIntervalMS int `koanf:"refresh_interval_ms"`

	// DragDeadZone 拖拽死区（像素）
	DragDeadZone float64 `koanf:"drag_dead_zone"`
}

// Default 返回默认配置
func Default() *AppConfig {
	return &AppConfig{
		LogLevel:          "info",
		AppName:           "skeleton_builder",
		WindowWidth:       ScreenWidth,
		WindowHeight:      ScreenHeight,
		Sound:             true,
		MetricsAddr:       "",
		MetricsNamespace:  "skeleton",
		RefreshIntervalMS: 100,
		DragDeadZone:      4,
	}
}

// RefreshInterval 刷新周期
func (c *AppConfig) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalMS) * time.Millisecond
}

// Validate 校验配置
func (c *AppConfig) Validate() error {
	if c.AppName == "" {
		return fmt.Errorf("%w: app_name must not be empty", ErrInvalidConfig)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	if c.RefreshIntervalMS <= 0 {
		return fmt.Errorf("%w: refresh_interval_ms must be positive, got %d", ErrInvalidConfig, c.RefreshIntervalMS)
	}
	if !metricNamePattern.MatchString(c.MetricsNamespace) {
		return fmt.Errorf("%w: metrics_namespace %q is not a valid metric name prefix", ErrInvalidConfig, c.MetricsNamespace)
	}
	if c.DragDeadZone < 0 {
		return fmt.Errorf("%w: drag_dead_zone must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Load 按优先级（低 -> 高）合并配置：
//  1. 默认值
//  2. YAML 文件（path 参数，为空时读取 SKELETON_CONFIG）
//  3. 环境变量（前缀 SKELETON_）
func Load(path string) (*AppConfig, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrLoadConfig, path, err)
		}
	}

	// SKELETON_LOG_LEVEL -> log_level，保留下划线以匹配 koanf 标签
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrLoadConfig, err)
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
