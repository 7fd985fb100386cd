// Package logging 配置全局 zerolog 日志
//
// 各子系统通过 For("Component") 取得带 component 字段的子 logger，
// 对应过去 log.Printf("[Component] ...") 的写法。
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup 初始化全局 logger
//
// 参数：
//   - level: 日志级别（debug/info/warn/error/disabled），无法解析时使用 info
//   - verbose: 为 true 时强制 debug 级别
//   - w: 输出目标，nil 表示 stderr
func Setup(level string, verbose bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		With().
		Timestamp().
		Logger()
}

// For 返回带 component 字段的子 logger
func For(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
