// skeleton-builder 拖拽骨头拼出完整骨架的小游戏
//
// 用法：
//
//	skeleton-builder              # 等同于 play，打开 ebiten 窗口
//	skeleton-builder term         # 在终端中游玩（需要支持鼠标的终端）
//	skeleton-builder best-time show|clear
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env 不存在时忽略
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("exit")
		os.Exit(1)
	}
}
