// Package scenes ebiten 窗口中的场景
package scenes

import (
	"github.com/DrAbdusAnwar/skeleton-builder/pkg/game"
)

// Scene 是 game.Scene 的别名
type Scene = game.Scene

var (
	_ Scene         = (*PuzzleScene)(nil)
	_ game.Closable = (*PuzzleScene)(nil)
)
