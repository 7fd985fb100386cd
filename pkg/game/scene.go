package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个游戏场景（拼图界面）
// 每个场景有自己的更新和绘制逻辑
type Scene interface {
	// Update 按经过的时间（秒）更新场景
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Closable 是一个可选接口，场景在程序退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 OnExit()：
//   - 游戏窗口关闭
//   - 切换到其他场景
type Closable interface {
	OnExit()
}
