package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/DrAbdusAnwar/skeleton-builder/pkg/logging"
)

// SceneManager 管理当前活动的场景
// 任何时刻只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换到新场景，旧场景如果实现了 Closable 会先被关闭
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil && sm.currentScene != scene {
		if c, ok := sm.currentScene.(Closable); ok {
			c.OnExit()
		}
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Shutdown 程序退出时关闭当前场景
func (sm *SceneManager) Shutdown() {
	if c, ok := sm.currentScene.(Closable); ok {
		logger := logging.For("SceneManager")
		logger.Info().Msg("closing current scene")
		c.OnExit()
	}
	sm.currentScene = nil
}
