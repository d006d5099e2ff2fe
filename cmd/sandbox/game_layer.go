package main

import (
	"GopherScript/internal/app"
	"GopherScript/internal/behaviour"
	"GopherScript/internal/logger"
	"GopherScript/internal/scripting"

	"go.uber.org/zap"
)

// GameLayer owns the sandbox scene: a player and a camera, each driven by
// a script component.
type GameLayer struct {
	app.BaseLayer
	engine *scripting.Engine
	scene  *behaviour.Scene
}

func NewGameLayer(engine *scripting.Engine) *GameLayer {
	return &GameLayer{
		BaseLayer: app.NewBaseLayer("GameLayer"),
		engine:    engine,
		scene:     behaviour.NewScene(),
	}
}

func (l *GameLayer) OnAttach() {
	logger.Log.Info("GameLayer::OnAttach")

	player := behaviour.NewEntity("Player")
	player.Tag = "Player"
	player.AddComponent(scripting.NewScriptComponent(l.engine, "PlayerController"))

	camera := behaviour.NewEntity("MainCamera")
	camera.Tag = "Camera"
	camera.AddComponent(scripting.NewScriptComponent(l.engine, "CameraController"))

	l.scene.RegisterEntity(player)
	l.scene.RegisterEntity(camera)
	logger.Log.Info("Scene ready", zap.Int("entities", len(l.scene.Entities())))
}

func (l *GameLayer) OnUpdate(deltaTime float32) {
	l.scene.Update(deltaTime)
}

func (l *GameLayer) OnDetach() {
	logger.Log.Info("GameLayer::OnDetach")
	l.scene.Clear()
}

func (l *GameLayer) Scene() *behaviour.Scene {
	return l.scene
}
