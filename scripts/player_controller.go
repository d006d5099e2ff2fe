package scripts

import (
	"GopherScript/internal/behaviour"
	"GopherScript/internal/logger"

	"go.uber.org/zap"
)

// Gravity is the downward acceleration applied every update, in units/s²
const Gravity float32 = 9.81

// PlayerController tracks health and a vertical velocity for a player
type PlayerController struct {
	behaviour.BaseComponent

	// Public fields are exposed in the inspector
	Speed     float32
	JumpForce float32
	Health    float32

	// OnDeath, if set, runs every time damage leaves Health at or below zero
	OnDeath func()

	velocity float32
}

func init() {
	behaviour.RegisterScript("PlayerController", func() behaviour.Component {
		return NewPlayerController()
	})
}

func NewPlayerController() *PlayerController {
	return &PlayerController{
		Speed:     5.0,
		JumpForce: 10.0,
		Health:    100.0,
	}
}

func (p *PlayerController) OnCreate() {
	logger.Log.Info("PlayerController: OnCreate called")
	logger.Log.Info("Player initialized",
		zap.Float32("speed", p.Speed),
		zap.Float32("jumpForce", p.JumpForce))
}

func (p *PlayerController) OnUpdate(deltaTime float32) {
	p.velocity -= Gravity * deltaTime

	if p.IsOnGround() {
		p.velocity = 0
	}
}

func (p *PlayerController) OnDestroy() {
	logger.Log.Info("PlayerController: OnDestroy called")
	logger.Log.Info("Cleaning up player resources...")
}

func (p *PlayerController) TakeDamage(damage float32) {
	p.Health -= damage
	logger.Log.Info("Player took damage",
		zap.Float32("damage", damage),
		zap.Float32("health", p.Health))

	if p.Health <= 0 {
		p.Die()
	}
}

func (p *PlayerController) Jump() {
	if p.IsOnGround() {
		p.velocity = p.JumpForce
		logger.Log.Info("Player jumped", zap.Float32("force", p.JumpForce))
	}
}

// IsOnGround is a stand-in for a collision query: the player counts as
// grounded whenever it is not moving upwards.
func (p *PlayerController) IsOnGround() bool {
	return p.velocity <= 0
}

func (p *PlayerController) Velocity() float32 {
	return p.velocity
}

func (p *PlayerController) Die() {
	logger.Log.Info("Player died!")
	if p.OnDeath != nil {
		p.OnDeath()
	}
}
