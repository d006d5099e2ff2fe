package scripts

import (
	"math"

	"GopherScript/internal/behaviour"
	"GopherScript/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// MaxPitch keeps the camera from flipping over the vertical axis
const MaxPitch float32 = 89.0

// CameraController turns mouse deltas into a yaw/pitch orientation
type CameraController struct {
	behaviour.BaseComponent

	MouseSensitivity float32
	MoveSpeed        float32
	SprintMultiplier float32

	pitch float32
	yaw   float32
}

func init() {
	behaviour.RegisterScript("CameraController", func() behaviour.Component {
		return NewCameraController()
	})
}

func NewCameraController() *CameraController {
	return &CameraController{
		MouseSensitivity: 2.0,
		MoveSpeed:        10.0,
		SprintMultiplier: 2.0,
	}
}

func (c *CameraController) OnCreate() {
	logger.Log.Info("CameraController: Initialized")
}

// OnUpdate has nothing to do until the engine exposes input and transforms.
func (c *CameraController) OnUpdate(deltaTime float32) {}

func (c *CameraController) OnDestroy() {
	logger.Log.Info("CameraController: Destroyed")
}

// Rotate applies a mouse movement. Pitch is always kept within
// [-MaxPitch, MaxPitch]; a NaN delta leaves its axis unchanged and an
// infinite horizontal delta is ignored.
func (c *CameraController) Rotate(deltaX, deltaY float32) {
	dx := deltaX * c.MouseSensitivity
	dy := deltaY * c.MouseSensitivity

	if !math.IsNaN(float64(dx)) && !math.IsInf(float64(dx), 0) {
		c.yaw += dx
	}
	if !math.IsNaN(float64(dy)) {
		c.pitch = mgl32.Clamp(c.pitch-dy, -MaxPitch, MaxPitch)
	}

	logger.Log.Info("Camera rotated", zap.Float32("yaw", c.yaw), zap.Float32("pitch", c.pitch))
}

func (c *CameraController) Yaw() float32 {
	return c.yaw
}

func (c *CameraController) Pitch() float32 {
	return c.pitch
}

// Forward returns the unit look direction for the current yaw and pitch.
// Yaw 0 looks down +X; positive pitch looks up.
func (c *CameraController) Forward() mgl32.Vec3 {
	yawRad := float64(mgl32.DegToRad(c.yaw))
	pitchRad := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	return front.Normalize()
}
