package scripting

import (
	"GopherScript/internal/behaviour"
	"GopherScript/internal/logger"

	"go.uber.org/zap"
)

// ScriptComponent attaches a script class to an entity and forwards the
// entity's lifecycle hooks to the script instance. Without an initialized
// engine it has no instance and every hook is a no-op.
type ScriptComponent struct {
	behaviour.BaseComponent
	className string
	instance  *ScriptInstance
}

func NewScriptComponent(engine *Engine, className string) *ScriptComponent {
	c := &ScriptComponent{className: className}
	if engine == nil || !engine.IsInitialized() {
		return c
	}
	inst, err := engine.CreateScriptInstance(className)
	if err != nil {
		logger.Log.Error("Failed to create script instance",
			zap.String("class", className), zap.Error(err))
		return c
	}
	c.instance = inst
	return c
}

func (c *ScriptComponent) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (c *ScriptComponent) GetTypeName() string {
	return c.className
}

func (c *ScriptComponent) ClassName() string {
	return c.className
}

// Instance returns the script instance, or nil if none could be created
func (c *ScriptComponent) Instance() *ScriptInstance {
	return c.instance
}

func (c *ScriptComponent) SetEntity(e *behaviour.Entity) {
	c.BaseComponent.SetEntity(e)
	if c.instance != nil {
		c.instance.script.SetEntity(e)
	}
}

func (c *ScriptComponent) OnCreate() {
	if c.instance != nil {
		c.instance.InvokeOnCreate()
	}
}

func (c *ScriptComponent) OnUpdate(deltaTime float32) {
	if c.instance != nil && c.GetEnabled() {
		c.instance.InvokeOnUpdate(deltaTime)
	}
}

func (c *ScriptComponent) OnDestroy() {
	if c.instance != nil {
		c.instance.InvokeOnDestroy()
	}
}
