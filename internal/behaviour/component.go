package behaviour

// Component is the base interface for everything attached to an Entity.
// The host engine drives the three lifecycle hooks.
type Component interface {
	// Lifecycle methods
	OnCreate()                  // Called once when the owning entity goes live
	OnUpdate(deltaTime float32) // Called every frame with the seconds since the last one
	OnDestroy()                 // Called when the component or its entity is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetEntity() *Entity
	SetEntity(*Entity)
}

// BaseComponent provides default implementations for all Component methods.
// User scripts can embed this to only override the hooks they need.
type BaseComponent struct {
	enabled bool
	entity  *Entity
}

func (c *BaseComponent) OnCreate()                  {}
func (c *BaseComponent) OnUpdate(deltaTime float32) {}
func (c *BaseComponent) OnDestroy()                 {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetEntity() *Entity {
	return c.entity
}

func (c *BaseComponent) SetEntity(e *Entity) {
	c.entity = e
}

// Entity is a named object in a Scene that owns an ordered list of components
type Entity struct {
	Name       string
	Tag        string
	Active     bool
	Components []Component

	created   bool
	destroyed bool
}

func NewEntity(name string) *Entity {
	return &Entity{
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
	}
}

// AddComponent binds and enables the component. If the entity is already
// live the component's OnCreate runs immediately, otherwise it runs when the
// entity is registered with a Scene. Destroyed entities never create it.
func (e *Entity) AddComponent(component Component) {
	component.SetEntity(e)
	component.SetEnabled(true)
	e.Components = append(e.Components, component)
	if e.created && !e.destroyed {
		component.OnCreate()
	}
}

// GetComponent returns the first component whose type name matches
func (e *Entity) GetComponent(typeName string) Component {
	for _, comp := range e.Components {
		if comp != nil && GetComponentTypeName(comp) == typeName {
			return comp
		}
	}
	return nil
}

// GetComponents returns every component whose type name matches
func (e *Entity) GetComponents(typeName string) []Component {
	var result []Component
	for _, comp := range e.Components {
		if comp != nil && GetComponentTypeName(comp) == typeName {
			result = append(result, comp)
		}
	}
	return result
}

// RemoveComponent detaches the component, running OnDestroy unless the
// entity already destroyed it.
func (e *Entity) RemoveComponent(component Component) {
	for i, comp := range e.Components {
		if comp == component {
			if e.created && !e.destroyed {
				comp.OnDestroy()
			}
			e.Components = append(e.Components[:i], e.Components[i+1:]...)
			return
		}
	}
}

// Created reports whether OnCreate has run for this entity's components
func (e *Entity) Created() bool {
	return e.created
}

func (e *Entity) create() {
	if e.created || e.destroyed {
		return
	}
	e.created = true
	for _, comp := range e.Components {
		comp.OnCreate()
	}
}

func (e *Entity) internalUpdate(deltaTime float32) {
	if !e.Active || !e.created {
		return
	}

	for _, comp := range e.Components {
		if comp.GetEnabled() {
			comp.OnUpdate(deltaTime)
		}
	}
}

// Destroy runs OnDestroy on every component once and deactivates the entity
func (e *Entity) Destroy() {
	if e.destroyed {
		return
	}
	if e.created {
		for _, comp := range e.Components {
			comp.OnDestroy()
		}
	}
	e.destroyed = true
	e.Active = false
}
