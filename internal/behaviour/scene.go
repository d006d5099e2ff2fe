package behaviour

// Scene manages all entities and drives their components' lifecycle hooks
type Scene struct {
	entities  []*Entity
	toDestroy []*Entity
}

func NewScene() *Scene {
	return &Scene{
		entities:  make([]*Entity, 0),
		toDestroy: make([]*Entity, 0),
	}
}

// RegisterEntity adds an Entity to the scene and runs OnCreate on its components
func (s *Scene) RegisterEntity(e *Entity) {
	s.entities = append(s.entities, e)
	e.create()
}

// UnregisterEntity removes the entity and destroys it
func (s *Scene) UnregisterEntity(e *Entity) {
	for i, o := range s.entities {
		if o == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			e.Destroy()
			return
		}
	}
}

// FindEntity finds an Entity by name
func (s *Scene) FindEntity(name string) *Entity {
	for _, e := range s.entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// FindEntitiesWithTag finds all entities with a specific tag
func (s *Scene) FindEntitiesWithTag(tag string) []*Entity {
	var result []*Entity
	for _, e := range s.entities {
		if e.Tag == tag {
			result = append(result, e)
		}
	}
	return result
}

// Update calls OnUpdate on all active entities. Entities marked with
// DestroyEntity during the previous frame are removed first.
func (s *Scene) Update(deltaTime float32) {
	if len(s.toDestroy) > 0 {
		pending := s.toDestroy
		s.toDestroy = make([]*Entity, 0)
		for _, e := range pending {
			s.UnregisterEntity(e)
		}
	}

	for _, e := range s.entities {
		if e.Active {
			e.internalUpdate(deltaTime)
		}
	}
}

// DestroyEntity marks an Entity for destruction (will be removed next frame)
func (s *Scene) DestroyEntity(e *Entity) {
	s.toDestroy = append(s.toDestroy, e)
}

// Entities returns all registered entities
func (s *Scene) Entities() []*Entity {
	return s.entities
}

// Clear destroys and removes all entities
func (s *Scene) Clear() {
	for _, e := range s.entities {
		e.Destroy()
	}
	s.entities = s.entities[:0]
	s.toDestroy = s.toDestroy[:0]
}
