package app

// Layer is a slice of per-frame behaviour pushed onto an Application
type Layer interface {
	Name() string
	OnAttach()
	OnDetach()
	OnUpdate(deltaTime float32)
}

// BaseLayer gives layers a name and no-op hooks
type BaseLayer struct {
	name string
}

func NewBaseLayer(name string) BaseLayer {
	if name == "" {
		name = "Layer"
	}
	return BaseLayer{name: name}
}

func (l BaseLayer) Name() string               { return l.name }
func (l BaseLayer) OnAttach()                  {}
func (l BaseLayer) OnDetach()                  {}
func (l BaseLayer) OnUpdate(deltaTime float32) {}
