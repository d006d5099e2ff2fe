package app

// LayerStack keeps regular layers below overlays. Layers update in order,
// so overlays always run after every regular layer.
type LayerStack struct {
	layers      []Layer
	insertIndex int
}

func (s *LayerStack) PushLayer(layer Layer) {
	s.layers = append(s.layers, nil)
	copy(s.layers[s.insertIndex+1:], s.layers[s.insertIndex:])
	s.layers[s.insertIndex] = layer
	s.insertIndex++
}

func (s *LayerStack) PushOverlay(overlay Layer) {
	s.layers = append(s.layers, overlay)
}

// PopLayer removes a regular layer. It reports whether it was found.
func (s *LayerStack) PopLayer(layer Layer) bool {
	for i := 0; i < s.insertIndex; i++ {
		if s.layers[i] == layer {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			s.insertIndex--
			return true
		}
	}
	return false
}

// PopOverlay removes an overlay. It reports whether it was found.
func (s *LayerStack) PopOverlay(overlay Layer) bool {
	for i := s.insertIndex; i < len(s.layers); i++ {
		if s.layers[i] == overlay {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return true
		}
	}
	return false
}

// Layers returns the stack in update order
func (s *LayerStack) Layers() []Layer {
	return s.layers
}

func (s *LayerStack) Len() int {
	return len(s.layers)
}

func (s *LayerStack) Clear() {
	s.layers = nil
	s.insertIndex = 0
}
