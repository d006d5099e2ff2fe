package scripting

import (
	"fmt"
	"reflect"

	"GopherScript/internal/behaviour"
	"GopherScript/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScriptInstance is one live object of a script class. It guards the
// lifecycle so OnCreate and OnDestroy each run at most once.
type ScriptInstance struct {
	id        uuid.UUID
	className string
	script    behaviour.Component
	created   bool
	destroyed bool
}

func newScriptInstance(className string, script behaviour.Component) *ScriptInstance {
	inst := &ScriptInstance{
		id:        uuid.New(),
		className: className,
		script:    script,
	}
	logger.Log.Debug("ScriptInstance created", zap.String("class", className))
	return inst
}

func (s *ScriptInstance) ID() uuid.UUID {
	return s.id
}

func (s *ScriptInstance) ClassName() string {
	return s.className
}

// Script returns the underlying script object, for calling its domain methods
func (s *ScriptInstance) Script() behaviour.Component {
	return s.script
}

func (s *ScriptInstance) InvokeOnCreate() {
	if s.created || s.destroyed {
		return
	}
	s.created = true
	s.script.OnCreate()
}

// InvokeOnUpdate runs OnCreate first if the host never did
func (s *ScriptInstance) InvokeOnUpdate(deltaTime float32) {
	if s.destroyed {
		return
	}
	if !s.created {
		s.InvokeOnCreate()
	}
	s.script.OnUpdate(deltaTime)
}

func (s *ScriptInstance) InvokeOnDestroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.script.OnDestroy()
	logger.Log.Debug("ScriptInstance destroyed", zap.String("class", s.className))
}

func (s *ScriptInstance) Destroyed() bool {
	return s.destroyed
}

// Fields lists the instance's inspector fields
func (s *ScriptInstance) Fields() []behaviour.Field {
	return behaviour.InspectFields(s.script)
}

func (s *ScriptInstance) SetFieldValue(name string, value interface{}) error {
	return behaviour.SetField(s.script, name, value)
}

// GetFieldValue reads a field of inst as T, converting between numeric types.
func GetFieldValue[T any](inst *ScriptInstance, name string) (T, error) {
	var zero T
	raw, err := behaviour.GetField(inst.script, name)
	if err != nil {
		return zero, err
	}
	if v, ok := raw.(T); ok {
		return v, nil
	}

	target := reflect.TypeOf(&zero).Elem()
	in := reflect.ValueOf(raw)
	if in.CanConvert(target) && isNumber(in.Kind()) && isNumber(target.Kind()) {
		return in.Convert(target).Interface().(T), nil
	}
	return zero, fmt.Errorf("%s: cannot read %s as %s: %w", name, in.Type(), target, behaviour.ErrFieldType)
}

func isNumber(k reflect.Kind) bool {
	return (k >= reflect.Int && k <= reflect.Uint64) || k == reflect.Float32 || k == reflect.Float64
}
